package lametric

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deviceInfoFixture = `{
	"audio": {
		"volume": 100,
		"volume_limit": {"min": 0, "max": 100},
		"volume_range": {"min": 0, "max": 100}
	},
	"bluetooth": {
		"active": false,
		"address": "AA:BB:CC:DD:EE:FF",
		"available": true,
		"discoverable": true,
		"name": "LM1234",
		"pairable": true
	},
	"display": {
		"brightness": 100,
		"brightness_mode": "auto",
		"height": 8,
		"screensaver": {"enabled": false},
		"type": "mixed",
		"width": 37
	},
	"id": "12345",
	"mode": "auto",
	"model": "LM 37X8",
	"name": "Clock of the Mountain",
	"os_version": "2.2.2",
	"serial_number": "SA140100002200W00BS9",
	"wifi": {
		"active": true,
		"address": "AA:BB:CC:DD:EE:FF",
		"available": true,
		"encryption": "WPA",
		"essid": "IoT",
		"ip": "10.1.2.3",
		"mode": "dhcp",
		"netmask": "255.255.255.0",
		"strength": 81
	}
}`

func jsonHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

func TestDeviceInfo(t *testing.T) {
	t.Parallel()

	d := testDeviceClient(t, jsonHandler(deviceInfoFixture))

	device, err := d.Device(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "12345", device.DeviceID)
	assert.Equal(t, DeviceModeAuto, device.Mode)
	assert.Equal(t, "LM 37X8", device.Model)
	assert.Equal(t, "2.2.2", device.OSVersion)
	assert.Equal(t, 100, device.Audio.Volume)
	assert.Equal(t, &Range{Min: 0, Max: 100}, device.Audio.VolumeRange)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", device.Bluetooth.Address)
	assert.Equal(t, DisplayTypeMixed, device.Display.DisplayType)
	assert.False(t, device.Display.Screensaver.Enabled)

	// Device-info wifi arrives under its legacy aliases.
	assert.Equal(t, "IoT", device.Wifi.SSID)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", device.Wifi.MAC)
	require.NotNil(t, device.Wifi.RSSI)
	assert.Equal(t, 81, *device.Wifi.RSSI)
	assert.Equal(t, "10.1.2.3", device.Wifi.IP.String())
}

func TestDeviceInfoIsIdempotent(t *testing.T) {
	t.Parallel()

	d := testDeviceClient(t, jsonHandler(deviceInfoFixture))

	first, err := d.Device(context.Background())
	require.NoError(t, err)
	second, err := d.Device(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestModeGetAndSet(t *testing.T) {
	t.Parallel()

	var putBody []byte
	d := testDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			putBody, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"success": {"data": {"mode": "manual"}}}`))
			return
		}
		_, _ = w.Write([]byte(deviceInfoFixture))
	}))

	mode, err := d.Mode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DeviceModeAuto, mode)

	mode, err = d.SetMode(context.Background(), DeviceModeManual)
	require.NoError(t, err)
	assert.Equal(t, DeviceModeManual, mode)
	assert.JSONEq(t, `{"mode": "manual"}`, string(putBody))
}

func TestDisplayGet(t *testing.T) {
	t.Parallel()

	d := testDeviceClient(t, jsonHandler(`{
		"brightness": 70,
		"brightness_mode": "manual",
		"height": 8,
		"screensaver": {"enabled": true},
		"width": 37
	}`))

	display, err := d.Display(context.Background(), DisplayUpdate{})
	require.NoError(t, err)
	assert.Equal(t, 70, display.Brightness)
	assert.Equal(t, BrightnessModeManual, display.BrightnessMode)
	assert.True(t, display.Screensaver.Enabled)
	assert.Empty(t, display.DisplayType)
}

func TestDisplaySetSendsOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	var method string
	var body []byte
	d := testDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": {"data": {
			"brightness": 25,
			"brightness_mode": "manual",
			"height": 8,
			"screensaver": {"enabled": false},
			"width": 37
		}}}`))
	}))

	display, err := d.Display(context.Background(), DisplayUpdate{Brightness: Int(25)})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.JSONEq(t, `{"brightness": 25}`, string(body))
	assert.Equal(t, 25, display.Brightness)
	assert.Equal(t, BrightnessModeManual, display.BrightnessMode)
}

func TestDisplaySetRejectsOutOfRangeBrightness(t *testing.T) {
	t.Parallel()

	var requests int
	d := testDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := d.Display(context.Background(), DisplayUpdate{Brightness: Int(150)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate display update")
	assert.Zero(t, requests)
}

func TestAudioGetAndSet(t *testing.T) {
	t.Parallel()

	var body []byte
	d := testDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			body, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"success": {"data": {"volume": 60}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"volume": 100, "volume_range": {"min": 0, "max": 100}}`))
	}))

	audio, err := d.Audio(context.Background(), AudioUpdate{})
	require.NoError(t, err)
	assert.Equal(t, 100, audio.Volume)
	require.NotNil(t, audio.VolumeRange)
	assert.Nil(t, audio.VolumeLimit)

	audio, err = d.Audio(context.Background(), AudioUpdate{Volume: Int(60)})
	require.NoError(t, err)
	assert.Equal(t, 60, audio.Volume)
	assert.JSONEq(t, `{"volume": 60}`, string(body))
}

func TestBluetoothGetAndSet(t *testing.T) {
	t.Parallel()

	var body []byte
	d := testDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			body, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"success": {"data": {
				"active": true,
				"mac": "AA:BB:CC:DD:EE:FF",
				"available": true,
				"discoverable": false,
				"name": "LM1234",
				"pairable": true
			}}}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"active": false,
			"mac": "AA:BB:CC:DD:EE:FF",
			"available": true,
			"discoverable": false,
			"name": "LM1234",
			"pairable": true
		}`))
	}))

	bt, err := d.Bluetooth(context.Background(), BluetoothUpdate{})
	require.NoError(t, err)
	assert.False(t, bt.Active)
	// The bluetooth endpoint spells the address "mac".
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", bt.Address)

	bt, err = d.Bluetooth(context.Background(), BluetoothUpdate{Active: Bool(true)})
	require.NoError(t, err)
	assert.True(t, bt.Active)
	assert.JSONEq(t, `{"active": true}`, string(body))
}

func TestWifiAliases(t *testing.T) {
	t.Parallel()

	d := testDeviceClient(t, jsonHandler(`{
		"active": true,
		"available": true,
		"encryption": "WPA",
		"ipv4": "192.168.1.11",
		"mac": "AA:BB:CC:DD:EE:FF",
		"mode": "dhcp",
		"netmask": "255.255.255.0",
		"signal_strength": 64,
		"ssid": "IoT"
	}`))

	wifi, err := d.Wifi(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.11", wifi.IP.String())
	assert.Equal(t, "IoT", wifi.SSID)
	assert.Equal(t, WifiModeDHCP, wifi.Mode)
	require.NotNil(t, wifi.RSSI)
	assert.Equal(t, 64, *wifi.RSSI)
}

func TestWifiRoundTripUsesSemanticNames(t *testing.T) {
	t.Parallel()

	var wifi Wifi
	require.NoError(t, json.Unmarshal([]byte(`{
		"active": true,
		"available": true,
		"essid": "IoT",
		"address": "AA:BB:CC:DD:EE:FF",
		"ip": "10.1.2.3",
		"mode": "dhcp",
		"netmask": "255.255.255.0",
		"strength": 42
	}`), &wifi))

	out, err := json.Marshal(wifi)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(out, &keys))
	assert.Contains(t, keys, "ssid")
	assert.Contains(t, keys, "mac")
	assert.Contains(t, keys, "rssi")
	assert.NotContains(t, keys, "essid")
	assert.NotContains(t, keys, "strength")
}
