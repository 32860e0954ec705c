package lametric

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"time"
)

// Range holds an inclusive integer range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Audio is the audio state of a device. The limit and range are only
// reported by firmware that supports them.
type Audio struct {
	Volume      int    `json:"volume"`
	VolumeLimit *Range `json:"volume_limit,omitempty"`
	VolumeRange *Range `json:"volume_range,omitempty"`
}

// Bluetooth is the Bluetooth state of a device.
type Bluetooth struct {
	Active       bool   `json:"active"`
	Address      string `json:"address"`
	Available    bool   `json:"available"`
	Discoverable bool   `json:"discoverable"`
	Name         string `json:"name"`
	Pairable     bool   `json:"pairable"`
}

// UnmarshalJSON consolidates the two wire spellings of the Bluetooth MAC
// address: the device endpoint reports it as "mac", the nested device-info
// payload as "address".
func (b *Bluetooth) UnmarshalJSON(data []byte) error {
	type bluetooth Bluetooth
	var raw struct {
		bluetooth
		MAC string `json:"mac"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Bluetooth(raw.bluetooth)
	if b.Address == "" {
		b.Address = raw.MAC
	}
	return nil
}

// DisplayScreensaver holds the screensaver state of a display.
type DisplayScreensaver struct {
	Enabled bool `json:"enabled"`
}

// Display is the display state of a device.
type Display struct {
	Brightness     int                `json:"brightness"`
	BrightnessMode BrightnessMode     `json:"brightness_mode"`
	DisplayType    DisplayType        `json:"type,omitempty"`
	Height         int                `json:"height"`
	Screensaver    DisplayScreensaver `json:"screensaver"`
	Width          int                `json:"width"`
}

// Wifi is the Wi-Fi state of a device.
type Wifi struct {
	Active     bool       `json:"active"`
	Available  bool       `json:"available"`
	Encryption string     `json:"encryption,omitempty"`
	IP         netip.Addr `json:"ip"`
	MAC        string     `json:"mac"`
	Mode       WifiMode   `json:"mode"`
	Netmask    string     `json:"netmask"`
	RSSI       *int       `json:"rssi,omitempty"`
	SSID       string     `json:"ssid"`
}

// UnmarshalJSON consolidates the wire aliases the firmware uses across
// endpoints: the device-info payload spells the SSID "essid", the MAC
// "address" and the signal strength "strength", while the wifi endpoint
// uses "ipv4" and "signal_strength".
func (w *Wifi) UnmarshalJSON(data []byte) error {
	var raw struct {
		Active         bool     `json:"active"`
		Available      bool     `json:"available"`
		Encryption     string   `json:"encryption"`
		IP             string   `json:"ip"`
		IPv4           string   `json:"ipv4"`
		MAC            string   `json:"mac"`
		Address        string   `json:"address"`
		Mode           WifiMode `json:"mode"`
		Netmask        string   `json:"netmask"`
		RSSI           *int     `json:"rssi"`
		Strength       *int     `json:"strength"`
		SignalStrength *int     `json:"signal_strength"`
		SSID           string   `json:"ssid"`
		ESSID          string   `json:"essid"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	w.Active = raw.Active
	w.Available = raw.Available
	w.Encryption = raw.Encryption
	w.Mode = raw.Mode
	w.Netmask = raw.Netmask

	w.MAC = raw.MAC
	if w.MAC == "" {
		w.MAC = raw.Address
	}
	w.SSID = raw.SSID
	if w.SSID == "" {
		w.SSID = raw.ESSID
	}
	switch {
	case raw.RSSI != nil:
		w.RSSI = raw.RSSI
	case raw.Strength != nil:
		w.RSSI = raw.Strength
	case raw.SignalStrength != nil:
		w.RSSI = raw.SignalStrength
	}

	addr := raw.IP
	if addr == "" {
		addr = raw.IPv4
	}
	if addr != "" {
		parsed, err := netip.ParseAddr(addr)
		if err != nil {
			return fmt.Errorf("parse wifi ip %q: %w", addr, err)
		}
		w.IP = parsed
	}
	return nil
}

// Device is the full state of a device as reported by the device-info
// endpoint.
type Device struct {
	Audio        Audio      `json:"audio"`
	Bluetooth    Bluetooth  `json:"bluetooth"`
	DeviceID     string     `json:"id"`
	Display      Display    `json:"display"`
	Mode         DeviceMode `json:"mode"`
	Model        string     `json:"model"`
	Name         string     `json:"name"`
	OSVersion    string     `json:"os_version"`
	SerialNumber string     `json:"serial_number"`
	Wifi         Wifi       `json:"wifi"`
}

// ActionParameter describes one parameter accepted by a widget action.
type ActionParameter struct {
	DataType string `json:"data_type"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Format   string `json:"format,omitempty"`
}

// Application describes an installed app and its widget instances. Actions
// maps an action id to the schema of its parameters; firmware without
// action support omits it.
type Application struct {
	Package     string                                `json:"package"`
	Vendor      string                                `json:"vendor"`
	Version     string                                `json:"version"`
	VersionCode string                                `json:"version_code"`
	Title       string                                `json:"title,omitempty"`
	Widgets     map[string]Widget                     `json:"widgets,omitempty"`
	Actions     map[string]map[string]ActionParameter `json:"actions,omitempty"`
}

// Widget is one instance of an application on the device's app carousel.
// Settings is only reported by the single-widget endpoint.
type Widget struct {
	Index    int            `json:"index"`
	Package  string         `json:"package"`
	Visible  bool           `json:"visible"`
	Settings map[string]any `json:"settings,omitempty"`
}

// timestampLayouts are tried in order when parsing device timestamps; the
// firmware reports local time without a zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

const deviceTimestampLayout = "2006-01-02T15:04:05"

// Timestamp is a device-reported point in time. The device speaks a bare
// ISO 8601 layout; RFC 3339 variants are accepted on input.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses any of the accepted timestamp layouts.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("parse timestamp %q", value)
}

// MarshalJSON emits the device's native layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(deviceTimestampLayout))
}
