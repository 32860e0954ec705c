package lametric

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	devicePort     = "4343"
	deviceUsername = "dev"
	apiRoot        = "/api/v2"
)

// validate checks outgoing payloads before a request is issued.
var validate = validator.New()

// Option configures a device or cloud client.
type Option func(*transport)

// WithHTTPClient supplies an existing HTTP client. The client keeps
// ownership: Close will not release it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(t *transport) {
		t.httpClient = httpClient
		t.ownsClient = false
	}
}

// WithRequestTimeout overrides the default per-attempt timeout of 8s.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(t *transport) {
		t.timeout = timeout
	}
}

// DeviceClient talks to a LaMetric device on the local network. Devices
// listen on a fixed HTTPS port with a self-signed certificate and
// authenticate with HTTP Basic auth against the device API key.
//
// The client is safe for concurrent use. Call Close when done to release
// the underlying session, unless one was supplied via WithHTTPClient.
type DeviceClient struct {
	host string
	t    *transport
}

// NewDeviceClient builds a client for the device at host. The API key is
// printed in the LaMetric TIME mobile app and can also be fetched through
// the cloud client.
func NewDeviceClient(host, apiKey string, opts ...Option) *DeviceClient {
	t := &transport{
		baseURL:   &url.URL{Scheme: "https", Host: net.JoinHostPort(host, devicePort)},
		timeout:   defaultRequestTimeout,
		userAgent: defaultUserAgent,
		authorize: func(req *http.Request) {
			req.SetBasicAuth(deviceUsername, apiKey)
		},
		classify: deviceClassify(host),
		newTransport: func() *http.Transport {
			// Devices present self-signed certificates.
			tr := http.DefaultTransport.(*http.Transport).Clone()
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
			return tr
		},
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(t)
	}
	return &DeviceClient{host: host, t: t}
}

// deviceClassify maps device HTTP error statuses onto the error taxonomy:
// 401/403 mean rejected credentials, 404 means the firmware does not
// implement the endpoint.
func deviceClassify(host string) func(status int, body []byte) error {
	return func(status int, body []byte) error {
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: device at %s rejected the API key", ErrAuthentication, host)
		case http.StatusNotFound:
			return fmt.Errorf("%w: device at %s", ErrUnsupported, host)
		}
		return &APIError{StatusCode: status, Body: string(body)}
	}
}

// Close releases the client-owned session. A session supplied through
// WithHTTPClient is left open.
func (d *DeviceClient) Close() {
	d.t.close()
}

// Device fetches the full device state.
func (d *DeviceClient) Device(ctx context.Context) (*Device, error) {
	var device Device
	if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device", nil, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// Mode reports the current device mode.
func (d *DeviceClient) Mode(ctx context.Context) (DeviceMode, error) {
	device, err := d.Device(ctx)
	if err != nil {
		return "", err
	}
	return device.Mode, nil
}

// SetMode switches the device mode and returns the mode the device settled
// on.
func (d *DeviceClient) SetMode(ctx context.Context, mode DeviceMode) (DeviceMode, error) {
	body := map[string]DeviceMode{"mode": mode}
	var env successEnvelope
	if err := d.t.request(ctx, http.MethodPut, apiRoot+"/device", body, &env); err != nil {
		return "", err
	}
	if len(env.Success.Data) > 0 {
		var updated struct {
			Mode DeviceMode `json:"mode"`
		}
		if err := json.Unmarshal(env.Success.Data, &updated); err == nil && updated.Mode != "" {
			return updated.Mode, nil
		}
	}
	return mode, nil
}

// DisplayUpdate selects the display fields to change. Nil/empty fields are
// not sent.
type DisplayUpdate struct {
	Brightness     *int           `json:"brightness,omitempty" validate:"omitempty,min=0,max=100"`
	BrightnessMode BrightnessMode `json:"brightness_mode,omitempty" validate:"omitempty,oneof=auto manual"`
}

func (u DisplayUpdate) isZero() bool {
	return u.Brightness == nil && u.BrightnessMode == ""
}

// Display gets or sets the display state. A zero update issues a plain
// read; otherwise only the supplied fields are written and the updated
// state is returned.
func (d *DeviceClient) Display(ctx context.Context, update DisplayUpdate) (*Display, error) {
	if update.isZero() {
		var display Display
		if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/display", nil, &display); err != nil {
			return nil, err
		}
		return &display, nil
	}

	if err := validate.Struct(update); err != nil {
		return nil, fmt.Errorf("validate display update: %w", err)
	}
	var env successEnvelope
	if err := d.t.request(ctx, http.MethodPut, apiRoot+"/device/display", update, &env); err != nil {
		return nil, err
	}
	var display Display
	if err := json.Unmarshal(env.Success.Data, &display); err != nil {
		return nil, fmt.Errorf("decode display state: %w", err)
	}
	return &display, nil
}

// AudioUpdate selects the audio fields to change.
type AudioUpdate struct {
	Volume *int `json:"volume,omitempty" validate:"omitempty,min=0,max=100"`
}

func (u AudioUpdate) isZero() bool {
	return u.Volume == nil
}

// Audio gets or sets the audio state, with the same read/write split as
// Display.
func (d *DeviceClient) Audio(ctx context.Context, update AudioUpdate) (*Audio, error) {
	if update.isZero() {
		var audio Audio
		if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/audio", nil, &audio); err != nil {
			return nil, err
		}
		return &audio, nil
	}

	if err := validate.Struct(update); err != nil {
		return nil, fmt.Errorf("validate audio update: %w", err)
	}
	var env successEnvelope
	if err := d.t.request(ctx, http.MethodPut, apiRoot+"/device/audio", update, &env); err != nil {
		return nil, err
	}
	var audio Audio
	if err := json.Unmarshal(env.Success.Data, &audio); err != nil {
		return nil, fmt.Errorf("decode audio state: %w", err)
	}
	return &audio, nil
}

// BluetoothUpdate selects the Bluetooth fields to change.
type BluetoothUpdate struct {
	Active *bool   `json:"active,omitempty"`
	Name   *string `json:"name,omitempty"`
}

func (u BluetoothUpdate) isZero() bool {
	return u.Active == nil && u.Name == nil
}

// Bluetooth gets or sets the Bluetooth state, with the same read/write
// split as Display.
func (d *DeviceClient) Bluetooth(ctx context.Context, update BluetoothUpdate) (*Bluetooth, error) {
	if update.isZero() {
		var bluetooth Bluetooth
		if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/bluetooth", nil, &bluetooth); err != nil {
			return nil, err
		}
		return &bluetooth, nil
	}

	var env successEnvelope
	if err := d.t.request(ctx, http.MethodPut, apiRoot+"/device/bluetooth", update, &env); err != nil {
		return nil, err
	}
	var bluetooth Bluetooth
	if err := json.Unmarshal(env.Success.Data, &bluetooth); err != nil {
		return nil, fmt.Errorf("decode bluetooth state: %w", err)
	}
	return &bluetooth, nil
}

// Wifi fetches the current Wi-Fi state.
func (d *DeviceClient) Wifi(ctx context.Context) (*Wifi, error) {
	var wifi Wifi
	if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/wifi", nil, &wifi); err != nil {
		return nil, err
	}
	return &wifi, nil
}
