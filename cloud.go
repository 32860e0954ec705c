package lametric

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const cloudHost = "developer.lametric.com"

// cloudAuthFailureMessage is the error message the cloud reports for a
// rejected token. The cloud error body carries no usable status field, so
// authentication failures are recognized by this message.
const cloudAuthFailureMessage = "unauthorized"

// User is a LaMetric cloud account.
type User struct {
	AppsCount          int    `json:"apps_count"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	PrivateAppsCount   int    `json:"private_apps_count"`
	PrivateDeviceCount int    `json:"private_device_count"`
	UserID             int    `json:"id"`
}

// CloudDevice is a device registration in the cloud. APIKey is the
// device's local API key, which bootstraps a DeviceClient.
type CloudDevice struct {
	APIKey       string      `json:"api_key"`
	CreatedAt    time.Time   `json:"created_at"`
	DeviceID     int         `json:"id"`
	IP           netip.Addr  `json:"ipv4_internal"`
	MAC          string      `json:"mac"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	SSID         string      `json:"wifi_ssid"`
	State        DeviceState `json:"state"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CloudClient talks to the LaMetric cloud account API with bearer-token
// auth over regular TLS. It is typically used once, at setup time, to
// discover a device's local API key.
//
// The client is safe for concurrent use. Call Close when done to release
// the underlying session, unless one was supplied via WithHTTPClient.
type CloudClient struct {
	t *transport
}

// NewCloudClient builds a client using a personal access token from
// https://developer.lametric.com.
func NewCloudClient(token string, opts ...Option) *CloudClient {
	t := &transport{
		baseURL:   &url.URL{Scheme: "https", Host: cloudHost},
		timeout:   defaultRequestTimeout,
		userAgent: defaultUserAgent,
		authorize: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		},
		classify: cloudClassify,
		newTransport: func() *http.Transport {
			return http.DefaultTransport.(*http.Transport).Clone()
		},
		newBackOff: defaultBackOff,
	}
	for _, opt := range opts {
		opt(t)
	}
	return &CloudClient{t: t}
}

// cloudClassify maps a cloud error response onto the taxonomy. The cloud
// has no device-style status convention; it reports an errors array, and
// only a known authentication-failure message distinguishes a bad token
// from any other failure.
func cloudClassify(status int, body []byte) error {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, apiErr := range parsed.Errors {
			if strings.EqualFold(strings.TrimSpace(apiErr.Message), cloudAuthFailureMessage) {
				return fmt.Errorf("%w: cloud rejected the token", ErrAuthentication)
			}
		}
	}
	return &APIError{StatusCode: status, Body: string(body)}
}

// Close releases the client-owned session. A session supplied through
// WithHTTPClient is left open.
func (c *CloudClient) Close() {
	c.t.close()
}

// User fetches the authenticated account.
func (c *CloudClient) User(ctx context.Context) (*User, error) {
	var user User
	if err := c.t.request(ctx, http.MethodGet, apiRoot+"/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Devices lists every device registered to the account.
func (c *CloudClient) Devices(ctx context.Context) ([]CloudDevice, error) {
	var devices []CloudDevice
	if err := c.t.request(ctx, http.MethodGet, apiRoot+"/users/me/devices", nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Device fetches one registered device by its cloud id.
func (c *CloudClient) Device(ctx context.Context, deviceID int) (*CloudDevice, error) {
	uri := apiRoot + "/users/me/devices/" + strconv.Itoa(deviceID)
	var device CloudDevice
	if err := c.t.request(ctx, http.MethodGet, uri, nil, &device); err != nil {
		return nil, err
	}
	return &device, nil
}
