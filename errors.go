package lametric

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by both clients. Wrapped errors carry request
// context; match with errors.Is.
var (
	// ErrConnection signals a transport-level failure: DNS resolution,
	// connection refused/reset, or timeout. These are the only failures
	// the request loop retries.
	ErrConnection = errors.New("lametric: connection error")

	// ErrConnectionTimeout is the timeout sub-kind of ErrConnection.
	// errors.Is(err, ErrConnection) also holds for it.
	ErrConnectionTimeout = fmt.Errorf("%w: timeout", ErrConnection)

	// ErrAuthentication signals rejected credentials: a 401/403 from the
	// device, or the cloud's authentication-failure error message.
	ErrAuthentication = errors.New("lametric: authentication failed")

	// ErrUnsupported signals an endpoint the target firmware does not
	// implement (HTTP 404). Callers can treat it as a capability probe
	// result rather than an operational failure.
	ErrUnsupported = errors.New("lametric: endpoint not supported by device")
)

// APIError carries the status code and raw body of a non-2xx response that
// maps to no more specific error kind, and of 2xx responses that violate
// the JSON protocol.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lametric: unexpected response (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("lametric: unexpected response (status %d): %s", e.StatusCode, e.Body)
}
