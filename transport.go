package lametric

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRequestTimeout = 8 * time.Second
	defaultUserAgent      = "go-lametric/1.0"
	maxRequestAttempts    = 3
)

// transport performs authenticated JSON requests against a fixed base URL
// and carries the retry and error-mapping contract shared by the device and
// cloud clients. Retries apply only to transport-level failures; an HTTP
// error response is never retried because a second attempt cannot change an
// authorization or routing outcome.
type transport struct {
	baseURL   *url.URL
	timeout   time.Duration
	userAgent string

	// authorize stamps credentials onto an outgoing request.
	authorize func(*http.Request)
	// classify maps a non-2xx response to a typed error.
	classify func(status int, body []byte) error
	// newTransport builds the transport for a lazily created session.
	newTransport func() *http.Transport
	// newBackOff builds the retry schedule for one logical request.
	newBackOff func() backoff.BackOff

	mu         sync.Mutex
	httpClient *http.Client
	ownsClient bool
}

func defaultBackOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRequestAttempts-1)
}

// session returns the HTTP client, creating an owned one on first use when
// the caller did not supply their own.
func (t *transport) session() *http.Client {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.httpClient == nil {
		t.httpClient = &http.Client{Transport: t.newTransport()}
		t.ownsClient = true
	}
	return t.httpClient
}

// close releases the underlying session. A session supplied by the caller
// is left untouched.
func (t *transport) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ownsClient || t.httpClient == nil {
		return
	}
	t.httpClient.CloseIdleConnections()
	t.httpClient = nil
	t.ownsClient = false
}

// request performs one logical request: marshal body, attempt with a
// per-attempt timeout, retry transport failures with exponential backoff,
// map failures onto the error taxonomy, and decode the JSON response into
// dest when dest is non-nil.
func (t *transport) request(ctx context.Context, method, uri string, body, dest any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = encoded
	}

	reqURL := t.baseURL.ResolveReference(&url.URL{Path: uri})
	client := t.session()

	var result []byte
	attempt := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, t.timeout)
		defer cancel()

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(attemptCtx, method, reqURL.String(), reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", t.userAgent)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		t.authorize(req)

		resp, err := client.Do(req)
		if err != nil {
			return connectionError(err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return connectionError(err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(t.classify(resp.StatusCode, data))
		}
		if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
			// A 2xx without JSON is a protocol violation, not a
			// transient condition.
			return backoff.Permanent(&APIError{StatusCode: resp.StatusCode, Body: string(data)})
		}
		result = data
		return nil
	}

	if err := backoff.Retry(attempt, backoff.WithContext(t.newBackOff(), ctx)); err != nil {
		return err
	}
	if dest == nil || len(result) == 0 {
		return nil
	}
	if err := json.Unmarshal(result, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// connectionError classifies a transport failure, separating the timeout
// sub-kind from other connection failures. Both are retryable.
func connectionError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, os.ErrDeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", ErrConnectionTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// successEnvelope is the device's write-response wrapper: the updated state
// sits under success.data, assigned notification ids under success.id.
type successEnvelope struct {
	Success struct {
		ID   json.RawMessage `json:"id"`
		Data json.RawMessage `json:"data"`
	} `json:"success"`
}

// parseWireID tolerates the device returning an assigned id as either a
// JSON number or a quoted string.
func parseWireID(raw json.RawMessage) (int, error) {
	trimmed := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(trimmed); err == nil {
		trimmed = unquoted
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse notification id %q: %w", string(raw), err)
	}
	return id, nil
}
