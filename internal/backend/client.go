// Package backend talks to the content backend. Client is the transport
// layer: it applies one credential-and-serialization policy to every call and
// classifies failures. Domain shaping (list normalization, typed decoding)
// lives one layer up, in the facade.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
	"github.com/mastersolis/site-gateway/internal/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// Payload is a backend response body, shaped by the response's declared
// content type: JSON bytes when the backend declared JSON, raw text otherwise
// (even when the text happens to look like JSON).
type Payload struct {
	JSON json.RawMessage
	Text string
}

// IsJSON reports whether the backend declared the body as JSON.
func (p Payload) IsJSON() bool {
	return p.JSON != nil
}

// Client issues HTTP calls against the content backend.
type Client struct {
	baseURL  string
	httpc    *http.Client
	sessions ports.SessionStore
	log      zerolog.Logger
}

// NewClient builds a Client for the given base address. A trailing slash on
// baseURL is tolerated and trimmed.
func NewClient(baseURL string, sessions ports.SessionStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: defaultTimeout},
		sessions: sessions,
		log:      log,
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (Payload, error) {
	return c.do(ctx, http.MethodGet, path, "", nil)
}

// PostJSON serializes body as JSON and POSTs it.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (Payload, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return Payload{}, fmt.Errorf("encode request body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, path, "application/json", &buf)
}

// PostMultipart POSTs an assembled multipart form. The form's own content
// type (boundary included) is sent; the body is never re-serialized.
func (c *Client) PostMultipart(ctx context.Context, path string, form *MultipartPayload) (Payload, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return Payload{}, fmt.Errorf("encode multipart form: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, contentType, bytes.NewReader(body))
}

// Ping checks backend reachability via the root health route.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Get(ctx, "/")
	return err
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if token, err := c.sessions.Get(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		cerr := classifyTransport(err)
		metrics.BackendRequestsTotal.WithLabelValues(method, transportOutcome(cerr)).Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend call failed")
		return Payload{}, cerr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(method, "network").Inc()
		return Payload{}, &domain.ConnectivityError{Err: err}
	}

	payload, err := parsePayload(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(method, "api_error").Inc()
		return Payload{}, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.BackendRequestsTotal.WithLabelValues(method, "api_error").Inc()
		return Payload{}, &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    failureMessage(payload),
		}
	}

	metrics.BackendRequestsTotal.WithLabelValues(method, "ok").Inc()
	return payload, nil
}

// parsePayload shapes the body by the declared content type only: a body
// declared as JSON must parse as JSON; any other declaration yields raw text.
func parsePayload(declared string, raw []byte) (Payload, error) {
	if !strings.Contains(declared, "application/json") {
		return Payload{Text: string(raw)}, nil
	}
	var v json.RawMessage
	if err := json.Unmarshal(raw, &v); err != nil {
		return Payload{}, fmt.Errorf("decode response: %w", err)
	}
	return Payload{JSON: v}, nil
}

// failureMessage extracts the backend's error field from a JSON failure body.
// Text bodies contribute nothing and fall back to the generic message.
func failureMessage(p Payload) string {
	if p.IsJSON() {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(p.JSON, &body); err == nil && body.Error != "" {
			return body.Error
		}
	}
	return domain.GenericFailureMessage
}

// classifyTransport turns a transport failure into a ConnectivityError. The
// CORS trigger is a plain substring match on the failure message; callers must
// not rely on stricter detection.
func classifyTransport(err error) *domain.ConnectivityError {
	return &domain.ConnectivityError{
		Err:  err,
		CORS: strings.Contains(err.Error(), "CORS"),
	}
}

func transportOutcome(err *domain.ConnectivityError) string {
	if err.CORS {
		return "cors"
	}
	return "network"
}
