package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/veloro/deliverydesk/internal/ports"
)

// Client is the single configured HTTP gateway to the remote delivery API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	log     *slog.Logger
}

// NewClient creates the gateway. baseURL includes the API prefix; timeout is
// the fixed per-request timeout.
func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenSource, log *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be > 0")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

// StatusError reports a non-2xx answer that maps to no sentinel on its own.
// It wraps ports.ErrRemoteUnavailable for 5xx answers so callers can keep
// checking with errors.Is.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote API answered %d: %s", e.Status, e.Body)
}

// Unwrap maps server-side failures onto the infrastructure sentinel.
func (e *StatusError) Unwrap() error {
	if e.Status >= 500 {
		return ports.ErrRemoteUnavailable
	}
	return nil
}

// requestOptions carry per-call extras through the gateway.
type requestOptions struct {
	query  url.Values
	header http.Header
}

type requestOption func(*requestOptions)

// withQuery attaches query parameters to the request URL.
func withQuery(q url.Values) requestOption {
	return func(o *requestOptions) { o.query = q }
}

// withHeader attaches one extra header (e.g. a forwarded Cookie).
func withHeader(key, value string) requestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = http.Header{}
		}
		o.header.Set(key, value)
	}
}

func (c *Client) get(ctx context.Context, path string, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) post(ctx context.Context, path string, body, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) put(ctx context.Context, path string, body, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, opts ...requestOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts...)
}

func (c *Client) delete(ctx context.Context, path string, opts ...requestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, opts...)
}

// do issues one request: JSON body in, JSON body out, bearer header when a
// token is present, sentinel mapping on the way back.
func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...requestOption) error {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	target := c.baseURL + path
	if len(options.query) > 0 {
		target += "?" + options.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range options.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, ports.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Observed, logged, not transformed into a redirect: the caller decides.
		c.log.Warn("remote API rejected the bearer token", "method", method, "path", path)
		return fmt.Errorf("%s %s: %w", method, path, ports.ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ports.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %w", method, path, &StatusError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		})
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
