// Package apiclient is the only network boundary of the client: a thin JSON
// client for the BragBoard backend that signs every request with the
// persisted credential.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/bragboard/internal"
)

const traceHeader = "X-Trace-ID"

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// TokenSource yields the bearer credential for a request. An empty token
// sends the request unauthenticated.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

func NewClient(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

// ResponseError is a non-2xx answer from the backend.
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s %s", e.StatusCode, e.Method, e.URL)
}

// ResponseBody exposes the raw body so callers can read backend error
// details.
func (e *ResponseError) ResponseBody() []byte {
	return e.Body
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a backend response.
func StatusCode(err error) int {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// do sends a JSON request and decodes a JSON answer into out when out is
// not nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, req, out)
}

func (c *Client) send(ctx context.Context, req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if traceID := internal.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(traceHeader, traceID)
	}
	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to read credential: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	url := req.URL.String()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logFailure(ctx, req.Method, url, 0, nil, err)
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logFailure(ctx, req.Method, url, resp.StatusCode, nil, err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respErr := &ResponseError{Method: req.Method, URL: url, StatusCode: resp.StatusCode, Body: data}
		c.logFailure(ctx, req.Method, url, resp.StatusCode, data, respErr)
		return respErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logFailure(ctx, req.Method, url, resp.StatusCode, data, err)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) logFailure(ctx context.Context, method, url string, status int, body []byte, err error) {
	c.logger.ErrorContext(ctx, "API request failed",
		"url", url,
		"method", method,
		"status", status,
		"body", string(body),
		"error", err,
		"trace_id", internal.TraceIDFromContext(ctx))
}
