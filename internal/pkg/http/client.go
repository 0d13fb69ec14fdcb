package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	appctx "github.com/piresc/saferoute/internal/pkg/context"
	"github.com/piresc/saferoute/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
)

// Config holds the backend client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a JSON client for the Safe Route backend. Every request carries
// the current bearer token when one is set.
type Client struct {
	baseURL    string
	httpClient *nethttp.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a new backend client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// SetToken replaces the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodPost, endpoint, body)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodPut, endpoint, body)
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodPatch, endpoint, body)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodDelete, endpoint, nil)
}

// Do sends the request and returns the raw response. Non-2xx statuses are
// not treated as errors here; see DoJSON.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := strings.TrimRight(c.baseURL, "/") + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := appctx.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("request_id", requestID),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("request_id", requestID),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}

// DoJSON sends the request and decodes a 2xx body into result. A non-2xx
// response is returned as *HTTPError carrying the server detail. 204 and a
// nil result skip decoding.
func (c *Client) DoJSON(ctx context.Context, method, endpoint string, body, result interface{}) error {
	resp, err := c.Do(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return newHTTPError(method, endpoint, resp.StatusCode, raw)
	}

	if resp.StatusCode == nethttp.StatusNoContent || result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

// GetJSON performs a GET request and decodes the JSON response
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.DoJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request and decodes the JSON response
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.DoJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// PutJSON performs a PUT request and decodes the JSON response
func (c *Client) PutJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.DoJSON(ctx, nethttp.MethodPut, endpoint, body, result)
}

// PatchJSON performs a PATCH request and decodes the JSON response
func (c *Client) PatchJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.DoJSON(ctx, nethttp.MethodPatch, endpoint, body, result)
}

// DeleteJSON performs a DELETE request, failing on a non-2xx status
func (c *Client) DeleteJSON(ctx context.Context, endpoint string) error {
	return c.DoJSON(ctx, nethttp.MethodDelete, endpoint, nil, nil)
}
