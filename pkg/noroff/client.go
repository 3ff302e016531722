package noroff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"holidaze/pkg/logger"
)

const (
	DefaultBaseURL = "https://v2.api.noroff.dev/"
	APIKeyHeader   = "X-Noroff-API-Key"
)

// ErrTransport wraps failures that happened before an HTTP response was received
var ErrTransport = errors.New("noroff: transport failure")

// Config holds the upstream connection settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the Noroff v2 REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

// Request describes one upstream call
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   interface{}
}

// NewClient creates a client with its own http.Client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.GetDefault(),
	}
}

// WithLogger returns a copy of the client that logs through l
func (c *Client) WithLogger(l *logger.Logger) *Client {
	clone := *c
	clone.logger = l
	return &clone
}

// Do performs the request and decodes a 2xx JSON body into out (when out is not nil).
// Non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	start := time.Now()

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%w: %s %s: %v", ErrTransport, req.Method, req.Path, err)
		c.logger.LogUpstreamRequest(ctx, req.Method, req.Path, 0, time.Since(start), err)
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		err = fmt.Errorf("%w: reading %s response: %v", ErrTransport, req.Path, err)
		c.logger.LogUpstreamRequest(ctx, req.Method, req.Path, res.StatusCode, time.Since(start), err)
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := newAPIError(res, body)
		c.logger.LogUpstreamRequest(ctx, req.Method, req.Path, res.StatusCode, time.Since(start), apiErr)
		return apiErr
	}

	c.logger.LogUpstreamRequest(ctx, req.Method, req.Path, res.StatusCode, time.Since(start), nil)

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.Path, err)
	}

	return nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := c.baseURL + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if req.Body != nil && req.Method != http.MethodGet {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(APIKeyHeader, c.apiKey)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	return httpReq, nil
}
