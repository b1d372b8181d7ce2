package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"social-news-go/pkg/cli/logger"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// API paths served by the news host.
const (
	NewsPath = "/api/news"
	LinkPath = "/api/link"
)

// Client is an HTTP client for the social news API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	// Remove trailing slash from base URL
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// buildRequest creates an HTTP request with proper headers
func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// doRequest performs an HTTP request and decodes a JSON response into result
func (c *Client) doRequest(req *http.Request, result interface{}) error {
	requestID := req.Header.Get("X-Request-ID")
	logger.Log("%s %s request_id=%s", req.Method, req.URL.Path, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyRequestError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyRequestError(err)
	}
	logger.Log("%s %s request_id=%s status=%d bytes=%d", req.Method, req.URL.Path, requestID, resp.StatusCode, len(body))

	// Check for HTTP errors
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != "" {
			return newStatusError(resp.StatusCode, errorResp.Error)
		}
		errorMsg := strings.TrimSpace(string(body))
		if errorMsg == "" {
			errorMsg = resp.Status
		}
		return newStatusError(resp.StatusCode, errorMsg)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return newDecodeError(err)
		}
	}

	return nil
}

// doGetRequest performs a GET request
func (c *Client) doGetRequest(ctx context.Context, path string, result interface{}) error {
	req, err := c.buildRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	return c.doRequest(req, result)
}
