package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"page-search-go/pkg/cli/logger"

	"github.com/google/uuid"
)

// BaseURLSource supplies the backend base address for each request
type BaseURLSource interface {
	BaseURL() string
}

// StaticBase is a fixed base address
type StaticBase string

func (s StaticBase) BaseURL() string {
	return strings.TrimSuffix(string(s), "/")
}

// Client is an HTTP client for the page search backend
type Client struct {
	base       BaseURLSource
	httpClient *http.Client
}

// NewClient creates a new backend client. The base address is read on every
// request so that a saved endpoint applies to the next call.
// A timeout of zero leaves requests bounded only by their context.
func NewClient(base BaseURLSource, timeout time.Duration) *Client {
	return &Client{
		base: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// buildRequest creates an HTTP request with proper headers
func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", strings.TrimSuffix(c.base.BaseURL(), "/"), path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// doRequest performs an HTTP request and decodes a JSON response into result
func (c *Client) doRequest(op string, req *http.Request, result interface{}) error {
	reqID := req.Header.Get("X-Request-ID")
	logger.Log("%s: %s %s request_id=%s", op, req.Method, req.URL.Path, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError(err, "%s: request failed request_id=%s", op, reqID)
		return newRequestFailedError(op, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newRequestFailedError(op, resp.StatusCode, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		msg := strings.TrimSpace(string(body))
		if err := json.Unmarshal(body, &errorResp); err == nil {
			if errorResp.Error != "" {
				msg = errorResp.Error
			} else if errorResp.Detail != "" {
				msg = errorResp.Detail
			}
		}
		if msg == "" {
			msg = resp.Status
		}
		logger.Log("%s: status %d request_id=%s: %s", op, resp.StatusCode, reqID, msg)
		return newRequestFailedError(op, resp.StatusCode, msg, nil)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return newRequestFailedError(op, resp.StatusCode, "failed to parse response", err)
		}
	}

	return nil
}

// doJSONRequest performs a JSON POST request
func (c *Client) doJSONRequest(ctx context.Context, op, path string, payload interface{}, result interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return newRequestFailedError(op, 0, "failed to marshal request", err)
	}

	req, err := c.buildRequest(ctx, http.MethodPost, path, bytes.NewReader(jsonData))
	if err != nil {
		return newRequestFailedError(op, 0, "", err)
	}

	return c.doRequest(op, req, result)
}

// doGetRequest performs a GET request
func (c *Client) doGetRequest(ctx context.Context, op, path string, result interface{}) error {
	req, err := c.buildRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return newRequestFailedError(op, 0, "", err)
	}

	return c.doRequest(op, req, result)
}
