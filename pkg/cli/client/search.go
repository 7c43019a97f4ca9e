package client

import (
	"context"
	"net/http"
	"strings"

	"page-search-go/pkg/cli/logger"
	"page-search-go/pkg/models"
)

// CheckHealth verifies the backend is available.
// Any failure is reported as an Unreachable error.
func (c *Client) CheckHealth(ctx context.Context) error {
	req, err := c.buildRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return newUnreachableError(0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogError(err, "health: backend not reachable")
		return newUnreachableError(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newUnreachableError(resp.StatusCode, nil)
	}
	return nil
}

// Summarize requests a summary of url. The result may carry a backend
// error string instead of a summary.
func (c *Client) Summarize(ctx context.Context, url string) (*models.SummaryResult, error) {
	var result models.SummaryResult
	if err := c.doJSONRequest(ctx, "summarize", "/summaries", models.PageRequest{URL: url}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Query asks a free-text question over indexed content
func (c *Client) Query(ctx context.Context, text string, limit int) (*models.QueryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = models.DefaultQueryLimit
	}

	var result models.QueryResult
	payload := models.QueryRequest{Query: text, K: limit}
	if err := c.doJSONRequest(ctx, "query", "/queries", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStats retrieves index statistics
func (c *Client) GetStats(ctx context.Context) (*models.IndexStats, error) {
	var stats models.IndexStats
	if err := c.doGetRequest(ctx, "stats", "/index-stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
