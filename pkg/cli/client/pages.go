package client

import (
	"context"

	"page-search-go/pkg/models"
)

// AddPage asks the backend to index url
func (c *Client) AddPage(ctx context.Context, url string) error {
	var ack models.Ack
	return c.doJSONRequest(ctx, "add page", "/indexed-pages", models.PageRequest{URL: url}, &ack)
}

// ListIndexedPages retrieves every indexed URL
func (c *Client) ListIndexedPages(ctx context.Context) ([]string, error) {
	var pages models.IndexedPages
	if err := c.doGetRequest(ctx, "list pages", "/indexed-pages", &pages); err != nil {
		return nil, err
	}
	if pages.URLs == nil {
		return []string{}, nil
	}
	return pages.URLs, nil
}

// DeletePage removes url from the index
func (c *Client) DeletePage(ctx context.Context, url string) error {
	var ack models.Ack
	return c.doJSONRequest(ctx, "delete page", "/delete-indexed-pages", models.PageRequest{URL: url}, &ack)
}
