package controller

import (
	"context"
	"fmt"
	"strings"

	"page-search-go/pkg/utils"

	"github.com/atotto/clipboard"
)

// PageSource supplies the URL of the page the user is looking at
type PageSource interface {
	CurrentURL(ctx context.Context) (string, error)
}

// StaticPage always returns the same URL
type StaticPage string

func (p StaticPage) CurrentURL(ctx context.Context) (string, error) {
	return utils.ValidateURL(string(p))
}

// ClipboardPage reads the URL the user last copied, typically from the
// browser address bar.
type ClipboardPage struct {
	// read is swapped in tests
	read func() (string, error)
}

func NewClipboardPage() *ClipboardPage {
	return &ClipboardPage{read: clipboard.ReadAll}
}

func (p *ClipboardPage) CurrentURL(ctx context.Context) (string, error) {
	text, err := p.read()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "http://") && !strings.HasPrefix(text, "https://") {
		return "", fmt.Errorf("clipboard does not contain a web page URL")
	}
	return utils.ValidateURL(text)
}
