package tui

import (
	"strings"

	"page-search-go/pkg/cli/logger"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders answers as terminal markdown, rebuilding the
// glamour renderer only when the wrap width moves noticeably.
type markdownRenderer struct {
	r     *glamour.TermRenderer
	width int
}

func (m *markdownRenderer) get(width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}
	if m.r == nil || abs(m.width-width) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return nil, err
		}
		m.r = r
		m.width = width
	}
	return m.r, nil
}

// Render returns text as styled markdown, or wrapped plain text if glamour fails
func (m *markdownRenderer) Render(text string, width int) string {
	r, err := m.get(width)
	if err != nil {
		logger.LogError(err, "failed to create markdown renderer")
		return wrapText(text, width)
	}
	out, err := r.Render(text)
	if err != nil {
		logger.LogError(err, "failed to render markdown")
		return wrapText(text, width)
	}
	return strings.Trim(out, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
