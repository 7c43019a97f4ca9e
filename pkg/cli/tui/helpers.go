package tui

import (
	"errors"
	"fmt"
	"strings"

	"page-search-go/pkg/cli/client"
	"page-search-go/pkg/pages"
	"page-search-go/pkg/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// renderEmptyState renders a standard empty state message
func renderEmptyState(message string) string {
	return mutedStyle.Render(message) + "\n"
}

// renderLoadingState renders a standard loading message
func renderLoadingState(spin, message string) string {
	return spin + " " + infoStyle.Render(message) + "\n"
}

// renderPageList renders the indexed-page list with a selection marker.
// Rows with a delete in flight show the spinner instead of the marker.
func renderPageList(entries []pages.Entry, selected int, deleting func(url string) bool, spin string) string {
	var b strings.Builder
	for i, e := range entries {
		marker := " "
		if i == selected {
			marker = selectedMarkerStyle.Render("→")
		}
		if deleting != nil && deleting(e.URL) {
			marker = spin
		}

		labelStyle := pageLabelStyle
		if i == selected {
			labelStyle = selectedStyle
		}

		b.WriteString(fmt.Sprintf("%s %s\n", marker, labelStyle.Render(e.Label)))
		if i == selected && e.Label != e.URL {
			b.WriteString(fmt.Sprintf("  %s\n", pageURLStyle.Render(e.URL)))
		}
	}
	return b.String()
}

// renderStatRows renders labeled statistics, one per block
func renderStatRows(rows []render.StatRow) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fieldLabelStyle.Render(r.Label + ":"))
		b.WriteString(" " + boldStyle.Render(r.Value) + "\n")
		b.WriteString("  " + mutedStyle.Render(r.Description) + "\n")
	}
	return b.String()
}

// renderDisplay renders the shared result area. Answers go through the
// markdown renderer, plain messages are styled by tone.
func renderDisplay(d render.Display, md *markdownRenderer, width int) string {
	if d.Empty() {
		return ""
	}

	var body string
	if d.Format == render.FormatMarkup && md != nil {
		body = md.Render(d.BodyText(), width)
	} else {
		body = toneStyle(d.Tone).Render(wrapText(d.BodyText(), width))
	}

	if len(d.Attributions) == 0 {
		return body
	}

	lines := []string{body}
	for _, a := range d.Attributions {
		lines = append(lines, mutedStyle.Render(a.Label)+" "+sourceStyle.Render(a.URL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// wrapText wraps text to a specified width, breaking at word boundaries
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// handleListNavigation handles common navigation keys for list views (up/down/j/k)
// Returns the new selected index and whether navigation occurred
func handleListNavigation(key string, selected int, total int) (newSelected int, handled bool) {
	switch key {
	case "up", "k":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "down", "j":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	}
	return selected, false
}

// clampSelection keeps a selection index inside a list of n items
func clampSelection(selected, n int) int {
	if selected >= n {
		selected = n - 1
	}
	if selected < 0 {
		selected = 0
	}
	return selected
}

// userFacingError converts structured client errors into friendly messages,
// while leaving other error types unchanged.
func userFacingError(err error) error {
	if err == nil {
		return nil
	}

	var clientErr *client.Error
	if errors.As(err, &clientErr) {
		return errors.New(clientErr.UserMessage())
	}

	return err
}
