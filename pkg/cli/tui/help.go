package tui

import (
	"fmt"
	"strings"

	"page-search-go/pkg/cli/tui/popup"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// CommonHelpContent returns help for commands available on every tab
func CommonHelpContent() string {
	items := []HelpItem{
		{"Tab / Shift+Tab", "Next / previous tab"},
		{"?", "Toggle help"},
		{"q / Esc", "Quit (Esc leaves a focused field first)"},
		{"Ctrl+C", "Force quit"},
	}
	return renderHelpItems(items)
}

// ActionsHelpContent returns help for the actions tab
func ActionsHelpContent() string {
	items := []HelpItem{
		{"i", "Index the page URL"},
		{"s", "Summarize the page URL"},
		{"u", "Edit the page URL"},
		{"a", "Ask a question"},
		{"Enter", "Submit the focused field"},
		{"Esc", "Leave the focused field"},
	}
	return renderHelpItems(items)
}

// PagesHelpContent returns help for the indexed pages tab
func PagesHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Navigate page list"},
		{"d / x", "Delete selected page"},
		{"r", "Reload list"},
	}
	return renderHelpItems(items)
}

// StatsHelpContent returns help for the stats tab
func StatsHelpContent() string {
	return renderHelpItems([]HelpItem{{"r", "Reload statistics"}})
}

// SettingsHelpContent returns help for the settings tab
func SettingsHelpContent() string {
	items := []HelpItem{
		{"e", "Edit backend URL"},
		{"Enter", "Save"},
		{"Esc", "Cancel editing"},
	}
	return renderHelpItems(items)
}

// tabHelpContent combines the active tab's shortcuts with the common ones
func tabHelpContent(tab int) string {
	var b strings.Builder
	b.WriteString(boldStyle.Render(popup.TabNames[tab]) + "\n")
	switch tab {
	case popup.TabActions:
		b.WriteString(ActionsHelpContent())
	case popup.TabPages:
		b.WriteString(PagesHelpContent())
	case popup.TabStats:
		b.WriteString(StatsHelpContent())
	case popup.TabSettings:
		b.WriteString(SettingsHelpContent())
	}
	b.WriteString("\n" + boldStyle.Render("General") + "\n")
	b.WriteString(CommonHelpContent())
	return b.String()
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	for _, item := range items {
		keyStyle := boldStyle.Foreground(colorPrimary)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
