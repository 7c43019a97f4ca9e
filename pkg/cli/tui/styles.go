package tui

import (
	"strings"

	"page-search-go/pkg/render"

	"github.com/charmbracelet/lipgloss"
)

// Define a consistent color palette
var (
	// Colors
	colorPrimary   = lipgloss.Color("62")  // Purple/blue
	colorSecondary = lipgloss.Color("244") // Gray
	colorSuccess   = lipgloss.Color("42")  // Green
	colorError     = lipgloss.Color("196") // Red
	colorWarning   = lipgloss.Color("214") // Orange/Yellow
	colorInfo      = lipgloss.Color("39")  // Cyan
	colorMuted     = lipgloss.Color("240") // Dark gray
	colorBorder    = lipgloss.Color("238") // Border gray
)

// Reusable style definitions
var (
	// Title/Header styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Text styles
	boldStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	// Tabs
	tabStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)

	// Backend status badge
	onlineBadgeStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	offlineBadgeStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	// Page list styles
	pageLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pageURLStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Field label styles
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginRight(2)

	// List/item styles
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	selectedMarkerStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Result area
	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Underline(true)

	// Divider
	dividerStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Helper functions for common formatting patterns
func renderTitle(title string) string {
	return titleStyle.Render(title)
}

func renderSuccess(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func renderError(msg string) string {
	return errorStyle.Render("❌ " + msg)
}

func renderWarning(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

func renderDivider(length int) string {
	if length < 1 {
		length = 1
	}
	return dividerStyle.Render(strings.Repeat("─", length))
}

// toneStyle picks the style for a message display
func toneStyle(t render.Tone) lipgloss.Style {
	switch t {
	case render.ToneSuccess:
		return successStyle
	case render.ToneError:
		return errorStyle
	default:
		return lipgloss.NewStyle()
	}
}
