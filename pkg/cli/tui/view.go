package tui

import (
	"fmt"
	"strings"

	"page-search-go/pkg/actions"
	"page-search-go/pkg/cli/tui/popup"
	"page-search-go/pkg/controller"
	"page-search-go/pkg/pages"

	"github.com/charmbracelet/lipgloss"
)

// busyLabels describe in-flight actions on the actions tab
var busyLabels = []struct {
	kind  actions.Kind
	label string
}{
	{actions.IndexPage, "Indexing page…"},
	{actions.Summarize, "Summarizing…"},
	{actions.Query, "Searching…"},
}

func (m *popupModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case popup.TabActions:
		b.WriteString(m.viewActions())
	case popup.TabPages:
		b.WriteString(m.viewPages())
	case popup.TabStats:
		b.WriteString(m.viewStats())
	case popup.TabSettings:
		b.WriteString(m.viewSettings())
	}
	return b.String()
}

func (m *popupModel) renderTabs() string {
	tabs := make([]string, 0, len(popup.TabNames))
	for i, name := range popup.TabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *popupModel) viewActions() string {
	var b strings.Builder

	b.WriteString(m.urlInput.View() + "\n")
	b.WriteString(helpStyle.Render("i index • s summarize • u edit URL") + "\n\n")

	b.WriteString(boldStyle.Render("Ask a question") + "\n")
	b.WriteString(m.question.View() + "\n")
	if m.focus == focusQuestion {
		b.WriteString(helpStyle.Render("Enter ask • Alt+Enter newline • Esc done") + "\n")
	} else {
		b.WriteString(helpStyle.Render("a to type a question") + "\n")
	}
	b.WriteString("\n")

	tracker := m.ctrl.Tracker()
	for _, bl := range busyLabels {
		if tracker.Busy(bl.kind, "") {
			b.WriteString(renderLoadingState(m.spinner.View(), bl.label))
		}
	}

	if out := renderDisplay(m.result, m.md, m.width-6); out != "" {
		b.WriteString(resultBoxStyle.Width(m.width - 2).Render(out))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *popupModel) viewPages() string {
	var b strings.Builder
	snap := m.ctrl.Pages().Snapshot()

	b.WriteString(boldStyle.Render("Indexed pages"))
	if snap.Loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.pagesErr != nil {
		b.WriteString(renderError(userFacingError(m.pagesErr).Error()) + "\n\n")
	}

	switch {
	case snap.Empty():
		b.WriteString(renderEmptyState(pages.EmptyMessage))
	case len(snap.Entries) == 0 && snap.Loading:
		b.WriteString(renderLoadingState(m.spinner.View(), "Loading pages…"))
	default:
		tracker := m.ctrl.Tracker()
		deleting := func(url string) bool { return tracker.Busy(actions.Delete, url) }
		b.WriteString(renderPageList(snap.Entries, m.selected, deleting, m.spinner.View()))
	}

	if !m.deleteNotice.Empty() {
		b.WriteString("\n" + toneStyle(m.deleteNotice.Tone).Render(m.deleteNotice.BodyText()) + "\n")
	}
	return b.String()
}

func (m *popupModel) viewStats() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("Index statistics"))
	if m.statsLoading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.statsErr != nil {
		b.WriteString(renderError(controller.MsgStatsFailed) + "\n")
		return b.String()
	}
	if m.stats == nil {
		b.WriteString(renderLoadingState(m.spinner.View(), "Loading stats…"))
		return b.String()
	}
	b.WriteString(renderStatRows(m.stats))
	return b.String()
}

func (m *popupModel) viewSettings() string {
	var b strings.Builder
	b.WriteString(boldStyle.Render("Backend") + "\n\n")
	b.WriteString(m.settingsInput.View() + "\n")

	if m.focus == focusSettings {
		b.WriteString(helpStyle.Render("Enter save • Esc cancel") + "\n")
	} else {
		b.WriteString(helpStyle.Render("e to edit") + "\n")
	}

	if m.settingsErr != nil {
		b.WriteString("\n" + renderError(m.settingsErr.Error()) + "\n")
	}
	if m.savedNotice != "" {
		b.WriteString("\n" + renderSuccess(m.savedNotice) + "\n")
	}
	if m.online != nil && !*m.online {
		b.WriteString("\n" + renderWarning("Backend is not reachable at "+m.endpoint.BaseURL()) + "\n")
	}
	return b.String()
}
