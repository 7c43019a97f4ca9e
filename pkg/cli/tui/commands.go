package tui

import (
	"context"

	"page-search-go/pkg/cli/tui/popup"
	"page-search-go/pkg/controller"
	"page-search-go/pkg/render"
	"page-search-go/pkg/utils"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *popupModel) checkHealthCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return popup.HealthCheckedMsg{Online: ctrl.CheckHealth(context.Background())}
	}
}

func (m *popupModel) loadPagesCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		snap, err := ctrl.RefreshPages(context.Background())
		return popup.PagesLoadedMsg{Snapshot: snap, Err: err}
	}
}

func (m *popupModel) loadStatsCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		rows, err := ctrl.Stats(context.Background())
		return popup.StatsLoadedMsg{Rows: rows, Err: err}
	}
}

func (m *popupModel) saveSettingsCmd(raw string) tea.Cmd {
	endpoint := m.endpoint
	return func() tea.Msg {
		if err := endpoint.Save(raw); err != nil {
			return popup.SettingsSavedMsg{Err: err}
		}
		return popup.SettingsSavedMsg{BaseURL: endpoint.BaseURL()}
	}
}

// actionCmd runs a controller action off the update loop
func (m *popupModel) actionCmd(run func(ctx context.Context) controller.Outcome) tea.Cmd {
	return func() tea.Msg {
		return popup.ActionDoneMsg{Outcome: run(context.Background())}
	}
}

// runWithURL reads the page field once and runs action against it. An
// invalid field is reported in the result area without a request.
func (m *popupModel) runWithURL(action func(ctx context.Context, url string) controller.Outcome) tea.Cmd {
	url, err := utils.ValidateURL(m.urlInput.Value())
	if err != nil {
		m.result = render.Message(err.Error(), render.ToneError)
		return nil
	}
	return m.actionCmd(func(ctx context.Context) controller.Outcome {
		return action(ctx, url)
	})
}
