package tui

import (
	"context"
	"strings"
	"time"

	"page-search-go/pkg/actions"
	"page-search-go/pkg/cli/logger"
	"page-search-go/pkg/cli/tui/popup"
	"page-search-go/pkg/config"
	"page-search-go/pkg/controller"
	"page-search-go/pkg/render"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusNone focus = iota
	focusURL
	focusQuestion
	focusSettings
)

// popupModel is the Bubble Tea model for the search popup: one screen with
// tabs for actions, indexed pages, statistics and settings.
type popupModel struct {
	ctrl     *controller.Controller
	endpoint *config.Endpoint

	tab     int
	focus   focus
	width   int
	spinner spinner.Model
	md      *markdownRenderer

	// nil until the first health probe returns
	online *bool

	// Actions tab
	urlInput textinput.Model
	question textarea.Model
	result   render.Display

	// Pages tab
	selected     int
	pagesErr     error
	deleteNotice render.Display

	// Stats tab
	stats        []render.StatRow
	statsErr     error
	statsLoading bool

	// Settings tab
	settingsInput textinput.Model
	settingsErr   error
	savedNotice   string
	savedSeq      int
}

// NewPopupModel constructs the popup wrapped in the shared viewport shell.
// initialURL prefills the page field and may be empty.
func NewPopupModel(ctrl *controller.Controller, endpoint *config.Endpoint, initialURL string) tea.Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://example.com/article"
	urlInput.Prompt = "URL: "
	urlInput.CharLimit = 2048
	urlInput.SetValue(initialURL)

	question := textarea.New()
	question.Placeholder = "Ask something about your indexed pages…"
	question.ShowLineNumbers = false
	question.Prompt = "> "
	question.CharLimit = 2000
	question.SetHeight(popup.MinQuestionHeight)
	question.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	settingsInput := textinput.New()
	settingsInput.Placeholder = config.DefaultBackendURL
	settingsInput.Prompt = "Backend URL: "
	settingsInput.CharLimit = 512
	settingsInput.SetValue(endpoint.BaseURL())

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	model := &popupModel{
		ctrl:          ctrl,
		endpoint:      endpoint,
		width:         popup.DefaultWidth,
		spinner:       spin,
		md:            &markdownRenderer{},
		urlInput:      urlInput,
		question:      question,
		settingsInput: settingsInput,
	}
	model.resize(popup.DefaultWidth)

	return NewViewportWrapper(model, ViewportConfig{
		Title:       "Page Search",
		ShowHeader:  true,
		ShowFooter:  true,
		UseViewport: true,
		EnableHelp:  true,
		MinWidth:    40,
		MinHeight:   12,
	})
}

func (m *popupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkHealthCmd(), m.loadPagesCmd())
}

// Capturing reports whether a text field owns the keyboard
func (m *popupModel) Capturing() bool {
	return m.focus != focusNone
}

// HelpContent returns shortcuts for the active tab
func (m *popupModel) HelpContent() string {
	return tabHelpContent(m.tab)
}

// Status renders the backend badge for the header
func (m *popupModel) Status() string {
	switch {
	case m.online == nil:
		return mutedStyle.Render("● checking…")
	case *m.online:
		return onlineBadgeStyle.Render("● online")
	default:
		return offlineBadgeStyle.Render("● offline")
	}
}

func (m *popupModel) resize(width int) {
	m.width = width
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	m.urlInput.Width = inner - len(m.urlInput.Prompt)
	m.settingsInput.Width = inner - len(m.settingsInput.Prompt)
	m.question.SetWidth(inner)
}

func (m *popupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.resize(msg.Width)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case popup.HealthCheckedMsg:
		online := msg.Online
		m.online = &online
		return m, nil

	case popup.ActionDoneMsg:
		return m.handleOutcome(msg.Outcome)

	case popup.PagesLoadedMsg:
		m.pagesErr = msg.Err
		m.selected = clampSelection(m.selected, len(msg.Snapshot.Entries))
		return m, nil

	case popup.StatsLoadedMsg:
		m.statsLoading = false
		m.statsErr = msg.Err
		if msg.Err == nil {
			m.stats = msg.Rows
		}
		return m, nil

	case popup.SettingsSavedMsg:
		if msg.Err != nil {
			m.settingsErr = msg.Err
			m.savedNotice = ""
			return m, nil
		}
		m.settingsErr = nil
		m.settingsInput.SetValue(msg.BaseURL)
		m.savedNotice = "Saved!"
		m.savedSeq++
		m.online = nil
		seq := m.savedSeq
		return m, tea.Batch(
			tea.Tick(popup.SavedNoticeDuration, func(time.Time) tea.Msg { return popup.ClearSavedMsg{Seq: seq} }),
			m.checkHealthCmd(),
			m.loadPagesCmd(),
		)

	case popup.ClearSavedMsg:
		if msg.Seq == m.savedSeq {
			m.savedNotice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *popupModel) handleOutcome(out controller.Outcome) (tea.Model, tea.Cmd) {
	if out.Skipped {
		logger.Log("popup: %s skipped", out.Action)
		return m, nil
	}
	m.result = out.Display
	m.deleteNotice = render.Display{}
	if out.Action == actions.Delete {
		m.deleteNotice = out.Display
	}
	if out.Pages != nil {
		m.pagesErr = out.Pages.Err
		m.selected = clampSelection(m.selected, len(out.Pages.Entries))
	}
	if out.Action == actions.Query && out.Err == nil {
		m.question.Reset()
		m.question.SetHeight(popup.MinQuestionHeight)
	}
	return m, nil
}

func (m *popupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "tab":
		return m.switchTab((m.tab + 1) % len(popup.TabNames))
	case "shift+tab":
		return m.switchTab((m.tab + len(popup.TabNames) - 1) % len(popup.TabNames))
	}

	if m.focus != focusNone {
		switch key {
		case "esc":
			m.blur()
			return m, nil
		case "enter":
			return m.submitFocused()
		}
		return m.updateFocused(msg)
	}

	switch key {
	case "1", "2", "3", "4":
		return m.switchTab(int(key[0] - '1'))
	}

	switch m.tab {
	case popup.TabActions:
		return m.handleActionKeys(key)
	case popup.TabPages:
		return m.handlePagesKeys(key)
	case popup.TabStats:
		if key == "r" && !m.statsLoading {
			m.statsLoading = true
			return m, m.loadStatsCmd()
		}
	case popup.TabSettings:
		if key == "e" || key == "enter" {
			m.focus = focusSettings
			m.settingsErr = nil
			return m, m.settingsInput.Focus()
		}
	}
	return m, nil
}

func (m *popupModel) switchTab(tab int) (tea.Model, tea.Cmd) {
	m.blur()
	m.tab = tab
	if tab == popup.TabStats && !m.statsLoading {
		m.statsLoading = true
		return m, m.loadStatsCmd()
	}
	return m, nil
}

func (m *popupModel) blur() {
	m.urlInput.Blur()
	m.question.Blur()
	m.settingsInput.Blur()
	m.focus = focusNone
}

func (m *popupModel) handleActionKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "i":
		return m, m.runWithURL(m.ctrl.IndexPage)
	case "s":
		return m, m.runWithURL(m.ctrl.Summarize)
	case "u":
		m.focus = focusURL
		return m, m.urlInput.Focus()
	case "a", "enter":
		m.focus = focusQuestion
		return m, m.question.Focus()
	}
	return m, nil
}

func (m *popupModel) handlePagesKeys(key string) (tea.Model, tea.Cmd) {
	snap := m.ctrl.Pages().Snapshot()
	if newSelected, handled := handleListNavigation(key, m.selected, len(snap.Entries)); handled {
		m.selected = newSelected
		return m, nil
	}
	switch key {
	case "d", "x", "delete":
		if len(snap.Entries) == 0 {
			return m, nil
		}
		url := snap.Entries[clampSelection(m.selected, len(snap.Entries))].URL
		if m.ctrl.Tracker().Busy(actions.Delete, url) {
			return m, nil
		}
		return m, m.actionCmd(func(ctx context.Context) controller.Outcome {
			return m.ctrl.Delete(ctx, url)
		})
	case "r":
		return m, m.loadPagesCmd()
	}
	return m, nil
}

func (m *popupModel) submitFocused() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusURL:
		m.blur()
		return m, nil
	case focusQuestion:
		text := m.question.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		return m, m.actionCmd(func(ctx context.Context) controller.Outcome {
			return m.ctrl.Query(ctx, text)
		})
	case focusSettings:
		raw := m.settingsInput.Value()
		m.blur()
		return m, m.saveSettingsCmd(raw)
	}
	return m, nil
}

func (m *popupModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case focusQuestion:
		m.question, cmd = m.question.Update(msg)
		m.growQuestion()
	case focusSettings:
		m.settingsInput, cmd = m.settingsInput.Update(msg)
	}
	return m, cmd
}

// growQuestion sizes the question box to its content
func (m *popupModel) growQuestion() {
	h := m.question.LineCount()
	if h < popup.MinQuestionHeight {
		h = popup.MinQuestionHeight
	}
	if h > popup.MaxQuestionHeight {
		h = popup.MaxQuestionHeight
	}
	m.question.SetHeight(h)
}
