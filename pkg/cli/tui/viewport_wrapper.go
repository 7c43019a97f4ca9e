package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"page-search-go/pkg/cli/logger"
)

// capturer is implemented by models that sometimes own the keyboard, such
// as while a text field is focused. The wrapper then forwards q, ? and Esc
// instead of acting on them.
type capturer interface {
	Capturing() bool
}

// helpProvider lets the wrapped model supply context-dependent help
type helpProvider interface {
	HelpContent() string
}

// statusProvider lets the wrapped model add text to the header line
type statusProvider interface {
	Status() string
}

// ViewportWrapper wraps a model with viewport and common command support
type ViewportWrapper struct {
	model    tea.Model
	viewport viewport.Model
	width    int
	height   int
	config   ViewportConfig

	// Common commands
	showHelp    bool
	helpContent string
}

// ViewportConfig configures the wrapper behavior
type ViewportConfig struct {
	Title        string
	ShowHeader   bool
	ShowFooter   bool
	HeaderHeight int           // Fixed header height (0 = auto)
	FooterHeight int           // Fixed footer height (0 = auto)
	UseViewport  bool          // Enable scrolling (false = simple responsive)
	MinWidth     int           // Minimum terminal width
	MinHeight    int           // Minimum terminal height
	EnableHelp   bool          // Enable '?' for help
	HelpContent  func() string // Fallback help text when the model has none
}

// NewViewportWrapper creates a new wrapper around a model
func NewViewportWrapper(model tea.Model, config ViewportConfig) *ViewportWrapper {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	return &ViewportWrapper{
		model:    model,
		viewport: vp,
		config:   config,
		width:    80, // Default
		height:   24, // Default
	}
}

func (w *ViewportWrapper) Init() tea.Cmd {
	if w.model == nil {
		return nil
	}
	return w.model.Init()
}

func (w *ViewportWrapper) capturing() bool {
	c, ok := w.model.(capturer)
	return ok && c.Capturing()
}

func (w *ViewportWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size first
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		logger.Log("ViewportWrapper.Update: WindowSizeMsg, width=%d, height=%d", msg.Width, msg.Height)
		w.width = msg.Width
		w.height = msg.Height

		// Validate minimum size
		if w.config.MinWidth > 0 && w.width < w.config.MinWidth {
			w.width = w.config.MinWidth
		}
		if w.config.MinHeight > 0 && w.height < w.config.MinHeight {
			w.height = w.config.MinHeight
		}

		w.calculateLayout()

		// Forward to wrapped model (it may need size info)
		var cmd tea.Cmd
		if w.model != nil {
			w.model, cmd = w.model.Update(msg)
		}
		return w, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		key := msg.String()
		if key == "ctrl+c" {
			return w, tea.Quit
		}

		// If help is showing, only handle help-related keys
		if w.showHelp {
			switch key {
			case "?", "esc", "q":
				w.showHelp = false
			}
			return w, nil
		}

		if !w.capturing() {
			switch key {
			case "?":
				if w.config.EnableHelp {
					w.showHelp = true
					w.helpContent = w.resolveHelp()
					logger.Log("ViewportWrapper.Update: showing help")
					return w, nil
				}
			case "q", "esc":
				logger.Log("ViewportWrapper.Update: quit key pressed")
				return w, tea.Quit
			}
		}
	}

	// Forward all other messages to wrapped model
	var cmd tea.Cmd
	if w.model != nil {
		w.model, cmd = w.model.Update(msg)
	}

	// The viewport only sees scroll keys and the mouse so it never steals
	// list navigation or typing from the wrapped model.
	if w.config.UseViewport && w.scrollMsg(msg) {
		var vpCmd tea.Cmd
		w.viewport, vpCmd = w.viewport.Update(msg)
		cmd = tea.Batch(cmd, vpCmd)
	}

	return w, cmd
}

func (w *ViewportWrapper) scrollMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return true
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			return true
		}
	}
	return false
}

func (w *ViewportWrapper) resolveHelp() string {
	if hp, ok := w.model.(helpProvider); ok {
		return hp.HelpContent()
	}
	if w.config.HelpContent != nil {
		return w.config.HelpContent()
	}
	return ""
}

func (w *ViewportWrapper) View() string {
	if w.showHelp {
		return w.renderHelpOverlay()
	}

	content := ""
	if w.model != nil {
		content = w.model.View()
	}

	if w.config.UseViewport {
		w.calculateLayout()
		w.viewport.SetContent(content)
		content = w.viewport.View()
	}

	var parts []string
	if w.config.ShowHeader {
		parts = append(parts, w.renderHeader())
	}
	parts = append(parts, content)
	if w.config.ShowFooter {
		parts = append(parts, w.renderFooter())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (w *ViewportWrapper) calculateLayout() {
	headerH := w.config.HeaderHeight
	if headerH == 0 && w.config.ShowHeader {
		headerH = 2 // Default header height
	}

	footerH := w.config.FooterHeight
	if footerH == 0 && w.config.ShowFooter {
		footerH = 1 // Default footer height
	}

	if w.width <= 0 {
		w.width = 80
	}
	if w.height <= 0 {
		w.height = 24
	}

	contentH := w.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	if w.config.UseViewport {
		w.viewport.Width = w.width
		w.viewport.Height = contentH
	}
}

func (w *ViewportWrapper) renderHeader() string {
	title := ""
	if w.config.Title != "" {
		title = renderTitle(w.config.Title)
	}
	if sp, ok := w.model.(statusProvider); ok {
		if status := sp.Status(); status != "" {
			title = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", status)
		}
	}
	return title + "\n" + renderDivider(w.width)
}

func (w *ViewportWrapper) renderFooter() string {
	shortcuts := []string{"tab switch"}
	if w.config.EnableHelp {
		shortcuts = append(shortcuts, "? help")
	}
	if w.config.UseViewport {
		shortcuts = append(shortcuts, "pgup/pgdn scroll")
	}
	shortcuts = append(shortcuts, "q quit")

	return helpStyle.Render(strings.Join(shortcuts, " • "))
}

func (w *ViewportWrapper) renderHelpOverlay() string {
	helpText := w.helpContent
	if helpText == "" {
		helpText = "No help available"
	}

	overlayStyle := lipgloss.NewStyle().
		Width(w.width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	title := titleStyle.Render("Keyboard Shortcuts")
	closeHint := helpStyle.Render("Press '?' or Esc to close")

	return overlayStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", helpText, "", closeHint),
	)
}
