package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"page-search-go/pkg/cli/client"
	"page-search-go/pkg/cli/tui/popup"
	"page-search-go/pkg/config"
	"page-search-go/pkg/controller"
	"page-search-go/pkg/pages"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleListNavigation(t *testing.T) {
	tests := []struct {
		key      string
		selected int
		total    int
		want     int
		handled  bool
	}{
		{"down", 0, 3, 1, true},
		{"j", 2, 3, 2, true},
		{"up", 1, 3, 0, true},
		{"k", 0, 3, 0, true},
		{"enter", 1, 3, 1, false},
	}
	for _, tt := range tests {
		got, handled := handleListNavigation(tt.key, tt.selected, tt.total)
		if got != tt.want || handled != tt.handled {
			t.Errorf("handleListNavigation(%q, %d, %d) = %d, %v; want %d, %v",
				tt.key, tt.selected, tt.total, got, handled, tt.want, tt.handled)
		}
	}
}

func TestClampSelection(t *testing.T) {
	if got := clampSelection(5, 2); got != 1 {
		t.Errorf("clampSelection(5, 2) = %d", got)
	}
	if got := clampSelection(3, 0); got != 0 {
		t.Errorf("clampSelection(3, 0) = %d", got)
	}
}

func TestRenderPageListShowsDeleteSpinner(t *testing.T) {
	entries := []pages.Entry{
		{URL: "https://a.example/x", Label: "a.example/x"},
		{URL: "https://b.example/y", Label: "b.example/y"},
	}
	out := renderPageList(entries, 0, func(url string) bool { return url == "https://b.example/y" }, "SPIN")

	if !strings.Contains(out, "a.example/x") || !strings.Contains(out, "b.example/y") {
		t.Fatalf("labels missing from %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "SPIN") {
		t.Errorf("deleting row = %q, want spinner prefix", last)
	}
}

func TestUserFacingError(t *testing.T) {
	plain := errors.New("boom")
	if got := userFacingError(plain); got != plain {
		t.Errorf("plain error changed: %v", got)
	}
	if userFacingError(nil) != nil {
		t.Error("nil error not preserved")
	}
}

func newTestPopup(t *testing.T) (*ViewportWrapper, *popupModel) {
	t.Helper()
	endpoint, err := config.LoadEndpoint(config.NewMemoryStore())
	if err != nil {
		t.Fatal(err)
	}
	apiClient := client.NewClient(endpoint, time.Second)
	ctrl := controller.New(apiClient, nil)

	w := NewPopupModel(ctrl, endpoint, "https://go.dev/").(*ViewportWrapper)
	return w, w.model.(*popupModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTypingDoesNotTriggerShortcuts(t *testing.T) {
	w, m := newTestPopup(t)

	w.Update(keyRunes("a"))
	if m.focus != focusQuestion {
		t.Fatalf("focus = %v, want question", m.focus)
	}

	_, cmd := w.Update(keyRunes("q"))
	if isQuit(cmd) {
		t.Fatal("q quit while typing")
	}
	w.Update(keyRunes("?"))
	if w.showHelp {
		t.Fatal("? opened help while typing")
	}
	if got := m.question.Value(); got != "q?" {
		t.Errorf("question = %q, want %q", got, "q?")
	}

	w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusNone {
		t.Fatalf("esc did not leave the field")
	}
	if _, cmd := w.Update(keyRunes("q")); !isQuit(cmd) {
		t.Error("q did not quit outside a field")
	}
}

func TestURLFieldPrefilled(t *testing.T) {
	_, m := newTestPopup(t)
	if got := m.urlInput.Value(); got != "https://go.dev/" {
		t.Errorf("url field = %q", got)
	}
	if got := m.settingsInput.Value(); got != config.DefaultBackendURL {
		t.Errorf("settings field = %q", got)
	}
}

func TestIndexWithBlankURLShowsError(t *testing.T) {
	_, m := newTestPopup(t)
	m.urlInput.SetValue("   ")

	if cmd := m.runWithURL(m.ctrl.IndexPage); cmd != nil {
		t.Error("blank URL dispatched a request")
	}
	if m.result.Empty() {
		t.Error("no error shown for blank URL")
	}
}

func TestSwitchingToStatsLoadsThem(t *testing.T) {
	w, m := newTestPopup(t)

	_, cmd := w.Update(keyRunes("3"))
	if m.tab != popup.TabStats {
		t.Fatalf("tab = %d", m.tab)
	}
	if !m.statsLoading || cmd == nil {
		t.Error("stats not requested when tab became visible")
	}
}

func TestSavedNoticeClears(t *testing.T) {
	_, m := newTestPopup(t)

	m.Update(popup.SettingsSavedMsg{BaseURL: "http://localhost:9000"})
	if m.savedNotice != "Saved!" {
		t.Fatalf("savedNotice = %q", m.savedNotice)
	}
	first := m.savedSeq

	m.Update(popup.SettingsSavedMsg{BaseURL: "http://localhost:9001"})
	m.Update(popup.ClearSavedMsg{Seq: first})
	if m.savedNotice == "" {
		t.Error("stale clear removed a newer notice")
	}

	m.Update(popup.ClearSavedMsg{Seq: m.savedSeq})
	if m.savedNotice != "" {
		t.Errorf("savedNotice = %q after clear", m.savedNotice)
	}
}

func TestSaveRejectsInvalidAddress(t *testing.T) {
	_, m := newTestPopup(t)

	msg := m.saveSettingsCmd("not a url")()
	m.Update(msg)
	if m.settingsErr == nil {
		t.Error("invalid address accepted")
	}
	if m.endpoint.BaseURL() != config.DefaultBackendURL {
		t.Errorf("endpoint changed to %q", m.endpoint.BaseURL())
	}
}
