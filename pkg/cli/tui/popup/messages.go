package popup

import (
	"page-search-go/pkg/controller"
	"page-search-go/pkg/pages"
	"page-search-go/pkg/render"
)

// HealthCheckedMsg is emitted when the backend health probe completes
type HealthCheckedMsg struct {
	Online bool
}

// ActionDoneMsg is emitted when an index, summarize, query or delete action finishes
type ActionDoneMsg struct {
	Outcome controller.Outcome
}

// PagesLoadedMsg is emitted when the indexed-page list has been refetched
type PagesLoadedMsg struct {
	Snapshot pages.Snapshot
	Err      error
}

// StatsLoadedMsg is emitted when index statistics have been fetched
type StatsLoadedMsg struct {
	Rows []render.StatRow
	Err  error
}

// SettingsSavedMsg is emitted when the backend address has been saved
type SettingsSavedMsg struct {
	BaseURL string
	Err     error
}

// ClearSavedMsg hides the settings confirmation. Seq ties it to the save
// that scheduled it so a later save is not cleared early.
type ClearSavedMsg struct {
	Seq int
}
