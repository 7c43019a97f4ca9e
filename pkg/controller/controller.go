// Package controller runs user actions against the search backend: it guards
// re-entry per action, calls the client, renders the outcome and keeps the
// indexed-page list in step with every mutation.
package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"page-search-go/pkg/actions"
	"page-search-go/pkg/cli/logger"
	"page-search-go/pkg/models"
	"page-search-go/pkg/pages"
	"page-search-go/pkg/render"
)

// User-facing messages for each action outcome
const (
	MsgIndexed       = "Page indexed."
	MsgIndexFailed   = "Error indexing page."
	MsgSummaryFailed = "Error summarizing page."
	MsgQueryFailed   = "Error querying."
	MsgDeleteFailed  = "Error deleting page."
	MsgStatsFailed   = "Error loading stats."
)

// Backend is the search client surface the controller drives
type Backend interface {
	CheckHealth(ctx context.Context) error
	AddPage(ctx context.Context, url string) error
	Summarize(ctx context.Context, url string) (*models.SummaryResult, error)
	Query(ctx context.Context, text string, limit int) (*models.QueryResult, error)
	DeletePage(ctx context.Context, url string) error
	ListIndexedPages(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (*models.IndexStats, error)
}

// Outcome is the result of one triggered action
type Outcome struct {
	Action  actions.Kind
	Key     string // target URL for Delete
	Skipped bool   // the action was already in flight, or had nothing to send
	Display render.Display
	Pages   *pages.Snapshot // set when the action refreshed the page list
	Err     error           // underlying failure, for logging only
}

// Controller coordinates actions, rendering and the page list
type Controller struct {
	backend Backend
	source  PageSource
	tracker *actions.Tracker
	pages   *pages.Reconciler

	mu     sync.Mutex
	result render.Display
}

// New creates a controller. source may be nil when callers always pass URLs.
func New(backend Backend, source PageSource) *Controller {
	return &Controller{
		backend: backend,
		source:  source,
		tracker: actions.NewTracker(),
		pages:   pages.NewReconciler(backend),
	}
}

// Tracker exposes busy state for UI reflection
func (c *Controller) Tracker() *actions.Tracker {
	return c.tracker
}

// Pages returns the indexed-page reconciler
func (c *Controller) Pages() *pages.Reconciler {
	return c.pages
}

// Result returns the content of the shared result area. The last action to
// complete wins.
func (c *Controller) Result() render.Display {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

func (c *Controller) show(d render.Display) render.Display {
	c.mu.Lock()
	c.result = d
	c.mu.Unlock()
	return d
}

// CheckHealth reports whether the backend is online
func (c *Controller) CheckHealth(ctx context.Context) bool {
	if err := c.backend.CheckHealth(ctx); err != nil {
		logger.Log("backend offline: %v", err)
		return false
	}
	return true
}

// IndexPage adds url to the index and refreshes the page list on success
func (c *Controller) IndexPage(ctx context.Context, url string) Outcome {
	out := Outcome{Action: actions.IndexPage}
	if !c.tracker.TryBegin(actions.IndexPage, "") {
		out.Skipped = true
		return out
	}
	defer c.tracker.End(actions.IndexPage, "")

	if err := c.backend.AddPage(ctx, url); err != nil {
		logger.LogError(err, "index page %s", url)
		out.Err = err
		out.Display = c.show(render.Message(MsgIndexFailed, render.ToneError))
		return out
	}

	out.Display = c.show(render.Message(MsgIndexed, render.ToneSuccess))
	snap, _ := c.pages.Refresh(ctx)
	out.Pages = &snap
	return out
}

// Summarize renders a summary of url
func (c *Controller) Summarize(ctx context.Context, url string) Outcome {
	out := Outcome{Action: actions.Summarize}
	if !c.tracker.TryBegin(actions.Summarize, "") {
		out.Skipped = true
		return out
	}
	defer c.tracker.End(actions.Summarize, "")

	res, err := c.backend.Summarize(ctx, url)
	if err != nil {
		logger.LogError(err, "summarize %s", url)
		out.Err = err
		out.Display = c.show(render.Message(MsgSummaryFailed, render.ToneError))
		return out
	}

	out.Display = c.show(render.Summary(res))
	return out
}

// Query asks a question over indexed content. Blank text is ignored without
// contacting the backend.
func (c *Controller) Query(ctx context.Context, text string) Outcome {
	out := Outcome{Action: actions.Query}
	text = strings.TrimSpace(text)
	if text == "" {
		out.Skipped = true
		return out
	}
	if !c.tracker.TryBegin(actions.Query, "") {
		out.Skipped = true
		return out
	}
	defer c.tracker.End(actions.Query, "")

	res, err := c.backend.Query(ctx, text, models.DefaultQueryLimit)
	if err != nil {
		logger.LogError(err, "query %q", text)
		out.Err = err
		out.Display = c.show(render.Message(MsgQueryFailed, render.ToneError))
		return out
	}

	out.Display = c.show(render.Query(res))
	return out
}

// Delete removes url from the index. The page list is refetched whatever
// the delete reported.
func (c *Controller) Delete(ctx context.Context, url string) Outcome {
	out := Outcome{Action: actions.Delete, Key: url}
	if !c.tracker.TryBegin(actions.Delete, url) {
		out.Skipped = true
		return out
	}
	defer c.tracker.End(actions.Delete, url)

	snap, err := c.pages.Delete(ctx, url)
	out.Pages = &snap
	if err != nil {
		out.Err = err
		out.Display = c.show(render.Message(MsgDeleteFailed, render.ToneError))
		return out
	}

	out.Display = c.show(render.Message(fmt.Sprintf("Deleted: %s", url), render.ToneSuccess))
	return out
}

// RefreshPages refetches the indexed-page list
func (c *Controller) RefreshPages(ctx context.Context) (pages.Snapshot, error) {
	return c.pages.Refresh(ctx)
}

// Stats loads index statistics
func (c *Controller) Stats(ctx context.Context) ([]render.StatRow, error) {
	s, err := c.backend.GetStats(ctx)
	if err != nil {
		logger.LogError(err, "load stats")
		return nil, fmt.Errorf("%s: %w", MsgStatsFailed, err)
	}
	return render.Stats(s), nil
}

// currentURL reads the page source once for a triggered action
func (c *Controller) currentURL(ctx context.Context, kind actions.Kind) (string, *Outcome) {
	if c.source == nil {
		return "", &Outcome{Action: kind, Skipped: true, Err: fmt.Errorf("no page source configured")}
	}
	url, err := c.source.CurrentURL(ctx)
	if err != nil {
		return "", &Outcome{
			Action:  kind,
			Err:     err,
			Display: c.show(render.Message(err.Error(), render.ToneError)),
		}
	}
	return url, nil
}

// IndexCurrentPage indexes the page reported by the page source
func (c *Controller) IndexCurrentPage(ctx context.Context) Outcome {
	url, failed := c.currentURL(ctx, actions.IndexPage)
	if failed != nil {
		return *failed
	}
	return c.IndexPage(ctx, url)
}

// SummarizeCurrentPage summarizes the page reported by the page source
func (c *Controller) SummarizeCurrentPage(ctx context.Context) Outcome {
	url, failed := c.currentURL(ctx, actions.Summarize)
	if failed != nil {
		return *failed
	}
	return c.Summarize(ctx, url)
}
