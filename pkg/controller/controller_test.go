package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"page-search-go/pkg/actions"
	"page-search-go/pkg/models"
	"page-search-go/pkg/pages"
	"page-search-go/pkg/render"
)

// fakeBackend records calls and serves an in-memory index
type fakeBackend struct {
	mu    sync.Mutex
	urls  []string
	calls map[string]int

	summary   *models.SummaryResult
	query     *models.QueryResult
	stats     *models.IndexStats
	failOps   map[string]error
	healthErr error

	// gate, when set, blocks Summarize until closed
	gate    chan struct{}
	entered chan struct{}
}

func newFakeBackend(urls ...string) *fakeBackend {
	return &fakeBackend{urls: urls, calls: map[string]int{}, failOps: map[string]error{}}
}

func (f *fakeBackend) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.failOps[op]
}

func (f *fakeBackend) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeBackend) CheckHealth(ctx context.Context) error {
	f.record("health")
	return f.healthErr
}

func (f *fakeBackend) AddPage(ctx context.Context, url string) error {
	if err := f.record("add"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.urls {
		if u == url {
			return nil
		}
	}
	f.urls = append(f.urls, url)
	return nil
}

func (f *fakeBackend) Summarize(ctx context.Context, url string) (*models.SummaryResult, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if err := f.record("summarize"); err != nil {
		return nil, err
	}
	return f.summary, nil
}

func (f *fakeBackend) Query(ctx context.Context, text string, limit int) (*models.QueryResult, error) {
	if err := f.record("query"); err != nil {
		return nil, err
	}
	if limit != models.DefaultQueryLimit {
		return nil, errors.New("unexpected limit")
	}
	return f.query, nil
}

func (f *fakeBackend) DeletePage(ctx context.Context, url string) error {
	if err := f.record("delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.urls {
		if u == url {
			f.urls = append(f.urls[:i], f.urls[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBackend) ListIndexedPages(ctx context.Context) ([]string, error) {
	if err := f.record("list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.urls))
	copy(out, f.urls)
	return out, nil
}

func (f *fakeBackend) GetStats(ctx context.Context) (*models.IndexStats, error) {
	if err := f.record("stats"); err != nil {
		return nil, err
	}
	return f.stats, nil
}

func countURL(snap *pages.Snapshot, target string) int {
	n := 0
	for _, e := range snap.Entries {
		if e.URL == target {
			n++
		}
	}
	return n
}

func TestIndexPageRefreshesList(t *testing.T) {
	backend := newFakeBackend("https://a.example/")
	c := New(backend, nil)

	out := c.IndexPage(context.Background(), "https://b.example/")
	if out.Skipped || out.Err != nil {
		t.Fatalf("IndexPage() = %+v", out)
	}
	if out.Display.Body != MsgIndexed {
		t.Errorf("Body = %q", out.Display.Body)
	}
	if out.Pages == nil {
		t.Fatal("Pages = nil, want refreshed snapshot")
	}
	if n := countURL(out.Pages, "https://b.example/"); n != 1 {
		t.Errorf("new URL listed %d times, want 1", n)
	}
	if c.Tracker().Busy(actions.IndexPage, "") {
		t.Error("IndexPage still busy")
	}
}

func TestIndexPageFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.failOps["add"] = errors.New("connection refused")
	c := New(backend, nil)

	out := c.IndexPage(context.Background(), "https://b.example/")
	if out.Display.Body != MsgIndexFailed || out.Display.Tone != render.ToneError {
		t.Errorf("Display = %+v", out.Display)
	}
	if out.Pages != nil || backend.count("list") != 0 {
		t.Error("failed add should not refresh")
	}
	if c.Tracker().Busy(actions.IndexPage, "") {
		t.Error("IndexPage still busy after failure")
	}
}

func TestSecondTriggerWhileBusyIsNoop(t *testing.T) {
	backend := newFakeBackend()
	backend.summary = &models.SummaryResult{Summary: "done"}
	backend.gate = make(chan struct{})
	backend.entered = make(chan struct{}, 1)
	c := New(backend, nil)

	first := make(chan Outcome)
	go func() { first <- c.Summarize(context.Background(), "https://a.example/") }()
	<-backend.entered

	second := c.Summarize(context.Background(), "https://a.example/")
	if !second.Skipped {
		t.Errorf("second Summarize() = %+v, want skipped", second)
	}
	if !c.Tracker().Busy(actions.Summarize, "") {
		t.Error("Summarize not busy while in flight")
	}

	close(backend.gate)
	out := <-first
	if out.Skipped || out.Display.Body != "done" {
		t.Errorf("first Summarize() = %+v", out)
	}
	if got := backend.count("summarize"); got != 1 {
		t.Errorf("summarize calls = %d, want 1", got)
	}
	if c.Tracker().Busy(actions.Summarize, "") {
		t.Error("Summarize still busy")
	}
}

func TestSummarizeSoftErrorAndFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.summary = &models.SummaryResult{Error: "No content found for this URL. Please index it first."}
	c := New(backend, nil)

	out := c.Summarize(context.Background(), "https://a.example/")
	if out.Err != nil {
		t.Errorf("soft error surfaced as failure: %v", out.Err)
	}
	if out.Display.Body != backend.summary.Error {
		t.Errorf("Body = %q", out.Display.Body)
	}

	backend.failOps["summarize"] = errors.New("500")
	out = c.Summarize(context.Background(), "https://a.example/")
	if out.Display.Body != MsgSummaryFailed {
		t.Errorf("Body = %q, want %q", out.Display.Body, MsgSummaryFailed)
	}
	if c.Result().Body != MsgSummaryFailed {
		t.Errorf("Result() = %+v", c.Result())
	}
}

func TestQuery(t *testing.T) {
	backend := newFakeBackend()
	backend.query = &models.QueryResult{Answer: "X", FoundAnswer: true, SourceURLs: []string{"http://a", "http://b"}}
	c := New(backend, nil)

	out := c.Query(context.Background(), "  what is X?  ")
	if out.Display.Body != "X" || len(out.Display.Attributions) != 2 {
		t.Errorf("Display = %+v", out.Display)
	}

	for _, blank := range []string{"", "   ", "\n"} {
		if out := c.Query(context.Background(), blank); !out.Skipped {
			t.Errorf("Query(%q) not skipped", blank)
		}
	}
	if got := backend.count("query"); got != 1 {
		t.Errorf("query calls = %d, want 1", got)
	}

	backend.failOps["query"] = errors.New("timeout")
	if out := c.Query(context.Background(), "again"); out.Display.Body != MsgQueryFailed {
		t.Errorf("Body = %q", out.Display.Body)
	}
}

func TestDelete(t *testing.T) {
	backend := newFakeBackend("https://a.example/", "https://b.example/")
	c := New(backend, nil)

	out := c.Delete(context.Background(), "https://a.example/")
	if out.Display.Body != "Deleted: https://a.example/" {
		t.Errorf("Body = %q", out.Display.Body)
	}
	if countURL(out.Pages, "https://a.example/") != 0 {
		t.Error("deleted URL still listed")
	}
	if c.Tracker().Busy(actions.Delete, "https://a.example/") {
		t.Error("delete key still busy")
	}
}

func TestDeleteFailureStillRefreshes(t *testing.T) {
	backend := newFakeBackend("https://a.example/")
	backend.failOps["delete"] = errors.New("500")
	c := New(backend, nil)

	out := c.Delete(context.Background(), "https://a.example/")
	if out.Display.Body != MsgDeleteFailed {
		t.Errorf("Body = %q", out.Display.Body)
	}
	if backend.count("list") != 1 || out.Pages == nil || len(out.Pages.Entries) != 1 {
		t.Errorf("expected one refresh showing backend truth, got %+v", out.Pages)
	}
}

func TestDeleteKeyedPerURL(t *testing.T) {
	c := New(newFakeBackend("https://a.example/", "https://b.example/"), nil)
	c.Tracker().TryBegin(actions.Delete, "https://a.example/")

	if out := c.Delete(context.Background(), "https://a.example/"); !out.Skipped {
		t.Error("delete of busy URL not skipped")
	}
	if out := c.Delete(context.Background(), "https://b.example/"); out.Skipped {
		t.Error("delete of other URL skipped")
	}
}

func TestStats(t *testing.T) {
	backend := newFakeBackend()
	pages := 2
	backend.stats = &models.IndexStats{NumPages: &pages}
	c := New(backend, nil)

	rows, err := c.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Value != "2" || rows[1].Value != render.Missing {
		t.Errorf("rows = %+v", rows)
	}

	backend.failOps["stats"] = errors.New("down")
	if _, err := c.Stats(context.Background()); err == nil || !strings.Contains(err.Error(), MsgStatsFailed) {
		t.Errorf("Stats() error = %v", err)
	}
}

func TestCheckHealth(t *testing.T) {
	backend := newFakeBackend()
	c := New(backend, nil)
	if !c.CheckHealth(context.Background()) {
		t.Error("CheckHealth() = false")
	}
	backend.healthErr = errors.New("unreachable")
	if c.CheckHealth(context.Background()) {
		t.Error("CheckHealth() = true")
	}
}

func TestCurrentPageActions(t *testing.T) {
	backend := newFakeBackend()
	backend.summary = &models.SummaryResult{Summary: "s"}
	c := New(backend, StaticPage("https://go.dev/"))

	if out := c.IndexCurrentPage(context.Background()); out.Display.Body != MsgIndexed {
		t.Errorf("IndexCurrentPage() = %+v", out)
	}
	if out := c.SummarizeCurrentPage(context.Background()); out.Display.Body != "s" {
		t.Errorf("SummarizeCurrentPage() = %+v", out)
	}

	bad := New(backend, StaticPage("  "))
	out := bad.IndexCurrentPage(context.Background())
	if out.Err == nil || out.Display.Tone != render.ToneError {
		t.Errorf("IndexCurrentPage() with blank source = %+v", out)
	}
	if backend.count("add") != 1 {
		t.Errorf("add calls = %d, want 1", backend.count("add"))
	}
}

func TestClipboardPage(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		want    string
		wantErr bool
	}{
		{name: "copied url", text: " https://go.dev/doc \n", want: "https://go.dev/doc"},
		{name: "not a url", text: "hello", wantErr: true},
		{name: "read error", err: errors.New("no clipboard"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ClipboardPage{read: func() (string, error) { return tt.text, tt.err }}
			got, err := p.CurrentURL(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("CurrentURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CurrentURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
