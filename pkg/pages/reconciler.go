// Package pages keeps the displayed list of indexed pages consistent with
// the backend by refetching the whole list after every mutation.
package pages

import (
	"context"
	"fmt"
	"sync"

	"page-search-go/pkg/cli/logger"
)

// EmptyMessage is shown when the backend reports no indexed pages
const EmptyMessage = "No pages indexed."

// Backend is the part of the search client the reconciler needs
type Backend interface {
	ListIndexedPages(ctx context.Context) ([]string, error)
	DeletePage(ctx context.Context, url string) error
}

// Entry is one row of the indexed-page list
type Entry struct {
	URL   string
	Label string
}

// Snapshot is the list state at a point in time
type Snapshot struct {
	Entries []Entry
	Loading bool
	Err     error
	Loaded  bool // at least one refresh has succeeded
}

// Empty reports whether a loaded list has no entries
func (s Snapshot) Empty() bool {
	return s.Loaded && len(s.Entries) == 0
}

// Reconciler owns the indexed-page list
type Reconciler struct {
	backend Backend

	mu       sync.Mutex
	entries  []Entry
	inflight int
	loaded   bool
	err      error
	issued   uint64 // sequence handed to the most recent Refresh
	applied  uint64 // sequence of the result currently displayed
}

func NewReconciler(backend Backend) *Reconciler {
	return &Reconciler{backend: backend}
}

// Refresh fetches the full URL list and replaces the displayed list. On
// failure the previous entries are kept and the error is recorded. A result
// that arrives after one from a later Refresh is dropped and the current
// snapshot is returned instead.
func (r *Reconciler) Refresh(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	r.inflight++
	r.issued++
	seq := r.issued
	r.mu.Unlock()

	urls, err := r.backend.ListIndexedPages(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight--

	if seq < r.applied {
		logger.Log("dropping stale page list from refresh %d (showing %d)", seq, r.applied)
		if err != nil {
			return r.snapshotLocked(), fmt.Errorf("failed to list indexed pages: %w", err)
		}
		return r.snapshotLocked(), nil
	}

	if err != nil {
		logger.LogError(err, "failed to refresh indexed pages")
		r.err = fmt.Errorf("failed to list indexed pages: %w", err)
		return r.snapshotLocked(), r.err
	}

	entries := make([]Entry, 0, len(urls))
	for _, u := range urls {
		entries = append(entries, Entry{URL: u, Label: Label(u)})
	}
	r.entries = entries
	r.applied = seq
	r.loaded = true
	r.err = nil
	logger.Log("indexed pages refreshed: %d entries", len(entries))
	return r.snapshotLocked(), nil
}

// Delete removes url from the backend and then refreshes regardless of
// whether the delete succeeded. The delete error, if any, is returned.
func (r *Reconciler) Delete(ctx context.Context, url string) (Snapshot, error) {
	delErr := r.backend.DeletePage(ctx, url)
	if delErr != nil {
		logger.LogError(delErr, "failed to delete %s", url)
	}

	snap, _ := r.Refresh(ctx)
	return snap, delErr
}

// Snapshot returns the current list state
func (r *Reconciler) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Reconciler) snapshotLocked() Snapshot {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return Snapshot{
		Entries: entries,
		Loading: r.inflight > 0,
		Err:     r.err,
		Loaded:  r.loaded,
	}
}
