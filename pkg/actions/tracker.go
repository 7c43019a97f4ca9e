// Package actions tracks which user-triggered operations are in flight so a
// second trigger cannot overlap the first.
package actions

import (
	"sort"
	"sync"
)

// Kind identifies an independently tracked user action
type Kind int

const (
	IndexPage Kind = iota
	Summarize
	Query
	Delete
)

func (k Kind) String() string {
	switch k {
	case IndexPage:
		return "index page"
	case Summarize:
		return "summarize"
	case Query:
		return "query"
	case Delete:
		return "delete"
	}
	return "unknown"
}

// Keyed reports whether the kind is tracked per target key instead of globally
func (k Kind) Keyed() bool {
	return k == Delete
}

type slot struct {
	kind Kind
	key  string
}

// Tracker is a keyed Idle/Busy table. The zero value is ready to use.
type Tracker struct {
	mu   sync.Mutex
	busy map[slot]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func slotFor(kind Kind, key string) slot {
	if !kind.Keyed() {
		key = ""
	}
	return slot{kind: kind, key: key}
}

// TryBegin marks (kind, key) Busy and returns true, or returns false without
// any change if it is already Busy. Callers must not dispatch when false.
func (t *Tracker) TryBegin(kind Kind, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := slotFor(kind, key)
	if _, ok := t.busy[s]; ok {
		return false
	}
	if t.busy == nil {
		t.busy = map[slot]struct{}{}
	}
	t.busy[s] = struct{}{}
	return true
}

// End returns (kind, key) to Idle. Call exactly once per successful TryBegin.
func (t *Tracker) End(kind Kind, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.busy, slotFor(kind, key))
}

// Busy reports whether (kind, key) is in flight
func (t *Tracker) Busy(kind Kind, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.busy[slotFor(kind, key)]
	return ok
}

// BusyKeys lists the in-flight keys of a keyed kind in sorted order
func (t *Tracker) BusyKeys(kind Kind) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var keys []string
	for s := range t.busy {
		if s.kind == kind && kind.Keyed() {
			keys = append(keys, s.key)
		}
	}
	sort.Strings(keys)
	return keys
}
