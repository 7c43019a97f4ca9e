package api

import (
	"strings"
	"sync"
)

// StubEmbeddingDim mirrors the sentence-transformer size the real backend reports
const StubEmbeddingDim = 384

// PageStore is the in-memory index behind the stub backend
type PageStore struct {
	mu   sync.RWMutex
	urls []string // insertion order
}

func NewPageStore() *PageStore {
	return &PageStore{}
}

// Add indexes url, returning false if it was already present
func (s *PageStore) Add(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.urls {
		if u == url {
			return false
		}
	}
	s.urls = append(s.urls, url)
	return true
}

// Delete removes url, returning false if it was not indexed
func (s *PageStore) Delete(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.urls {
		if u == url {
			s.urls = append(s.urls[:i], s.urls[i+1:]...)
			return true
		}
	}
	return false
}

func (s *PageStore) Has(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.urls {
		if u == url {
			return true
		}
	}
	return false
}

// List returns a copy of the indexed URLs
func (s *PageStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// Search returns up to k URLs containing any word of query, in index order
func (s *PageStore) Search(query string, k int) []string {
	words := strings.Fields(strings.ToLower(query))
	var matches []string
	for _, u := range s.List() {
		lower := strings.ToLower(u)
		for _, w := range words {
			if strings.Contains(lower, w) {
				matches = append(matches, u)
				break
			}
		}
		if k > 0 && len(matches) == k {
			break
		}
	}
	return matches
}
