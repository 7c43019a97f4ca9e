package config

import (
	"fmt"
	"strings"
	"sync"

	"page-search-go/pkg/utils"
)

// BackendURLKey is the settings key holding the backend base address
const BackendURLKey = "backendUrl"

// Store is a small key-value persistence API for user settings
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileStore persists settings inside the TOML config file
type FileStore struct {
	mu       sync.Mutex
	cfg      *Config
	path     string
	override string // environment backend address, until the first Set
}

// NewFileStore returns a store writing cfg back to path on every Set.
// An empty path means the default config location.
func NewFileStore(cfg *Config, path string) *FileStore {
	return &FileStore{cfg: cfg, path: path, override: cfg.BackendOverride()}
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case BackendURLKey:
		if s.override != "" {
			return s.override, true, nil
		}
		return s.cfg.Backend.BaseURL, s.cfg.Backend.BaseURL != "", nil
	}
	return "", false, nil
}

// Set saves value under key. If the file cannot be written the in-memory
// config is left as it was.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var restore func()
	switch key {
	case BackendURLKey:
		prev := s.cfg.Backend.BaseURL
		s.cfg.Backend.BaseURL = value
		restore = func() { s.cfg.Backend.BaseURL = prev }
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	if err := s.save(); err != nil {
		restore()
		return err
	}
	// An explicit save replaces the environment value for the rest of the session
	s.override = ""
	return nil
}

func (s *FileStore) save() error {
	if s.path == "" {
		return Save(s.cfg)
	}
	return SaveTo(s.path, s.cfg)
}

// MemoryStore keeps settings in memory only
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Endpoint is the process-wide backend base address.
// Save is the only way to change it after LoadEndpoint.
type Endpoint struct {
	mu    sync.RWMutex
	base  string
	store Store
}

// LoadEndpoint reads the saved base address, falling back to DefaultBackendURL
func LoadEndpoint(store Store) (*Endpoint, error) {
	base, ok, err := store.Get(BackendURLKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load backend address: %w", err)
	}
	base = strings.TrimSpace(base)
	if !ok || base == "" {
		base = DefaultBackendURL
	}
	return &Endpoint{base: strings.TrimSuffix(base, "/"), store: store}, nil
}

// BaseURL returns the current base address without a trailing slash
func (e *Endpoint) BaseURL() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.base
}

// Save validates raw, persists it and makes it the active base address
func (e *Endpoint) Save(raw string) error {
	base, err := utils.ValidateBaseURL(raw)
	if err != nil {
		return err
	}
	if err := e.store.Set(BackendURLKey, base); err != nil {
		return fmt.Errorf("failed to save backend address: %w", err)
	}

	e.mu.Lock()
	e.base = base
	e.mu.Unlock()
	return nil
}
