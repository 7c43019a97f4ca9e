package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromCreatesDefaults(t *testing.T) {
	t.Setenv("PAGE_SEARCH_BACKEND_URL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Backend.BaseURL, DefaultBackendURL)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadFromMergesMissingValues(t *testing.T) {
	t.Setenv("PAGE_SEARCH_BACKEND_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[backend]\nbase_url = \"http://10.0.0.2:9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Backend.BaseURL != "http://10.0.0.2:9000" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.CLI.RequestTimeout != 30 {
		t.Errorf("RequestTimeout = %d, want 30", cfg.CLI.RequestTimeout)
	}
	if cfg.Stub.Port != 8000 {
		t.Errorf("Stub.Port = %d, want 8000", cfg.Stub.Port)
	}
}

func TestLoadFromEnvOverride(t *testing.T) {
	t.Setenv("PAGE_SEARCH_BACKEND_URL", "http://override:1234")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.BackendOverride() != "http://override:1234" {
		t.Errorf("BackendOverride() = %q", cfg.BackendOverride())
	}
	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("BaseURL = %q, want the saved value %q", cfg.Backend.BaseURL, DefaultBackendURL)
	}
}

func TestEnvOverrideNotPersisted(t *testing.T) {
	tests := []struct {
		name string
		save string // backend address saved through the endpoint, if any
		want string // base_url expected in the file afterwards
	}{
		{name: "unrelated save keeps file value", want: DefaultBackendURL},
		{name: "explicit save wins", save: "http://192.168.1.5:8000", want: "http://192.168.1.5:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PAGE_SEARCH_BACKEND_URL", "http://10.9.9.9:1234")
			path := filepath.Join(t.TempDir(), "config.toml")

			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatal(err)
			}
			ep, err := LoadEndpoint(NewFileStore(cfg, path))
			if err != nil {
				t.Fatal(err)
			}
			if ep.BaseURL() != "http://10.9.9.9:1234" {
				t.Errorf("BaseURL() = %q, want the environment value", ep.BaseURL())
			}

			if tt.save != "" {
				if err := ep.Save(tt.save); err != nil {
					t.Fatal(err)
				}
			} else if err := SaveTo(path, cfg); err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Contains(string(data), "10.9.9.9") {
				t.Errorf("environment address written to file:\n%s", data)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("file missing base_url %q:\n%s", tt.want, data)
			}
		})
	}
}

func TestLoadFromRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[backend\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom() expected parse error")
	}
}

func TestLoadEndpointDefault(t *testing.T) {
	ep, err := LoadEndpoint(NewMemoryStore())
	if err != nil {
		t.Fatalf("LoadEndpoint() error = %v", err)
	}
	if ep.BaseURL() != DefaultBackendURL {
		t.Errorf("BaseURL() = %q, want %q", ep.BaseURL(), DefaultBackendURL)
	}
}

func TestEndpointSave(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain address", input: "http://localhost:9000", want: "http://localhost:9000"},
		{name: "trailing slash and spaces", input: "  https://search.local/  ", want: "https://search.local"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "no scheme", input: "localhost:9000", wantErr: true},
		{name: "ftp scheme", input: "ftp://files.local", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			ep, err := LoadEndpoint(store)
			if err != nil {
				t.Fatal(err)
			}

			err = ep.Save(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Save() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if ep.BaseURL() != DefaultBackendURL {
					t.Errorf("failed save changed BaseURL to %q", ep.BaseURL())
				}
				return
			}
			if ep.BaseURL() != tt.want {
				t.Errorf("BaseURL() = %q, want %q", ep.BaseURL(), tt.want)
			}
			if v, _, _ := store.Get(BackendURLKey); v != tt.want {
				t.Errorf("stored value = %q, want %q", v, tt.want)
			}
		})
	}
}

func TestFileStorePersistsAcrossSessions(t *testing.T) {
	t.Setenv("PAGE_SEARCH_BACKEND_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	ep, err := LoadEndpoint(NewFileStore(cfg, path))
	if err != nil {
		t.Fatal(err)
	}
	if err := ep.Save("http://192.168.1.5:8000"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// A fresh load simulates the next session
	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	ep2, err := LoadEndpoint(NewFileStore(reloaded, path))
	if err != nil {
		t.Fatal(err)
	}
	if ep2.BaseURL() != "http://192.168.1.5:8000" {
		t.Errorf("BaseURL() after reload = %q", ep2.BaseURL())
	}
}

func TestFileStoreFailedSetKeepsPreviousValue(t *testing.T) {
	// A regular file where the config directory should be makes the write fail
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	store := NewFileStore(cfg, filepath.Join(blocker, "config.toml"))
	ep, err := LoadEndpoint(store)
	if err != nil {
		t.Fatal(err)
	}

	if err := ep.Save("http://192.168.1.5:8000"); err == nil {
		t.Fatal("Save() error = nil")
	}
	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("config BaseURL = %q after failed save", cfg.Backend.BaseURL)
	}
	if v, _, _ := store.Get(BackendURLKey); v != DefaultBackendURL {
		t.Errorf("Get() = %q after failed save", v)
	}
	if ep.BaseURL() != DefaultBackendURL {
		t.Errorf("BaseURL() = %q after failed save", ep.BaseURL())
	}
}

func TestFileStoreUnknownKey(t *testing.T) {
	store := NewFileStore(DefaultConfig(), filepath.Join(t.TempDir(), "config.toml"))
	if _, ok, _ := store.Get("theme"); ok {
		t.Error("Get(theme) reported a value")
	}
	err := store.Set("theme", "dark")
	if err == nil || !strings.Contains(err.Error(), "unknown setting") {
		t.Errorf("Set(theme) error = %v", err)
	}
}
