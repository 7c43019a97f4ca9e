package cli

import (
	"fmt"
	"io"
	"strings"

	"page-search-go/pkg/config"

	"github.com/pelletier/go-toml/v2"
)

// ShowConfig writes the current configuration as TOML
func (a *App) ShowConfig(w io.Writer) error {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(w, string(data))
	if override := a.cfg.BackendOverride(); override != "" {
		fmt.Fprintf(w, "# backend.base_url overridden by PAGE_SEARCH_BACKEND_URL=%s\n", override)
	}
	return nil
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "backend.base_url=http://127.0.0.1:8000")
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]

	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	section := keyPath[0]
	key := keyPath[1]

	switch section {
	case "backend":
		switch key {
		case "base_url":
			// Goes through the endpoint so the value is validated the same
			// way the settings screen validates it.
			return a.endpoint.Save(value)
		default:
			return fmt.Errorf("unknown backend key: %s", key)
		}
	case "cli":
		switch key {
		case "request_timeout":
			var timeout int
			if _, err := fmt.Sscanf(value, "%d", &timeout); err != nil || timeout <= 0 {
				return fmt.Errorf("invalid request_timeout value: %s", value)
			}
			a.cfg.CLI.RequestTimeout = timeout
		case "page_source":
			if value != "clipboard" && value != "none" {
				return fmt.Errorf("invalid page_source value: %s (expected clipboard or none)", value)
			}
			a.cfg.CLI.PageSource = value
		case "log_dir":
			a.cfg.CLI.LogDir = value
		default:
			return fmt.Errorf("unknown cli key: %s", key)
		}
	case "stub":
		switch key {
		case "host":
			a.cfg.Stub.Host = value
		case "port":
			var port int
			if _, err := fmt.Sscanf(value, "%d", &port); err != nil {
				return fmt.Errorf("invalid port value: %s", value)
			}
			a.cfg.Stub.Port = port
		default:
			return fmt.Errorf("unknown stub key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}

	if a.configPath == "" {
		return config.Save(a.cfg)
	}
	return config.SaveTo(a.configPath, a.cfg)
}
