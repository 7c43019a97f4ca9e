package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultBackendURL is the address of a locally running search backend
const DefaultBackendURL = "http://127.0.0.1:8000"

type Config struct {
	// Backend
	Backend struct {
		BaseURL string `toml:"base_url"`
	} `toml:"backend"`

	// CLI
	CLI struct {
		RequestTimeout int    `toml:"request_timeout"` // Transport timeout in seconds
		PageSource     string `toml:"page_source"`     // "clipboard" or "none"
		LogDir         string `toml:"log_dir"`
	} `toml:"cli"`

	// Stub backend
	Stub struct {
		Host string `toml:"host"`
		Port int    `toml:"port"`
	} `toml:"stub"`

	// Set from PAGE_SEARCH_BACKEND_URL. Never written back to the file.
	backendOverride string
}

// BackendOverride returns the backend address taken from the environment,
// or "" when none was given
func (c *Config) BackendOverride() string {
	return c.backendOverride
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Backend.BaseURL = DefaultBackendURL
	cfg.CLI.RequestTimeout = 30
	cfg.CLI.PageSource = "clipboard"
	cfg.CLI.LogDir = "tmp"
	cfg.Stub.Host = "127.0.0.1"
	cfg.Stub.Port = 8000
	return cfg
}

// ConfigPath returns the path to the config file.
// PAGE_SEARCH_CONFIG overrides the default location.
func ConfigPath() (string, error) {
	if p := os.Getenv("PAGE_SEARCH_CONFIG"); p != "" {
		return expandHome(p)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "page-search")
	return filepath.Join(configDir, "config.toml"), nil
}

func expandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return strings.Replace(p, "~", homeDir, 1), nil
}

// Load reads configuration from the default config path
func Load() (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from path.
// Creates the file with defaults if it doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveTo(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		applyEnv(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	defaultCfg := DefaultConfig()
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = defaultCfg.Backend.BaseURL
	}
	if cfg.CLI.RequestTimeout == 0 {
		cfg.CLI.RequestTimeout = defaultCfg.CLI.RequestTimeout
	}
	if cfg.CLI.PageSource == "" {
		cfg.CLI.PageSource = defaultCfg.CLI.PageSource
	}
	if cfg.CLI.LogDir == "" {
		cfg.CLI.LogDir = defaultCfg.CLI.LogDir
	}
	if cfg.Stub.Host == "" {
		cfg.Stub.Host = defaultCfg.Stub.Host
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = defaultCfg.Stub.Port
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv records overrides from the environment. They take effect for
// this process only and leave the saved values untouched.
func applyEnv(cfg *Config) {
	cfg.backendOverride = strings.TrimSpace(os.Getenv("PAGE_SEARCH_BACKEND_URL"))
}

// Save writes the configuration to the default config path
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to path
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
