package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// APIKeyEnv is the environment variable consulted when the config file does
// not carry an api_key entry.
const APIKeyEnv = "OPENWEATHER_API_KEY"

// Error marks a configuration problem. The CLI maps it to its own exit code,
// distinct from storage and unexpected failures.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func errorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// ErrMissingAPIKey is returned when no credential can be resolved from the
// config file or the environment.
var ErrMissingAPIKey = &Error{msg: "api key is not configured (set api_key in the config file or " + APIKeyEnv + ")"}

type Config struct {
	APIKey      string   `yaml:"api_key,omitempty"`
	Units       string   `yaml:"units"`
	Lang        string   `yaml:"lang"`
	Cities      []string `yaml:"cities"`
	RecentLimit int      `yaml:"recent_limit"`
	Database    string   `yaml:"database,omitempty"`
	LogLevel    string   `yaml:"log_level"`
}

// ResolveAPIKey returns the provider credential: the config file value if
// present, otherwise the environment. Fails with ErrMissingAPIKey so the run
// aborts before any network activity.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}

// GetRecentLimit returns the size of the final listing, defaulting to 10.
func (c *Config) GetRecentLimit() int {
	if c.RecentLimit <= 0 {
		return 10
	}
	return c.RecentLimit
}

// DatabasePath returns the configured table file path, or the XDG default.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	return DefaultDatabasePath()
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "clima", "config.yaml")
}

func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, "clima", "clima.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, &Error{msg: "reading embedded config", err: err}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{msg: "parsing embedded config", err: err}
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	// Best-effort .env loading so the API key can live next to the project.
	_ = godotenv.Load()

	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, &Error{msg: "reading config", err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{msg: fmt.Sprintf("parsing config %s", path), err: err}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validUnits := map[string]bool{"": true, "standard": true, "metric": true, "imperial": true}
	if !validUnits[cfg.Units] {
		return errorf("unknown units %q (valid: standard, metric, imperial)", cfg.Units)
	}
	if len(cfg.Cities) == 0 {
		return errorf("at least one city is required")
	}
	for i, city := range cfg.Cities {
		if strings.TrimSpace(city) == "" {
			return errorf("city %d: name is required", i)
		}
	}
	if cfg.RecentLimit < 0 {
		return errorf("recent_limit must not be negative, got %d", cfg.RecentLimit)
	}
	return nil
}
