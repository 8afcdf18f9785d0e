// Package config handles persistent user configuration for bwdash.
//
// Configuration is stored as JSON at ~/.config/bwdash/config.json (or the
// platform-equivalent path returned by os.UserConfigDir).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	appDir   = "bwdash"
	fileName = "config.json"
)

// Defaults applied by Effective when a field is unset.
const (
	DefaultBackendURL    = "http://localhost:3000"
	DefaultTimeout       = 10 * time.Second
	DefaultRetryAttempts = 3
	DefaultLabelMode     = "days"
	DefaultWindowDays    = 10
	DefaultLogLevel      = "warn"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
// Zero values mean "use the default".
type Config struct {
	BackendURL    string `json:"backend_url,omitempty"`
	Timeout       string `json:"timeout,omitempty"`
	RetryAttempts int    `json:"retry_attempts,omitempty"`
	LabelMode     string `json:"label_mode,omitempty"`
	WindowDays    int    `json:"window_days,omitempty"`
	LogLevel      string `json:"log_level,omitempty"`
}

// Settings is the resolved configuration with defaults filled in.
type Settings struct {
	BackendURL    string
	Timeout       time.Duration
	RetryAttempts int
	LabelMode     string
	WindowDays    int
	LogLevel      string
}

// Effective resolves the config into settings, applying defaults for unset
// fields. Stored values are validated on Set, so parse failures here fall
// back to defaults rather than erroring.
func (c *Config) Effective() Settings {
	s := Settings{
		BackendURL:    DefaultBackendURL,
		Timeout:       DefaultTimeout,
		RetryAttempts: DefaultRetryAttempts,
		LabelMode:     DefaultLabelMode,
		WindowDays:    DefaultWindowDays,
		LogLevel:      DefaultLogLevel,
	}
	if c == nil {
		return s
	}
	if c.BackendURL != "" {
		s.BackendURL = c.BackendURL
	}
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		s.Timeout = d
	}
	if c.RetryAttempts > 0 {
		s.RetryAttempts = c.RetryAttempts
	}
	if c.LabelMode != "" {
		s.LabelMode = c.LabelMode
	}
	if c.WindowDays > 0 {
		s.WindowDays = c.WindowDays
	}
	if c.LogLevel != "" {
		s.LogLevel = c.LogLevel
	}
	return s
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}
