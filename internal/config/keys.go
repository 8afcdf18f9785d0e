package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/bwdash/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "backend-url").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Default is the value used while the key is unset.
	Default string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set validates value and applies it to the given Config (in memory
	// only; the caller is responsible for calling Save).
	Set func(cfg *Config, value string) error

	// Clear resets the key so the default applies again.
	Clear func(cfg *Config)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "backend-url",
		Description: "Base URL of the bandwidth backend",
		Default:     DefaultBackendURL,
		Get:         func(cfg *Config) string { return cfg.BackendURL },
		Set: func(cfg *Config, v string) error {
			v = strings.TrimRight(strings.TrimSpace(v), "/")
			if err := util.ValidateBackendURL(v); err != nil {
				return err
			}
			cfg.BackendURL = v
			return nil
		},
		Clear: func(cfg *Config) { cfg.BackendURL = "" },
	},
	{
		Name:        "timeout",
		Description: "Per-request timeout, e.g. 10s",
		Default:     DefaultTimeout.String(),
		Get:         func(cfg *Config) string { return cfg.Timeout },
		Set: func(cfg *Config, v string) error {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid timeout %q: %w", v, err)
			}
			if d <= 0 {
				return fmt.Errorf("timeout must be positive, got %s", d)
			}
			cfg.Timeout = d.String()
			return nil
		},
		Clear: func(cfg *Config) { cfg.Timeout = "" },
	},
	{
		Name:        "retry-attempts",
		Description: "Attempts per request for transient failures (1-10)",
		Default:     strconv.Itoa(DefaultRetryAttempts),
		Get:         func(cfg *Config) string { return intString(cfg.RetryAttempts) },
		Set: func(cfg *Config, v string) error {
			n, err := parseIntRange(v, 1, 10)
			if err != nil {
				return fmt.Errorf("retry-attempts: %w", err)
			}
			cfg.RetryAttempts = n
			return nil
		},
		Clear: func(cfg *Config) { cfg.RetryAttempts = 0 },
	},
	{
		Name:        "label-mode",
		Description: "X axis labels: days (one per day) or none",
		Default:     DefaultLabelMode,
		Get:         func(cfg *Config) string { return cfg.LabelMode },
		Set: func(cfg *Config, v string) error {
			v = util.NormalizeKey(v)
			if v != "days" && v != "none" {
				return fmt.Errorf("label-mode must be days or none, got %q", v)
			}
			cfg.LabelMode = v
			return nil
		},
		Clear: func(cfg *Config) { cfg.LabelMode = "" },
	},
	{
		Name:        "window-days",
		Description: "Default trailing window in days (1-15)",
		Default:     strconv.Itoa(DefaultWindowDays),
		Get:         func(cfg *Config) string { return intString(cfg.WindowDays) },
		Set: func(cfg *Config, v string) error {
			n, err := parseIntRange(v, 1, 15)
			if err != nil {
				return fmt.Errorf("window-days: %w", err)
			}
			cfg.WindowDays = n
			return nil
		},
		Clear: func(cfg *Config) { cfg.WindowDays = 0 },
	},
	{
		Name:        "log-level",
		Description: "Log verbosity: debug, info, warn or error",
		Default:     DefaultLogLevel,
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set: func(cfg *Config, v string) error {
			v = util.NormalizeKey(v)
			switch v {
			case "debug", "info", "warn", "error":
				cfg.LogLevel = v
				return nil
			}
			return fmt.Errorf("log-level must be debug, info, warn or error, got %q", v)
		},
		Clear: func(cfg *Config) { cfg.LogLevel = "" },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s (default: %s)\n", maxLen, k.Name, k.Description, k.Default)
	}
	return b.String()
}

func intString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func parseIntRange(v string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", v)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d is outside %d-%d", n, lo, hi)
	}
	return n, nil
}
