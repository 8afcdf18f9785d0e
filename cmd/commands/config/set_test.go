package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/bwdash/internal/config"
)

// setupTestConfig points the config package at a temp file and returns cleanup.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_BackendURL(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "backend-url", "https://bw.example.com/")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"https://bw.example.com"`) {
		t.Errorf("expected confirmation with trimmed URL, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.BackendURL != "https://bw.example.com" {
		t.Errorf("expected BackendURL %q, got %q", "https://bw.example.com", cfg.BackendURL)
	}
}

func TestSet_InvalidValue(t *testing.T) {
	path := setupTestConfig(t)

	_, stderr := execConfig(t, "set", "window-days", "40")

	if !strings.Contains(stderr, "outside 1-15") {
		t.Errorf("expected range error, got: %s", stderr)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.WindowDays != 0 {
		t.Errorf("invalid value was persisted: %d", cfg.WindowDays)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}

func TestSet_LabelMode_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "LABEL-MODE", "NONE")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `label-mode set to "none"`) {
		t.Errorf("expected normalized value, got: %s", stdout)
	}
}

func TestUnset_RevertsToDefault(t *testing.T) {
	path := setupTestConfig(t)
	if err := (&config.Config{Timeout: "30s", WindowDays: 3}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "unset", "timeout")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "timeout reset to default (10s)") {
		t.Errorf("unexpected output: %s", stdout)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Timeout != "" || cfg.WindowDays != 3 {
		t.Errorf("unexpected config after unset: %+v", cfg)
	}
}
