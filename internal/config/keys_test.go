package config

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	if spec := Lookup("  Backend-URL "); spec == nil || spec.Name != "backend-url" {
		t.Fatalf("Lookup returned %+v", spec)
	}
	if spec := Lookup("default-provider"); spec != nil {
		t.Fatalf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeySet_Valid(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{key: "backend-url", value: "https://bw.example.com/", want: "https://bw.example.com"},
		{key: "timeout", value: "1500ms", want: "1.5s"},
		{key: "retry-attempts", value: "4", want: "4"},
		{key: "label-mode", value: "NONE", want: "none"},
		{key: "window-days", value: "15", want: "15"},
		{key: "log-level", value: "Debug", want: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := &Config{}
			spec := Lookup(tt.key)
			if err := spec.Set(cfg, tt.value); err != nil {
				t.Fatalf("Set(%q) error: %v", tt.value, err)
			}
			if got := spec.Get(cfg); got != tt.want {
				t.Errorf("Get = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeySet_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "backend-url", value: "localhost"},
		{key: "timeout", value: "-1s"},
		{key: "timeout", value: "later"},
		{key: "retry-attempts", value: "0"},
		{key: "label-mode", value: "weeks"},
		{key: "window-days", value: "16"},
		{key: "log-level", value: "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := &Config{}
			if err := Lookup(tt.key).Set(cfg, tt.value); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestKeysHelp_ListsAllKeys(t *testing.T) {
	help := KeysHelp()
	for _, name := range KeyNames() {
		if !strings.Contains(help, name) {
			t.Errorf("KeysHelp missing %q", name)
		}
	}
}

func TestKeys_DefaultsMatchEffective(t *testing.T) {
	var empty Config
	filled := &Config{}
	for _, spec := range Keys {
		if spec.Default == "" {
			t.Errorf("key %q has no default", spec.Name)
			continue
		}
		if err := spec.Set(filled, spec.Default); err != nil {
			t.Errorf("default for %q does not validate: %v", spec.Name, err)
		}
	}
	if empty.Effective() != filled.Effective() {
		t.Errorf("defaults disagree:\n  unset: %+v\n  set:   %+v", empty.Effective(), filled.Effective())
	}
}

func TestKeys_ClearRevertsToUnset(t *testing.T) {
	cfg := &Config{}
	for _, spec := range Keys {
		if err := spec.Set(cfg, spec.Default); err != nil {
			t.Fatalf("Set %q: %v", spec.Name, err)
		}
		spec.Clear(cfg)
		if got := spec.Get(cfg); got != "" {
			t.Errorf("key %q still reads %q after Clear", spec.Name, got)
		}
	}
	if *cfg != (Config{}) {
		t.Errorf("expected empty config, got %+v", *cfg)
	}
}
