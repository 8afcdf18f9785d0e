package tui

import (
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/bwdash/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func configModel(t *testing.T) (configViewModel, *[]*config.Config) {
	t.Helper()
	var saved []*config.Config
	m := newConfigViewModel(&config.Config{})
	m.save = func(c *config.Config) error {
		cp := *c
		saved = append(saved, &cp)
		return nil
	}
	return m, &saved
}

func updateConfig(m configViewModel, msg tea.Msg) (configViewModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(configViewModel), cmd
}

func typeText(m configViewModel, s string) configViewModel {
	for _, r := range s {
		m, _ = updateConfig(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestConfigView_EditAndSave(t *testing.T) {
	m, saved := configModel(t)

	m, _ = updateConfig(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.keys[m.cursor].Name != "timeout" {
		t.Fatalf("cursor on %q, want timeout", m.keys[m.cursor].Name)
	}

	m, _ = updateConfig(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	m = typeText(m, "30s")

	m, cmd := updateConfig(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command")
	}
	m, _ = updateConfig(m, cmd())

	if len(*saved) != 1 || (*saved)[0].Timeout != "30s" {
		t.Fatalf("unexpected saves: %+v", *saved)
	}
	if m.editing || !strings.Contains(m.status, "Saved timeout") {
		t.Errorf("editing=%v status=%q", m.editing, m.status)
	}
}

func TestConfigView_InvalidValueKeepsEditor(t *testing.T) {
	m, saved := configModel(t)

	m, _ = updateConfig(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = typeText(m, "not a url")
	m, cmd := updateConfig(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Error("invalid value should not be saved")
	}
	if !m.editing || m.status == "" {
		t.Errorf("editing=%v status=%q", m.editing, m.status)
	}
	if len(*saved) != 0 {
		t.Errorf("unexpected saves: %+v", *saved)
	}
}

func TestConfigView_SaveError(t *testing.T) {
	m, _ := configModel(t)

	m, _ = updateConfig(m, configSaveErrorMsg{err: errors.New("disk full")})

	if !strings.Contains(m.status, "disk full") {
		t.Errorf("status = %q", m.status)
	}
}

func TestConfigView_ShowsDefaults(t *testing.T) {
	m, _ := configModel(t)
	m, _ = updateConfig(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := ansi.Strip(m.View())
	for _, want := range []string{"backend-url", "http://localhost:3000 (default)", "window-days"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
