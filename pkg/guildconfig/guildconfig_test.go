package guildconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager(filepath.Join(t.TempDir(), "guildconfig.json"))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestDefaultsEnableAllModules(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Get("42")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	for _, mod := range Modules {
		if !s.Modules[mod] {
			t.Errorf("module %q should default to enabled", mod)
		}
	}
}

func TestSetModuleRejectsUnknown(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetModule("42", "musica", false); !errors.Is(err, ErrUnknownModule) {
		t.Errorf("SetModule(musica) error = %v, want ErrUnknownModule", err)
	}
}

func TestSetModuleToggle(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetModule("42", "economy", false); err != nil {
		t.Fatalf("SetModule() error = %v", err)
	}

	enabled, err := m.ModuleEnabled("42", "economy")
	if err != nil {
		t.Fatal(err)
	}
	if enabled {
		t.Error("economy should be disabled after SetModule(false)")
	}

	// Other modules keep their defaults.
	enabled, _ = m.ModuleEnabled("42", "mod")
	if !enabled {
		t.Error("mod should remain enabled")
	}
}

func TestSetChannel(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetChannel("42", ChannelLogs, "1000"); err != nil {
		t.Fatalf("SetChannel() error = %v", err)
	}
	if err := m.SetChannel("42", "musica", "1000"); !errors.Is(err, ErrUnknownChannelKind) {
		t.Errorf("SetChannel(musica) error = %v, want ErrUnknownChannelKind", err)
	}

	s, err := m.Get("42")
	if err != nil {
		t.Fatal(err)
	}
	if s.Channels[ChannelLogs] != "1000" {
		t.Errorf("log channel = %q, want 1000", s.Channels[ChannelLogs])
	}
}

func TestVariables(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetVariable("42", "prefix", "!"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetVariable("42", "welcome_text", "hola"); err != nil {
		t.Fatal(err)
	}

	keys, err := m.VariableKeys("42")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "prefix" || keys[1] != "welcome_text" {
		t.Errorf("VariableKeys() = %v, want sorted [prefix welcome_text]", keys)
	}

	// Empty value deletes.
	if err := m.SetVariable("42", "prefix", ""); err != nil {
		t.Fatal(err)
	}
	s, _ := m.Get("42")
	if _, exists := s.Variables["prefix"]; exists {
		t.Error("prefix should be deleted after empty SetVariable")
	}
}

func TestSettersSurviveHandEditedDocument(t *testing.T) {
	// A guild entry with no maps at all, as a hand edit could leave it.
	path := filepath.Join(t.TempDir(), "guildconfig.json")
	if err := os.WriteFile(path, []byte(`{"guilds":{"42":{}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	if err := m.SetChannel("42", ChannelLogs, "1000"); err != nil {
		t.Fatalf("SetChannel() error = %v", err)
	}
	if err := m.SetModule("42", "economy", false); err != nil {
		t.Fatalf("SetModule() error = %v", err)
	}
	if err := m.SetVariable("42", "prefix", "!"); err != nil {
		t.Fatalf("SetVariable() error = %v", err)
	}

	s, err := m.Get("42")
	if err != nil {
		t.Fatal(err)
	}
	if s.Channels[ChannelLogs] != "1000" || s.Modules["economy"] || s.Variables["prefix"] != "!" {
		t.Errorf("settings after hand-edited document = %+v", s)
	}
	// Modules missing from the document still read as enabled.
	if enabled, _ := m.ModuleEnabled("42", "mod"); !enabled {
		t.Error("mod should default to enabled for a hand-edited entry")
	}
}
