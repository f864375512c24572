// Package guildconfig stores per-guild bot settings in a locked JSON
// document: log channels, module toggles and free-form variables.
package guildconfig

import (
	"errors"
	"fmt"
	"sort"

	"github.com/PancyStudios/StaffBotGo/pkg/storage"
)

var (
	// ErrUnknownModule is returned when toggling a module the bot does not have.
	ErrUnknownModule = errors.New("módulo desconocido")
	// ErrUnknownChannelKind is returned for channel slots that do not exist.
	ErrUnknownChannelKind = errors.New("tipo de canal desconocido")
)

// Modules that can be toggled per guild. Unknown names are rejected instead
// of being stored silently.
var Modules = []string{"mod", "sessions", "appeals", "economy", "analytics"}

// Channel slots a guild can configure.
const (
	ChannelLogs     = "logs"
	ChannelAppeals  = "appeals"
	ChannelSessions = "sessions"
	ChannelWelcome  = "welcome"
)

var channelKinds = []string{ChannelLogs, ChannelAppeals, ChannelSessions, ChannelWelcome}

// Settings is the typed configuration of one guild. Every field has an
// explicit slot; arbitrary keys only live under Variables.
type Settings struct {
	Channels  map[string]string `json:"channels"`
	Modules   map[string]bool   `json:"modules"`
	Variables map[string]string `json:"variables"`
}

type document struct {
	Guilds map[string]Settings `json:"guilds"`
}

// Manager owns the guild configuration document.
type Manager struct {
	store *storage.Store[document]
}

// NewManager opens (or creates) the configuration document at path.
func NewManager(path string) (*Manager, error) {
	store, err := storage.New(path, document{Guilds: map[string]Settings{}})
	if err != nil {
		return nil, fmt.Errorf("abriendo configuración de guilds: %w", err)
	}
	return &Manager{store: store}, nil
}

func defaultSettings() Settings {
	return ensureMaps(Settings{})
}

// ensureMaps fills in maps missing from a hand-edited document so the
// setters never write to a nil map. Missing modules default to enabled.
func ensureMaps(s Settings) Settings {
	if s.Channels == nil {
		s.Channels = map[string]string{}
	}
	if s.Modules == nil {
		s.Modules = make(map[string]bool, len(Modules))
		for _, m := range Modules {
			s.Modules[m] = true
		}
	}
	if s.Variables == nil {
		s.Variables = map[string]string{}
	}
	return s
}

// Get returns the settings for a guild, or enabled-everything defaults.
func (m *Manager) Get(guildID string) (Settings, error) {
	doc, err := m.store.Read()
	if err != nil {
		return Settings{}, err
	}
	s, ok := doc.Guilds[guildID]
	if !ok {
		return defaultSettings(), nil
	}
	return ensureMaps(s), nil
}

// ValidModule reports whether name is a toggleable module.
func ValidModule(name string) bool {
	for _, m := range Modules {
		if m == name {
			return true
		}
	}
	return false
}

// ValidChannelKind reports whether kind is a configurable channel slot.
func ValidChannelKind(kind string) bool {
	for _, k := range channelKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// SetChannel assigns a channel to one of the known slots.
func (m *Manager) SetChannel(guildID, kind, channelID string) error {
	if !ValidChannelKind(kind) {
		return fmt.Errorf("%w: %s", ErrUnknownChannelKind, kind)
	}

	_, err := m.store.Update(func(doc document) (document, error) {
		s := ensureMaps(doc.Guilds[guildID])
		if s.Channels[kind] == channelID {
			return doc, storage.ErrNoChange
		}
		s.Channels[kind] = channelID
		doc.Guilds[guildID] = s
		return doc, nil
	})
	return err
}

// SetModule toggles a known module; unknown modules are rejected without
// touching the document.
func (m *Manager) SetModule(guildID, module string, enabled bool) error {
	if !ValidModule(module) {
		return fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}

	_, err := m.store.Update(func(doc document) (document, error) {
		s := ensureMaps(doc.Guilds[guildID])
		if cur, exists := s.Modules[module]; exists && cur == enabled {
			return doc, storage.ErrNoChange
		}
		s.Modules[module] = enabled
		doc.Guilds[guildID] = s
		return doc, nil
	})
	return err
}

// ModuleEnabled reports whether a module is active for the guild. Unknown
// modules read as disabled.
func (m *Manager) ModuleEnabled(guildID, module string) (bool, error) {
	if !ValidModule(module) {
		return false, nil
	}
	s, err := m.Get(guildID)
	if err != nil {
		return false, err
	}
	return s.Modules[module], nil
}

// SetVariable stores a free-form key/value pair for the guild. An empty value
// deletes the key.
func (m *Manager) SetVariable(guildID, key, value string) error {
	_, err := m.store.Update(func(doc document) (document, error) {
		s := ensureMaps(doc.Guilds[guildID])
		if value == "" {
			if _, exists := s.Variables[key]; !exists {
				return doc, storage.ErrNoChange
			}
			delete(s.Variables, key)
		} else {
			if s.Variables[key] == value {
				return doc, storage.ErrNoChange
			}
			s.Variables[key] = value
		}
		doc.Guilds[guildID] = s
		return doc, nil
	})
	return err
}

// VariableKeys returns the sorted variable keys of a guild, for display.
func (m *Manager) VariableKeys(guildID string) ([]string, error) {
	s, err := m.Get(guildID)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.Variables))
	for k := range s.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
