package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// ItemStore is the subset of gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore persists user settings. A store without a backend is a
// no-op so the game runs where no data directory is available.
type SettingsStore struct {
	items ItemStore
	log   *zap.Logger
}

// OpenSettingsStore opens the per-user gdata directory for appName.
func OpenSettingsStore(appName string, log *zap.Logger) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &SettingsStore{log: log}, fmt.Errorf("open settings storage: %w", err)
	}
	return NewSettingsStore(m, log), nil
}

// NewSettingsStore wraps an existing item store.
func NewSettingsStore(items ItemStore, log *zap.Logger) *SettingsStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsStore{items: items, log: log}
}

// DefaultSettings derives the settings used before anything was saved.
func DefaultSettings(a cfg.AudioConfig) components.SettingsData {
	return components.SettingsData{
		MusicVolume: a.DefaultMusicVol,
		SFXVolume:   a.DefaultSFXVol,
	}
}

// Load returns the saved settings, or def when nothing usable is stored.
func (s *SettingsStore) Load(def components.SettingsData) components.SettingsData {
	if s == nil || s.items == nil {
		return def
	}
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		s.log.Warn("could not load settings", zap.Error(err))
		return def
	}
	if len(data) == 0 {
		return def
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		s.log.Warn("could not parse saved settings", zap.Error(err))
		return def
	}
	return components.SettingsData{
		MusicVolume: clamp01(saved.MusicVolume),
		SFXVolume:   clamp01(saved.SFXVolume),
		Muted:       saved.Muted,
		Fullscreen:  saved.Fullscreen,
	}
}

// Save writes settings to disk.
func (s *SettingsStore) Save(settings components.SettingsData) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(SavedSettings{
		MusicVolume: settings.MusicVolume,
		SFXVolume:   settings.SFXVolume,
		Muted:       settings.Muted,
		Fullscreen:  settings.Fullscreen,
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
