package systems

import (
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// setFullscreen is swapped out in tests.
var setFullscreen = ebiten.SetFullscreen

// SettingsTarget receives settings changes. EbitenAudio implements it.
type SettingsTarget interface {
	ApplySettings(s components.SettingsData)
}

// UpdateSettings handles the mute and fullscreen hotkeys, applying and
// saving the result. It reports whether anything changed.
func UpdateSettings(e *ecs.ECS, input *components.InputData, target SettingsTarget, store *SettingsStore, log *zap.Logger) bool {
	settings := GetOrCreateSettings(e)
	changed := false

	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		changed = true
	}
	if !changed {
		return false
	}

	ApplySettings(*settings, target)
	if err := store.Save(*settings); err != nil && log != nil {
		log.Warn("settings not saved", zap.Error(err))
	}
	return true
}

// ApplySettings pushes settings to the window and audio.
func ApplySettings(s components.SettingsData, target SettingsTarget) {
	setFullscreen(s.Fullscreen)
	if target != nil {
		target.ApplySettings(s)
	}
}

// GetOrCreateSettings returns the singleton Settings component.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
