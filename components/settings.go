package components

import "github.com/yohamta/donburi"

// SettingsData holds the user settings that survive restarts.
type SettingsData struct {
	MusicVolume float64
	SFXVolume   float64
	Muted       bool
	Fullscreen  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
