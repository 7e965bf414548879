package components

import (
	cfg "github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
)

// SoundCue is a queued sound request.
type SoundCue struct {
	ID     cfg.SoundID
	Loop   bool
	Volume float64 // multiplier on the SFX volume
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	MusicVolume float64 // 0.0 - 1.0
	SFXVolume   float64 // 0.0 - 1.0
	Muted       bool
	PendingSFX  []SoundCue
}

var Audio = donburi.NewComponentType[AudioData]()
