package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSlash
	SoundVoiceAttack
	SoundFireAttack
	// Movement sounds
	SoundJump
	SoundLand
	SoundDash
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int     `toml:"sample_rate"`
	DefaultMusicVol float64 `toml:"music_volume"`
	DefaultSFXVol   float64 `toml:"sfx_volume"`
}

// SoundConfig maps sound IDs to file paths relative to the assets directory
type SoundConfig struct {
	StageMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}
}

func defaultSound() SoundConfig {
	return SoundConfig{
		StageMusic: "audio/music/stage.ogg",
		SFXPaths: map[SoundID]string{
			SoundSlash:       "audio/sfx/slash.wav",
			SoundVoiceAttack: "audio/sfx/voice_attack.wav",
			SoundFireAttack:  "audio/sfx/fire_attack.wav",
			SoundJump:        "audio/sfx/jump.wav",
			SoundLand:        "audio/sfx/land.wav",
			SoundDash:        "audio/sfx/dash.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundVoiceAttack: 0.8,
		},
	}
}
