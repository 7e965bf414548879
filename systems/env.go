package systems

import (
	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/config"
	"go.uber.org/zap"
)

// AudioSink plays sound cues. Play must not block the frame.
type AudioSink interface {
	Play(id config.SoundID, loop bool, volume float64)
}

// EffectSpawner creates a one-shot visual effect whose feet sit at (x, y).
type EffectSpawner interface {
	SpawnEffect(id config.AnimationID, x, y, direction float64)
}

// Env carries the collaborators an entity needs.
type Env struct {
	Config  *config.Config
	Input   *components.InputData
	Audio   AudioSink
	Camera  *components.CameraData
	Effects EffectSpawner
	Log     *zap.Logger
}

func (env *Env) playSound(id config.SoundID) {
	if env.Audio == nil {
		return
	}
	env.Audio.Play(id, false, 1)
}

func (env *Env) spawnEffect(id config.AnimationID, x, y, direction float64) {
	if env.Effects == nil {
		return
	}
	env.Effects.SpawnEffect(id, x, y, direction)
}

func (env *Env) logger() *zap.Logger {
	if env.Log == nil {
		return zap.NewNop()
	}
	return env.Log
}
