package factory

import (
	"github.com/automoto/dashblade/assets/animations"
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
)

// GenerateAnimations creates an AnimationData whose clock is already
// playing start. frames may be nil; the entity then renders its fallback.
func GenerateAnimations(defs map[cfg.AnimationID]cfg.AnimationDef, frames components.FrameSource, start cfg.AnimationID) *components.AnimationData {
	clock := animations.NewClock(defs)
	clock.Play(start)
	clock.TakeDirty()
	return &components.AnimationData{
		Clock:  clock,
		Frames: frames,
	}
}
