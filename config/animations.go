package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnimationID names an entry of the animation table.
type AnimationID string

const (
	AnimIdle       AnimationID = "idle"
	AnimWalk       AnimationID = "walk"
	AnimDash       AnimationID = "dash"
	AnimDashEnd    AnimationID = "dashend"
	AnimJumpStart  AnimationID = "jumpstart"
	AnimJumpDown   AnimationID = "jumpdown"
	AnimA1         AnimationID = "a1"
	AnimFireAttack AnimationID = "fireattack"
	AnimJumpAttack AnimationID = "jumpattack"
	AnimDamaged    AnimationID = "damaged"

	AnimJumpDust AnimationID = "jump_dust"
	AnimLandDust AnimationID = "land_dust"
)

// AnimationDef describes how an animation is stored and played.
// PathPattern is relative to the assets directory; multi-file animations
// format it with the frame index.
type AnimationDef struct {
	PathPattern string  `yaml:"path"`
	FrameCount  int     `yaml:"frames"`
	FrameRate   float64 `yaml:"fps"`
	IsMultiFile bool    `yaml:"multi_file"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
}

//go:embed animations.yaml
var animationsYAML []byte

type animationFile struct {
	Animations map[AnimationID]AnimationDef `yaml:"animations"`
}

// DefaultAnimations decodes the embedded animation table.
func DefaultAnimations() (map[AnimationID]AnimationDef, error) {
	return ParseAnimations(animationsYAML)
}

// ParseAnimations decodes and validates an animation table.
func ParseAnimations(data []byte) (map[AnimationID]AnimationDef, error) {
	var f animationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse animations: %w", err)
	}
	for id, def := range f.Animations {
		if def.FrameCount <= 0 {
			return nil, fmt.Errorf("animation %q: frames must be positive, got %d", id, def.FrameCount)
		}
		if def.FrameRate < 0 {
			return nil, fmt.Errorf("animation %q: fps must not be negative", id)
		}
	}
	for _, s := range AllStates() {
		id := StateAnimations[s]
		if _, ok := f.Animations[id]; !ok {
			return nil, fmt.Errorf("state %s: missing animation %q", s, id)
		}
	}
	return f.Animations, nil
}
