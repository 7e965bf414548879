package config

import "image/color"

// Config is the root configuration. Default() fills every field; Load
// overlays a TOML file on top of it.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	AssetsDir string `toml:"assets_dir"`

	Player  PlayerConfig  `toml:"player"`
	Physics PhysicsConfig `toml:"physics"`
	Dash    DashConfig    `toml:"dash"`
	Attack  AttackConfig  `toml:"attack"`
	Camera  CameraConfig  `toml:"camera"`
	Clock   ClockConfig   `toml:"clock"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
	Effects EffectsConfig `toml:"effects"`

	Input      InputConfig                   `toml:"-"`
	Sound      SoundConfig                   `toml:"-"`
	Animations map[AnimationID]AnimationDef `toml:"-"`
}

// PlayerConfig contains the player's movement constants. Velocities are in
// pixels per second.
type PlayerConfig struct {
	SpawnX float64 `toml:"spawn_x"`

	Speed          float64 `toml:"speed"`
	JumpPower      float64 `toml:"jump_power"`       // jump velocity is JumpPower*10
	SuperJumpSpeed float64 `toml:"super_jump_speed"` // horizontal impulse of the jump+dash combo
	AirControl     float64 `toml:"air_control"`      // fraction of Speed available in the air

	JumpAttackRotation float64 `toml:"jump_attack_rotation"` // radians

	// Dimensions
	FrameWidth      int `toml:"frame_width"`
	FrameHeight     int `toml:"frame_height"`
	CollisionWidth  int `toml:"collision_width"`
	CollisionHeight int `toml:"collision_height"`
}

// PhysicsConfig contains world physics values.
type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity"`
	MaxFallSpeed float64 `toml:"max_fall_speed"`
	GroundY      float64 `toml:"ground_y"` // world y of the ground line
	MinX         float64 `toml:"min_x"`
	MaxX         float64 `toml:"max_x"`

	Friction      float64 `toml:"friction"`        // per-frame multiplier when not walking/dashing
	SuperJumpDrag float64 `toml:"super_jump_drag"` // per-frame multiplier while super jumping
}

// DashConfig contains dash motion values.
type DashConfig struct {
	Speed    float64 `toml:"speed"`
	Distance float64 `toml:"distance"`

	MoveFrame    int     `toml:"move_frame"`    // start animation frame at which motion begins
	EndThreshold float64 `toml:"end_threshold"` // fraction of Distance at which the end pose starts

	EaseInPortion float64 `toml:"ease_in_portion"`
	EaseMin       float64 `toml:"ease_min"`
	EaseOutMin    float64 `toml:"ease_out_min"`
}

// AttackConfig contains attack timing values.
type AttackConfig struct {
	MaxDuration float64 `toml:"max_duration"` // seconds before a stuck attack is reverted
}

// CameraConfig contains scroll behaviour.
type CameraConfig struct {
	ScrollFactor   float64 `toml:"scroll_factor"`   // scroll per pixel of horizontal motion
	MaxScrollX     float64 `toml:"max_scroll_x"`    // right edge of the scrollable world
	VerticalFactor float64 `toml:"vertical_factor"` // scroll per pixel of ascent
	MaxScrollY     float64 `toml:"max_scroll_y"`    // vertical scroll clamp (pixels upward)
	RecenterTime   float32 `toml:"recenter_time"`   // seconds to settle vertical scroll after landing
}

// ClockConfig bounds the simulation step.
type ClockConfig struct {
	TPS     int     `toml:"tps"`
	MaxStep float64 `toml:"max_step"` // seconds
}

// LoggingConfig selects the zap logger flavour.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DebugConfig contains debug switches.
type DebugConfig struct {
	Enabled bool `toml:"enabled"`
}

// EffectsConfig contains the squash/stretch scales applied on jump and land.
type EffectsConfig struct {
	JumpScaleX float64 `toml:"jump_scale_x"`
	JumpScaleY float64 `toml:"jump_scale_y"`
	LandScaleX float64 `toml:"land_scale_x"`
	LandScaleY float64 `toml:"land_scale_y"`
	LerpSpeed  float64 `toml:"lerp_speed"`
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	SkyTop       = color.RGBA{R: 24, G: 32, B: 64, A: 255}
	HillFar      = color.RGBA{R: 40, G: 56, B: 96, A: 255}
	HillNear     = color.RGBA{R: 56, G: 80, B: 120, A: 255}
	GroundColor  = color.RGBA{R: 70, G: 52, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{
		Title:     "dashblade",
		Width:     960,
		Height:    540,
		AssetsDir: "assets",

		Player: PlayerConfig{
			SpawnX:             200,
			Speed:              200,
			JumpPower:          60,
			SuperJumpSpeed:     300,
			AirControl:         0.7,
			JumpAttackRotation: 0.35,
			FrameWidth:         96,
			FrameHeight:        96,
			CollisionWidth:     24,
			CollisionHeight:    48,
		},
		Physics: PhysicsConfig{
			Gravity:       1800,
			MaxFallSpeed:  900,
			GroundY:       460,
			MinX:          0,
			MaxX:          2880,
			Friction:      0.8,
			SuperJumpDrag: 0.98,
		},
		Dash: DashConfig{
			Speed:         350,
			Distance:      300,
			MoveFrame:     4,
			EndThreshold:  0.85,
			EaseInPortion: 0.4,
			EaseMin:       0.3,
			EaseOutMin:    0.6,
		},
		Attack: AttackConfig{
			MaxDuration: 1.0,
		},
		Camera: CameraConfig{
			ScrollFactor:   1.0,
			MaxScrollX:     1920,
			VerticalFactor: 0.25,
			MaxScrollY:     60,
			RecenterTime:   0.25,
		},
		Clock: ClockConfig{
			TPS:     60,
			MaxStep: 0.05,
		},
		Audio:   defaultAudio(),
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Effects: EffectsConfig{
			JumpScaleX: 0.8,
			JumpScaleY: 1.2,
			LandScaleX: 1.25,
			LandScaleY: 0.75,
			LerpSpeed:  0.2,
		},
		Input:   defaultInput(),
		Sound:   defaultSound(),
	}

	anims, err := DefaultAnimations()
	if err != nil {
		// The table is embedded; failing to parse it is a build defect.
		panic(err)
	}
	c.Animations = anims
	return c
}
