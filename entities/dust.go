package entities

import (
	"github.com/automoto/dashblade/assets/animations"
	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/layers"
	"github.com/automoto/dashblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Dust is a one-shot effect that plays its animation once, then destroys
// itself.
type Dust struct {
	clock  *animations.Clock
	frames components.FrameSource
	camera *components.CameraData
	image  *ebiten.Image

	x, y      float64
	direction float64
	done      bool
}

// NewDust creates an effect whose feet sit at (x, y).
func NewDust(id config.AnimationID, defs map[config.AnimationID]config.AnimationDef, frames components.FrameSource, camera *components.CameraData, x, y, direction float64) *Dust {
	d := &Dust{
		clock:     animations.NewClock(defs),
		frames:    frames,
		camera:    camera,
		x:         x,
		y:         y,
		direction: direction,
	}
	d.clock.Play(id)
	def := d.clock.Def()
	// an effect that can never complete would live forever
	d.done = def.FrameCount <= 0 || def.FrameRate <= 0
	d.clock.Events.Subscribe(func(evt animations.Event) {
		if evt.Kind == animations.CycleCompleted {
			d.done = true
		}
	})
	return d
}

func (d *Dust) Update(dt float64) {
	if d.done {
		return
	}
	d.clock.Advance(dt)
	if d.clock.TakeDirty() && d.frames != nil {
		d.image = d.frames.Frame(d.clock.Current(), d.clock.Frame())
	}
}

func (d *Dust) Draw(screen *ebiten.Image) {
	pose := systems.Pose{
		FeetX: d.x,
		FeetY: d.y,
		FlipX: d.direction == config.DirectionLeft,
	}
	if d.camera != nil {
		pose.Scroll = d.camera.Scroll
	}
	systems.DrawFrame(screen, d.image, pose)
}

func (d *Dust) Destroyed() bool { return d.done }

// Release drops the frame reference; frames are shared through the library.
func (d *Dust) Release() { d.image = nil }

// Frame returns the visible frame index.
func (d *Dust) Frame() int { return d.clock.Frame() }

// Effects spawns dust objects into a layer manager.
type Effects struct {
	Manager *layers.Manager
	Layer   int
	Defs    map[config.AnimationID]config.AnimationDef
	Frames  components.FrameSource
	Camera  *components.CameraData
}

// SpawnEffect implements systems.EffectSpawner.
func (fx *Effects) SpawnEffect(id config.AnimationID, x, y, direction float64) {
	d := NewDust(id, fx.Defs, fx.Frames, fx.Camera, x, y, direction)
	if d.Destroyed() {
		return
	}
	_ = fx.Manager.Insert(d, fx.Layer)
}
