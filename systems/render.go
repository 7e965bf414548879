package systems

import (
	"image/color"

	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Pose describes how a frame is placed on screen.
type Pose struct {
	FeetX, FeetY   float64 // world position of the frame's bottom-center
	FlipX          bool
	Rotation       float64
	ScaleX, ScaleY float64
	FrameW, FrameH float64
	Scroll         math.Vec2
}

// SpriteGeoM builds the transform for a bottom-center anchored frame:
// anchor, squash/stretch, mirror, rotation, world position, then scroll.
func SpriteGeoM(p Pose) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-p.FrameW/2, -p.FrameH)
	sx, sy := p.ScaleX, p.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	g.Scale(sx, sy)
	if p.FlipX {
		g.Scale(-1, 1)
	}
	if p.Rotation != 0 {
		g.Rotate(p.Rotation)
	}
	g.Translate(p.FeetX, p.FeetY)
	g.Translate(-p.Scroll.X, -p.Scroll.Y)
	return g
}

// DrawFrame draws img at pose. A nil image draws nothing.
func DrawFrame(screen, img *ebiten.Image, p Pose) {
	if img == nil {
		return
	}
	b := img.Bounds()
	p.FrameW, p.FrameH = float64(b.Dx()), float64(b.Dy())
	drawOp.GeoM = SpriteGeoM(p)
	drawOp.ColorScale.Reset()
	screen.DrawImage(img, drawOp)
}

// DrawPlayer renders the player's sprite, or a coloured box when no frame
// is available.
func DrawPlayer(env *Env, entry *donburi.Entry, screen *ebiten.Image) {
	if entry == nil || !entry.Valid() {
		return
	}
	o := components.Object.Get(entry)
	sprite := components.Sprite.Get(entry)
	ss := components.SquashStretch.Get(entry)

	var scroll math.Vec2
	if env.Camera != nil {
		scroll = env.Camera.Scroll
	}
	x, y := o.Feet()

	if sprite.Image == nil {
		state := components.State.Get(entry)
		vector.FillRect(screen,
			float32(o.X-scroll.X), float32(o.Y-scroll.Y),
			float32(o.W), float32(o.H),
			fallbackColor(state.CurrentState), false)
		return
	}

	DrawFrame(screen, sprite.Image, Pose{
		FeetX:    x,
		FeetY:    y,
		FlipX:    sprite.FlipX,
		Rotation: sprite.Rotation,
		ScaleX:   ss.ScaleX,
		ScaleY:   ss.ScaleY,
		Scroll:   scroll,
	})
}

func fallbackColor(s cfg.StateID) color.Color {
	switch s {
	case cfg.Dash, cfg.DashEnd:
		return cfg.Cyan
	case cfg.JumpStart, cfg.JumpDown:
		return cfg.Purple
	case cfg.A1, cfg.JumpAttack:
		return cfg.Red
	case cfg.FireAttack:
		return cfg.Orange
	}
	return cfg.Blue
}
