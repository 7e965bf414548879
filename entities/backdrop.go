package entities

import (
	"image/color"
	"math"

	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// band is one parallax row of hills.
type band struct {
	factor float64 // fraction of the camera scroll applied
	period float64
	width  float64
	height float64
	color  color.Color
}

// Backdrop draws the sky and two parallax bands. It reads the camera
// scroll once per draw.
type Backdrop struct {
	camera  *components.CameraData
	width   float64
	height  float64
	groundY float64
	bands   []band
}

func NewBackdrop(camera *components.CameraData, width, height int, groundY float64) *Backdrop {
	return &Backdrop{
		camera:  camera,
		width:   float64(width),
		height:  float64(height),
		groundY: groundY,
		bands: []band{
			{factor: 0.2, period: 420, width: 260, height: 140, color: config.HillFar},
			{factor: 0.5, period: 300, width: 180, height: 80, color: config.HillNear},
		},
	}
}

func (b *Backdrop) Update(float64) {}

func (b *Backdrop) Draw(screen *ebiten.Image) {
	screen.Fill(config.SkyTop)
	var scrollX, scrollY float64
	if b.camera != nil {
		scrollX, scrollY = b.camera.Scroll.X, b.camera.Scroll.Y
	}
	for _, bd := range b.bands {
		for _, x := range BandOffsets(scrollX*bd.factor, bd.period, b.width) {
			top := b.groundY - bd.height - scrollY*bd.factor
			vector.FillRect(screen, float32(x), float32(top), float32(bd.width), float32(bd.height), bd.color, false)
		}
	}
}

func (b *Backdrop) Destroyed() bool { return false }

// BandOffsets returns the screen x of each repeat of a band with the given
// period that intersects [-period, screenWidth).
func BandOffsets(scroll, period, screenWidth float64) []float64 {
	if period <= 0 {
		return nil
	}
	start := -math.Mod(scroll, period)
	if start > 0 {
		start -= period
	}
	var out []float64
	for x := start; x < screenWidth; x += period {
		out = append(out, x)
	}
	return out
}
