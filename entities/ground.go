package entities

import (
	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ground draws the floor below the ground line.
type Ground struct {
	camera  *components.CameraData
	groundY float64
	width   float64
	height  float64
}

func NewGround(camera *components.CameraData, width, height int, groundY float64) *Ground {
	return &Ground{camera: camera, groundY: groundY, width: float64(width), height: float64(height)}
}

func (g *Ground) Update(float64) {}

func (g *Ground) Draw(screen *ebiten.Image) {
	var scrollY float64
	if g.camera != nil {
		scrollY = g.camera.Scroll.Y
	}
	top := g.groundY - scrollY
	vector.FillRect(screen, 0, float32(top), float32(g.width), float32(g.height-top), config.GroundColor, false)
	vector.StrokeLine(screen, 0, float32(top), float32(g.width), float32(top), 2, config.Grey, false)
}

func (g *Ground) Destroyed() bool { return false }
