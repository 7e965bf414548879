package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the entity's presentation handle: the image currently shown
// plus its pose. Image may be nil when no asset is available.
type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64
	FlipX    bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
