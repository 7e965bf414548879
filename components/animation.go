package components

import (
	"github.com/automoto/dashblade/assets/animations"
	"github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// FrameSource resolves an animation frame to a drawable. Implementations
// return nil when the image is unavailable.
type FrameSource interface {
	Frame(id config.AnimationID, frame int) *ebiten.Image
}

type AnimationData struct {
	Clock  *animations.Clock
	Frames FrameSource
}

// SetAnimation switches the clock to id.
func (a *AnimationData) SetAnimation(id config.AnimationID) {
	if a.Clock == nil {
		return
	}
	a.Clock.Play(id)
}

// Frame resolves the clock's visible frame, or nil.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.Clock == nil || a.Frames == nil {
		return nil
	}
	return a.Frames.Frame(a.Clock.Current(), a.Clock.Frame())
}

var Animation = donburi.NewComponentType[AnimationData]()
