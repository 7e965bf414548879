package components

import "github.com/yohamta/donburi"

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // fraction of the remaining distance closed per frame
}

// Settled reports whether the scale has returned to its target.
func (s *SquashStretchData) Settled() bool {
	const threshold = 0.01
	dx := s.ScaleX - s.TargetX
	dy := s.ScaleY - s.TargetY
	return dx < threshold && dx > -threshold && dy < threshold && dy > -threshold
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
