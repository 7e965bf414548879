package systems

import (
	"github.com/automoto/dashblade/components"
)

// TriggerSquashStretch deforms the sprite; it relaxes back to 1x1 over
// the following frames.
func TriggerSquashStretch(ss *components.SquashStretchData, scaleX, scaleY, lerpSpeed float64) {
	if ss == nil {
		return
	}
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	ss.LerpSpeed = lerpSpeed
}

// updateSquashStretch lerps scale values toward target and snaps once settled
func updateSquashStretch(ss *components.SquashStretchData) {
	if ss == nil || ss.LerpSpeed <= 0 {
		return
	}
	ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
	ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed
	if ss.Settled() {
		ss.ScaleX, ss.ScaleY = ss.TargetX, ss.TargetY
		ss.LerpSpeed = 0
	}
}
