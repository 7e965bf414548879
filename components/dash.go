package components

import (
	"github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
)

type DashData struct {
	IsDashing bool
	Phase     config.DashPhase
	Progress  float64 // distance covered while moving
	Distance  float64
	Speed     float64
	Direction float64

	// CanDashAgain is a one-shot lock released when the end pose completes
	// or the dash button is released with no dash active.
	CanDashAgain bool
}

var Dash = donburi.NewComponentType[DashData]()
