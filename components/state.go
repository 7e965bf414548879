package components

import (
	"github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds since the last transition
	Transitions   int     // total transitions, for diagnostics and tests
}

// Set switches to s, resetting the timer. Setting the current state again
// keeps the timer running.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	s.Transitions++
}

var State = donburi.NewComponentType[StateData]()
