package components

import (
	cfg "github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

// Action returns the temporal state of id.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Down reports whether id is held this frame.
func (in *InputData) Down(id cfg.ActionID) bool {
	return in.Current[id]
}

// Advance starts a new frame: current becomes previous and current is
// replaced by pressed.
func (in *InputData) Advance(pressed [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = pressed
}

var Input = donburi.NewComponentType[InputData]()
