package systems

import (
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the singleton InputData.
// Must run BEFORE the scheduler update in the system order.
func UpdateInput(e *ecs.ECS, bindings cfg.InputConfig) *components.InputData {
	input := GetOrCreateInput(e)

	var pressed [cfg.ActionCount]bool
	keyboardUsed := pollKeyboard(&pressed, bindings)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	gamepadUsed := false
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		// first standard-layout pad only
		gamepadUsed = pollGamepad(&pressed, bindings, gpID)
		break
	}

	input.Advance(pressed)

	// gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
	return input
}

func pollKeyboard(pressed *[cfg.ActionCount]bool, bindings cfg.InputConfig) bool {
	used := false
	for actionID, binding := range bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				used = true
			}
		}
	}
	return used
}

func pollGamepad(pressed *[cfg.ActionCount]bool, bindings cfg.InputConfig, gpID ebiten.GamepadID) bool {
	used := false
	for actionID, binding := range bindings.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				pressed[actionID] = true
				used = true
			}
		}
	}

	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if applyStick(pressed, horizontal, bindings.AnalogDeadzone) {
		used = true
	}
	return used
}

// applyStick merges the horizontal stick axis into the movement actions.
func applyStick(pressed *[cfg.ActionCount]bool, horizontal, deadzone float64) bool {
	switch {
	case horizontal < -deadzone:
		pressed[cfg.ActionMoveLeft] = true
	case horizontal > deadzone:
		pressed[cfg.ActionMoveRight] = true
	default:
		return false
	}
	return true
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
