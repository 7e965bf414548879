package systems

import (
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause and debug overlay toggles.
// This system should run AFTER UpdateInput but BEFORE the scheduler.
func UpdatePause(e *ecs.ECS, input *components.InputData) *components.PauseData {
	pause := GetOrCreatePause(e)
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		pause.ShowDebug = !pause.ShowDebug
	}
	return pause
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	face, ok := fonts.Title.Lookup()
	if !ok {
		return
	}
	const label = "PAUSED"
	bounds := text.BoundString(face, label)
	x := (width - bounds.Dx()) / 2
	y := height / 2
	text.Draw(screen, label, face, x, y, cfg.White)

	if small, ok := fonts.Small.Lookup(); ok {
		hint := pauseHint(GetOrCreateInput(e).LastInputMethod)
		hb := text.BoundString(small, hint)
		text.Draw(screen, hint, small, (width-hb.Dx())/2, y+32, cfg.Grey)
	}
}

func pauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Start: Resume"
	}
	return "Esc: Resume   M: Mute   F11: Fullscreen"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
