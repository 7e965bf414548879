package components

import "github.com/yohamta/donburi"

// PauseData stores the pause and debug overlay switches
type PauseData struct {
	IsPaused  bool
	ShowDebug bool
}

var Pause = donburi.NewComponentType[PauseData]()
