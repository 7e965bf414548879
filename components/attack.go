package components

import "github.com/yohamta/donburi"

type AttackData struct {
	Timer       float64 // seconds spent in the current attack
	MaxDuration float64
}

var Attack = donburi.NewComponentType[AttackData]()
