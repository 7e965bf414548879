package components

import (
	"github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	VelocityX float64
	VelocityY float64

	Gravity        float64
	MaxFallSpeed   float64
	Speed          float64
	JumpPower      float64
	SuperJumpSpeed float64
	AirControl     float64
	Friction       float64
	SuperJumpDrag  float64

	MaxGroundY float64
	MinX, MaxX float64

	OnGround       bool
	Station        config.Station
	IsSuperJumping bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
