package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ground = donburi.NewTag().SetName("Ground")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvGround = "ground"
	ResolvWall   = "wall"
	ResolvPlayer = "Player"
)
