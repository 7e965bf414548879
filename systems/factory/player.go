package factory

import (
	"github.com/automoto/dashblade/archetypes"
	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing on the ground at the configured
// spawn x, facing right, in Idle.
func CreatePlayer(ecs *ecs.ECS, c *cfg.Config, frames components.FrameSource) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(c.Player.CollisionWidth)
	h := float64(c.Player.CollisionHeight)
	obj := resolv.NewObject(c.Player.SpawnX-w/2, c.Physics.GroundY-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:        c.Physics.Gravity,
		MaxFallSpeed:   c.Physics.MaxFallSpeed,
		Speed:          c.Player.Speed,
		JumpPower:      c.Player.JumpPower,
		SuperJumpSpeed: c.Player.SuperJumpSpeed,
		AirControl:     c.Player.AirControl,
		Friction:       c.Physics.Friction,
		SuperJumpDrag:  c.Physics.SuperJumpDrag,
		MaxGroundY:     c.Physics.GroundY,
		MinX:           c.Physics.MinX,
		MaxX:           c.Physics.MaxX,
		OnGround:       true,
		Station:        cfg.StationGround,
	})
	components.Dash.SetValue(player, components.DashData{
		Distance:     c.Dash.Distance,
		Speed:        c.Dash.Speed,
		Direction:    cfg.DirectionRight,
		CanDashAgain: true,
	})
	components.Attack.SetValue(player, components.AttackData{
		MaxDuration: c.Attack.MaxDuration,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1, ScaleY: 1, TargetX: 1, TargetY: 1,
	})

	animData := GenerateAnimations(c.Animations, frames, cfg.AnimIdle)
	components.Animation.Set(player, animData)
	components.Sprite.SetValue(player, components.SpriteData{
		Image: animData.Frame(),
	})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
