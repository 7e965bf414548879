package entities

import (
	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/systems"
	"github.com/automoto/dashblade/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Player hosts the player entity in a layer manager.
type Player struct {
	env   *systems.Env
	world donburi.World
	entry *donburi.Entry
	dead  bool
}

// NewPlayer creates the player entity and wires its animation events.
func NewPlayer(e *ecs.ECS, env *systems.Env, frames components.FrameSource) *Player {
	entry := factory.CreatePlayer(e, env.Config, frames)
	systems.BindPlayerAnimations(env, entry)
	return &Player{env: env, world: e.World, entry: entry}
}

func (p *Player) Update(dt float64) {
	if p.dead {
		return
	}
	systems.UpdatePlayer(p.env, p.entry, dt)
}

func (p *Player) Draw(screen *ebiten.Image) {
	if p.dead {
		return
	}
	systems.DrawPlayer(p.env, p.entry, screen)
}

func (p *Player) Destroyed() bool { return p.dead }

// Destroy marks the player for removal on the next update pass.
func (p *Player) Destroy() { p.dead = true }

// Release removes the entity from the world and drops its renderable.
func (p *Player) Release() {
	p.dead = true
	if p.entry == nil || !p.entry.Valid() {
		return
	}
	if o := components.Object.Get(p.entry); o.Object != nil && o.Space != nil {
		o.Space.Remove(o.Object)
	}
	components.Sprite.Get(p.entry).Image = nil
	p.world.Remove(p.entry.Entity())
}

// Entry exposes the underlying entity.
func (p *Player) Entry() *donburi.Entry { return p.entry }
