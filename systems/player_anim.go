package systems

import (
	"github.com/automoto/dashblade/assets/animations"
	cfg "github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
)

// BindPlayerAnimations routes the player's animation events back into its
// state machine. Call once after the player entity is created.
func BindPlayerAnimations(env *Env, entry *donburi.Entry) {
	c := newPlayerCtx(env, entry, 0)
	if c.anim.Clock == nil {
		return
	}
	c.anim.Clock.Events.Subscribe(func(evt animations.Event) {
		if !entry.Valid() {
			return
		}
		newPlayerCtx(env, entry, 0).onAnimationEvent(evt)
	})
}

func (c *playerCtx) onAnimationEvent(evt animations.Event) {
	switch evt.Animation {
	case cfg.AnimDash:
		c.onDashEvent(evt)
	case cfg.AnimDashEnd:
		if evt.Kind == animations.CycleCompleted && c.dash.Phase == cfg.DashEnding {
			c.finishDash()
		}
	case cfg.AnimA1, cfg.AnimFireAttack, cfg.AnimJumpAttack:
		if evt.Kind == animations.CycleCompleted && c.state.CurrentState.IsAttack() {
			c.endAttack()
		}
	}
}

func (c *playerCtx) onDashEvent(evt animations.Event) {
	if c.state.CurrentState != cfg.Dash || c.dash.Phase != cfg.DashStart {
		return
	}
	moveFrame := c.env.Config.Dash.MoveFrame
	if evt.Kind == animations.CycleCompleted || evt.Frame >= moveFrame {
		c.dash.Phase = cfg.DashMoving
		c.dash.Progress = 0
	}
}

// finishDash ends the end pose. The dash edge is re-armed even while the
// button is held so dashes chain without a release.
func (c *playerCtx) finishDash() {
	c.dash.IsDashing = false
	c.dash.Phase = cfg.DashNone
	c.dash.CanDashAgain = true
	if c.held(cfg.ActionDash) {
		c.player.DashKeyWasPressed = false
	}
	c.setState(cfg.Idle)
}

// animate plays the current state's animation, advances it and refreshes
// the sprite. Handlers may change state mid-advance; the new state's
// animation is applied in the same tick.
func (c *playerCtx) animate() {
	clock := c.anim.Clock
	if clock == nil {
		return
	}
	c.anim.SetAnimation(cfg.StateAnimations[c.state.CurrentState])
	clock.Advance(c.dt)
	c.anim.SetAnimation(cfg.StateAnimations[c.state.CurrentState])

	if clock.TakeDirty() && c.anim.Frames != nil {
		c.sprite.Image = c.anim.Frames.Frame(clock.Current(), clock.Frame())
	}
	c.sprite.FlipX = c.player.Direction == cfg.DirectionLeft
	c.sprite.Rotation = 0
	if c.state.CurrentState == cfg.JumpAttack {
		c.sprite.Rotation = c.env.Config.Player.JumpAttackRotation * c.player.Direction
	}
}
