package systems

import (
	cfg "github.com/automoto/dashblade/config"
	"go.uber.org/zap"
)

// safetyPass converges a grounded player to a consistent state. Applying it
// twice in a row changes nothing the second time.
func (c *playerCtx) safetyPass() {
	if !c.phys.OnGround {
		return
	}

	if c.player.JumpKeyWasPressed && !c.held(cfg.ActionJump) {
		c.player.JumpKeyWasPressed = false
		c.log.Debug("jump edge re-armed")
	}
	if c.player.DashKeyWasPressed && !c.held(cfg.ActionDash) {
		c.player.DashKeyWasPressed = false
		c.log.Debug("dash edge re-armed")
	}
	if !c.dash.CanDashAgain && !c.dash.IsDashing && !c.held(cfg.ActionDash) {
		c.dash.CanDashAgain = true
	}

	current := c.state.CurrentState
	if c.dash.IsDashing && current != cfg.Dash && current != cfg.DashEnd {
		c.log.Warn("cleared stale dash flag", zap.Stringer("state", current))
		c.dash.IsDashing = false
		c.dash.Phase = cfg.DashNone
		c.dash.CanDashAgain = true
	}

	switch current {
	case cfg.Idle, cfg.Walk, cfg.Dash, cfg.DashEnd:
		return
	}
	if current.IsAttack() || c.anyInputHeld() {
		return
	}
	c.log.Warn("forced idle", zap.Stringer("state", current))
	c.phys.Station = cfg.StationGround
	c.setState(cfg.Idle)
}
