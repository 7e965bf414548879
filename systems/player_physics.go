package systems

import (
	"math"

	cfg "github.com/automoto/dashblade/config"
	"github.com/tanema/gween/ease"
)

// integrate moves the player for one frame: state-specific horizontal
// motion, gravity, position, ground and bounds clamps, then the collision
// box sync.
func (c *playerCtx) integrate() {
	p := c.phys
	dt := c.dt
	wasOnGround := p.OnGround
	x, y := c.obj.Feet()
	startX := x

	switch c.state.CurrentState {
	case cfg.Dash:
		p.VelocityX = 0
		if c.dash.Phase == cfg.DashMoving {
			x += c.dashStep()
		}
	case cfg.DashEnd:
		p.VelocityX = 0
	default:
		c.horizontalDecay()
	}

	if !wasOnGround {
		p.VelocityY += p.Gravity * dt
		if p.VelocityY > p.MaxFallSpeed {
			p.VelocityY = p.MaxFallSpeed
		}
	}

	x += p.VelocityX * dt
	y += p.VelocityY * dt

	if y >= p.MaxGroundY {
		y = p.MaxGroundY
		if p.VelocityY > 0 {
			p.VelocityY = 0
		}
	}
	p.OnGround = y >= p.MaxGroundY

	halfW := c.obj.W / 2
	if x < p.MinX+halfW {
		x = p.MinX + halfW
		p.VelocityX = 0
	} else if x > p.MaxX-halfW {
		x = p.MaxX - halfW
		p.VelocityX = 0
	}

	c.obj.SetFeet(x, y)
	c.obj.Update()

	switch {
	case !p.OnGround:
		p.Station = cfg.StationAir
	case c.state.CurrentState != cfg.FireAttack:
		p.Station = cfg.StationGround
	}

	if !wasOnGround && p.OnGround {
		c.land()
	}

	NudgeCamera(c.env.Camera, c.env.Config.Camera, float64(c.env.Config.Width), x, x-startX)
}

// horizontalDecay applies super-jump drag or ground friction.
func (c *playerCtx) horizontalDecay() {
	p := c.phys
	if p.IsSuperJumping {
		p.VelocityX *= p.SuperJumpDrag
		if p.VelocityY > 2*p.JumpPower {
			p.VelocityX /= 2
			p.IsSuperJumping = false
		}
		return
	}
	if !c.steered {
		p.VelocityX *= p.Friction
	}
}

// dashStep advances a moving dash and returns the signed displacement.
func (c *playerCtx) dashStep() float64 {
	d := c.dash
	if dir := c.moveDir(); dir != 0 {
		d.Direction = dir
		c.player.Direction = dir
	}

	step := d.Speed * c.dt * DashEasing(c.env.Config.Dash, d.Progress/d.Distance)
	d.Progress += step

	if d.Progress >= c.env.Config.Dash.EndThreshold*d.Distance {
		d.Phase = cfg.DashEnding
		c.setState(cfg.DashEnd)
	}
	return d.Direction * step
}

// DashEasing returns the speed factor at progress fraction p: a linear ramp
// from EaseMin to 1 over the first EaseInPortion, then down to EaseOutMin.
func DashEasing(dc cfg.DashConfig, p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	if p < dc.EaseInPortion {
		return float64(ease.Linear(
			float32(p), float32(dc.EaseMin), float32(1-dc.EaseMin), float32(dc.EaseInPortion)))
	}
	return float64(ease.Linear(
		float32(p-dc.EaseInPortion), 1, float32(dc.EaseOutMin-1), float32(1-dc.EaseInPortion)))
}

// land runs once on the frame the player touches down.
func (c *playerCtx) land() {
	c.player.JumpLocked = false
	c.phys.IsSuperJumping = false

	c.env.playSound(cfg.SoundLand)
	x, y := c.obj.Feet()
	c.env.spawnEffect(cfg.AnimLandDust, x, y, c.player.Direction)
	fx := c.env.Config.Effects
	TriggerSquashStretch(c.squash, fx.LandScaleX, fx.LandScaleY, fx.LerpSpeed)
	RecenterCamera(c.env.Camera, c.env.Config.Camera)

	switch c.state.CurrentState {
	case cfg.JumpStart, cfg.JumpDown:
		if c.moveDir() != 0 {
			c.setState(cfg.Walk)
		} else {
			c.setState(cfg.Idle)
		}
	}
}
