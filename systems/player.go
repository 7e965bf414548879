package systems

import (
	"slices"

	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// playerCtx bundles the player's components for one step.
type playerCtx struct {
	env   *Env
	entry *donburi.Entry
	log   *zap.Logger
	dt    float64

	player *components.PlayerData
	obj    *components.ObjectData
	phys   *components.PhysicsData
	state  *components.StateData
	dash   *components.DashData
	attack *components.AttackData
	anim   *components.AnimationData
	sprite *components.SpriteData
	squash *components.SquashStretchData

	// steered is set when input drove horizontal velocity this frame.
	steered bool
}

func newPlayerCtx(env *Env, entry *donburi.Entry, dt float64) *playerCtx {
	return &playerCtx{
		env:    env,
		entry:  entry,
		log:    env.logger(),
		dt:     dt,
		player: components.Player.Get(entry),
		obj:    components.Object.Get(entry),
		phys:   components.Physics.Get(entry),
		state:  components.State.Get(entry),
		dash:   components.Dash.Get(entry),
		attack: components.Attack.Get(entry),
		anim:   components.Animation.Get(entry),
		sprite: components.Sprite.Get(entry),
		squash: components.SquashStretch.Get(entry),
	}
}

// UpdatePlayer advances the player by dt seconds: ground check, transition
// table, physics, safety pass, animation (whose events may transition
// again) and camera.
func UpdatePlayer(env *Env, entry *donburi.Entry, dt float64) {
	if entry == nil || !entry.Valid() {
		return
	}
	c := newPlayerCtx(env, entry, dt)
	c.state.StateTimer += dt

	c.checkGround()
	c.runTransitions()
	c.integrate()
	c.safetyPass()
	c.animate()

	updateSquashStretch(c.squash)
	UpdateCamera(env.Camera, dt)
}

func (c *playerCtx) checkGround() {
	_, y := c.obj.Feet()
	c.phys.OnGround = y >= c.phys.MaxGroundY
}

func (c *playerCtx) held(id cfg.ActionID) bool {
	return c.env.Input != nil && c.env.Input.Down(id)
}

func (c *playerCtx) action(id cfg.ActionID) components.ActionState {
	if c.env.Input == nil {
		return components.ActionState{}
	}
	return c.env.Input.Action(id)
}

// moveDir returns -1, 0 or 1 from the held movement keys.
func (c *playerCtx) moveDir() float64 {
	left, right := c.held(cfg.ActionMoveLeft), c.held(cfg.ActionMoveRight)
	switch {
	case right && !left:
		return cfg.DirectionRight
	case left && !right:
		return cfg.DirectionLeft
	}
	return 0
}

func (c *playerCtx) jumpEdge() bool {
	return c.held(cfg.ActionJump) && !c.player.JumpKeyWasPressed
}

func (c *playerCtx) dashEdge() bool {
	return c.held(cfg.ActionDash) && !c.player.DashKeyWasPressed
}

// comboEdge requires both buttons to go down on this very frame.
func (c *playerCtx) comboEdge() bool {
	return c.jumpEdge() && c.dashEdge() &&
		c.action(cfg.ActionJump).JustPressed && c.action(cfg.ActionDash).JustPressed
}

func (c *playerCtx) anyInputHeld() bool {
	for _, id := range []cfg.ActionID{
		cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionJump,
		cfg.ActionDash, cfg.ActionAttack, cfg.ActionFireAttack,
	} {
		if c.held(id) {
			return true
		}
	}
	return false
}

func (c *playerCtx) setState(next cfg.StateID) {
	prev := c.state.CurrentState
	c.state.Set(next)
	if prev != next {
		c.log.Debug("state", zap.Stringer("from", prev), zap.Stringer("to", next))
	}
}

// transition is one row of the player's priority-ordered rule table. A nil
// from matches any state.
type transition struct {
	name  string
	from  []cfg.StateID
	when  func(c *playerCtx) bool
	apply func(c *playerCtx)
}

var (
	groundedControl = []cfg.StateID{cfg.Idle, cfg.Walk}
	jumping         = []cfg.StateID{cfg.JumpStart, cfg.JumpDown}
	attacking       = []cfg.StateID{cfg.A1, cfg.FireAttack, cfg.JumpAttack}
)

func always(*playerCtx) bool { return true }

var playerTransitions = []transition{
	{
		name: "attack",
		from: groundedControl,
		when: func(c *playerCtx) bool {
			return c.phys.OnGround && c.action(cfg.ActionAttack).JustPressed
		},
		apply: enterA1,
	},
	{
		name: "fire_attack",
		from: groundedControl,
		when: func(c *playerCtx) bool {
			return c.phys.OnGround && c.action(cfg.ActionFireAttack).JustPressed
		},
		apply: enterFireAttack,
	},
	{
		name: "super_jump",
		from: groundedControl,
		when: func(c *playerCtx) bool {
			return c.phys.OnGround && c.comboEdge() && !c.player.JumpLocked && c.dash.CanDashAgain
		},
		apply: enterSuperJump,
	},
	{
		name: "jump",
		from: groundedControl,
		when: func(c *playerCtx) bool {
			return c.phys.OnGround && c.jumpEdge() && !c.player.JumpLocked
		},
		apply: enterJump,
	},
	{
		name: "dash",
		from: groundedControl,
		when: func(c *playerCtx) bool {
			return c.phys.OnGround && c.dashEdge() && !c.dash.IsDashing && c.dash.CanDashAgain
		},
		apply: enterDash,
	},
	{
		name: "move",
		from: groundedControl,
		when: func(c *playerCtx) bool {
			return c.phys.OnGround
		},
		apply: groundMove,
	},
	{
		name: "jump_attack",
		from: jumping,
		when: func(c *playerCtx) bool {
			return c.action(cfg.ActionAttack).JustPressed
		},
		apply: enterJumpAttack,
	},
	{
		name:  "airborne",
		from:  jumping,
		when:  always,
		apply: airborne,
	},
	// Dash and DashEnd ignore input; their exits are animation events.
	{
		name:  "dash_locked",
		from:  []cfg.StateID{cfg.Dash, cfg.DashEnd},
		when:  always,
		apply: func(*playerCtx) {},
	},
	{
		name:  "attack_timeout",
		from:  attacking,
		when:  always,
		apply: tickAttack,
	},
	{
		name: "fall",
		when: func(c *playerCtx) bool {
			return !c.phys.OnGround
		},
		apply: func(c *playerCtx) {
			c.setState(cfg.JumpDown)
		},
	},
}

// runTransitions applies the first rule whose source state and condition
// match. It returns the rule name, or "" when none matched.
func (c *playerCtx) runTransitions() string {
	current := c.state.CurrentState
	for i := range playerTransitions {
		t := &playerTransitions[i]
		if t.from != nil && !slices.Contains(t.from, current) {
			continue
		}
		if !t.when(c) {
			continue
		}
		t.apply(c)
		return t.name
	}
	return ""
}

func enterA1(c *playerCtx) {
	c.setState(cfg.A1)
	c.attack.Timer = 0
	c.env.playSound(cfg.SoundSlash)
	c.env.playSound(cfg.SoundVoiceAttack)
}

func enterFireAttack(c *playerCtx) {
	c.setState(cfg.FireAttack)
	c.attack.Timer = 0
	// Animation-only airborne pose; the body stays on the ground.
	c.phys.Station = cfg.StationAir
	c.log.Debug("fire attack forces air station while grounded")
	c.env.playSound(cfg.SoundFireAttack)
}

func enterSuperJump(c *playerCtx) {
	c.setState(cfg.JumpStart)
	c.phys.IsSuperJumping = true
	c.phys.VelocityY = -c.phys.JumpPower * 10 * 1.5
	c.phys.VelocityX = c.player.Direction * c.phys.SuperJumpSpeed
	c.player.JumpLocked = true
	c.player.JumpKeyWasPressed = true
	c.player.DashKeyWasPressed = true
	c.takeOff()
}

func enterJump(c *playerCtx) {
	c.setState(cfg.JumpStart)
	c.phys.VelocityY = -c.phys.JumpPower * 10
	c.player.JumpLocked = true
	c.player.JumpKeyWasPressed = true
	c.takeOff()
}

func (c *playerCtx) takeOff() {
	c.env.playSound(cfg.SoundJump)
	x, y := c.obj.Feet()
	c.env.spawnEffect(cfg.AnimJumpDust, x, y, c.player.Direction)
	fx := c.env.Config.Effects
	TriggerSquashStretch(c.squash, fx.JumpScaleX, fx.JumpScaleY, fx.LerpSpeed)
}

func enterDash(c *playerCtx) {
	dir := c.moveDir()
	if dir == 0 {
		dir = c.player.Direction
	}
	c.player.Direction = dir
	c.player.DashKeyWasPressed = true

	c.dash.IsDashing = true
	c.dash.Phase = cfg.DashStart
	c.dash.Progress = 0
	c.dash.Direction = dir
	c.dash.CanDashAgain = false

	c.phys.VelocityX = 0
	c.setState(cfg.Dash)
	c.env.playSound(cfg.SoundDash)
}

func groundMove(c *playerCtx) {
	if dir := c.moveDir(); dir != 0 {
		c.player.Direction = dir
		c.phys.VelocityX = dir * c.phys.Speed
		c.steered = true
		c.setState(cfg.Walk)
		return
	}
	if !c.dash.IsDashing {
		c.setState(cfg.Idle)
	}
}

func enterJumpAttack(c *playerCtx) {
	c.setState(cfg.JumpAttack)
	c.attack.Timer = 0
	c.env.playSound(cfg.SoundSlash)
}

func airborne(c *playerCtx) {
	airControl(c)

	if c.state.CurrentState != cfg.JumpStart {
		return
	}
	if c.phys.VelocityY < 0 && c.held(cfg.ActionJump) {
		_, y := c.obj.Feet()
		LiftCamera(c.env.Camera, c.env.Config.Camera, c.phys.MaxGroundY-y)
		return
	}
	c.setState(cfg.JumpDown)
}

// airControl steers at reduced speed. A super jump keeps its momentum and
// only turns to face the input.
func airControl(c *playerCtx) {
	dir := c.moveDir()
	if dir == 0 {
		return
	}
	c.player.Direction = dir
	if c.phys.IsSuperJumping {
		return
	}
	c.phys.VelocityX = dir * c.phys.Speed * c.phys.AirControl
	c.steered = true
}

func tickAttack(c *playerCtx) {
	c.attack.Timer += c.dt
	if c.attack.Timer < c.attack.MaxDuration {
		return
	}
	c.log.Warn("attack timed out",
		zap.Stringer("state", c.state.CurrentState),
		zap.Float64("elapsed", c.attack.Timer))
	c.endAttack()
}

// endAttack reverts an attack to the grounded or airborne resting state.
func (c *playerCtx) endAttack() {
	c.attack.Timer = 0
	if c.phys.OnGround {
		c.phys.Station = cfg.StationGround
		c.setState(cfg.Idle)
		return
	}
	c.setState(cfg.JumpDown)
}
