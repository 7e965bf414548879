package systems

import (
	"math"
	"testing"

	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/automoto/dashblade/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Steps that are exact in binary keep accumulated timers free of rounding.
const (
	frame    = 1.0 / 64
	bigFrame = 0.125
)

type fakeAudio struct {
	cues []cfg.SoundID
}

func (f *fakeAudio) Play(id cfg.SoundID, _ bool, _ float64) {
	f.cues = append(f.cues, id)
}

func (f *fakeAudio) count(id cfg.SoundID) int {
	n := 0
	for _, c := range f.cues {
		if c == id {
			n++
		}
	}
	return n
}

type fakeEffects struct {
	spawned []cfg.AnimationID
}

func (f *fakeEffects) SpawnEffect(id cfg.AnimationID, _, _, _ float64) {
	f.spawned = append(f.spawned, id)
}

type rig struct {
	env   *Env
	entry *donburi.Entry
	audio *fakeAudio
	fx    *fakeEffects
	logs  *observer.ObservedLogs
}

// newRig builds a world holding one player on the ground. mutate may adjust
// the configuration before the player is created.
func newRig(mutate func(c *cfg.Config)) *rig {
	c := cfg.Default()
	if mutate != nil {
		mutate(c)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(c.Physics.MaxX), c.Height, 16, 16)
	camera := components.Camera.Get(factory.CreateCamera(e))

	core, logs := observer.New(zapcore.DebugLevel)
	r := &rig{
		audio: &fakeAudio{},
		fx:    &fakeEffects{},
		logs:  logs,
	}
	r.env = &Env{
		Config:  c,
		Input:   &components.InputData{},
		Audio:   r.audio,
		Camera:  camera,
		Effects: r.fx,
		Log:     zap.New(core),
	}
	r.entry = factory.CreatePlayer(e, c, nil)
	BindPlayerAnimations(r.env, r.entry)
	return r
}

func stalled(id cfg.AnimationID) func(c *cfg.Config) {
	return func(c *cfg.Config) {
		def := c.Animations[id]
		def.FrameRate = 0
		c.Animations[id] = def
	}
}

func pressed(ids ...cfg.ActionID) [cfg.ActionCount]bool {
	var p [cfg.ActionCount]bool
	for _, id := range ids {
		p[id] = true
	}
	return p
}

// step refreshes input with ids held and advances the player by dt.
func (r *rig) step(dt float64, ids ...cfg.ActionID) {
	r.env.Input.Advance(pressed(ids...))
	UpdatePlayer(r.env, r.entry, dt)
}

func (r *rig) state() cfg.StateID {
	return components.State.Get(r.entry).CurrentState
}

func (r *rig) phys() *components.PhysicsData {
	return components.Physics.Get(r.entry)
}

func (r *rig) dash() *components.DashData {
	return components.Dash.Get(r.entry)
}

func (r *rig) player() *components.PlayerData {
	return components.Player.Get(r.entry)
}

func (r *rig) feet() (float64, float64) {
	return components.Object.Get(r.entry).Feet()
}

func TestJumpFromIdle(t *testing.T) {
	r := newRig(nil)
	c := r.env.Config

	r.step(frame, cfg.ActionJump)

	if r.state() != cfg.JumpStart {
		t.Fatalf("state = %s, want JUMPSTART", r.state())
	}
	if want := -c.Player.JumpPower * 10; r.phys().VelocityY != want {
		t.Errorf("vy = %v, want %v", r.phys().VelocityY, want)
	}
	if r.phys().OnGround {
		t.Error("still on ground after take-off")
	}
	if !r.player().JumpLocked {
		t.Error("jump not locked")
	}
	if r.audio.count(cfg.SoundJump) != 1 {
		t.Errorf("cues = %v", r.audio.cues)
	}
	if len(r.fx.spawned) != 1 || r.fx.spawned[0] != cfg.AnimJumpDust {
		t.Errorf("effects = %v", r.fx.spawned)
	}
}

func TestReleasingJumpStartsFall(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionJump)
	r.step(frame)
	if r.state() != cfg.JumpDown {
		t.Fatalf("state = %s, want JUMPDOWN", r.state())
	}
}

func TestHeldJumpTriggersOnce(t *testing.T) {
	r := newRig(nil)
	jumps := 0
	prev := r.state()
	for i := 0; i < 300; i++ {
		r.step(frame, cfg.ActionJump)
		if s := r.state(); s == cfg.JumpStart && prev != cfg.JumpStart {
			jumps++
		}
		prev = r.state()
	}
	if jumps != 1 {
		t.Fatalf("jumps = %d, want 1", jumps)
	}
	if !r.phys().OnGround || r.state() != cfg.Idle {
		t.Fatalf("after landing: ground=%v state=%s", r.phys().OnGround, r.state())
	}

	// releasing and pressing again jumps
	r.step(frame)
	r.step(frame, cfg.ActionJump)
	if r.state() != cfg.JumpStart {
		t.Fatalf("second jump state = %s", r.state())
	}
}

func TestLanding(t *testing.T) {
	r := newRig(nil)
	lifted := false
	r.step(frame, cfg.ActionJump)
	for i := 0; i < 300 && !r.phys().OnGround; i++ {
		r.step(frame, cfg.ActionJump)
		lifted = lifted || r.env.Camera.Scroll.Y < 0
	}
	if !lifted {
		t.Error("camera never followed the ascent")
	}

	if r.state() != cfg.Idle {
		t.Fatalf("state = %s, want IDLE", r.state())
	}
	if _, y := r.feet(); y != r.env.Config.Physics.GroundY {
		t.Errorf("feet y = %v, want ground", y)
	}
	if r.player().JumpLocked {
		t.Error("jump still locked")
	}
	if r.audio.count(cfg.SoundLand) != 1 {
		t.Errorf("land cues = %d", r.audio.count(cfg.SoundLand))
	}
	if r.env.Camera.Recenter == nil {
		t.Error("camera recenter not started")
	}
	ss := components.SquashStretch.Get(r.entry)
	if ss.ScaleX <= 1 {
		t.Errorf("land squash scaleX = %v", ss.ScaleX)
	}
}

func TestComboPriority(t *testing.T) {
	r := newRig(nil)
	r.env.Input.Advance(pressed(cfg.ActionJump, cfg.ActionDash))

	c := newPlayerCtx(r.env, r.entry, frame)
	c.checkGround()
	if name := c.runTransitions(); name != "super_jump" {
		t.Fatalf("rule = %q, want super_jump", name)
	}
	if r.state() != cfg.JumpStart {
		t.Fatalf("state = %s", r.state())
	}
	p := r.phys()
	if !p.IsSuperJumping {
		t.Error("not super jumping")
	}
	if math.Abs(p.VelocityX) != p.SuperJumpSpeed {
		t.Errorf("|vx| = %v, want %v", math.Abs(p.VelocityX), p.SuperJumpSpeed)
	}
	if want := -p.JumpPower * 15; p.VelocityY != want {
		t.Errorf("vy = %v, want %v", p.VelocityY, want)
	}
	if r.dash().IsDashing {
		t.Error("combo also started a dash")
	}
}

func TestComboNeedsSimultaneousPress(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionDash)
	if r.state() != cfg.Dash {
		t.Fatalf("state = %s, want DASH", r.state())
	}
	// jump joining a held dash is not a combo; the dash ignores it
	r.step(frame, cfg.ActionDash, cfg.ActionJump)
	if r.phys().IsSuperJumping || r.state() != cfg.Dash {
		t.Fatalf("state = %s super = %v", r.state(), r.phys().IsSuperJumping)
	}
}

func TestSuperJumpDrag(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionJump, cfg.ActionDash)
	want := r.phys().SuperJumpSpeed * r.env.Config.Physics.SuperJumpDrag
	if got := r.phys().VelocityX; math.Abs(got-want) > 1e-9 {
		t.Fatalf("vx after first frame = %v, want %v", got, want)
	}

	for i := 0; i < 300 && r.phys().IsSuperJumping; i++ {
		r.step(frame)
	}
	if r.phys().IsSuperJumping {
		t.Fatal("super jump never ended")
	}
}

func TestWalkAndFriction(t *testing.T) {
	r := newRig(nil)
	x0, _ := r.feet()
	r.step(frame, cfg.ActionMoveRight)
	if r.state() != cfg.Walk {
		t.Fatalf("state = %s", r.state())
	}
	x1, _ := r.feet()
	if want := r.env.Config.Player.Speed * frame; math.Abs(x1-x0-want) > 1e-9 {
		t.Errorf("moved %v, want %v", x1-x0, want)
	}

	r.step(frame)
	if r.state() != cfg.Idle {
		t.Fatalf("state = %s, want IDLE", r.state())
	}
	if want := r.env.Config.Player.Speed * r.env.Config.Physics.Friction; r.phys().VelocityX != want {
		t.Errorf("vx = %v, want %v", r.phys().VelocityX, want)
	}
}

func TestFacingFollowsInput(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionMoveLeft)
	if r.player().Direction != cfg.DirectionLeft {
		t.Fatalf("direction = %v", r.player().Direction)
	}
	if !components.Sprite.Get(r.entry).FlipX {
		t.Error("sprite not mirrored when facing left")
	}
}

func TestAttackTimeoutWithStalledAnimation(t *testing.T) {
	r := newRig(func(c *cfg.Config) {
		stalled(cfg.AnimA1)(c)
		c.Attack.MaxDuration = 1.0
	})

	r.step(bigFrame, cfg.ActionAttack)
	if r.state() != cfg.A1 {
		t.Fatalf("state = %s, want A1", r.state())
	}
	if r.audio.count(cfg.SoundSlash) != 1 || r.audio.count(cfg.SoundVoiceAttack) != 1 {
		t.Errorf("cues = %v", r.audio.cues)
	}

	// 1.0s at 0.125s per frame: seven frames still attacking, the eighth reverts
	for i := 1; i < 8; i++ {
		r.step(bigFrame)
		if r.state() != cfg.A1 {
			t.Fatalf("left A1 after %d frames", i)
		}
	}
	r.step(bigFrame)
	if r.state() != cfg.Idle {
		t.Fatalf("state = %s after 1.0s, want IDLE", r.state())
	}
	if r.logs.FilterMessage("attack timed out").Len() != 1 {
		t.Error("timeout not logged")
	}
}

func TestAttackEndsOnAnimationCycle(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionAttack)

	// a1 is 6 frames at 18 fps, a third of a second
	for i := 0; i < 30 && r.state() == cfg.A1; i++ {
		r.step(frame)
	}
	if r.state() != cfg.Idle {
		t.Fatalf("state = %s, want IDLE", r.state())
	}
	if r.logs.FilterMessage("attack timed out").Len() != 0 {
		t.Error("cycle completion must end the attack before the timeout")
	}
	if components.Attack.Get(r.entry).Timer != 0 {
		t.Error("attack timer not reset")
	}
}

func TestJumpAttack(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionJump)
	r.step(frame, cfg.ActionJump, cfg.ActionAttack)
	if r.state() != cfg.JumpAttack {
		t.Fatalf("state = %s", r.state())
	}
	sprite := components.Sprite.Get(r.entry)
	if want := r.env.Config.Player.JumpAttackRotation; sprite.Rotation != want {
		t.Errorf("rotation = %v, want %v", sprite.Rotation, want)
	}

	// the attack finishes in the air and the player keeps falling
	for i := 0; i < 60 && r.state() == cfg.JumpAttack; i++ {
		r.step(frame)
	}
	if r.state() != cfg.JumpDown && r.state() != cfg.Idle {
		t.Fatalf("state = %s after jump attack", r.state())
	}
}

func TestFireAttackKeepsAirStation(t *testing.T) {
	r := newRig(nil)
	_, y0 := r.feet()

	r.step(frame, cfg.ActionFireAttack)
	if r.state() != cfg.FireAttack {
		t.Fatalf("state = %s", r.state())
	}
	for i := 0; i < 5; i++ {
		r.step(frame)
		if r.phys().Station != cfg.StationAir {
			t.Fatalf("station = %s on frame %d", r.phys().Station, i)
		}
		if !r.phys().OnGround {
			t.Fatal("fire attack left the ground")
		}
	}
	if _, y := r.feet(); math.Abs(y-y0) > 1e-9 {
		t.Errorf("feet moved from %v to %v", y0, y)
	}

	for i := 0; i < 60 && r.state() == cfg.FireAttack; i++ {
		r.step(frame)
	}
	if r.state() != cfg.Idle || r.phys().Station != cfg.StationGround {
		t.Fatalf("after fire attack: %s %s", r.state(), r.phys().Station)
	}
}

func TestDashScenario(t *testing.T) {
	r := newRig(stalled(cfg.AnimDashEnd))
	dc := r.env.Config.Dash

	r.step(frame, cfg.ActionDash)
	if r.state() != cfg.Dash || r.dash().Phase != cfg.DashStart {
		t.Fatalf("state = %s phase = %s", r.state(), r.dash().Phase)
	}
	if r.dash().CanDashAgain {
		t.Error("dash lock still open")
	}

	// the start pose holds position until the move frame
	x0, _ := r.feet()
	for i := 0; i < 100 && r.dash().Phase == cfg.DashStart; i++ {
		r.step(frame)
		if x, _ := r.feet(); math.Abs(x-x0) > 1e-9 {
			t.Fatalf("moved %v during start phase", x-x0)
		}
	}
	if r.dash().Phase != cfg.DashMoving {
		t.Fatalf("phase = %s, want moving", r.dash().Phase)
	}

	start, _ := r.feet()
	for i := 0; i < 500 && r.dash().Phase == cfg.DashMoving; i++ {
		r.step(frame)
	}
	if r.state() != cfg.DashEnd || r.dash().Phase != cfg.DashEnding {
		t.Fatalf("state = %s phase = %s", r.state(), r.dash().Phase)
	}

	progress := r.dash().Progress
	if progress < dc.EndThreshold*dc.Distance || progress > dc.Distance {
		t.Errorf("progress = %v, want in [%v, %v]", progress, dc.EndThreshold*dc.Distance, dc.Distance)
	}
	end, _ := r.feet()
	if math.Abs((end-start)-progress) > 1e-9 {
		t.Errorf("displacement %v != progress %v", end-start, progress)
	}

	// the end pose never completes here, and it must not move
	for i := 0; i < 50; i++ {
		r.step(frame)
	}
	if x, _ := r.feet(); math.Abs(x-end) > 1e-9 {
		t.Errorf("moved %v during end pose", x-end)
	}
	if r.state() != cfg.DashEnd || !r.dash().IsDashing {
		t.Errorf("state = %s dashing = %v", r.state(), r.dash().IsDashing)
	}
}

func TestDashDirectionFromInput(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionMoveLeft, cfg.ActionDash)
	if r.state() != cfg.Dash {
		t.Fatalf("state = %s", r.state())
	}
	if r.dash().Direction != cfg.DirectionLeft {
		t.Errorf("dash direction = %v, want left", r.dash().Direction)
	}
}

func TestDashEndReturnsToIdle(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionDash)
	for i := 0; i < 500 && r.state() != cfg.Idle; i++ {
		r.step(frame)
	}
	d := r.dash()
	if r.state() != cfg.Idle || d.IsDashing || d.Phase != cfg.DashNone || !d.CanDashAgain {
		t.Fatalf("state = %s dash = %+v", r.state(), *d)
	}
}

func TestHeldDashChains(t *testing.T) {
	r := newRig(nil)
	dashes := 0
	prev := r.state()
	for i := 0; i < 400; i++ {
		r.step(frame, cfg.ActionDash)
		if s := r.state(); s == cfg.Dash && prev != cfg.Dash {
			dashes++
		}
		prev = r.state()
	}
	if dashes < 2 {
		t.Fatalf("dashes = %d, want a chain", dashes)
	}
}

func TestSafetyPassRecoversAndIsIdempotent(t *testing.T) {
	r := newRig(nil)
	components.State.Get(r.entry).Set(cfg.JumpDown)
	r.dash().IsDashing = true
	r.dash().CanDashAgain = false
	r.player().JumpKeyWasPressed = true
	r.player().DashKeyWasPressed = true

	c := newPlayerCtx(r.env, r.entry, frame)
	c.safetyPass()

	if r.state() != cfg.Idle {
		t.Errorf("state = %s, want IDLE", r.state())
	}
	if r.dash().IsDashing || !r.dash().CanDashAgain {
		t.Errorf("dash = %+v", *r.dash())
	}
	if r.player().JumpKeyWasPressed || r.player().DashKeyWasPressed {
		t.Error("edge flags not cleared")
	}
	if r.logs.FilterMessage("forced idle").Len() != 1 ||
		r.logs.FilterMessage("cleared stale dash flag").Len() != 1 {
		t.Error("recoveries not logged")
	}

	before := snapshot(r)
	c.safetyPass()
	if after := snapshot(r); after != before {
		t.Fatalf("second pass changed state:\n%+v\n%+v", before, after)
	}
}

func TestSafetyPassSkipsAirborne(t *testing.T) {
	r := newRig(nil)
	r.step(frame, cfg.ActionJump)
	r.player().DashKeyWasPressed = true

	newPlayerCtx(r.env, r.entry, frame).safetyPass()
	if !r.player().DashKeyWasPressed || r.state() != cfg.JumpStart {
		t.Fatal("safety pass ran in the air")
	}
}

type playerSnapshot struct {
	state  components.StateData
	player components.PlayerData
	dash   components.DashData
	phys   components.PhysicsData
}

func snapshot(r *rig) playerSnapshot {
	return playerSnapshot{
		state:  *components.State.Get(r.entry),
		player: *r.player(),
		dash:   *r.dash(),
		phys:   *r.phys(),
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	r := newRig(func(c *cfg.Config) {
		c.Player.SpawnX = 20
	})
	for i := 0; i < 120; i++ {
		r.step(frame, cfg.ActionMoveLeft)
	}
	x, _ := r.feet()
	half := float64(r.env.Config.Player.CollisionWidth) / 2
	if x != r.env.Config.Physics.MinX+half {
		t.Errorf("x = %v, want clamped to %v", x, r.env.Config.Physics.MinX+half)
	}
	if r.phys().VelocityX != 0 {
		t.Errorf("vx = %v at the bound", r.phys().VelocityX)
	}
}

func TestNilCollaborators(t *testing.T) {
	r := newRig(nil)
	r.env.Audio = nil
	r.env.Effects = nil
	r.env.Log = nil
	r.step(frame, cfg.ActionJump)
	for i := 0; i < 100; i++ {
		r.step(frame)
	}
	if r.state() != cfg.Idle {
		t.Fatalf("state = %s", r.state())
	}
}

func TestDashEasing(t *testing.T) {
	dc := cfg.Default().Dash
	cases := []struct {
		p    float64
		want float64
	}{
		{0, dc.EaseMin},
		{dc.EaseInPortion, 1},
		{1, dc.EaseOutMin},
		{-1, dc.EaseMin},
		{2, dc.EaseOutMin},
	}
	for _, tc := range cases {
		if got := DashEasing(dc, tc.p); math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("DashEasing(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
	if a, b := DashEasing(dc, 0.1), DashEasing(dc, 0.3); a >= b {
		t.Errorf("ease-in not increasing: %v >= %v", a, b)
	}
	if a, b := DashEasing(dc, 0.6), DashEasing(dc, 0.9); a <= b {
		t.Errorf("ease-out not decreasing: %v <= %v", a, b)
	}
}
