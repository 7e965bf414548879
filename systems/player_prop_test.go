package systems

import (
	"testing"

	"github.com/automoto/dashblade/components"
	cfg "github.com/automoto/dashblade/config"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// gameplayActions are the buttons the player reacts to, one bit each in a
// generated input byte.
var gameplayActions = []cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
	cfg.ActionJump,
	cfg.ActionDash,
	cfg.ActionAttack,
	cfg.ActionFireAttack,
}

func decodeInput(bits uint8) []cfg.ActionID {
	var ids []cfg.ActionID
	for i, id := range gameplayActions {
		if bits&(1<<i) != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func inputSequence() gopter.Gen {
	return gen.SliceOfN(240, gen.UInt8Range(0, 1<<len(gameplayActions)-1))
}

func propertyParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 40
	return params
}

func TestPlayerInvariants(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("status stays valid and never reaches DAMAGED", prop.ForAll(
		func(seq []uint8) bool {
			r := newRig(nil)
			for _, bits := range seq {
				r.step(frame, decodeInput(bits)...)
				if s := r.state(); !s.Valid() || s == cfg.Damaged {
					return false
				}
			}
			return true
		},
		inputSequence(),
	))

	properties.Property("dashing implies a dash state", prop.ForAll(
		func(seq []uint8) bool {
			r := newRig(nil)
			for _, bits := range seq {
				r.step(frame, decodeInput(bits)...)
				if r.dash().IsDashing && r.state() != cfg.Dash && r.state() != cfg.DashEnd {
					return false
				}
			}
			return true
		},
		inputSequence(),
	))

	properties.Property("fall speed and ground are respected", prop.ForAll(
		func(seq []uint8) bool {
			r := newRig(nil)
			for _, bits := range seq {
				r.step(frame, decodeInput(bits)...)
				p := r.phys()
				if p.VelocityY > p.MaxFallSpeed {
					return false
				}
				if _, y := r.feet(); y > p.MaxGroundY {
					return false
				}
			}
			return true
		},
		inputSequence(),
	))

	properties.Property("neutral input settles on the ground", prop.ForAll(
		func(seq []uint8) bool {
			r := newRig(nil)
			for _, bits := range seq {
				r.step(frame, decodeInput(bits)...)
			}
			// long enough to land, finish any dash or attack and settle
			for i := 0; i < 256; i++ {
				r.step(frame)
			}
			return r.state() == cfg.Idle && r.phys().OnGround && !r.dash().IsDashing
		},
		inputSequence(),
	))

	properties.TestingRun(t)
}

func TestSafetyPassIdempotentProperty(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("a second pass changes nothing", prop.ForAll(
		func(state int, flags uint8, held uint8) bool {
			r := newRig(nil)
			components.State.Get(r.entry).Set(cfg.StateID(state))
			r.player().JumpKeyWasPressed = flags&1 != 0
			r.player().DashKeyWasPressed = flags&2 != 0
			r.dash().IsDashing = flags&4 != 0
			r.dash().CanDashAgain = flags&8 != 0
			r.env.Input.Advance(pressed(decodeInput(held)...))

			c := newPlayerCtx(r.env, r.entry, frame)
			c.safetyPass()
			before := snapshot(r)
			c.safetyPass()
			return snapshot(r) == before
		},
		gen.IntRange(int(cfg.Idle), int(cfg.Damaged)),
		gen.UInt8Range(0, 15),
		gen.UInt8Range(0, 1<<len(gameplayActions)-1),
	))

	properties.TestingRun(t)
}
