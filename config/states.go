package config

// StateID identifies the player's authoritative status. The zero value is
// Idle so a freshly created entity always has a valid status.
type StateID int

const (
	Idle StateID = iota
	Walk
	Dash
	DashEnd
	JumpStart
	JumpDown
	A1
	FireAttack
	JumpAttack
	Damaged // reserved, no transition targets it

	stateCount
)

var stateNames = [stateCount]string{
	Idle:       "IDLE",
	Walk:       "WALK",
	Dash:       "DASH",
	DashEnd:    "DASHEND",
	JumpStart:  "JUMPSTART",
	JumpDown:   "JUMPDOWN",
	A1:         "A1",
	FireAttack: "FIREATTACK",
	JumpAttack: "JUMPATTACK",
	Damaged:    "DAMAGED",
}

func (s StateID) String() string {
	if s < 0 || s >= stateCount {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Valid reports whether s is one of the enumerated states.
func (s StateID) Valid() bool {
	return s >= 0 && s < stateCount
}

// AllStates returns every enumerated state in declaration order.
func AllStates() []StateID {
	out := make([]StateID, 0, stateCount)
	for s := StateID(0); s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// IsAttack reports whether s is one of the attack states.
func (s StateID) IsAttack() bool {
	return s == A1 || s == FireAttack || s == JumpAttack
}

// IsGroundedControl reports whether s accepts the grounded action table.
func (s StateID) IsGroundedControl() bool {
	return s == Idle || s == Walk
}

// DashPhase tracks the sub-state of Dash/DashEnd.
type DashPhase int

const (
	DashNone DashPhase = iota
	DashStart
	DashMoving
	DashEnding
)

func (p DashPhase) String() string {
	switch p {
	case DashStart:
		return "start"
	case DashMoving:
		return "moving"
	case DashEnding:
		return "end"
	default:
		return "none"
	}
}

// Station is the animation-facing position class of an entity.
type Station int

const (
	StationGround Station = iota
	StationAir
	StationAttachWall
)

func (s Station) String() string {
	switch s {
	case StationAir:
		return "AIR"
	case StationAttachWall:
		return "ATTACH_WALL"
	default:
		return "GROUND"
	}
}

// StateAnimations maps each status to the animation it plays.
var StateAnimations = map[StateID]AnimationID{
	Idle:       AnimIdle,
	Walk:       AnimWalk,
	Dash:       AnimDash,
	DashEnd:    AnimDashEnd,
	JumpStart:  AnimJumpStart,
	JumpDown:   AnimJumpDown,
	A1:         AnimA1,
	FireAttack: AnimFireAttack,
	JumpAttack: AnimJumpAttack,
	Damaged:    AnimDamaged,
}
