package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerState uint8

const (
	PlayerWalking PlayerState = iota
	PlayerJumpRising
	PlayerJumpHanging
	PlayerJumpLanding
	PlayerThrowing
)

func (s PlayerState) String() string {
	switch s {
	case PlayerJumpRising:
		return "jumpRising"
	case PlayerJumpHanging:
		return "jumpHanging"
	case PlayerJumpLanding:
		return "jumpLanding"
	case PlayerThrowing:
		return "throwing"
	default:
		return "walking"
	}
}

// Throw phases
const (
	ThrowIdle     = 0
	ThrowCharging = 1
)

type PlayerData struct {
	State       PlayerState
	FacingRight bool

	// Penguins is ordered by throw index. Entries below NumPenguins are carried.
	Penguins      []donburi.Entity
	NumPenguins   int
	TotalPenguins int

	JumpCooldown  int
	ThrowCooldown int
	PunchCooldown int

	Aim         dmath.Vec2
	ThrowForce  float64
	ThrowPhase  int
	LastImpulse dmath.Vec2 // Impulse applied by the most recent throw

	ExitContacts int
}

var Player = donburi.NewComponentType[PlayerData]()
