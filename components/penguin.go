package components

import "github.com/yohamta/donburi"

type PenguinState uint8

const (
	PenguinWalking PenguinState = iota
	PenguinRolling
	PenguinResting
)

func (s PenguinState) String() string {
	switch s {
	case PenguinRolling:
		return "rolling"
	case PenguinResting:
		return "resting"
	default:
		return "walking"
	}
}

type PenguinData struct {
	Index   int
	Owner   donburi.Entity
	Thrown  bool
	State   PenguinState
	Drowned bool // Touched water during the step; returned to the squad on the next update
}

var Penguin = donburi.NewComponentType[PenguinData]()
