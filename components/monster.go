package components

import "github.com/yohamta/donburi"

type MonsterState uint8

const (
	MonsterPatrol MonsterState = iota
	MonsterAggressive
)

func (s MonsterState) String() string {
	if s == MonsterAggressive {
		return "aggressive"
	}
	return "patrol"
}

type MonsterData struct {
	Origin    float64 // Patrol center x
	Range     float64 // Patrol half-span
	Direction float64 // -1 or 1
	State     MonsterState
	Threat    donburi.Entity
}

var Monster = donburi.NewComponentType[MonsterData]()
