package components

import "github.com/yohamta/donburi"

// GroundData counts foot-sensor contacts with walkable surfaces. The count
// never drops below zero and the entity is grounded iff it is positive.
type GroundData struct {
	Contacts int
}

func (g *GroundData) Touch() {
	g.Contacts++
}

// Release undoes one Touch. It reports false for an unmatched release.
func (g *GroundData) Release() bool {
	if g.Contacts == 0 {
		return false
	}
	g.Contacts--
	return true
}

func (g *GroundData) OnGround() bool {
	return g.Contacts > 0
}

var Ground = donburi.NewComponentType[GroundData]()
