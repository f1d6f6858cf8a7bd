package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// RidersData holds handles of bodies currently standing on a platform.
// A rider touching with several fixtures is listed once per contact.
type RidersData struct {
	Entities []donburi.Entity
}

func (r *RidersData) Add(e donburi.Entity) {
	r.Entities = append(r.Entities, e)
}

func (r *RidersData) Remove(e donburi.Entity) {
	for i, rider := range r.Entities {
		if rider == e {
			r.Entities = append(r.Entities[:i], r.Entities[i+1:]...)
			return
		}
	}
}

// Count returns distinct riders.
func (r *RidersData) Count() int {
	n := 0
	for i, e := range r.Entities {
		dup := false
		for _, prev := range r.Entities[:i] {
			if prev == e {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

// FloatingIceData drives the pin with a damped spring that sinks under load.
type FloatingIceData struct {
	Rest     dmath.Vec2
	Offset   float64
	Velocity float64
}

// MovingIceData drives the pin along a yoyo tween.
type MovingIceData struct {
	Origin dmath.Vec2
	Travel float64
	Tween  *gween.Sequence
}

var (
	Riders      = donburi.NewComponentType[RidersData]()
	FloatingIce = donburi.NewComponentType[FloatingIceData]()
	MovingIce   = donburi.NewComponentType[MovingIceData]()
)
