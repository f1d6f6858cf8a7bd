// Package leveldata describes levels as plain data and loads them from YAML
// documents or Tiled maps. It knows nothing about physics or entities.
package leveldata

import (
	"errors"
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrUnknownLevel = errors.New("unknown level")
)

// Point is an x, y pair in world units, y up.
type Point [2]float64

func (p Point) Vec() dmath.Vec2 {
	return dmath.Vec2{X: p[0], Y: p[1]}
}

// Physics holds optional tuning overrides. Zero fields fall back to defaults.
type Physics struct {
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

// Or fills zero fields from def.
func (p Physics) Or(def Physics) Physics {
	if p.Density == 0 {
		p.Density = def.Density
	}
	if p.Friction == 0 {
		p.Friction = def.Friction
	}
	if p.Restitution == 0 {
		p.Restitution = def.Restitution
	}
	return p
}

// Placement positions one entity. Position is the entity center.
type Placement struct {
	Position Point   `yaml:"position"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Range    float64 `yaml:"range"`  // Patrol half-span or travel distance
	Period   float64 `yaml:"period"` // Seconds per leg for moving ice
}

// Group is every placement of one entity type plus its shared tuning.
type Group struct {
	Physics    Physics     `yaml:"physics"`
	Placements []Placement `yaml:"placements"`
}

// Polygon is a flat list of x, y coordinates.
type Polygon []float64

func (p Polygon) Points() []dmath.Vec2 {
	pts := make([]dmath.Vec2, 0, len(p)/2)
	for i := 0; i+1 < len(p); i += 2 {
		pts = append(pts, dmath.Vec2{X: p[i], Y: p[i+1]})
	}
	return pts
}

type Terrain struct {
	Physics  Physics   `yaml:"physics"`
	Polygons []Polygon `yaml:"polygons"`
}

type Avatar struct {
	Position Point   `yaml:"position"`
	Physics  Physics `yaml:"physics"`
}

type Squad struct {
	Count   int     `yaml:"count"`
	Physics Physics `yaml:"physics"`
}

// Level is a complete level description.
type Level struct {
	Name        string    `yaml:"name"`
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	Gravity     float64   `yaml:"gravity"`
	Terrain     Terrain   `yaml:"terrain"`
	Player      Avatar    `yaml:"player"`
	Penguins    Squad     `yaml:"penguins"`
	Notes       Group     `yaml:"notes"`
	Exit        Placement `yaml:"exit"`
	Water       Group     `yaml:"water"`
	Ice         Group     `yaml:"ice"`
	FloatingIce Group     `yaml:"floating_ice"`
	MovingIce   Group     `yaml:"moving_ice"`
	Monsters    Group     `yaml:"monsters"`
	Icicles     Group     `yaml:"icicles"`
}

// Validate checks the structural rules the loaders cannot express.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("leveldata: %w: missing name", ErrInvalidLevel)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("leveldata: %s: %w: bounds %vx%v", l.Name, ErrInvalidLevel, l.Width, l.Height)
	}
	if l.Penguins.Count < 0 {
		return fmt.Errorf("leveldata: %s: %w: negative penguin count", l.Name, ErrInvalidLevel)
	}
	if l.Exit.Width <= 0 || l.Exit.Height <= 0 {
		return fmt.Errorf("leveldata: %s: %w: exit has no area", l.Name, ErrInvalidLevel)
	}
	for i, poly := range l.Terrain.Polygons {
		if len(poly)%2 != 0 || len(poly) < 6 {
			return fmt.Errorf("leveldata: %s: %w: terrain polygon %d needs at least 3 points", l.Name, ErrInvalidLevel, i)
		}
	}
	sized := map[string]Group{"water": l.Water, "ice": l.Ice, "floating_ice": l.FloatingIce, "moving_ice": l.MovingIce}
	for _, name := range []string{"water", "ice", "floating_ice", "moving_ice"} {
		for i, p := range sized[name].Placements {
			if p.Width <= 0 || p.Height <= 0 {
				return fmt.Errorf("leveldata: %s: %w: %s %d has no area", l.Name, ErrInvalidLevel, name, i)
			}
		}
	}
	return nil
}
