package factory

import (
	"github.com/automoto/penguin-squad/archetypes"
	"github.com/automoto/penguin-squad/assets"
	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	"github.com/automoto/penguin-squad/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// barAndPin describes a tilting ice bar hinged on a kinematic pin at its
// center. Part 0 is the bar, part 1 the pin.
func barAndPin(kind tags.Kind, p leveldata.Placement, tuning leveldata.Physics) components.BodyData {
	mat := tuning.Or(leveldata.Physics{Density: cfg.Ice.BarDensity, Friction: cfg.Ice.Friction})
	height := p.Height
	if height <= 0 {
		height = cfg.Ice.BarHeight
	}
	pos := p.Position.Vec()
	return components.BodyData{
		Kind: kind,
		Parts: []physics.Def{
			{
				Type:     physics.Dynamic,
				Position: pos,
				Shape:    physics.Box(p.Width, height),
				Material: physics.Material{Density: mat.Density, Friction: mat.Friction, Restitution: mat.Restitution},
				Part:     tags.PartBody,
			},
			{
				Type:     physics.Kinematic,
				Position: pos,
				Shape:    physics.Circle(cfg.Ice.PinRadius),
				IsSensor: true,
				Part:     tags.PartPin,
			},
		},
		Joint: &physics.RevoluteDef{
			A:      1,
			B:      0,
			Anchor: pos,
			Lower:  -cfg.Ice.TiltLimit,
			Upper:  cfg.Ice.TiltLimit,
		},
	}
}

// CreateFloatingIce builds a bar that bobs on a spring and sinks under riders.
func CreateFloatingIce(c *world.Controller, bundle *assets.Bundle, p leveldata.Placement, tuning leveldata.Physics) (*donburi.Entry, error) {
	ice := archetypes.FloatingIce.Spawn(c.World())
	body := barAndPin(tags.KindFloatingIce, p, tuning)
	components.Body.SetValue(ice, body)
	components.FloatingIce.SetValue(ice, components.FloatingIceData{Rest: p.Position.Vec()})
	setSprite(ice, bundle, cfg.StripFloatingIce, p.Width, body.Parts[0].Shape.Height)
	return ice, c.AddObject(ice)
}

// CreateMovingIce builds a bar whose pin slides back and forth horizontally.
func CreateMovingIce(c *world.Controller, bundle *assets.Bundle, p leveldata.Placement, tuning leveldata.Physics) (*donburi.Entry, error) {
	travel := p.Range
	if travel == 0 {
		travel = cfg.Ice.Travel
	}
	period := p.Period
	if period <= 0 {
		period = cfg.Ice.Period
	}

	ice := archetypes.MovingIce.Spawn(c.World())
	body := barAndPin(tags.KindMovingIce, p, tuning)
	components.Body.SetValue(ice, body)

	// The pin follows a gween sequence out to the travel distance and back.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(travel), float32(period), ease.InOutSine),
		gween.New(float32(travel), 0, float32(period), ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.MovingIce.SetValue(ice, components.MovingIceData{
		Origin: p.Position.Vec(),
		Travel: travel,
		Tween:  tw,
	})
	setSprite(ice, bundle, cfg.StripMovingIce, p.Width, body.Parts[0].Shape.Height)
	return ice, c.AddObject(ice)
}
