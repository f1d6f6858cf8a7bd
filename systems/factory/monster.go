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
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateMonster(c *world.Controller, bundle *assets.Bundle, p leveldata.Placement, tuning leveldata.Physics) (*donburi.Entry, error) {
	mat := tuning.Or(leveldata.Physics{Density: cfg.Monster.Density, Friction: cfg.Monster.Friction})
	patrol := p.Range
	if patrol <= 0 {
		patrol = cfg.Monster.PatrolRange
	}
	w, h := cfg.Monster.Width, cfg.Monster.Height

	monster := archetypes.Monster.Spawn(c.World())
	components.Monster.SetValue(monster, components.MonsterData{
		Origin:    p.Position[0],
		Range:     patrol,
		Direction: -1,
		State:     components.MonsterPatrol,
	})
	components.Body.SetValue(monster, components.BodyData{
		Kind: tags.KindMonster,
		Parts: []physics.Def{{
			Type:          physics.Dynamic,
			Position:      p.Position.Vec(),
			Shape:         physics.Box(w, h),
			Material:      physics.Material{Density: mat.Density, Friction: mat.Friction, Restitution: mat.Restitution},
			FixedRotation: true,
			Sensors:       []physics.Sensor{footSensor(w, h)},
		}},
	})
	setSprite(monster, bundle, cfg.StripMonsterPatrol, w, h)
	return monster, c.AddObject(monster)
}

// CreateIcicle builds a hanging icicle. Regrown icicles are queued so they
// appear after the current step instead of mid-update.
func CreateIcicle(c *world.Controller, bundle *assets.Bundle, anchor dmath.Vec2, queued bool) (*donburi.Entry, error) {
	w, h := cfg.Icicle.Width, cfg.Icicle.Height
	icicle := archetypes.Icicle.Spawn(c.World())
	components.Icicle.SetValue(icicle, components.IcicleData{Anchor: anchor, State: components.IcicleHanging})
	components.Body.SetValue(icicle, components.BodyData{
		Kind: tags.KindIcicle,
		Parts: []physics.Def{{
			Type:     physics.Static,
			Position: anchor,
			Shape: physics.Polygon([]dmath.Vec2{
				{X: -w / 2, Y: h / 2},
				{X: 0, Y: -h / 2},
				{X: w / 2, Y: h / 2},
			}),
			Material: physics.Material{Density: cfg.Icicle.Density},
		}},
	})
	setSprite(icicle, bundle, cfg.StripIcicle, w, h)
	if queued {
		return icicle, c.QueueObject(icicle)
	}
	return icicle, c.AddObject(icicle)
}

// footSensor sits just under the body's bottom edge.
func footSensor(width, height float64) physics.Sensor {
	return physics.Sensor{
		Part:   tags.PartFoot,
		Width:  width * cfg.Player.SensorWidthFactor,
		Height: cfg.Player.SensorHeight,
		Offset: dmath.Vec2{Y: -height / 2},
	}
}
