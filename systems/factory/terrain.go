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

// CreateTerrain builds a static polygon. The body sits at the vertex
// centroid so placement checks see a point inside the shape.
func CreateTerrain(c *world.Controller, bundle *assets.Bundle, poly leveldata.Polygon, tuning leveldata.Physics) (*donburi.Entry, error) {
	pts := poly.Points()
	var center dmath.Vec2
	for _, p := range pts {
		center.X += p.X
		center.Y += p.Y
	}
	center.X /= float64(len(pts))
	center.Y /= float64(len(pts))

	local := make([]dmath.Vec2, len(pts))
	for i, p := range pts {
		local[i] = dmath.Vec2{X: p.X - center.X, Y: p.Y - center.Y}
	}
	shape := physics.Polygon(local)
	mat := tuning.Or(leveldata.Physics{Friction: 0.6})

	terrain := archetypes.Terrain.Spawn(c.World())
	components.Body.SetValue(terrain, components.BodyData{
		Kind: tags.KindTerrain,
		Parts: []physics.Def{{
			Type:     physics.Static,
			Position: center,
			Shape:    shape,
			Material: physics.Material{Friction: mat.Friction, Restitution: mat.Restitution},
		}},
	})
	setSprite(terrain, bundle, cfg.StripTerrain, shape.Width, shape.Height)
	return terrain, c.AddObject(terrain)
}

// CreateWater builds a static sensor. Anything entering it is lost.
func CreateWater(c *world.Controller, bundle *assets.Bundle, p leveldata.Placement) (*donburi.Entry, error) {
	water := archetypes.Water.Spawn(c.World())
	components.Body.SetValue(water, components.BodyData{
		Kind: tags.KindWater,
		Parts: []physics.Def{{
			Type:     physics.Static,
			Position: p.Position.Vec(),
			Shape:    physics.Box(p.Width, p.Height),
			IsSensor: true,
		}},
	})
	setSprite(water, bundle, cfg.StripWater, p.Width, p.Height)
	return water, c.AddObject(water)
}

func CreateIce(c *world.Controller, bundle *assets.Bundle, p leveldata.Placement, tuning leveldata.Physics) (*donburi.Entry, error) {
	mat := tuning.Or(leveldata.Physics{Friction: cfg.Ice.Friction})
	ice := archetypes.Ice.Spawn(c.World())
	components.Body.SetValue(ice, components.BodyData{
		Kind: tags.KindIce,
		Parts: []physics.Def{{
			Type:     physics.Static,
			Position: p.Position.Vec(),
			Shape:    physics.Box(p.Width, p.Height),
			Material: physics.Material{Friction: mat.Friction, Restitution: mat.Restitution},
		}},
	})
	setSprite(ice, bundle, cfg.StripIce, p.Width, p.Height)
	return ice, c.AddObject(ice)
}

func CreateExit(c *world.Controller, bundle *assets.Bundle, p leveldata.Placement) (*donburi.Entry, error) {
	exit := archetypes.Exit.Spawn(c.World())
	components.Body.SetValue(exit, components.BodyData{
		Kind: tags.KindExit,
		Parts: []physics.Def{{
			Type:     physics.Static,
			Position: p.Position.Vec(),
			Shape:    physics.Box(p.Width, p.Height),
			IsSensor: true,
		}},
	})
	setSprite(exit, bundle, cfg.StripExit, p.Width, p.Height)
	return exit, c.AddObject(exit)
}

func CreateNote(c *world.Controller, bundle *assets.Bundle, index int, p leveldata.Placement) (*donburi.Entry, error) {
	size := cfg.Note.Size
	note := archetypes.Note.Spawn(c.World())
	components.Note.SetValue(note, components.NoteData{Index: index})
	components.Body.SetValue(note, components.BodyData{
		Kind: tags.KindNote,
		Parts: []physics.Def{{
			Type:     physics.Static,
			Position: p.Position.Vec(),
			Shape:    physics.Box(size, size),
			IsSensor: true,
		}},
	})
	setSprite(note, bundle, cfg.StripNote, size, size)
	return note, c.AddObject(note)
}
