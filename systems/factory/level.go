package factory

import (
	"fmt"

	"github.com/automoto/penguin-squad/archetypes"
	"github.com/automoto/penguin-squad/assets"
	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/world"
	"github.com/yohamta/donburi"
)

// PopulateLevel creates every entity described by level and activates it.
// Static scenery comes first so dynamic bodies spawn onto existing ground.
func PopulateLevel(c *world.Controller, level *leveldata.Level, bundle *assets.Bundle) error {
	for i, poly := range level.Terrain.Polygons {
		if _, err := CreateTerrain(c, bundle, poly, level.Terrain.Physics); err != nil {
			return fmt.Errorf("terrain %d: %w", i, err)
		}
	}
	for i, p := range level.Water.Placements {
		if _, err := CreateWater(c, bundle, p); err != nil {
			return fmt.Errorf("water %d: %w", i, err)
		}
	}
	for i, p := range level.Ice.Placements {
		if _, err := CreateIce(c, bundle, p, level.Ice.Physics); err != nil {
			return fmt.Errorf("ice %d: %w", i, err)
		}
	}
	for i, p := range level.FloatingIce.Placements {
		if _, err := CreateFloatingIce(c, bundle, p, level.FloatingIce.Physics); err != nil {
			return fmt.Errorf("floating ice %d: %w", i, err)
		}
	}
	for i, p := range level.MovingIce.Placements {
		if _, err := CreateMovingIce(c, bundle, p, level.MovingIce.Physics); err != nil {
			return fmt.Errorf("moving ice %d: %w", i, err)
		}
	}
	for i, p := range level.Notes.Placements {
		if _, err := CreateNote(c, bundle, i, p); err != nil {
			return fmt.Errorf("note %d: %w", i, err)
		}
	}
	if _, err := CreateExit(c, bundle, level.Exit); err != nil {
		return fmt.Errorf("exit: %w", err)
	}
	for i, p := range level.Monsters.Placements {
		if _, err := CreateMonster(c, bundle, p, level.Monsters.Physics); err != nil {
			return fmt.Errorf("monster %d: %w", i, err)
		}
	}
	for i, p := range level.Icicles.Placements {
		if _, err := CreateIcicle(c, bundle, p.Position.Vec(), false); err != nil {
			return fmt.Errorf("icicle %d: %w", i, err)
		}
	}

	player, err := CreatePlayer(c, bundle, level.Player)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := CreatePenguins(c, bundle, player, level.Penguins); err != nil {
		return fmt.Errorf("penguins: %w", err)
	}

	CreateSession(c.World(), level, player.Entity())
	return nil
}

// CreateSession spawns the scoreboard. It has no body and is never activated.
func CreateSession(w donburi.World, level *leveldata.Level, player donburi.Entity) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		Level:         level.Name,
		NotesRequired: len(level.Notes.Placements),
		TotalPenguins: level.Penguins.Count,
		Player:        player,
	})
	return session
}
