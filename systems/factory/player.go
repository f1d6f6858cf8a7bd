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

// squadGroup keeps the player and its penguins from colliding with each other.
const squadGroup = -1

func CreatePlayer(c *world.Controller, bundle *assets.Bundle, avatar leveldata.Avatar) (*donburi.Entry, error) {
	mat := avatar.Physics.Or(leveldata.Physics{Density: cfg.Player.Density, Friction: cfg.Player.Friction})
	w, h := cfg.Player.Width, cfg.Player.Height

	player := archetypes.Player.Spawn(c.World())
	components.Player.SetValue(player, components.PlayerData{
		State:       components.PlayerWalking,
		FacingRight: true,
	})
	components.Body.SetValue(player, components.BodyData{
		Kind: tags.KindPlayer,
		Parts: []physics.Def{{
			Type:          physics.Dynamic,
			Position:      avatar.Position.Vec(),
			Shape:         physics.Capsule(w, h),
			Material:      physics.Material{Density: mat.Density, Friction: mat.Friction, Restitution: mat.Restitution},
			FixedRotation: true,
			Group:         squadGroup,
			Sensors:       []physics.Sensor{footSensor(w, h)},
		}},
	})
	setSprite(player, bundle, cfg.StripPlayerWalk, w, h)
	return player, c.AddObject(player)
}

// CreatePenguins spawns the squad as carried kinematic bodies trailing the
// player. Index order is throw order: the highest carried index goes first.
func CreatePenguins(c *world.Controller, bundle *assets.Bundle, player *donburi.Entry, squad leveldata.Squad) error {
	mat := squad.Physics.Or(leveldata.Physics{
		Density:     cfg.Penguin.Density,
		Friction:    cfg.Penguin.Friction,
		Restitution: cfg.Penguin.Restitution,
	})
	pd := components.Player.Get(player)
	origin := components.Body.Get(player).Position()
	w, h := cfg.Penguin.Width, cfg.Penguin.Height

	for i := 0; i < squad.Count; i++ {
		penguin := archetypes.Penguin.Spawn(c.World())
		components.Penguin.SetValue(penguin, components.PenguinData{
			Index: i,
			Owner: player.Entity(),
			State: components.PenguinWalking,
		})
		components.Body.SetValue(penguin, components.BodyData{
			Kind: tags.KindPenguin,
			Parts: []physics.Def{{
				Type:          physics.Kinematic,
				Position:      CarryPosition(origin, i, pd.FacingRight),
				Shape:         physics.Box(w, h),
				Material:      physics.Material{Density: mat.Density, Friction: mat.Friction, Restitution: mat.Restitution},
				FixedRotation: true,
				Group:         squadGroup,
				Sensors:       []physics.Sensor{footSensor(w, h)},
			}},
		})
		setSprite(penguin, bundle, cfg.StripPenguinWalk, w, h)
		if err := c.AddObject(penguin); err != nil {
			return err
		}
		pd.Penguins = append(pd.Penguins, penguin.Entity())
	}
	pd.NumPenguins = squad.Count
	pd.TotalPenguins = squad.Count
	return nil
}

// CarryPosition is where the carried penguin with the given index trails
// the player.
func CarryPosition(player dmath.Vec2, index int, facingRight bool) dmath.Vec2 {
	dir := -1.0
	if !facingRight {
		dir = 1.0
	}
	return dmath.Vec2{
		X: player.X + dir*cfg.Penguin.Spacing*float64(index+1),
		Y: player.Y + cfg.Penguin.Lift,
	}
}
