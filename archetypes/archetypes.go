package archetypes

import (
	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
)

var (
	Terrain = newArchetype(
		tags.Terrain,
		components.Body,
		components.Sprite,
	)
	Water = newArchetype(
		tags.Water,
		components.Body,
		components.Sprite,
	)
	Ice = newArchetype(
		tags.Ice,
		components.Body,
		components.Sprite,
	)
	FloatingIce = newArchetype(
		tags.FloatingIce,
		components.Body,
		components.Sprite,
		components.Riders,
		components.FloatingIce,
	)
	MovingIce = newArchetype(
		tags.MovingIce,
		components.Body,
		components.Sprite,
		components.Riders,
		components.MovingIce,
	)
	Note = newArchetype(
		tags.Note,
		components.Note,
		components.Body,
		components.Sprite,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Body,
		components.Sprite,
	)
	Monster = newArchetype(
		tags.Monster,
		components.Monster,
		components.Body,
		components.Sprite,
		components.Ground,
	)
	Icicle = newArchetype(
		tags.Icicle,
		components.Icicle,
		components.Body,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Sprite,
		components.Ground,
	)
	Penguin = newArchetype(
		tags.Penguin,
		components.Penguin,
		components.Body,
		components.Sprite,
		components.Ground,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
