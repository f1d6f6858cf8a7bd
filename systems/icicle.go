package systems

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateIcicles drops hanging icicles when the player or a thrown penguin
// passes underneath.
func UpdateIcicles(ecs *ecs.ECS) {
	f := GetFrame(ecs)
	c, player := f.Controller, f.Player
	targets := []dmath.Vec2{components.Body.Get(player).Position()}
	for _, h := range components.Player.Get(player).Penguins {
		pe, ok := c.Entry(h)
		if !ok || !components.Penguin.Get(pe).Thrown {
			continue
		}
		targets = append(targets, components.Body.Get(pe).Position())
	}

	tags.Icicle.Each(c.World(), func(e *donburi.Entry) {
		ic := components.Icicle.Get(e)
		root := components.Body.Get(e).Root()
		if ic.State != components.IcicleHanging || root == nil {
			return
		}
		pos := root.Position()
		for _, t := range targets {
			if math.Abs(t.X-pos.X) <= cfg.Icicle.TriggerWidth && t.Y < pos.Y && pos.Y-t.Y <= cfg.Icicle.TriggerHeight {
				root.SetType(physics.Dynamic)
				ic.State = components.IcicleFalling
				return
			}
		}
	})
}
