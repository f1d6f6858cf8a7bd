package systems

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/tags"
	"github.com/automoto/penguin-squad/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateMonsters patrols each monster within its range, or holds it in
// place facing its threat while aggressive.
func UpdateMonsters(ecs *ecs.ECS) {
	c := GetFrame(ecs).Controller
	tags.Monster.Each(c.World(), func(e *donburi.Entry) {
		m := components.Monster.Get(e)
		root := components.Body.Get(e).Root()
		if root == nil {
			return
		}
		pos := root.Position()
		v := root.Velocity()

		if m.State == components.MonsterAggressive {
			// Hold position and face whatever it is guarding against.
			root.SetVelocity(dmath.Vec2{Y: v.Y})
			if threat, ok := c.Entry(m.Threat); ok {
				if tx := components.Body.Get(threat).Position().X; tx != pos.X {
					m.Direction = math.Copysign(1, tx-pos.X)
				}
			}
			return
		}

		if pos.X > m.Origin+m.Range {
			m.Direction = -1
		} else if pos.X < m.Origin-m.Range {
			m.Direction = 1
		}
		root.ApplyForce(dmath.Vec2{X: m.Direction * cfg.Monster.PatrolForce})
		if math.Abs(v.X) > cfg.Monster.MaxSpeed {
			root.SetVelocity(dmath.Vec2{X: math.Copysign(cfg.Monster.MaxSpeed, v.X), Y: v.Y})
		}
	})
}

func updateMonsterObject(c *world.Controller, e *donburi.Entry, dt float64) {
	m := components.Monster.Get(e)
	sprite := components.Sprite.Get(e)
	key := cfg.StripMonsterPatrol
	if m.State == components.MonsterAggressive {
		key = cfg.StripMonsterAlert
	}
	if strip, ok := c.Bundle().Strip(key); ok {
		sprite.SetStrip(strip, cfg.Animation.Interval)
	}
	sprite.FlipX = m.Direction > 0
	sprite.Animation.Update(dt)
}
