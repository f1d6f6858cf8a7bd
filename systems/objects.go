package systems

import (
	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/tags"
	"github.com/automoto/penguin-squad/world"
	"github.com/yohamta/donburi"
)

// UpdateObject runs after the physics step for every surviving object.
func (g *Game) UpdateObject(c *world.Controller, e *donburi.Entry, dt float64) {
	switch components.Body.Get(e).Kind {
	case tags.KindPlayer:
		updatePlayerObject(c, e, dt)
	case tags.KindPenguin:
		updatePenguinObject(c, e, dt)
	case tags.KindMonster:
		updateMonsterObject(c, e, dt)
	case tags.KindNote:
		sprite := components.Sprite.Get(e)
		if components.Note.Get(e).Collected {
			if strip, ok := c.Bundle().Strip(cfg.StripNoteTaken); ok {
				sprite.SetStrip(strip, cfg.Animation.Interval)
			}
		}
		sprite.Animation.Update(dt)
	default:
		if sprite := components.Sprite.Get(e); sprite.Animation != nil {
			sprite.Animation.Update(dt)
		}
	}
}
