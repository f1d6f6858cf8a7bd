package systems

import (
	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	"github.com/automoto/penguin-squad/world"
	"github.com/yohamta/donburi"
)

// BeginContact runs inside the physics step. Every pair is handled from
// both sides so each rule only has to look at "self".
func (g *Game) BeginContact(c *world.Controller, a, b physics.Fixture) {
	g.contact(c, a, b, true)
	g.contact(c, b, a, true)
}

func (g *Game) EndContact(c *world.Controller, a, b physics.Fixture) {
	g.contact(c, a, b, false)
	g.contact(c, b, a, false)
}

// isGround reports whether a fixture can be stood on.
func isGround(f physics.Fixture) bool {
	if f.Sensor {
		return false
	}
	switch f.Kind {
	case tags.KindPenguin, tags.KindNote, tags.KindWater, tags.KindExit:
		return false
	}
	return true
}

func (g *Game) contact(c *world.Controller, self, other physics.Fixture, begin bool) {
	e, ok := c.Entry(self.Entity)
	if !ok {
		return
	}

	if self.Part == tags.PartFoot {
		if !isGround(other) || !e.HasComponent(components.Ground) {
			return
		}
		ground := components.Ground.Get(e)
		if !begin {
			ground.Release()
			return
		}
		ground.Touch()
		if self.Kind == tags.KindPlayer && components.Player.Get(e).State == components.PlayerJumpHanging {
			setPlayerState(c, e, components.PlayerJumpLanding)
		}
		return
	}
	if self.Part == tags.PartPin {
		return
	}

	switch self.Kind {
	case tags.KindNote:
		if begin && (other.Kind == tags.KindPlayer || other.Kind == tags.KindPenguin) {
			g.collectNote(c, e)
		}

	case tags.KindPlayer:
		p := components.Player.Get(e)
		switch other.Kind {
		case tags.KindExit:
			if begin {
				p.ExitContacts++
				checkWin(c, e)
			} else if p.ExitContacts > 0 {
				p.ExitContacts--
			}
		case tags.KindWater:
			if begin {
				c.SetFailure()
			}
		case tags.KindMonster:
			if begin && !other.Sensor {
				c.SetFailure()
			}
		case tags.KindIcicle:
			if begin && !other.Sensor && icicleFalling(c, other) {
				c.SetFailure()
			}
		}

	case tags.KindPenguin:
		pen := components.Penguin.Get(e)
		if begin && other.Kind == tags.KindWater && pen.Thrown {
			pen.Drowned = true
		}

	case tags.KindFloatingIce, tags.KindMovingIce:
		if other.Sensor || other.Type != physics.Dynamic || other.Entity == self.Entity {
			return
		}
		riders := components.Riders.Get(e)
		if begin {
			riders.Add(other.Entity)
		} else {
			riders.Remove(other.Entity)
		}

	case tags.KindIcicle:
		ic := components.Icicle.Get(e)
		if begin && ic.State == components.IcicleFalling && isGround(other) && other.Kind != tags.KindPlayer {
			ic.State = components.IcicleLanded
		}
	}
}

// collectNote awards a note at most once. Several notes touched in the
// same step are each awarded.
func (g *Game) collectNote(c *world.Controller, e *donburi.Entry) {
	note := components.Note.Get(e)
	if note.Collected {
		return
	}
	note.Collected = true
	if s, ok := components.Session.First(c.World()); ok {
		components.Session.Get(s).NotesCollected++
	}
	g.logger.Debug("note collected", "index", note.Index)
}

func icicleFalling(c *world.Controller, f physics.Fixture) bool {
	e, ok := c.Entry(f.Entity)
	if !ok || !e.HasComponent(components.Icicle) {
		return false
	}
	return components.Icicle.Get(e).State == components.IcicleFalling
}
