package systems

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/systems/factory"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateProximity mirrors positions into the index, then runs every check
// that depends on distance rather than contact.
func UpdateProximity(ecs *ecs.ECS) {
	f := GetFrame(ecs)
	syncIndex(f)
	punch(f)
	recoverNearby(f)
	updateAggression(f)
	landIcicles(f)
}

// syncIndex tracks the player, thrown penguins and live monsters, and
// forgets anything that no longer qualifies.
func syncIndex(f *FrameData) {
	c, player := f.Controller, f.Player
	var current []donburi.Entity
	track := func(e *donburi.Entry, tag string) {
		body := components.Body.Get(e)
		if !body.Active || body.Removed {
			return
		}
		f.Index.Track(e.Entity(), tag, body.Position())
		current = append(current, e.Entity())
	}

	track(player, tags.ResolvPlayer)
	for _, h := range components.Player.Get(player).Penguins {
		if pe, ok := c.Entry(h); ok && components.Penguin.Get(pe).Thrown {
			track(pe, tags.ResolvPenguin)
		}
	}
	tags.Monster.Each(c.World(), func(e *donburi.Entry) {
		track(e, tags.ResolvMonster)
	})

	for _, e := range f.Tracked {
		if !contains(current, e) {
			f.Index.Forget(e)
		}
	}
	f.Tracked = current
}

func contains(list []donburi.Entity, e donburi.Entity) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}

// punch removes every monster in reach of the player.
func punch(f *FrameData) {
	c, player := f.Controller, f.Player
	p := components.Player.Get(player)
	if !c.Input().Punch || !components.Ground.Get(player).OnGround() || p.PunchCooldown > 0 {
		return
	}
	p.PunchCooldown = cfg.Player.PunchCooldown
	pos := components.Body.Get(player).Position()
	for _, hit := range f.Index.Within(pos, cfg.Proximity.PunchRadius, tags.ResolvMonster) {
		c.MarkRemoved(hit.Entity)
		f.Logger.Debug("monster punched", "entity", hit.Entity, "distance", hit.Distance)
	}
}

// recoverNearby picks up the nearest thrown penguin that has come to rest.
func recoverNearby(f *FrameData) {
	c, player := f.Controller, f.Player
	if !c.Input().Interact {
		return
	}
	pos := components.Body.Get(player).Position()
	for _, hit := range f.Index.Within(pos, cfg.Proximity.RecoverRadius, tags.ResolvPenguin) {
		pe, ok := c.Entry(hit.Entity)
		if !ok || !components.Ground.Get(pe).OnGround() {
			continue
		}
		recoverPenguin(f, player, pe)
		return
	}
}

// updateAggression turns a monster aggressive when a thrown penguin is
// within reach and closer to it than the player is.
func updateAggression(f *FrameData) {
	c, player := f.Controller, f.Player
	ppos := components.Body.Get(player).Position()
	tags.Monster.Each(c.World(), func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.Active || body.Removed {
			return
		}
		m := components.Monster.Get(e)
		pos := body.Position()
		playerDist := distance(pos, ppos)

		hit, ok := f.Index.Nearest(pos, cfg.Proximity.AggroRadius, tags.ResolvPenguin)
		if ok && hit.Distance < playerDist {
			m.State = components.MonsterAggressive
			m.Threat = hit.Entity
			return
		}
		m.State = components.MonsterPatrol
		m.Threat = donburi.Null
	})
}

// landIcicles shatters landed icicles, taking nearby monsters with them,
// and grows a replacement at each anchor.
func landIcicles(f *FrameData) {
	c := f.Controller
	var landed []*donburi.Entry
	tags.Icicle.Each(c.World(), func(e *donburi.Entry) {
		if components.Icicle.Get(e).State == components.IcicleLanded && !components.Body.Get(e).Removed {
			landed = append(landed, e)
		}
	})

	for _, e := range landed {
		pos := components.Body.Get(e).Position()
		for _, hit := range f.Index.Within(pos, cfg.Proximity.IcicleRadius, tags.ResolvMonster) {
			c.MarkRemoved(hit.Entity)
			f.Logger.Debug("monster crushed", "entity", hit.Entity)
		}
		c.MarkRemoved(e.Entity())
		if _, err := factory.CreateIcicle(c, c.Bundle(), components.Icicle.Get(e).Anchor, true); err != nil {
			f.Logger.Error("icicle regrowth failed", "err", err)
		}
	}
}

func distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
