package systems

import (
	"testing"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/input"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// holdMonsters stops patrols for the duration of a test.
func holdMonsters(t *testing.T) {
	t.Helper()
	force := cfg.Monster.PatrolForce
	cfg.Monster.PatrolForce = 0
	t.Cleanup(func() { cfg.Monster.PatrolForce = force })
}

func TestMonsterAggression(t *testing.T) {
	tests := []struct {
		name     string
		player   dmath.Vec2
		penguins [2]dmath.Vec2
		expected components.MonsterState
	}{
		{"equidistant penguins", dmath.Vec2{X: 3, Y: 2}, [2]dmath.Vec2{{X: 8, Y: 1.5}, {X: 12, Y: 1.5}}, components.MonsterAggressive},
		{"player closer", dmath.Vec2{X: 10, Y: 3}, [2]dmath.Vec2{{X: 8, Y: 1.5}, {X: 12, Y: 1.5}}, components.MonsterPatrol},
		{"penguins out of reach", dmath.Vec2{X: 3, Y: 2}, [2]dmath.Vec2{{X: 6, Y: 1.5}, {X: 14, Y: 1.5}}, components.MonsterPatrol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := flatLevel(2)
			lvl.Monsters.Placements = []leveldata.Placement{{Position: leveldata.Point{10, 1.5}}}
			c, g := newRun(t, lvl, nil)
			e, p := playerOf(t, c)
			components.Body.Get(e).Root().SetTransform(tt.player, 0)

			for i, h := range p.Penguins {
				pe, _ := c.Entry(h)
				root := components.Body.Get(pe).Root()
				root.SetType(physics.Dynamic)
				root.SetTransform(tt.penguins[i], 0)
				components.Penguin.Get(pe).Thrown = true
			}
			p.NumPenguins = 0

			f := g.Frame()
			f.Player = e
			syncIndex(f)
			updateAggression(f)

			m := components.Monster.Get(first(t, c, tags.Monster))
			if m.State != tt.expected {
				t.Fatalf("State = %v, expected %v", m.State, tt.expected)
			}
			if tt.expected == components.MonsterAggressive {
				lowest := p.Penguins[0]
				if p.Penguins[1] < lowest {
					lowest = p.Penguins[1]
				}
				if m.Threat != lowest {
					t.Errorf("Threat = %v, expected the lower entity %v", m.Threat, lowest)
				}
			} else if m.Threat != donburi.Null {
				t.Errorf("Threat = %v, expected none", m.Threat)
			}
		})
	}
}

func TestAggressiveMonsterHolds(t *testing.T) {
	lvl := flatLevel(0)
	lvl.Monsters.Placements = []leveldata.Placement{{Position: leveldata.Point{10, 1.5}}}
	c, g := newRun(t, lvl, nil)
	tickN(c, 30)

	me := first(t, c, tags.Monster)
	m := components.Monster.Get(me)
	m.State = components.MonsterAggressive
	UpdateMonsters(g.ECS())

	if v := components.Body.Get(me).Velocity(); v.X != 0 {
		t.Errorf("aggressive monster velocity = %v, expected no horizontal motion", v)
	}
}

func TestPatrolTurnsAround(t *testing.T) {
	lvl := flatLevel(0)
	lvl.Monsters.Placements = []leveldata.Placement{{Position: leveldata.Point{16, 1.5}, Range: 1}}
	c, _ := newRun(t, lvl, nil)
	me := first(t, c, tags.Monster)
	m := components.Monster.Get(me)

	minX, maxX := 16.0, 16.0
	turns := 0
	dir := m.Direction
	for i := 0; i < 600; i++ {
		tickN(c, 1)
		x := components.Body.Get(me).Position().X
		minX = min(minX, x)
		maxX = max(maxX, x)
		if m.Direction != dir {
			turns++
			dir = m.Direction
		}
	}
	if turns < 2 {
		t.Errorf("monster turned %d times, expected a back and forth patrol", turns)
	}
	if minX < 16-3 || maxX > 16+3 {
		t.Errorf("patrol spanned [%v, %v], expected to stay near [15, 17]", minX, maxX)
	}
}

func TestPunch(t *testing.T) {
	holdMonsters(t)
	lvl := flatLevel(0)
	lvl.Monsters.Placements = []leveldata.Placement{
		{Position: leveldata.Point{5, 1.5}},
		{Position: leveldata.Point{20, 1.5}},
	}
	frames := append(idle(settle), input.Snapshot{Punch: true})
	c, _ := newRun(t, lvl, frames)

	var monsters []donburi.Entity
	tags.Monster.Each(c.World(), func(e *donburi.Entry) { monsters = append(monsters, e.Entity()) })

	tickN(c, settle+1)

	if _, ok := c.Entry(monsters[0]); ok {
		t.Errorf("monster in reach survived the punch")
	}
	if _, ok := c.Entry(monsters[1]); !ok {
		t.Errorf("monster out of reach was removed")
	}
	_, p := playerOf(t, c)
	if p.PunchCooldown != cfg.Player.PunchCooldown-1 {
		t.Errorf("PunchCooldown = %d, expected %d", p.PunchCooldown, cfg.Player.PunchCooldown-1)
	}
	if c.Failed() {
		t.Errorf("punching should not fail the level")
	}
	checkParity(t, c)
}

func TestIcicleDropsOnTarget(t *testing.T) {
	lvl := flatLevel(0)
	lvl.Icicles.Placements = []leveldata.Placement{{Position: leveldata.Point{3.5, 8}}}
	c, _ := newRun(t, lvl, nil)

	ie := first(t, c, tags.Icicle)
	tickN(c, 1)

	if got := components.Icicle.Get(ie).State; got != components.IcicleFalling {
		t.Errorf("State = %v, expected falling", got)
	}
	if got := components.Body.Get(ie).Root().Type(); got != physics.Dynamic {
		t.Errorf("body type = %v, expected dynamic", got)
	}
}

func TestIcicleCrushesMonsterAndRegrows(t *testing.T) {
	holdMonsters(t)
	lvl := flatLevel(0)
	lvl.Monsters.Placements = []leveldata.Placement{{Position: leveldata.Point{8, 1.5}}}
	lvl.Icicles.Placements = []leveldata.Placement{{Position: leveldata.Point{8, 6}}}
	c, _ := newRun(t, lvl, nil)
	tickN(c, 10)

	ie := first(t, c, tags.Icicle)
	monster := first(t, c, tags.Monster).Entity()
	original := ie.Entity()
	components.Body.Get(ie).Root().SetType(physics.Dynamic)
	components.Icicle.Get(ie).State = components.IcicleFalling

	for i := 0; i < 180; i++ {
		tickN(c, 1)
		if _, ok := c.Entry(original); !ok {
			break
		}
	}
	if _, ok := c.Entry(original); ok {
		t.Fatalf("icicle never shattered")
	}
	if _, ok := c.Entry(monster); ok {
		t.Errorf("monster under the icicle survived")
	}

	regrown := first(t, c, tags.Icicle)
	ic := components.Icicle.Get(regrown)
	body := components.Body.Get(regrown)
	if ic.State != components.IcicleHanging || !body.Active {
		t.Errorf("regrown icicle state = %v, active = %v", ic.State, body.Active)
	}
	if pos := body.Position(); pos != (dmath.Vec2{X: 8, Y: 6}) {
		t.Errorf("regrown icicle at %v, expected the anchor", pos)
	}
	if c.QueueLen() != 0 {
		t.Errorf("QueueLen() = %d, expected the regrowth to be flushed", c.QueueLen())
	}
	checkParity(t, c)
}
