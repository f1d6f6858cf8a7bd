package systems

import (
	"testing"

	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/render"
)

func TestFrameFollowsReset(t *testing.T) {
	c, g := newRun(t, loadLevel(t, "level1.yaml"), nil)
	before := g.Frame()
	if before.Controller != c {
		t.Fatalf("Frame().Controller = %p, expected %p", before.Controller, c)
	}
	if before.Player != nil {
		t.Errorf("Frame().Player set before the first tick")
	}

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	after := g.Frame()
	if after == before || after.Index == before.Index {
		t.Errorf("Reset() kept the previous frame state")
	}
	if g.ECS().World != c.World() {
		t.Errorf("pipeline runs over a stale world")
	}

	tickN(c, 1)
	e, _ := playerOf(t, c)
	if got := g.Frame().Player; got == nil || got.Entity() != e.Entity() {
		t.Errorf("Frame().Player = %v, expected %v", got, e.Entity())
	}
}

func TestIndexTracksPlayer(t *testing.T) {
	c, g := newRun(t, flatLevel(0), nil)
	if g.Index().Len() != 0 {
		t.Fatalf("Len() = %d before the first tick, expected 0", g.Index().Len())
	}
	tickN(c, 1)

	e, _ := playerOf(t, c)
	if !g.Index().Tracked(e.Entity()) {
		t.Fatalf("player not tracked after one tick")
	}
	hits := g.Index().Within(components.Body.Get(e).Position(), 0.5)
	if len(hits) != 1 || hits[0].Entity != e.Entity() {
		t.Errorf("Within() = %v, expected only the player", hits)
	}
}

func TestDrawObjects(t *testing.T) {
	tests := []struct {
		name   string
		hidden bool
		delta  int
	}{
		{"every object", false, 0},
		{"hidden player", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newRun(t, loadLevel(t, "level1.yaml"), nil)
			tickN(c, 1)
			e, _ := playerOf(t, c)
			components.Sprite.Get(e).Hidden = tt.hidden

			rec := &render.Recorder{}
			c.Draw(rec)

			expected := len(c.Objects()) - tt.delta
			if len(rec.Commands) != expected {
				t.Fatalf("len(Commands) = %d, expected %d", len(rec.Commands), expected)
			}
			first, _ := c.Entry(c.Objects()[0])
			if got, want := rec.Commands[0].Position, c.WorldToScreen(components.Body.Get(first).Position()); got != want {
				t.Errorf("Commands[0].Position = %v, expected %v", got, want)
			}
		})
	}
}
