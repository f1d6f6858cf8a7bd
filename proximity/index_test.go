package proximity

import (
	"math"
	"testing"

	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func newIndex() *Index {
	return New(32, 18, 16, 16)
}

func TestWithinFiltersByRadiusAndTag(t *testing.T) {
	ix := newIndex()
	ix.Track(donburi.Entity(1), tags.ResolvPenguin, dmath.Vec2{X: 10, Y: 5})
	ix.Track(donburi.Entity(2), tags.ResolvPenguin, dmath.Vec2{X: 12, Y: 5})
	ix.Track(donburi.Entity(3), tags.ResolvPenguin, dmath.Vec2{X: 14.5, Y: 5})
	ix.Track(donburi.Entity(4), tags.ResolvMonster, dmath.Vec2{X: 10.5, Y: 5})

	hits := ix.Within(dmath.Vec2{X: 10, Y: 5}, 3, tags.ResolvPenguin)
	if len(hits) != 2 {
		t.Fatalf("len(Within()) = %d, expected 2: %+v", len(hits), hits)
	}
	if hits[0].Entity != donburi.Entity(1) || hits[1].Entity != donburi.Entity(2) {
		t.Errorf("Within() order = %v, %v, expected 1, 2", hits[0].Entity, hits[1].Entity)
	}
	if hits[1].Distance != 2 {
		t.Errorf("Distance = %v, expected 2", hits[1].Distance)
	}
}

func TestWithinUsesEuclideanDistance(t *testing.T) {
	ix := newIndex()
	// Inside the query square but outside the circle.
	ix.Track(donburi.Entity(1), tags.ResolvMonster, dmath.Vec2{X: 12.5, Y: 7.5})

	if hits := ix.Within(dmath.Vec2{X: 10, Y: 5}, 3, tags.ResolvMonster); len(hits) != 0 {
		t.Errorf("corner entity should be outside the radius, got %+v", hits)
	}
}

func TestTiesBreakByEntity(t *testing.T) {
	ix := newIndex()
	ix.Track(donburi.Entity(9), tags.ResolvPenguin, dmath.Vec2{X: 11, Y: 5})
	ix.Track(donburi.Entity(3), tags.ResolvPenguin, dmath.Vec2{X: 9, Y: 5})

	hit, ok := ix.Nearest(dmath.Vec2{X: 10, Y: 5}, 2, tags.ResolvPenguin)
	if !ok {
		t.Fatal("Nearest() found nothing")
	}
	if hit.Entity != donburi.Entity(3) {
		t.Errorf("Nearest() = %v, expected entity 3", hit.Entity)
	}
}

func TestMoveAndForget(t *testing.T) {
	ix := newIndex()
	e := donburi.Entity(1)
	ix.Track(e, tags.ResolvIcicle, dmath.Vec2{X: 2, Y: 2})
	ix.Move(e, dmath.Vec2{X: 20, Y: 10})

	if _, ok := ix.Nearest(dmath.Vec2{X: 2, Y: 2}, 1, tags.ResolvIcicle); ok {
		t.Error("entity still found at its old position")
	}
	if _, ok := ix.Nearest(dmath.Vec2{X: 20, Y: 10}, 1, tags.ResolvIcicle); !ok {
		t.Error("entity not found at its new position")
	}

	ix.Forget(e)
	if ix.Tracked(e) || ix.Len() != 0 {
		t.Error("Forget() left the entity tracked")
	}
	if _, ok := ix.Nearest(dmath.Vec2{X: 20, Y: 10}, 1, tags.ResolvIcicle); ok {
		t.Error("forgotten entity still found")
	}
}

func TestWithinFindsEntitiesPastTheEdges(t *testing.T) {
	tests := []struct {
		name   string
		pos    dmath.Vec2
		center dmath.Vec2
	}{
		{"above top", dmath.Vec2{X: 10, Y: 19}, dmath.Vec2{X: 10, Y: 17}},
		{"left of origin", dmath.Vec2{X: -1, Y: 5}, dmath.Vec2{X: 1, Y: 5}},
		{"below bottom", dmath.Vec2{X: 10, Y: -0.5}, dmath.Vec2{X: 10, Y: 1}},
		{"far above", dmath.Vec2{X: 10, Y: 90}, dmath.Vec2{X: 10, Y: 88}},
		{"far left", dmath.Vec2{X: -60, Y: 5}, dmath.Vec2{X: -58.5, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := newIndex()
			ix.Track(donburi.Entity(7), tags.ResolvPenguin, tt.pos)
			ix.Track(donburi.Entity(8), tags.ResolvMonster, tt.pos)

			hits := ix.Within(tt.center, 3, tags.ResolvPenguin)
			if len(hits) != 1 || hits[0].Entity != donburi.Entity(7) {
				t.Fatalf("Within() = %+v, expected entity 7", hits)
			}
			expected := math.Hypot(tt.pos.X-tt.center.X, tt.pos.Y-tt.center.Y)
			if hits[0].Distance != expected {
				t.Errorf("Distance = %v, expected %v", hits[0].Distance, expected)
			}
		})
	}
}

func TestMoveBackInsideFromFarAway(t *testing.T) {
	ix := newIndex()
	e := donburi.Entity(1)
	ix.Track(e, tags.ResolvPenguin, dmath.Vec2{X: 200, Y: 5})
	if _, ok := ix.Nearest(dmath.Vec2{X: 200, Y: 6}, 2, tags.ResolvPenguin); !ok {
		t.Fatal("far entity not found")
	}

	ix.Move(e, dmath.Vec2{X: 5, Y: 5})
	if _, ok := ix.Nearest(dmath.Vec2{X: 200, Y: 6}, 2, tags.ResolvPenguin); ok {
		t.Error("entity still found at its old position")
	}
	if _, ok := ix.Nearest(dmath.Vec2{X: 5, Y: 6}, 2, tags.ResolvPenguin); !ok {
		t.Error("entity not found after moving back inside")
	}

	ix.Forget(e)
	if hits := ix.Within(dmath.Vec2{X: 5, Y: 6}, 2); len(hits) != 0 {
		t.Errorf("forgotten entity still found: %+v", hits)
	}
}
