// Package proximity answers "who is within radius r of this point" for
// gameplay checks that contact events cannot express.
package proximity

import (
	"math"
	"sort"

	"github.com/automoto/penguin-squad/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Hit is one entity found by a radius query.
type Hit struct {
	Entity   donburi.Entity
	Position dmath.Vec2
	Distance float64
}

// Index mirrors tracked entity centers into a resolv space. World units are
// scaled by resolution so the integer cell grid is fine enough.
// The space extends margin units past every edge of the world; entities
// further out than that are kept in outside and scanned linearly.
type Index struct {
	space      *resolv.Space
	query      *resolv.Object
	objects    map[donburi.Entity]*resolv.Object
	positions  map[donburi.Entity]dmath.Vec2
	outside    map[donburi.Entity]bool
	resolution float64
	width      float64
	height     float64
	margin     float64
}

// New builds an index covering width x height world units plus a margin of
// the larger dimension on every side.
func New(width, height, resolution float64, cellSize int) *Index {
	margin := math.Max(width, height)
	w := int(math.Ceil((width+2*margin)*resolution)) + cellSize
	h := int(math.Ceil((height+2*margin)*resolution)) + cellSize
	ix := &Index{
		space:      resolv.NewSpace(w, h, cellSize, cellSize),
		objects:    make(map[donburi.Entity]*resolv.Object),
		positions:  make(map[donburi.Entity]dmath.Vec2),
		outside:    make(map[donburi.Entity]bool),
		resolution: resolution,
		width:      width,
		height:     height,
		margin:     margin,
	}
	ix.query = resolv.NewObject(0, 0, 1, 1, tags.ResolvQuery)
	ix.space.Add(ix.query)
	return ix
}

// Track starts mirroring an entity, or moves it if already tracked.
func (ix *Index) Track(e donburi.Entity, tag string, pos dmath.Vec2) {
	obj, ok := ix.objects[e]
	if !ok {
		obj = resolv.NewObject(0, 0, 1, 1, tag)
		obj.Data = e
		ix.objects[e] = obj
		ix.place(obj, pos)
		ix.space.Add(obj)
		ix.record(e, pos)
		return
	}
	ix.Move(e, pos)
}

// Move updates a tracked entity's center. Untracked entities are ignored.
func (ix *Index) Move(e donburi.Entity, pos dmath.Vec2) {
	obj, ok := ix.objects[e]
	if !ok {
		return
	}
	ix.place(obj, pos)
	obj.Update()
	ix.record(e, pos)
}

func (ix *Index) record(e donburi.Entity, pos dmath.Vec2) {
	ix.positions[e] = pos
	if ix.covers(pos) {
		delete(ix.outside, e)
	} else {
		ix.outside[e] = true
	}
}

// covers reports whether pos lies inside the padded space.
func (ix *Index) covers(pos dmath.Vec2) bool {
	return pos.X >= -ix.margin && pos.X <= ix.width+ix.margin &&
		pos.Y >= -ix.margin && pos.Y <= ix.height+ix.margin
}

func (ix *Index) Forget(e donburi.Entity) {
	obj, ok := ix.objects[e]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.objects, e)
	delete(ix.positions, e)
	delete(ix.outside, e)
}

func (ix *Index) Tracked(e donburi.Entity) bool {
	_, ok := ix.objects[e]
	return ok
}

func (ix *Index) Len() int {
	return len(ix.objects)
}

// Within returns tracked entities carrying one of the given tags whose
// centers lie within radius of center, nearest first. Equal distances are
// ordered by entity id so results never depend on map order.
func (ix *Index) Within(center dmath.Vec2, radius float64, tagList ...string) []Hit {
	size := 2 * radius * ix.resolution
	ix.query.X = (center.X - radius + ix.margin) * ix.resolution
	ix.query.Y = (ix.height - center.Y - radius + ix.margin) * ix.resolution
	ix.query.W = size
	ix.query.H = size
	ix.query.Update()

	var hits []Hit
	seen := make(map[donburi.Entity]bool)
	consider := func(obj *resolv.Object) {
		e, ok := obj.Data.(donburi.Entity)
		if !ok || seen[e] {
			return
		}
		seen[e] = true
		pos := ix.positions[e]
		d := math.Hypot(pos.X-center.X, pos.Y-center.Y)
		if d > radius {
			return
		}
		hits = append(hits, Hit{Entity: e, Position: pos, Distance: d})
	}

	if check := ix.query.Check(0, 0, tagList...); check != nil {
		for _, obj := range check.Objects {
			consider(obj)
		}
	}
	for e := range ix.outside {
		obj := ix.objects[e]
		if len(tagList) == 0 || obj.HasTags(tagList...) {
			consider(obj)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].Entity < hits[j].Entity
	})
	return hits
}

// Nearest returns the closest hit within radius.
func (ix *Index) Nearest(center dmath.Vec2, radius float64, tagList ...string) (Hit, bool) {
	hits := ix.Within(center, radius, tagList...)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// place converts a y-up world center into resolv's y-down index space.
func (ix *Index) place(obj *resolv.Object, pos dmath.Vec2) {
	obj.X = (pos.X+ix.margin)*ix.resolution - obj.W/2
	obj.Y = (ix.height-pos.Y+ix.margin)*ix.resolution - obj.H/2
}
