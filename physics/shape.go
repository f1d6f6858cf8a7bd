package physics

import (
	"math"

	"github.com/ByteArena/box2d"
	dmath "github.com/yohamta/donburi/features/math"
)

// box2d polygons are limited to this many vertices.
const maxPolygonVertices = 8

const circleSegments = 12

type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCapsule
	ShapeCircle
	ShapePolygon
)

// Shape is a tagged union over the collision geometries an entity can use.
// Vertices are local to the body origin and only read for ShapePolygon.
type Shape struct {
	Kind     ShapeKind
	Width    float64
	Height   float64
	Radius   float64
	Vertices []dmath.Vec2
}

func Box(width, height float64) Shape {
	return Shape{Kind: ShapeBox, Width: width, Height: height}
}

// Capsule is a box with half circles on top and bottom. Height includes the caps.
func Capsule(width, height float64) Shape {
	return Shape{Kind: ShapeCapsule, Width: width, Height: height}
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius, Width: radius * 2, Height: radius * 2}
}

// Polygon builds a convex polygon shape. Larger polygons are split into a
// triangle fan around the first vertex when fixtures are created.
func Polygon(vertices []dmath.Vec2) Shape {
	minX, minY, maxX, maxY := bounds(vertices)
	vs := make([]dmath.Vec2, len(vertices))
	copy(vs, vertices)
	return Shape{Kind: ShapePolygon, Vertices: vs, Width: maxX - minX, Height: maxY - minY}
}

// Outline returns the local-space outline used for debug drawing.
func (s Shape) Outline() []dmath.Vec2 {
	switch s.Kind {
	case ShapeCircle:
		return arc(dmath.Vec2{}, s.Radius, 0, 2*math.Pi, circleSegments)
	case ShapeCapsule:
		r := s.Width / 2
		half := math.Max(s.Height/2-r, 0)
		top := arc(dmath.Vec2{Y: half}, r, 0, math.Pi, circleSegments/2)
		bottom := arc(dmath.Vec2{Y: -half}, r, math.Pi, 2*math.Pi, circleSegments/2)
		return append(top, bottom...)
	case ShapePolygon:
		out := make([]dmath.Vec2, len(s.Vertices))
		copy(out, s.Vertices)
		return out
	default:
		hw, hh := s.Width/2, s.Height/2
		return []dmath.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	}
}

// b2Shapes converts the shape into one or more box2d shapes sharing the
// body origin.
func (s Shape) b2Shapes() []box2d.B2ShapeInterface {
	switch s.Kind {
	case ShapeCircle:
		return []box2d.B2ShapeInterface{circleAt(dmath.Vec2{}, s.Radius)}
	case ShapeCapsule:
		r := s.Width / 2
		half := s.Height/2 - r
		if half <= 0 {
			return []box2d.B2ShapeInterface{circleAt(dmath.Vec2{}, r)}
		}
		core := box2d.MakeB2PolygonShape()
		core.SetAsBox(r, half)
		return []box2d.B2ShapeInterface{
			&core,
			circleAt(dmath.Vec2{Y: half}, r),
			circleAt(dmath.Vec2{Y: -half}, r),
		}
	case ShapePolygon:
		if len(s.Vertices) <= maxPolygonVertices {
			return []box2d.B2ShapeInterface{polygon(s.Vertices)}
		}
		var shapes []box2d.B2ShapeInterface
		for i := 1; i+1 < len(s.Vertices); i++ {
			tri := []dmath.Vec2{s.Vertices[0], s.Vertices[i], s.Vertices[i+1]}
			shapes = append(shapes, polygon(tri))
		}
		return shapes
	default:
		box := box2d.MakeB2PolygonShape()
		box.SetAsBox(s.Width/2, s.Height/2)
		return []box2d.B2ShapeInterface{&box}
	}
}

func polygon(vertices []dmath.Vec2) *box2d.B2PolygonShape {
	pts := make([]box2d.B2Vec2, len(vertices))
	for i, v := range vertices {
		pts[i] = vec(v)
	}
	p := box2d.MakeB2PolygonShape()
	p.Set(pts, len(pts))
	return &p
}

func circleAt(center dmath.Vec2, radius float64) *box2d.B2CircleShape {
	c := box2d.MakeB2CircleShape()
	c.M_radius = radius
	c.M_p = vec(center)
	return &c
}

func arc(center dmath.Vec2, radius, from, to float64, segments int) []dmath.Vec2 {
	pts := make([]dmath.Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/float64(segments)
		pts = append(pts, dmath.Vec2{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return pts
}

func bounds(vs []dmath.Vec2) (minX, minY, maxX, maxY float64) {
	if len(vs) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY, maxX, maxY = vs[0].X, vs[0].Y, vs[0].X, vs[0].Y
	for _, v := range vs[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

func vec(v dmath.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: v.Y}
}
