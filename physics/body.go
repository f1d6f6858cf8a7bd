package physics

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type BodyType uint8

const (
	Static BodyType = iota
	Kinematic
	Dynamic
)

func (t BodyType) b2() uint8 {
	switch t {
	case Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

func bodyTypeOf(t uint8) BodyType {
	switch t {
	case box2d.B2BodyType.B2_kinematicBody:
		return Kinematic
	case box2d.B2BodyType.B2_dynamicBody:
		return Dynamic
	default:
		return Static
	}
}

// Tag is the user data stamped on every fixture. It identifies the owning
// entity by handle, never by pointer.
type Tag struct {
	Entity donburi.Entity
	Kind   tags.Kind
	Part   tags.Part
}

type Material struct {
	Density     float64
	Friction    float64
	Restitution float64
}

// Sensor is an extra sensor box attached to a body, e.g. a foot sensor.
type Sensor struct {
	Part   tags.Part
	Width  float64
	Height float64
	Offset dmath.Vec2
}

// Def describes one rigid body before it exists in the world.
type Def struct {
	Type          BodyType
	Position      dmath.Vec2
	Angle         float64
	Shape         Shape
	Material      Material
	IsSensor      bool
	FixedRotation bool
	Bullet        bool
	Group         int16 // Negative groups never collide with each other
	Part          tags.Part
	Sensors       []Sensor
}

// Body is a live rigid body. It is only valid between World.CreateBody and
// World.DestroyBody.
type Body struct {
	b   *box2d.B2Body
	def Def
	tag Tag
}

func (b *Body) Tag() Tag { return b.tag }
func (b *Body) Def() Def { return b.def }

func (b *Body) Position() dmath.Vec2 {
	return fromB2(b.b.GetPosition())
}

func (b *Body) Angle() float64 {
	return b.b.GetAngle()
}

func (b *Body) Velocity() dmath.Vec2 {
	return fromB2(b.b.GetLinearVelocity())
}

func (b *Body) AngularVelocity() float64 {
	return b.b.GetAngularVelocity()
}

// Kinematics is a snapshot of a body's motion, comparable with ==.
type Kinematics struct {
	Position        dmath.Vec2
	Velocity        dmath.Vec2
	Angle           float64
	AngularVelocity float64
}

func (b *Body) Kinematics() Kinematics {
	return Kinematics{
		Position:        b.Position(),
		Velocity:        b.Velocity(),
		Angle:           b.Angle(),
		AngularVelocity: b.AngularVelocity(),
	}
}

func (b *Body) SetVelocity(v dmath.Vec2) {
	b.b.SetLinearVelocity(vec(v))
}

func (b *Body) SetAngularVelocity(w float64) {
	b.b.SetAngularVelocity(w)
}

// ApplyForce pushes the body through its center of mass.
func (b *Body) ApplyForce(f dmath.Vec2) {
	b.b.ApplyForce(vec(f), b.b.GetWorldCenter(), true)
}

// ApplyImpulse changes the body's momentum immediately through its center of mass.
func (b *Body) ApplyImpulse(i dmath.Vec2) {
	b.b.ApplyLinearImpulse(vec(i), b.b.GetWorldCenter(), true)
}

func (b *Body) Type() BodyType {
	return bodyTypeOf(b.b.GetType())
}

// SetType changes the simulation type. Must not be called while the world is stepping.
func (b *Body) SetType(t BodyType) {
	b.b.SetType(t.b2())
	b.b.SetAwake(true)
}

func (b *Body) SetTransform(pos dmath.Vec2, angle float64) {
	b.b.SetTransform(vec(pos), angle)
}

func (b *Body) Mass() float64 {
	return b.b.GetMass()
}

func (b *Body) Awake() bool {
	return b.b.IsAwake()
}

// Outline returns the body's collision outline in world coordinates.
func (b *Body) Outline() []dmath.Vec2 {
	local := b.def.Shape.Outline()
	pos := b.Position()
	sin, cos := math.Sincos(b.Angle())
	out := make([]dmath.Vec2, len(local))
	for i, v := range local {
		out[i] = dmath.Vec2{
			X: pos.X + v.X*cos - v.Y*sin,
			Y: pos.Y + v.X*sin + v.Y*cos,
		}
	}
	return out
}

// Joint is a live constraint between two bodies.
type Joint struct {
	j box2d.B2JointInterface
}

// RevoluteDef pins part B to part A at Anchor with the relative angle
// limited to [Lower, Upper].
type RevoluteDef struct {
	A, B   int
	Anchor dmath.Vec2
	Lower  float64
	Upper  float64
}
