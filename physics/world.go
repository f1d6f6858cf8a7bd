package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/charmbracelet/log"
	dmath "github.com/yohamta/donburi/features/math"
)

// Fixture is one side of a contact as seen by gameplay code.
type Fixture struct {
	Tag
	Sensor bool
	Type   BodyType
}

// ContactHandler receives begin/end contact events. It runs inside the
// physics step, so it may only flip flags and counters.
type ContactHandler interface {
	BeginContact(a, b Fixture)
	EndContact(a, b Fixture)
}

// World owns the box2d world and forwards contacts to a single handler.
type World struct {
	b2      *box2d.B2World
	handler ContactHandler
	logger  *log.Logger
}

func NewWorld(gravity dmath.Vec2, logger *log.Logger) *World {
	b2 := box2d.MakeB2World(vec(gravity))
	w := &World{b2: &b2, logger: logger}
	w.b2.SetContactListener(&listener{world: w})
	return w
}

// SetContactHandler replaces the contact handler; nil detaches it.
func (w *World) SetContactHandler(h ContactHandler) {
	w.handler = h
}

// CreateBody adds a body with its fixtures and sensors to the world.
func (w *World) CreateBody(def Def, tag Tag) *Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = def.Type.b2()
	bd.Position = vec(def.Position)
	bd.Angle = def.Angle
	bd.FixedRotation = def.FixedRotation
	bd.Bullet = def.Bullet
	bd.UserData = tag

	body := w.b2.CreateBody(&bd)
	tag.Part = def.Part
	for _, shape := range def.Shape.b2Shapes() {
		fd := box2d.MakeB2FixtureDef()
		fd.Shape = shape
		fd.Density = def.Material.Density
		fd.Friction = def.Material.Friction
		fd.Restitution = def.Material.Restitution
		fd.IsSensor = def.IsSensor
		fd.Filter.GroupIndex = def.Group
		fd.UserData = tag
		body.CreateFixtureFromDef(&fd)
	}

	for _, s := range def.Sensors {
		box := box2d.MakeB2PolygonShape()
		box.SetAsBoxFromCenterAndAngle(s.Width/2, s.Height/2, vec(s.Offset), 0)
		fd := box2d.MakeB2FixtureDef()
		fd.Shape = &box
		fd.IsSensor = true
		fd.Filter.GroupIndex = def.Group
		fd.UserData = Tag{Entity: tag.Entity, Kind: tag.Kind, Part: s.Part}
		body.CreateFixtureFromDef(&fd)
	}

	return &Body{b: body, def: def, tag: tag}
}

// DestroyBody removes the body. Touching contacts report EndContact first.
func (w *World) DestroyBody(b *Body) {
	if b == nil || b.b == nil {
		return
	}
	w.b2.DestroyBody(b.b)
	b.b = nil
}

func (w *World) CreateRevoluteJoint(a, b *Body, def RevoluteDef) *Joint {
	jd := box2d.MakeB2RevoluteJointDef()
	jd.Initialize(a.b, b.b, vec(def.Anchor))
	jd.EnableLimit = true
	jd.LowerAngle = def.Lower
	jd.UpperAngle = def.Upper
	return &Joint{j: w.b2.CreateJoint(&jd)}
}

func (w *World) DestroyJoint(j *Joint) {
	if j == nil || j.j == nil {
		return
	}
	w.b2.DestroyJoint(j.j)
	j.j = nil
}

// Step advances the simulation by dt with fixed solver iteration counts.
func (w *World) Step(dt float64, velocityIterations, positionIterations int) {
	w.b2.Step(dt, velocityIterations, positionIterations)
}

// BodyCount reports how many bodies currently exist in the engine.
func (w *World) BodyCount() int {
	return w.b2.GetBodyCount()
}

// Dispose detaches the handler and destroys whatever bodies remain. The
// world must not be used afterwards.
func (w *World) Dispose() {
	w.handler = nil
	for b := w.b2.GetBodyList(); b != nil; {
		next := b.GetNext()
		w.b2.DestroyBody(b)
		b = next
	}
}

func (w *World) dispatch(contact box2d.B2ContactInterface, begin bool) {
	if w.handler == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("contact handler failed", "begin", begin, "err", r)
		}
	}()

	a, okA := fixtureOf(contact.GetFixtureA())
	b, okB := fixtureOf(contact.GetFixtureB())
	if !okA || !okB {
		w.logger.Warn("contact without entity data", "begin", begin)
		return
	}
	if begin {
		w.handler.BeginContact(a, b)
	} else {
		w.handler.EndContact(a, b)
	}
}

func fixtureOf(f *box2d.B2Fixture) (Fixture, bool) {
	if f == nil {
		return Fixture{}, false
	}
	tag, ok := f.GetUserData().(Tag)
	if !ok {
		return Fixture{}, false
	}
	return Fixture{Tag: tag, Sensor: f.IsSensor(), Type: bodyTypeOf(f.GetBody().GetType())}, true
}

// listener adapts box2d's callback interface.
type listener struct {
	world *World
}

func (l *listener) BeginContact(contact box2d.B2ContactInterface) {
	l.world.dispatch(contact, true)
}

func (l *listener) EndContact(contact box2d.B2ContactInterface) {
	l.world.dispatch(contact, false)
}

func (l *listener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (l *listener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}
