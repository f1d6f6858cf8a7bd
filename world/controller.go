// Package world runs the fixed-step simulation loop: input, gameplay update,
// queued additions, physics step, removals and per-object updates.
package world

import (
	"errors"
	"fmt"
	"io"

	"github.com/automoto/penguin-squad/assets"
	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/input"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/render"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrOutOfBounds = errors.New("object out of bounds")

type ExitCode int

const (
	ExitQuit ExitCode = iota
	ExitNext
	ExitPrev
)

func (c ExitCode) String() string {
	switch c {
	case ExitNext:
		return "next"
	case ExitPrev:
		return "prev"
	default:
		return "quit"
	}
}

// Listener is told when the controller wants to leave the level.
type Listener interface {
	Exit(code ExitCode)
}

type ListenerFunc func(code ExitCode)

func (f ListenerFunc) Exit(code ExitCode) { f(code) }

// Gameplay is the game-specific half of the loop. Contact callbacks run
// inside the physics step and must only flip flags and counters.
type Gameplay interface {
	Populate(c *Controller) error
	Update(c *Controller, dt float64)
	UpdateObject(c *Controller, e *donburi.Entry, dt float64)
	Draw(c *Controller, sink render.Sink)
	HUD(c *Controller) render.Overlay
	BeginContact(c *Controller, a, b physics.Fixture)
	EndContact(c *Controller, a, b physics.Fixture)
}

type Options struct {
	Level    *leveldata.Level
	Bundle   *assets.Bundle
	Input    input.Reader
	Listener Listener
	Gameplay Gameplay
	Logger   *log.Logger

	// Canvas size in pixels; defaults to config.Display.
	CanvasWidth  int
	CanvasHeight int
}

// Controller owns one level's entities and physics world.
type Controller struct {
	level    *leveldata.Level
	bundle   *assets.Bundle
	reader   input.Reader
	listener Listener
	gameplay Gameplay
	logger   *log.Logger

	ecs     donburi.World
	physics *physics.World
	objects []donburi.Entity
	queue   []donburi.Entity

	width, height float64
	canvas        dmath.Vec2
	scale         dmath.Vec2

	snapshot  input.Snapshot
	debug     bool
	active    bool
	complete  bool
	failed    bool
	countdown int
	frame     int
}

// New builds a controller and populates the level. The controller starts active.
func New(opts Options) (*Controller, error) {
	if opts.Level == nil || opts.Gameplay == nil {
		return nil, errors.New("world: level and gameplay are required")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Bundle == nil {
		opts.Bundle = assets.MustLoad()
	}
	if opts.Input == nil {
		opts.Input = input.Idle{}
	}
	if opts.Listener == nil {
		opts.Listener = ListenerFunc(func(ExitCode) {})
	}
	if opts.CanvasWidth == 0 || opts.CanvasHeight == 0 {
		opts.CanvasWidth, opts.CanvasHeight = config.Display.Width, config.Display.Height
	}

	c := &Controller{
		level:    opts.Level,
		bundle:   opts.Bundle,
		reader:   opts.Input,
		listener: opts.Listener,
		gameplay: opts.Gameplay,
		logger:   opts.Logger,
		width:    opts.Level.Width,
		height:   opts.Level.Height,
		canvas:   dmath.Vec2{X: float64(opts.CanvasWidth), Y: float64(opts.CanvasHeight)},
		debug:    config.Debug.Draw,
		active:   true,
	}
	if c.width <= 0 || c.height <= 0 {
		c.width, c.height = config.World.Width, config.World.Height
	}
	c.scale = dmath.Vec2{X: c.canvas.X / c.width, Y: c.canvas.Y / c.height}

	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset tears the level down completely and populates it again.
func (c *Controller) Reset() error {
	if c.physics != nil {
		c.physics.SetContactHandler(nil)
		for _, e := range c.objects {
			if entry, ok := c.Entry(e); ok {
				c.deactivate(entry)
			}
		}
		c.physics.Dispose()
	}

	gravity := c.level.Gravity
	if gravity == 0 {
		gravity = config.World.Gravity
	}
	c.ecs = donburi.NewWorld()
	c.physics = physics.NewWorld(dmath.Vec2{Y: gravity}, c.logger.WithPrefix("physics"))
	c.physics.SetContactHandler(contacts{c: c})
	c.objects = nil
	c.queue = nil
	c.complete = false
	c.failed = false
	c.countdown = -1
	c.frame = 0

	if err := c.gameplay.Populate(c); err != nil {
		return fmt.Errorf("world: populate %s: %w", c.level.Name, err)
	}
	c.logger.Debug("level populated", "level", c.level.Name, "objects", len(c.objects), "queued", len(c.queue))
	return nil
}

// Tick runs one frame. It reports false when the frame was cut short,
// either because the controller is inactive or an exit was requested.
func (c *Controller) Tick(dt float64) bool {
	if !c.active {
		return false
	}
	if !c.PreUpdate(dt) {
		return false
	}
	c.Update(dt)
	c.PostUpdate(dt)
	return true
}

// PreUpdate reads input and handles reset, exit and the end-of-level countdown.
func (c *Controller) PreUpdate(dt float64) bool {
	c.snapshot = c.reader.Read()
	c.frame++

	if c.snapshot.Debug {
		c.debug = !c.debug
	}
	if c.snapshot.Reset {
		if err := c.Reset(); err != nil {
			c.logger.Error("reset failed", "err", err)
			c.active = false
			return false
		}
	}
	switch {
	case c.snapshot.Exit:
		c.listener.Exit(ExitQuit)
		return false
	case c.snapshot.Advance:
		c.listener.Exit(ExitNext)
		return false
	case c.snapshot.Retreat:
		c.listener.Exit(ExitPrev)
		return false
	}

	switch {
	case c.countdown > 0:
		c.countdown--
	case c.countdown == 0 && c.failed:
		if err := c.Reset(); err != nil {
			c.logger.Error("reset failed", "err", err)
			c.active = false
			return false
		}
	case c.countdown == 0 && c.complete:
		c.countdown = -1
		c.listener.Exit(ExitNext)
		return false
	case c.complete:
		// ExitNext was already sent; hold the finished level until the
		// listener deactivates or resets it.
		return false
	}
	return true
}

func (c *Controller) Update(dt float64) {
	c.gameplay.Update(c, dt)
}

// PostUpdate flushes the add queue, steps physics, then removes flagged
// objects and updates the rest.
func (c *Controller) PostUpdate(dt float64) {
	queued := c.queue
	c.queue = nil
	for _, e := range queued {
		entry, ok := c.Entry(e)
		if !ok {
			continue
		}
		c.activate(entry)
	}

	c.physics.Step(config.World.Step, config.World.VelocityIterations, config.World.PositionIterations)

	objs := c.objects
	c.objects = make([]donburi.Entity, 0, len(objs))
	for _, e := range objs {
		entry, ok := c.Entry(e)
		if !ok {
			continue
		}
		body := components.Body.Get(entry)
		if body.Removed {
			c.deactivate(entry)
			c.ecs.Remove(e)
			continue
		}
		c.objects = append(c.objects, e)
		c.gameplay.UpdateObject(c, entry, dt)
	}
}

// AddObject activates an entity immediately.
func (c *Controller) AddObject(entry *donburi.Entry) error {
	if err := c.checkBounds(entry); err != nil {
		return err
	}
	c.activate(entry)
	return nil
}

// QueueObject defers activation to the next PostUpdate.
func (c *Controller) QueueObject(entry *donburi.Entry) error {
	if err := c.checkBounds(entry); err != nil {
		return err
	}
	c.queue = append(c.queue, entry.Entity())
	return nil
}

// MarkRemoved flags an entity for removal after the next physics step.
func (c *Controller) MarkRemoved(e donburi.Entity) {
	entry, ok := c.Entry(e)
	if !ok || !entry.HasComponent(components.Body) {
		return
	}
	components.Body.Get(entry).Removed = true
}

func (c *Controller) SetComplete() {
	if c.failed || c.complete {
		return
	}
	c.complete = true
	c.countdown = config.World.ExitCount
	c.logger.Info("level complete", "level", c.level.Name, "frame", c.frame)
}

func (c *Controller) SetFailure() {
	if c.complete || c.failed {
		return
	}
	c.failed = true
	c.countdown = config.World.ExitCount
	c.logger.Info("level failed", "level", c.level.Name, "frame", c.frame)
}

// SetInput swaps the input reader, e.g. to start recording mid-run.
func (c *Controller) SetInput(r input.Reader) {
	c.reader = r
}

func (c *Controller) Activate()    { c.active = true }
func (c *Controller) Deactivate()  { c.active = false }
func (c *Controller) Active() bool { return c.active }

func (c *Controller) checkBounds(entry *donburi.Entry) error {
	body := components.Body.Get(entry)
	for _, part := range body.Parts {
		p := part.Position
		if p.X < 0 || p.X > c.width || p.Y < 0 || p.Y > c.height {
			err := fmt.Errorf("world: %s at (%.2f, %.2f): %w", body.Kind, p.X, p.Y, ErrOutOfBounds)
			if config.Debug.Assertions {
				panic(err)
			}
			return err
		}
	}
	return nil
}

// activate creates every part body, then the joint, and appends the entity
// to the active list.
func (c *Controller) activate(entry *donburi.Entry) {
	body := components.Body.Get(entry)
	if body.Active {
		return
	}
	tag := physics.Tag{Entity: entry.Entity(), Kind: body.Kind}
	body.Bodies = make([]*physics.Body, len(body.Parts))
	for i, def := range body.Parts {
		body.Bodies[i] = c.physics.CreateBody(def, tag)
	}
	if j := body.Joint; j != nil {
		body.Link = c.physics.CreateRevoluteJoint(body.Bodies[j.A], body.Bodies[j.B], *j)
	}
	body.DrawScale = c.scale
	body.Active = true
	c.objects = append(c.objects, entry.Entity())
}

// deactivate destroys the joint before the bodies it connects.
func (c *Controller) deactivate(entry *donburi.Entry) {
	body := components.Body.Get(entry)
	if !body.Active {
		return
	}
	c.physics.DestroyJoint(body.Link)
	body.Link = nil
	for _, b := range body.Bodies {
		c.physics.DestroyBody(b)
	}
	body.Bodies = nil
	body.Active = false
}

// Entry resolves a handle, reporting false for stale ones.
func (c *Controller) Entry(e donburi.Entity) (*donburi.Entry, bool) {
	if e == donburi.Null || !c.ecs.Valid(e) {
		return nil, false
	}
	return c.ecs.Entry(e), true
}

func (c *Controller) World() donburi.World    { return c.ecs }
func (c *Controller) Physics() *physics.World { return c.physics }
func (c *Controller) Level() *leveldata.Level { return c.level }
func (c *Controller) Bundle() *assets.Bundle  { return c.bundle }
func (c *Controller) Logger() *log.Logger     { return c.logger }
func (c *Controller) Input() input.Snapshot   { return c.snapshot }
func (c *Controller) Debug() bool             { return c.debug }
func (c *Controller) SetDebug(on bool)        { c.debug = on }
func (c *Controller) Complete() bool          { return c.complete }
func (c *Controller) Failed() bool            { return c.failed }
func (c *Controller) Countdown() int          { return c.countdown }
func (c *Controller) Frame() int              { return c.frame }
func (c *Controller) QueueLen() int           { return len(c.queue) }
func (c *Controller) Scale() dmath.Vec2       { return c.scale }
func (c *Controller) Bounds() (w, h float64)  { return c.width, c.height }
func (c *Controller) Canvas() dmath.Vec2      { return c.canvas }

// Objects returns the active list in insertion order.
func (c *Controller) Objects() []donburi.Entity {
	out := make([]donburi.Entity, len(c.objects))
	copy(out, c.objects)
	return out
}

// contacts forwards physics contacts to the gameplay, dropping any whose
// entities have already left the arena.
type contacts struct {
	c *Controller
}

func (h contacts) BeginContact(a, b physics.Fixture) {
	if h.valid(a, b, true) {
		h.c.gameplay.BeginContact(h.c, a, b)
	}
}

func (h contacts) EndContact(a, b physics.Fixture) {
	if h.valid(a, b, false) {
		h.c.gameplay.EndContact(h.c, a, b)
	}
}

func (h contacts) valid(a, b physics.Fixture, begin bool) bool {
	if !h.c.ecs.Valid(a.Entity) || !h.c.ecs.Valid(b.Entity) {
		h.c.logger.Warn("contact with stale entity", "begin", begin, "a", a.Kind, "b", b.Kind)
		return false
	}
	return true
}
