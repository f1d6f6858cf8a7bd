// Package systems holds the penguin squad gameplay: movement, the throw
// protocol, contact resolution, proximity checks and drawing.
package systems

import (
	"io"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/proximity"
	"github.com/automoto/penguin-squad/render"
	"github.com/automoto/penguin-squad/systems/factory"
	"github.com/automoto/penguin-squad/world"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Game implements world.Gameplay on top of an ordered ECS pipeline.
type Game struct {
	logger *log.Logger
	ecs    *ecs.ECS
}

func NewGame(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{logger: logger}
}

// newPipeline registers the per-tick systems in run order.
func newPipeline(w donburi.World) *ecs.ECS {
	e := ecs.NewECS(w)

	e.AddSystem(UpdateReturnDrowned)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateThrow)
	e.AddSystem(UpdateCarried)
	e.AddSystem(UpdateMonsters)
	e.AddSystem(UpdateFloatingIce)
	e.AddSystem(UpdateMovingIce)
	e.AddSystem(UpdateIcicles)
	e.AddSystem(UpdateProximity)
	e.AddSystem(UpdateFall)
	e.AddSystem(UpdateWin)

	e.AddRenderer(cfg.Default, DrawObjects)
	return e
}

// Populate rebuilds the pipeline over the controller's fresh world, then
// creates the level's entities.
func (g *Game) Populate(c *world.Controller) error {
	w, h := c.Bounds()
	g.ecs = newPipeline(c.World())
	entry := c.World().Entry(c.World().Create(Frame))
	Frame.SetValue(entry, FrameData{
		Controller: c,
		Logger:     g.logger,
		Index:      proximity.New(w, h, cfg.Proximity.Resolution, cfg.Proximity.CellSize),
	})
	return factory.PopulateLevel(c, c.Level(), c.Bundle())
}

// Update runs once per tick before the physics step. Type changes made
// here are safe; contact callbacks only leave flags for it to act on.
func (g *Game) Update(c *world.Controller, dt float64) {
	f := GetFrame(g.ecs)
	f.Player = nil
	player, ok := components.Player.First(c.World())
	if !ok || !components.Body.Get(player).Active {
		return
	}
	f.Player = player
	f.Dt = dt
	g.ecs.Update()
}

func (g *Game) Draw(c *world.Controller, sink render.Sink) {
	g.ecs.Draw(&Canvas{Sink: sink})
}

func (g *Game) HUD(c *world.Controller) render.Overlay {
	var o render.Overlay
	if s, ok := components.Session.First(c.World()); ok {
		session := components.Session.Get(s)
		o.Notes = session.NotesCollected
		o.Required = session.NotesRequired
		o.Total = session.TotalPenguins
	}
	if p, ok := components.Player.First(c.World()); ok {
		o.Penguins = components.Player.Get(p).NumPenguins
	}
	return o
}

// ECS exposes the pipeline the current level runs on.
func (g *Game) ECS() *ecs.ECS {
	return g.ecs
}

// Frame exposes the per-tick state shared by the systems.
func (g *Game) Frame() *FrameData {
	return GetFrame(g.ecs)
}

// Index exposes the proximity index for inspection.
func (g *Game) Index() *proximity.Index {
	return g.Frame().Index
}

func UpdateWin(e *ecs.ECS) {
	f := GetFrame(e)
	checkWin(f.Controller, f.Player)
}

// UpdateFall fails the level once the player drops below the world.
func UpdateFall(e *ecs.ECS) {
	f := GetFrame(e)
	if components.Body.Get(f.Player).Position().Y < -cfg.World.FallMargin {
		f.Controller.SetFailure()
	}
}

// checkWin completes the level once the player stands in the exit with the
// whole squad and every note collected.
func checkWin(c *world.Controller, player *donburi.Entry) {
	p := components.Player.Get(player)
	s, ok := components.Session.First(c.World())
	if !ok {
		return
	}
	session := components.Session.Get(s)
	if p.ExitContacts > 0 && p.NumPenguins == p.TotalPenguins && session.NotesCollected == session.NotesRequired {
		c.SetComplete()
	}
}
