package world

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/render"
	dmath "github.com/yohamta/donburi/features/math"
)

// Draw lets the gameplay paint the objects, then adds debug outlines and
// the end-of-level overlay.
func (c *Controller) Draw(sink render.Sink) {
	sink.Begin()
	c.gameplay.Draw(c, sink)

	if c.debug {
		for _, e := range c.objects {
			entry, ok := c.Entry(e)
			if !ok {
				continue
			}
			for _, b := range components.Body.Get(entry).Bodies {
				c.drawDebug(sink, b)
			}
		}
	}

	overlay := c.gameplay.HUD(c)
	switch {
	case c.failed:
		overlay.Kind = render.OverlayFailed
	case c.complete:
		overlay.Kind = render.OverlayComplete
	}
	overlay.Countdown = c.countdown
	sink.DrawOverlay(overlay)
	sink.End()
}

func (c *Controller) drawDebug(sink render.Sink, b *physics.Body) {
	def := b.Def()
	sink.DrawDebug(render.DebugShape{Points: c.toScreen(b.Outline()), Sensor: def.IsSensor})

	// Sensor boxes are attached in body space and turn with the body.
	pos := b.Position()
	sin, cos := math.Sincos(b.Angle())
	for _, s := range def.Sensors {
		hw, hh := s.Width/2, s.Height/2
		local := []dmath.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
		box := make([]dmath.Vec2, len(local))
		for i, p := range local {
			x, y := s.Offset.X+p.X, s.Offset.Y+p.Y
			box[i] = dmath.Vec2{X: pos.X + x*cos - y*sin, Y: pos.Y + x*sin + y*cos}
		}
		sink.DrawDebug(render.DebugShape{Points: c.toScreen(box), Sensor: true})
	}
}

func (c *Controller) toScreen(pts []dmath.Vec2) []dmath.Vec2 {
	out := make([]dmath.Vec2, len(pts))
	for i, p := range pts {
		out[i] = c.WorldToScreen(p)
	}
	return out
}

// WorldToScreen converts y-up world units to y-down canvas pixels.
func (c *Controller) WorldToScreen(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: p.X * c.scale.X, Y: c.canvas.Y - p.Y*c.scale.Y}
}

func (c *Controller) ScreenToWorld(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: p.X / c.scale.X, Y: (c.canvas.Y - p.Y) / c.scale.Y}
}
