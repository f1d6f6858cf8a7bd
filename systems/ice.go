package systems

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// pinOf returns the kinematic pin of a bar-and-pin obstacle.
func pinOf(e *donburi.Entry) *physics.Body {
	body := components.Body.Get(e)
	if len(body.Bodies) < 2 {
		return nil
	}
	return body.Bodies[1]
}

// steer sets a kinematic body's velocity so the next step lands it on goal.
func steer(b *physics.Body, goal dmath.Vec2, dt float64) {
	if dt <= 0 {
		return
	}
	pos := b.Position()
	b.SetVelocity(dmath.Vec2{X: (goal.X - pos.X) / dt, Y: (goal.Y - pos.Y) / dt})
}

// UpdateFloatingIce integrates each pin's damped spring. The rest depth
// grows with the number of riders.
func UpdateFloatingIce(ecs *ecs.ECS) {
	frame := GetFrame(ecs)
	dt := frame.Dt
	tags.FloatingIce.Each(frame.Controller.World(), func(e *donburi.Entry) {
		pin := pinOf(e)
		if pin == nil {
			return
		}
		f := components.FloatingIce.Get(e)
		riders := components.Riders.Get(e)

		target := -math.Min(float64(riders.Count())*cfg.Ice.SinkPerRider, cfg.Ice.MaxSink)
		accel := -cfg.Ice.Stiffness*(f.Offset-target) - cfg.Ice.Damping*f.Velocity
		f.Velocity += accel * dt
		f.Offset += f.Velocity * dt

		steer(pin, dmath.Vec2{X: f.Rest.X, Y: f.Rest.Y + f.Offset}, cfg.World.Step)
	})
}

// UpdateMovingIce advances each pin along its tween.
func UpdateMovingIce(ecs *ecs.ECS) {
	frame := GetFrame(ecs)
	dt := frame.Dt
	tags.MovingIce.Each(frame.Controller.World(), func(e *donburi.Entry) {
		pin := pinOf(e)
		if pin == nil {
			return
		}
		m := components.MovingIce.Get(e)
		offset, _, _ := m.Tween.Update(float32(dt))
		steer(pin, dmath.Vec2{X: m.Origin.X + float64(offset), Y: m.Origin.Y}, cfg.World.Step)
	})
}
