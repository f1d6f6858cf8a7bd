package systems

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/systems/factory"
	"github.com/automoto/penguin-squad/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateThrow drives the two-phase throw: a release while idle fixes the
// aim, holding charges force, and the next release throws.
func UpdateThrow(ecs *ecs.ECS) {
	f := GetFrame(ecs)
	c, e := f.Controller, f.Player
	p := components.Player.Get(e)
	in := c.Input()

	switch p.ThrowPhase {
	case components.ThrowIdle:
		if in.TouchUp && p.NumPenguins > 0 {
			target := c.ScreenToWorld(in.Pointer)
			pos := components.Body.Get(e).Position()
			p.Aim = dmath.Vec2{X: target.X - pos.X, Y: target.Y - pos.Y}
			p.ThrowForce = 0
			p.ThrowPhase = components.ThrowCharging
		}
	case components.ThrowCharging:
		if in.Touching {
			p.ThrowForce = math.Min(p.ThrowForce+cfg.Player.ThrowIncrement, cfg.Player.MaxThrowingForce)
		}
		if in.TouchUp && p.ThrowForce > 0 {
			if components.Ground.Get(e).OnGround() && p.ThrowCooldown == 0 && p.NumPenguins > 0 {
				throwPenguin(f, e)
			}
			p.ThrowPhase = components.ThrowIdle
			p.ThrowForce = 0
		}
	}
}

// throwPenguin launches the carried penguin with the highest index.
func throwPenguin(f *FrameData, e *donburi.Entry) {
	c := f.Controller
	p := components.Player.Get(e)
	index := p.NumPenguins - 1
	pe, ok := c.Entry(p.Penguins[index])
	if !ok {
		f.Logger.Warn("carried penguin is gone", "index", index)
		return
	}

	aim := p.Aim
	length := math.Hypot(aim.X, aim.Y)
	if length == 0 {
		aim = dmath.Vec2{X: 1}
		if !p.FacingRight {
			aim.X = -1
		}
		length = 1
	}
	impulse := dmath.Vec2{X: aim.X / length * p.ThrowForce, Y: aim.Y / length * p.ThrowForce}

	root := components.Body.Get(pe).Root()
	root.SetType(physics.Dynamic)
	root.ApplyImpulse(impulse)

	pen := components.Penguin.Get(pe)
	pen.Thrown = true
	pen.State = components.PenguinRolling
	p.LastImpulse = impulse
	p.NumPenguins--
	p.ThrowCooldown = cfg.Player.ThrowCooldown
	setPlayerState(c, e, components.PlayerThrowing)

	f.Logger.Debug("penguin thrown", "index", index, "force", p.ThrowForce, "left", p.NumPenguins)
}

// recoverPenguin returns a thrown penguin to the squad. It takes slot
// NumPenguins, swapping places with whichever thrown penguin held it.
func recoverPenguin(f *FrameData, player, pe *donburi.Entry) {
	c := f.Controller
	p := components.Player.Get(player)
	pen := components.Penguin.Get(pe)
	if !pen.Thrown || p.NumPenguins >= p.TotalPenguins {
		return
	}

	slot := p.NumPenguins
	if pen.Index != slot {
		if other, ok := c.Entry(p.Penguins[slot]); ok {
			components.Penguin.Get(other).Index = pen.Index
		}
		p.Penguins[pen.Index], p.Penguins[slot] = p.Penguins[slot], p.Penguins[pen.Index]
		pen.Index = slot
	}

	root := components.Body.Get(pe).Root()
	root.SetType(physics.Kinematic)
	root.SetVelocity(dmath.Vec2{})
	root.SetAngularVelocity(0)
	root.SetTransform(factory.CarryPosition(components.Body.Get(player).Position(), slot, p.FacingRight), 0)

	pen.Thrown = false
	pen.Drowned = false
	pen.State = components.PenguinWalking
	components.Sprite.Get(pe).Spin = 0
	p.NumPenguins++

	f.Logger.Debug("penguin recovered", "index", slot, "carried", p.NumPenguins)
}

// UpdateReturnDrowned recovers penguins that touched water during the last step.
func UpdateReturnDrowned(ecs *ecs.ECS) {
	f := GetFrame(ecs)
	c, player := f.Controller, f.Player
	p := components.Player.Get(player)
	for _, h := range p.Penguins {
		pe, ok := c.Entry(h)
		if !ok {
			continue
		}
		if components.Penguin.Get(pe).Drowned {
			recoverPenguin(f, player, pe)
		}
	}
}

// UpdateCarried pins carried penguins behind the player.
func UpdateCarried(ecs *ecs.ECS) {
	f := GetFrame(ecs)
	c, player := f.Controller, f.Player
	p := components.Player.Get(player)
	pos := components.Body.Get(player).Position()
	for i := 0; i < p.NumPenguins; i++ {
		pe, ok := c.Entry(p.Penguins[i])
		if !ok {
			continue
		}
		root := components.Body.Get(pe).Root()
		if root == nil {
			continue
		}
		root.SetTransform(factory.CarryPosition(pos, i, p.FacingRight), 0)
	}
}

func updatePenguinObject(c *world.Controller, e *donburi.Entry, dt float64) {
	pen := components.Penguin.Get(e)
	sprite := components.Sprite.Get(e)
	root := components.Body.Get(e).Root()

	if pen.Thrown {
		if components.Ground.Get(e).OnGround() {
			pen.State = components.PenguinResting
		} else {
			pen.State = components.PenguinRolling
			if v := root.Velocity(); v.X != 0 {
				sprite.Spin += math.Copysign(cfg.Penguin.SpinRate*dt, v.X)
			}
		}
	} else {
		pen.State = components.PenguinWalking
		sprite.Spin = 0
		if owner, ok := c.Entry(pen.Owner); ok {
			sprite.FlipX = !components.Player.Get(owner).FacingRight
		}
	}

	key := cfg.StripPenguinWalk
	switch pen.State {
	case components.PenguinRolling:
		key = cfg.StripPenguinRoll
	case components.PenguinResting:
		key = cfg.StripPenguinRest
	}
	if strip, ok := c.Bundle().Strip(key); ok {
		sprite.SetStrip(strip, cfg.Animation.Interval)
	}
	sprite.Animation.Update(dt)
}
