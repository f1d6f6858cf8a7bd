package systems

import (
	"math"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var playerStrips = map[components.PlayerState]string{
	components.PlayerWalking:     cfg.StripPlayerWalk,
	components.PlayerJumpRising:  cfg.StripPlayerRise,
	components.PlayerJumpHanging: cfg.StripPlayerHang,
	components.PlayerJumpLanding: cfg.StripPlayerLand,
	components.PlayerThrowing:    cfg.StripPlayerThrow,
}

// UpdatePlayer applies walking force, speed clamping and jumps.
func UpdatePlayer(ecs *ecs.ECS) {
	f := GetFrame(ecs)
	c, e := f.Controller, f.Player
	p := components.Player.Get(e)
	root := components.Body.Get(e).Root()
	ground := components.Ground.Get(e)
	in := c.Input()

	v := root.Velocity()
	if in.Horizontal != 0 {
		root.ApplyForce(dmath.Vec2{X: in.Horizontal * cfg.Player.Force})
		p.FacingRight = in.Horizontal > 0
	} else {
		root.ApplyForce(dmath.Vec2{X: -v.X * cfg.Player.Damping})
	}
	if math.Abs(v.X) > cfg.Player.MaxSpeed {
		root.SetVelocity(dmath.Vec2{X: math.Copysign(cfg.Player.MaxSpeed, v.X), Y: v.Y})
	}

	if in.Jump && ground.OnGround() && p.JumpCooldown == 0 {
		root.ApplyImpulse(dmath.Vec2{Y: cfg.Player.JumpImpulse})
		p.JumpCooldown = cfg.Player.JumpCooldown
		setPlayerState(c, e, components.PlayerJumpRising)
	}
}

// setPlayerState switches state and restarts the matching strip.
func setPlayerState(c *world.Controller, e *donburi.Entry, state components.PlayerState) {
	p := components.Player.Get(e)
	p.State = state
	sprite := components.Sprite.Get(e)
	if strip, ok := c.Bundle().Strip(playerStrips[state]); ok {
		sprite.Strip = strip
		sprite.Animation = strip.Animation(cfg.Animation.Interval)
	}
}

// updatePlayerObject runs after the step: cooldowns, then the animation
// driven transitions.
func updatePlayerObject(c *world.Controller, e *donburi.Entry, dt float64) {
	p := components.Player.Get(e)
	sprite := components.Sprite.Get(e)
	ground := components.Ground.Get(e)

	if p.JumpCooldown > 0 {
		p.JumpCooldown--
	}
	if p.ThrowCooldown > 0 {
		p.ThrowCooldown--
	}
	if p.PunchCooldown > 0 {
		p.PunchCooldown--
	}

	done := sprite.Animation != nil && sprite.Animation.Update(dt)
	switch p.State {
	case components.PlayerJumpRising:
		if done {
			if ground.OnGround() {
				setPlayerState(c, e, components.PlayerJumpLanding)
			} else {
				setPlayerState(c, e, components.PlayerJumpHanging)
			}
		}
	case components.PlayerJumpHanging:
		if ground.OnGround() {
			setPlayerState(c, e, components.PlayerJumpLanding)
		}
	case components.PlayerJumpLanding, components.PlayerThrowing:
		if done {
			setPlayerState(c, e, components.PlayerWalking)
		}
	}
	sprite.FlipX = !p.FacingRight
}
