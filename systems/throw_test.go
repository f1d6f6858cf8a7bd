package systems

import (
	"math"
	"testing"

	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/input"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

const settle = 45

// throwFrames releases once to aim at pointer, charges for charge ticks,
// then releases again.
func throwFrames(pointer dmath.Vec2, charge int) []input.Snapshot {
	frames := []input.Snapshot{{TouchUp: true, Pointer: pointer}}
	for i := 0; i < charge; i++ {
		frames = append(frames, input.Snapshot{Touching: true, Pointer: pointer})
	}
	return append(frames, input.Snapshot{TouchUp: true, Pointer: pointer})
}

func TestThrowAfterTenTicks(t *testing.T) {
	// Aim up and to the right of the player.
	pointer := dmath.Vec2{X: 192, Y: 416}
	const charge = 10
	frames := append(idle(settle), throwFrames(pointer, charge)...)
	c, _ := newRun(t, loadLevel(t, "level1.yaml"), frames)

	tickN(c, settle)
	e, p := playerOf(t, c)
	if !components.Ground.Get(e).OnGround() {
		t.Fatalf("player not grounded before throwing")
	}
	thrown := p.Penguins[1]

	if raw := charge * cfg.Player.ThrowIncrement; raw <= cfg.Player.MaxThrowingForce {
		t.Fatalf("charge of %v does not reach the cap %v", raw, cfg.Player.MaxThrowingForce)
	}
	tickN(c, 1)
	for i := 1; i <= charge; i++ {
		tickN(c, 1)
		expected := math.Min(float64(i)*cfg.Player.ThrowIncrement, cfg.Player.MaxThrowingForce)
		if p.ThrowPhase != components.ThrowCharging || p.ThrowForce != expected {
			t.Fatalf("charge tick %d: phase = %d, force = %v, expected %v", i, p.ThrowPhase, p.ThrowForce, expected)
		}
	}
	if p.ThrowForce != cfg.Player.MaxThrowingForce {
		t.Fatalf("force = %v, expected clamp to %v", p.ThrowForce, cfg.Player.MaxThrowingForce)
	}
	tickN(c, 1)

	if p.NumPenguins != 1 {
		t.Errorf("NumPenguins = %d, expected 1", p.NumPenguins)
	}
	if got := math.Hypot(p.LastImpulse.X, p.LastImpulse.Y); math.Abs(got-200) > 1e-9 {
		t.Errorf("impulse magnitude = %v, expected 200", got)
	}
	if p.LastImpulse.X <= 0 || p.LastImpulse.Y <= 0 {
		t.Errorf("impulse = %v, expected up and to the right", p.LastImpulse)
	}
	if p.ThrowPhase != components.ThrowIdle || p.ThrowForce != 0 {
		t.Errorf("throw state not reset: phase = %d, force = %v", p.ThrowPhase, p.ThrowForce)
	}
	if p.State != components.PlayerThrowing {
		t.Errorf("State = %v, expected throwing", p.State)
	}
	if p.ThrowCooldown == 0 {
		t.Errorf("ThrowCooldown not set")
	}

	pe, ok := c.Entry(thrown)
	if !ok {
		t.Fatal("thrown penguin is gone")
	}
	if !components.Penguin.Get(pe).Thrown {
		t.Errorf("highest carried index should be thrown")
	}
	if v := components.Body.Get(pe).Velocity(); v.X <= 0 {
		t.Errorf("thrown penguin velocity = %v, expected moving right", v)
	}
	checkSquad(t, c)
	checkParity(t, c)
}

func TestThrowWithoutPenguinsIsNoop(t *testing.T) {
	frames := append(idle(settle), throwFrames(dmath.Vec2{X: 300, Y: 300}, 4)...)
	c, _ := newRun(t, flatLevel(0), frames)
	_, p := playerOf(t, c)

	for i := 0; i < len(frames); i++ {
		tickN(c, 1)
		if p.ThrowPhase != components.ThrowIdle || p.ThrowForce != 0 {
			t.Fatalf("tick %d: phase = %d, force = %v", i, p.ThrowPhase, p.ThrowForce)
		}
	}
	if p.NumPenguins != 0 || p.LastImpulse != (dmath.Vec2{}) || p.State != components.PlayerWalking {
		t.Errorf("throw attempt changed state: %+v", p)
	}
}

func TestThrowCancelledWhenAirborne(t *testing.T) {
	frames := append(idle(settle), throwFrames(dmath.Vec2{X: 300, Y: 300}, 3)...)
	c, _ := newRun(t, loadLevel(t, "level1.yaml"), frames)
	tickN(c, settle)

	e, p := playerOf(t, c)
	tickN(c, 4)
	components.Ground.Get(e).Contacts = 0
	tickN(c, 1)

	if p.NumPenguins != 2 {
		t.Errorf("NumPenguins = %d, expected no throw while airborne", p.NumPenguins)
	}
	if p.ThrowPhase != components.ThrowIdle || p.ThrowForce != 0 {
		t.Errorf("cancelled throw should reset: phase = %d, force = %v", p.ThrowPhase, p.ThrowForce)
	}
}

func TestNumPenguinsStaysInBounds(t *testing.T) {
	var frames []input.Snapshot
	frames = append(frames, idle(settle)...)
	for i := 0; i < 4; i++ {
		frames = append(frames, throwFrames(dmath.Vec2{X: 400, Y: 200}, 8)...)
		frames = append(frames, idle(cfg.Player.ThrowCooldown+40)...)
	}
	c, _ := newRun(t, flatLevel(2), frames)
	_, p := playerOf(t, c)

	for i := 0; i < len(frames); i++ {
		tickN(c, 1)
		if p.NumPenguins < 0 || p.NumPenguins > p.TotalPenguins {
			t.Fatalf("tick %d: NumPenguins = %d", i, p.NumPenguins)
		}
	}
	if p.NumPenguins != 0 {
		t.Errorf("NumPenguins = %d after four throw attempts, expected 0", p.NumPenguins)
	}
	checkSquad(t, c)
}

func TestRecoverRestingPenguin(t *testing.T) {
	c, g := newRun(t, flatLevel(2), nil)
	tickN(c, settle)
	e, p := playerOf(t, c)

	p.Aim = dmath.Vec2{X: -1}
	p.ThrowForce = 5
	throwPenguin(g.Frame(), e)
	tickN(c, 60)
	if p.NumPenguins != 1 {
		t.Fatalf("NumPenguins = %d, expected 1", p.NumPenguins)
	}
	pe, _ := c.Entry(p.Penguins[1])
	if !components.Ground.Get(pe).OnGround() {
		t.Fatalf("thrown penguin should have come to rest")
	}

	c.SetInput(input.NewScript([]input.Snapshot{{Interact: true}}))
	tickN(c, 1)

	if p.NumPenguins != 2 {
		t.Errorf("NumPenguins = %d after recovery, expected 2", p.NumPenguins)
	}
	if components.Penguin.Get(pe).State != components.PenguinWalking {
		t.Errorf("recovered penguin state = %v", components.Penguin.Get(pe).State)
	}
	checkSquad(t, c)
}

func TestRecoverSwapsSlots(t *testing.T) {
	c, g := newRun(t, flatLevel(3), nil)
	tickN(c, settle)
	e, p := playerOf(t, c)

	p.Aim = dmath.Vec2{X: 1}
	p.ThrowForce = 1
	throwPenguin(g.Frame(), e) // index 2
	throwPenguin(g.Frame(), e) // index 1
	tickN(c, 1)
	checkSquad(t, c)

	lastThrown := p.Penguins[2]
	pe, _ := c.Entry(lastThrown)
	recoverPenguin(g.Frame(), e, pe)

	if p.NumPenguins != 2 || p.Penguins[1] != lastThrown {
		t.Errorf("recovered penguin should take slot 1, got %v", p.Penguins)
	}
	checkSquad(t, c)
}

func TestDrownedPenguinReturns(t *testing.T) {
	c, g := newRun(t, loadLevel(t, "level1.yaml"), nil)
	tickN(c, settle)
	e, p := playerOf(t, c)

	p.Aim = dmath.Vec2{X: 1}
	p.ThrowForce = 10
	throwPenguin(g.Frame(), e)
	pe, _ := c.Entry(p.Penguins[1])

	water := fixture(first(t, c, tags.Water), tags.KindWater, tags.PartBody, true, physics.Static)
	g.BeginContact(c, fixture(pe, tags.KindPenguin, tags.PartBody, false, physics.Dynamic), water)
	if !components.Penguin.Get(pe).Drowned {
		t.Fatalf("penguin in water should be flagged")
	}
	if c.Failed() {
		t.Errorf("a penguin in water should not fail the level")
	}

	tickN(c, 1)
	if p.NumPenguins != 2 {
		t.Errorf("NumPenguins = %d, expected drowned penguin back in the squad", p.NumPenguins)
	}
	checkSquad(t, c)
}
