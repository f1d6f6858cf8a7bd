package scenes

import (
	"github.com/automoto/penguin-squad/input"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// Poller reads keyboard, gamepad, mouse and touch state once per tick and
// turns it into snapshots.
type Poller struct {
	tracker  *input.Tracker
	gamepads []ebiten.GamepadID
	touches  []ebiten.TouchID
	held     [ActionCount]bool
}

func NewPoller() *Poller {
	return &Poller{tracker: input.NewTracker(Input.AnalogDeadzone)}
}

func (p *Poller) Read() input.Snapshot {
	return p.tracker.Next(p.poll())
}

func (p *Poller) poll() input.Raw {
	p.held = [ActionCount]bool{}
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				p.held[actionID] = true
			}
		}
		for _, gpID := range p.gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.held[actionID] = true
				}
			}
		}
	}

	raw := input.Raw{
		Left:     p.held[ActionMoveLeft],
		Right:    p.held[ActionMoveRight],
		Up:       p.held[ActionMoveUp],
		Down:     p.held[ActionMoveDown],
		Jump:     p.held[ActionJump],
		Punch:    p.held[ActionPunch],
		Primary:  p.held[ActionThrow],
		Interact: p.held[ActionInteract],
		Debug:    p.held[ActionDebug],
		Exit:     p.held[ActionExit],
		Reset:    p.held[ActionReset],
		Advance:  p.held[ActionAdvance],
		Retreat:  p.held[ActionRetreat],
	}
	raw.AxisX, raw.AxisY = p.stick()

	// The throw button aims at the cursor like a held mouse button.
	x, y := ebiten.CursorPosition()
	raw.Pointer = dmath.Vec2{X: float64(x), Y: float64(y)}
	raw.Touching = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || p.held[ActionThrow]

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		tx, ty := ebiten.TouchPosition(p.touches[0])
		raw.Pointer = dmath.Vec2{X: float64(tx), Y: float64(ty)}
		raw.Touching = true
	}
	return raw
}

// stick returns the first left stick outside the deadzone, y up.
func (p *Poller) stick() (x, y float64) {
	deadzone := Input.AnalogDeadzone
	for _, gpID := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone || v < -deadzone || v > deadzone {
			return h, -v
		}
	}
	return 0, 0
}
