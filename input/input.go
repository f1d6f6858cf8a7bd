// Package input defines the per-tick input snapshot consumed by the
// simulation and the readers that produce it.
package input

import dmath "github.com/yohamta/donburi/features/math"

// Snapshot is one tick of debounced input. Boolean actions are edges: true
// only on the tick the button went down. Touching is a level.
type Snapshot struct {
	Horizontal float64 // -1 left .. 1 right
	Vertical   float64 // -1 down .. 1 up

	Jump     bool
	Debug    bool
	Exit     bool
	Punch    bool
	Primary  bool
	Interact bool
	Reset    bool
	Advance  bool
	Retreat  bool

	Pointer   dmath.Vec2 // Screen pixels, y down
	TouchDown bool
	TouchUp   bool
	Touching  bool
}

// Reader produces one snapshot per tick.
type Reader interface {
	Read() Snapshot
}

// Raw is the held state of every control as polled from a device.
type Raw struct {
	Left, Right, Up, Down bool
	AxisX, AxisY          float64 // Analog stick, used when no key is held

	Jump     bool
	Debug    bool
	Exit     bool
	Punch    bool
	Primary  bool
	Interact bool
	Reset    bool
	Advance  bool
	Retreat  bool

	Pointer  dmath.Vec2
	Touching bool
}

// Tracker turns successive Raw polls into edge-triggered snapshots by
// comparing against the previous poll.
type Tracker struct {
	prev     Raw
	deadzone float64
}

func NewTracker(deadzone float64) *Tracker {
	return &Tracker{deadzone: deadzone}
}

func (t *Tracker) Next(raw Raw) Snapshot {
	s := Snapshot{
		Horizontal: axis(raw.Left, raw.Right, raw.AxisX, t.deadzone),
		Vertical:   axis(raw.Down, raw.Up, raw.AxisY, t.deadzone),

		Jump:     raw.Jump && !t.prev.Jump,
		Debug:    raw.Debug && !t.prev.Debug,
		Exit:     raw.Exit && !t.prev.Exit,
		Punch:    raw.Punch && !t.prev.Punch,
		Primary:  raw.Primary && !t.prev.Primary,
		Interact: raw.Interact && !t.prev.Interact,
		Reset:    raw.Reset && !t.prev.Reset,
		Advance:  raw.Advance && !t.prev.Advance,
		Retreat:  raw.Retreat && !t.prev.Retreat,

		Pointer:   raw.Pointer,
		TouchDown: raw.Touching && !t.prev.Touching,
		TouchUp:   !raw.Touching && t.prev.Touching,
		Touching:  raw.Touching,
	}
	t.prev = raw
	return s
}

func axis(neg, pos bool, analog, deadzone float64) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	case neg && pos:
		return 0
	}
	if analog > -deadzone && analog < deadzone {
		return 0
	}
	return analog
}

// Idle is a reader that never reports input.
type Idle struct{}

func (Idle) Read() Snapshot { return Snapshot{} }
