// Package render is the boundary between the simulation and whatever draws
// it. The simulation resolves everything into commands; sinks only paint.
package render

import (
	"github.com/automoto/penguin-squad/assets"
	dmath "github.com/yohamta/donburi/features/math"
)

// Command draws one frame of a strip centered at Position (screen pixels, y down).
type Command struct {
	Strip    assets.Strip
	Frame    int
	Position dmath.Vec2
	Size     dmath.Vec2 // Pixels
	Rotation float64    // Radians, clockwise on screen
	Scale    dmath.Vec2
	FlipX    bool
}

// DebugShape is a closed outline in screen pixels.
type DebugShape struct {
	Points []dmath.Vec2
	Sensor bool
}

type OverlayKind uint8

const (
	OverlayNone OverlayKind = iota
	OverlayComplete
	OverlayFailed
)

// Overlay is the end-of-level banner plus the session counters.
type Overlay struct {
	Kind      OverlayKind
	Notes     int
	Required  int
	Penguins  int
	Total     int
	Countdown int
}

// Sink receives one frame of drawing.
type Sink interface {
	Begin()
	Draw(cmd Command)
	DrawDebug(shape DebugShape)
	DrawOverlay(o Overlay)
	End()
}

// Recorder is a Sink that keeps the last completed frame.
type Recorder struct {
	Commands []Command
	Debug    []DebugShape
	Overlay  Overlay
	Frames   int

	pending      []Command
	pendingDebug []DebugShape
	pendingOver  Overlay
}

func (r *Recorder) Begin() {
	r.pending = r.pending[:0]
	r.pendingDebug = r.pendingDebug[:0]
	r.pendingOver = Overlay{}
}

func (r *Recorder) Draw(cmd Command) {
	r.pending = append(r.pending, cmd)
}

func (r *Recorder) DrawDebug(shape DebugShape) {
	r.pendingDebug = append(r.pendingDebug, shape)
}

func (r *Recorder) DrawOverlay(o Overlay) {
	r.pendingOver = o
}

func (r *Recorder) End() {
	r.Commands = append(r.Commands[:0], r.pending...)
	r.Debug = append(r.Debug[:0], r.pendingDebug...)
	r.Overlay = r.pendingOver
	r.Frames++
}

// Discard drops everything.
type Discard struct{}

func (Discard) Begin()               {}
func (Discard) Draw(Command)         {}
func (Discard) DrawDebug(DebugShape) {}
func (Discard) DrawOverlay(Overlay)  {}
func (Discard) End()                 {}
