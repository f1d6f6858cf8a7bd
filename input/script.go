package input

import (
	"errors"
	"fmt"
	"io"

	dmath "github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

// Script replays a fixed snapshot sequence, then reports no input.
type Script struct {
	frames []Snapshot
	pos    int
}

func NewScript(frames []Snapshot) *Script {
	fs := make([]Snapshot, len(frames))
	copy(fs, frames)
	return &Script{frames: fs}
}

func (s *Script) Read() Snapshot {
	if s.pos >= len(s.frames) {
		return Snapshot{}
	}
	f := s.frames[s.pos]
	s.pos++
	return f
}

func (s *Script) Len() int { return len(s.frames) }

// Done reports whether every frame has been read.
func (s *Script) Done() bool { return s.pos >= len(s.frames) }

func (s *Script) Rewind() { s.pos = 0 }

// Frames returns a copy of the whole sequence.
func (s *Script) Frames() []Snapshot {
	fs := make([]Snapshot, len(s.frames))
	copy(fs, s.frames)
	return fs
}

// Recorder passes snapshots through from another reader and keeps them.
type Recorder struct {
	src    Reader
	frames []Snapshot
}

func NewRecorder(src Reader) *Recorder {
	return &Recorder{src: src}
}

func (r *Recorder) Read() Snapshot {
	s := r.src.Read()
	r.frames = append(r.frames, s)
	return s
}

func (r *Recorder) Frames() []Snapshot {
	fs := make([]Snapshot, len(r.frames))
	copy(fs, r.frames)
	return fs
}

// Segment is one step of a YAML input script: the listed controls are held
// for Ticks ticks.
type Segment struct {
	Ticks    int       `yaml:"ticks"`
	Left     bool      `yaml:"left"`
	Right    bool      `yaml:"right"`
	Up       bool      `yaml:"up"`
	Down     bool      `yaml:"down"`
	Jump     bool      `yaml:"jump"`
	Punch    bool      `yaml:"punch"`
	Primary  bool      `yaml:"primary"`
	Interact bool      `yaml:"interact"`
	Debug    bool      `yaml:"debug"`
	Exit     bool      `yaml:"exit"`
	Reset    bool      `yaml:"reset"`
	Advance  bool      `yaml:"advance"`
	Retreat  bool      `yaml:"retreat"`
	Touch    []float64 `yaml:"touch"` // Screen x, y held down
}

var ErrBadSegment = errors.New("bad input segment")

// LoadScript decodes a YAML list of segments and expands it into snapshots.
func LoadScript(r io.Reader) (*Script, error) {
	var segs []Segment
	if err := yaml.NewDecoder(r).Decode(&segs); err != nil {
		if errors.Is(err, io.EOF) {
			return NewScript(nil), nil
		}
		return nil, fmt.Errorf("input: decode script: %w", err)
	}
	frames, err := Expand(segs)
	if err != nil {
		return nil, err
	}
	return NewScript(frames), nil
}

// Expand converts held segments into edge-triggered snapshots.
func Expand(segs []Segment) ([]Snapshot, error) {
	tr := NewTracker(0)
	var frames []Snapshot
	for i, seg := range segs {
		if seg.Ticks <= 0 {
			return nil, fmt.Errorf("input: segment %d: %w: ticks must be positive", i, ErrBadSegment)
		}
		if len(seg.Touch) != 0 && len(seg.Touch) != 2 {
			return nil, fmt.Errorf("input: segment %d: %w: touch needs x and y", i, ErrBadSegment)
		}
		raw := seg.raw()
		for n := 0; n < seg.Ticks; n++ {
			frames = append(frames, tr.Next(raw))
		}
	}
	return frames, nil
}

func (seg Segment) raw() Raw {
	raw := Raw{
		Left:     seg.Left,
		Right:    seg.Right,
		Up:       seg.Up,
		Down:     seg.Down,
		Jump:     seg.Jump,
		Punch:    seg.Punch,
		Primary:  seg.Primary,
		Interact: seg.Interact,
		Debug:    seg.Debug,
		Exit:     seg.Exit,
		Reset:    seg.Reset,
		Advance:  seg.Advance,
		Retreat:  seg.Retreat,
	}
	if len(seg.Touch) == 2 {
		raw.Touching = true
		raw.Pointer = dmath.Vec2{X: seg.Touch[0], Y: seg.Touch[1]}
	}
	return raw
}
