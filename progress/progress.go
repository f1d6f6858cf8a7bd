// Package progress tracks which levels the player has unlocked and walks
// the level list in response to exit codes.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/automoto/penguin-squad/world"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const itemKey = "progress"

// Progress is the saved state. Unlocked is the highest level index that
// may be started.
type Progress struct {
	Unlocked  int            `json:"unlocked"`
	BestNotes map[string]int `json:"bestNotes"`
}

// Complete records a finished level and unlocks the one after it. It
// reports whether anything changed.
func (p *Progress) Complete(index int, level string, notes int) bool {
	changed := false
	if index+1 > p.Unlocked {
		p.Unlocked = index + 1
		changed = true
	}
	if p.BestNotes == nil {
		p.BestNotes = make(map[string]int)
	}
	if best, ok := p.BestNotes[level]; !ok || notes > best {
		p.BestNotes[level] = notes
		changed = true
	}
	return changed
}

func (p *Progress) Best(level string) int {
	return p.BestNotes[level]
}

// Store persists progress in the per-user data directory.
type Store struct {
	m      *gdata.Manager
	logger *log.Logger
}

func Open(app string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("progress: open %s: %w", app, err)
	}
	return &Store{m: m, logger: logger}, nil
}

// Load returns the saved progress, or a fresh one when nothing is saved yet.
func (s *Store) Load() (*Progress, error) {
	data, err := s.m.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("progress: load: %w", err)
	}
	if data == nil {
		return &Progress{}, nil
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("progress: decode: %w", err)
	}
	return &p, nil
}

func (s *Store) Save(p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("progress: encode: %w", err)
	}
	if err := s.m.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	s.logger.Debug("progress saved", "unlocked", p.Unlocked)
	return nil
}

var ErrNoLevels = errors.New("no levels")

// Sequence is a position in an ordered level list.
type Sequence struct {
	files []string
	index int
}

// NewSequence starts at index, clamped into the list.
func NewSequence(files []string, index int) (*Sequence, error) {
	if len(files) == 0 {
		return nil, ErrNoLevels
	}
	s := &Sequence{files: append([]string(nil), files...)}
	s.index = s.clamp(index)
	return s, nil
}

func (s *Sequence) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(s.files) {
		return len(s.files) - 1
	}
	return i
}

func (s *Sequence) Current() string { return s.files[s.index] }
func (s *Sequence) Index() int      { return s.index }
func (s *Sequence) Len() int        { return len(s.files) }

// Apply moves according to code. It reports false when the run is over:
// on quit, or on next from the last level. Prev on the first level stays put.
func (s *Sequence) Apply(code world.ExitCode) bool {
	switch code {
	case world.ExitNext:
		if s.index+1 >= len(s.files) {
			return false
		}
		s.index++
		return true
	case world.ExitPrev:
		s.index = s.clamp(s.index - 1)
		return true
	default:
		return false
	}
}
