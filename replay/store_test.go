package replay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/penguin-squad/input"
	dmath "github.com/yohamta/donburi/features/math"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs", "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := openStore(t)
	frames := []input.Snapshot{
		{Horizontal: 1},
		{Horizontal: -0.35, Jump: true},
		{Pointer: dmath.Vec2{X: 96.5, Y: 12}, Touching: true, TouchDown: true},
		{},
	}
	id, err := s.Save(Run{Level: "first_steps", Ticks: 4, Digest: "abc", Frames: frames})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	run, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if run.ID != id || run.Level != "first_steps" || run.Ticks != 4 || run.Digest != "abc" {
		t.Errorf("Load() = %+v", run)
	}
	if len(run.Frames) != len(frames) {
		t.Fatalf("len(Frames) = %d, expected %d", len(run.Frames), len(frames))
	}
	for i := range frames {
		if run.Frames[i] != frames[i] {
			t.Errorf("Frames[%d] = %+v, expected %+v", i, run.Frames[i], frames[i])
		}
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestLoadMissing(t *testing.T) {
	s := openStore(t)
	if _, err := s.Load(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(42) error = %v, expected ErrNotFound", err)
	}
	if err := s.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(42) error = %v, expected ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s := openStore(t)
	for _, level := range []string{"a", "b", "a"} {
		if _, err := s.Save(Run{Level: level, Digest: "d"}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		level    string
		limit    int
		expected []int64
	}{
		{"", 0, []int64{3, 2, 1}},
		{"a", 0, []int64{3, 1}},
		{"b", 0, []int64{2}},
		{"", 2, []int64{3, 2}},
		{"c", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			runs, err := s.List(tt.level, tt.limit)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(runs) != len(tt.expected) {
				t.Fatalf("List(%q, %d) returned %d runs, expected %d", tt.level, tt.limit, len(runs), len(tt.expected))
			}
			for i, run := range runs {
				if run.ID != tt.expected[i] {
					t.Errorf("List()[%d].ID = %d, expected %d", i, run.ID, tt.expected[i])
				}
				if run.Frames != nil {
					t.Errorf("List() should not load frames")
				}
			}
		})
	}
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	id, err := s.Save(Run{Level: "a", Digest: "d"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Load(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after Delete() error = %v, expected ErrNotFound", err)
	}
}
