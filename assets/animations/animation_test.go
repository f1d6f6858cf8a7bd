package animations

import "testing"

func TestUpdateAdvancesOnInterval(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0.1)
	dt := 1.0 / 60.0

	ticks := 0
	for a.Frame() == 0 {
		a.Update(dt)
		ticks++
		if ticks > 100 {
			t.Fatal("animation never advanced")
		}
	}
	// 0.1s at 60Hz is six ticks, allow float rounding to push it to seven.
	if ticks < 6 || ticks > 7 {
		t.Errorf("advanced after %d ticks, expected 6 or 7", ticks)
	}
}

func TestUpdateReportsWrap(t *testing.T) {
	tests := []struct {
		name   string
		freeze bool
		frame  int
	}{
		{"loop", false, 0},
		{"freeze", true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimation(0, 3, 1, 1)
			a.FreezeOnComplete = tt.freeze
			for i := 0; i < 3; i++ {
				if a.Update(1) {
					t.Fatalf("step %d wrapped early", i)
				}
			}
			if !a.Update(1) {
				t.Fatal("expected wrap on the fourth step")
			}
			if a.Frame() != tt.frame || !a.Looped {
				t.Errorf("Frame() = %d Looped = %v, expected %d true", a.Frame(), a.Looped, tt.frame)
			}
			if tt.freeze && a.Update(1) {
				t.Error("frozen animation wrapped again")
			}
		})
	}
}

func TestRestart(t *testing.T) {
	a := NewAnimation(2, 5, 1, 1)
	a.Update(3.5)
	a.Restart()
	if a.Frame() != 2 || a.Looped {
		t.Errorf("Restart() left frame %d looped %v", a.Frame(), a.Looped)
	}
}

func TestZeroIntervalNeverMoves(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0)
	if a.Update(10) || a.Frame() != 0 {
		t.Error("zero interval animation should hold its first frame")
	}
}
