package animations

// Animation walks a strip of frames on a time accumulator: one frame every
// Interval seconds of simulated time.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	Interval         float64 // seconds per frame
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances by dt and reports whether the strip wrapped (or reached
// its end when frozen) during this call.
func (a *Animation) Update(dt float64) bool {
	if a.Interval <= 0 {
		return false
	}
	wrapped := false
	a.elapsed += dt
	for a.elapsed >= a.Interval {
		a.elapsed -= a.Interval
		if a.FreezeOnComplete && a.Looped {
			continue
		}
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			wrapped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
			} else {
				// loop back to the beginning
				a.frame = a.First
			}
		}
	}
	return wrapped
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, interval float64) *Animation {
	return &Animation{
		First:    first,
		Last:     last,
		Step:     step,
		Interval: interval,
		frame:    first,
	}
}
