package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/input"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/systems"
	"github.com/automoto/penguin-squad/world"
	"github.com/charmbracelet/log"
)

var ErrMismatch = errors.New("digest mismatch")

// Result summarises one headless run.
type Result struct {
	Level    string
	Ticks    int // Completed ticks
	Digest   string
	Exited   bool
	Exit     world.ExitCode
	Complete bool
	Notes    int
	Penguins int
}

// Simulate plays frames against lvl without a window, one frame per tick.
// The run stops early when the level asks to exit.
func Simulate(lvl *leveldata.Level, frames []input.Snapshot, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	res := Result{Level: lvl.Name}
	c, err := world.New(world.Options{
		Level:    lvl,
		Input:    input.NewScript(frames),
		Gameplay: systems.NewGame(logger.WithPrefix("systems")),
		Logger:   logger.WithPrefix("world"),
		Listener: world.ListenerFunc(func(code world.ExitCode) {
			res.Exited = true
			res.Exit = code
		}),
	})
	if err != nil {
		return Result{}, fmt.Errorf("replay: simulate %s: %w", lvl.Name, err)
	}

	digest := NewDigest()
	for i := 0; i < len(frames) && !res.Exited; i++ {
		if !c.Tick(config.World.Step) {
			break
		}
		digest.Add(Trajectory(c))
	}

	res.Ticks = digest.Ticks()
	res.Digest = digest.Sum()
	res.Complete = c.Complete() || (res.Exited && res.Exit == world.ExitNext)
	if e, ok := components.Session.First(c.World()); ok {
		res.Notes = components.Session.Get(e).NotesCollected
	}
	if e, ok := components.Player.First(c.World()); ok {
		res.Penguins = components.Player.Get(e).NumPenguins
	}
	logger.Debug("simulated", "level", lvl.Name, "ticks", res.Ticks, "exit", res.Exit, "exited", res.Exited)
	return res, nil
}

// Trajectory lists the kinematics of every active body in object order.
func Trajectory(c *world.Controller) []physics.Kinematics {
	var out []physics.Kinematics
	for _, h := range c.Objects() {
		e, ok := c.Entry(h)
		if !ok {
			continue
		}
		for _, b := range components.Body.Get(e).Bodies {
			out = append(out, b.Kinematics())
		}
	}
	return out
}

// Verify re-simulates run against lvl and checks the digest and tick count.
func Verify(lvl *leveldata.Level, run Run, logger *log.Logger) (Result, error) {
	res, err := Simulate(lvl, run.Frames, logger)
	if err != nil {
		return res, err
	}
	if res.Ticks != run.Ticks || res.Digest != run.Digest {
		return res, fmt.Errorf("replay: run %d on %s: %w: %d ticks %.12s, recorded %d ticks %.12s",
			run.ID, lvl.Name, ErrMismatch, res.Ticks, res.Digest, run.Ticks, run.Digest)
	}
	return res, nil
}
