package scenes

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/automoto/penguin-squad/assets"
	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/progress"
	"github.com/automoto/penguin-squad/systems"
	"github.com/automoto/penguin-squad/world"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type LevelOptions struct {
	Levels fs.FS
	Files  []string
	Start  int
	Store  *progress.Store // Optional
	Logger *log.Logger
}

// LevelScene plays the level sequence one controller at a time.
type LevelScene struct {
	changer SceneChanger
	levels  fs.FS
	seq     *progress.Sequence
	store   *progress.Store
	saved   *progress.Progress
	bundle  *assets.Bundle
	poller  *Poller
	sink    *ScreenSink
	logger  *log.Logger

	ctrl    *world.Controller
	exit    world.ExitCode
	exiting bool
}

func NewLevelScene(sc SceneChanger, opts LevelOptions) (*LevelScene, error) {
	seq, err := progress.NewSequence(opts.Files, opts.Start)
	if err != nil {
		return nil, fmt.Errorf("scenes: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	ls := &LevelScene{
		changer: sc,
		levels:  opts.Levels,
		seq:     seq,
		store:   opts.Store,
		saved:   &progress.Progress{},
		bundle:  assets.MustLoad(),
		poller:  NewPoller(),
		sink:    NewScreenSink(),
		logger:  opts.Logger,
	}
	if ls.store != nil {
		if saved, err := ls.store.Load(); err != nil {
			ls.logger.Warn("could not load progress", "err", err)
		} else {
			ls.saved = saved
		}
	}
	if err := ls.load(); err != nil {
		return nil, err
	}
	return ls, nil
}

func (ls *LevelScene) load() error {
	file := ls.seq.Current()
	lvl, err := leveldata.Load(ls.levels, file)
	if err != nil {
		return fmt.Errorf("scenes: %w", err)
	}
	ctrl, err := world.New(world.Options{
		Level:    lvl,
		Bundle:   ls.bundle,
		Input:    ls.poller,
		Listener: world.ListenerFunc(ls.onExit),
		Gameplay: systems.NewGame(ls.logger.WithPrefix("systems")),
		Logger:   ls.logger.WithPrefix("world"),
	})
	if err != nil {
		return fmt.Errorf("scenes: %w", err)
	}
	ls.ctrl = ctrl
	ls.exiting = false
	ls.logger.Info("level started", "level", lvl.Name, "index", ls.seq.Index(), "best", ls.saved.Best(lvl.Name))
	return nil
}

func (ls *LevelScene) onExit(code world.ExitCode) {
	ls.exit = code
	ls.exiting = true
}

func (ls *LevelScene) Update() error {
	ls.ctrl.Tick(cfg.World.Step)
	if !ls.exiting {
		return nil
	}

	code := ls.exit
	if code == world.ExitNext && ls.ctrl.Complete() {
		ls.record()
	}
	ls.ctrl.Deactivate()
	if !ls.seq.Apply(code) {
		if code == world.ExitNext {
			ls.changer.ChangeScene(NewFinishedScene(ls.poller))
			return nil
		}
		return ebiten.Termination
	}
	return ls.load()
}

func (ls *LevelScene) record() {
	notes := 0
	if e, ok := components.Session.First(ls.ctrl.World()); ok {
		notes = components.Session.Get(e).NotesCollected
	}
	if !ls.saved.Complete(ls.seq.Index(), ls.ctrl.Level().Name, notes) || ls.store == nil {
		return
	}
	if err := ls.store.Save(ls.saved); err != nil {
		ls.logger.Warn("could not save progress", "err", err)
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	ls.sink.SetTarget(screen)
	ls.ctrl.Draw(ls.sink)
}
