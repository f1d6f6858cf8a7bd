package main

import (
	"os"

	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/leveldata"
	"github.com/automoto/penguin-squad/progress"
	"github.com/automoto/penguin-squad/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.Display.Width, cfg.Display.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "penguins",
		ReportTimestamp: true,
		Level:           cfg.Debug.LogLevel,
	})

	levels := leveldata.Embedded()
	files, err := leveldata.Catalog(levels)
	if err != nil {
		logger.Fatal("no levels", "err", err)
	}

	// Progress is optional; the game still runs without a data directory.
	store, err := progress.Open("penguin-squad", logger.WithPrefix("progress"))
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
	}
	start := 0
	if store != nil {
		if saved, err := store.Load(); err == nil {
			start = saved.Unlocked
		}
	}

	g := &Game{}
	scene, err := scenes.NewLevelScene(g, scenes.LevelOptions{
		Levels: levels,
		Files:  files,
		Start:  start,
		Store:  store,
		Logger: logger.WithPrefix("scenes"),
	})
	if err != nil {
		logger.Fatal("could not start", "err", err)
	}
	g.scene = scene

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
