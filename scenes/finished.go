package scenes

import (
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FinishedScene is shown after the last level. Exit closes the game.
type FinishedScene struct {
	reader input.Reader
	face   font.Face
}

func NewFinishedScene(reader input.Reader) *FinishedScene {
	return &FinishedScene{reader: reader, face: basicfont.Face7x13}
}

func (fs *FinishedScene) Update() error {
	if fs.reader.Read().Exit {
		return ebiten.Termination
	}
	return nil
}

func (fs *FinishedScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Display.Background)
	msg := cfg.Display.FinishedText
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	text.Draw(screen, msg, fs.face, centerTextX(msg, fs.face, width), int(height/2), cfg.Display.TextColor)
}
