package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/penguin-squad/config"
	"github.com/automoto/penguin-squad/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ScreenSink paints render commands onto an ebiten image. Strips are drawn
// as tinted quads; odd frames are shaded slightly darker so animation is
// visible without textures.
type ScreenSink struct {
	target *ebiten.Image
	pixel  *ebiten.Image
	face   font.Face
}

func NewScreenSink() *ScreenSink {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &ScreenSink{pixel: pixel, face: basicfont.Face7x13}
}

// SetTarget must be called before each frame is drawn.
func (s *ScreenSink) SetTarget(screen *ebiten.Image) {
	s.target = screen
}

func (s *ScreenSink) Begin() {
	s.target.Fill(cfg.Display.Background)
}

func (s *ScreenSink) Draw(cmd render.Command) {
	sx, sy := cmd.Size.X*cmd.Scale.X, cmd.Size.Y*cmd.Scale.Y
	if cmd.FlipX {
		sx = -sx
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(cmd.Rotation)
	op.GeoM.Translate(cmd.Position.X, cmd.Position.Y)
	op.ColorScale.ScaleWithColor(cmd.Strip.Tint)
	if cmd.Frame%2 == 1 {
		op.ColorScale.Scale(0.85, 0.85, 0.85, 1)
	}
	s.target.DrawImage(s.pixel, op)
}

func (s *ScreenSink) DrawDebug(shape render.DebugShape) {
	clr := cfg.Display.DebugColor
	if shape.Sensor {
		clr = cfg.Display.SensorColor
	}
	n := len(shape.Points)
	for i := 0; i < n; i++ {
		a, b := shape.Points[i], shape.Points[(i+1)%n]
		vector.StrokeLine(s.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
	}
}

func (s *ScreenSink) DrawOverlay(o render.Overlay) {
	width := float64(s.target.Bounds().Dx())
	height := float64(s.target.Bounds().Dy())

	hud := fmt.Sprintf("NOTES %d/%d   PENGUINS %d/%d", o.Notes, o.Required, o.Penguins, o.Total)
	text.Draw(s.target, hud, s.face, 12, 20, cfg.Display.TextColor)

	var banner string
	switch o.Kind {
	case render.OverlayComplete:
		banner = cfg.Display.CompleteText
	case render.OverlayFailed:
		banner = cfg.Display.FailedText
	default:
		return
	}
	vector.DrawFilledRect(s.target, 0, 0, float32(width), float32(height), cfg.Display.OverlayColor, false)
	text.Draw(s.target, banner, s.face, centerTextX(banner, s.face, width), int(height/2), cfg.Display.TextColor)
}

func (s *ScreenSink) End() {}

// centerTextX calculates the X position to center text on screen
func centerTextX(str string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, str)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
