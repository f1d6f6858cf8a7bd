package components

import (
	"github.com/automoto/penguin-squad/assets"
	"github.com/automoto/penguin-squad/assets/animations"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type SpriteData struct {
	Strip     assets.Strip
	Animation *animations.Animation
	Size      dmath.Vec2 // World units
	FlipX     bool
	Spin      float64 // Added to the body angle when drawing
	Hidden    bool
}

// SetStrip switches strips and restarts the animation. Setting the strip
// already playing does nothing.
func (s *SpriteData) SetStrip(strip assets.Strip, interval float64) {
	if s.Animation != nil && s.Strip.Key == strip.Key {
		return
	}
	s.Strip = strip
	s.Animation = strip.Animation(interval)
}

func (s *SpriteData) Frame() int {
	if s.Animation == nil {
		return 0
	}
	return s.Animation.Frame()
}

var Sprite = donburi.NewComponentType[SpriteData]()
