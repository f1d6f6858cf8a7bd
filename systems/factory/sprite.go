package factory

import (
	"github.com/automoto/penguin-squad/assets"
	"github.com/automoto/penguin-squad/components"
	cfg "github.com/automoto/penguin-squad/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func setSprite(e *donburi.Entry, bundle *assets.Bundle, key string, width, height float64) {
	sprite := components.SpriteData{
		Size:  dmath.Vec2{X: width, Y: height},
		FlipX: false,
	}
	sprite.SetStrip(bundle.MustStrip(key), cfg.Animation.Interval)
	components.Sprite.SetValue(e, sprite)
}
