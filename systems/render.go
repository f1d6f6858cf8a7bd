package systems

import (
	"github.com/automoto/penguin-squad/components"
	"github.com/automoto/penguin-squad/render"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawObjects emits one command per active object, in insertion order, for
// the entity's root body. Box2d angles are counter-clockwise in a y-up
// world; the sink expects clockwise on screen.
func DrawObjects(e *ecs.ECS, cv *Canvas) {
	c := GetFrame(e).Controller
	for _, h := range c.Objects() {
		entry, ok := c.Entry(h)
		if !ok {
			continue
		}
		sprite := components.Sprite.Get(entry)
		body := components.Body.Get(entry)
		root := body.Root()
		if sprite.Hidden || root == nil {
			continue
		}
		cv.Sink.Draw(render.Command{
			Strip:    sprite.Strip,
			Frame:    sprite.Frame(),
			Position: c.WorldToScreen(root.Position()),
			Size:     dmath.Vec2{X: sprite.Size.X * body.DrawScale.X, Y: sprite.Size.Y * body.DrawScale.Y},
			Rotation: -root.Angle() + sprite.Spin,
			Scale:    dmath.Vec2{X: 1, Y: 1},
			FlipX:    sprite.FlipX,
		})
	}
}
