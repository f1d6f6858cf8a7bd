package components

import (
	"github.com/automoto/penguin-squad/physics"
	"github.com/automoto/penguin-squad/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodyData is the physics-backed part of an entity. Parts are descriptions;
// Bodies holds the live bodies while the entity is active, one per part.
type BodyData struct {
	Kind      tags.Kind
	Parts     []physics.Def
	Joint     *physics.RevoluteDef // Only for compound obstacles
	Bodies    []*physics.Body
	Link      *physics.Joint
	DrawScale dmath.Vec2
	Active    bool
	Removed   bool // Flagged for removal after the next step
}

// Root is the first part's live body, or nil while inactive.
func (b *BodyData) Root() *physics.Body {
	if len(b.Bodies) == 0 {
		return nil
	}
	return b.Bodies[0]
}

// Position is the root body's position, or the placement before activation.
func (b *BodyData) Position() dmath.Vec2 {
	if root := b.Root(); root != nil {
		return root.Position()
	}
	if len(b.Parts) == 0 {
		return dmath.Vec2{}
	}
	return b.Parts[0].Position
}

func (b *BodyData) Velocity() dmath.Vec2 {
	if root := b.Root(); root != nil {
		return root.Velocity()
	}
	return dmath.Vec2{}
}

var Body = donburi.NewComponentType[BodyData]()
