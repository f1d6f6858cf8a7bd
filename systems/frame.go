package systems

import (
	"github.com/automoto/penguin-squad/proximity"
	"github.com/automoto/penguin-squad/render"
	"github.com/automoto/penguin-squad/world"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FrameData carries the controller and per-tick state to the ordered
// systems (singleton component). Player is only set while the player body
// is active.
type FrameData struct {
	Controller *world.Controller
	Logger     *log.Logger
	Index      *proximity.Index
	Tracked    []donburi.Entity
	Player     *donburi.Entry
	Dt         float64
}

var Frame = donburi.NewComponentType[FrameData]()

// Canvas is the renderer argument for one draw pass.
type Canvas struct {
	Sink render.Sink
}

// GetFrame returns the singleton Frame component.
func GetFrame(e *ecs.ECS) *FrameData {
	return Frame.Get(Frame.MustFirst(e.World))
}
