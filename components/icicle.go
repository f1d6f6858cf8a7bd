package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type IcicleState uint8

const (
	IcicleHanging IcicleState = iota
	IcicleFalling
	IcicleLanded
)

type IcicleData struct {
	Anchor dmath.Vec2 // Where a replacement grows after this one lands
	State  IcicleState
}

var Icicle = donburi.NewComponentType[IcicleData]()
