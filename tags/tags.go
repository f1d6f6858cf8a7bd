package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Penguin     = donburi.NewTag().SetName("Penguin")
	Monster     = donburi.NewTag().SetName("Monster")
	Note        = donburi.NewTag().SetName("Note")
	Water       = donburi.NewTag().SetName("Water")
	Ice         = donburi.NewTag().SetName("Ice")
	Terrain     = donburi.NewTag().SetName("Terrain")
	FloatingIce = donburi.NewTag().SetName("FloatingIce")
	MovingIce   = donburi.NewTag().SetName("MovingIce")
	Icicle      = donburi.NewTag().SetName("Icicle")
	Exit        = donburi.NewTag().SetName("Exit")
)

// Resolv tags for proximity queries
const (
	ResolvPlayer  = "Player"
	ResolvPenguin = "Penguin"
	ResolvMonster = "Monster"
	ResolvIcicle  = "Icicle"
	ResolvQuery   = "query"
)

// Kind identifies what an entity is. It is stamped on every fixture so
// contact handling can dispatch without inspecting components.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindPenguin
	KindMonster
	KindNote
	KindWater
	KindIce
	KindTerrain
	KindFloatingIce
	KindMovingIce
	KindIcicle
	KindExit
)

var kindNames = [...]string{
	KindNone:        "none",
	KindPlayer:      "player",
	KindPenguin:     "penguin",
	KindMonster:     "monster",
	KindNote:        "note",
	KindWater:       "water",
	KindIce:         "ice",
	KindTerrain:     "terrain",
	KindFloatingIce: "floating_ice",
	KindMovingIce:   "moving_ice",
	KindIcicle:      "icicle",
	KindExit:        "exit",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Part identifies which fixture of an entity took part in a contact.
type Part uint8

const (
	PartBody Part = iota
	PartFoot
	PartPin
)

func (p Part) String() string {
	switch p {
	case PartFoot:
		return "foot"
	case PartPin:
		return "pin"
	default:
		return "body"
	}
}
