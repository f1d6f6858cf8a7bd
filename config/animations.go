package config

import "image/color"

// StripDef describes one animation strip: how many frames it has and how
// the host should paint it when no sprite sheet is present.
type StripDef struct {
	Frames int
	Loop   bool       // Wrap back to the first frame instead of freezing
	Tint   color.RGBA // Fill used by the placeholder renderer
}

// Strip keys
const (
	StripPlayerWalk    = "player_walk"
	StripPlayerRise    = "player_rise"
	StripPlayerHang    = "player_hang"
	StripPlayerLand    = "player_land"
	StripPlayerThrow   = "player_throw"
	StripPenguinWalk   = "penguin_walk"
	StripPenguinRoll   = "penguin_roll"
	StripPenguinRest   = "penguin_rest"
	StripMonsterPatrol = "monster_patrol"
	StripMonsterAlert  = "monster_alert"
	StripNote          = "note"
	StripNoteTaken     = "note_taken"
	StripWater         = "water"
	StripIce           = "ice"
	StripTerrain       = "terrain"
	StripFloatingIce   = "floating_ice"
	StripMovingIce     = "moving_ice"
	StripIcicle        = "icicle"
	StripExit          = "exit"
)

// Strips maps a strip key to its definition.
var Strips = map[string]StripDef{
	StripPlayerWalk:    {Frames: 8, Loop: true, Tint: color.RGBA{R: 40, G: 90, B: 200, A: 255}},
	StripPlayerRise:    {Frames: 4, Loop: false, Tint: color.RGBA{R: 60, G: 110, B: 220, A: 255}},
	StripPlayerHang:    {Frames: 1, Loop: true, Tint: color.RGBA{R: 60, G: 110, B: 220, A: 255}},
	StripPlayerLand:    {Frames: 3, Loop: false, Tint: color.RGBA{R: 30, G: 70, B: 180, A: 255}},
	StripPlayerThrow:   {Frames: 5, Loop: false, Tint: color.RGBA{R: 90, G: 60, B: 200, A: 255}},
	StripPenguinWalk:   {Frames: 6, Loop: true, Tint: color.RGBA{R: 20, G: 20, B: 30, A: 255}},
	StripPenguinRoll:   {Frames: 1, Loop: true, Tint: color.RGBA{R: 50, G: 50, B: 60, A: 255}},
	StripPenguinRest:   {Frames: 1, Loop: true, Tint: color.RGBA{R: 80, G: 80, B: 90, A: 255}},
	StripMonsterPatrol: {Frames: 6, Loop: true, Tint: color.RGBA{R: 120, G: 90, B: 70, A: 255}},
	StripMonsterAlert:  {Frames: 2, Loop: true, Tint: color.RGBA{R: 200, G: 60, B: 40, A: 255}},
	StripNote:          {Frames: 4, Loop: true, Tint: color.RGBA{R: 250, G: 210, B: 40, A: 255}},
	StripNoteTaken:     {Frames: 1, Loop: true, Tint: color.RGBA{R: 250, G: 210, B: 40, A: 60}},
	StripWater:         {Frames: 1, Loop: true, Tint: color.RGBA{R: 30, G: 120, B: 220, A: 200}},
	StripIce:           {Frames: 1, Loop: true, Tint: color.RGBA{R: 190, G: 230, B: 250, A: 255}},
	StripTerrain:       {Frames: 1, Loop: true, Tint: color.RGBA{R: 235, G: 240, B: 245, A: 255}},
	StripFloatingIce:   {Frames: 1, Loop: true, Tint: color.RGBA{R: 170, G: 215, B: 245, A: 255}},
	StripMovingIce:     {Frames: 1, Loop: true, Tint: color.RGBA{R: 150, G: 200, B: 240, A: 255}},
	StripIcicle:        {Frames: 1, Loop: true, Tint: color.RGBA{R: 210, G: 245, B: 255, A: 255}},
	StripExit:          {Frames: 1, Loop: true, Tint: color.RGBA{R: 60, G: 200, B: 90, A: 160}},
}
