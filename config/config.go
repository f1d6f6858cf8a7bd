package config

import (
	"image/color"

	"github.com/charmbracelet/log"
)

// WorldConfig contains the simulation loop and world-space settings
type WorldConfig struct {
	Gravity            float64 // Units/s^2, negative is down
	Step               float64 // Fixed physics timestep in seconds
	VelocityIterations int
	PositionIterations int
	ExitCount          int     // Frames between win/loss and the level transition
	Width              float64 // Default world width in units when a level omits bounds
	Height             float64
	FallMargin         float64 // Units below the world bottom before the player is lost
}

// DisplayConfig contains the canvas size used to derive the draw scale
type DisplayConfig struct {
	Width  int
	Height int
	Title  string

	// Colors
	Background   color.RGBA
	DebugColor   color.RGBA
	SensorColor  color.RGBA
	TextColor    color.RGBA
	OverlayColor color.RGBA // Dims the scene behind end-of-level banners
	CompleteText string
	FailedText   string
	FinishedText string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Body
	Width    float64
	Height   float64
	Density  float64
	Friction float64

	// Movement
	Force       float64 // Horizontal force per unit of axis input
	Damping     float64 // Opposing force factor when there is no input
	MaxSpeed    float64
	JumpImpulse float64

	// Cooldowns (frames)
	JumpCooldown  int
	ThrowCooldown int
	PunchCooldown int

	// Throwing
	ThrowIncrement   float64 // Force gained per tick while charging
	MaxThrowingForce float64

	// Foot sensor
	SensorWidthFactor float64 // Fraction of the body width
	SensorHeight      float64
}

// PenguinConfig contains companion configuration
type PenguinConfig struct {
	Width       float64
	Height      float64
	Density     float64
	Friction    float64
	Restitution float64
	Spacing     float64 // Horizontal gap between carried penguins
	Lift        float64 // Vertical offset of carried penguins relative to the player center
	SpinRate    float64 // Radians per second while rolling
}

// MonsterConfig contains sealion hazard configuration
type MonsterConfig struct {
	Width        float64
	Height       float64
	Density      float64
	Friction     float64
	PatrolForce  float64
	MaxSpeed     float64
	PatrolRange  float64 // Default half-width of the patrol span
}

// NoteConfig contains collectible configuration
type NoteConfig struct {
	Size float64
}

// IceConfig contains terrain platform configuration
type IceConfig struct {
	Friction     float64
	BarDensity   float64
	BarHeight    float64
	PinRadius    float64
	TiltLimit    float64 // Max bar angle away from level, radians
	Stiffness    float64 // Floating ice spring constant
	Damping      float64 // Floating ice spring damping
	SinkPerRider float64 // Rest depth added by each rider
	MaxSink      float64
	Travel       float64 // Default moving ice travel in units
	Period       float64 // Default seconds for one leg of the oscillation
}

// IcicleConfig contains falling hazard configuration
type IcicleConfig struct {
	Width         float64
	Height        float64
	Density       float64
	TriggerWidth  float64 // Horizontal distance that wakes an icicle
	TriggerHeight float64 // Max vertical drop to a target below it
}

// ProximityConfig contains the distance thresholds used by non-contact checks
type ProximityConfig struct {
	AggroRadius   float64
	IcicleRadius  float64
	PunchRadius   float64
	RecoverRadius float64
	CellSize      int     // Resolv cell size in index pixels
	Resolution    float64 // Index pixels per world unit
}

// AnimationConfig contains frame timing shared by every strip
type AnimationConfig struct {
	Interval float64 // Seconds per frame
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Draw       bool      // Start with debug outlines visible
	Assertions bool      // Panic on invariant violations instead of returning errors
	LogLevel   log.Level // Level used for loggers built by the hosts
}

var World WorldConfig
var Display DisplayConfig
var Player PlayerConfig
var Penguin PenguinConfig
var Monster MonsterConfig
var Note NoteConfig
var Ice IceConfig
var Icicle IcicleConfig
var Proximity ProximityConfig
var Animation AnimationConfig
var Debug DebugConfig

func init() {
	World = WorldConfig{
		Gravity:            -9.8,
		Step:               1.0 / 60.0,
		VelocityIterations: 6,
		PositionIterations: 2,
		ExitCount:          120, // 2 seconds at 60fps
		Width:              32.0,
		Height:             18.0,
		FallMargin:         2.0,
	}

	Display = DisplayConfig{
		Width:  1024,
		Height: 576,
		Title:  "Penguin Squad",

		Background:   color.RGBA{R: 24, G: 36, B: 56, A: 255},
		DebugColor:   color.RGBA{R: 80, G: 255, B: 120, A: 255},
		SensorColor:  color.RGBA{R: 255, G: 200, B: 60, A: 255},
		TextColor:    color.RGBA{R: 240, G: 240, B: 255, A: 255},
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 140},
		CompleteText: "LEVEL COMPLETE",
		FailedText:   "TRY AGAIN",
		FinishedText: "ALL LEVELS COMPLETE - PRESS ESC",
	}

	Player = PlayerConfig{
		Width:    0.8,
		Height:   1.6,
		Density:  1.0,
		Friction: 0.0,

		Force:       20.0,
		Damping:     10.0,
		MaxSpeed:    5.0,
		JumpImpulse: 5.5,

		JumpCooldown:  30,
		ThrowCooldown: 30,
		PunchCooldown: 40,

		ThrowIncrement:   25.0,
		MaxThrowingForce: 200.0,

		SensorWidthFactor: 0.6,
		SensorHeight:      0.05,
	}

	// Heavy so a full charge launches at roughly 10 units/s.
	Penguin = PenguinConfig{
		Width:       0.7,
		Height:      0.8,
		Density:     35.0,
		Friction:    0.6,
		Restitution: 0.1,
		Spacing:     0.6,
		Lift:        -0.35,
		SpinRate:    8.0,
	}

	Monster = MonsterConfig{
		Width:       1.2,
		Height:      0.9,
		Density:     2.0,
		Friction:    0.3,
		PatrolForce: 12.0,
		MaxSpeed:    2.0,
		PatrolRange: 3.0,
	}

	Note = NoteConfig{
		Size: 0.6,
	}

	Ice = IceConfig{
		Friction:     0.05,
		BarDensity:   1.0,
		BarHeight:    0.4,
		PinRadius:    0.1,
		TiltLimit:    0.35,
		Stiffness:    40.0,
		Damping:      6.0,
		SinkPerRider: 0.15,
		MaxSink:      0.6,
		Travel:       4.0,
		Period:       2.5,
	}

	Icicle = IcicleConfig{
		Width:         0.3,
		Height:        0.8,
		Density:       3.0,
		TriggerWidth:  0.75,
		TriggerHeight: 12.0,
	}

	Proximity = ProximityConfig{
		AggroRadius:   3.0,
		IcicleRadius:  1.0,
		PunchRadius:   3.0,
		RecoverRadius: 2.0,
		CellSize:      16,
		Resolution:    16.0,
	}

	Animation = AnimationConfig{
		Interval: 0.1,
	}

	Debug = DebugConfig{
		Draw:       false,
		Assertions: false,
		LogLevel:   log.InfoLevel,
	}
}
