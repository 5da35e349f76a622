package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// VehicleConfig contains the driving feel of the car
type VehicleConfig struct {
	// Per-tick control impulses
	ForceMagnitude  float64
	TorqueMagnitude float64

	// Body
	Mass           float64
	InvInertia     float64
	Friction       float64 // Lateral tyre grip
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
	LockRotationX  bool
	LockRotationZ  bool

	// Model
	Scale      float64
	ModelPath  string
	Spawn      mgl64.Vec3
	MaxHUDKmh  float64
	SpeedToKmh float64
}

// CameraConfig contains chase camera behavior configuration
type CameraConfig struct {
	Offset    mgl64.Vec3 // lateral, height, distance behind
	Smoothing float64    // Fraction of the remaining distance covered per tick (0.0-1.0)
	FOV       float64    // Vertical field of view in degrees
	Near      float64
	Far       float64
	Start     mgl64.Vec3
}

// PhysicsConfig contains the rigid-body world configuration
type PhysicsConfig struct {
	Gravity     float64
	GroundY     float64
	ContactSkin float64 // Gap still treated as touching
	SleepSpeed  float64 // Bodies slower than this for SleepTicks fall asleep
	SleepTicks  int
	Extent      int // Half-size of the broadphase space in world units
	CellSize    int
}

// ResetPolicy controls when a triggered building can fire again
type ResetPolicy int

const (
	ResetOnExit ResetPolicy = iota
	ResetOnSignal
	ResetNever
)

var resetPolicyNames = map[ResetPolicy]string{
	ResetOnExit:   "exit",
	ResetOnSignal: "signal",
	ResetNever:    "never",
}

func (p ResetPolicy) String() string {
	return resetPolicyNames[p]
}

// ParseResetPolicy maps a config string to a policy, defaulting to ResetOnExit
func ParseResetPolicy(s string) ResetPolicy {
	for p, name := range resetPolicyNames {
		if name == s {
			return p
		}
	}
	return ResetOnExit
}

// CollisionConfig contains the building trigger configuration
type CollisionConfig struct {
	ResetPolicy ResetPolicy
}

// UIConfig contains overlay and HUD configuration
type UIConfig struct {
	ExclusiveMenus  bool // Opening a menu closes the others
	TouchControls   bool // Show on-screen arrows and touch HUD text
	OverlayFadeSecs float32
	LabelBobAmp     float32
	LabelBobSecs    float32
	LabelHeight     float64 // Gap between roof and label
	ChatOpen        bool
	ChatMinimized   bool

	HUDTextColor color.RGBA
	HUDBoxColor  color.RGBA
}

// VillageConfig contains procedural decoration parameters
type VillageConfig struct {
	Seed        int64
	LayoutPath  string
	TreeCount   int
	AnimalCount int
	CloudCount  int
	Radius      float64 // Decoration spread around the origin
	ClearRadius float64 // Keep decoration this far from buildings and spawn
	Mountains   int
	WaterY      float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	EngineVolume  float64
	Muted         bool
	IdlePitch     float64 // Hz at rest
	MaxPitch      float64 // Hz at top speed
	SpringFreq    float64
	SpringDamping float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool // FPS line and collider outlines
	SkipLoading bool
}

// Config holds general window configuration
type Config struct {
	Width      int
	Height     int
	TPS        int
	Fullscreen bool
	Title      string
}

// Global configuration instances
var C *Config
var Vehicle VehicleConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Collision CollisionConfig
var UI UIConfig
var Village VillageConfig
var Audio AudioConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Sky          = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Grass        = color.RGBA{R: 86, G: 160, B: 70, A: 255}
	Water        = color.RGBA{R: 64, G: 140, B: 200, A: 255}
	Bark         = color.RGBA{R: 110, G: 74, B: 40, A: 255}
	Leaves       = color.RGBA{R: 40, G: 120, B: 50, A: 255}
	Cloud        = color.RGBA{R: 250, G: 250, B: 250, A: 230}
	Mountain     = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	CarRed       = color.RGBA{R: 220, G: 40, B: 30, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Portfolio 3D",
	}

	Vehicle = VehicleConfig{
		ForceMagnitude:  0.35,
		TorqueMagnitude: 0.08,

		Mass:           1.0,
		InvInertia:     1.0,
		Friction:       2.0,
		Restitution:    0,
		LinearDamping:  1.5,
		AngularDamping: 3.0,
		LockRotationX:  true,
		LockRotationZ:  true,

		Scale:      0.5,
		ModelPath:  "models/car.gltf",
		Spawn:      mgl64.Vec3{0, 1, 0},
		MaxHUDKmh:  120,
		SpeedToKmh: 3.6,
	}

	Camera = CameraConfig{
		Offset:    mgl64.Vec3{0, 5, 10},
		Smoothing: 0.1,
		FOV:       60,
		Near:      0.1,
		Far:       400,
		Start:     mgl64.Vec3{0, 5, 10},
	}

	Physics = PhysicsConfig{
		Gravity:     -9.81,
		GroundY:     0,
		ContactSkin: 0.02,
		SleepSpeed:  0.01,
		SleepTicks:  60,
		Extent:      128,
		CellSize:    4,
	}

	Collision = CollisionConfig{
		ResetPolicy: ResetOnExit,
	}

	UI = UIConfig{
		ExclusiveMenus:  true,
		OverlayFadeSecs: 0.2,
		LabelBobAmp:     0.25,
		LabelBobSecs:    1.2,
		LabelHeight:     1.0,
		ChatOpen:        true,

		HUDTextColor: Yellow,
		HUDBoxColor:  color.RGBA{R: 0, G: 0, B: 0, A: 178},
	}

	Village = VillageConfig{
		LayoutPath:  "maps/village.tmx",
		TreeCount:   20,
		AnimalCount: 6,
		CloudCount:  5,
		Radius:      40,
		ClearRadius: 4,
		Mountains:   12,
		WaterY:      -0.5,
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		EngineVolume:  0.25,
		IdlePitch:     55,
		MaxPitch:      180,
		SpringFreq:    4.0,
		SpringDamping: 0.9,
	}
}
