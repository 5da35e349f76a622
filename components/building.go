package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// TriggerState is the fire-once state of a building's collision trigger
type TriggerState int

const (
	TriggerIdle TriggerState = iota
	TriggerTriggered
)

func (s TriggerState) String() string {
	if s == TriggerTriggered {
		return "triggered"
	}
	return "idle"
}

type BuildingData struct {
	Menu    cfg.MenuKind
	Label   string
	Size    mgl64.Vec3 // Full box size
	Yaw     float64
	Color   color.RGBA
	Trigger TriggerState
	Policy  cfg.ResetPolicy
	Visited bool

	// OnOpen is invoked on the first vehicle contact and on every click
	OnOpen func()
}

var Building = donburi.NewComponentType[BuildingData]()
