package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/yohamta/donburi"
)

// EngineSoundData smooths the engine pitch toward a speed-derived target
type EngineSoundData struct {
	Spring   harmonica.Spring
	Pitch    float64
	Velocity float64
	Target   float64
	Muted    bool
}

var EngineSound = donburi.NewComponentType[EngineSoundData]()
