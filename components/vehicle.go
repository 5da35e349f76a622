package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type VehicleData struct {
	Spawn           mgl64.Vec3
	ForceMagnitude  float64
	TorqueMagnitude float64
	HalfExtents     mgl64.Vec3 // Collision box, already scaled
	Resets          int
}

var Vehicle = donburi.NewComponentType[VehicleData]()
