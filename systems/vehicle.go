package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

var (
	localForward = mgl64.Vec3{0, 0, -1}
	localRight   = mgl64.Vec3{1, 0, 0}
	worldUp      = mgl64.Vec3{0, 1, 0}
)

// UpdateVehicleControl turns this tick's input into impulses on the vehicle body
func UpdateVehicleControl(w donburi.World) {
	entry, ok := tags.Vehicle.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(entry).Body
	if body == nil {
		// model still loading
		return
	}
	input := getOrCreateInput(w)
	vehicle := components.Vehicle.Get(entry)

	if ApplyVehicleControl(body, input, vehicle) {
		vehicle.Resets++
		logging.Logger.Debug().Int("resets", vehicle.Resets).Msg("vehicle reset")
	}
}

// ApplyVehicleControl emits the drive impulses for one tick and reports whether
// the reset command fired.
func ApplyVehicleControl(body physics.RigidBody, input *components.InputData, vehicle *components.VehicleData) bool {
	if GetAction(input, cfg.ActionReset).JustPressed {
		ResetVehicle(body, vehicle.Spawn)
		return true
	}

	forward := body.Rotation().Rotate(localForward)
	if GetAction(input, cfg.ActionForward).Pressed {
		body.ApplyImpulse(forward.Mul(vehicle.ForceMagnitude), true)
	}
	if GetAction(input, cfg.ActionBack).Pressed {
		body.ApplyImpulse(forward.Mul(-vehicle.ForceMagnitude), true)
	}
	if GetAction(input, cfg.ActionLeft).Pressed {
		body.ApplyTorqueImpulse(mgl64.Vec3{0, vehicle.TorqueMagnitude, 0}, true)
	}
	if GetAction(input, cfg.ActionRight).Pressed {
		body.ApplyTorqueImpulse(mgl64.Vec3{0, -vehicle.TorqueMagnitude, 0}, true)
	}
	return false
}

// ResetVehicle teleports the body to spawn with identity orientation and no motion.
// All four writes happen before the next physics step.
func ResetVehicle(body physics.RigidBody, spawn mgl64.Vec3) {
	body.SetTranslation(spawn, true)
	body.SetRotation(mgl64.QuatIdent(), true)
	body.SetLinvel(mgl64.Vec3{}, true)
	body.SetAngvel(mgl64.Vec3{}, true)
}

// VehicleSpeed returns the vehicle's speed in world units per second, or 0 without a body
func VehicleSpeed(w donburi.World) float64 {
	entry, ok := tags.Vehicle.First(w)
	if !ok {
		return 0
	}
	body := components.Body.Get(entry).Body
	if body == nil {
		return 0
	}
	return body.Linvel().Len()
}
