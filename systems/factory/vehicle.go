package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

// CreateVehicle spawns the car. halfExtents is the scaled collision box; the body
// handle is returned so the camera and UI can use it directly.
func CreateVehicle(w donburi.World, pw *physics.World, halfExtents mgl64.Vec3) (*donburi.Entry, *physics.Body) {
	vehicle := archetypes.Vehicle.Spawn(w)

	components.Vehicle.SetValue(vehicle, components.VehicleData{
		Spawn:           cfg.Vehicle.Spawn,
		ForceMagnitude:  cfg.Vehicle.ForceMagnitude,
		TorqueMagnitude: cfg.Vehicle.TorqueMagnitude,
		HalfExtents:     halfExtents,
	})

	if pw == nil {
		// No world yet: the vehicle stays inert until AttachVehicleBody
		return vehicle, nil
	}
	body := AttachVehicleBody(vehicle, pw)
	return vehicle, body
}

// AttachVehicleBody creates the vehicle's rigid body once its model bounds are known
func AttachVehicleBody(vehicle *donburi.Entry, pw *physics.World) *physics.Body {
	data := components.Vehicle.Get(vehicle)
	body := pw.AddBody(physics.BodyDesc{
		Kind:           physics.Dynamic,
		Tag:            tags.ResolvVehicle,
		Position:       data.Spawn,
		Rotation:       mgl64.QuatIdent(),
		HalfExtents:    data.HalfExtents,
		Mass:           cfg.Vehicle.Mass,
		InvInertia:     cfg.Vehicle.InvInertia,
		Friction:       cfg.Vehicle.Friction,
		Restitution:    cfg.Vehicle.Restitution,
		LinearDamping:  cfg.Vehicle.LinearDamping,
		AngularDamping: cfg.Vehicle.AngularDamping,
		LockRotationX:  cfg.Vehicle.LockRotationX,
		LockRotationZ:  cfg.Vehicle.LockRotationZ,
		Data:           vehicle,
	})
	components.Body.SetValue(vehicle, components.BodyData{Body: body})
	return body
}
