package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/components"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

// UpdateChaseCamera moves the camera a fixed fraction toward its slot behind
// the vehicle, then aims it at the vehicle.
func UpdateChaseCamera(w donburi.World) {
	cameraEntry, ok := tags.Camera.First(w)
	if !ok {
		return
	}
	vehicleEntry, ok := tags.Vehicle.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(vehicleEntry).Body
	if body == nil {
		return
	}

	StepChaseCamera(components.ChaseCamera.Get(cameraEntry), body.Translation(), body.Rotation())
}

// StepChaseCamera advances one smoothing step toward the pose (pos, rot)
func StepChaseCamera(camera *components.ChaseCameraData, pos mgl64.Vec3, rot mgl64.Quat) {
	desired := DesiredCameraPosition(pos, rot, camera.Offset)
	camera.Position = camera.Position.Add(desired.Sub(camera.Position).Mul(camera.Smoothing))
	camera.LookAt(pos)
}

// DesiredCameraPosition is the camera slot for a vehicle pose: offset.Z behind
// along the vehicle's forward axis, offset.X to its right, offset.Y up.
func DesiredCameraPosition(pos mgl64.Vec3, rot mgl64.Quat, offset mgl64.Vec3) mgl64.Vec3 {
	forward := rot.Rotate(localForward)
	right := rot.Rotate(localRight)
	return pos.
		Sub(forward.Mul(offset.Z())).
		Add(right.Mul(offset.X())).
		Add(worldUp.Mul(offset.Y()))
}

// LookAtRotation returns the orientation at eye that faces target with no roll
func LookAtRotation(eye, target mgl64.Vec3) mgl64.Quat {
	dir := target.Sub(eye)
	if dir.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	return components.LookRotation(dir)
}
