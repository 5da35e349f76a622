package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ChaseCameraData is the camera transform plus its follow parameters
type ChaseCameraData struct {
	Offset      mgl64.Vec3 // lateral, height, distance behind
	Smoothing   float64
	FOV         float64 // degrees
	Near, Far   float64
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

var ChaseCamera = donburi.NewComponentType[ChaseCameraData]()

// LookAt aims the camera at target with no roll. A target at the camera
// position leaves the orientation unchanged.
func (c *ChaseCameraData) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-9 {
		return
	}
	c.Orientation = LookRotation(dir)
}

// Forward is the camera's viewing direction
func (c *ChaseCameraData) Forward() mgl64.Vec3 {
	return c.Orientation.Rotate(mgl64.Vec3{0, 0, -1})
}

// LookRotation returns the rotation taking -Z onto dir: yaw around +Y, then pitch around
// the yawed X axis.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	dir = dir.Normalize()
	pitch := math.Asin(clamp(dir.Y(), -1, 1))
	yaw := math.Atan2(-dir.X(), -dir.Z())
	yawQ := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
	pitchQ := mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0})
	return yawQ.Mul(pitchQ).Normalize()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
