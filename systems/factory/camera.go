package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// CreateCamera places the chase camera at its start position, aimed at the spawn point
func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	data := components.ChaseCameraData{
		Offset:      cfg.Camera.Offset,
		Smoothing:   cfg.Camera.Smoothing,
		FOV:         cfg.Camera.FOV,
		Near:        cfg.Camera.Near,
		Far:         cfg.Camera.Far,
		Position:    cfg.Camera.Start,
		Orientation: mgl64.QuatIdent(),
	}
	data.LookAt(cfg.Vehicle.Spawn)
	components.ChaseCamera.SetValue(camera, data)
	return camera
}
