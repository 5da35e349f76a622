package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

// ApplyConfig pushes reloaded tuning values into a running scene. Geometry
// (spawn, model scale, layout) only changes on restart.
func ApplyConfig(w donburi.World) {
	tags.Vehicle.Each(w, func(entry *donburi.Entry) {
		vehicle := components.Vehicle.Get(entry)
		vehicle.ForceMagnitude = cfg.Vehicle.ForceMagnitude
		vehicle.TorqueMagnitude = cfg.Vehicle.TorqueMagnitude
	})

	tags.Camera.Each(w, func(entry *donburi.Entry) {
		cam := components.ChaseCamera.Get(entry)
		cam.Offset = cfg.Camera.Offset
		cam.Smoothing = cfg.Camera.Smoothing
		cam.FOV = cfg.Camera.FOV
	})

	tags.Building.Each(w, func(entry *donburi.Entry) {
		components.Building.Get(entry).Policy = cfg.Collision.ResetPolicy
	})

	getOrCreateMenuState(w).Exclusive = cfg.UI.ExclusiveMenus

	logging.Logger.Info().
		Float64("force", cfg.Vehicle.ForceMagnitude).
		Float64("smoothing", cfg.Camera.Smoothing).
		Str("resetPolicy", cfg.Collision.ResetPolicy.String()).
		Msg("config applied")
}
