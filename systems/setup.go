package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/assets"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/systems/factory"
	"github.com/yohamta/donburi"
)

// Village holds the handles the scene needs after setup
type Village struct {
	Physics *physics.World
	Vehicle *donburi.Entry
	Body    *physics.Body
	Camera  *donburi.Entry
	Stats   factory.VillageStats
}

// SetupVillage builds the whole scene world from decoded assets. bundle may
// be partially filled; missing parts fall back to defaults.
func SetupVillage(w donburi.World, bundle *assets.Bundle, seed int64) *Village {
	if bundle == nil {
		bundle = &assets.Bundle{}
	}
	v := &Village{}

	_, v.Physics = factory.CreatePhysicsWorld(w)

	defaultTrack := factory.CreateContent(w, bundle.Portfolio)
	SetDefaultTrack(w, defaultTrack)

	halfExtents := mgl64.Vec3{1, 0.55, 2}.Mul(cfg.Vehicle.Scale)
	if bundle.Car != nil {
		halfExtents = bundle.Car.HalfExtents(cfg.Vehicle.Scale)
	}
	v.Vehicle, v.Body = factory.CreateVehicle(w, v.Physics, halfExtents)
	v.Camera = factory.CreateCamera(w)

	spots := factory.BuildingSpots(bundle.Layout)
	factory.CreateBuildings(w, v.Physics, bundle.Layout, LoadVisited())
	WireBuildings(w)

	v.Stats = factory.CreateVillage(w, v.Physics, bundle.Layout, spots, seed)
	factory.CreateEngineSound(w, NewEngineSound())

	getOrCreateInput(w)
	getOrCreateMenuState(w)
	getOrCreateChat(w)
	getOrCreateSettings(w)

	logging.Logger.Info().
		Int64("seed", seed).
		Int("buildings", len(spots)).
		Int("trees", v.Stats.Trees).
		Int("animals", v.Stats.Animals).
		Msg("village ready")
	return v
}
