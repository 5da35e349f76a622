package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/yohamta/donburi"
)

// CreatePhysicsWorld adds the scene's rigid-body world, configured from cfg.Physics
func CreatePhysicsWorld(w donburi.World) (*donburi.Entry, *physics.World) {
	entry := archetypes.PhysicsWorld.Spawn(w)
	pw := physics.NewWorld(physics.WorldConfig{
		Gravity:     mgl64.Vec3{0, cfg.Physics.Gravity, 0},
		GroundY:     cfg.Physics.GroundY,
		ContactSkin: cfg.Physics.ContactSkin,
		SleepSpeed:  cfg.Physics.SleepSpeed,
		SleepTicks:  cfg.Physics.SleepTicks,
		Extent:      cfg.Physics.Extent,
		CellSize:    cfg.Physics.CellSize,
	})
	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{World: pw})
	return entry, pw
}
