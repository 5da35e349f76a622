package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/yohamta/donburi"
)

// UpdatePhysics advances the rigid-body world by one fixed tick. Collision
// handlers run synchronously inside the step.
func UpdatePhysics(w donburi.World) {
	pw := PhysicsWorldOf(w)
	if pw == nil {
		return
	}
	pw.Step(tickSeconds())
}

func tickSeconds() float64 {
	if cfg.C.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.C.TPS)
}

// PhysicsWorldOf returns the scene's rigid-body world, or nil before it exists
func PhysicsWorldOf(w donburi.World) *physics.World {
	entry, ok := components.PhysicsWorld.First(w)
	if !ok {
		return nil
	}
	return components.PhysicsWorld.Get(entry).World
}
