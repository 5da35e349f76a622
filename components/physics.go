package components

import (
	"github.com/mohinem/portfolio3d/physics"
	"github.com/yohamta/donburi"
)

// PhysicsWorldData holds the scene's rigid-body world
type PhysicsWorldData struct {
	World *physics.World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// BodyData is the handle to an entity's rigid body. Body is nil until the
// entity's model has loaded.
type BodyData struct {
	Body physics.RigidBody
}

var Body = donburi.NewComponentType[BodyData]()
