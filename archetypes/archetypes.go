package archetypes

import (
	"github.com/mohinem/portfolio3d/components"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

var (
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.Body,
	)
	Building = newArchetype(
		tags.Building,
		components.Building,
		components.Body,
		components.FloatingLabel,
	)
	Camera = newArchetype(
		tags.Camera,
		components.ChaseCamera,
	)
	Decor = newArchetype(
		tags.Decor,
		components.Decor,
		components.Body,
	)
	EngineSound = newArchetype(
		components.EngineSound,
	)
	Content = newArchetype(
		components.Content,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
