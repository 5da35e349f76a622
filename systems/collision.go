package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

// WireBuildings connects every building to its menu and registers its
// collision handlers with the scene's physics world. Triggers start Idle.
func WireBuildings(w donburi.World) {
	tags.Building.Each(w, func(entry *donburi.Entry) {
		WireBuilding(w, entry)
	})
}

// WireBuilding wires a single building. Call it once per building mount; a
// remounted building starts re-armed whatever its policy.
func WireBuilding(w donburi.World, entry *donburi.Entry) {
	ResetBuildingTrigger(entry)
	building := components.Building.Get(entry)
	kind := building.Menu
	building.OnOpen = func() {
		OpenMenu(w, kind)
	}

	pw := PhysicsWorldOf(w)
	if pw == nil || !entry.HasComponent(components.Body) {
		return
	}
	body, ok := components.Body.Get(entry).Body.(*physics.Body)
	if !ok || body == nil {
		return
	}
	pw.OnCollisionEnter(body, func(ev physics.CollisionEvent) {
		HandleBuildingCollisionEnter(entry, ev)
	})
	pw.OnCollisionExit(body, func(ev physics.CollisionEvent) {
		HandleBuildingCollisionExit(entry, ev)
	})
}

// HandleBuildingCollisionEnter fires the building's open callback on the first
// vehicle contact of an approach. It reports whether the callback ran.
func HandleBuildingCollisionEnter(entry *donburi.Entry, ev physics.CollisionEvent) bool {
	if !entry.Valid() || !isVehicle(ev.Other) {
		return false
	}
	building := components.Building.Get(entry)
	if building.Trigger == components.TriggerTriggered {
		return false
	}

	building.Trigger = components.TriggerTriggered
	logging.Logger.Debug().Str("building", building.Label).Str("menu", building.Menu.Key()).Msg("building triggered")
	openBuilding(building)
	return true
}

// HandleBuildingCollisionExit re-arms the trigger when the vehicle leaves,
// if the building's policy allows it.
func HandleBuildingCollisionExit(entry *donburi.Entry, ev physics.CollisionEvent) {
	if !entry.Valid() || !isVehicle(ev.Other) {
		return
	}
	building := components.Building.Get(entry)
	if building.Policy == cfg.ResetOnExit {
		building.Trigger = components.TriggerIdle
	}
}

// ResetBuildingTrigger re-arms the trigger regardless of policy
func ResetBuildingTrigger(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	components.Building.Get(entry).Trigger = components.TriggerIdle
}

// ClickBuilding opens the building's menu. Clicks are never de-duplicated.
func ClickBuilding(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	building := components.Building.Get(entry)
	logging.Logger.Debug().Str("building", building.Label).Msg("building clicked")
	openBuilding(building)
}

// resetSignalledTriggers re-arms ResetOnSignal buildings bound to kind
func resetSignalledTriggers(w donburi.World, kind cfg.MenuKind) {
	tags.Building.Each(w, func(entry *donburi.Entry) {
		building := components.Building.Get(entry)
		if building.Menu == kind && building.Policy == cfg.ResetOnSignal {
			building.Trigger = components.TriggerIdle
		}
	})
}

func openBuilding(building *components.BuildingData) {
	if !building.Visited {
		building.Visited = true
		markVisited(building.Menu)
	}
	if building.OnOpen != nil {
		building.OnOpen()
	}
}

func isVehicle(b *physics.Body) bool {
	return b != nil && b.Tag() == tags.ResolvVehicle
}
