package systems

import (
	"github.com/mohinem/portfolio3d/components"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/mohinem/portfolio3d/view"
	"github.com/yohamta/donburi"
)

// ProjectorOf builds the screen projection for the scene camera
func ProjectorOf(w donburi.World, width, height int) (*view.Projector, bool) {
	entry, ok := tags.Camera.First(w)
	if !ok {
		return nil, false
	}
	cam := components.ChaseCamera.Get(entry)
	return view.NewProjector(cam.Position, cam.Orientation, cam.FOV, cam.Near, cam.Far, width, height), true
}

// BuildingBox is the world-space box of a building entity
func BuildingBox(entry *donburi.Entry) (view.Box, bool) {
	building := components.Building.Get(entry)
	if !entry.HasComponent(components.Body) {
		return view.Box{}, false
	}
	body := components.Body.Get(entry).Body
	if body == nil {
		return view.Box{}, false
	}
	return view.Box{
		Center:      body.Translation(),
		HalfExtents: building.Size.Mul(0.5),
		Yaw:         building.Yaw,
	}, true
}

// PickBuilding returns the front-most building under the screen point
func PickBuilding(w donburi.World, x, y, width, height int) (*donburi.Entry, bool) {
	p, ok := ProjectorOf(w, width, height)
	if !ok {
		return nil, false
	}

	var entries []*donburi.Entry
	var boxes []view.Box
	tags.Building.Each(w, func(entry *donburi.Entry) {
		if box, ok := BuildingBox(entry); ok {
			entries = append(entries, entry)
			boxes = append(boxes, box)
		}
	})

	i := p.Pick(boxes, x, y)
	if i < 0 {
		return nil, false
	}
	return entries[i], true
}

// HandleClick opens the building under a left click, if any
func HandleClick(w donburi.World, x, y, width, height int) bool {
	entry, ok := PickBuilding(w, x, y, width, height)
	if !ok {
		return false
	}
	ClickBuilding(entry)
	return true
}
