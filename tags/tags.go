package tags

import "github.com/yohamta/donburi"

var (
	Vehicle  = donburi.NewTag().SetName("Vehicle")
	Building = donburi.NewTag().SetName("Building")
	Camera   = donburi.NewTag().SetName("Camera")
	Decor    = donburi.NewTag().SetName("Decor")
)

// Body tags carried by physics bodies and their broadphase objects
const (
	ResolvVehicle  = "car"
	ResolvBuilding = "building"
	ResolvDecor    = "decor"
)
