package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type DecorKind int

const (
	DecorTree DecorKind = iota
	DecorAnimal
	DecorCloud
	DecorMountain
	DecorWater
)

// DecorPart is one box of a decoration, relative to its origin
type DecorPart struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
	Color       color.RGBA
}

type DecorData struct {
	Kind     DecorKind
	Position mgl64.Vec3
	Parts    []DecorPart
}

var Decor = donburi.NewComponentType[DecorData]()
