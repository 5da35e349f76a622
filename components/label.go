package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FloatingLabelData is a building name that bobs above the roof
type FloatingLabelData struct {
	Text   string
	Height float64 // Base height above the building origin
	Offset float64 // Current bob offset
	Tween  *gween.Tween
	Rising bool
}

var FloatingLabel = donburi.NewComponentType[FloatingLabelData]()
