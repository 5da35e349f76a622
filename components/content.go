package components

import (
	"github.com/mohinem/portfolio3d/assets"
	"github.com/yohamta/donburi"
)

// Content holds the decoded portfolio text shown by the overlays
var Content = donburi.NewComponentType[assets.Portfolio]()
