package components

import "github.com/yohamta/donburi"

// SettingsData mirrors the persisted user settings
type SettingsData struct {
	EngineVolume  float64
	Muted         bool
	Fullscreen    bool
	ChatMinimized bool
	Dirty         bool
}

var Settings = donburi.NewComponentType[SettingsData]()
