package scenes

import (
	"sync/atomic"

	"github.com/mohinem/portfolio3d/systems"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// Options carries the startup choices from the command line into the scenes
type Options struct {
	Seed       int64
	Saved      *systems.SavedSettings
	ConfigPath string
	// Reload is raised by the config watcher; the village scene clears it and re-applies config
	Reload *atomic.Bool
}
