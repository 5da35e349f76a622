package components

import (
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData tracks raw key state written by keyboard and touch sources, plus the
// current and previous frame's action snapshots derived from it.
type InputData struct {
	Keys     map[cfg.KeyCode]bool
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()

func NewInputData() InputData {
	return InputData{Keys: map[cfg.KeyCode]bool{}}
}

// SetPressed records a key-down or key-up. Repeated key-downs are idempotent.
func (in *InputData) SetPressed(key cfg.KeyCode, down bool) {
	if in.Keys == nil {
		in.Keys = map[cfg.KeyCode]bool{}
	}
	if !down {
		delete(in.Keys, key)
		return
	}
	in.Keys[key] = true
}

func (in *InputData) IsPressed(key cfg.KeyCode) bool {
	return in.Keys[key]
}

// ReleaseAll forgets every held key, e.g. when the window loses focus
func (in *InputData) ReleaseAll() {
	for k := range in.Keys {
		delete(in.Keys, k)
	}
}
