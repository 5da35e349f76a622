package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// UpdateInput snapshots the raw key map into per-action state.
// Must run BEFORE UpdateVehicleControl in the system order.
func UpdateInput(w donburi.World) {
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if input.IsPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// ReleaseAllInput clears held keys, used when the window loses focus
func ReleaseAllInput(w donburi.World) {
	if !cfg.Input.ReleaseOnBlur {
		return
	}
	getOrCreateInput(w).ReleaseAll()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		components.Input.SetValue(entry, components.NewInputData())
	}
	return components.Input.Get(entry)
}

// InputOf returns the world's input tracker so key sources can write to it
func InputOf(w donburi.World) *components.InputData {
	return getOrCreateInput(w)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
