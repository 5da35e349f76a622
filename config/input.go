package config

// ActionID represents a logical driving action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionReset
	ActionCloseMenu
	ActionCount // Must be last - used for array sizing
)

// KeyCode identifies a physical or synthetic key, named after DOM key codes
// so keyboard and touch sources share one vocabulary.
type KeyCode string

const (
	KeyW          KeyCode = "KeyW"
	KeyA          KeyCode = "KeyA"
	KeyS          KeyCode = "KeyS"
	KeyD          KeyCode = "KeyD"
	KeyR          KeyCode = "KeyR"
	KeyArrowUp    KeyCode = "ArrowUp"
	KeyArrowDown  KeyCode = "ArrowDown"
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyArrowRight KeyCode = "ArrowRight"
	KeyEscape     KeyCode = "Escape"
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []KeyCode
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Clear every held key when the window loses focus
	ReleaseOnBlur bool
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ReleaseOnBlur: true,
		Bindings: map[ActionID]InputBinding{
			ActionForward: {
				Keys: []KeyCode{KeyW, KeyArrowUp},
			},
			ActionBack: {
				Keys: []KeyCode{KeyS, KeyArrowDown},
			},
			ActionLeft: {
				Keys: []KeyCode{KeyA, KeyArrowLeft},
			},
			ActionRight: {
				Keys: []KeyCode{KeyD, KeyArrowRight},
			},
			ActionReset: {
				Keys: []KeyCode{KeyR},
			},
			ActionCloseMenu: {
				Keys: []KeyCode{KeyEscape},
			},
		},
	}
}
