package components

import (
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuStateData owns overlay visibility. Version increments on every change so
// the UI can rebuild lazily.
type MenuStateData struct {
	Visible   [cfg.MenuCount]bool
	Exclusive bool
	Version   int

	// Order of opening, most recent last
	Stack []cfg.MenuKind

	Fade  *gween.Tween
	Alpha float32
}

var MenuState = donburi.NewComponentType[MenuStateData]()

func (m *MenuStateData) IsOpen(kind cfg.MenuKind) bool {
	if kind < 0 || kind >= cfg.MenuCount {
		return false
	}
	return m.Visible[kind]
}

func (m *MenuStateData) AnyOpen() bool {
	for _, v := range m.Visible {
		if v {
			return true
		}
	}
	return false
}

// Top returns the most recently opened visible menu
func (m *MenuStateData) Top() (cfg.MenuKind, bool) {
	for i := len(m.Stack) - 1; i >= 0; i-- {
		if m.Visible[m.Stack[i]] {
			return m.Stack[i], true
		}
	}
	return 0, false
}
