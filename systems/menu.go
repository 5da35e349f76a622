package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// OpenMenu shows the overlay for kind. In exclusive mode every other overlay closes first.
func OpenMenu(w donburi.World, kind cfg.MenuKind) {
	if kind < 0 || kind >= cfg.MenuCount {
		return
	}
	menus := getOrCreateMenuState(w)

	if menus.Exclusive {
		chat := getOrCreateChat(w)
		for _, other := range cfg.MenuKinds {
			if other != kind && menus.Visible[other] {
				closeMenu(w, menus, other)
				if chat.HasActive && chat.ActiveMenu == other {
					ChatReset(w)
				}
			}
		}
	}

	if kind == cfg.MenuMusic {
		player := getOrCreateMusicPlayer(w)
		if !player.Open {
			player.Open = true
			if player.Content == (components.MusicContent{}) {
				player.Content = player.Default
			}
		}
	}

	menus.Stack = removeKind(menus.Stack, kind)
	menus.Stack = append(menus.Stack, kind)
	if !menus.Visible[kind] {
		menus.Visible[kind] = true
		menus.Alpha = 0
		menus.Fade = gween.New(0, 1, cfg.UI.OverlayFadeSecs, ease.OutQuad)
		logging.Logger.Info().Str("menu", kind.Key()).Msg("menu opened")
	}
	menus.Version++
}

// CloseMenu hides an overlay from the shell, e.g. its close button or Escape.
// The chat assistant forgets its active menu.
func CloseMenu(w donburi.World, kind cfg.MenuKind) {
	menus := getOrCreateMenuState(w)
	if !menus.IsOpen(kind) {
		return
	}
	closeMenu(w, menus, kind)
	ChatReset(w)
}

// CloseTopMenu closes the most recently opened overlay
func CloseTopMenu(w donburi.World) bool {
	menus := getOrCreateMenuState(w)
	kind, ok := menus.Top()
	if !ok {
		return false
	}
	CloseMenu(w, kind)
	return true
}

// CloseAllMenus hides every overlay, e.g. the shell's "Close all" button
func CloseAllMenus(w donburi.World) {
	menus := getOrCreateMenuState(w)
	closed := false
	for _, kind := range cfg.MenuKinds {
		if menus.Visible[kind] {
			closeMenu(w, menus, kind)
			closed = true
		}
	}
	if closed {
		ChatReset(w)
	}
}

// UpdateMenus handles Escape and advances the overlay fade
func UpdateMenus(w donburi.World) {
	input := getOrCreateInput(w)
	if GetAction(input, cfg.ActionCloseMenu).JustPressed {
		CloseTopMenu(w)
	}

	menus := getOrCreateMenuState(w)
	if menus.Fade == nil {
		return
	}
	alpha, done := menus.Fade.Update(float32(tickSeconds()))
	menus.Alpha = alpha
	if done {
		menus.Alpha = 1
		menus.Fade = nil
	}
}

// MenuStateOf returns the overlay visibility for the scene
func MenuStateOf(w donburi.World) *components.MenuStateData {
	return getOrCreateMenuState(w)
}

func closeMenu(w donburi.World, menus *components.MenuStateData, kind cfg.MenuKind) {
	menus.Visible[kind] = false
	menus.Stack = removeKind(menus.Stack, kind)
	menus.Version++
	if kind == cfg.MenuMusic {
		player := getOrCreateMusicPlayer(w)
		player.Open = false
		player.Content = components.MusicContent{}
	}
	resetSignalledTriggers(w, kind)
	logging.Logger.Info().Str("menu", kind.Key()).Msg("menu closed")
}

func removeKind(stack []cfg.MenuKind, kind cfg.MenuKind) []cfg.MenuKind {
	out := stack[:0]
	for _, k := range stack {
		if k != kind {
			out = append(out, k)
		}
	}
	return out
}

func getOrCreateMenuState(w donburi.World) *components.MenuStateData {
	entry, ok := components.MenuState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.MenuState))
		components.MenuState.SetValue(entry, components.MenuStateData{
			Exclusive: cfg.UI.ExclusiveMenus,
			Alpha:     1,
		})
	}
	return components.MenuState.Get(entry)
}
