package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/yohamta/donburi"
)

// keyCodes maps physical keys to the key codes the input tracker understands
var keyCodes = map[ebiten.Key]cfg.KeyCode{
	ebiten.KeyW:          cfg.KeyW,
	ebiten.KeyA:          cfg.KeyA,
	ebiten.KeyS:          cfg.KeyS,
	ebiten.KeyD:          cfg.KeyD,
	ebiten.KeyR:          cfg.KeyR,
	ebiten.KeyArrowUp:    cfg.KeyArrowUp,
	ebiten.KeyArrowDown:  cfg.KeyArrowDown,
	ebiten.KeyArrowLeft:  cfg.KeyArrowLeft,
	ebiten.KeyArrowRight: cfg.KeyArrowRight,
	ebiten.KeyEscape:     cfg.KeyEscape,
}

// readKeyboard forwards key edges to the input tracker. While typing only
// releases pass through so held keys cannot stick.
func readKeyboard(w donburi.World, typing bool) {
	input := systems.InputOf(w)
	for key, code := range keyCodes {
		if inpututil.IsKeyJustReleased(key) {
			input.SetPressed(code, false)
		}
		if !typing && inpututil.IsKeyJustPressed(key) {
			input.SetPressed(code, true)
		}
	}

	if typing {
		return
	}
	settings := systems.SettingsOf(w)
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		systems.SetMuted(w, !settings.Muted)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		systems.SetFullscreen(w, !settings.Fullscreen)
	}
}
