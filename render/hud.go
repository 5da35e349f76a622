package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/fonts"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/view"
	"github.com/yohamta/donburi"
)

const (
	hudMargin     = 10
	hudPadding    = 8
	hudLineHeight = 18
)

// DrawHUD renders the instruction box in the top-right corner
func DrawHUD(w donburi.World, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	face := fonts.Regular.Get()
	lines := view.HUDLines(cfg.UI.TouchControls, systems.VehicleSpeed(w), cfg.Vehicle.SpeedToKmh)

	boxW := 0
	for _, line := range lines {
		if dx := text.BoundString(face, line).Dx(); dx > boxW {
			boxW = dx
		}
	}
	boxW += 2 * hudPadding
	boxH := len(lines)*hudLineHeight + hudPadding

	x := width - boxW - hudMargin
	vector.FillRect(screen, float32(x), hudMargin, float32(boxW), float32(boxH), cfg.UI.HUDBoxColor, false)
	for i, line := range lines {
		text.Draw(screen, line, face, x+hudPadding, hudMargin+(i+1)*hudLineHeight, cfg.UI.HUDTextColor)
	}
}

// DrawDebug shows loop timing in the top-left corner
func DrawDebug(w donburi.World, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	bodies := 0
	if pw := systems.PhysicsWorldOf(w); pw != nil {
		bodies = len(pw.Bodies())
	}
	line := view.DebugLine(ebiten.ActualFPS(), ebiten.ActualTPS(), bodies)
	text.Draw(screen, line, fonts.Small.Get(), hudMargin, hudMargin+12, cfg.LightGreen)
	DrawColliders(w, screen)
}
