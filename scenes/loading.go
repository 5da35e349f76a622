package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mohinem/portfolio3d/assets"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/fonts"
	"github.com/mohinem/portfolio3d/logging"
)

const (
	loadingBarWidth  = 400
	loadingBarHeight = 16
)

// LoadingScene decodes the assets one step per frame so the progress bar moves
type LoadingScene struct {
	sceneChanger SceneChanger
	opts         Options
	steps        []assets.LoadStep
	next         int
	bundle       *assets.Bundle
}

func NewLoadingScene(sc SceneChanger, opts Options) *LoadingScene {
	return &LoadingScene{
		sceneChanger: sc,
		opts:         opts,
		steps:        assets.LoadSteps(cfg.Village.LayoutPath, cfg.Vehicle.ModelPath),
		bundle:       &assets.Bundle{},
	}
}

func (ls *LoadingScene) Update() {
	if ls.next < len(ls.steps) {
		step := ls.steps[ls.next]
		ls.next++
		// A failed step leaves its part of the bundle nil; the village falls back to defaults
		if err := step.Run(ls.bundle); err != nil {
			logging.Logger.Warn().Err(err).Str("step", step.Name).Msg("asset step failed")
		} else {
			logging.Logger.Debug().Str("step", step.Name).Msg("asset step done")
		}
		return
	}
	ls.sceneChanger.ChangeScene(NewVillageScene(ls.sceneChanger, ls.bundle, ls.opts))
}

// Progress is the fraction of load steps finished
func (ls *LoadingScene) Progress() float64 {
	if len(ls.steps) == 0 {
		return 1
	}
	return float64(ls.next) / float64(len(ls.steps))
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	b := screen.Bounds()
	x := float32(b.Dx()-loadingBarWidth) / 2
	y := float32(b.Dy()-loadingBarHeight) / 2
	vector.FillRect(screen, x, y, loadingBarWidth, loadingBarHeight, cfg.BlackOverlay, false)
	vector.FillRect(screen, x, y, float32(ls.Progress())*loadingBarWidth, loadingBarHeight, cfg.LightGreen, false)

	label := "Loading..."
	if ls.next < len(ls.steps) {
		label = fmt.Sprintf("Loading %s...", ls.steps[ls.next].Name)
	}
	text.Draw(screen, label, fonts.Regular.Get(), int(x), int(y)-8, cfg.White)
}
