package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mohinem/portfolio3d/components"
	"github.com/mohinem/portfolio3d/fonts"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

var (
	labelBox     = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	labelText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	visitedColor = color.RGBA{R: 100, G: 255, B: 100, A: 255}
)

// DrawLabels writes each building's name above its roof, facing the screen.
// Visited buildings get a green dot.
func DrawLabels(w donburi.World, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	p, ok := systems.ProjectorOf(w, width, height)
	if !ok {
		return
	}
	face := fonts.Label.Get()

	tags.Building.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(entry).Body
		if body == nil {
			return
		}
		building := components.Building.Get(entry)
		label := components.FloatingLabel.Get(entry)

		anchor := body.Translation()
		anchor[1] += label.Height + label.Offset - building.Size.Y()/2
		x, y, ok := p.Project(anchor)
		if !ok {
			return
		}

		bounds := text.BoundString(face, label.Text)
		tw, th := bounds.Dx(), bounds.Dy()
		const pad = 4
		left := float32(x) - float32(tw)/2 - pad
		top := float32(y) - float32(th) - pad
		vector.FillRect(screen, left, top, float32(tw)+2*pad, float32(th)+2*pad, labelBox, false)
		text.Draw(screen, label.Text, face, int(x)-tw/2, int(y), labelText)

		if building.Visited {
			vector.FillCircle(screen, left-6, top+float32(th)/2+pad, 3, visitedColor, true)
		}
	})
}
