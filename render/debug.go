package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/mohinem/portfolio3d/view"
	"github.com/yohamta/donburi"
)

// boxEdges indexes Box.Corners
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var colliderColors = map[string]color.RGBA{
	tags.ResolvVehicle:  {R: 255, G: 255, B: 0, A: 255},
	tags.ResolvBuilding: {R: 255, G: 80, B: 80, A: 255},
	tags.ResolvDecor:    {R: 80, G: 160, B: 255, A: 255},
}

// DrawColliders outlines every physics body's axis-aligned bounds
func DrawColliders(w donburi.World, screen *ebiten.Image) {
	pw := systems.PhysicsWorldOf(w)
	if pw == nil {
		return
	}
	p, ok := systems.ProjectorOf(w, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	for _, b := range pw.Bodies() {
		drawBounds(screen, p, b)
	}
}

func drawBounds(screen *ebiten.Image, p *view.Projector, b *physics.Body) {
	lo, hi := b.Bounds()
	box := view.Box{Center: lo.Add(hi).Mul(0.5), HalfExtents: hi.Sub(lo).Mul(0.5)}
	corners := box.Corners()

	var pts [8][2]float32
	var visible [8]bool
	for i, c := range corners {
		x, y, ok := p.Project(c)
		pts[i] = [2]float32{float32(x), float32(y)}
		visible[i] = ok
	}

	col, ok := colliderColors[b.Tag()]
	if !ok {
		col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	for _, e := range boxEdges {
		if !visible[e[0]] || !visible[e[1]] {
			continue
		}
		vector.StrokeLine(screen, pts[e[0]][0], pts[e[0]][1], pts[e[1]][0], pts[e[1]][1], 1, col, false)
	}
}
