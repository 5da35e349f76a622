package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/mohinem/portfolio3d/view"
	"github.com/yohamta/donburi"
)

// maxBatchVertices keeps each DrawTriangles call inside uint16 indices
const maxBatchVertices = 60000

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// WorldRenderer draws the village as painter-sorted flat-shaded polygons.
// Buffers are reused between frames.
type WorldRenderer struct {
	car      *assets.Model
	polys    []view.Polygon
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

// NewWorldRenderer draws the vehicle with car's triangles, or as a box when car is nil
func NewWorldRenderer(car *assets.Model) *WorldRenderer {
	return &WorldRenderer{car: car}
}

// Draw renders sky, ground, decoration, buildings and the vehicle
func (r *WorldRenderer) Draw(w donburi.World, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	p, ok := systems.ProjectorOf(w, width, height)
	if !ok {
		screen.Fill(cfg.Sky)
		return
	}
	camEntry, _ := tags.Camera.First(w)
	cam := components.ChaseCamera.Get(camEntry)

	screen.Fill(cfg.Grass)
	horizon := p.HorizonY(cam.Forward(), cam.Far)
	vector.FillRect(screen, 0, 0, float32(width), float32(horizon), cfg.Sky, false)

	r.polys = r.polys[:0]
	r.collectDecor(w, p)
	r.collectBuildings(w, p)
	r.collectVehicle(w, p)
	view.SortPolygons(r.polys)
	r.fill(screen)
}

func (r *WorldRenderer) collectDecor(w donburi.World, p *view.Projector) {
	components.Decor.Each(w, func(entry *donburi.Entry) {
		decor := components.Decor.Get(entry)
		for _, part := range decor.Parts {
			center := decor.Position.Add(part.Center)
			if decor.Kind == components.DecorWater {
				r.polys = p.FlatQuad(center, part.HalfExtents.X(), part.HalfExtents.Z(), part.Color, r.polys)
				continue
			}
			r.polys = p.BoxFaces(view.Box{Center: center, HalfExtents: part.HalfExtents}, part.Color, r.polys)
		}
	})
}

func (r *WorldRenderer) collectBuildings(w donburi.World, p *view.Projector) {
	tags.Building.Each(w, func(entry *donburi.Entry) {
		box, ok := systems.BuildingBox(entry)
		if !ok {
			return
		}
		r.polys = p.BoxFaces(box, components.Building.Get(entry).Color, r.polys)
	})
}

func (r *WorldRenderer) collectVehicle(w donburi.World, p *view.Projector) {
	entry, ok := tags.Vehicle.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(entry).Body
	if body == nil {
		return
	}
	pos, rot := body.Translation(), body.Rotation()

	if r.car != nil && len(r.car.Indices) > 0 {
		center := r.car.Center()
		scale := cfg.Vehicle.Scale
		place := func(v mgl64.Vec3) mgl64.Vec3 {
			return pos.Add(rot.Rotate(v.Sub(center).Mul(scale)))
		}
		r.polys = p.MeshTriangles(r.car.Positions, r.car.Indices, place, cfg.CarRed, r.polys)
		return
	}

	forward := rot.Rotate(mgl64.Vec3{0, 0, -1})
	box := view.Box{
		Center:      pos,
		HalfExtents: components.Vehicle.Get(entry).HalfExtents,
		Yaw:         math.Atan2(-forward.X(), -forward.Z()),
	}
	r.polys = p.BoxFaces(box, cfg.CarRed, r.polys)
}

// fill triangulates each polygon as a fan and draws in as few batches as fit
func (r *WorldRenderer) fill(screen *ebiten.Image) {
	src := whitePixel()
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for i := range r.polys {
		poly := &r.polys[i]
		if len(r.vertices)+poly.N > maxBatchVertices {
			screen.DrawTriangles(r.vertices, r.indices, src, &r.op)
			r.vertices = r.vertices[:0]
			r.indices = r.indices[:0]
		}

		base := uint16(len(r.vertices))
		cr, cg, cb, ca := float32(poly.Color.R)/255, float32(poly.Color.G)/255, float32(poly.Color.B)/255, float32(poly.Color.A)/255
		for j := 0; j < poly.N; j++ {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   poly.Pts[j][0],
				DstY:   poly.Pts[j][1],
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		for j := 1; j+1 < poly.N; j++ {
			r.indices = append(r.indices, base, base+uint16(j), base+uint16(j+1))
		}
	}
	if len(r.indices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, src, &r.op)
	}
}
