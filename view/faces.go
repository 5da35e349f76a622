package view

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// maxPolyPoints covers a quad clipped by the near plane
const maxPolyPoints = 8

var lightDir = mgl64.Vec3{0.4, 1, 0.3}.Normalize()

// Polygon is a projected, shaded convex face in screen pixels
type Polygon struct {
	Pts   [maxPolyPoints][2]float32
	N     int
	Depth float64 // Mean view depth, larger is farther
	Color color.RGBA
}

// boxFaces indexes Box.Corners: bottom, top, then the four sides
var boxFaces = [6][4]int{
	{0, 3, 2, 1},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// BoxFaces appends the faces of b that look toward the camera
func (p *Projector) BoxFaces(b Box, col color.RGBA, out []Polygon) []Polygon {
	corners := b.Corners()
	for _, f := range boxFaces {
		quad := [4]mgl64.Vec3{corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]}
		centroid := quad[0].Add(quad[1]).Add(quad[2]).Add(quad[3]).Mul(0.25)
		normal := centroid.Sub(b.Center)
		if normal.Len() < 1e-9 || normal.Dot(centroid.Sub(p.eye)) >= 0 {
			continue
		}
		if poly, ok := p.polygon(quad[:], Shade(col, normal)); ok {
			out = append(out, poly)
		}
	}
	return out
}

// FlatQuad appends an upward-facing quad, e.g. water, when the camera is above it
func (p *Projector) FlatQuad(center mgl64.Vec3, halfX, halfZ float64, col color.RGBA, out []Polygon) []Polygon {
	if p.eye.Y() <= center.Y() {
		return out
	}
	quad := []mgl64.Vec3{
		center.Add(mgl64.Vec3{-halfX, 0, -halfZ}),
		center.Add(mgl64.Vec3{halfX, 0, -halfZ}),
		center.Add(mgl64.Vec3{halfX, 0, halfZ}),
		center.Add(mgl64.Vec3{-halfX, 0, halfZ}),
	}
	if poly, ok := p.polygon(quad, col); ok {
		out = append(out, poly)
	}
	return out
}

// MeshTriangles appends the camera-facing triangles of an indexed mesh.
// xf places model-space positions in the world.
func (p *Projector) MeshTriangles(positions []mgl64.Vec3, indices []int, xf func(mgl64.Vec3) mgl64.Vec3, col color.RGBA, out []Polygon) []Polygon {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a >= len(positions) || b >= len(positions) || c >= len(positions) {
			continue
		}
		tri := []mgl64.Vec3{xf(positions[a]), xf(positions[b]), xf(positions[c])}
		normal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
		if normal.Dot(tri[0].Sub(p.eye)) >= 0 {
			continue
		}
		if poly, ok := p.polygon(tri, Shade(col, normal)); ok {
			out = append(out, poly)
		}
	}
	return out
}

// polygon clips world points against the near plane and projects the rest
func (p *Projector) polygon(world []mgl64.Vec3, col color.RGBA) (Polygon, bool) {
	var in, clipped [maxPolyPoints]mgl64.Vec3
	n := 0
	depth := 0.0
	for _, pt := range world {
		v := p.view.Mul4x1(pt.Vec4(1)).Vec3()
		in[n] = v
		n++
		depth -= v.Z()
	}
	depth /= float64(len(world))

	// Sutherland-Hodgman against z = -near
	m := 0
	for i := 0; i < n; i++ {
		cur, next := in[i], in[(i+1)%n]
		curIn, nextIn := -cur.Z() >= p.near, -next.Z() >= p.near
		if curIn && m < maxPolyPoints {
			clipped[m] = cur
			m++
		}
		if curIn != nextIn && m < maxPolyPoints {
			t := (-p.near - cur.Z()) / (next.Z() - cur.Z())
			clipped[m] = cur.Add(next.Sub(cur).Mul(t))
			m++
		}
	}
	if m < 3 {
		return Polygon{}, false
	}

	poly := Polygon{N: m, Depth: depth, Color: col}
	for i := 0; i < m; i++ {
		clip := p.proj.Mul4x1(clipped[i].Vec4(1))
		if clip.W() <= 0 {
			return Polygon{}, false
		}
		x := (clip.X()/clip.W() + 1) / 2 * p.width
		y := (1 - clip.Y()/clip.W()) / 2 * p.height
		poly.Pts[i] = [2]float32{float32(x), float32(y)}
	}
	return poly, true
}

// HorizonY is the screen row of the ground plane's far edge straight ahead,
// clamped to the screen. Above it is sky.
func (p *Projector) HorizonY(forward mgl64.Vec3, far float64) float64 {
	flat := mgl64.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() < 1e-9 {
		if forward.Y() < 0 {
			return 0
		}
		return p.height
	}
	pt := p.eye.Add(flat.Normalize().Mul(far * 0.95))
	pt[1] = 0
	_, y, ok := p.Project(pt)
	if !ok {
		return 0
	}
	return math.Max(0, math.Min(p.height, y))
}

// SortPolygons orders polygons far to near for painter's drawing
func SortPolygons(polys []Polygon) {
	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
}

// Shade darkens col by how far normal turns away from the light
func Shade(col color.RGBA, normal mgl64.Vec3) color.RGBA {
	if normal.Len() < 1e-9 {
		return col
	}
	k := 0.55 + 0.45*math.Max(0, normal.Normalize().Dot(lightDir))
	return color.RGBA{
		R: uint8(float64(col.R) * k),
		G: uint8(float64(col.G) * k),
		B: uint8(float64(col.B) * k),
		A: col.A,
	}
}
