package view

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projector maps world points to screen pixels for one camera pose
type Projector struct {
	viewProj      mgl64.Mat4
	view          mgl64.Mat4
	proj          mgl64.Mat4
	eye           mgl64.Vec3
	width, height float64
	near          float64
}

// NewProjector builds a perspective projection. fovDeg is the vertical field of view.
func NewProjector(eye mgl64.Vec3, rot mgl64.Quat, fovDeg, near, far float64, width, height int) *Projector {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	aspect := float64(width) / float64(height)
	proj := mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, near, far)
	view := rot.Conjugate().Mat4().Mul4(mgl64.Translate3D(-eye.X(), -eye.Y(), -eye.Z()))
	return &Projector{
		viewProj: proj.Mul4(view),
		view:     view,
		proj:     proj,
		eye:      eye,
		width:    float64(width),
		height:   float64(height),
		near:     near,
	}
}

// Eye is the camera position the projection was built from
func (p *Projector) Eye() mgl64.Vec3 {
	return p.eye
}

// Depth is the distance in front of the camera along its view axis.
// Negative values are behind the camera.
func (p *Projector) Depth(pt mgl64.Vec3) float64 {
	return -p.view.Mul4x1(pt.Vec4(1)).Z()
}

// Project returns the screen position of pt. ok is false when pt is behind the near plane.
func (p *Projector) Project(pt mgl64.Vec3) (x, y float64, ok bool) {
	if p.Depth(pt) < p.near {
		return 0, 0, false
	}
	clip := p.viewProj.Mul4x1(pt.Vec4(1))
	if clip.W() == 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * p.width, (1 - ndcY) / 2 * p.height, true
}

// Box is an oriented box resting on the ground, rotated by Yaw around +Y
type Box struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
	Yaw         float64
}

// Corners returns the eight world-space corners, bottom face first
func (b Box) Corners() [8]mgl64.Vec3 {
	rot := mgl64.QuatRotate(b.Yaw, mgl64.Vec3{0, 1, 0})
	h := b.HalfExtents
	var out [8]mgl64.Vec3
	i := 0
	for _, sy := range []float64{-1, 1} {
		for _, s := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			local := mgl64.Vec3{s[0] * h.X(), sy * h.Y(), s[1] * h.Z()}
			out[i] = b.Center.Add(rot.Rotate(local))
			i++
		}
	}
	return out
}

// ScreenRect returns the bounding rectangle of the projected box and the depth of its centre.
// ok is false if any corner is behind the camera.
func (p *Projector) ScreenRect(b Box) (r image.Rectangle, depth float64, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range b.Corners() {
		x, y, visible := p.Project(c)
		if !visible {
			return image.Rectangle{}, 0, false
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	r = image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r, p.Depth(b.Center), true
}

// Pick returns the index of the nearest box whose screen rectangle contains (x, y), or -1
func (p *Projector) Pick(boxes []Box, x, y int) int {
	best, bestDepth := -1, math.Inf(1)
	pt := image.Pt(x, y)
	for i, b := range boxes {
		r, depth, ok := p.ScreenRect(b)
		if !ok || !pt.In(r) {
			continue
		}
		if depth < bestDepth {
			best, bestDepth = i, depth
		}
	}
	return best
}
