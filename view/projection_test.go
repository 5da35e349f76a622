package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookAt mirrors the chase camera's no-roll aim
func lookAt(eye, target mgl64.Vec3) mgl64.Quat {
	dir := target.Sub(eye).Normalize()
	yaw := math.Atan2(-dir.X(), -dir.Z())
	pitch := math.Asin(dir.Y())
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}).Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0}))
}

func TestProject_TargetAtScreenCentre(t *testing.T) {
	eye := mgl64.Vec3{0, 5, 10}
	p := NewProjector(eye, lookAt(eye, mgl64.Vec3{}), 60, 0.1, 400, 1280, 720)

	x, y, ok := p.Project(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 640, x, 1e-6)
	assert.InDelta(t, 360, y, 1e-6)
	assert.InDelta(t, math.Sqrt(125), p.Depth(mgl64.Vec3{}), 1e-9)
}

func TestProject_BehindCamera(t *testing.T) {
	eye := mgl64.Vec3{0, 0, 0}
	p := NewProjector(eye, mgl64.QuatIdent(), 60, 0.1, 400, 800, 600)

	_, _, ok := p.Project(mgl64.Vec3{0, 0, 5})
	assert.False(t, ok)

	x, y, ok := p.Project(mgl64.Vec3{1, 1, -5})
	require.True(t, ok)
	assert.Greater(t, x, 400.0, "right of centre")
	assert.Less(t, y, 300.0, "above centre")
}

func TestBoxCorners_Yaw(t *testing.T) {
	b := Box{Center: mgl64.Vec3{0, 1, 0}, HalfExtents: mgl64.Vec3{2, 1, 1}, Yaw: math.Pi / 2}
	corners := b.Corners()

	for _, c := range corners {
		// After a quarter turn the long axis lies along Z
		assert.InDelta(t, 1, math.Abs(c.X()), 1e-9)
		assert.InDelta(t, 2, math.Abs(c.Z()), 1e-9)
	}
	assert.InDelta(t, 0, corners[0].Y(), 1e-9)
	assert.InDelta(t, 2, corners[7].Y(), 1e-9)
}

func TestPick_NearestWins(t *testing.T) {
	eye := mgl64.Vec3{0, 2, 10}
	p := NewProjector(eye, mgl64.QuatIdent(), 60, 0.1, 400, 1280, 720)

	boxes := []Box{
		{Center: mgl64.Vec3{0, 2, -20}, HalfExtents: mgl64.Vec3{3, 3, 3}},
		{Center: mgl64.Vec3{0, 2, 0}, HalfExtents: mgl64.Vec3{1, 1, 1}},
		{Center: mgl64.Vec3{0, 2, 20}, HalfExtents: mgl64.Vec3{1, 1, 1}}, // behind
	}

	assert.Equal(t, 1, p.Pick(boxes, 640, 360))
	assert.Equal(t, -1, p.Pick(boxes, 5, 5))
}
