package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

const (
	placementTries = 32
	mountainRing   = 150.0
	cloudSpread    = 50.0
)

var animalColors = []color.RGBA{
	{R: 240, G: 190, B: 170, A: 255},
	{R: 240, G: 220, B: 160, A: 255},
	{R: 230, G: 240, B: 170, A: 255},
	{R: 245, G: 200, B: 200, A: 255},
	{R: 250, G: 230, B: 190, A: 255},
}

// VillageStats counts what CreateVillage spawned
type VillageStats struct {
	Trees, Animals, Clouds, Mountains, Water int
}

// CreateVillage scatters seeded decoration around the buildings. Trees and
// animals get fixed bodies; clouds, mountains and water are scenery only.
func CreateVillage(w donburi.World, pw *physics.World, layout *assets.Layout, spots []cfg.BuildingSpot, seed int64) VillageStats {
	r := rand.New(rand.NewSource(seed))
	var stats VillageStats

	blocked := func(x, z float64) bool {
		if math.Hypot(x-cfg.Vehicle.Spawn.X(), z-cfg.Vehicle.Spawn.Z()) < cfg.Village.ClearRadius {
			return true
		}
		for _, s := range spots {
			reach := cfg.Village.ClearRadius + math.Max(s.W, s.D)/2
			if math.Abs(x-s.X) < reach && math.Abs(z-s.Z) < reach {
				return true
			}
		}
		if layout == nil {
			return false
		}
		for _, water := range layout.Water {
			if water.Contains(x, z) {
				return true
			}
		}
		if len(layout.DecorZones) == 0 {
			return false
		}
		for _, zone := range layout.DecorZones {
			if zone.Contains(x, z) {
				return false
			}
		}
		return true
	}

	place := func() (float64, float64, bool) {
		for i := 0; i < placementTries; i++ {
			x := (r.Float64() - 0.5) * 2 * cfg.Village.Radius
			z := (r.Float64() - 0.5) * 2 * cfg.Village.Radius
			if !blocked(x, z) {
				return x, z, true
			}
		}
		return 0, 0, false
	}

	for i := 0; i < cfg.Village.TreeCount; i++ {
		x, z, ok := place()
		if !ok {
			continue
		}
		trunkH := 2 + r.Float64()
		foliageH := 4 + r.Float64()*2
		parts := []components.DecorPart{
			{Center: mgl64.Vec3{0, trunkH / 2, 0}, HalfExtents: mgl64.Vec3{0.3, trunkH / 2, 0.3}, Color: cfg.Bark},
			{Center: mgl64.Vec3{0, trunkH + foliageH/2, 0}, HalfExtents: mgl64.Vec3{1.2, foliageH / 2, 1.2}, Color: cfg.Leaves},
		}
		createDecor(w, pw, components.DecorTree, mgl64.Vec3{x, 0, z}, parts)
		stats.Trees++
	}

	for i := 0; i < cfg.Village.AnimalCount; i++ {
		x, z, ok := place()
		if !ok {
			continue
		}
		parts := []components.DecorPart{
			{Center: mgl64.Vec3{0, 0.75, 0}, HalfExtents: mgl64.Vec3{0.75, 0.75, 0.75}, Color: animalColors[r.Intn(len(animalColors))]},
		}
		createDecor(w, pw, components.DecorAnimal, mgl64.Vec3{x, 0, z}, parts)
		stats.Animals++
	}

	for i := 0; i < cfg.Village.CloudCount; i++ {
		pos := mgl64.Vec3{
			(r.Float64() - 0.5) * 2 * cloudSpread,
			20 + r.Float64()*10,
			(r.Float64() - 0.5) * 2 * cloudSpread,
		}
		scale := 3 + r.Float64()*5
		parts := []components.DecorPart{
			{Center: mgl64.Vec3{}, HalfExtents: mgl64.Vec3{scale, scale * 0.5, scale * 0.7}, Color: cfg.Cloud},
			{Center: mgl64.Vec3{scale, scale, 0}, HalfExtents: mgl64.Vec3{scale * 0.7, scale * 0.4, scale * 0.6}, Color: cfg.Cloud},
			{Center: mgl64.Vec3{-scale, -scale * 0.5, scale}, HalfExtents: mgl64.Vec3{scale * 0.6, scale * 0.35, scale * 0.5}, Color: cfg.Cloud},
		}
		createDecor(w, nil, components.DecorCloud, pos, parts)
		stats.Clouds++
	}

	for i := 0; i < cfg.Village.Mountains; i++ {
		angle := 2 * math.Pi * float64(i) / float64(cfg.Village.Mountains)
		height := 20 + r.Float64()*20
		width := 25 + r.Float64()*15
		pos := mgl64.Vec3{math.Cos(angle) * mountainRing, 0, math.Sin(angle) * mountainRing}
		parts := []components.DecorPart{
			{Center: mgl64.Vec3{0, height / 2, 0}, HalfExtents: mgl64.Vec3{width / 2, height / 2, width / 2}, Color: cfg.Mountain},
		}
		createDecor(w, nil, components.DecorMountain, pos, parts)
		stats.Mountains++
	}

	if layout != nil {
		for _, water := range layout.Water {
			center := mgl64.Vec3{(water.MinX + water.MaxX) / 2, 0.01, (water.MinZ + water.MaxZ) / 2}
			half := mgl64.Vec3{(water.MaxX - water.MinX) / 2, 0, (water.MaxZ - water.MinZ) / 2}
			parts := []components.DecorPart{{HalfExtents: half, Color: cfg.Water}}
			createDecor(w, nil, components.DecorWater, center, parts)
			stats.Water++
		}
	}

	return stats
}

func createDecor(w donburi.World, pw *physics.World, kind components.DecorKind, pos mgl64.Vec3, parts []components.DecorPart) *donburi.Entry {
	decor := archetypes.Decor.Spawn(w)
	components.Decor.SetValue(decor, components.DecorData{
		Kind:     kind,
		Position: pos,
		Parts:    parts,
	})

	// The first part is the solid one
	if pw != nil && len(parts) > 0 {
		body := pw.AddBody(physics.BodyDesc{
			Kind:        physics.Fixed,
			Tag:         tags.ResolvDecor,
			Position:    pos.Add(parts[0].Center),
			Rotation:    mgl64.QuatIdent(),
			HalfExtents: parts[0].HalfExtents,
			Friction:    1,
			Data:        decor,
		})
		components.Body.SetValue(decor, components.BodyData{Body: body})
	}
	return decor
}
