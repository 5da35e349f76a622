package factory

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBuildingSpots_Fallback(t *testing.T) {
	assert.Equal(t, cfg.DefaultBuildings, BuildingSpots(nil))
	assert.Equal(t, cfg.DefaultBuildings, BuildingSpots(&assets.Layout{}))

	unknown := &assets.Layout{Buildings: []assets.BuildingPlacement{{Name: "garage", Menu: "garage"}}}
	assert.Equal(t, cfg.DefaultBuildings, BuildingSpots(unknown))
}

func TestBuildingSpots_FromLayout(t *testing.T) {
	layout := &assets.Layout{Buildings: []assets.BuildingPlacement{
		{Name: "studio", Menu: "music", Label: "Music", X: 8, Z: 2, W: 2.4, D: 2.4, Height: 2.6, Yaw: math.Pi / 2, Color: "#8e44ad"},
		{Name: "shed", Menu: "garage"},
	}}

	spots := BuildingSpots(layout)
	require.Len(t, spots, 1)
	assert.Equal(t, cfg.MenuMusic, spots[0].Menu)
	assert.Equal(t, 2.6, spots[0].H)
	assert.Equal(t, math.Pi/2, spots[0].Yaw)
}

func TestLoadLayout_Embedded(t *testing.T) {
	layout := LoadLayout(cfg.Village.LayoutPath)
	require.NotNil(t, layout)
	assert.Len(t, BuildingSpots(layout), len(layout.Buildings))
	assert.NotEmpty(t, layout.Water)
}

func TestLoadLayout_Missing(t *testing.T) {
	assert.Nil(t, LoadLayout("maps/nowhere.tmx"))
}

func TestCreateBuilding(t *testing.T) {
	w := donburi.NewWorld()
	_, pw := CreatePhysicsWorld(w)
	spot := cfg.BuildingSpot{Menu: cfg.MenuProjects, Label: "Projects", X: 10, Z: 10, W: 2.6, H: 3, D: 2.6, ColorHex: "#c0392b"}

	entry := CreateBuilding(w, pw, spot, true)

	assert.True(t, entry.HasComponent(tags.Building))
	building := components.Building.Get(entry)
	assert.Equal(t, components.TriggerIdle, building.Trigger)
	assert.True(t, building.Visited)
	assert.Equal(t, uint8(0xc0), building.Color.R)

	body := components.Body.Get(entry).Body
	require.NotNil(t, body)
	assert.Equal(t, mgl64.Vec3{10, 1.5, 10}, body.Translation())
	assert.Equal(t, 4.0, components.FloatingLabel.Get(entry).Height)
}

func TestCreateBuilding_BadColor(t *testing.T) {
	w := donburi.NewWorld()
	entry := CreateBuilding(w, nil, cfg.BuildingSpot{Menu: cfg.MenuAbout, W: 1, H: 1, D: 1, ColorHex: "teal"}, false)

	building := components.Building.Get(entry)
	assert.Equal(t, uint8(200), building.Color.G)
	assert.False(t, entry.HasComponent(components.Body) && components.Body.Get(entry).Body != nil)
}

func decorPositions(w donburi.World) []mgl64.Vec3 {
	var out []mgl64.Vec3
	components.Decor.Each(w, func(entry *donburi.Entry) {
		out = append(out, components.Decor.Get(entry).Position)
	})
	return out
}

func TestCreateVillage_DeterministicBySeed(t *testing.T) {
	spots := cfg.DefaultBuildings

	build := func(seed int64) (VillageStats, []mgl64.Vec3) {
		w := donburi.NewWorld()
		stats := CreateVillage(w, nil, nil, spots, seed)
		return stats, decorPositions(w)
	}

	statsA, a := build(7)
	statsB, b := build(7)
	_, c := build(8)

	assert.Equal(t, statsA, statsB)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, cfg.Village.CloudCount, statsA.Clouds)
	assert.Equal(t, cfg.Village.Mountains, statsA.Mountains)
}

func TestCreateVillage_KeepsClear(t *testing.T) {
	w := donburi.NewWorld()
	_, pw := CreatePhysicsWorld(w)
	layout := LoadLayout(cfg.Village.LayoutPath)
	require.NotNil(t, layout)
	spots := BuildingSpots(layout)

	stats := CreateVillage(w, pw, layout, spots, 42)
	assert.Equal(t, len(layout.Water), stats.Water)

	components.Decor.Each(w, func(entry *donburi.Entry) {
		decor := components.Decor.Get(entry)
		if decor.Kind != components.DecorTree && decor.Kind != components.DecorAnimal {
			return
		}
		pos := decor.Position
		spawn := cfg.Vehicle.Spawn
		assert.GreaterOrEqual(t, math.Hypot(pos.X()-spawn.X(), pos.Z()-spawn.Z()), cfg.Village.ClearRadius)
		for _, water := range layout.Water {
			assert.False(t, water.Contains(pos.X(), pos.Z()), "decor in water at %v", pos)
		}
		for _, s := range spots {
			reach := cfg.Village.ClearRadius + math.Max(s.W, s.D)/2
			inside := math.Abs(pos.X()-s.X) < reach && math.Abs(pos.Z()-s.Z) < reach
			assert.False(t, inside, "decor at %v crowds %s", pos, s.Label)
		}
		body := components.Body.Get(entry).Body
		require.NotNil(t, body)
		assert.Equal(t, physics.Fixed, body.(*physics.Body).Kind())
	})
}

func TestCreateVehicle_WithoutWorld(t *testing.T) {
	w := donburi.NewWorld()
	entry, body := CreateVehicle(w, nil, mgl64.Vec3{0.5, 0.25, 1})
	assert.Nil(t, body)
	assert.Nil(t, components.Body.Get(entry).Body)

	_, pw := CreatePhysicsWorld(w)
	attached := AttachVehicleBody(entry, pw)
	require.NotNil(t, attached)
	assert.Equal(t, cfg.Vehicle.Spawn, attached.Translation())
}

func TestCreateCamera_AimsAtSpawn(t *testing.T) {
	w := donburi.NewWorld()
	entry := CreateCamera(w)
	cam := components.ChaseCamera.Get(entry)

	want := cfg.Vehicle.Spawn.Sub(cfg.Camera.Start).Normalize()
	got := cam.Forward()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}
