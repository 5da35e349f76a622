package factory

import (
	"errors"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/physics"
	"github.com/mohinem/portfolio3d/tags"
	"github.com/yohamta/donburi"
)

// CreateBuilding spawns one themed building resting on the ground, with its
// trigger Idle and a floating label above the roof.
func CreateBuilding(w donburi.World, pw *physics.World, spot cfg.BuildingSpot, visited bool) *donburi.Entry {
	building := archetypes.Building.Spawn(w)

	col, err := assets.ParseHexColor(spot.ColorHex)
	if err != nil {
		col = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	size := mgl64.Vec3{spot.W, spot.H, spot.D}

	components.Building.SetValue(building, components.BuildingData{
		Menu:    spot.Menu,
		Label:   spot.Label,
		Size:    size,
		Yaw:     spot.Yaw,
		Color:   col,
		Trigger: components.TriggerIdle,
		Policy:  cfg.Collision.ResetPolicy,
		Visited: visited,
	})
	components.FloatingLabel.SetValue(building, components.FloatingLabelData{
		Text:   spot.Label,
		Height: spot.H + cfg.UI.LabelHeight,
	})

	if pw != nil {
		body := pw.AddBody(physics.BodyDesc{
			Kind:        physics.Fixed,
			Tag:         tags.ResolvBuilding,
			Position:    mgl64.Vec3{spot.X, spot.Y + spot.H/2, spot.Z},
			Rotation:    mgl64.QuatRotate(spot.Yaw, mgl64.Vec3{0, 1, 0}),
			HalfExtents: size.Mul(0.5),
			Friction:    1,
			Data:        building,
		})
		components.Body.SetValue(building, components.BodyData{Body: body})
	}
	return building
}

// BuildingSpots converts a map layout into building placements. Without a
// layout, or with no buildings in it, the built-in table is used.
func BuildingSpots(layout *assets.Layout) []cfg.BuildingSpot {
	if layout == nil || len(layout.Buildings) == 0 {
		return cfg.DefaultBuildings
	}

	spots := make([]cfg.BuildingSpot, 0, len(layout.Buildings))
	for _, b := range layout.Buildings {
		kind, ok := cfg.ParseMenuKind(b.Menu)
		if !ok {
			logging.Logger.Warn().Str("building", b.Name).Str("menu", b.Menu).Msg("unknown menu in layout, skipping")
			continue
		}
		spots = append(spots, cfg.BuildingSpot{
			Menu:     kind,
			Label:    b.Label,
			X:        b.X,
			Z:        b.Z,
			Yaw:      b.Yaw,
			W:        b.W,
			H:        b.Height,
			D:        b.D,
			ColorHex: b.Color,
		})
	}
	if len(spots) == 0 {
		return cfg.DefaultBuildings
	}
	return spots
}

// CreateBuildings spawns every building from the layout
func CreateBuildings(w donburi.World, pw *physics.World, layout *assets.Layout, visited map[string]bool) []*donburi.Entry {
	var entries []*donburi.Entry
	for _, spot := range BuildingSpots(layout) {
		entries = append(entries, CreateBuilding(w, pw, spot, visited[spot.Menu.Key()]))
	}
	return entries
}

// LoadLayout reads the village map, falling back to the built-in buildings
// when the map has none.
func LoadLayout(path string) *assets.Layout {
	layout, err := assets.NewLayoutLoader(assets.FS()).Load(path)
	switch {
	case errors.Is(err, assets.ErrNoLayout):
		logging.Logger.Warn().Str("path", path).Msg("layout has no buildings, using defaults")
	case err != nil:
		logging.Logger.Warn().Err(err).Str("path", path).Msg("could not load layout, using defaults")
		return nil
	}
	return layout
}
