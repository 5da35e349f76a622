package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"

	"github.com/lafriks/go-tiled"
)

// ErrNoLayout is returned when a map has no buildings object group
var ErrNoLayout = errors.New("layout has no buildings")

// BuildingPlacement is one building from the map, in world units.
// X/Z are the footprint centre; the ground plane is y=0.
type BuildingPlacement struct {
	Name   string
	Menu   string
	Label  string
	X, Z   float64
	W, D   float64
	Height float64
	Yaw    float64 // radians
	Color  string
}

// Zone is an axis-aligned rectangle on the ground plane
type Zone struct {
	Name       string
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func (z Zone) Contains(x, zz float64) bool {
	return x >= z.MinX && x <= z.MaxX && zz >= z.MinZ && zz <= z.MaxZ
}

type Layout struct {
	Name       string
	Buildings  []BuildingPlacement
	DecorZones []Zone
	Water      []Zone
	// Half the map size in world units; the map is centred on the origin
	HalfWidth, HalfDepth float64
}

type LayoutLoader struct {
	fsys fs.FS
}

func NewLayoutLoader(fsys fs.FS) *LayoutLoader {
	return &LayoutLoader{fsys: fsys}
}

// Load reads a Tiled map. One tile is one world unit and the map centre is the origin.
func (l *LayoutLoader) Load(path string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("layout %s: tile size must be positive", path)
	}

	ppuX := float64(levelMap.TileWidth)
	ppuZ := float64(levelMap.TileHeight)
	layout := &Layout{
		Name:      path,
		HalfWidth: float64(levelMap.Width) / 2,
		HalfDepth: float64(levelMap.Height) / 2,
	}

	toZone := func(o *tiled.Object) Zone {
		return Zone{
			Name: o.Name,
			MinX: o.X/ppuX - layout.HalfWidth,
			MinZ: o.Y/ppuZ - layout.HalfDepth,
			MaxX: (o.X+o.Width)/ppuX - layout.HalfWidth,
			MaxZ: (o.Y+o.Height)/ppuZ - layout.HalfDepth,
		}
	}

	foundBuildings := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "buildings":
			foundBuildings = true
			for _, o := range og.Objects {
				class := o.Class
				if class == "" {
					class = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if class != "" && class != "building" {
					continue
				}
				menu := o.Properties.GetString("menu")
				if menu == "" {
					menu = o.Name
				}
				label := o.Properties.GetString("label")
				if label == "" {
					label = o.Name
				}
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = 3
				}
				layout.Buildings = append(layout.Buildings, BuildingPlacement{
					Name:   o.Name,
					Menu:   menu,
					Label:  label,
					X:      (o.X+o.Width/2)/ppuX - layout.HalfWidth,
					Z:      (o.Y+o.Height/2)/ppuZ - layout.HalfDepth,
					W:      o.Width / ppuX,
					D:      o.Height / ppuZ,
					Height: height,
					Yaw:    o.Properties.GetFloat("yaw") * math.Pi / 180,
					Color:  o.Properties.GetString("color"),
				})
			}
		case "decor":
			for _, o := range og.Objects {
				layout.DecorZones = append(layout.DecorZones, toZone(o))
			}
		case "water":
			for _, o := range og.Objects {
				layout.Water = append(layout.Water, toZone(o))
			}
		}
	}

	if !foundBuildings || len(layout.Buildings) == 0 {
		return layout, ErrNoLayout
	}

	// Stable order regardless of object ids
	sort.SliceStable(layout.Buildings, func(i, j int) bool {
		return layout.Buildings[i].Menu < layout.Buildings[j].Menu
	})
	return layout, nil
}
