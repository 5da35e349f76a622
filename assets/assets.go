package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	//go:embed all:maps all:models all:content
	assetFS embed.FS
)

// FS exposes the embedded asset tree
func FS() fs.FS {
	return assetFS
}

// Bundle is everything the village scene needs decoded before it starts
type Bundle struct {
	Portfolio *Portfolio
	Layout    *Layout
	Car       *Model
}

// LoadStep is one named unit of work for the loading screen
type LoadStep struct {
	Name string
	Run  func(b *Bundle) error
}

// LoadSteps returns the decode steps in order. The loading scene runs one per frame.
func LoadSteps(layoutPath, modelPath string) []LoadStep {
	return []LoadStep{
		{Name: "content", Run: func(b *Bundle) error {
			p, err := LoadPortfolio(assetFS, PortfolioPath)
			b.Portfolio = p
			return err
		}},
		{Name: "village", Run: func(b *Bundle) error {
			l, err := NewLayoutLoader(assetFS).Load(layoutPath)
			b.Layout = l
			return err
		}},
		{Name: "car", Run: func(b *Bundle) error {
			m, err := LoadModel(assetFS, modelPath)
			b.Car = m
			return err
		}},
	}
}

// LoadAll runs every step at once, for callers that skip the loading screen
func LoadAll(layoutPath, modelPath string) (*Bundle, error) {
	b := &Bundle{}
	for _, step := range LoadSteps(layoutPath, modelPath) {
		if err := step.Run(b); err != nil {
			return b, fmt.Errorf("load %s: %w", step.Name, err)
		}
	}
	return b, nil
}

// ParseHexColor parses "#rrggbb" or "#rgb", with or without the hash, into an opaque colour
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
