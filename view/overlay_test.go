package view

import (
	"testing"

	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "   ", 10, nil},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks at spaces", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word alone", "a supercalifragilistic b", 5, []string{"a", "supercalifragilistic", "b"}},
		{"collapses whitespace", "a \n\t b", 10, []string{"a b"}},
		{"no width", "one two", 0, []string{"one two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestBuildOverlay_EveryMenuHasContent(t *testing.T) {
	portfolio, err := assets.LoadPortfolio(assets.FS(), assets.PortfolioPath)
	require.NoError(t, err)
	music := components.MusicContent{Title: portfolio.Music.Title, TrackURL: portfolio.Music.URL}

	for _, kind := range cfg.MenuKinds {
		t.Run(kind.Key(), func(t *testing.T) {
			o := BuildOverlay(kind, portfolio, music, 60)
			assert.NotEmpty(t, o.Title)
			assert.NotEmpty(t, o.Sections)
			for _, s := range o.Sections {
				for _, line := range s.Lines {
					assert.LessOrEqual(t, len([]rune(line)), 60, line)
				}
			}
		})
	}
}

func TestBuildOverlay_Projects(t *testing.T) {
	p := &assets.Portfolio{Projects: []assets.Entry{{Name: "Voronoi", Description: "diagrams", URL: "https://example.com/v"}}}

	o := BuildOverlay(cfg.MenuProjects, p, components.MusicContent{}, 40)
	assert.Equal(t, "Projects", o.Title)
	require.Len(t, o.Sections, 1)
	assert.Equal(t, Section{Heading: "Voronoi", Lines: []string{"diagrams"}, URL: "https://example.com/v"}, o.Sections[0])
}

func TestBuildOverlay_Education(t *testing.T) {
	p := &assets.Portfolio{Education: []assets.Education{{Degree: "BSc", University: "Pune"}}}

	o := BuildOverlay(cfg.MenuEducation, p, components.MusicContent{}, 40)
	require.Len(t, o.Sections, 1)
	assert.Equal(t, "BSc", o.Sections[0].Heading)
	assert.Equal(t, []string{"Pune"}, o.Sections[0].Lines)
}

func TestBuildOverlay_MusicWithoutTrack(t *testing.T) {
	o := BuildOverlay(cfg.MenuMusic, nil, components.MusicContent{}, 40)
	assert.Equal(t, "Music", o.Title)
	require.Len(t, o.Sections, 1)
	assert.Empty(t, o.Sections[0].URL)
}

func TestBuildOverlay_NoPortfolio(t *testing.T) {
	o := BuildOverlay(cfg.MenuAbout, nil, components.MusicContent{}, 40)
	assert.Equal(t, "About Me", o.Title)
	assert.Empty(t, o.Sections)
}
