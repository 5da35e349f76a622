package view

import (
	"strings"

	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
)

// Section is one block of an overlay: a heading, body lines and an optional link
type Section struct {
	Heading string
	Lines   []string
	URL     string
}

// Overlay is the text content of one menu
type Overlay struct {
	Title    string
	Sections []Section
}

// BuildOverlay lays out the content for kind. Body text is wrapped to width runes.
func BuildOverlay(kind cfg.MenuKind, p *assets.Portfolio, music components.MusicContent, width int) Overlay {
	o := Overlay{Title: kind.Label()}
	if kind == cfg.MenuMusic {
		o.Title = "Music"
		if music.Title == "" {
			o.Sections = append(o.Sections, Section{Lines: []string{"Nothing to play yet."}})
			return o
		}
		o.Sections = append(o.Sections, Section{
			Heading: music.Title,
			Lines:   Wrap(music.Description, width),
			URL:     music.TrackURL,
		})
		return o
	}
	if p == nil {
		return o
	}

	switch kind {
	case cfg.MenuAbout:
		if p.About.Title != "" {
			o.Title = p.About.Title
		}
		for _, para := range p.About.Paragraphs {
			o.Sections = append(o.Sections, Section{Lines: Wrap(para, width)})
		}
	case cfg.MenuEducation:
		for _, e := range p.Education {
			lines := Wrap(joinNonEmpty(" | ", e.University, e.Duration), width)
			lines = append(lines, Wrap(e.Description, width)...)
			o.Sections = append(o.Sections, Section{Heading: e.Degree, Lines: lines})
		}
	case cfg.MenuExperience:
		for _, e := range p.Experience {
			lines := Wrap(joinNonEmpty(" | ", e.Role, e.Duration), width)
			lines = append(lines, Wrap(e.Description, width)...)
			o.Sections = append(o.Sections, Section{Heading: e.Company, Lines: lines})
		}
	case cfg.MenuProjects:
		o.Sections = entrySections(p.Projects, width)
	case cfg.MenuAchievements:
		o.Sections = entrySections(p.Achievements, width)
	}
	return o
}

func entrySections(entries []assets.Entry, width int) []Section {
	out := make([]Section, 0, len(entries))
	for _, e := range entries {
		out = append(out, Section{Heading: e.Name, Lines: Wrap(e.Description, width), URL: e.URL})
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Wrap breaks text into lines of at most width runes at spaces. Words longer
// than width get a line of their own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, w := range words {
		n := len([]rune(w))
		if curLen > 0 && curLen+1+n > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(w)
		curLen += n
	}
	return append(lines, cur.String())
}
