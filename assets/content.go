package assets

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const PortfolioPath = "content/portfolio.yaml"

type About struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Education struct {
	Degree      string `yaml:"degree"`
	University  string `yaml:"university"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

type Experience struct {
	Company     string `yaml:"company"`
	Role        string `yaml:"role"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

// Entry is a titled link, used for projects and achievements
type Entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type Track struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// ChatScript holds the assistant's canned replies. Opened takes one %s for the menu label.
type ChatScript struct {
	Greeting string `yaml:"greeting"`
	Help     string `yaml:"help"`
	Opened   string `yaml:"opened"`
}

// Portfolio is the text shown by the overlays and the chat assistant
type Portfolio struct {
	Name         string       `yaml:"name"`
	About        About        `yaml:"about"`
	Education    []Education  `yaml:"education"`
	Experience   []Experience `yaml:"experience"`
	Projects     []Entry      `yaml:"projects"`
	Achievements []Entry      `yaml:"achievements"`
	Music        Track        `yaml:"music"`
	Chat         ChatScript   `yaml:"chat"`
}

// LoadPortfolio decodes a portfolio YAML file and fills in missing chat replies
func LoadPortfolio(fsys fs.FS, path string) (*Portfolio, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio %s: %w", path, err)
	}
	return ParsePortfolio(data)
}

func ParsePortfolio(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	if p.Chat.Greeting == "" {
		p.Chat.Greeting = "Hi! Need help navigating my portfolio?"
	}
	if p.Chat.Help == "" {
		p.Chat.Help = "Try asking about my music, education, experience, projects or achievements."
	}
	if p.Chat.Opened == "" {
		p.Chat.Opened = "Opening %s."
	}
	return &p, nil
}
