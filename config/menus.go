package config

// MenuKind identifies one informational overlay
type MenuKind int

const (
	MenuMusic MenuKind = iota
	MenuAbout
	MenuEducation
	MenuExperience
	MenuProjects
	MenuAchievements
	MenuCount // Must be last - used for array sizing
)

// MenuKinds lists every overlay in chat button order
var MenuKinds = []MenuKind{
	MenuMusic,
	MenuAbout,
	MenuEducation,
	MenuExperience,
	MenuProjects,
	MenuAchievements,
}

var menuKeys = [MenuCount]string{
	MenuMusic:        "music",
	MenuAbout:        "about",
	MenuEducation:    "education",
	MenuExperience:   "experience",
	MenuProjects:     "projects",
	MenuAchievements: "achievements",
}

var menuLabels = [MenuCount]string{
	MenuMusic:        "Play Music",
	MenuAbout:        "About Me",
	MenuEducation:    "Education",
	MenuExperience:   "Experience",
	MenuProjects:     "Projects",
	MenuAchievements: "Achievements",
}

// Key returns the stable identifier used in layouts and saved data
func (k MenuKind) Key() string {
	if k < 0 || k >= MenuCount {
		return ""
	}
	return menuKeys[k]
}

// Label returns the chat button text
func (k MenuKind) Label() string {
	if k < 0 || k >= MenuCount {
		return ""
	}
	return menuLabels[k]
}

func (k MenuKind) String() string {
	return k.Key()
}

// ParseMenuKind looks up a menu by its key
func ParseMenuKind(key string) (MenuKind, bool) {
	for _, k := range MenuKinds {
		if menuKeys[k] == key {
			return k, true
		}
	}
	return 0, false
}

// ChatKeywords maps each menu to the words that route a typed message to it.
// Matching is a case-insensitive substring test in MenuKinds order.
var ChatKeywords = map[MenuKind][]string{
	MenuMusic:        {"music", "song", "track", "edm", "listen"},
	MenuAbout:        {"about me", "who are you", "yourself", "bio", "hire", "contact"},
	MenuEducation:    {"education", "study", "studied", "degree", "university", "master", "bachelor"},
	MenuExperience:   {"experience", "work", "job", "career", "research"},
	MenuProjects:     {"project", "github", "code", "portfolio"},
	MenuAchievements: {"achievement", "award", "hackathon", "codeforces", "rating", "won"},
}

// BuildingSpot is the default placement of a themed building
type BuildingSpot struct {
	Menu     MenuKind
	Label    string
	X, Y, Z  float64
	Yaw      float64 // Radians around +Y
	W, H, D  float64 // Full box size
	ColorHex string
}

// DefaultBuildings is used when the village layout has no buildings layer
var DefaultBuildings = []BuildingSpot{
	{Menu: MenuMusic, Label: "Music", X: 8, Y: 0, Z: 2, Yaw: 1.5707963267948966, W: 2.4, H: 2.6, D: 2.4, ColorHex: "#8e44ad"},
	{Menu: MenuAbout, Label: "About Me", X: 0, Y: 0, Z: 10, Yaw: 3.141592653589793, W: 3, H: 3.2, D: 2.6, ColorHex: "#e67e22"},
	{Menu: MenuEducation, Label: "Education", X: -3, Y: 0, Z: 8, Yaw: 3.141592653589793, W: 2, H: 2.8, D: 2, ColorHex: "#2980b9"},
	{Menu: MenuExperience, Label: "Experience", X: -6, Y: 0, Z: 1.8, Yaw: 3.141592653589793, W: 2.2, H: 3.4, D: 2.2, ColorHex: "#16a085"},
	{Menu: MenuProjects, Label: "Projects", X: 10, Y: 0, Z: 10, Yaw: 3.141592653589793, W: 2.6, H: 3, D: 2.6, ColorHex: "#c0392b"},
}
