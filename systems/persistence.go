package systems

import (
	"encoding/json"
	"sort"

	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const (
	settingsItem = "settings"
	visitedItem  = "visited"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	EngineVolume  float64 `json:"engineVolume"`
	Muted         bool    `json:"muted"`
	Fullscreen    bool    `json:"fullscreen"`
	ChatMinimized bool    `json:"chatMinimized"`
}

// itemStore is the subset of gdata.Manager persistence relies on
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. No saved settings is (nil, nil).
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("could not serialize settings")
		return err
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// ApplySavedSettings copies loaded settings into the scene and audio config
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	settings := getOrCreateSettings(w)
	if saved == nil {
		return
	}
	settings.EngineVolume = saved.EngineVolume
	settings.Muted = saved.Muted || cfg.Audio.Muted
	settings.Fullscreen = saved.Fullscreen || cfg.C.Fullscreen
	settings.ChatMinimized = saved.ChatMinimized

	chat := getOrCreateChat(w)
	chat.Minimized = saved.ChatMinimized
	chat.Version++
}

// SaveDirtySettings writes the settings component back when it changed
func SaveDirtySettings(w donburi.World) {
	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	_ = SaveSettings(&SavedSettings{
		EngineVolume:  settings.EngineVolume,
		Muted:         settings.Muted,
		Fullscreen:    settings.Fullscreen,
		ChatMinimized: settings.ChatMinimized,
	})
}

// LoadVisited returns the menu keys of buildings opened in earlier sessions
func LoadVisited() map[string]bool {
	visited := map[string]bool{}
	if store == nil {
		return visited
	}
	data, err := store.LoadItem(visitedItem)
	if err != nil || len(data) == 0 {
		return visited
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		logging.Logger.Warn().Err(err).Msg("could not parse visited buildings")
		return visited
	}
	for _, k := range keys {
		visited[k] = true
	}
	return visited
}

func markVisited(kind cfg.MenuKind) {
	if store == nil {
		return
	}
	visited := LoadVisited()
	if visited[kind.Key()] {
		return
	}
	visited[kind.Key()] = true

	keys := make([]string, 0, len(visited))
	for k := range visited {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data, err := json.Marshal(keys)
	if err != nil {
		return
	}
	if err := store.SaveItem(visitedItem, data); err != nil {
		logging.Logger.Warn().Err(err).Str("menu", kind.Key()).Msg("could not save visited building")
	}
}

func markSettingsDirty(w donburi.World, apply func(s *components.SettingsData)) {
	settings := getOrCreateSettings(w)
	apply(settings)
	settings.Dirty = true
}

// SetMuted toggles engine audio and queues a settings save
func SetMuted(w donburi.World, muted bool) {
	markSettingsDirty(w, func(s *components.SettingsData) { s.Muted = muted })
}

// SetFullscreen records the fullscreen choice; the scene applies it to the window
func SetFullscreen(w donburi.World, fullscreen bool) {
	markSettingsDirty(w, func(s *components.SettingsData) { s.Fullscreen = fullscreen })
}

func SettingsOf(w donburi.World) *components.SettingsData {
	return getOrCreateSettings(w)
}

func getOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			EngineVolume: cfg.Audio.EngineVolume,
			Muted:        cfg.Audio.Muted,
			Fullscreen:   cfg.C.Fullscreen,
		})
	}
	return components.Settings.Get(entry)
}
