package factory

import (
	"github.com/mohinem/portfolio3d/archetypes"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	"github.com/yohamta/donburi"
)

// CreateContent stores the portfolio text and returns the music building's default track
func CreateContent(w donburi.World, portfolio *assets.Portfolio) components.MusicContent {
	entry := archetypes.Content.Spawn(w)
	if portfolio == nil {
		return components.MusicContent{}
	}
	components.Content.SetValue(entry, *portfolio)
	return components.MusicContent{
		Title:       portfolio.Music.Title,
		Description: portfolio.Music.Description,
		TrackURL:    portfolio.Music.URL,
	}
}

// CreateEngineSound adds the engine pitch state
func CreateEngineSound(w donburi.World, engine components.EngineSoundData) *donburi.Entry {
	entry := archetypes.EngineSound.Spawn(w)
	components.EngineSound.SetValue(entry, engine)
	return entry
}
