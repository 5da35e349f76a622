package components

import "github.com/yohamta/donburi"

// MusicContent is what the music overlay shows
type MusicContent struct {
	Title       string
	Description string
	TrackURL    string
}

type MusicPlayerData struct {
	Open    bool
	Content MusicContent
	Default MusicContent
}

var MusicPlayer = donburi.NewComponentType[MusicPlayerData]()
