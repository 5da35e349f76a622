package systems

import (
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// OpenMusicPlayer shows the music overlay with content, or the default track when nil
func OpenMusicPlayer(w donburi.World, content *components.MusicContent) {
	player := getOrCreateMusicPlayer(w)
	if content != nil {
		player.Content = *content
	} else {
		player.Content = player.Default
	}
	OpenMenu(w, cfg.MenuMusic)
}

func CloseMusicPlayer(w donburi.World) {
	CloseMenu(w, cfg.MenuMusic)
}

// SetDefaultTrack sets what the music building plays
func SetDefaultTrack(w donburi.World, content components.MusicContent) {
	player := getOrCreateMusicPlayer(w)
	player.Default = content
	if !player.Open {
		player.Content = content
	}
}

func MusicPlayerOf(w donburi.World) *components.MusicPlayerData {
	return getOrCreateMusicPlayer(w)
}

func getOrCreateMusicPlayer(w donburi.World) *components.MusicPlayerData {
	entry, ok := components.MusicPlayer.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.MusicPlayer))
	}
	return components.MusicPlayer.Get(entry)
}
