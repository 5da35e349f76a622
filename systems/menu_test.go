package systems

import (
	"testing"

	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestOpenMenu_ExclusiveClosesOthers(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ExclusiveMenus = true
	w := donburi.NewWorld()

	OpenMenu(w, cfg.MenuAbout)
	OpenMenu(w, cfg.MenuProjects)

	menus := MenuStateOf(w)
	assert.False(t, menus.IsOpen(cfg.MenuAbout))
	assert.True(t, menus.IsOpen(cfg.MenuProjects))
	assert.Equal(t, []cfg.MenuKind{cfg.MenuProjects}, menus.Stack)
}

func TestOpenMenu_NonExclusiveStacks(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ExclusiveMenus = false
	w := donburi.NewWorld()

	OpenMenu(w, cfg.MenuAbout)
	OpenMenu(w, cfg.MenuProjects)
	OpenMenu(w, cfg.MenuAbout)

	menus := MenuStateOf(w)
	assert.True(t, menus.IsOpen(cfg.MenuAbout))
	assert.True(t, menus.IsOpen(cfg.MenuProjects))
	top, ok := menus.Top()
	require.True(t, ok)
	assert.Equal(t, cfg.MenuAbout, top)

	require.True(t, CloseTopMenu(w))
	top, _ = menus.Top()
	assert.Equal(t, cfg.MenuProjects, top)
	require.True(t, CloseTopMenu(w))
	assert.False(t, CloseTopMenu(w))
	assert.False(t, menus.AnyOpen())
}

func TestOpenMenu_IgnoresUnknownKind(t *testing.T) {
	w := donburi.NewWorld()
	OpenMenu(w, cfg.MenuCount)
	OpenMenu(w, -1)
	assert.False(t, MenuStateOf(w).AnyOpen())
}

func TestOpenMenu_ReopenKeepsSingleEntry(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ExclusiveMenus = false
	w := donburi.NewWorld()

	OpenMenu(w, cfg.MenuEducation)
	before := MenuStateOf(w).Version
	OpenMenu(w, cfg.MenuEducation)

	menus := MenuStateOf(w)
	assert.Equal(t, []cfg.MenuKind{cfg.MenuEducation}, menus.Stack)
	assert.Greater(t, menus.Version, before)
}

func TestMusicMenu_UsesDefaultTrack(t *testing.T) {
	w := donburi.NewWorld()
	track := components.MusicContent{Title: "Beginning", TrackURL: "https://example.com/beginning"}
	SetDefaultTrack(w, track)

	OpenMenu(w, cfg.MenuMusic)
	player := MusicPlayerOf(w)
	assert.True(t, player.Open)
	assert.Equal(t, track, player.Content)

	CloseMenu(w, cfg.MenuMusic)
	assert.False(t, player.Open)
	assert.Equal(t, components.MusicContent{}, player.Content)
}

func TestMusicPlayer_CustomContent(t *testing.T) {
	w := donburi.NewWorld()
	SetDefaultTrack(w, components.MusicContent{Title: "Beginning"})

	custom := components.MusicContent{Title: "Other"}
	OpenMusicPlayer(w, &custom)
	assert.Equal(t, "Other", MusicPlayerOf(w).Content.Title)
	assert.True(t, MenuStateOf(w).IsOpen(cfg.MenuMusic))

	CloseMusicPlayer(w)
	OpenMusicPlayer(w, nil)
	assert.Equal(t, "Beginning", MusicPlayerOf(w).Content.Title)
}

func TestCloseMenu_ResetsChat(t *testing.T) {
	w := donburi.NewWorld()
	ChatSelect(w, cfg.MenuExperience)
	chat := ChatOf(w)
	require.True(t, chat.HasActive)

	CloseMenu(w, cfg.MenuExperience)
	assert.False(t, chat.HasActive)
	assert.Equal(t, 1, chat.ResetCounter)

	// closing something that is not open is a no-op
	CloseMenu(w, cfg.MenuExperience)
	assert.Equal(t, 1, chat.ResetCounter)
}

func TestCloseAllMenus(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ExclusiveMenus = false
	w := donburi.NewWorld()

	OpenMenu(w, cfg.MenuAbout)
	OpenMenu(w, cfg.MenuMusic)
	CloseAllMenus(w)

	assert.False(t, MenuStateOf(w).AnyOpen())
	assert.False(t, MusicPlayerOf(w).Open)
	assert.Equal(t, 1, ChatOf(w).ResetCounter)
}

func TestOpenMenu_ExclusiveResetsChatForDisplacedMenu(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ExclusiveMenus = true
	w := donburi.NewWorld()

	ChatSelect(w, cfg.MenuEducation)
	chat := ChatOf(w)
	require.True(t, chat.HasActive)

	OpenMenu(w, cfg.MenuProjects)
	assert.False(t, MenuStateOf(w).IsOpen(cfg.MenuEducation))
	assert.False(t, chat.HasActive, "chat no longer points at a closed menu")
	assert.Equal(t, 1, chat.ResetCounter)

	// the chat's own selection displacing a world-opened menu keeps it active
	ChatSelect(w, cfg.MenuAbout)
	assert.True(t, chat.HasActive)
	assert.Equal(t, cfg.MenuAbout, chat.ActiveMenu)
	assert.Equal(t, 1, chat.ResetCounter)
}

func TestUpdateMenus_EscapeClosesTop(t *testing.T) {
	w := donburi.NewWorld()
	OpenMenu(w, cfg.MenuAchievements)

	press(w, cfg.KeyEscape)
	UpdateInput(w)
	UpdateMenus(w)
	assert.False(t, MenuStateOf(w).IsOpen(cfg.MenuAchievements))

	// held Escape does not repeat
	OpenMenu(w, cfg.MenuAchievements)
	UpdateInput(w)
	UpdateMenus(w)
	assert.True(t, MenuStateOf(w).IsOpen(cfg.MenuAchievements))
}

func TestUpdateMenus_FadeIn(t *testing.T) {
	w := donburi.NewWorld()
	OpenMenu(w, cfg.MenuAbout)
	menus := MenuStateOf(w)
	assert.Equal(t, float32(0), menus.Alpha)
	require.NotNil(t, menus.Fade)

	UpdateMenus(w)
	assert.Greater(t, menus.Alpha, float32(0))
	assert.Less(t, menus.Alpha, float32(1))

	for i := 0; i < cfg.C.TPS; i++ {
		UpdateMenus(w)
	}
	assert.Equal(t, float32(1), menus.Alpha)
	assert.Nil(t, menus.Fade)
}
