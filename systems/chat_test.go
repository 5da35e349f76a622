package systems

import (
	"testing"

	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMatchChatKeyword(t *testing.T) {
	tests := []struct {
		text string
		want cfg.MenuKind
		ok   bool
	}{
		{"play me a SONG", cfg.MenuMusic, true},
		{"Tell me about me... I mean you", cfg.MenuAbout, true},
		{"where did you study?", cfg.MenuEducation, true},
		{"what's your work history", cfg.MenuExperience, true},
		{"show me a project", cfg.MenuProjects, true},
		{"any hackathon wins?", cfg.MenuAchievements, true},
		{"can you display the weather", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := MatchChatKeyword(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchChatKeyword_FirstMenuWins(t *testing.T) {
	// "music" and "project" both match; music comes first in menu order
	got, ok := MatchChatKeyword("is the music a project?")
	require.True(t, ok)
	assert.Equal(t, cfg.MenuMusic, got)
}

func TestChat_StartsWithGreeting(t *testing.T) {
	w := donburi.NewWorld()
	chat := ChatOf(w)
	require.Len(t, chat.Transcript, 1)
	assert.Equal(t, components.SpeakerBot, chat.Transcript[0].Speaker)
	assert.Equal(t, defaultGreeting, chat.Transcript[0].Text)
}

func TestChat_UsesPortfolioScript(t *testing.T) {
	w := donburi.NewWorld()
	portfolio, err := assets.LoadPortfolio(assets.FS(), assets.PortfolioPath)
	require.NoError(t, err)
	factory.CreateContent(w, portfolio)

	chat := ChatOf(w)
	assert.Equal(t, portfolio.Chat.Greeting, chat.Transcript[0].Text)

	ChatSelect(w, cfg.MenuProjects)
	last := chat.Transcript[len(chat.Transcript)-1]
	assert.Equal(t, "Opening Projects.", last.Text)
}

func TestChatSubmit_OpensMatchingMenu(t *testing.T) {
	w := donburi.NewWorld()

	kind, ok := ChatSubmit(w, "  What degree do you have?  ")
	require.True(t, ok)
	assert.Equal(t, cfg.MenuEducation, kind)

	chat := ChatOf(w)
	assert.True(t, chat.HasActive)
	assert.Equal(t, cfg.MenuEducation, chat.ActiveMenu)
	assert.True(t, MenuStateOf(w).IsOpen(cfg.MenuEducation))

	n := len(chat.Transcript)
	assert.Equal(t, components.ChatLine{Speaker: components.SpeakerUser, Text: "What degree do you have?"}, chat.Transcript[n-2])
	assert.Equal(t, components.SpeakerBot, chat.Transcript[n-1].Speaker)
}

func TestChatSubmit_UnmatchedRepliesWithHelp(t *testing.T) {
	w := donburi.NewWorld()

	_, ok := ChatSubmit(w, "hello there")
	assert.False(t, ok)

	chat := ChatOf(w)
	last := chat.Transcript[len(chat.Transcript)-1]
	assert.Equal(t, defaultHelp, last.Text)
	assert.False(t, MenuStateOf(w).AnyOpen())
}

func TestChatSubmit_BlankIgnored(t *testing.T) {
	w := donburi.NewWorld()
	before := len(ChatOf(w).Transcript)

	_, ok := ChatSubmit(w, "   ")
	assert.False(t, ok)
	assert.Len(t, ChatOf(w).Transcript, before)
}

func TestChatBack_ClosesWithoutReset(t *testing.T) {
	w := donburi.NewWorld()
	ChatSelect(w, cfg.MenuAbout)

	ChatBack(w)
	chat := ChatOf(w)
	assert.False(t, chat.HasActive)
	assert.Equal(t, 0, chat.ResetCounter)
	assert.False(t, MenuStateOf(w).IsOpen(cfg.MenuAbout))

	// nothing active
	ChatBack(w)
	assert.Equal(t, 0, chat.ResetCounter)
}

func TestChatBack_LeavesMenuClosedElsewhere(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ExclusiveMenus = false
	w := donburi.NewWorld()

	ChatSelect(w, cfg.MenuAbout)
	OpenMenu(w, cfg.MenuProjects)
	ChatBack(w)

	assert.True(t, MenuStateOf(w).IsOpen(cfg.MenuProjects))
	assert.False(t, MenuStateOf(w).IsOpen(cfg.MenuAbout))
}

func TestChat_MinimizeCloseReopen(t *testing.T) {
	restoreConfig(t)
	cfg.UI.ChatOpen = true
	cfg.UI.ChatMinimized = false
	w := donburi.NewWorld()
	chat := ChatOf(w)

	ChatToggleMinimize(w)
	assert.True(t, chat.Minimized)
	settings := SettingsOf(w)
	assert.True(t, settings.ChatMinimized)
	assert.True(t, settings.Dirty)

	ChatClose(w)
	assert.False(t, chat.Open)

	ChatReopen(w)
	assert.True(t, chat.Open)
	assert.False(t, chat.Minimized)
}

func TestChat_TranscriptIsBounded(t *testing.T) {
	w := donburi.NewWorld()
	for i := 0; i < maxTranscript; i++ {
		ChatSubmit(w, "nothing to see")
	}
	chat := ChatOf(w)
	assert.Len(t, chat.Transcript, maxTranscript)
	assert.Equal(t, defaultHelp, chat.Transcript[maxTranscript-1].Text)
}
