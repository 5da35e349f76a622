package systems

import (
	"fmt"
	"strings"

	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/yohamta/donburi"
)

const maxTranscript = 40

const (
	defaultGreeting = "Hi! Need help navigating my portfolio?"
	defaultHelp     = "Try asking about my music, education, experience, projects or achievements."
	defaultOpened   = "Opening %s."
)

// ChatSelect opens a menu from the assistant's button list
func ChatSelect(w donburi.World, kind cfg.MenuKind) {
	if kind < 0 || kind >= cfg.MenuCount {
		return
	}
	chat := getOrCreateChat(w)
	chat.ActiveMenu = kind
	chat.HasActive = true
	appendChat(chat, components.SpeakerBot, fmt.Sprintf(chatScript(w).opened, kind.Label()))
	OpenMenu(w, kind)
}

// ChatBack returns to the button list and closes the menu the assistant opened
func ChatBack(w donburi.World) {
	chat := getOrCreateChat(w)
	if !chat.HasActive {
		return
	}
	kind := chat.ActiveMenu
	chat.HasActive = false
	chat.Version++

	menus := getOrCreateMenuState(w)
	if menus.IsOpen(kind) {
		closeMenu(w, menus, kind)
	}
}

// ChatSubmit routes a typed message to the first menu whose keywords it contains.
// It reports the menu opened, if any.
func ChatSubmit(w donburi.World, text string) (cfg.MenuKind, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	chat := getOrCreateChat(w)
	appendChat(chat, components.SpeakerUser, text)

	kind, ok := MatchChatKeyword(text)
	if !ok {
		appendChat(chat, components.SpeakerBot, chatScript(w).help)
		logging.Logger.Debug().Str("message", text).Msg("chat message unmatched")
		return 0, false
	}
	ChatSelect(w, kind)
	return kind, true
}

// MatchChatKeyword is a case-insensitive substring match over the menus' keyword lists
func MatchChatKeyword(text string) (cfg.MenuKind, bool) {
	lower := strings.ToLower(text)
	for _, kind := range cfg.MenuKinds {
		for _, word := range cfg.ChatKeywords[kind] {
			if strings.Contains(lower, word) {
				return kind, true
			}
		}
	}
	return 0, false
}

func ChatToggleMinimize(w donburi.World) {
	chat := getOrCreateChat(w)
	chat.Minimized = !chat.Minimized
	chat.Version++
	markSettingsDirty(w, func(s *components.SettingsData) { s.ChatMinimized = chat.Minimized })
}

func ChatClose(w donburi.World) {
	chat := getOrCreateChat(w)
	chat.Open = false
	chat.Version++
}

// ChatReopen brings the assistant back expanded after it was closed
func ChatReopen(w donburi.World) {
	chat := getOrCreateChat(w)
	chat.Open = true
	chat.Minimized = false
	chat.Version++
}

// ChatReset clears the active menu when overlays are closed from outside the chat
func ChatReset(w donburi.World) {
	chat := getOrCreateChat(w)
	chat.ResetCounter++
	chat.HasActive = false
	chat.Version++
}

func ChatOf(w donburi.World) *components.ChatData {
	return getOrCreateChat(w)
}

type script struct {
	greeting, help, opened string
}

func chatScript(w donburi.World) script {
	s := script{greeting: defaultGreeting, help: defaultHelp, opened: defaultOpened}
	entry, ok := components.Content.First(w)
	if !ok {
		return s
	}
	content := components.Content.Get(entry)
	if content.Chat.Greeting != "" {
		s.greeting = content.Chat.Greeting
	}
	if content.Chat.Help != "" {
		s.help = content.Chat.Help
	}
	if strings.Count(content.Chat.Opened, "%s") == 1 {
		s.opened = content.Chat.Opened
	}
	return s
}

func appendChat(chat *components.ChatData, speaker components.ChatSpeaker, text string) {
	chat.Transcript = append(chat.Transcript, components.ChatLine{Speaker: speaker, Text: text})
	if n := len(chat.Transcript); n > maxTranscript {
		chat.Transcript = append(chat.Transcript[:0], chat.Transcript[n-maxTranscript:]...)
	}
	chat.Version++
}

func getOrCreateChat(w donburi.World) *components.ChatData {
	entry, ok := components.Chat.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Chat))
		chat := components.ChatData{
			Open:      cfg.UI.ChatOpen,
			Minimized: cfg.UI.ChatMinimized,
		}
		components.Chat.SetValue(entry, chat)
		appendChat(components.Chat.Get(entry), components.SpeakerBot, chatScript(w).greeting)
	}
	return components.Chat.Get(entry)
}
