package components

import (
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/yohamta/donburi"
)

// ChatSpeaker marks who wrote a transcript line
type ChatSpeaker int

const (
	SpeakerBot ChatSpeaker = iota
	SpeakerUser
)

type ChatLine struct {
	Speaker ChatSpeaker
	Text    string
}

type ChatData struct {
	Open       bool
	Minimized  bool
	ActiveMenu cfg.MenuKind
	HasActive  bool
	Transcript []ChatLine
	// ResetCounter increments whenever the chat is cleared from outside
	ResetCounter int
	Version      int
}

var Chat = donburi.NewComponentType[ChatData]()
