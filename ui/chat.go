package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/view"
)

const (
	chatWrap        = 40
	chatVisibleRows = 10
)

func (s *ShellUI) buildChatPanel(chat *components.ChatData) *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 10, Left: 10, Right: 10}
	panel := column(6, &padding, panelColor)
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}

	header := row(6)
	header.AddChild(s.theme.label("Assistant", &s.theme.headFace, textColor))
	minimizeLabel := "_"
	if chat.Minimized {
		minimizeLabel = "+"
	}
	header.AddChild(s.theme.button(minimizeLabel, &s.theme.normalFace, s.theme.buttonImage(), 26, 22, s.chatMinimize))
	header.AddChild(s.theme.button("x", &s.theme.normalFace, s.theme.buttonImage(), 26, 22, s.chatClose))
	panel.AddChild(header)

	if chat.Minimized {
		return panel
	}

	for _, line := range transcriptLines(chat.Transcript, chatVisibleRows) {
		c := botColor
		if line.speaker == components.SpeakerUser {
			c = userColor
		}
		panel.AddChild(s.theme.label(line.text, &s.theme.smallFace, c))
	}

	if chat.HasActive {
		panel.AddChild(s.theme.button("Back", &s.theme.normalFace, s.theme.buttonImage(), 220, 24, s.chatBack))
	} else {
		for _, kind := range cfg.MenuKinds {
			k := kind
			panel.AddChild(s.theme.button(k.Label(), &s.theme.normalFace, s.theme.buttonImage(), 220, 24, func() {
				s.chatSelect(k)
			}))
		}
	}

	inputRow := row(6)
	s.chatInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&s.theme.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("Ask me anything"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			s.chatSend(args.InputText)
		}),
	)
	inputRow.AddChild(s.chatInput)
	inputRow.AddChild(s.theme.button("Send", &s.theme.normalFace, s.theme.accentButtonImage(), 44, 24, func() {
		s.chatSend(s.chatInput.GetText())
	}))
	panel.AddChild(inputRow)

	return panel
}

func (s *ShellUI) buildChatLauncher() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 4, Right: 4}
	panel := column(0, &padding, nil)
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	panel.AddChild(s.theme.button("Chat", &s.theme.normalFace, s.theme.accentButtonImage(), 70, 30, s.chatReopen))
	return panel
}

type transcriptLine struct {
	speaker components.ChatSpeaker
	text    string
}

// transcriptLines wraps the transcript and keeps the newest rows
func transcriptLines(lines []components.ChatLine, rows int) []transcriptLine {
	var out []transcriptLine
	for _, l := range lines {
		prefix := "Bot: "
		if l.Speaker == components.SpeakerUser {
			prefix = "You: "
		}
		for i, wrapped := range view.Wrap(l.Text, chatWrap) {
			if i == 0 {
				wrapped = prefix + wrapped
			} else {
				wrapped = "     " + wrapped
			}
			out = append(out, transcriptLine{speaker: l.Speaker, text: wrapped})
		}
	}
	if len(out) > rows {
		out = out[len(out)-rows:]
	}
	return out
}
