package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems"
)

// buildTouchPad lays out on-screen arrows that hold the same keys the keyboard does
func (s *ShellUI) buildTouchPad() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 16, Left: 16, Right: 8}
	pad := column(4, &padding, nil)
	pad.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}

	top := row(4)
	top.AddChild(s.spacer())
	top.AddChild(s.holdButton("▲", cfg.KeyArrowUp))
	pad.AddChild(top)

	bottom := row(4)
	bottom.AddChild(s.holdButton("◄", cfg.KeyArrowLeft))
	bottom.AddChild(s.holdButton("▼", cfg.KeyArrowDown))
	bottom.AddChild(s.holdButton("►", cfg.KeyArrowRight))
	pad.AddChild(bottom)

	return pad
}

const touchButtonSize = 56

// padKeys are the keys the touch arrows hold
var padKeys = []cfg.KeyCode{cfg.KeyArrowUp, cfg.KeyArrowLeft, cfg.KeyArrowDown, cfg.KeyArrowRight}

// releasePad lets go of every arrow the pad may be holding
func releasePad(input *components.InputData) {
	for _, key := range padKeys {
		if input.IsPressed(key) {
			input.SetPressed(key, false)
		}
	}
}

func (s *ShellUI) holdButton(label string, key cfg.KeyCode) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(touchButtonSize, touchButtonSize)),
		widget.ButtonOpts.Image(s.theme.buttonImage()),
		widget.ButtonOpts.Text(label, &s.theme.titleFace, s.theme.buttonTextColor()),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			systems.InputOf(s.world).SetPressed(key, true)
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			systems.InputOf(s.world).SetPressed(key, false)
		}),
	)
}

func (s *ShellUI) spacer() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(touchButtonSize, touchButtonSize)),
	)
}
