package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/view"
)

const overlayWrap = 64

// buildOverlayPanel renders one menu's content with a close button and link buttons
func (s *ShellUI) buildOverlayPanel(kind cfg.MenuKind, o view.Overlay) *widget.Container {
	padding := widget.Insets{Top: 12, Bottom: 14, Left: 16, Right: 16}
	panel := column(6, &padding, panelColor)
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	header := row(16)
	header.AddChild(s.theme.label(o.Title, &s.theme.titleFace, textColor))
	header.AddChild(s.theme.button("Close", &s.theme.normalFace, s.theme.buttonImage(), 70, 26, func() {
		s.closeMenu(kind)
	}))
	if len(systems.MenuStateOf(s.world).Stack) > 1 {
		header.AddChild(s.theme.button("Close all", &s.theme.normalFace, s.theme.buttonImage(), 90, 26, func() {
			systems.CloseAllMenus(s.world)
		}))
	}
	panel.AddChild(header)

	for _, sec := range o.Sections {
		if sec.Heading != "" {
			panel.AddChild(s.theme.label(sec.Heading, &s.theme.headFace, botColor))
		}
		for _, line := range sec.Lines {
			panel.AddChild(s.theme.label(line, &s.theme.normalFace, textColor))
		}
		if sec.URL != "" {
			link := sec.URL
			panel.AddChild(s.theme.button("Open link", &s.theme.smallFace, s.theme.accentButtonImage(), 100, 22, func() {
				s.openLink(link)
			}))
		}
	}

	return panel
}
