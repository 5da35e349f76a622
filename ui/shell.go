package ui

import (
	"image"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mohinem/portfolio3d/assets"
	"github.com/mohinem/portfolio3d/components"
	cfg "github.com/mohinem/portfolio3d/config"
	"github.com/mohinem/portfolio3d/logging"
	"github.com/mohinem/portfolio3d/systems"
	"github.com/mohinem/portfolio3d/view"
	"github.com/yohamta/donburi"
)

// ShellUI is the 2D layer over the village: the menu overlay, the chat
// assistant and optional touch arrows. The overlay and chat panels are rebuilt
// whenever the menu or chat state version moves. The touch pad is built once
// so a held arrow survives those rebuilds.
type ShellUI struct {
	UI *ebitenui.UI

	// OpenLink is called by link buttons, OpenURL by default
	OpenLink func(url string) error

	world donburi.World
	theme *theme
	touch bool

	root      *widget.Container
	panels    *widget.Container
	overlay   *widget.Container
	chat      *widget.Container
	pad       *widget.Container
	chatInput *widget.TextInput

	built       bool
	menuVersion int
	chatVersion int
}

// NewShellUI builds the shell for w. click, if set, runs on every button press.
func NewShellUI(w donburi.World, touch bool, click func()) (*ShellUI, error) {
	t, err := newTheme()
	if err != nil {
		return nil, err
	}
	t.click = click

	s := &ShellUI{
		OpenLink: OpenURL,
		world:    w,
		theme:    t,
		touch:    touch,
	}
	s.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	s.panels = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			StretchHorizontal: true,
			StretchVertical:   true,
		})),
	)
	s.root.AddChild(s.panels)
	s.UI = &ebitenui.UI{Container: s.root}
	s.SetTouch(touch)
	s.sync()
	return s, nil
}

// SetTouch shows or hides the touch arrows. Hiding releases any arrow the pad
// was holding, since its release event can no longer arrive.
func (s *ShellUI) SetTouch(on bool) {
	s.touch = on
	switch {
	case on && s.pad == nil:
		s.pad = s.buildTouchPad()
		s.root.AddChild(s.pad)
	case !on && s.pad != nil:
		s.root.RemoveChild(s.pad)
		s.pad = nil
		releasePad(systems.InputOf(s.world))
	}
}

func (s *ShellUI) Update() {
	s.sync()
	s.UI.Update()
}

// Draw dims the world while a menu is open, then draws the widgets
func (s *ShellUI) Draw(screen *ebiten.Image) {
	menus := systems.MenuStateOf(s.world)
	if menus.AnyOpen() && menus.Alpha > 0 {
		b := screen.Bounds()
		shade := overlayShade
		shade.A = uint8(float32(shade.A) * menus.Alpha)
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), shade, false)
	}
	s.UI.Draw(screen)
}

// Contains reports whether screen point (x, y) lies on a shell panel, so world
// clicks underneath can be ignored.
func (s *ShellUI) Contains(x, y int) bool {
	p := image.Pt(x, y)
	for _, c := range []*widget.Container{s.overlay, s.chat, s.pad} {
		if c != nil && p.In(c.GetWidget().Rect) {
			return true
		}
	}
	return false
}

func (s *ShellUI) sync() {
	menus := systems.MenuStateOf(s.world)
	chat := systems.ChatOf(s.world)
	if s.built && menus.Version == s.menuVersion && chat.Version == s.chatVersion {
		return
	}
	s.built = true
	s.menuVersion = menus.Version
	s.chatVersion = chat.Version
	s.rebuild(menus, chat)
}

func (s *ShellUI) rebuild(menus *components.MenuStateData, chat *components.ChatData) {
	draft := ""
	if s.chatInput != nil {
		draft = s.chatInput.GetText()
	}

	s.panels.RemoveChildren()
	s.overlay, s.chat, s.chatInput = nil, nil, nil

	if kind, ok := menus.Top(); ok {
		s.overlay = s.buildOverlayPanel(kind, s.overlayContent(kind))
		s.panels.AddChild(s.overlay)
	}

	if chat.Open {
		s.chat = s.buildChatPanel(chat)
	} else {
		s.chat = s.buildChatLauncher()
	}
	s.panels.AddChild(s.chat)
	if s.chatInput != nil && draft != "" {
		s.chatInput.SetText(draft)
	}
}

func (s *ShellUI) overlayContent(kind cfg.MenuKind) view.Overlay {
	var portfolio *assets.Portfolio
	if entry, ok := components.Content.First(s.world); ok {
		portfolio = components.Content.Get(entry)
	}
	return view.BuildOverlay(kind, portfolio, systems.MusicPlayerOf(s.world).Content, overlayWrap)
}

func (s *ShellUI) closeMenu(kind cfg.MenuKind) {
	systems.CloseMenu(s.world, kind)
}

func (s *ShellUI) openLink(url string) {
	if s.OpenLink == nil {
		return
	}
	if err := s.OpenLink(url); err != nil {
		logging.Logger.Warn().Err(err).Str("url", url).Msg("open link failed")
	}
}

func (s *ShellUI) chatSelect(kind cfg.MenuKind) { systems.ChatSelect(s.world, kind) }
func (s *ShellUI) chatBack()                    { systems.ChatBack(s.world) }
func (s *ShellUI) chatMinimize()                { systems.ChatToggleMinimize(s.world) }
func (s *ShellUI) chatClose()                   { systems.ChatClose(s.world) }
func (s *ShellUI) chatReopen()                  { systems.ChatReopen(s.world) }

func (s *ShellUI) chatSend(msg string) {
	if s.chatInput != nil {
		s.chatInput.SetText("")
	}
	systems.ChatSubmit(s.world, msg)
}

// Typing reports whether the chat input has keyboard focus
func (s *ShellUI) Typing() bool {
	return s.chatInput != nil && s.chatInput.IsFocused()
}
