package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelColor   = color.RGBA{20, 20, 30, 230}
	textColor    = color.RGBA{235, 235, 235, 255}
	botColor     = color.RGBA{255, 220, 120, 255}
	userColor    = color.RGBA{150, 230, 150, 255}
	overlayShade = color.RGBA{0, 0, 0, 120}
)

// theme holds the faces shared by every panel, stored as text.Face for ebitenui
type theme struct {
	titleFace  text.Face
	headFace   text.Face
	normalFace text.Face
	smallFace  text.Face

	// click runs before every button handler, e.g. a UI blip
	click func()
}

func newTheme() (*theme, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load UI font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load UI bold font: %w", err)
	}

	return &theme{
		titleFace:  &text.GoTextFace{Source: bold, Size: 22},
		headFace:   &text.GoTextFace{Source: bold, Size: 15},
		normalFace: &text.GoTextFace{Source: regular, Size: 14},
		smallFace:  &text.GoTextFace{Source: regular, Size: 12},
	}, nil
}

func (t *theme) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (t *theme) accentButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

func (t *theme) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{200, 255, 200, 255},
		Pressed:  color.RGBA{150, 200, 150, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func (t *theme) button(label string, face *text.Face, img *widget.ButtonImage, minW, minH int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, minH)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, face, t.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if t.click != nil {
				t.click()
			}
			onClick()
		}),
	)
}

func (t *theme) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func column(spacing int, padding *widget.Insets, bg color.Color) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)))
	}
	return widget.NewContainer(opts...)
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}
