package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	disabledFill = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	disabledText = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// StyledButton is a button with its own fill and text colors.
// A nil fill follows the theme's primary color.
type StyledButton struct {
	widget.Button
	fill     color.Color
	txtColor color.Color
}

// NewStyledButton creates a button with custom colors.
func NewStyledButton(label string, tapped func(), fill, txtColor color.Color) *StyledButton {
	btn := &StyledButton{fill: fill, txtColor: txtColor}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// NewAccentButton creates a bold button in the theme's primary color.
func NewAccentButton(label string, tapped func()) *StyledButton {
	return NewStyledButton(label, tapped, nil, color.White)
}

func (b *StyledButton) fillColor() color.Color {
	if b.fill == nil {
		return theme.Color(theme.ColorNamePrimary)
	}
	return b.fill
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.fillColor())
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &styledBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type styledBtnRenderer struct {
	btn     *StyledButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *styledBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *styledBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2)
}

func (r *styledBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	if r.btn.Disabled() {
		r.bg.FillColor = disabledFill
		r.label.Color = disabledText
	} else {
		r.bg.FillColor = r.btn.fillColor()
		r.label.Color = r.btn.txtColor
	}

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *styledBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *styledBtnRenderer) Destroy()                     {}
