package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/graphics"
)

var (
	disabledBg  = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	disabledTxt = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// StyledButton is a button filled with a team or state color. The label
// uses the contrasting color so it stays readable on any fill.
type StyledButton struct {
	widget.Button
	bgColor  color.Color
	txtColor color.Color
}

// NewStyledButton creates a button filled with bgColor.
func NewStyledButton(label string, tapped func(), bgColor color.Color) *StyledButton {
	btn := &StyledButton{}
	btn.Text = label
	btn.OnTapped = tapped
	btn.setColor(bgColor)
	btn.ExtendBaseWidget(btn)
	return btn
}

func (b *StyledButton) setColor(c color.Color) {
	b.bgColor = c
	b.txtColor = graphics.Contrast(c)
}

// SetColor changes the fill, for example after the team colors changed.
func (b *StyledButton) SetColor(c color.Color) {
	b.setColor(c)
	b.Refresh()
}

// Colors returns the fill and label colors.
func (b *StyledButton) Colors() (bg, txt color.Color) {
	return b.bgColor, b.txtColor
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
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
		r.bg.FillColor = disabledBg
		r.label.Color = disabledTxt
	} else {
		r.bg.FillColor = r.btn.bgColor
		r.label.Color = r.btn.txtColor
	}

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *styledBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *styledBtnRenderer) Destroy()                     {}
