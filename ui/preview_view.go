package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/preview"
	"scoreboard/internal/screen"
)

// PreviewView shows one canvas per preview. Tapping a preview selects it as
// the source for quick states.
type PreviewView struct {
	s        *session
	canvases []*ScreenCanvas
	labels   []*widget.Label
	selected int
	box      *fyne.Container
}

// NewPreviewView creates canvases for the panel's previews.
func NewPreviewView(s *session) *PreviewView {
	v := &PreviewView{s: s, box: container.NewHBox()}
	v.Rebuild()
	return v
}

// Container returns the row of previews.
func (v *PreviewView) Container() *fyne.Container {
	return v.box
}

// Rebuild recreates the canvases after the previews changed.
func (v *PreviewView) Rebuild() {
	v.box.RemoveAll()
	v.canvases = nil
	v.labels = nil
	for i, pv := range v.s.panel.Previews() {
		size := pv.Text().Size()
		sc := NewScreenCanvas(pv.Text(), v.s.fonts, fyne.NewSize(float32(size.Width), float32(size.Height)))
		idx := i
		sc.OnTapped = func() { v.Select(idx) }
		pv.SetSurface(sc)

		label := widget.NewLabel("")
		v.canvases = append(v.canvases, sc)
		v.labels = append(v.labels, label)
		v.box.Add(container.NewBorder(label, nil, nil, nil, sc))
	}
	if v.selected >= len(v.canvases) {
		v.selected = 0
	}
	v.updateLabels()
	v.box.Refresh()
}

// Canvases returns the preview canvases in display order.
func (v *PreviewView) Canvases() []*ScreenCanvas { return v.canvases }

// Select makes preview i the selected one.
func (v *PreviewView) Select(i int) {
	if i < 0 || i >= len(v.canvases) {
		return
	}
	v.selected = i
	v.updateLabels()
}

// Selected returns the selected preview.
func (v *PreviewView) Selected() (*preview.Preview, bool) {
	return v.s.panel.Preview(v.selected)
}

// SelectedText returns the content of the selected preview.
func (v *PreviewView) SelectedText() (*screen.Text, bool) {
	pv, ok := v.Selected()
	if !ok {
		return nil, false
	}
	return pv.Text(), true
}

func (v *PreviewView) updateLabels() {
	for i, label := range v.labels {
		pv, ok := v.s.panel.Preview(i)
		if !ok {
			continue
		}
		label.TextStyle = fyne.TextStyle{Bold: i == v.selected}
		label.SetText(previewTitle(pv))
	}
}

func previewTitle(pv *preview.Preview) string {
	return fmt.Sprintf("Display %d: %s", pv.Monitor()+1, pv.Info().Side)
}
