package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/export"
	"scoreboard/internal/preview"
	"scoreboard/internal/screen"
)

// QuickStateView shows the quick-state entries. A tap sends an entry to every
// presenter; a secondary tap stores the selected preview in it. An entry
// stored from a one-side display shows that side at full size.
type QuickStateView struct {
	s        *session
	quick    *preview.QuickState
	source   func() (*screen.Text, bool)
	canvases []*ScreenCanvas
	box      *fyne.Container
}

// NewQuickStateView creates one canvas per entry.
func NewQuickStateView(s *session, quick *preview.QuickState, source func() (*screen.Text, bool)) *QuickStateView {
	v := &QuickStateView{s: s, quick: quick, source: source}
	size := fyne.NewSize(float32(preview.QuickStateSize.Width), float32(preview.QuickStateSize.Height))

	grid := container.NewGridWithColumns(preview.QuickStates / 2)
	for i, e := range quick.Entries() {
		sc := NewScreenCanvas(e.Text(), s.fonts, size)
		idx := i
		sc.OnTapped = func() { v.Execute(idx) }
		sc.OnTappedSecondary = func() { v.Store(idx) }
		v.canvases = append(v.canvases, sc)
		grid.Add(sc)
	}

	header := widget.NewLabel("Quick states (right click stores the selected preview)")
	header.TextStyle = fyne.TextStyle{Bold: true}
	v.box = container.NewVBox(header, grid)
	return v
}

// Container returns the quick-state grid.
func (v *QuickStateView) Container() *fyne.Container {
	return v.box
}

// Store copies the selected preview into entry i.
func (v *QuickStateView) Store(i int) bool {
	t, ok := v.source()
	if !ok || !v.quick.Store(i, t) {
		return false
	}
	v.canvases[i].Refresh()
	v.s.log.Debug("quick state stored", "entry", i)
	return true
}

// Execute sends entry i to every presenter.
func (v *QuickStateView) Execute(i int) bool {
	if !v.quick.Execute(i) {
		v.s.status.AppendLine(fmt.Sprintf("Quick state %d is empty.", i+1))
		return false
	}
	e, _ := v.quick.Entry(i)
	v.s.record(export.Push{Action: fmt.Sprintf("quick state %d", i+1), Sides: e.Sides()})
	return true
}
