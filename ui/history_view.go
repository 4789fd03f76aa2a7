package ui

import (
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/export"
)

var historyColumns = []string{"Time", "Action", "Sides", "Presenters", "Text"}

// HistoryView displays a table of what was sent to the presenters.
type HistoryView struct {
	mu     sync.Mutex
	pushes []export.Push
	table  *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 90)  // Time
	hv.table.SetColumnWidth(1, 110) // Action
	hv.table.SetColumnWidth(2, 110) // Sides
	hv.table.SetColumnWidth(3, 90)  // Presenters
	hv.table.SetColumnWidth(4, 240) // Text

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// Add appends a push to the history.
func (hv *HistoryView) Add(p export.Push) {
	hv.mu.Lock()
	hv.pushes = append(hv.pushes, p)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Pushes returns a copy of all recorded pushes.
func (hv *HistoryView) Pushes() []export.Push {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]export.Push, len(hv.pushes))
	copy(out, hv.pushes)
	return out
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.pushes) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(historyColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.pushes) {
		label.SetText("")
		return
	}

	p := hv.pushes[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(p.Time.Format("15:04:05"))
	case 1:
		label.SetText(p.Action)
	case 2:
		label.SetText(p.Sides.String())
	case 3:
		label.SetText(strconv.Itoa(p.Presenters))
	case 4:
		label.SetText(firstLine(p.Text))
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i] + " ..."
		}
	}
	return s
}
