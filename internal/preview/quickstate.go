package preview

import (
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

const (
	// QuickStates is the number of quick-state entries.
	QuickStates = 10
)

// QuickStateSize is a thumbnail-sized 4:3 preview.
var QuickStateSize = geometry.NewSize(85, 64)

// QuickEntry is one stored screen.
type QuickEntry struct {
	text        *screen.Text
	sides       side.Set
	initialized bool
}

// Text returns the stored content.
func (e *QuickEntry) Text() *screen.Text { return e.text }

// Initialized reports whether content has been stored.
func (e *QuickEntry) Initialized() bool { return e.initialized }

// Sides returns the team sides the entry was stored from.
func (e *QuickEntry) Sides() side.Set { return e.sides }

// QuickState holds screens that can be pushed to every presenter at once.
type QuickState struct {
	panel   *Panel
	entries []*QuickEntry
}

// NewQuickState creates empty gray entries.
func NewQuickState(panel *Panel, colors graphics.TeamColors) *QuickState {
	q := &QuickState{panel: panel}
	for range QuickStates {
		t := screen.NewPreview("", side.Both, QuickStateSize, colors)
		t.SetAllText([]screen.RenderableText{screen.NewText("", 1)}, side.Both)
		t.SetBackground(graphics.Gray, side.Both)
		t.SetAutoFit(true, side.Both)
		q.entries = append(q.entries, &QuickEntry{text: t})
	}
	return q
}

// Entries returns all entries.
func (q *QuickState) Entries() []*QuickEntry { return q.entries }

// Entry returns entry i.
func (q *QuickState) Entry(i int) (*QuickEntry, bool) {
	if i < 0 || i >= len(q.entries) {
		return nil, false
	}
	return q.entries[i], true
}

// Store copies from into entry i. An entry stored from a single-side screen
// shows that side alone at full size.
func (q *QuickState) Store(i int, from *screen.Text) bool {
	e, ok := q.Entry(i)
	if !ok || from == nil {
		return false
	}
	e.text.SetAll(from)
	e.sides = from.Sides() & side.Both
	if e.sides == side.None {
		e.sides = side.Both
	}
	e.text.EndSingleView()
	if e.sides.Count() == 1 {
		e.text.ShowSingleView(e.sides)
	}
	e.initialized = true
	return true
}

// Execute pushes the stored sides of entry i to every presenter. Entries
// never stored are ignored.
func (q *QuickState) Execute(i int) bool {
	e, ok := q.Entry(i)
	if !ok || !e.initialized {
		return false
	}
	q.panel.SetSidesToPresenters(e.text, e.sides)
	return true
}
