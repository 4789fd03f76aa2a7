package ui

import (
	"bytes"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// StatusLines caps the number of lines kept in the status view.
const StatusLines = 500

// StatusView shows operator messages and the application log.
type StatusView struct {
	mu        sync.Mutex
	pending   []byte
	lines     []string
	text      *statusEntry
	scrollBox *container.Scroll
}

// NewStatusView creates a new scrollable status view.
func NewStatusView() *StatusView {
	sv := &StatusView{text: newStatusEntry()}

	sv.scrollBox = container.NewVScroll(sv.text)
	sv.scrollBox.SetMinSize(NewStatusMinSize())

	return sv
}

// Container returns the status view's container.
func (sv *StatusView) Container() *container.Scroll {
	return sv.scrollBox
}

// AppendLine adds a line to the status view, safe to call from any goroutine.
func (sv *StatusView) AppendLine(line string) {
	sv.mu.Lock()
	sv.lines = append(sv.lines, line)
	if n := len(sv.lines) - StatusLines; n > 0 {
		sv.lines = sv.lines[n:]
	}
	text := joinLines(sv.lines)
	sv.mu.Unlock()

	fyne.Do(func() {
		sv.text.SetText(text)
		sv.scrollBox.ScrollToBottom()
	})
}

// Write makes the view a log destination. Complete lines are appended;
// a trailing partial line waits for the next write.
func (sv *StatusView) Write(p []byte) (int, error) {
	sv.mu.Lock()
	sv.pending = append(sv.pending, p...)
	var lines []string
	for {
		i := bytes.IndexByte(sv.pending, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(sv.pending[:i]))
		sv.pending = sv.pending[i+1:]
	}
	sv.mu.Unlock()

	for _, l := range lines {
		sv.AppendLine(l)
	}
	return len(p), nil
}

// Lines returns the lines shown.
func (sv *StatusView) Lines() []string {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return append([]string(nil), sv.lines...)
}

// Clear empties the status view, safe to call from any goroutine.
func (sv *StatusView) Clear() {
	sv.mu.Lock()
	sv.lines = nil
	sv.mu.Unlock()
	fyne.Do(func() {
		sv.text.SetText("")
	})
}

func joinLines(lines []string) string {
	var b bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
	}
	return b.String()
}

// statusEntry is an Entry that allows selection and copy but rejects all edits.
type statusEntry struct {
	widget.Entry
}

func newStatusEntry() *statusEntry {
	e := &statusEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune blocks all character input.
func (e *statusEntry) TypedRune(_ rune) {}

// TypedKey allows only navigation and selection keys.
func (e *statusEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all only.
func (e *statusEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll, *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}
