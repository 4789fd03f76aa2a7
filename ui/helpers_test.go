package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"scoreboard/internal/display"
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/preview"
	"scoreboard/internal/render"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

var testStart = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestFonts(t *testing.T) *render.Fonts {
	t.Helper()
	fonts, err := render.DefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { fonts.Close() })
	return fonts
}

// newTestSession builds a control display and a home and an away display,
// without presenter windows.
func newTestSession(t *testing.T) (*session, *fakeClock) {
	t.Helper()
	test.NewTempApp(t)

	displays := &display.Static{Displays: display.Assign([]geometry.Rect{
		geometry.NewRect(0, 0, 64, 48),
		geometry.NewRect(64, 0, 160, 90),
		geometry.NewRect(224, 0, 160, 90),
	}, 0)}
	panel := preview.NewPanel(displays, preview.Options{Colors: graphics.DefaultTeamColors(), Width: 80})
	t.Cleanup(panel.Close)

	clock := &fakeClock{now: testStart}
	s := newSession(panel, displays, newTestFonts(t), nil)
	s.now = clock.Now
	return s, clock
}

func previewSide(t *testing.T, s *session, i int, tag side.Set) *screen.Side {
	t.Helper()
	pv, ok := s.panel.Preview(i)
	if !ok {
		t.Fatalf("no preview %d", i)
	}
	k, ok := pv.Text().Child(tag)
	if !ok {
		t.Fatalf("preview %d has no %s side", i, tag)
	}
	return k
}

func presenterSide(t *testing.T, s *session, i int, tag side.Set) *screen.Side {
	t.Helper()
	pv, ok := s.panel.Preview(i)
	if !ok {
		t.Fatalf("no preview %d", i)
	}
	p, ok := pv.Presenter()
	if !ok {
		t.Fatalf("preview %d has no presenter", i)
	}
	k, ok := p.Text().Child(tag)
	if !ok {
		t.Fatalf("presenter %d has no %s side", i, tag)
	}
	return k
}

// mainText returns the first centered text of a side.
func mainText(k *screen.Side) string {
	for _, txt := range k.Texts() {
		if !txt.Anchored() {
			return txt.Text
		}
	}
	return ""
}

// anchoredText returns the first anchored text of a side.
func anchoredText(k *screen.Side) string {
	for _, txt := range k.Texts() {
		if txt.Anchored() {
			return txt.Text
		}
	}
	return ""
}
