package preview

import (
	"bytes"
	"strings"
	"testing"

	"scoreboard/internal/display"
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/logs"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

func TestPanelCreatesContentPreviews(t *testing.T) {
	panel := NewPanel(threeDisplays(), options(&fakeOpener{}))
	if panel.NumPreviews() != 2 {
		t.Fatalf("previews = %d, want 2 (control display skipped)", panel.NumPreviews())
	}
	if p, _ := panel.Preview(0); p.Monitor() != 1 {
		t.Errorf("first preview monitor = %d, want 1", p.Monitor())
	}
	if _, ok := panel.Preview(2); ok {
		t.Error("Preview(2) should not exist")
	}
}

func TestPanelFanOut(t *testing.T) {
	panel := NewPanel(threeDisplays(), options(&fakeOpener{}))
	panel.SetTextForPreviews("Go!", 10, side.Both)
	panel.UpdatePresenters(side.Both)
	for _, p := range panel.Previews() {
		pr, _ := p.Presenter()
		if got := firstText(pr.Text()); got != "Go!" {
			t.Errorf("monitor %d presenter = %q", p.Monitor(), got)
		}
	}

	panel.BlackoutPresenters()
	for _, p := range panel.Previews() {
		pr, _ := p.Presenter()
		if !pr.Text().Blackedout() {
			t.Errorf("monitor %d not blacked out", p.Monitor())
		}
	}
}

func TestUpdatePresentersFilter(t *testing.T) {
	panel := NewPanel(threeDisplays(), options(&fakeOpener{}))
	panel.SetTextForPreviews("changed", 10, side.Both)
	panel.UpdatePresenters(side.Away)

	home, _ := panel.Preview(0)
	away, _ := panel.Preview(1)
	hp, _ := home.Presenter()
	ap, _ := away.Presenter()
	if got := firstText(hp.Text()); got != "Score" {
		t.Errorf("home presenter = %q, want unchanged", got)
	}
	if got := firstText(ap.Text()); got != "changed" {
		t.Errorf("away presenter = %q, want changed", got)
	}
}

func TestPanelContinuesAfterPanic(t *testing.T) {
	opener := &fakeOpener{}
	var buf bytes.Buffer
	opts := options(opener)
	opts.Logger = logs.New(&buf, false)
	panel := NewPanel(threeDisplays(), opts)
	opener.opened[0].panics = true

	panel.SetTextForPreviews("after", 10, side.Both)
	panel.UpdatePresenters(side.Both)

	second, _ := panel.Preview(1)
	pr, _ := second.Presenter()
	if got := firstText(pr.Text()); got != "after" {
		t.Errorf("second presenter = %q, want after", got)
	}
	if !strings.Contains(buf.String(), "presenter update failed") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestUpdatePreviewsFromSettings(t *testing.T) {
	opener := &fakeOpener{}
	cfg := threeDisplays()
	panel := NewPanel(cfg, options(opener))
	panel.SetTextForPreviews("Tigers", 10, side.Home)
	panel.SetTextForPreviews("Lions", 10, side.Away)

	// Third monitor unplugged: home+away now share display 1.
	cfg.Displays = display.Override(cfg.Displays[:2], []side.Set{side.None, side.Both})
	panel.UpdatePreviewsFromSettings()
	if panel.NumPreviews() != 1 {
		t.Fatalf("previews = %d, want 1", panel.NumPreviews())
	}
	p, _ := panel.Preview(0)
	home, _ := p.Text().Child(side.Home)
	if home.Texts()[0].Text != "Tigers" {
		t.Errorf("home = %q, want Tigers", home.Texts()[0].Text)
	}
	closed := 0
	for _, s := range opener.opened {
		if s.closed {
			closed++
		}
	}
	if closed != 2 {
		t.Errorf("closed %d surfaces, want 2", closed)
	}

	if away, _ := p.Text().Child(side.Away); away.Texts()[0].Text != "Lions" {
		t.Errorf("away = %q, want Lions", away.Texts()[0].Text)
	}

	cfg.Displays = display.Assign([]geometry.Rect{hd, hd, hd}, 0)
	panel.UpdatePreviewsFromSettings()
	if panel.NumPreviews() != 2 {
		t.Fatalf("previews = %d after replug, want 2", panel.NumPreviews())
	}
	for _, want := range []struct {
		monitor int
		side    side.Set
		text    string
	}{
		{1, side.Home, "Tigers"},
		{2, side.Away, "Lions"},
	} {
		p, _ := panel.Preview(want.monitor - 1)
		if p.Info().Side != want.side {
			t.Errorf("monitor %d side = %v, want %v", want.monitor, p.Info().Side, want.side)
		}
		if got := firstText(p.Text()); got != want.text {
			t.Errorf("monitor %d text = %q after replug, want %q", want.monitor, got, want.text)
		}
	}
}

func TestUpdatePreviewsFromSettingsSwapKeepsTeams(t *testing.T) {
	cfg := threeDisplays()
	panel := NewPanel(cfg, options(&fakeOpener{}))
	panel.SetTextForPreviews("Tigers", 10, side.Home)
	panel.SetTextForPreviews("Lions", 10, side.Away)

	cfg.Displays = display.Override(cfg.Displays, []side.Set{side.None, side.Away, side.Home})
	panel.UpdatePreviewsFromSettings()

	tests := []struct {
		monitor int
		side    side.Set
		text    string
	}{
		{1, side.Away, "Lions"},
		{2, side.Home, "Tigers"},
	}
	for _, tt := range tests {
		p, _ := panel.Preview(tt.monitor - 1)
		if p.Monitor() != tt.monitor || p.Info().Side != tt.side {
			t.Fatalf("preview %d = monitor %d side %v", tt.monitor-1, p.Monitor(), p.Info().Side)
		}
		if got := firstText(p.Text()); got != tt.text {
			t.Errorf("monitor %d side %v text = %q, want %q", tt.monitor, tt.side, got, tt.text)
		}
		pr, _ := p.Presenter()
		if got := firstText(pr.Text()); got != tt.text {
			t.Errorf("monitor %d presenter text = %q, want %q", tt.monitor, got, tt.text)
		}
	}
}

func TestPanelSetTeamColors(t *testing.T) {
	panel := NewPanel(threeDisplays(), options(&fakeOpener{}))
	green, _ := graphics.Named("green")
	panel.SetTeamColors(graphics.DefaultTeamColors().With(side.Home, green))
	p, _ := panel.Preview(0)
	p.Text().SetDefaultBackground(side.Home)
	if c, _ := p.Text().Children()[0].BackgroundColor(); c != green {
		t.Errorf("background = %v, want green", c)
	}
}

func TestQuickState(t *testing.T) {
	panel := NewPanel(threeDisplays(), options(&fakeOpener{}))
	q := NewQuickState(panel, graphics.DefaultTeamColors())
	if len(q.Entries()) != QuickStates {
		t.Fatalf("entries = %d", len(q.Entries()))
	}
	e, _ := q.Entry(0)
	if e.Text().Size() != QuickStateSize || !e.Text().Children()[0].AutoFit() {
		t.Error("entry not a small auto-fit preview")
	}
	if c, _ := e.Text().Children()[1].BackgroundColor(); c != graphics.Gray {
		t.Errorf("entry background = %v, want gray", c)
	}

	if q.Execute(0) {
		t.Error("uninitialized entry executed")
	}

	source, _ := panel.Preview(0)
	source.Text().SetText("Halftime", 10, side.Home)
	if !q.Store(0, source.Text()) {
		t.Fatal("Store failed")
	}
	if !q.Execute(0) {
		t.Fatal("Execute failed")
	}
	for _, p := range panel.Previews() {
		pr, _ := p.Presenter()
		if p.Info().Side == side.Home {
			if got := firstText(pr.Text()); got != "Halftime" {
				t.Errorf("home presenter = %q, want Halftime", got)
			}
		}
	}
	if q.Store(QuickStates, source.Text()) || q.Execute(-1) {
		t.Error("out of range index accepted")
	}
}

func TestQuickStateSingleSide(t *testing.T) {
	panel := NewPanel(threeDisplays(), options(&fakeOpener{}))
	q := NewQuickState(panel, graphics.DefaultTeamColors())

	away, _ := panel.Preview(1)
	away.Text().SetText("Lions", 10, side.Away)
	away.SendToPresenter()

	home, _ := panel.Preview(0)
	home.Text().SetText("Timeout", 10, side.Home)
	q.Store(0, home.Text())
	e, _ := q.Entry(0)
	if e.Sides() != side.Home {
		t.Errorf("entry sides = %v, want home", e.Sides())
	}
	if e.Text().Split() {
		t.Error("entry from a home display is still split")
	}
	if rects := e.Text().Rects(QuickStateSize); len(rects) != 1 || rects[0] != geometry.FromSize(QuickStateSize) {
		t.Errorf("rects = %v, want the full entry", rects)
	}

	q.Execute(0)
	hp, _ := home.Presenter()
	ap, _ := away.Presenter()
	if got := firstText(hp.Text()); got != "Timeout" {
		t.Errorf("home presenter = %q, want Timeout", got)
	}
	if got := firstText(ap.Text()); got != "Lions" {
		t.Errorf("away presenter = %q, want Lions untouched", got)
	}

	both := screen.NewPreview("Halftime", side.Both, QuickStateSize, graphics.DefaultTeamColors())
	q.Store(0, both)
	if e.Sides() != side.Both || !e.Text().Split() {
		t.Errorf("entry from a split screen: sides %v split %v", e.Sides(), e.Text().Split())
	}
	q.Execute(0)
	if got := firstText(ap.Text()); got != "Halftime" {
		t.Errorf("away presenter = %q, want Halftime", got)
	}
}
