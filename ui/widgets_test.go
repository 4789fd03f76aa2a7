package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"scoreboard/internal/export"
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

func TestScreenCanvas_Frame(t *testing.T) {
	test.NewTempApp(t)
	home := screen.NewPreview("", side.Home, geometry.NewSize(80, 45), graphics.DefaultTeamColors())
	sc := NewScreenCanvas(home, newTestFonts(t), fyne.NewSize(80, 45))

	img := sc.Frame(40, 20)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("frame bounds = %v, want 40x20", b)
	}
	r, g, b, _ := img.At(20, 1).RGBA()
	if r != 0 || g != 0 || b>>8 != 255 {
		t.Errorf("frame pixel = %v, want home blue", img.At(20, 1))
	}

	if empty := NewScreenCanvas(nil, newTestFonts(t), fyne.NewSize(1, 1)).Frame(0, 0); empty.Bounds().Dx() != 1 {
		t.Errorf("empty frame bounds = %v, want 1x1", empty.Bounds())
	}
}

func TestScreenCanvas_Taps(t *testing.T) {
	test.NewTempApp(t)
	sc := NewScreenCanvas(nil, newTestFonts(t), fyne.NewSize(10, 10))
	var taps, secondary int
	sc.OnTapped = func() { taps++ }
	sc.OnTappedSecondary = func() { secondary++ }

	test.Tap(sc)
	test.TapSecondary(sc)
	test.Tap(sc)

	if taps != 2 || secondary != 1 {
		t.Errorf("taps = %d/%d, want 2/1", taps, secondary)
	}
}

func TestStyledButton_ContrastLabel(t *testing.T) {
	test.NewTempApp(t)
	tapped := false
	btn := NewStyledButton("Send Home", func() { tapped = true }, graphics.White)

	if _, txt := btn.Colors(); txt != graphics.Black {
		t.Errorf("label on white = %v, want black", txt)
	}
	btn.SetColor(graphics.Blue)
	if bg, txt := btn.Colors(); bg != graphics.Blue || txt != graphics.White {
		t.Errorf("colors = %v/%v, want blue/white", bg, txt)
	}

	test.Tap(btn)
	if !tapped {
		t.Error("OnTapped not called")
	}
}

func TestStatusView_Write(t *testing.T) {
	test.NewTempApp(t)
	sv := NewStatusView()

	sv.Write([]byte("level=INFO msg=one\nlevel=INFO msg="))
	sv.Write([]byte("two\n"))

	lines := sv.Lines()
	if len(lines) != 2 || lines[0] != "level=INFO msg=one" || lines[1] != "level=INFO msg=two" {
		t.Errorf("lines = %q", lines)
	}

	sv.Clear()
	if len(sv.Lines()) != 0 {
		t.Error("Clear() should drop every line")
	}
}

func TestStatusView_Cap(t *testing.T) {
	test.NewTempApp(t)
	sv := NewStatusView()
	for range StatusLines + 5 {
		sv.AppendLine("x")
	}
	if n := len(sv.Lines()); n != StatusLines {
		t.Errorf("lines = %d, want %d", n, StatusLines)
	}
}

func TestHistoryView(t *testing.T) {
	test.NewTempApp(t)
	hv := NewHistoryView()
	hv.Add(export.Push{Action: "send", Sides: side.Home, Text: "Tigers\n3"})

	pushes := hv.Pushes()
	if len(pushes) != 1 || pushes[0].Action != "send" {
		t.Fatalf("pushes = %+v", pushes)
	}
	if rows, cols := hv.tableSize(); rows != 2 || cols != len(historyColumns) {
		t.Errorf("table size = %dx%d", rows, cols)
	}
	if got := firstLine("Tigers\n3"); got != "Tigers ..." {
		t.Errorf("firstLine() = %q", got)
	}
}

func TestSnapshotList_ScansPNG(t *testing.T) {
	test.NewTempApp(t)
	dir := t.TempDir()
	old := filepath.Join(dir, "presenter1_a.png")
	newer := filepath.Join(dir, "presenter1_b.png")
	for _, p := range []string{old, newer, filepath.Join(dir, "notes.txt")} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	sl := NewSnapshotList(dir, nil)
	files := sl.Files()
	if len(files) != 2 {
		t.Fatalf("files = %+v, want 2 PNGs", files)
	}
	if files[0].Path != newer {
		t.Errorf("first file = %s, want newest", files[0].Path)
	}

	sl.SetDir(filepath.Join(dir, "missing"))
	if len(sl.Files()) != 0 {
		t.Error("missing directory should list nothing")
	}
}

func TestFormatFileItem(t *testing.T) {
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	tests := []struct {
		fi   FileInfo
		want string
	}{
		{FileInfo{Name: "a.png", Size: 512, Modified: now.Add(-time.Hour)}, "a.png  (512 B, 19:00:00)"},
		{FileInfo{Name: "b.png", Size: 2048, Modified: now.AddDate(0, 0, -2)}, "b.png  (2.0 KB, 2026-02-27)"},
		{FileInfo{Name: "c.png", Size: 3 << 20, Modified: now}, "c.png  (3.0 MB, 20:00:00)"},
	}
	for _, tt := range tests {
		if got := formatFileItem(tt.fi, now); got != tt.want {
			t.Errorf("formatFileItem() = %q, want %q", got, tt.want)
		}
	}
}

func TestContentForm(t *testing.T) {
	test.NewTempApp(t)
	cf := NewContentForm()

	if cf.FontSize() != screen.DefaultFontSize {
		t.Errorf("FontSize() = %v, want default", cf.FontSize())
	}
	if cf.Target() != side.Home|side.Away|side.Error {
		t.Errorf("Target() = %v, want every side", cf.Target())
	}
	colors, err := cf.TeamColors()
	if err != nil || colors != graphics.DefaultTeamColors() {
		t.Errorf("TeamColors() = %v, %v", colors, err)
	}

	cf.fontSizeSelect.SetText("huge")
	if cf.FontSize() != screen.DefaultFontSize {
		t.Errorf("invalid font size should fall back, got %v", cf.FontSize())
	}
	cf.targetRadio.SetSelected("Home")
	if cf.Target() != side.Home {
		t.Errorf("Target() = %v, want home", cf.Target())
	}
}

func TestContentForm_Preferences(t *testing.T) {
	prefs := test.NewTempApp(t).Preferences()
	cf := NewContentForm()
	cf.SetText("Half time")
	cf.SetFontSize(20)
	cf.SetAutoFit(true)
	cf.SetColors("gold", "#112233")
	cf.targetRadio.SetSelected("Away")
	cf.SavePreferences(prefs)

	restored := NewContentForm()
	restored.LoadPreferences(prefs)
	if restored.Text() != "Half time" || restored.FontSize() != 20 || !restored.AutoFit() {
		t.Errorf("restored = %q/%v/%v", restored.Text(), restored.FontSize(), restored.AutoFit())
	}
	if restored.Target() != side.Away {
		t.Errorf("restored target = %v", restored.Target())
	}
	colors, _ := restored.TeamColors()
	if colors.Away != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Errorf("restored away color = %v", colors.Away)
	}
}
