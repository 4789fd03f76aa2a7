package screen

import (
	"image"
	"image/color"
	"testing"

	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/render"
	"scoreboard/internal/render/rendertest"
	"scoreboard/internal/side"
)

func linearFit(ctx render.Context, text string, box geometry.Size) int {
	best := 1
	for px := 1; px <= box.Height; px++ {
		ctx.SetFont(px, color.Black)
		if render.TextExtent(ctx, text).Fits(box) {
			best = px
		}
	}
	return best
}

func TestFitTextMatchesLinearSearch(t *testing.T) {
	ctx := rendertest.New(geometry.NewSize(10, 10))
	texts := []string{"", "1", "Home", "Test Text\n\n\nEnd", "A much longer line of text", "x\n"}
	boxes := []geometry.Size{
		{Width: 0, Height: 0},
		{Width: 1, Height: 1},
		{Width: 40, Height: 10},
		{Width: 100, Height: 100},
		{Width: 333, Height: 57},
		{Width: 20, Height: 400},
	}
	for _, text := range texts {
		for _, box := range boxes {
			got := FitText(ctx, text, box)
			if want := linearFit(ctx, text, box); got != want {
				t.Errorf("FitText(%q, %v) = %d, want %d", text, box, got, want)
			}
		}
	}
}

func TestFitTextIsMaximal(t *testing.T) {
	ctx := rendertest.New(geometry.NewSize(10, 10))
	box := geometry.NewSize(300, 120)
	for _, text := range []string{"0", "Home 21", "Test Text\n.\n.\nEnd"} {
		px := FitText(ctx, text, box)
		ctx.SetFont(px, color.Black)
		if !render.TextExtent(ctx, text).Fits(box) {
			t.Errorf("%q at %d does not fit %v", text, px, box)
		}
		ctx.SetFont(px+1, color.Black)
		if px < box.Height && render.TextExtent(ctx, text).Fits(box) {
			t.Errorf("%q also fits at %d, result %d is not maximal", text, px+1, px)
		}
	}
}

func TestFitTextEmptyBox(t *testing.T) {
	ctx := rendertest.New(geometry.NewSize(10, 10))
	if got := FitText(ctx, "Score", geometry.Size{}); got != 1 {
		t.Errorf("FitText on empty box = %d, want 1", got)
	}
	if got := FitText(ctx, "Score", geometry.NewSize(1, 1)); got != 1 {
		t.Errorf("FitText when nothing fits = %d, want 1", got)
	}
}

func renderSide(s *Side, size geometry.Size) *rendertest.Fake {
	ctx := rendertest.New(size)
	s.Render(ctx)
	return ctx
}

func TestBlackoutRendersBlackAndRecovers(t *testing.T) {
	size := geometry.NewSize(120, 90)
	s := NewSide("Home", side.Home, graphics.DefaultTeamColors())
	s.SetImage(graphics.Solid(geometry.NewSize(10, 10), graphics.Red), true, side.Home)
	s.SetBackgroundOverlay(&Overlay{Image: graphics.Solid(geometry.NewSize(5, 5), graphics.White), ScreenPercentage: 0.3, Alpha: 200}, side.Home)

	s.ResetAllText(side.Home)
	before := renderSide(s, size).Image()

	s.AddText(NewText("Home", 10), side.Home)
	s.Blackout()
	if !s.Blackedout() {
		t.Fatal("Blackedout = false after Blackout")
	}
	if img := renderSide(s, size).Image(); !rendertest.Uniform(img, graphics.Black) {
		t.Error("blackout render is not uniform black")
	}

	s.ResetAllText(side.Home)
	if s.Blackedout() {
		t.Error("ResetAllText did not end blackout")
	}
	if after := renderSide(s, size).Image(); !rendertest.Equal(before, after) {
		t.Error("content was lost across blackout")
	}
}

func TestTextMutationEndsBlackout(t *testing.T) {
	s := NewSide("", side.Away, graphics.DefaultTeamColors())
	s.Blackout()
	s.SetText("3", 20, side.Away)
	if s.Blackedout() {
		t.Error("SetText did not end blackout")
	}
	s.Blackout()
	s.SetTimerText("12:00", AnchorBottom, 5, side.Away)
	if !s.Blackedout() {
		t.Error("SetTimerText ended blackout")
	}
}

func TestSetAllPixelEquivalence(t *testing.T) {
	colors := graphics.DefaultTeamColors()
	src := NewSide("Home", side.Home, colors)
	src.AddText(RenderableText{Text: "Period 2", Font: Font{Size: 5, Color: graphics.White}}, side.Home)
	src.SetTimerText("09:59", AnchorTop, 8, side.Home)
	src.SetBackground(color.RGBA{10, 120, 30, 255}, side.Home)
	src.SetBackgroundOverlay(&Overlay{Image: graphics.Solid(geometry.NewSize(8, 4), graphics.White), ScreenPercentage: 0.5, Alpha: 128, Position: OverlayBottomLeft}, side.Home)
	src.SetAutoFit(true, side.Home)

	for _, tag := range []side.Set{side.Home, side.Away} {
		t.Run(tag.String(), func(t *testing.T) {
			dst := NewSide("other", tag, colors)
			dst.SetAll(src)
			for _, size := range []geometry.Size{{Width: 320, Height: 240}, {Width: 85, Height: 64}} {
				a := renderSide(src, size).Image()
				b := renderSide(dst, size).Image()
				if !rendertest.Equal(a, b) {
					t.Errorf("render differs at %v", size)
				}
			}
		})
	}
}

func TestSetAllIsIndependentCopy(t *testing.T) {
	colors := graphics.DefaultTeamColors()
	src := NewSide("a", side.Home, colors)
	dst := NewSide("b", side.Home, colors)
	dst.SetAll(src)

	src.AddText(NewText("later", 10), side.Home)
	src.SetFontColor(graphics.Red, side.Home)
	if got := len(dst.Texts()); got != 1 {
		t.Fatalf("dst has %d texts after source changed, want 1", got)
	}
	if dst.Texts()[0].Font.Color != nil {
		t.Error("dst font color changed with source")
	}
}

func TestFilteredMutationsIgnoreOtherSides(t *testing.T) {
	s := NewSide("Home", side.Home, graphics.DefaultTeamColors())
	s.SetText("changed", 10, side.Away)
	s.SetBackground(graphics.Red, side.Away)
	s.SetAutoFit(true, side.Error)
	s.ResetAllText(side.Away)
	s.SetImage(graphics.Solid(geometry.NewSize(1, 1), graphics.Red), false, side.Away)

	if texts := s.Texts(); len(texts) != 1 || texts[0].Text != "Home" {
		t.Errorf("texts = %+v", texts)
	}
	if c, _ := s.BackgroundColor(); c != graphics.Blue {
		t.Errorf("background = %v, want blue", c)
	}
	if s.AutoFit() {
		t.Error("auto-fit changed")
	}
	if img, _ := s.Image(); img != nil {
		t.Error("image changed")
	}

	s.SetText("both", 10, side.Both)
	if texts := s.Texts(); texts[0].Text != "both" {
		t.Errorf("combined filter did not apply: %+v", texts)
	}
}

func TestContrastFontColor(t *testing.T) {
	tests := []struct {
		name string
		bg   color.Color
		want color.Color
	}{
		{"dark", graphics.Blue, graphics.White},
		{"light", color.RGBA{255, 255, 0, 255}, graphics.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSide("42", side.Home, graphics.DefaultTeamColors())
			s.SetBackground(tt.bg, side.Home)
			texts := renderSide(s, geometry.NewSize(200, 100)).Texts()
			if len(texts) != 1 {
				t.Fatalf("drew %d texts", len(texts))
			}
			if texts[0].Color != tt.want {
				t.Errorf("font color = %v, want %v", texts[0].Color, tt.want)
			}
		})
	}
}

func TestErrorSideRendering(t *testing.T) {
	s := NewSide("No screens", side.Error, graphics.DefaultTeamColors())
	ctx := renderSide(s, geometry.NewSize(160, 80))
	img := ctx.Image()
	if img.RGBAAt(0, 0) != graphics.Red {
		t.Errorf("corner = %v, want checkerboard red", img.RGBAAt(0, 0))
	}
	if img.RGBAAt(10, 0) != graphics.White {
		t.Errorf("(10,0) = %v, want checkerboard white", img.RGBAAt(10, 0))
	}
	texts := ctx.Texts()
	if len(texts) != 1 || texts[0].Color != graphics.Black {
		t.Errorf("error text = %+v, want black", texts)
	}
}

func TestOverlayScenario(t *testing.T) {
	s := NewSide("", side.Home, graphics.DefaultTeamColors())
	s.ResetAllText(side.Home)
	s.SetBackground(graphics.Black, side.Home)
	s.SetBackgroundOverlay(&Overlay{
		Image:            graphics.Solid(geometry.NewSize(40, 40), graphics.White),
		ScreenPercentage: 0.5,
		Alpha:            128,
	}, side.Home)

	img := renderSide(s, geometry.NewSize(200, 200)).Image()
	covered := image.Rect(50, 50, 150, 150)
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			p := img.RGBAAt(x, y)
			if image.Pt(x, y).In(covered) {
				if p.R < 120 || p.R > 136 {
					t.Fatalf("(%d,%d) = %v, want about 50%% blend", x, y, p)
				}
			} else if p != graphics.Black {
				t.Fatalf("(%d,%d) = %v, want background", x, y, p)
			}
		}
	}
}

func TestOverlayBottomLeft(t *testing.T) {
	s := NewSide("", side.Away, graphics.DefaultTeamColors())
	s.ResetAllText(side.Away)
	s.SetBackground(graphics.Black, side.Away)
	s.SetBackgroundOverlay(&Overlay{
		Image:            graphics.Solid(geometry.NewSize(20, 10), graphics.White),
		ScreenPercentage: 0.5,
		Alpha:            255,
		Position:         OverlayBottomLeft,
	}, side.Away)

	// 0.5 * 100 = 50 px wide, 25 px tall, at the bottom-left corner
	img := renderSide(s, geometry.NewSize(300, 100)).Image()
	if p := img.RGBAAt(10, 90); p.R < 250 || p.B < 250 {
		t.Errorf("bottom-left = %v, want overlay", p)
	}
	if img.RGBAAt(10, 70) != graphics.Black || img.RGBAAt(55, 90) != graphics.Black {
		t.Error("overlay larger than expected")
	}
}

func TestScaledImageIsCentered(t *testing.T) {
	s := NewSide("", side.Home, graphics.DefaultTeamColors())
	s.ResetAllText(side.Home)
	s.SetBackground(graphics.Black, side.Home)
	s.SetImage(graphics.Solid(geometry.NewSize(10, 10), graphics.White), true, side.Home)

	img := renderSide(s, geometry.NewSize(200, 100)).Image()
	if img.RGBAAt(49, 50) != graphics.Black || img.RGBAAt(150, 50) != graphics.Black {
		t.Error("scaled image wider than fitted square")
	}
	if p := img.RGBAAt(100, 50); p.R < 250 {
		t.Errorf("center = %v, want image", p)
	}
}

func TestUnscaledImageIsClipped(t *testing.T) {
	s := NewSide("", side.Home, graphics.DefaultTeamColors())
	s.ResetAllText(side.Home)
	s.SetImage(graphics.Solid(geometry.NewSize(500, 20), graphics.White), false, side.Home)
	img := renderSide(s, geometry.NewSize(100, 100)).Image()
	if img.RGBAAt(99, 10) != graphics.White {
		t.Error("image not drawn at native size")
	}
	if img.RGBAAt(50, 30) != graphics.Blue {
		t.Error("background missing under the image")
	}
}

func TestStackedTextLayout(t *testing.T) {
	s := NewSide("Top", side.Home, graphics.DefaultTeamColors())
	s.AddText(NewText("Bottom", 10), side.Home)
	size := geometry.NewSize(400, 300)
	texts := renderSide(s, size).Texts()
	if len(texts) != 2 {
		t.Fatalf("drew %d texts, want 2", len(texts))
	}
	if texts[0].Line != "Top" || texts[1].Line != "Bottom" {
		t.Fatalf("order = %q, %q", texts[0].Line, texts[1].Line)
	}
	if texts[0].Pos.Y >= texts[1].Pos.Y {
		t.Error("items not stacked top to bottom")
	}
	px := texts[0].Px
	w := 3 * rendertest.GlyphWidth(px)
	if want := (size.Width - w) / 2; texts[0].Pos.X != want {
		t.Errorf("x = %d, want centered %d", texts[0].Pos.X, want)
	}
	total := 2 * rendertest.LineHeight(px)
	if want := (size.Height - total) / 2; texts[0].Pos.Y != want {
		t.Errorf("y = %d, want vertically centered %d", texts[0].Pos.Y, want)
	}
}

func TestAutoFitStaysInContentArea(t *testing.T) {
	s := NewSide("Home\nTeam", side.Home, graphics.DefaultTeamColors())
	s.SetAutoFit(true, side.Home)
	size := geometry.NewSize(300, 200)
	box := ContentArea(size)
	texts := renderSide(s, size).Texts()
	if len(texts) != 2 {
		t.Fatalf("drew %d lines", len(texts))
	}
	for _, tx := range texts {
		w := len(tx.Line) * rendertest.GlyphWidth(tx.Px)
		r := geometry.NewRect(tx.Pos.X, tx.Pos.Y, w, rendertest.LineHeight(tx.Px))
		if r.Intersect(box) != r {
			t.Errorf("line %q at %v leaves content area %v", tx.Line, r, box)
		}
	}
	if px := texts[0].Px; px != FitText(rendertest.New(size), "Home\nTeam", box.Size) {
		t.Errorf("px = %d, not the fitted size", px)
	}
}

func TestItemAutoFitOverride(t *testing.T) {
	s := NewSide("", side.Home, graphics.DefaultTeamColors())
	s.SetAutoFit(true, side.Home)
	s.SetAllText([]RenderableText{{Text: "fixed", Font: Font{Size: 10, AutoFit: Bool(false)}}}, side.Home)
	texts := renderSide(s, geometry.NewSize(750, 300)).Texts()
	if len(texts) != 1 || texts[0].Px != 40 {
		t.Errorf("texts = %+v, want px 40", texts)
	}
}

func TestAnchoredTextDrawnLast(t *testing.T) {
	s := NewSide("Score", side.Home, graphics.DefaultTeamColors())
	s.SetTimerText("10:00", AnchorBottom, 10, side.Home)
	s.AddText(NewText("Later", 10), side.Home)
	size := geometry.NewSize(300, 300)
	texts := renderSide(s, size).Texts()
	if len(texts) != 3 {
		t.Fatalf("drew %d texts", len(texts))
	}
	last := texts[2]
	if last.Line != "10:00" {
		t.Fatalf("last drawn = %q, want timer", last.Line)
	}
	if want := size.Height - rendertest.LineHeight(last.Px) - margin(size.Height); last.Pos.Y != want {
		t.Errorf("timer y = %d, want %d", last.Pos.Y, want)
	}

	s.SetText("New score", 10, side.Home)
	if texts := s.Texts(); len(texts) != 2 || !texts[1].Anchored() {
		t.Errorf("SetText dropped the timer: %+v", texts)
	}
	s.SetTimerText("", AnchorBottom, 10, side.Home)
	if texts := s.Texts(); len(texts) != 1 {
		t.Errorf("empty timer text not removed: %+v", texts)
	}
}

func TestTopAnchor(t *testing.T) {
	s := NewSide("", side.Away, graphics.DefaultTeamColors())
	s.ResetAllText(side.Away)
	s.SetTimerText("1st", AnchorTop, 10, side.Away)
	texts := renderSide(s, geometry.NewSize(200, 400)).Texts()
	if len(texts) != 1 || texts[0].Pos.Y != 8 {
		t.Errorf("texts = %+v, want y 8", texts)
	}
}

func TestExplicitPosition(t *testing.T) {
	s := NewSide("", side.Home, graphics.DefaultTeamColors())
	s.SetAllText([]RenderableText{{Text: "corner", Font: Font{Size: 5}, Position: &geometry.Point{X: 0.1, Y: 0.2}}}, side.Home)
	texts := renderSide(s, geometry.NewSize(500, 300)).Texts()
	if len(texts) != 1 {
		t.Fatalf("drew %d texts", len(texts))
	}
	if want := (geometry.Position{X: 50, Y: 60}); texts[0].Pos != want {
		t.Errorf("pos = %v, want %v", texts[0].Pos, want)
	}
}

func TestSetDefaultBackground(t *testing.T) {
	colors := graphics.DefaultTeamColors()
	s := NewSide("", side.Away, colors)
	s.SetBackground(graphics.Gray, side.Away)
	s.SetImage(graphics.Solid(geometry.NewSize(1, 1), graphics.White), true, side.Away)
	green, _ := graphics.Named("green")
	s.SetTeamColors(colors.With(side.Away, green))
	s.SetDefaultBackground(side.Away)
	if c, _ := s.BackgroundColor(); c != green {
		t.Errorf("background = %v, want new team color", c)
	}
	if img, _ := s.Image(); img != nil {
		t.Error("image kept after SetDefaultBackground")
	}
}
