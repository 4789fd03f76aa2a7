package screen

import (
	"image/color"

	"scoreboard/internal/fontutil"
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/render"
	"scoreboard/internal/side"
)

// MarginPercent is the border kept free of text on every edge.
const MarginPercent = 2

// ContentArea returns the part of a side that text may occupy.
func ContentArea(size geometry.Size) geometry.Rect {
	return geometry.FromSize(size).Inset(margin(size.Width), margin(size.Height))
}

func margin(length int) int {
	return length * MarginPercent / 100
}

// FitText returns the largest pixel size in [1, box.Height] at which text
// fits in box. It returns 1 when nothing fits.
func FitText(ctx render.Context, text string, box geometry.Size) int {
	fits := func(px int) bool {
		ctx.SetFont(px, color.Black)
		return render.TextExtent(ctx, text).Fits(box)
	}
	if box.Empty() || !fits(1) {
		return 1
	}
	lo, hi := 1, box.Height
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Render composites the side onto ctx: blackout, background, overlay,
// foreground image, then text.
func (s *Side) Render(ctx render.Context) {
	size := ctx.Size()
	if size.Empty() {
		return
	}
	st := s.state
	if st.blackout {
		render.Fill(ctx, graphics.Black)
		return
	}

	bg := s.effectiveBackground(st)
	if st.background == nil && s.tag.Has(side.Error) {
		ctx.DrawImage(graphics.ErrorImage(size), geometry.Position{})
	} else {
		render.Fill(ctx, bg)
	}
	if st.overlay != nil {
		renderOverlay(ctx, *st.overlay, bg)
	}
	if st.image != nil {
		renderImage(ctx, st)
	}
	s.renderTexts(ctx, st, bg)
}

func (s *Side) effectiveBackground(st state) color.Color {
	switch {
	case st.background != nil:
		return st.background
	case s.tag.Has(side.Error):
		return graphics.White
	}
	return s.colors.For(s.tag)
}

func renderOverlay(ctx render.Context, o Overlay, bg color.Color) {
	size := ctx.Size()
	length := int(o.ScreenPercentage * float64(size.Min()))
	scaled := graphics.FitLongest(graphics.SizeOf(o.Image), length)
	if scaled.Empty() {
		return
	}
	img := graphics.BlendToward(graphics.ScaleTo(o.Image, scaled), bg, o.Alpha)
	pos := graphics.Centered(scaled, size).Position
	if o.Position == OverlayBottomLeft {
		pos = geometry.Position{X: 0, Y: size.Height - scaled.Height}
	}
	ctx.DrawImage(img, pos)
}

func renderImage(ctx render.Context, st state) {
	if !st.imageScaled {
		ctx.DrawImage(st.image, geometry.Position{})
		return
	}
	size := ctx.Size()
	fit := graphics.Fit(graphics.SizeOf(st.image), size)
	if fit.Empty() {
		return
	}
	ctx.DrawImage(graphics.ScaleTo(st.image, fit), graphics.Centered(fit, size).Position)
}

type placed struct {
	item   RenderableText
	px     int
	extent geometry.Size
}

func (s *Side) renderTexts(ctx render.Context, st state, bg color.Color) {
	size := ctx.Size()
	box := ContentArea(size)
	var stacked, positioned, anchored []RenderableText
	for _, t := range st.texts {
		switch {
		case t.Anchored():
			anchored = append(anchored, t)
		case t.Position != nil:
			positioned = append(positioned, t)
		default:
			stacked = append(stacked, t)
		}
	}

	fontColor := func(t RenderableText) color.Color {
		if t.Font.Color != nil {
			return t.Font.Color
		}
		if st.background == nil && s.tag.Has(side.Error) {
			return graphics.Black
		}
		return graphics.Contrast(bg)
	}
	autoFit := func(t RenderableText) bool {
		if t.Font.AutoFit != nil {
			return *t.Font.AutoFit
		}
		return st.autoFit
	}
	at := func(t RenderableText, px int) placed {
		ctx.SetFont(px, fontColor(t))
		return placed{item: t, px: px, extent: render.TextExtent(ctx, t.Text)}
	}
	measure := func(t RenderableText, slot geometry.Size) placed {
		if autoFit(t) {
			return at(t, FitText(ctx, t.Text, slot))
		}
		return at(t, fontutil.Scale(size.Height, t.Font.Size))
	}
	draw := func(p placed, pos geometry.Position) {
		ctx.SetFont(p.px, fontColor(p.item))
		render.DrawLines(ctx, p.item.Text, pos, p.extent.Width)
	}

	if n := len(stacked); n > 0 {
		slot := geometry.NewSize(box.Width, box.Height/n)
		blocks := make([]placed, 0, n)
		total := 0
		for _, t := range stacked {
			p := measure(t, slot)
			blocks = append(blocks, p)
			total += p.extent.Height
		}
		y := (size.Height - total) / 2
		for _, p := range blocks {
			draw(p, geometry.Position{X: (size.Width - p.extent.Width) / 2, Y: y})
			y += p.extent.Height
		}
	}

	for _, t := range positioned {
		pos := t.Position.In(size)
		p := measure(t, geometry.NewSize(box.Max().X-pos.X, box.Max().Y-pos.Y))
		draw(p, pos)
	}

	// Anchored text is drawn last so a running clock stays on top. Auto-fit
	// only shrinks it to the content width.
	for _, t := range anchored {
		p := at(t, fontutil.Scale(size.Height, t.Font.Size))
		if autoFit(t) && p.extent.Width > box.Width {
			p = at(t, FitText(ctx, t.Text, geometry.NewSize(box.Width, p.extent.Height)))
		}
		x := (size.Width - p.extent.Width) / 2
		y := margin(size.Height)
		if t.Anchor == AnchorBottom {
			y = size.Height - p.extent.Height - margin(size.Height)
		}
		draw(p, geometry.Position{X: x, Y: y})
	}
}
