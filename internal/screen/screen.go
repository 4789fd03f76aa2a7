package screen

import (
	"image"
	"image/color"

	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/render"
	"scoreboard/internal/side"
)

// Text shows one side full-area or two sides split across its area.
type Text struct {
	sides  side.Set
	size   geometry.Size
	single side.Set
	kids   []*Side
}

// NewPreview creates one child per assigned side, each seeded with
// initialText. A set containing Error gets a single error child.
func NewPreview(initialText string, sides side.Set, size geometry.Size, colors graphics.TeamColors) *Text {
	t := &Text{sides: normalize(sides), size: size}
	for _, s := range t.sides.Singles() {
		t.kids = append(t.kids, NewSide(initialText, s, colors))
	}
	return t
}

// NewPresenter mirrors the preview's sides at a new size and copies its content.
func NewPresenter(preview *Text, size geometry.Size) *Text {
	t := &Text{sides: preview.sides, size: size}
	for _, src := range preview.kids {
		kid := &Side{tag: src.tag, colors: src.colors}
		kid.SetAll(src)
		t.kids = append(t.kids, kid)
	}
	return t
}

func normalize(s side.Set) side.Set {
	switch {
	case s.Has(side.Error), s == side.None:
		return side.Error
	}
	return s
}

// Sides returns the assigned side set.
func (t *Text) Sides() side.Set { return t.sides }

// Size returns the nominal size this text was created for.
func (t *Text) Size() geometry.Size { return t.size }

// SetSize changes the nominal size.
func (t *Text) SetSize(size geometry.Size) { t.size = size }

// Split reports whether two sides share the area.
func (t *Text) Split() bool { return len(t.kids) == 2 && t.single == side.None }

// Children returns the sides in Home, Away order.
func (t *Text) Children() []*Side { return t.kids }

// Child returns the first side matching filter.
func (t *Text) Child(filter side.Set) (*Side, bool) {
	for _, k := range t.kids {
		if k.IsSide(filter) {
			return k, true
		}
	}
	return nil, false
}

// ShowSingleView temporarily shows only the side matching filter at full size.
func (t *Text) ShowSingleView(filter side.Set) {
	if k, ok := t.Child(filter); ok {
		t.single = k.tag
	}
}

// EndSingleView restores the assigned layout.
func (t *Text) EndSingleView() { t.single = side.None }

type layout struct {
	side *Side
	rect geometry.Rect
}

func (t *Text) layout(size geometry.Size) []layout {
	full := geometry.FromSize(size)
	if t.single != side.None {
		if k, ok := t.Child(t.single); ok {
			return []layout{{k, full}}
		}
	}
	if len(t.kids) == 1 {
		return []layout{{t.kids[0], full}}
	}
	var a, b geometry.Rect
	if size.Landscape() {
		a, b = full.SplitHorizontal()
	} else {
		a, b = full.SplitVertical()
	}
	return []layout{{t.kids[0], a}, {t.kids[1], b}}
}

// Rects returns the area of every visible side for a target size.
func (t *Text) Rects(size geometry.Size) []geometry.Rect {
	var out []geometry.Rect
	for _, l := range t.layout(size) {
		out = append(out, l.rect)
	}
	return out
}

// Render draws every visible side into its part of ctx.
func (t *Text) Render(ctx render.Context) {
	for _, l := range t.layout(ctx.Size()) {
		l.side.Render(ctx.Sub(l.rect))
	}
}

func (t *Text) each(filter side.Set, fn func(*Side)) {
	for _, k := range t.kids {
		if k.IsSide(filter) {
			fn(k)
		}
	}
}

// SetAll copies every side from source, pairing sides by tag. When the
// topologies differ, sides are paired in order.
func (t *Text) SetAll(source *Text) {
	t.SetAllFor(source, side.Home|side.Away|side.Error)
}

// SetAllFor is SetAll limited to the sides matching filter.
func (t *Text) SetAllFor(source *Text, filter side.Set) {
	for i, k := range t.kids {
		if !k.IsSide(filter) {
			continue
		}
		if src, ok := source.Child(k.tag); ok {
			k.SetAll(src)
		} else if i < len(source.kids) {
			k.SetAll(source.kids[i])
		}
	}
}

// SetTeamColors changes the palette of every side.
func (t *Text) SetTeamColors(colors graphics.TeamColors) {
	for _, k := range t.kids {
		k.SetTeamColors(colors)
	}
}

// Blackout blacks out every side.
func (t *Text) Blackout() {
	for _, k := range t.kids {
		k.Blackout()
	}
}

// Blackedout reports whether every side is blacked out.
func (t *Text) Blackedout() bool {
	for _, k := range t.kids {
		if !k.Blackedout() {
			return false
		}
	}
	return len(t.kids) > 0
}

func (t *Text) AddText(text RenderableText, filter side.Set) {
	t.each(filter, func(s *Side) { s.AddText(text, filter) })
}

func (t *Text) SetText(text string, size float64, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetText(text, size, filter) })
}

func (t *Text) SetAllText(texts []RenderableText, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetAllText(texts, filter) })
}

func (t *Text) ResetAllText(filter side.Set) {
	t.each(filter, func(s *Side) { s.ResetAllText(filter) })
}

func (t *Text) SetTimerText(text string, anchor Anchor, size float64, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetTimerText(text, anchor, size, filter) })
}

func (t *Text) SetImage(img image.Image, scaled bool, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetImage(img, scaled, filter) })
}

func (t *Text) SetBackground(c color.Color, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetBackground(c, filter) })
}

func (t *Text) SetDefaultBackground(filter side.Set) {
	t.each(filter, func(s *Side) { s.SetDefaultBackground(filter) })
}

func (t *Text) SetBackgroundOverlay(o *Overlay, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetBackgroundOverlay(o, filter) })
}

func (t *Text) SetFontColor(c color.Color, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetFontColor(c, filter) })
}

func (t *Text) SetAutoFit(autoFit bool, filter side.Set) {
	t.each(filter, func(s *Side) { s.SetAutoFit(autoFit, filter) })
}
