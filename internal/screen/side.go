package screen

import (
	"image"
	"image/color"
	"slices"

	"scoreboard/internal/graphics"
	"scoreboard/internal/side"
)

// state is everything a side draws. It is replaced as a whole by SetAll so a
// render never sees half of a copy.
type state struct {
	background  color.Color
	overlay     *Overlay
	image       image.Image
	imageScaled bool
	texts       []RenderableText
	autoFit     bool
	blackout    bool
}

func (st state) clone() state {
	st.texts = slices.Clone(st.texts)
	return st
}

// Side holds the visual state of one logical side.
type Side struct {
	tag    side.Set
	colors graphics.TeamColors
	state  state
}

// NewSide returns a side showing initialText at the default size. Team
// sides start on their team color; the error side on the error pattern.
func NewSide(initialText string, tag side.Set, colors graphics.TeamColors) *Side {
	s := &Side{tag: tag, colors: colors}
	item := NewText(initialText, DefaultFontSize)
	if tag.Has(side.Error) {
		item.Font.Color = graphics.Black
	} else {
		s.state.background = colors.For(tag)
	}
	s.state.texts = []RenderableText{item}
	return s
}

// Tag returns the side this content belongs to.
func (s *Side) Tag() side.Set { return s.tag }

// IsSide reports whether filter selects this side.
func (s *Side) IsSide(filter side.Set) bool { return s.tag.Overlaps(filter) }

// Texts returns a copy of the text items.
func (s *Side) Texts() []RenderableText { return slices.Clone(s.state.texts) }

// BackgroundColor returns the explicit background color, if any.
func (s *Side) BackgroundColor() (color.Color, bool) {
	return s.state.background, s.state.background != nil
}

// Overlay returns the background overlay, if any.
func (s *Side) Overlay() (Overlay, bool) {
	if s.state.overlay == nil {
		return Overlay{}, false
	}
	return *s.state.overlay, true
}

// Image returns the foreground image and whether it is scaled to fit.
func (s *Side) Image() (image.Image, bool) { return s.state.image, s.state.imageScaled }

// Blackedout reports whether the side renders solid black.
func (s *Side) Blackedout() bool { return s.state.blackout }

// AutoFit reports the side's default auto-fit setting.
func (s *Side) AutoFit() bool { return s.state.autoFit }

// SetAll copies every visual field of source, whatever its tag.
func (s *Side) SetAll(source *Side) {
	s.state = source.state.clone()
}

// SetTeamColors changes the palette used by SetDefaultBackground and by sides
// without an explicit color.
func (s *Side) SetTeamColors(colors graphics.TeamColors) {
	s.colors = colors
}

// Blackout hides the content until text is changed or reset.
func (s *Side) Blackout() {
	s.state.blackout = true
}

// AddText appends an item.
func (s *Side) AddText(t RenderableText, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	s.state.texts = append(slices.Clone(s.state.texts), t)
	s.state.blackout = false
}

// SetText replaces the centered text with a single item. Anchored items stay.
func (s *Side) SetText(text string, size float64, filter side.Set) {
	s.SetAllText([]RenderableText{NewText(text, size)}, filter)
}

// SetAllText replaces the centered text items. Anchored items stay.
func (s *Side) SetAllText(texts []RenderableText, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	out := slices.Clone(texts)
	for _, t := range s.state.texts {
		if t.Anchored() {
			out = append(out, t)
		}
	}
	s.state.texts = out
	s.state.blackout = false
}

// ResetAllText removes every text item and ends a blackout.
func (s *Side) ResetAllText(filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	s.state.texts = nil
	s.state.blackout = false
}

// SetTimerText replaces the anchored items with text pinned at anchor. An
// empty text removes them. It does not end a blackout.
func (s *Side) SetTimerText(text string, anchor Anchor, size float64, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	out := slices.DeleteFunc(slices.Clone(s.state.texts), RenderableText.Anchored)
	if text != "" && anchor != AnchorNone {
		out = append(out, RenderableText{Text: text, Font: Font{Size: size}, Anchor: anchor})
	}
	s.state.texts = out
}

// SetImage sets the foreground image. The background color is kept.
func (s *Side) SetImage(img image.Image, scaled bool, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	s.state.image = img
	s.state.imageScaled = scaled
}

// SetBackground sets an explicit background color.
func (s *Side) SetBackground(c color.Color, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	s.state.background = c
}

// SetDefaultBackground returns the side to its team color and drops the
// foreground image and overlay.
func (s *Side) SetDefaultBackground(filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	s.state.background = nil
	if !s.tag.Has(side.Error) {
		s.state.background = s.colors.For(s.tag)
	}
	s.state.image = nil
	s.state.imageScaled = false
	s.state.overlay = nil
}

// SetBackgroundOverlay sets the overlay; nil removes it.
func (s *Side) SetBackgroundOverlay(o *Overlay, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	if o == nil || o.Image == nil {
		s.state.overlay = nil
		return
	}
	cp := *o
	s.state.overlay = &cp
}

// SetFontColor sets the color of every text item; nil restores the
// automatic contrast color.
func (s *Side) SetFontColor(c color.Color, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	out := slices.Clone(s.state.texts)
	for i := range out {
		out[i].Font.Color = c
	}
	s.state.texts = out
}

// SetAutoFit sets the side's default auto-fit.
func (s *Side) SetAutoFit(autoFit bool, filter side.Set) {
	if !s.IsSide(filter) {
		return
	}
	s.state.autoFit = autoFit
}
