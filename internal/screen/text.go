// Package screen models what a scoreboard side shows and composites it.
package screen

import (
	"image"
	"image/color"

	"scoreboard/internal/geometry"
)

// DefaultFontSize is the logical size of new text items.
const DefaultFontSize = 10

// Anchor pins a text item to an edge instead of the centered stack.
type Anchor int

const (
	AnchorNone Anchor = iota
	AnchorTop
	AnchorBottom
)

func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	}
	return "none"
}

// Font describes how a text item is drawn. A nil Color is chosen to contrast
// with the background; a nil AutoFit inherits the side's setting.
type Font struct {
	Size    float64
	Color   color.Color
	AutoFit *bool
}

// RenderableText is one text block on a side.
type RenderableText struct {
	Text string
	Font Font
	// Position is the top-left corner as a fraction of the side's area.
	Position *geometry.Point
	Anchor   Anchor
}

// NewText returns a centered text item at the given logical size.
func NewText(text string, size float64) RenderableText {
	return RenderableText{Text: text, Font: Font{Size: size}}
}

// Anchored reports whether the item is pinned to an edge.
func (t RenderableText) Anchored() bool {
	return t.Anchor != AnchorNone
}

// OverlayPosition places a background overlay.
type OverlayPosition int

const (
	OverlayCentered OverlayPosition = iota
	OverlayBottomLeft
)

// Overlay is an image composited over the background color.
type Overlay struct {
	Image image.Image
	// ScreenPercentage is the overlay's larger dimension as a fraction of
	// the smaller target dimension.
	ScreenPercentage float64
	// Alpha blends the overlay toward the background color; 255 is opaque.
	Alpha    uint8
	Position OverlayPosition
}

// Bool returns a pointer for Font.AutoFit.
func Bool(v bool) *bool {
	return &v
}
