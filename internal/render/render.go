// Package render defines the drawing surface the screen model composites onto.
package render

import (
	"image"
	"image/color"
	"strings"

	"scoreboard/internal/geometry"
)

// Context measures and draws in a target's pixel space. Positions passed to
// a Context are relative to its own origin.
type Context interface {
	Size() geometry.Size
	// SetFont selects the pixel size and color used by MeasureText and DrawText.
	SetFont(px int, c color.Color)
	// MeasureText returns the extent of a single line. An empty line still
	// has the line height.
	MeasureText(line string) geometry.Size
	// DrawText draws a single line with its top-left corner at pos.
	DrawText(line string, pos geometry.Position)
	DrawImage(img image.Image, pos geometry.Position)
	FillRect(r geometry.Rect, c color.Color)
	// Sub returns a context for r, clipped to it, with r's corner as origin.
	Sub(r geometry.Rect) Context
}

// Renderable is anything that can composite itself onto a Context.
type Renderable interface {
	Render(ctx Context)
}

// Lines splits text on line breaks. Blank and trailing lines are kept.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// TextExtent measures multi-line text with the context's current font:
// the widest line by the sum of the line heights.
func TextExtent(ctx Context, text string) geometry.Size {
	var out geometry.Size
	for _, line := range Lines(text) {
		s := ctx.MeasureText(line)
		out.Width = max(out.Width, s.Width)
		out.Height += s.Height
	}
	return out
}

// DrawLines draws multi-line text in the block starting at pos, centering
// each line within the width of the block.
func DrawLines(ctx Context, text string, pos geometry.Position, width int) {
	y := pos.Y
	for _, line := range Lines(text) {
		s := ctx.MeasureText(line)
		if line != "" {
			ctx.DrawText(line, geometry.Position{X: pos.X + (width-s.Width)/2, Y: y})
		}
		y += s.Height
	}
}

// Fill paints the whole context.
func Fill(ctx Context, c color.Color) {
	ctx.FillRect(geometry.FromSize(ctx.Size()), c)
}
