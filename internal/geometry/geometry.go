// Package geometry holds the integer position and size types used for layout.
package geometry

import (
	"fmt"
	"image"
)

// Position is a pixel coordinate.
type Position struct {
	X, Y int
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a pixel extent.
type Size struct {
	Width, Height int
}

// NewSize returns a Size.
func NewSize(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Landscape reports whether s is strictly wider than tall.
func (s Size) Landscape() bool {
	return s.Width > s.Height
}

// Ratio returns width / height, or 0 for an empty size.
func (s Size) Ratio() float64 {
	if s.Height <= 0 {
		return 0
	}
	return float64(s.Width) / float64(s.Height)
}

// Min returns the smaller of the two dimensions.
func (s Size) Min() int {
	return min(s.Width, s.Height)
}

// Fits reports whether s fits inside other.
func (s Size) Fits(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is a positioned size.
type Rect struct {
	Position
	Size
}

// NewRect returns the rectangle at (x, y) with the given extent.
func NewRect(x, y, w, h int) Rect {
	return Rect{Position: Position{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// FromSize returns the rectangle of size s anchored at the origin.
func FromSize(s Size) Rect {
	return Rect{Size: s}
}

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Position {
	return Position{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.Width && p.Y < r.Y+r.Height
}

// Intersect returns the overlap of r and o; the result is empty when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	return FromImage(r.Image().Intersect(o.Image()))
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// The result never has a negative extent.
func (r Rect) Inset(dx, dy int) Rect {
	out := NewRect(r.X+dx, r.Y+dy, r.Width-2*dx, r.Height-2*dy)
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// SplitHorizontal cuts r into a left and a right half. The right half absorbs an odd pixel.
func (r Rect) SplitHorizontal() (Rect, Rect) {
	left := r.Width / 2
	return NewRect(r.X, r.Y, left, r.Height),
		NewRect(r.X+left, r.Y, r.Width-left, r.Height)
}

// SplitVertical cuts r into a top and a bottom half. The bottom half absorbs an odd pixel.
func (r Rect) SplitVertical() (Rect, Rect) {
	top := r.Height / 2
	return NewRect(r.X, r.Y, r.Width, top),
		NewRect(r.X, r.Y+top, r.Width, r.Height-top)
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// FromImage converts an image.Rectangle.
func FromImage(ir image.Rectangle) Rect {
	ir = ir.Canon()
	return NewRect(ir.Min.X, ir.Min.Y, ir.Dx(), ir.Dy())
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Point is a position expressed as a fraction of an area, so that it
// survives rendering the same content at different sizes.
type Point struct {
	X, Y float64
}

// In resolves p against a size.
func (p Point) In(s Size) Position {
	return Position{X: int(p.X * float64(s.Width)), Y: int(p.Y * float64(s.Height))}
}
