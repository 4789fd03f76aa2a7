// Package rendertest provides a deterministic render.Context for tests.
package rendertest

import (
	"image"
	"image/color"
	"image/draw"

	"scoreboard/internal/geometry"
	"scoreboard/internal/render"
)

// Text records one DrawText call in root coordinates.
type Text struct {
	Line  string
	Pos   geometry.Position
	Px    int
	Color color.Color
}

type record struct {
	texts []Text
}

// Fake draws into an RGBA image. A glyph is GlyphWidth(px) wide and a line
// is LineHeight(px) tall; drawn text is a solid block of the text color.
type Fake struct {
	img   *image.RGBA
	log   *record
	px    int
	color color.Color
}

// GlyphWidth is the advance of one rune at px.
func GlyphWidth(px int) int { return (px*3 + 4) / 5 }

// LineHeight is the height of one line at px.
func LineHeight(px int) int { return px + px/5 }

// New returns a Fake of the given size.
func New(size geometry.Size) *Fake {
	return &Fake{
		img:   image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)),
		log:   &record{},
		px:    1,
		color: color.Black,
	}
}

// Image returns the drawn pixels.
func (f *Fake) Image() *image.RGBA { return f.img }

// Texts returns every line drawn through this fake or its sub contexts.
func (f *Fake) Texts() []Text { return f.log.texts }

// Reset clears the recorded texts.
func (f *Fake) Reset() { f.log.texts = nil }

func (f *Fake) Size() geometry.Size {
	return geometry.NewSize(f.img.Rect.Dx(), f.img.Rect.Dy())
}

func (f *Fake) SetFont(px int, c color.Color) {
	f.px = max(px, 1)
	f.color = c
}

func (f *Fake) MeasureText(line string) geometry.Size {
	return geometry.NewSize(len([]rune(line))*GlyphWidth(f.px), LineHeight(f.px))
}

func (f *Fake) DrawText(line string, pos geometry.Position) {
	abs := pos.Add(geometry.Position{X: f.img.Rect.Min.X, Y: f.img.Rect.Min.Y})
	f.log.texts = append(f.log.texts, Text{Line: line, Pos: abs, Px: f.px, Color: f.color})
	s := f.MeasureText(line)
	f.FillRect(geometry.Rect{Position: pos, Size: s}, f.color)
}

func (f *Fake) DrawImage(img image.Image, pos geometry.Position) {
	if img == nil {
		return
	}
	b := img.Bounds()
	dst := b.Sub(b.Min).Add(f.img.Rect.Min.Add(image.Pt(pos.X, pos.Y)))
	draw.Draw(f.img, dst, img, b.Min, draw.Over)
}

func (f *Fake) FillRect(r geometry.Rect, c color.Color) {
	draw.Draw(f.img, r.Image().Add(f.img.Rect.Min), image.NewUniform(c), image.Point{}, draw.Src)
}

func (f *Fake) Sub(r geometry.Rect) render.Context {
	sub := f.img.SubImage(r.Image().Add(f.img.Rect.Min)).(*image.RGBA)
	return &Fake{img: sub, log: f.log, px: f.px, color: f.color}
}

// Uniform reports whether every pixel of img equals c.
func Uniform(img *image.RGBA, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != c {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two images have the same bounds and pixels.
func Equal(a, b *image.RGBA) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}
