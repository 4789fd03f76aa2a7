package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"scoreboard/internal/geometry"
)

// Fonts caches faces of one font source by pixel size.
type Fonts struct {
	mu     sync.Mutex
	source *text.FontSource
	faces  map[int]text.Face
}

// NewFonts parses a TrueType or OpenType font.
func NewFonts(data []byte) (*Fonts, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Fonts{source: src, faces: make(map[int]text.Face)}, nil
}

// DefaultFonts returns the Go Regular font.
func DefaultFonts() (*Fonts, error) {
	return NewFonts(goregular.TTF)
}

// Face returns the face for a pixel size, creating it on first use.
func (f *Fonts) Face(px int) text.Face {
	px = max(px, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[px]
	if !ok {
		face = f.source.Face(float64(px))
		f.faces[px] = face
	}
	return face
}

// Close releases the font source.
func (f *Fonts) Close() error {
	return f.source.Close()
}

// Raster is a Context backed by an RGBA image.
type Raster struct {
	img   *image.RGBA
	fonts *Fonts
	face  text.Face
	color color.Color
}

// NewRaster allocates a transparent image of the given size.
func NewRaster(size geometry.Size, fonts *Fonts) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, max(size.Width, 0), max(size.Height, 0)))
	return &Raster{img: img, fonts: fonts, face: fonts.Face(1), color: color.Black}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) origin() image.Point {
	return r.img.Rect.Min
}

func (r *Raster) Size() geometry.Size {
	return geometry.NewSize(r.img.Rect.Dx(), r.img.Rect.Dy())
}

func (r *Raster) SetFont(px int, c color.Color) {
	r.face = r.fonts.Face(px)
	r.color = c
}

func (r *Raster) MeasureText(line string) geometry.Size {
	m := r.face.Metrics()
	w := 0.0
	if line != "" {
		w = r.face.Advance(line)
	}
	return geometry.NewSize(int(math.Ceil(w)), int(math.Ceil(m.LineHeight())))
}

func (r *Raster) DrawText(line string, pos geometry.Position) {
	o := r.origin()
	baseline := float64(o.Y+pos.Y) + r.face.Metrics().Ascent
	text.Draw(r.img, line, r.face, float64(o.X+pos.X), baseline, r.color)
}

func (r *Raster) DrawImage(img image.Image, pos geometry.Position) {
	if img == nil {
		return
	}
	b := img.Bounds()
	dst := b.Sub(b.Min).Add(r.origin().Add(image.Pt(pos.X, pos.Y)))
	draw.Draw(r.img, dst, img, b.Min, draw.Over)
}

func (r *Raster) FillRect(rect geometry.Rect, c color.Color) {
	dst := rect.Image().Add(r.origin())
	draw.Draw(r.img, dst, image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) Sub(rect geometry.Rect) Context {
	sub := r.img.SubImage(rect.Image().Add(r.origin())).(*image.RGBA)
	return &Raster{img: sub, fonts: r.fonts, face: r.face, color: r.color}
}
