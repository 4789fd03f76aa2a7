package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/geometry"
	"scoreboard/internal/render"
)

// ScreenCanvas rasterizes a Renderable at the widget's pixel size. It is the
// surface of a preview, a presenter or a quick-state entry.
type ScreenCanvas struct {
	widget.BaseWidget
	content render.Renderable
	fonts   *render.Fonts
	minSize fyne.Size

	OnTapped          func()
	OnTappedSecondary func()
}

// NewScreenCanvas creates a canvas showing content.
func NewScreenCanvas(content render.Renderable, fonts *render.Fonts, minSize fyne.Size) *ScreenCanvas {
	c := &ScreenCanvas{content: content, fonts: fonts, minSize: minSize}
	c.ExtendBaseWidget(c)
	return c
}

// SetContent replaces the renderable and repaints.
func (c *ScreenCanvas) SetContent(content render.Renderable) {
	c.content = content
	c.Refresh()
}

// Content returns the renderable shown.
func (c *ScreenCanvas) Content() render.Renderable { return c.content }

// Close is a no-op; the canvas lives as long as its container.
func (c *ScreenCanvas) Close() {}

// Tapped implements fyne.Tappable.
func (c *ScreenCanvas) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

// TappedSecondary implements fyne.SecondaryTappable.
func (c *ScreenCanvas) TappedSecondary(*fyne.PointEvent) {
	if c.OnTappedSecondary != nil {
		c.OnTappedSecondary()
	}
}

// Frame renders the content at w x h pixels.
func (c *ScreenCanvas) Frame(w, h int) image.Image {
	r := render.NewRaster(geometry.NewSize(max(w, 1), max(h, 1)), c.fonts)
	if c.content != nil {
		c.content.Render(r)
	}
	return r.Image()
}

// CreateRenderer returns a renderer drawing through a canvas.Raster.
func (c *ScreenCanvas) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)
	raster := canvas.NewRaster(c.Frame)
	raster.ScaleMode = canvas.ImageScalePixels
	return &screenCanvasRenderer{
		canvas:  c,
		raster:  raster,
		objects: []fyne.CanvasObject{raster},
	}
}

type screenCanvasRenderer struct {
	canvas  *ScreenCanvas
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *screenCanvasRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *screenCanvasRenderer) MinSize() fyne.Size {
	return r.canvas.minSize
}

func (r *screenCanvasRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *screenCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *screenCanvasRenderer) Destroy()                     {}
