// Package snapshot writes presenter frames to PNG files instead of a window.
package snapshot

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/gg"

	"scoreboard/internal/display"
	"scoreboard/internal/geometry"
	"scoreboard/internal/logs"
	"scoreboard/internal/preview"
	"scoreboard/internal/render"
)

// WritePNG writes img to path, creating the directory.
func WritePNG(path string, img image.Image) error {
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Frame renders r at size.
func Frame(r render.Renderable, size geometry.Size, fonts *render.Fonts) *image.RGBA {
	raster := render.NewRaster(size, fonts)
	r.Render(raster)
	return raster.Image()
}

// Opener creates file surfaces for presenters.
type Opener struct {
	Dir   string
	Fonts *render.Fonts
	// History keeps every frame next to the latest one.
	History bool
	Logger  *slog.Logger
	Now     func() time.Time

	surfaces []*Surface
}

// Surfaces returns the surfaces opened so far.
func (o *Opener) Surfaces() []*Surface { return o.surfaces }

func (o *Opener) OpenPresenter(p *preview.Presenter, info display.Info, windowed bool) preview.Surface {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	s := &Surface{
		dir:       o.Dir,
		name:      fmt.Sprintf("presenter%d-%s", p.Monitor(), info.Side),
		presenter: p,
		fonts:     o.Fonts,
		history:   o.History,
		now:       now,
		log:       logs.WithComponent(o.Logger, "snapshot"),
	}
	o.surfaces = append(o.surfaces, s)
	return s
}

// Surface writes a presenter frame on every refresh.
type Surface struct {
	dir       string
	name      string
	presenter *preview.Presenter
	fonts     *render.Fonts
	history   bool
	now       func() time.Time
	log       *slog.Logger
	written   []string
	closed    bool
	lastErr   error
}

// Written returns the files written, in order.
func (s *Surface) Written() []string { return s.written }

// Err returns the last write error.
func (s *Surface) Err() error { return s.lastErr }

func (s *Surface) Refresh() {
	if s.closed {
		return
	}
	img := Frame(s.presenter.Text(), s.presenter.Text().Size(), s.fonts)
	paths := []string{LatestPath(s.dir, s.name)}
	if s.history {
		paths = append(paths, BuildPath(s.dir, s.name, NextFrameID(s.now())))
	}
	for _, path := range paths {
		if err := WritePNG(path, img); err != nil {
			s.lastErr = err
			s.log.Error("snapshot failed", "path", path, "err", err)
			return
		}
		s.written = append(s.written, path)
		s.log.Debug("snapshot written", "path", path)
	}
}

func (s *Surface) Close() { s.closed = true }
