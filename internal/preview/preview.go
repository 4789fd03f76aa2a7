// Package preview pairs the operator's editable previews with the presenters
// shown on the scoreboard monitors.
package preview

import (
	"log/slog"

	"scoreboard/internal/display"
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/logs"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

// DefaultWidth is the preview width when Options.Width is unset.
const DefaultWidth = 320

// Surface displays a presenter or preview and repaints on Refresh.
type Surface interface {
	Refresh()
	Close()
}

// SurfaceOpener creates the surface a presenter is shown on.
type SurfaceOpener interface {
	OpenPresenter(p *Presenter, info display.Info, windowed bool) Surface
}

// OpenerFunc adapts a function to SurfaceOpener.
type OpenerFunc func(p *Presenter, info display.Info, windowed bool) Surface

func (f OpenerFunc) OpenPresenter(p *Presenter, info display.Info, windowed bool) Surface {
	return f(p, info, windowed)
}

// Options configure previews.
type Options struct {
	InitialText string
	Colors      graphics.TeamColors
	// Opener is nil when presenters are not shown anywhere.
	Opener SurfaceOpener
	Logger *slog.Logger
	Width  int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// Presenter is the full-size mirror of a preview on one monitor.
type Presenter struct {
	monitor int
	text    *screen.Text
	surface Surface
}

// Text returns the presenter's content.
func (p *Presenter) Text() *screen.Text { return p.text }

// Monitor returns the display index the presenter is shown on.
func (p *Presenter) Monitor() int { return p.monitor }

// Refresh repaints the presenter surface.
func (p *Presenter) Refresh() {
	if p.surface != nil {
		p.surface.Refresh()
	}
}

// Close removes the presenter surface.
func (p *Presenter) Close() {
	if p.surface != nil {
		p.surface.Close()
		p.surface = nil
	}
}

// Preview is the editable content for one monitor. Edits reach the presenter
// only when sent.
type Preview struct {
	cfg       display.Config
	opts      Options
	monitor   int
	info      display.Info
	text      *screen.Text
	presenter *Presenter
	surface   Surface
	log       *slog.Logger
}

// New builds the preview for a monitor and opens its presenter.
func New(cfg display.Config, monitor int, opts Options) *Preview {
	return newSeeded(cfg, monitor, opts, nil)
}

func newSeeded(cfg display.Config, monitor int, opts Options, pool contents) *Preview {
	p := &Preview{cfg: cfg, opts: opts, log: logs.WithComponent(opts.Logger, "preview")}
	p.bind(monitor, pool)
	return p
}

// contents holds, per side, the content a side showed before a rebind.
type contents map[side.Set]*screen.Side

// collect adds the sides of t not already in the pool.
func (c contents) collect(t *screen.Text) {
	if t == nil {
		return
	}
	for _, k := range t.Children() {
		if _, ok := c[k.Tag()]; !ok {
			c[k.Tag()] = k
		}
	}
}

// PreviewSize is the preview's size for a display, keeping the display's
// aspect ratio. Displays without a usable ratio are shown at 4:3.
func PreviewSize(info display.Info, width int) geometry.Size {
	ratio := info.Dimensions.Size.Ratio()
	if ratio == 0 || info.Side.Has(side.Error) {
		ratio = 4.0 / 3.0
	}
	return geometry.NewSize(width, max(int(float64(width)/ratio), 1))
}

// bind builds the content for monitor. Sides found in pool take over its
// content whichever display showed them before.
func (p *Preview) bind(monitor int, pool contents) {
	p.monitor = monitor
	p.info = p.cfg.DisplayDetails(monitor)
	p.text = screen.NewPreview(p.opts.InitialText, p.info.Side, PreviewSize(p.info, p.opts.width()), p.opts.Colors)
	for _, k := range p.text.Children() {
		if old, ok := pool[k.Tag()]; ok {
			k.SetAll(old)
		}
	}
	p.openPresenter()
}

func (p *Preview) openPresenter() {
	if p.info.Side.Has(side.Error) || !p.info.Shows() {
		p.log.Debug("no presenter", "monitor", p.monitor, "side", p.info.Side)
		return
	}
	size := p.info.Dimensions.Size
	if size.Empty() {
		size = p.text.Size()
	}
	p.presenter = &Presenter{monitor: p.monitor, text: screen.NewPresenter(p.text, size)}
	if p.opts.Opener != nil {
		p.presenter.surface = p.opts.Opener.OpenPresenter(p.presenter, p.info, p.cfg.Windowed())
	}
	p.log.Debug("presenter opened", "monitor", p.monitor, "side", p.info.Side, "size", size)
}

// Text returns the editable content.
func (p *Preview) Text() *screen.Text { return p.text }

// Monitor returns the display index.
func (p *Preview) Monitor() int { return p.monitor }

// Info returns the display the preview is bound to.
func (p *Preview) Info() display.Info { return p.info }

// Presenter returns the paired presenter, if any.
func (p *Preview) Presenter() (*Presenter, bool) { return p.presenter, p.presenter != nil }

// SetSurface attaches the surface showing the preview itself.
func (p *Preview) SetSurface(s Surface) { p.surface = s }

// Refresh repaints the preview surface.
func (p *Preview) Refresh() {
	if p.surface != nil {
		p.surface.Refresh()
	}
}

// SendToPresenter copies the preview's content to its presenter.
func (p *Preview) SendToPresenter() {
	p.SendSidesToPresenter(side.Home | side.Away | side.Error)
}

// SendSidesToPresenter copies the sides matching filter to the presenter.
func (p *Preview) SendSidesToPresenter(filter side.Set) {
	if p.presenter == nil {
		return
	}
	p.presenter.text.SetAllFor(p.text, filter)
	p.presenter.Refresh()
	p.log.Debug("sent to presenter", "monitor", p.monitor, "sides", filter)
}

// SendScreenToPresenter copies other content to the presenter, leaving the
// preview unchanged.
func (p *Preview) SendScreenToPresenter(t *screen.Text) {
	p.SendScreenSidesToPresenter(t, side.Home|side.Away|side.Error)
}

// SendScreenSidesToPresenter is SendScreenToPresenter limited to the sides
// matching filter.
func (p *Preview) SendScreenSidesToPresenter(t *screen.Text, filter side.Set) {
	if p.presenter == nil || t == nil {
		return
	}
	p.presenter.text.SetAllFor(t, filter)
	p.presenter.Refresh()
}

// BlackoutPresenter blacks out the presenter only.
func (p *Preview) BlackoutPresenter() {
	if p.presenter == nil {
		return
	}
	p.presenter.text.Blackout()
	p.presenter.Refresh()
}

// SetTimer shows a running clock on the preview and the presenter.
func (p *Preview) SetTimer(text string, anchor screen.Anchor, size float64, filter side.Set) {
	p.text.SetTimerText(text, anchor, size, filter)
	p.Refresh()
	if p.presenter != nil {
		p.presenter.text.SetTimerText(text, anchor, size, filter)
		p.presenter.Refresh()
	}
}

// SetTeamColors changes the palette for default backgrounds.
func (p *Preview) SetTeamColors(colors graphics.TeamColors) {
	p.opts.Colors = colors
	p.text.SetTeamColors(colors)
	if p.presenter != nil {
		p.presenter.text.SetTeamColors(colors)
	}
}

// ResetFromSettings rebinds the preview to a monitor after the display
// configuration changed. Sides this preview already showed keep their content.
func (p *Preview) ResetFromSettings(monitor int) {
	pool := contents{}
	pool.collect(p.text)
	p.rebind(monitor, pool)
}

func (p *Preview) rebind(monitor int, pool contents) {
	p.closePresenter()
	p.bind(monitor, pool)
	p.Refresh()
	p.log.Info("display settings applied", "monitor", monitor, "side", p.info.Side)
}

func (p *Preview) closePresenter() {
	if p.presenter != nil {
		p.presenter.Close()
		p.presenter = nil
	}
}

// Close removes the presenter and the preview surface.
func (p *Preview) Close() {
	p.closePresenter()
	if p.surface != nil {
		p.surface.Close()
		p.surface = nil
	}
}
