package preview

import (
	"fmt"
	"log/slog"

	"scoreboard/internal/display"
	"scoreboard/internal/graphics"
	"scoreboard/internal/logs"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

// Panel holds one preview per display that shows scoreboard content.
type Panel struct {
	cfg      display.Config
	opts     Options
	previews []*Preview
	log      *slog.Logger
}

// NewPanel builds previews for every display carrying a side.
func NewPanel(cfg display.Config, opts Options) *Panel {
	p := &Panel{cfg: cfg, opts: opts, log: logs.WithComponent(opts.Logger, "panel")}
	for _, i := range p.contentDisplays() {
		p.previews = append(p.previews, New(cfg, i, opts))
	}
	p.log.Info("previews created", "count", len(p.previews), "displays", cfg.NumberOfDisplays())
	return p
}

func (p *Panel) contentDisplays() []int {
	var out []int
	for i := 0; i < p.cfg.NumberOfDisplays(); i++ {
		if p.cfg.DisplayDetails(i).Shows() {
			out = append(out, i)
		}
	}
	return out
}

// Previews returns the previews in display order.
func (p *Panel) Previews() []*Preview { return p.previews }

// NumPreviews returns the number of previews.
func (p *Panel) NumPreviews() int { return len(p.previews) }

// Preview returns the preview at index.
func (p *Panel) Preview(index int) (*Preview, bool) {
	if index < 0 || index >= len(p.previews) {
		return nil, false
	}
	return p.previews[index], true
}

// each runs fn on every preview in order. A panic in one preview is logged
// and the rest are still visited.
func (p *Panel) each(op string, fn func(*Preview)) {
	for _, pv := range p.previews {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.log.Warn("presenter update failed",
						"op", op, "monitor", pv.Monitor(), "err", fmt.Sprint(r))
				}
			}()
			fn(pv)
		}()
	}
}

// UpdatePresenters sends the sides matching filter from every preview to its presenter.
func (p *Panel) UpdatePresenters(filter side.Set) {
	p.each("update", func(pv *Preview) { pv.SendSidesToPresenter(filter) })
}

// SetToPresenters shows t on every presenter without changing the previews.
func (p *Panel) SetToPresenters(t *screen.Text) {
	p.SetSidesToPresenters(t, side.Home|side.Away|side.Error)
}

// SetSidesToPresenters shows the sides of t matching filter on every presenter.
func (p *Panel) SetSidesToPresenters(t *screen.Text, filter side.Set) {
	p.each("set", func(pv *Preview) { pv.SendScreenSidesToPresenter(t, filter) })
}

// BlackoutPresenters blacks out every presenter.
func (p *Panel) BlackoutPresenters() {
	p.each("blackout", func(pv *Preview) { pv.BlackoutPresenter() })
}

// SetTextForPreviews replaces the text of the matching sides on every preview.
func (p *Panel) SetTextForPreviews(text string, size float64, filter side.Set) {
	p.each("text", func(pv *Preview) {
		pv.Text().SetText(text, size, filter)
		pv.Refresh()
	})
}

// SetTimer shows a clock on every preview and presenter.
func (p *Panel) SetTimer(text string, anchor screen.Anchor, size float64, filter side.Set) {
	p.each("timer", func(pv *Preview) { pv.SetTimer(text, anchor, size, filter) })
}

// SetTeamColors changes the team palette everywhere.
func (p *Panel) SetTeamColors(colors graphics.TeamColors) {
	p.opts.Colors = colors
	p.each("colors", func(pv *Preview) { pv.SetTeamColors(colors) })
}

// UpdatePreviewsFromSettings rebinds the previews after the display
// configuration changed. Previews are reused in order; extra ones are closed
// and missing ones created. Each side keeps its content on whichever display
// shows it now.
func (p *Panel) UpdatePreviewsFromSettings() {
	pool := contents{}
	for _, pv := range p.previews {
		pool.collect(pv.Text())
	}
	displays := p.contentDisplays()
	for i, monitor := range displays {
		if i < len(p.previews) {
			p.previews[i].rebind(monitor, pool)
			continue
		}
		p.previews = append(p.previews, newSeeded(p.cfg, monitor, p.opts, pool))
	}
	for _, extra := range p.previews[len(displays):] {
		extra.Close()
	}
	p.previews = p.previews[:len(displays)]
}

// Close closes every preview and presenter.
func (p *Panel) Close() {
	for _, pv := range p.previews {
		pv.Close()
	}
}
