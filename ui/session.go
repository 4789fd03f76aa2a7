package ui

import (
	"log/slog"
	"time"

	"scoreboard/internal/display"
	"scoreboard/internal/export"
	"scoreboard/internal/logs"
	"scoreboard/internal/preview"
	"scoreboard/internal/render"
)

// session is what the panels of the main window share.
type session struct {
	panel    *preview.Panel
	displays *display.Static
	fonts    *render.Fonts
	status   *StatusView
	history  *HistoryView
	log      *slog.Logger
	now      func() time.Time
}

func newSession(panel *preview.Panel, displays *display.Static, fonts *render.Fonts, logger *slog.Logger) *session {
	return &session{
		panel:    panel,
		displays: displays,
		fonts:    fonts,
		status:   NewStatusView(),
		history:  NewHistoryView(),
		log:      logs.WithComponent(logger, "ui"),
		now:      time.Now,
	}
}

// presenters counts the previews that have a presenter.
func (s *session) presenters() int {
	n := 0
	for _, pv := range s.panel.Previews() {
		if _, ok := pv.Presenter(); ok {
			n++
		}
	}
	return n
}

// refreshAll repaints every preview and presenter.
func (s *session) refreshAll() {
	for _, pv := range s.panel.Previews() {
		pv.Refresh()
		if p, ok := pv.Presenter(); ok {
			p.Refresh()
		}
	}
}

func (s *session) record(p export.Push) {
	p.Time = s.now()
	p.Presenters = s.presenters()
	s.history.Add(p)
}
