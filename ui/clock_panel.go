package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"scoreboard/internal/format"
	"scoreboard/internal/gameclock"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

var periodOptions = []string{"None", "1", "2", "3", "4", "5"}

// ClockPanel runs the game clock shown at the bottom of every side. The
// clock goes to previews and presenters at once.
type ClockPanel struct {
	mu     sync.Mutex
	cancel context.CancelFunc

	s     *session
	clock *gameclock.Countdown

	lengthEntry  *widget.Entry
	periodSelect *widget.Select
	startBtn     *widget.Button
	stopBtn      *widget.Button
	resetBtn     *widget.Button
	hideBtn      *widget.Button
	container    *fyne.Container
}

// NewClockPanel creates a stopped clock.
func NewClockPanel(s *session) *ClockPanel {
	c := &ClockPanel{s: s, clock: gameclock.NewCountdown(0)}

	c.lengthEntry = widget.NewEntry()
	c.lengthEntry.SetText(DefaultClock)
	c.periodSelect = widget.NewSelect(periodOptions, nil)
	c.periodSelect.SetSelected("None")

	c.startBtn = widget.NewButton("Start", c.Start)
	c.stopBtn = widget.NewButton("Stop", c.Stop)
	c.stopBtn.Disable()
	c.resetBtn = widget.NewButton("Reset", c.Reset)
	c.hideBtn = widget.NewButton("Hide", c.Hide)

	c.container = container.NewVBox(
		widget.NewLabelWithStyle("Clock", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Length", c.lengthEntry),
			widget.NewFormItem("Period", c.periodSelect),
		),
		container.NewHBox(c.startBtn, c.stopBtn, c.resetBtn, c.hideBtn),
	)
	return c
}

// Container returns the clock controls.
func (c *ClockPanel) Container() *fyne.Container {
	return c.container
}

// LoadPreferences restores the clock length.
func (c *ClockPanel) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String(prefClock); v != "" {
		c.lengthEntry.SetText(v)
	}
}

// SavePreferences persists the clock length.
func (c *ClockPanel) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefClock, c.lengthEntry.Text)
}

// SetLength replaces the clock length field.
func (c *ClockPanel) SetLength(v string) { c.lengthEntry.SetText(v) }

// Period returns the selected period, 0 for none.
func (c *ClockPanel) Period() int {
	return parseIntOrDefault(c.periodSelect.Selected, 0)
}

// ClockText is the clock line: the period, if any, then the time left.
func ClockText(period int, remaining time.Duration) string {
	p := format.FormatPeriod(period)
	if p == "" {
		return format.FormatClock(remaining)
	}
	return p + "  " + format.FormatClock(remaining)
}

// Reset stops the clock and sets it to the length field.
func (c *ClockPanel) Reset() {
	d, err := parseClock(c.lengthEntry.Text)
	if err != nil {
		c.s.status.AppendLine(fmt.Sprintf("Clock error: %v", err))
		return
	}
	c.stopTicker()
	c.clock.Set(d)
	c.updateButtons()
	c.show(c.s.now())
}

// Start runs the clock. A clock never set starts from the length field.
func (c *ClockPanel) Start() {
	now := c.s.now()
	if c.clock.Expired(now) {
		c.Reset()
	}
	c.clock.Start(now)
	if !c.clock.Running() {
		return
	}
	c.startTicker()
	c.updateButtons()
	c.show(now)
	c.s.log.Debug("clock started", "remaining", c.clock.Remaining(now))
}

// Stop freezes the clock.
func (c *ClockPanel) Stop() {
	now := c.s.now()
	c.stopTicker()
	c.clock.Stop(now)
	c.updateButtons()
	c.show(now)
}

// Hide stops the clock and removes it from every side.
func (c *ClockPanel) Hide() {
	c.stopTicker()
	c.clock.Stop(c.s.now())
	c.updateButtons()
	c.s.panel.SetTimer("", screen.AnchorBottom, ClockFontSize, side.Both)
}

// Remaining returns the time left.
func (c *ClockPanel) Remaining() time.Duration {
	return c.clock.Remaining(c.s.now())
}

func (c *ClockPanel) show(now time.Time) {
	c.s.panel.SetTimer(ClockText(c.Period(), c.clock.Remaining(now)), screen.AnchorBottom, ClockFontSize, side.Both)
}

// tick runs on the UI thread.
func (c *ClockPanel) tick(now time.Time) {
	c.show(now)
	if c.clock.Running() && c.clock.Expired(now) {
		c.stopTicker()
		c.clock.Stop(now)
		c.updateButtons()
		c.s.status.AppendLine("Time is up.")
	}
}

func (c *ClockPanel) startTicker() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		t := time.NewTicker(ClockTick)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				fyne.Do(func() {
					if ctx.Err() == nil {
						c.tick(c.s.now())
					}
				})
			}
		}
	}()
}

func (c *ClockPanel) stopTicker() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *ClockPanel) updateButtons() {
	if c.clock.Running() {
		c.startBtn.Disable()
		c.stopBtn.Enable()
	} else {
		c.startBtn.Enable()
		c.stopBtn.Disable()
	}
}
