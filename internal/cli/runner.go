package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"scoreboard/internal/display"
	"scoreboard/internal/format"
	"scoreboard/internal/geometry"
	"scoreboard/internal/graphics"
	"scoreboard/internal/logs"
	"scoreboard/internal/preview"
	"scoreboard/internal/render"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
	"scoreboard/internal/snapshot"
)

// RunnerConfig holds all command-line options.
type RunnerConfig struct {
	// Display layout
	Displays []geometry.Rect
	Sides    []side.Set
	Primary  int
	Windowed bool

	// Content
	Text      string
	FontSize  float64
	AutoFit   bool
	HomeColor string
	AwayColor string
	Image     string
	Clock     string
	Blackout  bool

	// Background overlay
	Overlay         string
	OverlayPercent  float64
	OverlayAlpha    int
	OverlayPosition string

	// Output
	RenderDir string
	History   bool
	Verbose   bool
}

// Headless reports whether frames go to files instead of windows.
func (c *RunnerConfig) Headless() bool {
	return c.RenderDir != ""
}

// DisplayConfig assigns sides to the configured displays.
func (c *RunnerConfig) DisplayConfig() *display.Static {
	infos := display.Assign(c.Displays, c.Primary)
	if len(c.Sides) > 0 {
		infos = display.Override(infos, c.Sides)
	}
	return &display.Static{Displays: infos, Window: c.Windowed}
}

// TeamColors parses the team color flags.
func (c *RunnerConfig) TeamColors() (graphics.TeamColors, error) {
	home, err := graphics.Parse(c.HomeColor)
	if err != nil {
		return graphics.TeamColors{}, fmt.Errorf("invalid -home-color: %w", err)
	}
	away, err := graphics.Parse(c.AwayColor)
	if err != nil {
		return graphics.TeamColors{}, fmt.Errorf("invalid -away-color: %w", err)
	}
	return graphics.TeamColors{Home: home, Away: away}, nil
}

// Apply puts the configured content on every preview. It does not send it.
func (c *RunnerConfig) Apply(panel *preview.Panel) error {
	all := side.Home | side.Away | side.Error
	if c.Text != "" {
		panel.SetTextForPreviews(c.Text, c.FontSize, all)
	}
	if c.AutoFit {
		for _, p := range panel.Previews() {
			p.Text().SetAutoFit(true, all)
		}
	}
	if c.Image != "" {
		img, err := graphics.LoadImage(c.Image)
		if err != nil {
			return err
		}
		for _, p := range panel.Previews() {
			p.Text().SetImage(img, true, side.Both)
		}
	}
	if c.Overlay != "" {
		o, err := c.overlay()
		if err != nil {
			return err
		}
		for _, p := range panel.Previews() {
			p.Text().SetBackgroundOverlay(o, side.Both)
		}
	}
	if c.Clock != "" {
		d, err := format.ParseClock(c.Clock)
		if err != nil {
			return err
		}
		for _, p := range panel.Previews() {
			p.Text().SetTimerText(format.FormatClock(d), screen.AnchorBottom, c.FontSize/2, side.Both)
		}
	}
	return nil
}

func (c *RunnerConfig) overlay() (*screen.Overlay, error) {
	pos, err := parseOverlayPosition(c.OverlayPosition)
	if err != nil {
		return nil, err
	}
	img, err := graphics.LoadImage(c.Overlay)
	if err != nil {
		return nil, err
	}
	return &screen.Overlay{
		Image:            img,
		ScreenPercentage: c.OverlayPercent,
		Alpha:            uint8(c.OverlayAlpha),
		Position:         pos,
	}, nil
}

// RenderResult lists the frames written by a headless run.
type RenderResult struct {
	Files []string
}

// RunHeadless builds the previews, pushes them to file-backed presenters and
// returns the written frames.
func RunHeadless(cfg RunnerConfig, logger *slog.Logger) (*RenderResult, error) {
	if logger == nil {
		logger = logs.Discard()
	}
	colors, err := cfg.TeamColors()
	if err != nil {
		return nil, err
	}
	fonts, err := render.DefaultFonts()
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	opener := &snapshot.Opener{Dir: cfg.RenderDir, Fonts: fonts, History: cfg.History, Logger: logger}
	panel := preview.NewPanel(cfg.DisplayConfig(), preview.Options{
		InitialText: cfg.Text,
		Colors:      colors,
		Opener:      opener,
		Logger:      logger,
	})
	defer panel.Close()

	if err := cfg.Apply(panel); err != nil {
		return nil, err
	}
	if cfg.Blackout {
		panel.BlackoutPresenters()
	} else {
		panel.UpdatePresenters(side.Home | side.Away | side.Error)
	}

	result := &RenderResult{}
	var errs []error
	for _, s := range opener.Surfaces() {
		result.Files = append(result.Files, s.Written()...)
		if s.Err() != nil {
			errs = append(errs, s.Err())
		}
	}
	if len(opener.Surfaces()) == 0 {
		logger.Warn("no scoreboard displays configured, nothing rendered")
	}
	return result, errors.Join(errs...)
}

// PrintResult prints the written frames.
func PrintResult(w io.Writer, result *RenderResult) {
	fmt.Fprintf(w, "Rendered %d frame(s):\n", len(result.Files))
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
