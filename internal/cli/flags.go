package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"scoreboard/internal/display"
	"scoreboard/internal/screen"
	"scoreboard/internal/side"
)

// DefaultDisplays is used when -displays is not given: the operator's
// monitor and one scoreboard monitor.
const DefaultDisplays = "1920x1080,1920x1080+1920+0"

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config if no arguments are given, and flag.ErrHelp after
// printing the usage if help is requested.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = GUI with defaults
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage(os.Stderr)
		return nil, flag.ErrHelp
	}

	return Parse(os.Args[1:])
}

// Parse parses args (without the program name).
func Parse(args []string) (*RunnerConfig, error) {
	cfg := &RunnerConfig{
		FontSize:        10,
		HomeColor:       "blue",
		AwayColor:       "red",
		OverlayPercent:  0.5,
		OverlayAlpha:    255,
		OverlayPosition: "center",
	}
	var displays, sides string

	fs := flag.NewFlagSet("scoreboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Display layout
	fs.StringVar(&displays, "displays", DefaultDisplays, "Comma separated display geometries WxH[+X+Y]")
	fs.StringVar(&sides, "sides", "", "Comma separated sides per display (none, home, away, home+away)")
	fs.IntVar(&cfg.Primary, "primary", 0, "Index of the operator's display")
	fs.BoolVar(&cfg.Windowed, "windowed", false, "Show presenters in resizable windows")

	// Content
	fs.StringVar(&cfg.Text, "text", "", "Text shown on every side")
	fs.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "Logical font size (75 fills the screen height)")
	fs.BoolVar(&cfg.AutoFit, "autofit", false, "Fit text to each side")
	fs.StringVar(&cfg.HomeColor, "home-color", cfg.HomeColor, "Home team color (name or #rrggbb)")
	fs.StringVar(&cfg.AwayColor, "away-color", cfg.AwayColor, "Away team color (name or #rrggbb)")
	fs.StringVar(&cfg.Image, "image", "", "Foreground image shown scaled on every side")
	fs.StringVar(&cfg.Overlay, "overlay", "", "Background overlay image (a logo) on every team side")
	fs.Float64Var(&cfg.OverlayPercent, "overlay-percent", cfg.OverlayPercent, "Overlay size as a fraction of the smaller screen dimension")
	fs.IntVar(&cfg.OverlayAlpha, "overlay-alpha", cfg.OverlayAlpha, "Overlay opacity, 0 to 255")
	fs.StringVar(&cfg.OverlayPosition, "overlay-position", cfg.OverlayPosition, "Overlay placement: center or bottom-left")
	fs.StringVar(&cfg.Clock, "clock", "", "Clock shown at the bottom of every side (M:SS)")
	fs.BoolVar(&cfg.Blackout, "blackout", false, "Black out every presenter")

	// Output
	fs.StringVar(&cfg.RenderDir, "render", "", "Write presenter frames as PNG files to this directory instead of opening windows")
	fs.BoolVar(&cfg.History, "history", false, "Keep every rendered frame (with -render)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			PrintUsage(os.Stderr)
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	dims, err := display.ParseGeometries(displays)
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: no displays", display.ErrBadGeometry)
	}
	cfg.Displays = dims
	cfg.Text = strings.ReplaceAll(cfg.Text, `\n`, "\n")

	if sides != "" {
		for _, s := range strings.Split(sides, ",") {
			set, err := side.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("invalid -sides: %w", err)
			}
			cfg.Sides = append(cfg.Sides, set)
		}
	}

	if cfg.Primary < 0 || cfg.Primary >= len(cfg.Displays) {
		return nil, fmt.Errorf("-primary %d out of range (have %d displays)", cfg.Primary, len(cfg.Displays))
	}
	if cfg.FontSize <= 0 {
		return nil, fmt.Errorf("-font-size must be positive")
	}
	if cfg.OverlayPercent <= 0 || cfg.OverlayPercent > 1 {
		return nil, fmt.Errorf("-overlay-percent %g out of range (0, 1]", cfg.OverlayPercent)
	}
	if cfg.OverlayAlpha < 0 || cfg.OverlayAlpha > 255 {
		return nil, fmt.Errorf("-overlay-alpha %d out of range 0-255", cfg.OverlayAlpha)
	}
	if _, err := parseOverlayPosition(cfg.OverlayPosition); err != nil {
		return nil, err
	}
	if _, err := cfg.TeamColors(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, `Scoreboard

Usage: scoreboard [flags]
       scoreboard help    (show this message)

Without flags the control window opens with one scoreboard display.

DISPLAYS:
  -displays <list>         Display geometries (default: %s)
  -sides <list>            Side per display: none, home, away, home+away
                           (default: operator display none, then home, then away)
  -primary <index>         Operator's display (default: 0)
  -windowed                Presenters in resizable windows

CONTENT:
  -text <text>             Text on every side (use \n for line breaks)
  -font-size <size>        Logical font size (default: 10)
  -autofit                 Fit text to each side
  -home-color <color>      Home team color (default: blue)
  -away-color <color>      Away team color (default: red)
  -image <path>            Foreground image, scaled to each side
  -overlay <path>          Background overlay (logo) on each team side
  -overlay-percent <f>     Overlay size, fraction of the smaller dimension (default: 0.5)
  -overlay-alpha <0-255>   Overlay opacity (default: 255)
  -overlay-position <pos>  center or bottom-left (default: center)
  -clock <M:SS>            Clock at the bottom of each side
  -blackout                Black out every presenter

OUTPUT:
  -render <dir>            Write presenter frames as PNG instead of opening windows
  -history                 Keep every frame, not only the latest
  -v, -verbose             Verbose output

EXAMPLES:
  # Home and away split on one scoreboard monitor
  scoreboard -sides none,home+away

  # Render a frame per presenter without a display
  scoreboard -displays 1280x720,1920x1080,1920x1080 -text "Tigers\n3" -autofit -render out

`, DefaultDisplays)
}

func parseOverlayPosition(v string) (screen.OverlayPosition, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "center", "centre", "":
		return screen.OverlayCentered, nil
	case "bottom-left", "bottomleft":
		return screen.OverlayBottomLeft, nil
	}
	return 0, fmt.Errorf("invalid -overlay-position %q (want center or bottom-left)", v)
}
