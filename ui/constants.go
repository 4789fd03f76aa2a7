package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 980
	WindowHeight = 720
)

// Split ratios
const (
	MainSplitRatio = 0.62 // previews and controls on top, log below
	SideSplitRatio = 0.55 // content form left, score and clock right
)

// Canvas sizes
const (
	PreviewMinWidth  = 240
	PreviewMinHeight = 135
	StatusMinWidth   = 200
	StatusMinHeight  = 100
)

// Clock
const (
	ClockTick       = 200 * time.Millisecond
	ClockFontSize   = 8
	DefaultClock    = "20:00"
	DefaultSnapshot = "snapshots"
)

// Preference keys
const (
	prefText      = "content.text"
	prefFontSize  = "content.font_size"
	prefAutoFit   = "content.autofit"
	prefTarget    = "content.target"
	prefHomeColor = "colors.home"
	prefAwayColor = "colors.away"
	prefHomeName  = "score.home_name"
	prefAwayName  = "score.away_name"
	prefClock     = "clock.length"
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewPreviewMinSize returns the minimum size of a preview canvas
func NewPreviewMinSize() fyne.Size {
	return fyne.NewSize(PreviewMinWidth, PreviewMinHeight)
}

// NewStatusMinSize returns the minimum size for the status view
func NewStatusMinSize() fyne.Size {
	return fyne.NewSize(StatusMinWidth, StatusMinHeight)
}
