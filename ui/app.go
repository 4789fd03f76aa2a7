package ui

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"scoreboard/internal/cli"
	"scoreboard/internal/graphics"
	"scoreboard/internal/logs"
	"scoreboard/internal/preview"
	"scoreboard/internal/render"
	"scoreboard/internal/side"
)

// BuildMainWindow creates and configures the operator's window and opens a
// presenter window per scoreboard display. A nil cfg uses the default
// displays and the saved preferences only.
func BuildMainWindow(app fyne.App, cfg *cli.RunnerConfig) (fyne.Window, error) {
	fromFlags := cfg != nil
	if !fromFlags {
		var err error
		if cfg, err = cli.Parse(nil); err != nil {
			return nil, err
		}
	}

	win := app.NewWindow("Scoreboard")
	win.Resize(NewWindowSize())
	win.SetMaster()

	fonts, err := render.DefaultFonts()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	status := NewStatusView()
	logger := logs.New(io.MultiWriter(os.Stderr, status), cfg.Verbose)
	logs.Init(logger)

	prefs := app.Preferences()
	form := NewContentForm()
	form.LoadPreferences(prefs)
	if fromFlags {
		seedForm(form, cfg)
	}
	colors, err := form.TeamColors()
	if err != nil {
		status.AppendLine(fmt.Sprintf("Color error: %v", err))
		colors = graphics.DefaultTeamColors()
	}

	displays := cfg.DisplayConfig()
	panel := preview.NewPanel(displays, preview.Options{
		InitialText: form.Text(),
		Colors:      colors,
		Opener:      &WindowOpener{App: app, Fonts: fonts, Logger: logger},
		Logger:      logger,
	})

	s := newSession(panel, displays, fonts, logger)
	s.status = status

	previews := NewPreviewView(s)
	quick := NewQuickStateView(s, preview.NewQuickState(panel, colors), previews.SelectedText)
	score := NewScorePanel(s, form)
	score.LoadPreferences(prefs)
	clock := NewClockPanel(s)
	clock.LoadPreferences(prefs)
	snapshots := NewSnapshotList(DefaultSnapshot, logger)
	controls := NewControls(s, form, snapshots, colors)
	controls.OnDisplaysChanged = previews.Rebuild

	if fromFlags {
		if err := applyFlags(s, cfg, controls, clock); err != nil {
			status.AppendLine(fmt.Sprintf("Error: %v", err))
		}
	}

	leftPanel := container.NewVScroll(container.NewVBox(
		form.Container(),
		controls.Container(),
		score.Container(),
		clock.Container(),
	))

	rightPanel := container.NewVBox(
		container.NewHScroll(previews.Container()),
		quick.Container(),
	)

	topRow := container.NewHSplit(leftPanel, rightPanel)
	topRow.SetOffset(SideSplitRatio)

	statusTab := container.NewTabItem("Status", status.Container())
	historyTab := container.NewTabItem("History", s.history.Container())
	snapshotTab := container.NewTabItem("Snapshots", snapshots.Container())
	tabs := container.NewAppTabs(statusTab, historyTab, snapshotTab)

	content := container.NewVSplit(topRow, tabs)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		form.SavePreferences(prefs)
		score.SavePreferences(prefs)
		clock.SavePreferences(prefs)
		clock.Hide()
		panel.Close()
		fonts.Close()
		win.Close()
	})

	return win, nil
}

// seedForm copies content given on the command line into the form.
func seedForm(form *ContentForm, cfg *cli.RunnerConfig) {
	if cfg.Text != "" {
		form.SetText(cfg.Text)
	}
	form.SetFontSize(cfg.FontSize)
	if cfg.AutoFit {
		form.SetAutoFit(true)
	}
	form.SetColors(cfg.HomeColor, cfg.AwayColor)
}

// applyFlags puts the command line content on the previews and sends it.
// The clock panel owns the clock, so -clock only sets its length.
func applyFlags(s *session, cfg *cli.RunnerConfig, controls *Controls, clock *ClockPanel) error {
	content := *cfg
	content.Clock = ""
	if err := content.Apply(s.panel); err != nil {
		return err
	}
	if cfg.Clock != "" {
		clock.SetLength(cfg.Clock)
		clock.Reset()
	}
	if cfg.Blackout {
		controls.Blackout()
		return nil
	}
	controls.Send(side.Home | side.Away | side.Error)
	return nil
}
