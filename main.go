package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"scoreboard/internal/cli"
	"scoreboard/internal/logs"
	"scoreboard/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'scoreboard help' for usage.")
		os.Exit(1)
	}

	// Frames go to files; no window is opened
	if cfg != nil && cfg.Headless() {
		if err := runHeadless(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.scoreboard.gui")
	win, err := ui.BuildMainWindow(a, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	win.ShowAndRun()
}

func runHeadless(cfg *cli.RunnerConfig) error {
	logger := logs.New(os.Stderr, cfg.Verbose)
	logs.Init(logger)

	result, err := cli.RunHeadless(*cfg, logger)
	if result != nil {
		cli.PrintResult(os.Stdout, result)
	}
	return err
}
