package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
	"github.com/vovakirdan/galactic-lander/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a lander session in this terminal.

Controls:
  A/Left      - Turn left
  D/Right     - Turn right
  Space       - Engine on/off
  =/+/Up      - Raise thrust
  -/Down      - Lower thrust
  /           - Toggle precise turning
  Enter       - Restart
  Q/Backspace - Quit

Examples:
  lander play
  lander play --seed 7
  lander play --config ./my-lander.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("running lander: %w", err)
	}
	return nil
}

// openLogger opens the log file for appending. An empty path yields a nil
// logger, which the model replaces with one that discards everything.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
	})
	return logger, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}
