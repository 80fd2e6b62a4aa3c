package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/games/tetris"
	"github.com/vovakirdan/tui-tetrad/internal/platform/tui"
	"github.com/vovakirdan/tui-tetrad/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate clockwise
  Down, S          - Move down one row
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Level 1, slower first level, more rows per level
  normal - Start at level 3
  hard   - Start at level 6, fewer rows per level
  fixed  - Keep the starting speed for the whole game

With --verbose, logs go to ~/.tetrad/tetrad.log.

Examples:
  tetrad play
  tetrad play tetris_fixed
  tetrad play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	modeID := tetris.ModeClassic
	if len(args) > 0 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'tetrad list')", modeID)
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	tetris.SetLogger(logger)

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	logger.Debug("starting", "mode", modeID, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playLogger returns a file logger with --verbose, since the terminal
// belongs to the game; otherwise logs are discarded.
func playLogger() (*log.Logger, func(), error) {
	if !flagVerbose {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	dir := filepath.Join(home, ".tetrad")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetrad.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}
