package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrad/internal/engine"
	"github.com/vovakirdan/tui-tetrad/internal/platform/headless"
)

var (
	flagMaxTicks int
	flagRealtime bool
	flagFrames   int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the game loop without a UI",
	Long: `Run the engine with no player input until the game ends.

Pieces fall straight down, so the board fills and the game ends with the
sad face. Use it to check pacing, scoring and game over handling, or to
dump boards for debugging.

By default ticks run back to back. With --realtime the engine waits the
current interval between ticks, as it does in play.

Examples:
  tetrad headless
  tetrad headless --max-ticks 100 --frames 10
  tetrad headless --realtime --difficulty hard -v`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = until game over)")
	headlessCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Wait the level interval between ticks")
	headlessCmd.Flags().IntVar(&flagFrames, "frames", 0, "Print every Nth board to stdout (0 = none)")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())
	s := seed()

	opts := []engine.Option{
		engine.WithSource(rand.New(rand.NewSource(s))),
		engine.WithStatus(headless.NewStatusLogger(logger)),
		engine.WithLogger(logger),
	}
	if !flagRealtime {
		opts = append(opts, engine.WithSleeper(engine.NoDelay))
	}
	var frames *headless.Renderer
	if flagFrames > 0 {
		frames = headless.NewRenderer(cmd.OutOrStdout(), flagFrames)
		opts = append(opts, engine.WithRenderer(frames))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("starting", "seed", s, "board", fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols),
		"level", cfg.Difficulty.StartLevel)

	e := engine.New(cfg.Engine(), opts...)
	stats, err := e.Run(ctx, flagMaxTicks)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("headless: %w", err)
	}
	if frames != nil {
		if err := frames.Err(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Score:     %d\n", stats.Score)
	fmt.Fprintf(out, "Level:     %d\n", stats.Level)
	fmt.Fprintf(out, "Lines:     %d\n", stats.Lines)
	fmt.Fprintf(out, "Ticks:     %d\n", stats.Ticks)
	fmt.Fprintf(out, "Interval:  %v\n", stats.Interval)
	fmt.Fprintf(out, "Game over: %v\n", stats.GameOver)
	return nil
}
