// tetrad is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetrad play [mode]       - Play in the terminal (default mode: tetris)
//	tetrad headless          - Run the game loop without a UI
//	tetrad list              - List available modes
//	tetrad config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set frame rate for play (default: 60)
//	--seed <value>         - Set RNG seed for reproducible games
//	--config <path>        - Use a custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--verbose              - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetrad/internal/config"
	"github.com/vovakirdan/tui-tetrad/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrad",
	Short: "Tetrad - falling blocks in your terminal",
	Long: `Tetrad is a falling-block puzzle game played in the terminal.

Pieces of four blocks fall into a 20x10 well. Move and rotate them to
fill rows; full rows disappear and score points. Every ten rows the
level rises and pieces fall faster.

Available commands:
  play      - Play in the terminal
  headless  - Run the game loop without a UI
  list      - Show available modes
  config    - Print the effective configuration

Examples:
  tetrad play
  tetrad play --difficulty hard
  tetrad headless --max-ticks 500 --frames 50
  tetrad config --config ./my-tetris.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.TetrisConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	tetris.SetConfig(cfg)
	return cfg, nil
}

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "tetrad",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// seed returns the --seed value, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
