// Package config provides YAML-based game configuration loading and
// difficulty presets for tetrad.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetrad/internal/engine"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines gravity pacing in milliseconds.
type TimingConfig struct {
	InitialIntervalMS int `yaml:"initial_interval_ms"`
	SpeedStepMS       int `yaml:"speed_step_ms"`
	MinIntervalMS     int `yaml:"min_interval_ms"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DifficultyConfig defines where a game starts and whether it speeds up.
type DifficultyConfig struct {
	StartLevel  int  `yaml:"start_level"`
	Progression bool `yaml:"progression"` // false keeps the starting speed
}

// Minimum playable board. Smaller boards cannot fit every spawn shape.
const (
	minRows = 4
	minCols = 4
)

// Validate reports configuration values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Rows < minRows || c.Board.Cols < minCols {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			minRows, minCols, c.Board.Rows, c.Board.Cols))
	}
	if c.Timing.InitialIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("initial_interval_ms must be positive, got %d", c.Timing.InitialIntervalMS))
	}
	if c.Timing.MinIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("min_interval_ms must be positive, got %d", c.Timing.MinIntervalMS))
	}
	if c.Timing.SpeedStepMS < 0 {
		errs = append(errs, fmt.Errorf("speed_step_ms must not be negative, got %d", c.Timing.SpeedStepMS))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	if c.Difficulty.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start_level must be at least 1, got %d", c.Difficulty.StartLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Engine converts the configuration into engine parameters.
func (c TetrisConfig) Engine() engine.Config {
	step := time.Duration(c.Timing.SpeedStepMS) * time.Millisecond
	if !c.Difficulty.Progression {
		step = 0
	}
	return engine.Config{
		Rows:          c.Board.Rows,
		Cols:          c.Board.Cols,
		StartLevel:    c.Difficulty.StartLevel,
		Interval:      time.Duration(c.Timing.InitialIntervalMS) * time.Millisecond,
		SpeedStep:     step,
		MinInterval:   time.Duration(c.Timing.MinIntervalMS) * time.Millisecond,
		LinesPerLevel: c.Scoring.LinesPerLevel,
	}
}
