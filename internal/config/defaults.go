package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			InitialIntervalMS: 1000,
			SpeedStepMS:       100,
			MinIntervalMS:     50,
		},
		Scoring: ScoringConfig{
			LinesPerLevel: 10,
		},
		Difficulty: DifficultyConfig{
			StartLevel:  1,
			Progression: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
