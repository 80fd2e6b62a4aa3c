package engine

import (
	"time"

	"github.com/vovakirdan/tui-tetrad/internal/grid"
	"github.com/vovakirdan/tui-tetrad/internal/tetrad"
)

// Stats summarizes a game.
type Stats struct {
	Score    int
	Level    int
	Lines    int // total rows cleared
	Ticks    uint64
	Interval time.Duration
	GameOver bool
}

// Stats returns the current summary.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		Score:    e.score,
		Level:    e.level,
		Lines:    e.totalLines,
		Ticks:    e.ticks,
		Interval: e.interval,
		GameOver: e.over,
	}
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Level returns the current level.
func (e *Engine) Level() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}

// Interval returns the current delay between ticks.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// Grid returns the board. Callers must not mutate it while the engine
// is running.
func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// Active returns the falling piece.
func (e *Engine) Active() *tetrad.Tetrad {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalLines
}
