package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
	"github.com/vovakirdan/tui-tetrad/internal/tetrad"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Ticks    uint64 // gravity ticks run by the engine
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	Shape    tetrad.Shape
	Piece    [tetrad.Size]grid.Location
	Board    []core.Color
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	st := g.eng.Stats()
	p := g.eng.Active()
	return Snapshot{
		Tick:     g.tick,
		Ticks:    st.Ticks,
		Score:    st.Score,
		Level:    st.Level,
		Lines:    st.Lines,
		Interval: st.Interval,
		Shape:    p.Shape(),
		Piece:    p.Locations(),
		Board:    append([]core.Color(nil), g.cells...),
		State:    state,
	}
}
