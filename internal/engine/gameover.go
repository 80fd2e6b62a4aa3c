package engine

import (
	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
)

// Colors used once the game has ended.
const (
	TerminalColor = core.ColorGray
	SadFaceColor  = core.ColorBrightCyan
)

// sadFace holds glyph offsets from (rows/2-1, cols/2-1): two eyes and a
// frowning mouth.
var sadFace = [15]grid.Location{
	{Row: -2, Col: -2}, {Row: -2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: 2},
	{Row: -1, Col: -2}, {Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: 2},
	{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: -1}, {Row: 1, Col: -2},
	{Row: 2, Col: -2}, {Row: 2, Col: 2},
}

// IsGameOver reports whether the game has ended: either game over was
// already handled, or the active piece is stuck at the top.
func (e *Engine) IsGameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.over || e.stuck()
}

// stuck reports whether the active piece can move neither left, right
// nor down while touching row 0, or could not be placed at all.
// Caller holds e.mu.
func (e *Engine) stuck() bool {
	if e.toppedOut {
		return true
	}
	p := e.active
	if p.CanMoveLeft() || p.CanMoveRight() || p.CanMoveDown() {
		return false
	}
	return p.InRow(0)
}

// finish empties the board, marks the frozen piece and draws the sad
// face. Caller holds e.mu.
func (e *Engine) finish() {
	e.over = true
	e.grid.Clear()
	e.active.SetColor(TerminalColor)
	drawSadFace(e.grid)

	e.logger.Info("game over", "score", e.score, "level", e.level, "lines", e.totalLines, "ticks", e.ticks)
	e.render()
	e.publishStatus()
}

// drawSadFace places the glyph centered on the board, skipping any cell
// that falls outside a small grid.
func drawSadFace(g *grid.Grid) {
	mid := grid.Loc(g.NumRows()/2-1, g.NumCols()/2-1)
	for _, off := range sadFace {
		loc := mid.Add(off.Row, off.Col)
		if g.IsValid(loc) {
			g.Put(grid.NewBlock(SadFaceColor), loc)
		}
	}
}
