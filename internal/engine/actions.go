package engine

import "github.com/vovakirdan/tui-tetrad/internal/tetrad"

// OnUp rotates the active piece clockwise.
func (e *Engine) OnUp() {
	e.act(func(p *tetrad.Tetrad) { p.Rotate() })
}

// OnDown moves the active piece down one row. Unlike a tick it never
// locks the piece.
func (e *Engine) OnDown() {
	e.act(func(p *tetrad.Tetrad) { p.Translate(1, 0) })
}

// OnLeft moves the active piece one column left.
func (e *Engine) OnLeft() {
	e.act(func(p *tetrad.Tetrad) { p.Translate(0, -1) })
}

// OnRight moves the active piece one column right.
func (e *Engine) OnRight() {
	e.act(func(p *tetrad.Tetrad) { p.Translate(0, 1) })
}

// act applies a player move and re-renders. Illegal moves leave the piece
// where it was.
func (e *Engine) act(move func(*tetrad.Tetrad)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.over || e.toppedOut {
		return
	}
	move(e.active)
	e.render()
}
