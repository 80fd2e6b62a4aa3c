package engine

import "github.com/vovakirdan/tui-tetrad/internal/grid"

// IsCompletedRow reports whether every column of row holds a block.
func IsCompletedRow(g *grid.Grid, row int) bool {
	for c := 0; c < g.NumCols(); c++ {
		if g.Get(grid.Loc(row, c)) == nil {
			return false
		}
	}
	return true
}

// ClearRow removes every block in row, then shifts each block above it
// down by one, working upward from the cleared row toward row 0.
func ClearRow(g *grid.Grid, row int) {
	cols := g.NumCols()
	for c := 0; c < cols; c++ {
		g.Remove(grid.Loc(row, c))
	}
	for r := row - 1; r >= 0; r-- {
		for c := 0; c < cols; c++ {
			if b := g.Get(grid.Loc(r, c)); b != nil {
				b.MoveTo(grid.Loc(r+1, c))
			}
		}
	}
}

// ClearCompletedRows clears every full row and returns how many were
// removed. Rows are scanned top to bottom; clearing row r only moves rows
// already scanned, so every row is examined exactly once.
func ClearCompletedRows(g *grid.Grid) int {
	count := 0
	for r := 0; r < g.NumRows(); r++ {
		if IsCompletedRow(g, r) {
			ClearRow(g, r)
			count++
		}
	}
	return count
}
