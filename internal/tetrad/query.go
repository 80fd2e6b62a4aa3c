package tetrad

import "github.com/vovakirdan/tui-tetrad/internal/grid"

// BlocksInRow returns the piece's blocks in the given row, in block order.
func (t *Tetrad) BlocksInRow(row int) []*grid.Block {
	var out []*grid.Block
	for _, b := range t.blocks {
		if loc, ok := b.Location(); ok && loc.Row == row {
			out = append(out, b)
		}
	}
	return out
}

// BlocksInCol returns the piece's blocks in the given column, in block order.
func (t *Tetrad) BlocksInCol(col int) []*grid.Block {
	var out []*grid.Block
	for _, b := range t.blocks {
		if loc, ok := b.Location(); ok && loc.Col == col {
			out = append(out, b)
		}
	}
	return out
}

// extreme returns the first block whose key is strictly better than all
// blocks before it.
func (t *Tetrad) extreme(better func(a, b grid.Location) bool) *grid.Block {
	best := t.blocks[0]
	bestLoc, _ := best.Location()
	for _, b := range t.blocks[1:] {
		loc, _ := b.Location()
		if better(loc, bestLoc) {
			best, bestLoc = b, loc
		}
	}
	return best
}

// Leftmost returns the block with the smallest column.
func (t *Tetrad) Leftmost() *grid.Block {
	return t.extreme(func(a, b grid.Location) bool { return a.Col < b.Col })
}

// Rightmost returns the block with the largest column.
func (t *Tetrad) Rightmost() *grid.Block {
	return t.extreme(func(a, b grid.Location) bool { return a.Col > b.Col })
}

// Lowest returns the block with the largest row.
func (t *Tetrad) Lowest() *grid.Block {
	return t.extreme(func(a, b grid.Location) bool { return a.Row > b.Row })
}

// CanMoveLeft reports whether every block in the leftmost column has a
// free, in-bounds cell to its left.
func (t *Tetrad) CanMoveLeft() bool {
	if !t.Placed() {
		return false
	}
	loc, _ := t.Leftmost().Location()
	return t.edgeClear(t.BlocksInCol(loc.Col), 0, -1)
}

// CanMoveRight reports whether every block in the rightmost column has a
// free, in-bounds cell to its right.
func (t *Tetrad) CanMoveRight() bool {
	if !t.Placed() {
		return false
	}
	loc, _ := t.Rightmost().Location()
	return t.edgeClear(t.BlocksInCol(loc.Col), 0, 1)
}

// CanMoveDown reports whether every block in the lowest row has a free,
// in-bounds cell below it.
func (t *Tetrad) CanMoveDown() bool {
	if !t.Placed() {
		return false
	}
	loc, _ := t.Lowest().Location()
	return t.edgeClear(t.BlocksInRow(loc.Row), 1, 0)
}

func (t *Tetrad) edgeClear(edge []*grid.Block, dRow, dCol int) bool {
	for _, b := range edge {
		loc, _ := b.Location()
		next := loc.Add(dRow, dCol)
		if !t.grid.IsValid(next) || t.grid.Get(next) != nil {
			return false
		}
	}
	return true
}

// InRow reports whether any block sits in the given row.
func (t *Tetrad) InRow(row int) bool {
	return len(t.BlocksInRow(row)) > 0
}
