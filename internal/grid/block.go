package grid

import "github.com/vovakirdan/tui-tetrad/internal/core"

// Block is a single occupant cell: a color plus a lookup handle to the
// grid and location it currently sits in. The handle is nil while the
// block is unplaced. The Grid remains the authority on occupancy.
type Block struct {
	color core.Color
	grid  *Grid
	loc   Location
}

// NewBlock creates an unplaced block with the given color.
func NewBlock(c core.Color) *Block {
	return &Block{color: c}
}

// Color returns the block color.
func (b *Block) Color() core.Color {
	return b.color
}

// SetColor changes the block color.
func (b *Block) SetColor(c core.Color) {
	b.color = c
}

// Grid returns the grid the block is placed in, or nil.
func (b *Block) Grid() *Grid {
	return b.grid
}

// Location returns the block location and whether the block is placed.
func (b *Block) Location() (Location, bool) {
	if b.grid == nil {
		return Location{}, false
	}
	return b.loc, true
}

// Placed reports whether the block currently occupies a grid slot.
func (b *Block) Placed() bool {
	return b.grid != nil
}

// PutSelfInGrid places the block at loc, replacing any occupant there.
func (b *Block) PutSelfInGrid(g *Grid, loc Location) {
	g.Put(b, loc)
}

// RemoveSelfFromGrid lifts the block out of its grid. No-op if unplaced.
func (b *Block) RemoveSelfFromGrid() {
	if b.grid == nil {
		return
	}
	b.grid.Remove(b.loc)
}

// MoveTo relocates the block within its current grid, replacing any
// occupant at the destination. Panics if the block is unplaced.
func (b *Block) MoveTo(loc Location) {
	if b.grid == nil {
		panic("grid: MoveTo on unplaced block")
	}
	if loc == b.loc {
		return
	}
	b.grid.Put(b, loc)
}
