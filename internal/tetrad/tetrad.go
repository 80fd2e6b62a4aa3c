package tetrad

import (
	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
)

// Size is the number of blocks in every piece.
const Size = 4

// Tetrad is the piece currently falling through a grid. It owns its four
// blocks until the engine locks it; after that the grid alone holds them.
type Tetrad struct {
	grid   *grid.Grid
	blocks [Size]*grid.Block
	shape  Shape
}

// Random spawns a piece with a shape and color drawn from src.
// See Spawn for the meaning of the returned bool.
func Random(g *grid.Grid, src Source) (*Tetrad, bool) {
	shape := Shape(src.Intn(shapeCount))
	color := Palette[src.Intn(len(Palette))]
	return Spawn(g, shape, color)
}

// Spawn creates a piece at its standard spawn position near the top
// center of g. The bool is false when any spawn cell is occupied or off
// the board; the piece is then returned unplaced and the grid untouched.
func Spawn(g *grid.Grid, shape Shape, color core.Color) (*Tetrad, bool) {
	t := &Tetrad{grid: g, shape: shape}
	for i := range t.blocks {
		t.blocks[i] = grid.NewBlock(color)
	}

	locs := SpawnLocations(shape, g.NumCols())
	if !AreEmpty(g, locs[:]) {
		return t, false
	}
	t.addToLocations(locs)
	return t, true
}

// AreEmpty reports whether every location is inside g and unoccupied.
func AreEmpty(g *grid.Grid, locs []grid.Location) bool {
	for _, loc := range locs {
		if !g.IsValid(loc) || g.Get(loc) != nil {
			return false
		}
	}
	return true
}

// Shape returns the piece shape.
func (t *Tetrad) Shape() Shape {
	return t.shape
}

// Color returns the piece color.
func (t *Tetrad) Color() core.Color {
	return t.blocks[0].Color()
}

// SetColor recolors all four blocks.
func (t *Tetrad) SetColor(c core.Color) {
	for _, b := range t.blocks {
		b.SetColor(c)
	}
}

// Blocks returns the piece's blocks. Block 0 is the rotation pivot.
func (t *Tetrad) Blocks() [Size]*grid.Block {
	return t.blocks
}

// Placed reports whether the piece currently sits in its grid.
func (t *Tetrad) Placed() bool {
	for _, b := range t.blocks {
		if b.Grid() != t.grid {
			return false
		}
	}
	return true
}

// Locations returns the current location of each block, in block order.
func (t *Tetrad) Locations() [Size]grid.Location {
	var locs [Size]grid.Location
	for i, b := range t.blocks {
		locs[i], _ = b.Location()
	}
	return locs
}

// AreEmpty reports whether locs are all valid and free in the piece's grid.
func (t *Tetrad) AreEmpty(locs []grid.Location) bool {
	return AreEmpty(t.grid, locs)
}

// removeBlocks lifts all blocks out of the grid and returns where they were.
func (t *Tetrad) removeBlocks() [Size]grid.Location {
	locs := t.Locations()
	for _, b := range t.blocks {
		b.RemoveSelfFromGrid()
	}
	return locs
}

// addToLocations places block i at locs[i]. The blocks must be unplaced.
func (t *Tetrad) addToLocations(locs [Size]grid.Location) {
	for i, b := range t.blocks {
		b.PutSelfInGrid(t.grid, locs[i])
	}
}

// Translate moves the piece dRow rows down and dCol columns right.
// Either all four blocks move or none do.
func (t *Tetrad) Translate(dRow, dCol int) bool {
	if !t.Placed() {
		return false
	}

	old := t.removeBlocks()
	var next [Size]grid.Location
	for i, loc := range old {
		next[i] = loc.Add(dRow, dCol)
	}
	return t.commit(old, next)
}

// Rotate turns the piece 90 degrees clockwise about block 0.
// An O piece is its own rotation and always succeeds without moving.
func (t *Tetrad) Rotate() bool {
	if !t.Placed() {
		return false
	}
	if t.shape == ShapeO {
		return true
	}

	old := t.removeBlocks()
	r0, c0 := old[0].Row, old[0].Col
	var next [Size]grid.Location
	for i, loc := range old {
		next[i] = grid.Loc(r0-c0+loc.Col, r0+c0-loc.Row)
	}
	return t.commit(old, next)
}

// commit places the lifted blocks at next if that is legal, otherwise
// back at old.
func (t *Tetrad) commit(old, next [Size]grid.Location) bool {
	if AreEmpty(t.grid, next[:]) {
		t.addToLocations(next)
		return true
	}
	t.addToLocations(old)
	return false
}
