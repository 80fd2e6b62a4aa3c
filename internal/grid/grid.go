package grid

import "fmt"

// Standard board dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Grid is a fixed-size rows x cols table where every slot holds at most
// one block. Accessing a location outside the bounds is a programming
// error and panics; callers check IsValid first.
type Grid struct {
	rows  int
	cols  int
	slots []*Block
}

// New creates an empty grid. Panics if either dimension is not positive.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		slots: make([]*Block, rows*cols),
	}
}

// NumRows returns the number of rows.
func (g *Grid) NumRows() int {
	return g.rows
}

// NumCols returns the number of columns.
func (g *Grid) NumCols() int {
	return g.cols
}

// IsValid reports whether loc lies inside the grid.
func (g *Grid) IsValid(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// index converts loc to a slot index, panicking when out of bounds.
func (g *Grid) index(loc Location) int {
	if !g.IsValid(loc) {
		panic(fmt.Sprintf("grid: location %v out of bounds for %dx%d grid", loc, g.rows, g.cols))
	}
	return loc.Row*g.cols + loc.Col
}

// Get returns the block at loc, or nil if the slot is empty.
func (g *Grid) Get(loc Location) *Block {
	return g.slots[g.index(loc)]
}

// Put stores b at loc and returns the previous occupant, which becomes
// unplaced. A block already placed elsewhere is lifted from its old slot
// first, so a block never occupies two slots.
func (g *Grid) Put(b *Block, loc Location) *Block {
	i := g.index(loc)
	if b.grid != nil {
		b.grid.Remove(b.loc)
	}

	prev := g.slots[i]
	if prev != nil {
		prev.grid = nil
	}

	g.slots[i] = b
	b.grid = g
	b.loc = loc
	return prev
}

// Remove clears the slot at loc and returns its occupant, or nil.
func (g *Grid) Remove(loc Location) *Block {
	i := g.index(loc)
	b := g.slots[i]
	if b == nil {
		return nil
	}
	g.slots[i] = nil
	b.grid = nil
	return b
}

// Clear removes every block from the grid.
func (g *Grid) Clear() {
	for i, b := range g.slots {
		if b != nil {
			b.grid = nil
			g.slots[i] = nil
		}
	}
}

// Occupied returns the locations holding a block in row-major order.
func (g *Grid) Occupied() []Location {
	var locs []Location
	for i, b := range g.slots {
		if b != nil {
			locs = append(locs, Location{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return locs
}

// Count returns the number of occupied slots.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.slots {
		if b != nil {
			n++
		}
	}
	return n
}
