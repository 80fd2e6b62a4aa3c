package tetrad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
)

func locs(pairs ...int) [Size]grid.Location {
	var out [Size]grid.Location
	for i := range out {
		out[i] = grid.Loc(pairs[2*i], pairs[2*i+1])
	}
	return out
}

func spawn(t *testing.T, g *grid.Grid, shape Shape) *Tetrad {
	t.Helper()
	p, ok := Spawn(g, shape, core.ColorCyan)
	require.True(t, ok, "spawn %s", shape)
	return p
}

func fill(g *grid.Grid, cells ...grid.Location) {
	for _, loc := range cells {
		g.Put(grid.NewBlock(core.ColorGray), loc)
	}
}

func TestSpawnLocations(t *testing.T) {
	tests := []struct {
		shape Shape
		want  [Size]grid.Location
	}{
		{ShapeI, locs(1, 4, 0, 4, 2, 4, 3, 4)},
		{ShapeT, locs(0, 4, 0, 3, 0, 5, 1, 4)},
		{ShapeO, locs(1, 5, 0, 5, 0, 4, 1, 4)},
		{ShapeL, locs(1, 4, 0, 4, 2, 4, 2, 5)},
		{ShapeJ, locs(1, 5, 0, 5, 2, 5, 2, 4)},
		{ShapeS, locs(0, 4, 1, 4, 0, 5, 1, 3)},
		{ShapeZ, locs(0, 4, 0, 3, 1, 4, 1, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			g := grid.New(grid.DefaultRows, grid.DefaultCols)
			p := spawn(t, g, tc.shape)

			assert.Equal(t, tc.want, p.Locations())
			assert.Equal(t, Size, g.Count())
			for i, b := range p.Blocks() {
				assert.Same(t, b, g.Get(tc.want[i]))
				assert.Equal(t, core.ColorCyan, b.Color())
			}
		})
	}
}

func TestSpawnIOnEmptyBoard(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeI)

	rows := map[int]bool{}
	for _, loc := range p.Locations() {
		assert.True(t, g.IsValid(loc))
		assert.Equal(t, 4, loc.Col, "all blocks share one column")
		rows[loc.Row] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true}, rows)
}

func TestSpawnBlocked(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	fill(g, grid.Loc(3, 4))

	p, ok := Spawn(g, ShapeI, core.ColorRed)
	assert.False(t, ok)
	assert.False(t, p.Placed())
	assert.Equal(t, 1, g.Count(), "grid untouched on blocked spawn")
	assert.False(t, p.Translate(1, 0))
	assert.False(t, p.Rotate())
	assert.False(t, p.CanMoveDown())
}

func TestRandomUsesSource(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p, ok := Random(g, NewSequence(int(ShapeZ), 3))
	require.True(t, ok)
	assert.Equal(t, ShapeZ, p.Shape())
	assert.Equal(t, Palette[3], p.Color())
}

func TestTranslate(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeO)

	require.True(t, p.Translate(1, 0))
	assert.Equal(t, locs(2, 5, 1, 5, 1, 4, 2, 4), p.Locations())

	require.True(t, p.Translate(0, -2))
	assert.Equal(t, locs(2, 3, 1, 3, 1, 2, 2, 2), p.Locations())
	assert.Equal(t, Size, g.Count())
	assert.Nil(t, g.Get(grid.Loc(0, 4)))
}

func TestTranslateFailureIsAtomic(t *testing.T) {
	tests := []struct {
		name       string
		dRow, dCol int
		blockers   []grid.Location
	}{
		{"off the top", -1, 0, nil},
		{"into occupied cell", 1, 0, []grid.Location{grid.Loc(2, 3)}},
		{"off the left wall", 0, -10, nil},
		{"off the right wall", 0, 5, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New(grid.DefaultRows, grid.DefaultCols)
			fill(g, tc.blockers...)
			p := spawn(t, g, ShapeS)
			before := p.Locations()

			assert.False(t, p.Translate(tc.dRow, tc.dCol))
			assert.Equal(t, before, p.Locations(), "locations unchanged and in order")
			assert.Equal(t, Size+len(tc.blockers), g.Count())
			for i, b := range p.Blocks() {
				assert.Same(t, b, g.Get(before[i]))
			}
		})
	}
}

func TestFallsToFloor(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			g := grid.New(grid.DefaultRows, grid.DefaultCols)
			p := spawn(t, g, shape)
			start, _ := p.Lowest().Location()

			// A piece whose lowest block is on row r drops exactly rows-1-r times.
			for i := 0; i < g.NumRows()-1-start.Row; i++ {
				require.True(t, p.CanMoveDown())
				require.True(t, p.Translate(1, 0), "step %d", i+1)
			}
			assert.False(t, p.CanMoveDown())
			assert.False(t, p.Translate(1, 0))

			end, _ := p.Lowest().Location()
			assert.Equal(t, g.NumRows()-1, end.Row)
		})
	}
}

func TestRotateO(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeO)
	before := p.Locations()

	for i := 0; i < 4; i++ {
		assert.True(t, p.Rotate())
		assert.Equal(t, before, p.Locations())
	}

	// Even when boxed in, an O reports success.
	fill(g, grid.Loc(0, 3), grid.Loc(1, 3), grid.Loc(0, 6), grid.Loc(1, 6), grid.Loc(2, 4), grid.Loc(2, 5))
	assert.True(t, p.Rotate())
	assert.Equal(t, before, p.Locations())
}

func TestRotateClockwise(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeT)
	require.True(t, p.Translate(1, 0))
	start := p.Locations()
	require.Equal(t, locs(1, 4, 1, 3, 1, 5, 2, 4), start)

	require.True(t, p.Rotate())
	assert.Equal(t, locs(1, 4, 0, 4, 2, 4, 1, 3), p.Locations())

	require.True(t, p.Rotate())
	assert.Equal(t, locs(1, 4, 1, 5, 1, 3, 0, 4), p.Locations())

	require.True(t, p.Rotate())
	require.True(t, p.Rotate())
	assert.Equal(t, start, p.Locations(), "four turns return to start")
	assert.Equal(t, Size, g.Count())
}

func TestRotateI(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeI)

	require.True(t, p.Rotate())
	assert.Equal(t, locs(1, 4, 1, 5, 1, 3, 1, 2), p.Locations())
}

func TestRotateFailureIsAtomic(t *testing.T) {
	t.Run("blocked by occupant", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		fill(g, grid.Loc(1, 5))
		p := spawn(t, g, ShapeI)
		before := p.Locations()

		assert.False(t, p.Rotate())
		assert.Equal(t, before, p.Locations())
		assert.Equal(t, Size+1, g.Count())
	})

	t.Run("against the left wall", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		p := spawn(t, g, ShapeI)
		for p.Translate(0, -1) {
		}
		before := p.Locations()
		require.Equal(t, 0, before[0].Col)

		assert.False(t, p.Rotate())
		assert.Equal(t, before, p.Locations())
	})

	t.Run("T at spawn pokes above row 0", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		p := spawn(t, g, ShapeT)
		before := p.Locations()

		assert.False(t, p.Rotate())
		assert.Equal(t, before, p.Locations())
	})
}

func TestExtremes(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeL) // (1,4) (0,4) (2,4) (2,5)
	blocks := p.Blocks()

	assert.Same(t, blocks[0], p.Leftmost(), "ties go to the first block")
	assert.Same(t, blocks[3], p.Rightmost())
	assert.Same(t, blocks[2], p.Lowest(), "ties go to the first block")

	assert.Len(t, p.BlocksInCol(4), 3)
	assert.Len(t, p.BlocksInRow(2), 2)
	assert.Empty(t, p.BlocksInRow(7))
	assert.True(t, p.InRow(0))
	assert.False(t, p.InRow(3))
}

func TestCanMove(t *testing.T) {
	t.Run("open board", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		p := spawn(t, g, ShapeL)
		assert.True(t, p.CanMoveLeft())
		assert.True(t, p.CanMoveRight())
		assert.True(t, p.CanMoveDown())
	})

	t.Run("whole leading edge is checked", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		// L occupies (0,4) (1,4) (2,4) (2,5); block only the top of its left edge.
		fill(g, grid.Loc(0, 3))
		p := spawn(t, g, ShapeL)
		assert.False(t, p.CanMoveLeft())

		// Lowest row holds (2,4) and (2,5); block under the second one.
		fill(g, grid.Loc(3, 5))
		assert.False(t, p.CanMoveDown())
		assert.True(t, p.CanMoveRight())
	})

	t.Run("walls", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		p := spawn(t, g, ShapeO)
		for p.Translate(0, 1) {
		}
		assert.False(t, p.CanMoveRight())
		for p.Translate(0, -1) {
		}
		assert.False(t, p.CanMoveLeft())
		for p.Translate(1, 0) {
		}
		assert.False(t, p.CanMoveDown())
	})

	t.Run("predicates do not mutate", func(t *testing.T) {
		g := grid.New(grid.DefaultRows, grid.DefaultCols)
		p := spawn(t, g, ShapeZ)
		before := p.Locations()
		p.CanMoveLeft()
		p.CanMoveRight()
		p.CanMoveDown()
		assert.Equal(t, before, p.Locations())
		assert.Equal(t, Size, g.Count())
	})
}

func TestSetColor(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	p := spawn(t, g, ShapeJ)
	p.SetColor(core.ColorGray)
	for _, b := range p.Blocks() {
		assert.Equal(t, core.ColorGray, b.Color())
	}
	assert.Equal(t, core.ColorGray, p.Color())
}

func TestSequence(t *testing.T) {
	s := NewSequence(9, 2)
	assert.Equal(t, 2, s.Intn(7))
	assert.Equal(t, 2, s.Intn(7))
	assert.Equal(t, 2, s.Intn(7), "cycles")

	pieces := Pieces(ShapeJ, ShapeS)
	assert.Equal(t, int(ShapeJ), pieces.Intn(shapeCount))
	assert.Equal(t, 0, pieces.Intn(len(Palette)))
	assert.Equal(t, int(ShapeS), pieces.Intn(shapeCount))

	assert.Equal(t, 0, NewSequence().Intn(5))
}
