package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
	"github.com/vovakirdan/tui-tetrad/internal/tetrad"
)

type recorder struct {
	renders int
	titles  []string
}

func (r *recorder) Render(*grid.Grid)            { r.renders++ }
func (r *recorder) SetStatusTitle(title string) { r.titles = append(r.titles, title) }

func (r *recorder) lastTitle() string {
	if len(r.titles) == 0 {
		return ""
	}
	return r.titles[len(r.titles)-1]
}

func newEngine(t *testing.T, g *grid.Grid, shapes ...tetrad.Shape) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := []Option{
		WithSource(tetrad.Pieces(shapes...)),
		WithSleeper(NoDelay),
		WithRenderer(rec),
		WithStatus(rec),
	}
	if g != nil {
		opts = append(opts, WithGrid(g))
	}
	return New(DefaultConfig(), opts...), rec
}

// assertSingleOccupancy checks that each block's recorded location maps
// back to that block.
func assertSingleOccupancy(t *testing.T, g *grid.Grid) {
	t.Helper()
	seen := map[*grid.Block]bool{}
	for _, loc := range g.Occupied() {
		b := g.Get(loc)
		require.False(t, seen[b], "block in two slots")
		seen[b] = true
		got, ok := b.Location()
		require.True(t, ok)
		require.Equal(t, loc, got)
	}
}

func TestNewSpawnsAndRenders(t *testing.T) {
	e, rec := newEngine(t, nil, tetrad.ShapeI)

	assert.Equal(t, tetrad.ShapeI, e.Active().Shape())
	assert.Equal(t, 4, e.Grid().Count())
	assert.Equal(t, 1, rec.renders)
	assert.Equal(t, "Level: 1\tPoints: 0", rec.lastTitle())
	assert.Equal(t, time.Second, e.Interval())
	assert.False(t, e.IsGameOver())
}

func TestTickFallsThenLocks(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeI, tetrad.ShapeO)
	first := e.Active()

	// I spawns on rows 0-3, so it can fall 16 rows.
	for i := 0; i < 16; i++ {
		assert.Equal(t, 0, e.Tick())
		assert.Same(t, first, e.Active(), "tick %d", i+1)
	}

	assert.Equal(t, 0, e.Tick())
	assert.NotSame(t, first, e.Active(), "locked piece is replaced")
	assert.Equal(t, tetrad.ShapeO, e.Active().Shape())
	assert.Equal(t, 8, e.Grid().Count())
	assertSingleOccupancy(t, e.Grid())

	for _, b := range first.Blocks() {
		loc, ok := b.Location()
		require.True(t, ok, "locked blocks stay in the grid")
		assert.Equal(t, 4, loc.Col)
		assert.GreaterOrEqual(t, loc.Row, 16)
	}
}

func TestTickClearsRows(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	fillRow(g, 19, 4, 5)
	fillRow(g, 18, 4, 5)
	e, rec := newEngine(t, g, tetrad.ShapeO)

	total := 0
	for i := 0; i < 20 && total == 0; i++ {
		rows, over := e.Advance(context.Background())
		require.False(t, over)
		total += rows
	}

	assert.Equal(t, 2, total)
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, "Level: 1\tPoints: 100", rec.lastTitle())
	assert.Equal(t, 4, e.Grid().Count(), "only the new piece remains")
	assertSingleOccupancy(t, e.Grid())
}

func TestPlayAndSleeperInterleaving(t *testing.T) {
	var e *Engine
	var slept []time.Duration
	sleeper := SleeperFunc(func(_ context.Context, d time.Duration) {
		slept = append(slept, d)
		// A key press arriving mid-delay lands before the tick.
		e.OnLeft()
	})

	e = New(DefaultConfig(),
		WithSource(tetrad.Pieces(tetrad.ShapeO)),
		WithSleeper(sleeper),
	)
	start := e.Active().Locations()

	assert.Equal(t, 0, e.Play(250*time.Millisecond))
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, slept)

	got := e.Active().Locations()
	for i := range got {
		assert.Equal(t, start[i].Add(1, -1), got[i])
	}
}

func TestActions(t *testing.T) {
	e, rec := newEngine(t, nil, tetrad.ShapeT)
	before := rec.renders

	e.OnDown()
	assert.Equal(t, [4]grid.Location{grid.Loc(1, 4), grid.Loc(1, 3), grid.Loc(1, 5), grid.Loc(2, 4)}, e.Active().Locations())

	e.OnUp()
	assert.Equal(t, [4]grid.Location{grid.Loc(1, 4), grid.Loc(0, 4), grid.Loc(2, 4), grid.Loc(1, 3)}, e.Active().Locations())

	e.OnLeft()
	e.OnRight()
	e.OnRight()
	assert.Equal(t, grid.Loc(1, 5), e.Active().Locations()[0])

	assert.Equal(t, before+5, rec.renders, "every action re-renders")
	assertSingleOccupancy(t, e.Grid())
}

func TestActionsNeverLock(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeO)
	p := e.Active()

	for i := 0; i < 30; i++ {
		e.OnDown()
	}
	assert.Same(t, p, e.Active(), "soft drop at the floor does not lock")
	loc, _ := p.Lowest().Location()
	assert.Equal(t, 19, loc.Row)
	assert.Equal(t, 4, e.Grid().Count())

	// Failed moves at the wall are silent.
	for i := 0; i < 10; i++ {
		e.OnLeft()
	}
	loc, _ = p.Leftmost().Location()
	assert.Equal(t, 0, loc.Col)
}

func TestScoreFor(t *testing.T) {
	tests := []struct {
		rows, level, want int
	}{
		{0, 1, 0},
		{1, 1, 40},
		{2, 1, 100},
		{3, 1, 300},
		{4, 1, 1200},
		{5, 1, 1200},
		{1, 2, 80},
		{2, 2, 200},
		{3, 2, 600},
		{4, 2, 2400},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ScoreFor(tc.rows, tc.level), "rows=%d level=%d", tc.rows, tc.level)
	}
}

func TestAwardLevelsUp(t *testing.T) {
	e, rec := newEngine(t, nil, tetrad.ShapeO)

	e.Award(4)
	e.Award(4)
	assert.Equal(t, 2400, e.Score())
	assert.Equal(t, 1, e.Level())

	e.Award(3) // 11 lines: level 2, one line carried over
	assert.Equal(t, 2700, e.Score())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 900*time.Millisecond, e.Interval())
	assert.Equal(t, "Level: 2\tPoints: 2700", rec.lastTitle())

	e.Award(2) // scored at level 2
	assert.Equal(t, 2900, e.Score())

	e.Award(4)
	e.Award(3) // 1+2+4+3 = 10 carried lines
	assert.Equal(t, 3, e.Level())
	assert.Equal(t, 20, e.Stats().Lines)
}

func TestIntervalFloor(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeO)
	for i := 0; i < 30; i++ {
		e.Award(4)
		e.Award(4)
		e.Award(2)
	}
	assert.Equal(t, 31, e.Level())
	assert.Equal(t, DefaultConfig().MinInterval, e.Interval())
}

func TestStartLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartLevel = 4
	e := New(cfg, WithSource(tetrad.Pieces(tetrad.ShapeO)), WithSleeper(NoDelay))

	assert.Equal(t, 4, e.Level())
	assert.Equal(t, 700*time.Millisecond, e.Interval())
	e.Award(1)
	assert.Equal(t, 160, e.Score())
}

func TestGameOverWhenStuckAtTop(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	// Box in the O spawn cells (0..1, 4..5) on every side.
	put(g, 0, 3)
	put(g, 1, 3)
	put(g, 0, 6)
	put(g, 1, 6)
	put(g, 2, 4)
	put(g, 2, 5)

	e, _ := newEngine(t, g, tetrad.ShapeO)
	require.True(t, e.Active().Placed())
	assert.True(t, e.IsGameOver())
}

func TestNotGameOverBelowTop(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeO)
	p := e.Active()
	require.True(t, p.Translate(5, 0)) // rows 5-6, cols 4-5

	g := e.Grid()
	put(g, 5, 3)
	put(g, 6, 3)
	put(g, 5, 6)
	put(g, 6, 6)
	put(g, 7, 4)
	put(g, 7, 5)

	require.False(t, p.CanMoveLeft())
	require.False(t, p.CanMoveRight())
	require.False(t, p.CanMoveDown())
	assert.False(t, e.IsGameOver())
}

func TestNotGameOverWhenStillMovable(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	put(g, 2, 4)
	put(g, 2, 5)
	e, _ := newEngine(t, g, tetrad.ShapeO)

	assert.False(t, e.Active().CanMoveDown())
	assert.False(t, e.IsGameOver(), "can still slide sideways")
}

func TestGameOverDrawsSadFace(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	put(g, 0, 3)
	put(g, 1, 3)
	put(g, 0, 6)
	put(g, 1, 6)
	put(g, 2, 4)
	put(g, 2, 5)
	e, rec := newEngine(t, g, tetrad.ShapeO)
	p := e.Active()

	rows, over := e.Advance(context.Background())
	assert.Equal(t, 0, rows)
	require.True(t, over)
	assert.True(t, e.IsGameOver())
	assert.Equal(t, "Game Over", rec.lastTitle())

	assert.Equal(t, 15, g.Count())
	for _, loc := range g.Occupied() {
		assert.Equal(t, SadFaceColor, g.Get(loc).Color())
	}
	// Eyes and mouth around (9, 4).
	assert.NotNil(t, g.Get(grid.Loc(7, 2)))
	assert.NotNil(t, g.Get(grid.Loc(8, 6)))
	assert.NotNil(t, g.Get(grid.Loc(10, 4)))
	assert.NotNil(t, g.Get(grid.Loc(11, 2)))
	assert.Nil(t, g.Get(grid.Loc(9, 4)))

	for _, b := range p.Blocks() {
		assert.Equal(t, TerminalColor, b.Color())
		assert.False(t, b.Placed())
	}

	// Nothing moves once the game has ended.
	renders := rec.renders
	e.OnLeft()
	assert.Equal(t, 0, e.Tick())
	assert.Equal(t, renders, rec.renders)
	assert.Equal(t, 15, g.Count())
}

func TestTopOut(t *testing.T) {
	g := grid.New(grid.DefaultRows, grid.DefaultCols)
	put(g, 3, 4) // under the I spawn column
	e, _ := newEngine(t, g, tetrad.ShapeI)

	assert.False(t, e.Active().Placed())
	assert.True(t, e.IsGameOver())

	_, over := e.Advance(context.Background())
	assert.True(t, over)
	assert.Equal(t, 15, g.Count())
}

func TestRunUntilGameOver(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeO)

	stats, err := e.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, stats.GameOver)
	assert.Equal(t, 0, stats.Score)
	assert.Positive(t, stats.Ticks)
	assert.True(t, e.IsGameOver())
}

func TestRunMaxTicks(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeI)

	stats, err := e.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), stats.Ticks)
	assert.False(t, stats.GameOver)
}

func TestRunCancelled(t *testing.T) {
	e, _ := newEngine(t, nil, tetrad.ShapeI)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := e.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), stats.Ticks)
}

func TestTimerSleeperInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	TimerSleeper{}.Sleep(ctx, time.Minute)
	assert.Less(t, time.Since(start), time.Second)

	TimerSleeper{}.Sleep(context.Background(), 0)
}

func TestRandomSequenceKeepsInvariant(t *testing.T) {
	e, _ := newEngine(t, nil,
		tetrad.ShapeI, tetrad.ShapeT, tetrad.ShapeO, tetrad.ShapeL,
		tetrad.ShapeJ, tetrad.ShapeS, tetrad.ShapeZ)

	moves := []func(){e.OnLeft, e.OnUp, e.OnRight, e.OnRight, e.OnUp, e.OnDown}
	for i := 0; i < 400 && !e.IsGameOver(); i++ {
		moves[i%len(moves)]()
		e.Advance(context.Background())
		assertSingleOccupancy(t, e.Grid())
	}
	for _, loc := range e.Grid().Occupied() {
		assert.NotEqual(t, core.ColorDefault, e.Grid().Get(loc).Color())
	}
}
