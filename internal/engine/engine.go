// Package engine runs the falling-block game: it owns the grid and the
// active piece, advances gravity one tick at a time, locks pieces, clears
// rows, keeps score and level, and detects game over.
//
// All state changes happen under one mutex. The pacing delay between
// ticks is taken outside it, so player actions arriving during the delay
// are applied before the next tick runs.
package engine

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetrad/internal/grid"
	"github.com/vovakirdan/tui-tetrad/internal/tetrad"
)

// Renderer redraws the board. It is called synchronously after every
// state change, with the engine lock held; it must not call back into
// the engine.
type Renderer interface {
	Render(g *grid.Grid)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(g *grid.Grid)

// Render implements Renderer.
func (f RendererFunc) Render(g *grid.Grid) {
	f(g)
}

// StatusSink displays the level/score line. It has no effect on play.
type StatusSink interface {
	SetStatusTitle(title string)
}

// StatusFunc adapts a function to the StatusSink interface.
type StatusFunc func(title string)

// SetStatusTitle implements StatusSink.
func (f StatusFunc) SetStatusTitle(title string) {
	f(title)
}

// Config holds board size and pacing parameters.
type Config struct {
	Rows          int
	Cols          int
	StartLevel    int
	Interval      time.Duration // delay between ticks at StartLevel
	SpeedStep     time.Duration // interval reduction per level
	MinInterval   time.Duration // interval never drops below this
	LinesPerLevel int
}

// DefaultConfig returns the standard 20x10 game starting at one second
// per tick.
func DefaultConfig() Config {
	return Config{
		Rows:          grid.DefaultRows,
		Cols:          grid.DefaultCols,
		StartLevel:    1,
		Interval:      time.Second,
		SpeedStep:     100 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
		LinesPerLevel: 10,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Rows <= 0 {
		c.Rows = d.Rows
	}
	if c.Cols <= 0 {
		c.Cols = d.Cols
	}
	if c.StartLevel <= 0 {
		c.StartLevel = d.StartLevel
	}
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.SpeedStep < 0 {
		c.SpeedStep = 0
	}
	if c.MinInterval <= 0 {
		c.MinInterval = d.MinInterval
	}
	if c.LinesPerLevel <= 0 {
		c.LinesPerLevel = d.LinesPerLevel
	}
	return c
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the randomness used to pick shapes and colors.
func WithSource(src tetrad.Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithRenderer sets the render sink.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithStatus sets the status title sink.
func WithStatus(s StatusSink) Option {
	return func(e *Engine) { e.status = s }
}

// WithSleeper sets how the engine waits between ticks.
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) { e.sleeper = s }
}

// WithLogger sets the logger for lock, clear and level events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithGrid plays on an existing grid instead of a fresh one. Its
// dimensions override Config.Rows and Config.Cols.
func WithGrid(g *grid.Grid) Option {
	return func(e *Engine) { e.grid = g }
}

// Engine is a single game in progress.
type Engine struct {
	mu sync.Mutex

	cfg      Config
	grid     *grid.Grid
	active   *tetrad.Tetrad
	src      tetrad.Source
	renderer Renderer
	status   StatusSink
	sleeper  Sleeper
	logger   *log.Logger

	level      int
	score      int
	lines      int // rows cleared since the last level-up
	totalLines int
	ticks      uint64
	interval   time.Duration

	toppedOut bool // a new piece could not be placed
	over      bool // game over has been handled
}

// New creates an engine and spawns the first piece.
func New(cfg Config, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:      cfg,
		renderer: RendererFunc(func(*grid.Grid) {}),
		status:   StatusFunc(func(string) {}),
		sleeper:  TimerSleeper{},
		logger:   log.New(io.Discard),
		level:    cfg.StartLevel,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.grid == nil {
		e.grid = grid.New(cfg.Rows, cfg.Cols)
	}
	if e.src == nil {
		e.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Levels above 1 start faster, as if reached by play.
	e.interval = max(cfg.Interval-time.Duration(cfg.StartLevel-1)*cfg.SpeedStep, cfg.MinInterval)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.spawn()
	e.render()
	e.publishStatus()
	return e
}

// spawn makes a new random piece the active one. Caller holds e.mu.
func (e *Engine) spawn() {
	p, ok := tetrad.Random(e.grid, e.src)
	e.active = p
	if !ok {
		e.toppedOut = true
		e.logger.Debug("spawn blocked", "shape", p.Shape())
		return
	}
	e.logger.Debug("spawned", "shape", p.Shape(), "color", p.Color())
}

func (e *Engine) render() {
	e.renderer.Render(e.grid)
}

// title returns the status line for the current state.
func (e *Engine) title() string {
	if e.over {
		return "Game Over"
	}
	return fmt.Sprintf("Level: %d\tPoints: %d", e.level, e.score)
}

func (e *Engine) publishStatus() {
	e.status.SetStatusTitle(e.title())
}

// Play waits for interval, then runs one tick. It returns the number of
// rows cleared by that tick.
func (e *Engine) Play(interval time.Duration) int {
	e.sleeper.Sleep(context.Background(), interval)
	return e.Tick()
}

// Tick moves the active piece down one row. When it cannot move, the
// piece locks where it is, completed rows are cleared and a new piece is
// spawned. Returns the number of rows cleared.
func (e *Engine) Tick() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick()
}

func (e *Engine) tick() int {
	if e.over || e.toppedOut {
		return 0
	}
	e.ticks++

	cleared := 0
	if !e.active.Translate(1, 0) {
		e.logger.Debug("locked", "shape", e.active.Shape(), "at", e.active.Locations())
		cleared = ClearCompletedRows(e.grid)
		e.spawn()
	}
	e.render()
	return cleared
}

// Award applies the score and level changes for rows cleared in one tick.
func (e *Engine) Award(rows int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.award(rows)
	e.publishStatus()
}

// Advance runs one iteration of the game loop: wait for the current
// interval, tick, score, then handle game over. It reports the rows
// cleared and whether the game has ended.
func (e *Engine) Advance(ctx context.Context) (rows int, over bool) {
	e.sleeper.Sleep(ctx, e.Interval())

	e.mu.Lock()
	defer e.mu.Unlock()

	// The piece spawned by New or a previous tick may already be stuck.
	if !e.over && e.stuck() {
		e.finish()
		return 0, true
	}

	rows = e.tick()
	e.award(rows)
	if !e.over && e.stuck() {
		e.finish()
	}
	e.publishStatus()
	return rows, e.over
}

// Run advances the game until it ends, ctx is cancelled, or maxTicks
// ticks have run (0 means no limit). Cancellation is only observed
// between ticks.
func (e *Engine) Run(ctx context.Context, maxTicks int) (Stats, error) {
	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return e.Stats(), err
		}
		if _, over := e.Advance(ctx); over {
			break
		}
	}
	return e.Stats(), nil
}
