// Package tetris adapts the falling-block engine to the platform's
// frame-stepped Game interface.
package tetris

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetrad/internal/config"
	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/engine"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
	"github.com/vovakirdan/tui-tetrad/internal/registry"
)

// Mode IDs.
const (
	ModeClassic = "tetris"
	ModeFixed   = "tetris_fixed" // no speed-up on level change
)

// Package-level settings picked up by games created through the registry.
var (
	gameConfig = config.DefaultTetrisConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by registry-created games.
func SetConfig(cfg config.TetrisConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger passed to each engine.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(ModeClassic, "Tetrad", func() registry.Game {
		return New(gameConfig)
	})
	registry.Register(ModeFixed, "Tetrad (Fixed Speed)", func() registry.Game {
		cfg := gameConfig
		config.ApplyPreset(&cfg, config.DifficultyFixed)
		return newMode(ModeFixed, cfg)
	})
}

// Game drives one engine from platform frames. Gravity runs every
// interval's worth of frames; player actions apply as they arrive.
type Game struct {
	id  string
	cfg config.TetrisConfig

	eng *engine.Engine
	rng *rand.Rand

	// Last board published by the engine, row-major. ColorDefault is empty.
	cells []core.Color
	rows  int
	cols  int
	title string

	tick     uint64
	tickRate int
	frames   int // frames since the last gravity tick
	cleared  int // rows cleared by the last gravity tick
	paused   bool
	gameOver bool

	screenW int
	screenH int
}

// New creates a classic game with the given configuration.
func New(cfg config.TetrisConfig) *Game {
	return newMode(ModeClassic, cfg)
}

func newMode(id string, cfg config.TetrisConfig) *Game {
	return &Game{id: id, cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == ModeFixed {
		return "Tetrad (Fixed Speed)"
	}
	return "Tetrad"
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.frames = 0
	g.cleared = 0
	g.paused = false
	g.gameOver = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	ec := g.cfg.Engine()
	g.rows, g.cols = ec.Rows, ec.Cols
	g.cells = make([]core.Color, g.rows*g.cols)

	g.eng = engine.New(ec,
		engine.WithSource(g.rng),
		engine.WithSleeper(engine.NoDelay),
		engine.WithRenderer(engine.RendererFunc(g.capture)),
		engine.WithStatus(engine.StatusFunc(func(title string) { g.title = title })),
		engine.WithLogger(logger),
	)
}

// capture copies the board so Render never reads the live grid.
func (g *Game) capture(b *grid.Grid) {
	for r := range g.rows {
		for c := range g.cols {
			color := core.ColorDefault
			if blk := b.Get(grid.Loc(r, c)); blk != nil {
				color = blk.Color()
			}
			g.cells[r*g.cols+c] = color
		}
	}
}

// Step advances one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.cleared = 0

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.result()
	}

	if g.gameOver {
		return g.result()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.processInput(input)

	// Apply gravity on interval
	g.frames++
	if g.frames >= g.framesPerTick() {
		g.frames = 0
		g.cleared, g.gameOver = g.eng.Advance(context.Background())
	}

	return g.result()
}

// processInput applies moves in arrival order.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Actions {
		switch a {
		case core.ActionUp:
			g.eng.OnUp()
		case core.ActionDown:
			g.eng.OnDown()
		case core.ActionLeft:
			g.eng.OnLeft()
		case core.ActionRight:
			g.eng.OnRight()
		}
	}
}

// framesPerTick converts the engine's current interval into frames.
func (g *Game) framesPerTick() int {
	n := int(g.eng.Interval() * time.Duration(g.tickRate) / time.Second)
	return max(n, 1)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), RowsCleared: g.cleared}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	st := g.eng.Stats()
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
