// Package headless renders engine output as plain text, for running a
// game without a terminal UI.
package headless

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
)

// Glyphs for empty cells and colors without a letter.
const (
	EmptyGlyph   = '.'
	UnknownGlyph = '?'
)

var colorGlyphs = map[core.Color]rune{
	core.ColorCyan:       'C',
	core.ColorYellow:     'Y',
	core.ColorMagenta:    'M',
	core.ColorOrange:     'O',
	core.ColorBlue:       'B',
	core.ColorGreen:      'G',
	core.ColorRed:        'R',
	core.ColorGray:       '#',
	core.ColorBrightCyan: '@',
}

// Glyph returns the character used for a block of color c.
func Glyph(c core.Color) rune {
	if r, ok := colorGlyphs[c]; ok {
		return r
	}
	return UnknownGlyph
}

// FormatGrid draws the board one line per row.
func FormatGrid(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow((g.NumCols() + 1) * g.NumRows())

	for r := range g.NumRows() {
		for c := range g.NumCols() {
			if b := g.Get(grid.Loc(r, c)); b != nil {
				sb.WriteRune(Glyph(b.Color()))
			} else {
				sb.WriteRune(EmptyGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Renderer writes every Nth board to an io.Writer, frames separated by
// a blank line. It satisfies engine.Renderer.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	every  int
	frames int
	err    error
}

// NewRenderer writes one frame out of every `every` renders. Values
// below 1 write every frame.
func NewRenderer(w io.Writer, every int) *Renderer {
	return &Renderer{w: w, every: max(every, 1)}
}

// Render implements engine.Renderer.
func (r *Renderer) Render(g *grid.Grid) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames++
	if r.err != nil || (r.frames-1)%r.every != 0 {
		return
	}
	if _, err := fmt.Fprintf(r.w, "%s\n", FormatGrid(g)); err != nil {
		r.err = fmt.Errorf("headless: write frame %d: %w", r.frames, err)
	}
}

// Frames returns how many boards were rendered, written or not.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Err returns the first write error. Writing stops after it.
func (r *Renderer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// StatusLogger logs the status title each time it changes. It
// satisfies engine.StatusSink.
type StatusLogger struct {
	mu     sync.Mutex
	logger *log.Logger
	last   string
}

// NewStatusLogger creates a status sink writing to logger.
func NewStatusLogger(logger *log.Logger) *StatusLogger {
	return &StatusLogger{logger: logger}
}

// SetStatusTitle implements engine.StatusSink.
func (s *StatusLogger) SetStatusTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == s.last {
		return
	}
	s.last = title
	s.logger.Info("status", "title", strings.ReplaceAll(title, "\t", " "))
}

// Last returns the most recent title.
func (s *StatusLogger) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
