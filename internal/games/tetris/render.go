package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetrad/internal/core"
)

const (
	hudHeight = 2 // HUD line plus separator
	cellWidth = 2 // each board cell is two columns wide
	panelGap  = 2
)

// Render draws the HUD, the board and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	g.renderHUD(dst)

	boxW := g.cols*cellWidth + 2
	boxH := g.rows + 2
	if dst.Width() < boxW || dst.Height() < hudHeight+boxH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", boxW, hudHeight+boxH))
		return
	}

	panel := g.panelLines()
	panelW := 0
	for _, line := range panel {
		panelW = max(panelW, len([]rune(line)))
	}

	// Center the board, or board plus panel when both fit.
	total := boxW
	if dst.Width() >= boxW+panelGap+panelW {
		total += panelGap + panelW
	} else {
		panel = nil
	}
	box := core.NewRect((dst.Width()-total)/2, hudHeight, boxW, boxH)

	dst.DrawBox(box)
	g.renderBoard(dst, box.X+1, box.Y+1)

	for i, line := range panel {
		dst.DrawText(box.Right()+panelGap, box.Y+1+i, line)
	}

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.eng.Stats()
	hud := fmt.Sprintf(" %s | Score: %d  Level: %d  Lines: %d", g.Title(), st.Score, st.Level, st.Lines)
	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the captured cells with (x, y) as the top-left cell.
func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	for r := range g.rows {
		for c := range g.cols {
			px := x + c*cellWidth
			color := g.cells[r*g.cols+c]
			if color == core.ColorDefault {
				dst.SetColored(px, y+r, '·', core.ColorGray)
				continue
			}
			dst.SetColored(px, y+r, '█', color)
			dst.SetColored(px+1, y+r, '█', color)
		}
	}
}

// panelLines returns the side panel text.
func (g *Game) panelLines() []string {
	lines := []string{
		strings.ReplaceAll(g.title, "\t", "  "),
		"",
		"Controls",
		"  ←/→  move",
		"  ↑    rotate",
		"  ↓    drop",
		"  P    pause",
		"  Q    quit",
	}
	if g.gameOver {
		lines = append(lines, "", "Press R to restart")
	}
	return lines
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}
