// Package tetrad implements the falling four-block piece: spawn geometry
// for the seven shapes, all-or-nothing translation and rotation against a
// grid, and the read-only movement predicates the engine uses to decide
// when a piece is stuck.
package tetrad

import (
	"github.com/vovakirdan/tui-tetrad/internal/core"
	"github.com/vovakirdan/tui-tetrad/internal/grid"
)

// Shape identifies one of the seven tetromino variants.
type Shape int

const (
	ShapeI Shape = iota
	ShapeT
	ShapeO
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// shapeCount is the number of shape variants.
const shapeCount = 7

var shapeNames = [shapeCount]string{"I", "T", "O", "L", "J", "S", "Z"}

// String returns the single-letter shape name.
func (s Shape) String() string {
	if s >= 0 && int(s) < shapeCount {
		return shapeNames[s]
	}
	return "?"
}

// Shapes returns all shape variants in canonical order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeT, ShapeO, ShapeL, ShapeJ, ShapeS, ShapeZ}
}

// spawnOffsets holds the (row, col) offset of each block from
// (0, cols/2). Block 0 is the rotation pivot.
var spawnOffsets = [shapeCount][4]grid.Location{
	ShapeI: {{Row: 1, Col: -1}, {Row: 0, Col: -1}, {Row: 2, Col: -1}, {Row: 3, Col: -1}},
	ShapeT: {{Row: 0, Col: -1}, {Row: 0, Col: -2}, {Row: 0, Col: 0}, {Row: 1, Col: -1}},
	ShapeO: {{Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: -1}, {Row: 1, Col: -1}},
	ShapeL: {{Row: 1, Col: -1}, {Row: 0, Col: -1}, {Row: 2, Col: -1}, {Row: 2, Col: 0}},
	ShapeJ: {{Row: 1, Col: 0}, {Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: -1}},
	ShapeS: {{Row: 0, Col: -1}, {Row: 1, Col: -1}, {Row: 0, Col: 0}, {Row: 1, Col: -2}},
	ShapeZ: {{Row: 0, Col: -1}, {Row: 0, Col: -2}, {Row: 1, Col: -1}, {Row: 1, Col: 0}},
}

// SpawnLocations returns where a freshly spawned piece of the given shape
// sits on a board with cols columns.
func SpawnLocations(shape Shape, cols int) [4]grid.Location {
	base := cols / 2
	var locs [4]grid.Location
	for i, off := range spawnOffsets[shape] {
		locs[i] = grid.Loc(off.Row, base+off.Col)
	}
	return locs
}

// Palette is the set of piece colors. A piece's color is drawn
// independently of its shape.
var Palette = []core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorRed,
}

// Source is the randomness a spawn draws from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}
