// Package grid provides the bounded occupancy table the falling-block game
// is played on. It owns storage and bounds checking only; movement and
// line-clear rules live in the tetrad and engine packages.
package grid

import "fmt"

// Location is a (row, column) coordinate. Row 0 is the top of the board.
// Validity is relative to a Grid, see Grid.IsValid.
type Location struct {
	Row int
	Col int
}

// Loc is shorthand for Location{Row: row, Col: col}.
func Loc(row, col int) Location {
	return Location{Row: row, Col: col}
}

// Add returns the location offset by the given deltas.
func (l Location) Add(dRow, dCol int) Location {
	return Location{Row: l.Row + dRow, Col: l.Col + dCol}
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Col)
}
