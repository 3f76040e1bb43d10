// Package gridgraph defines the Grid type, its construction options and
// the errors returned while building it.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/quests/coord"
)

var (
	// ErrEmptyGrid is returned for a grid without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: empty grid")
	// ErrNonRectangular is returned when a row is shorter or longer than the first.
	ErrNonRectangular = errors.New("gridgraph: ragged rows")
)

// Connectivity is the neighborhood used by Neighbors and Components.
type Connectivity int

const (
	// Conn4 visits up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals; offsets run clockwise from up.
	Conn8
)

// DefaultWall is the rune of an impassable cell.
const DefaultWall = '#'

// GridOptions configures NewGrid.
type GridOptions struct {
	Wall rune         // impassable cell rune
	Conn Connectivity // neighborhood
}

// DefaultGridOptions returns '#' walls with four-way moves.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Wall: DefaultWall,
		Conn: Conn4,
	}
}

// Grid is a rectangular character map. It is immutable once built.
// Width and Height define dimensions; Cells[y][x] holds the cell rune.
type Grid struct {
	Width, Height   int
	Cells           [][]rune
	Conn            Connectivity
	Wall            rune
	neighborOffsets []coord.Coord2
}
