// Package gridgraph provides utilities to treat a 2D grid of characters
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked lookup and row-major searches
//   - Identification of connected components of passable cells
//
// Cells holding the Wall rune are impassable; every other cell is open.
package gridgraph

import (
	"github.com/katalvlaran/quests/coord"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows is empty or its first row has no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]rune, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]rune, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]rune, w)
		copy(cells[y], rows[y])
	}
	var offsets []coord.Coord2
	if opts.Conn == Conn8 {
		offsets = []coord.Coord2{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1}}
	} else {
		offsets = append([]coord.Coord2(nil), coord.Orthogonal2[:]...)
	}

	return &Grid{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		Wall:            opts.Wall,
		neighborOffsets: offsets,
	}, nil
}

// FromLines builds a Grid with default options from text rows.
func FromLines(lines ...string) (*Grid, error) {
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}

	return NewGrid(rows, DefaultGridOptions())
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c coord.Coord2) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the rune at c; ok is false when c is out of range.
func (g *Grid) At(c coord.Coord2) (r rune, ok bool) {
	if !g.InBounds(c) {
		return 0, false
	}

	return g.Cells[c.Y][c.X], true
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c coord.Coord2) bool {
	r, ok := g.At(c)
	return ok && r != g.Wall
}

// IsBorder reports whether c lies on the outermost ring of the grid.
func (g *Grid) IsBorder(c coord.Coord2) bool {
	return g.InBounds(c) && (c.X == 0 || c.Y == 0 || c.X == g.Width-1 || c.Y == g.Height-1)
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() []coord.Coord2 {
	return g.neighborOffsets
}

// Neighbors appends to dst the passable neighbors of c, in offset order,
// and returns the extended slice. Passing a reused dst avoids allocation
// inside hot loops.
func (g *Grid) Neighbors(dst []coord.Coord2, c coord.Coord2) []coord.Coord2 {
	for _, d := range g.neighborOffsets {
		n := c.Add(d)
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Find returns the first cell in row-major order holding r.
func (g *Grid) Find(r rune) (coord.Coord2, bool) {
	for y, row := range g.Cells {
		for x, v := range row {
			if v == r {
				return coord.Coord2{X: x, Y: y}, true
			}
		}
	}

	return coord.Coord2{}, false
}

// FindAll returns every cell holding r, in row-major order.
func (g *Grid) FindAll(r rune) []coord.Coord2 {
	var out []coord.Coord2
	for y, row := range g.Cells {
		for x, v := range row {
			if v == r {
				out = append(out, coord.Coord2{X: x, Y: y})
			}
		}
	}

	return out
}

// Count returns the number of cells holding r.
func (g *Grid) Count(r rune) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v == r {
				n++
			}
		}
	}

	return n
}

// Index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c coord.Coord2) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row‑major index back to a cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) coord.Coord2 {
	return coord.Coord2{X: idx % g.Width, Y: idx / g.Width}
}
