// Package gridgraph treats a rectangular grid of characters as an implicit
// graph whose vertices are cells and whose edges join neighboring cells.
//
// What:
//
//   - Grid wraps a rectangular [][]rune, deep-copied at construction and
//     read-only afterwards. Cells are addressed by coord.Coord2{X: col, Y: row}.
//   - Every lookup is bounds-checked; At reports ok=false instead of panicking.
//   - A configurable wall rune marks impassable cells.
//   - Neighbors yields the passable neighbors of a cell in a fixed order
//     (Conn4: up, right, down, left), so traversals are reproducible.
//   - Components groups passable cells into connected regions.
//
// Why:
//
//   - Puzzle inputs are character maps; the search packages (dijkstra, bfs)
//     share one well-tested view of them instead of indexing raw slices.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory (deep copy).
//   - Find/Count: O(W×H).
//   - Neighbors:  O(d), d = 4 or 8.
//   - Components: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
