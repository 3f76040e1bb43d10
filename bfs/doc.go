// Package bfs provides multi-source breadth-first search over a character
// grid, stopping as soon as a required number of target cells is found.
//
// What
//
//   - MultiSource seeds the frontier with every start cell at depth 0 and
//     expands in FIFO order (up, right, down, left), never entering walls.
//   - Each target cell ('P' by default) popped from the frontier decrements
//     a remaining counter; the search ends the moment it reaches zero and
//     the rest of the frontier is discarded.
//   - Result reports the depth of the first and of the last required
//     target, and the sum of all discovery depths.
//   - FindStarts selects the seeds: every open cell, or only those on the
//     border of the grid.
//   - BestSingleStart tries each open cell as a lone seed and keeps the one
//     with the smallest depth sum. FloodFillBest reaches the same minimum
//     with one flood fill per target.
//
// Determinism
//
//	Neighbors are enqueued in a fixed order and duplicate starts are
//	dropped, so discovery order is reproducible for a given start slice.
//	BestSingleStart breaks ties by row-major order regardless of goroutine
//	scheduling.
//
// Complexity (V = W·H)
//
//   - MultiSource:     O(V) time and memory
//   - BestSingleStart: O(V²) time, parallel over candidates
//   - FloodFillBest:   O(T·V) time, O(V) memory
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per pop.
//   - WithTarget(r):      rune of target cells.
//   - WithOnVisit(fn):    hook per pop; returning an error aborts.
//   - WithOnTarget(fn):   hook per discovered target.
//   - WithWorkers(n):     bound the goroutines of BestSingleStart.
//
// Errors
//
//   - ErrGridNil, ErrNoStarts, ErrStartBlocked, ErrBadTargetCount, ErrNoTargets for invalid input.
//   - ErrOptionViolation for invalid options.
//   - ErrTargetsUnreachable when the frontier empties too early. Puzzle
//     inputs always reach every target, so callers treat it as fatal.
package bfs
