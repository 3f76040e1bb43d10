// Package bfs provides multi-source breadth-first search over a
// gridgraph.Grid, stopping once a required number of target cells has
// been discovered.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/gridgraph"
)

// FindStarts returns the open ('.') cells of g in row-major order. With
// edgesOnly, only cells on the outer border qualify.
func FindStarts(g *gridgraph.Grid, edgesOnly bool) []coord.Coord2 {
	var starts []coord.Coord2
	for _, c := range g.FindAll(OpenRune) {
		if edgesOnly && !g.IsBorder(c) {
			continue
		}
		starts = append(starts, c)
	}

	return starts
}

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  coord.Coord2
	depth int
}

// walker encapsulates mutable BFS state for one search.
type walker struct {
	grid      *gridgraph.Grid
	opts      Options
	queue     []queueItem
	head      int
	visited   []bool
	remaining int
	found     int
	res       Result
	nbrs      []coord.Coord2
}

// MultiSource runs a simultaneous BFS from every cell of starts (all at
// depth 0) and stops as soon as targets target cells have been popped.
// Duplicate starts are ignored.
//
// Returns ErrGridNil, ErrBadTargetCount, ErrNoStarts or ErrStartBlocked
// for invalid input, ErrOptionViolation for bad options,
// ErrTargetsUnreachable if the frontier empties first, the context error
// on cancellation, or any error returned by the OnVisit hook.
//
// Complexity: O(W·H) time and memory.
func MultiSource(g *gridgraph.Grid, starts []coord.Coord2, targets int, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrGridNil
	}
	if targets < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadTargetCount, targets)
	}
	if len(starts) == 0 {
		return Result{}, ErrNoStarts
	}

	w := &walker{
		grid:      g,
		opts:      o,
		queue:     make([]queueItem, 0, len(starts)),
		visited:   make([]bool, g.Width*g.Height),
		remaining: targets,
	}
	for _, s := range starts {
		if !g.Passable(s) {
			return Result{}, fmt.Errorf("%w: %v", ErrStartBlocked, s)
		}
		w.enqueue(s, 0)
	}

	if err := w.loop(); err != nil {
		return Result{}, err
	}

	return w.res, nil
}

// enqueue marks c visited and appends it to the frontier, once.
func (w *walker) enqueue(c coord.Coord2, depth int) {
	i := w.grid.Index(c)
	if w.visited[i] {
		return
	}
	w.visited[i] = true
	w.queue = append(w.queue, queueItem{cell: c, depth: depth})
}

// loop processes the frontier until enough targets are found, it
// empties, or the context is cancelled.
func (w *walker) loop() error {
	ctx := w.opts.Ctx
	for w.head < len(w.queue) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}
		if w.visit(item) {
			return nil
		}
		w.nbrs = w.grid.Neighbors(w.nbrs[:0], item.cell)
		for _, n := range w.nbrs {
			w.enqueue(n, item.depth+1)
		}
	}

	return fmt.Errorf("%w: found %d of %d", ErrTargetsUnreachable, w.found, w.found+w.remaining)
}

// visit accounts for a target cell and reports whether the search is done.
func (w *walker) visit(item queueItem) bool {
	if r, _ := w.grid.At(item.cell); r != w.opts.Target {
		return false
	}
	if w.found == 0 {
		w.res.First = item.depth
	}
	w.found++
	w.remaining--
	w.res.Depth = item.depth
	w.res.Total += item.depth
	w.opts.OnTarget(item.cell, item.depth)

	return w.remaining == 0
}
