// Package dijkstra implements a Dijkstra-style weighted search on a
// character grid.
//
// Notes on implementation choices:
//
//   - Cells are expanded in increasing accumulated cost using a min-heap.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Neighbors are generated up, right, down, left; walls are never entered.
//   - The first goal cell popped from the heap ends the search.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/gridgraph"
)

// StepCost is the elevation cost of moving between two cells of a cyclic
// 0–9 dial. Non-digit runes count as level 0.
//
//	diff = |b - a|
//	diff > 5  → 11 - diff   (wrapping around the dial is shorter)
//	otherwise → diff + 1    (every step costs at least 1)
//
// The result is symmetric in its arguments and lies in [1, 6].
func StepCost(from, to rune) int {
	diff := level(to) - level(from)
	if diff < 0 {
		diff = -diff
	}
	if diff > 5 {
		return 11 - diff
	}

	return diff + 1
}

// level returns the digit value of r, or 0 when r is not an ASCII digit.
func level(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	return 0
}

// Search returns the minimum total cost from the start cell to the first
// goal cell reached. When no goal is reachable it returns NoPath and
// ErrNoPath so callers can report the failure instead of aborting.
func Search(g *gridgraph.Grid, opts ...Option) (int, error) {
	res, err := SearchPath(g, opts...)
	if err != nil {
		return NoPath, err
	}

	return res.Cost, nil
}

// SearchPath runs the search and returns the full Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. the start cell must exist (ErrStartNotFound) and be passable
//     (ErrSourceOutOfRange).
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E)
func SearchPath(g *gridgraph.Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.resolveEndpoints()

	if g == nil {
		return Result{}, ErrNilGrid
	}

	start := cfg.Source
	if !cfg.HasSource {
		var ok bool
		if start, ok = g.Find(cfg.Start); !ok {
			return Result{}, fmt.Errorf("%w: rune %q", ErrStartNotFound, cfg.Start)
		}
	}
	if !g.Passable(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrSourceOutOfRange, start)
	}

	V := g.Width * g.Height
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[coord.Coord2]int, V),
		visited: make(map[coord.Coord2]bool, V),
		pq:      make(cellPQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[coord.Coord2]coord.Coord2, V)
	}

	r.init(start)
	goal, err := r.process()
	if err != nil {
		return Result{}, err
	}

	res := Result{Cost: r.dist[goal], Start: start, Goal: goal}
	if cfg.ReturnPath {
		res.Path = r.pathTo(goal)
	}

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.Grid               // The input grid; read-only.
	options Options                       // Configuration options.
	dist    map[coord.Coord2]int          // Best known cost per cell.
	prev    map[coord.Coord2]coord.Coord2 // Predecessors, nil unless ReturnPath.
	visited map[coord.Coord2]bool         // Finalized cells.
	pq      cellPQ                        // Min-heap of *cellItem.
	nbrs    []coord.Coord2                // Reused neighbor buffer.
}

// init seeds the heap with the start cell at cost 0.
func (r *runner) init(start coord.Coord2) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{point: start, value: r.value(start), cost: 0})
}

// process pops cells in cost order until a goal cell is finalized or the
// heap is exhausted.
func (r *runner) process() (coord.Coord2, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return coord.Coord2{}, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*cellItem)
		if r.visited[item.point] {
			continue // stale entry
		}
		r.visited[item.point] = true

		if r.isGoal(item) {
			return item.point, nil
		}
		if err := r.relax(item); err != nil {
			return coord.Coord2{}, err
		}
	}

	return coord.Coord2{}, ErrNoPath
}

// relax pushes every unfinalized neighbor of item whose cost improves.
func (r *runner) relax(item *cellItem) error {
	r.nbrs = r.g.Neighbors(r.nbrs[:0], item.point)
	for _, n := range r.nbrs {
		if r.visited[n] {
			continue
		}
		value := r.value(n)
		step := r.options.Cost(item.value, value)
		if step < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, item.point, n, step)
		}
		newCost := item.cost + step
		if old, ok := r.dist[n]; ok && newCost >= old {
			continue
		}
		r.dist[n] = newCost
		if r.prev != nil {
			r.prev[n] = item.point
		}
		heap.Push(&r.pq, &cellItem{point: n, value: value, cost: newCost})
	}

	return nil
}

func (r *runner) isGoal(item *cellItem) bool {
	if r.options.HasTarget {
		return item.point == r.options.Target
	}
	return item.value == r.options.Goal
}

func (r *runner) value(c coord.Coord2) rune {
	v, _ := r.g.At(c)
	return v
}

// pathTo walks the predecessor map back from goal.
func (r *runner) pathTo(goal coord.Coord2) []coord.Coord2 {
	path := []coord.Coord2{goal}
	for cur := goal; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cellItem is a grid cell with its terrain rune and accumulated cost.
type cellItem struct {
	point coord.Coord2
	value rune
	cost  int
}

// cellPQ is a min-heap of *cellItem ordered by cost ascending.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
