package bfs

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quests/coord"
	"github.com/katalvlaran/quests/gridgraph"
)

// BestSingleStart tries every open cell as the only start of a
// MultiSource search that must reach all target cells, and returns the
// start with the smallest Result.Total (ties go to the first start in
// row-major order).
//
// Candidates whose region does not hold every target are skipped, since
// their search can never finish. Searches run concurrently, bounded by
// WithWorkers; each owns its frontier and visited set, and the results
// are combined by a minimum reduction. The OnVisit and OnTarget hooks are
// not forwarded to the concurrent searches.
//
// Complexity: O(V²) time, O(V) memory per running search.
func BestSingleStart(g *gridgraph.Grid, opts ...Option) (coord.Coord2, Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return coord.Coord2{}, Result{}, err
	}
	if g == nil {
		return coord.Coord2{}, Result{}, ErrGridNil
	}
	targets := g.Count(o.Target)
	if targets == 0 {
		return coord.Coord2{}, Result{}, fmt.Errorf("%w: %q", ErrNoTargets, o.Target)
	}
	candidates := completeRegions(g, o.Target, FindStarts(g, false))
	if len(candidates) == 0 {
		return coord.Coord2{}, Result{}, fmt.Errorf("%w: no start reaches all %d targets", ErrTargetsUnreachable, targets)
	}

	eg, ctx := errgroup.WithContext(o.Ctx)
	if o.Workers > 0 {
		eg.SetLimit(o.Workers)
	}

	var (
		mu       sync.Mutex
		bestIdx  = -1
		bestCell coord.Coord2
		best     Result
	)
	for i, c := range candidates {
		eg.Go(func() error {
			res, err := MultiSource(g, []coord.Coord2{c}, targets, WithContext(ctx), WithTarget(o.Target))
			if err != nil {
				return fmt.Errorf("start %v: %w", c, err)
			}
			mu.Lock()
			defer mu.Unlock()
			if bestIdx < 0 || res.Total < best.Total || (res.Total == best.Total && i < bestIdx) {
				bestIdx, bestCell, best = i, c, res
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return coord.Coord2{}, Result{}, err
	}

	return bestCell, best, nil
}

// FloodFillBest computes the same minimum as BestSingleStart with one
// flood fill per target instead of one search per open cell: each fill
// adds its distances into a per-cell sum, and the open cell reached by
// every target with the lowest sum wins (ties to row-major order).
//
// Complexity: O(T·V) time, O(V) memory, T = number of targets.
func FloodFillBest(g *gridgraph.Grid, opts ...Option) (coord.Coord2, int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return coord.Coord2{}, 0, err
	}
	if g == nil {
		return coord.Coord2{}, 0, ErrGridNil
	}
	targetCells := g.FindAll(o.Target)
	if len(targetCells) == 0 {
		return coord.Coord2{}, 0, fmt.Errorf("%w: %q", ErrNoTargets, o.Target)
	}

	n := g.Width * g.Height
	sum := make([]int, n)
	reached := make([]int, n)
	dist := make([]int, n)
	var queue []int
	var nbrs []coord.Coord2
	for _, t := range targetCells {
		select {
		case <-o.Ctx.Done():
			return coord.Coord2{}, 0, o.Ctx.Err()
		default:
		}
		for i := range dist {
			dist[i] = -1
		}
		ti := g.Index(t)
		dist[ti] = 0
		queue = append(queue[:0], ti)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			sum[u] += dist[u]
			reached[u]++
			nbrs = g.Neighbors(nbrs[:0], g.Coordinate(u))
			for _, v := range nbrs {
				if vi := g.Index(v); dist[vi] < 0 {
					dist[vi] = dist[u] + 1
					queue = append(queue, vi)
				}
			}
		}
	}

	bestIdx := -1
	for _, c := range FindStarts(g, false) {
		i := g.Index(c)
		if reached[i] != len(targetCells) {
			continue
		}
		if bestIdx < 0 || sum[i] < sum[bestIdx] {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return coord.Coord2{}, 0, fmt.Errorf("%w: no start reaches all %d targets", ErrTargetsUnreachable, len(targetCells))
	}

	return g.Coordinate(bestIdx), sum[bestIdx], nil
}

// completeRegions keeps the candidates whose connected region holds every
// cell with the target rune.
func completeRegions(g *gridgraph.Grid, target rune, candidates []coord.Coord2) []coord.Coord2 {
	labels := g.ComponentOf()
	perRegion := make(map[int]int)
	total := 0
	for _, t := range g.FindAll(target) {
		perRegion[labels[g.Index(t)]]++
		total++
	}
	out := candidates[:0:0]
	for _, c := range candidates {
		if perRegion[labels[g.Index(c)]] == total {
			out = append(out, c)
		}
	}

	return out
}
