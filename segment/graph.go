package segment

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/quests/coord"
)

// Walk yields the unit cells from `from` (exclusive) to `to` (inclusive).
// Each axis moves one unit towards `to` per yielded cell until it matches,
// so the sequence is finite for any pair of points. For axis-aligned
// pairs it is exactly the straight line between them.
// The returned sequence is pure and may be ranged over repeatedly.
func Walk(from, to coord.Coord3) iter.Seq[coord.Coord3] {
	return func(yield func(coord.Coord3) bool) {
		for cur := from; cur != to; {
			cur = cur.Add(to.Sub(cur).Sign())
			if !yield(cur) {
				return
			}
		}
	}
}

// MaxHeight returns the highest Y reached by the head of path after each
// whole step, starting from the origin (so never below 0).
func MaxHeight(path []Step) int {
	var head coord.Coord3
	top := 0
	for _, s := range path {
		head = s.Apply(head)
		top = max(top, head.Y)
	}

	return top
}

// Graph is the segment set grown by a collection of wire paths, together
// with the leaf of each path.
type Graph struct {
	segments map[coord.Coord3]struct{}
	leaves   []coord.Coord3
	isLeaf   map[coord.Coord3]bool
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		segments: make(map[coord.Coord3]struct{}),
		isLeaf:   make(map[coord.Coord3]bool),
	}
}

// Build walks every path from the origin and returns the resulting Graph.
func Build(paths [][]Step) *Graph {
	g := NewGraph()
	for _, p := range paths {
		g.Add(p)
	}

	return g
}

// Add walks path from the origin, inserting every unit cell into the
// segment set, and records its final cell as a leaf. The origin is only
// inserted when the path re-enters it. A path that never leaves the
// origin adds no leaf; ok reports whether a leaf was recorded. Adding the
// same path twice leaves the segment set unchanged.
func (g *Graph) Add(path []Step) (leaf coord.Coord3, ok bool) {
	var head coord.Coord3
	for _, s := range path {
		for c := range Walk(head, s.Apply(head)) {
			g.segments[c] = struct{}{}
			head = c
		}
	}
	if _, ok = g.segments[head]; !ok {
		return head, false
	}
	if !g.isLeaf[head] {
		g.isLeaf[head] = true
		g.leaves = append(g.leaves, head)
	}

	return head, true
}

// Len returns the number of distinct segments.
func (g *Graph) Len() int { return len(g.segments) }

// Contains reports whether c is a segment.
func (g *Graph) Contains(c coord.Coord3) bool {
	_, ok := g.segments[c]
	return ok
}

// Leaves returns the distinct leaves in insertion order.
func (g *Graph) Leaves() []coord.Coord3 {
	return slices.Clone(g.leaves)
}

// Segments returns every segment sorted by (X, Y, Z).
func (g *Graph) Segments() []coord.Coord3 {
	out := make([]coord.Coord3, 0, len(g.segments))
	for c := range g.segments {
		out = append(out, c)
	}
	slices.SortFunc(out, compare)

	return out
}

// Neighbors appends the six-connected neighbors of c that are segments.
func (g *Graph) Neighbors(dst []coord.Coord3, c coord.Coord3) []coord.Coord3 {
	for _, d := range coord.Orthogonal3 {
		if n := c.Add(d); g.Contains(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Distances runs an unweighted BFS over the segment graph from root and
// returns the distance of every reachable segment. Each segment is visited
// exactly once. A root that is not a segment yields an empty map.
func (g *Graph) Distances(root coord.Coord3) map[coord.Coord3]int {
	dist := make(map[coord.Coord3]int)
	if !g.Contains(root) {
		return dist
	}
	dist[root] = 0
	queue := []coord.Coord3{root}
	var nbrs []coord.Coord3
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nbrs = g.Neighbors(nbrs[:0], u)
		for _, v := range nbrs {
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// OnAxis reports whether c lies on the trunk axis X == 0, Z == 0.
func OnAxis(c coord.Coord3) bool {
	return c.X == 0 && c.Z == 0
}

// Murkiness maps every axis segment reached from at least one leaf to the
// sum of its BFS distances from each leaf that reaches it.
func (g *Graph) Murkiness() map[coord.Coord3]int {
	murk := make(map[coord.Coord3]int)
	for _, leaf := range g.leaves {
		for c, d := range g.Distances(leaf) {
			if OnAxis(c) {
				murk[c] += d
			}
		}
	}

	return murk
}

// MinMurkiness returns the lowest murkiness over all axis segments, or
// ErrNoAxisSegment when no leaf reaches the axis.
func (g *Graph) MinMurkiness() (int, error) {
	murk := g.Murkiness()
	if len(murk) == 0 {
		return 0, ErrNoAxisSegment
	}
	best := -1
	for _, v := range murk {
		if best < 0 || v < best {
			best = v
		}
	}

	return best, nil
}

func compare(a, b coord.Coord3) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
