package gridgraph

// Components finds all contiguous regions of passable cells according to
// g.Conn connectivity. Each component is a slice of row-major cell indices
// in BFS discovery order; components appear in row-major order of their
// first cell.
//
// To convert an index back to a cell, use Coordinate(idx).
// ComponentOf gives the component number of every cell (-1 for walls).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	comps, _ := g.label()
	return comps
}

// ComponentOf returns, for every row-major cell index, the number of the
// component holding it, or -1 for wall cells.
func (g *Grid) ComponentOf() []int {
	_, labels := g.label()
	return labels
}

func (g *Grid) label() ([][]int, []int) {
	total := g.Width * g.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 || !g.Passable(g.Coordinate(i0)) {
			continue
		}
		id := len(comps)
		// BFS to collect component
		queue := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range g.neighborOffsets {
				v := u.Add(d)
				if !g.Passable(v) {
					continue
				}
				vi := g.Index(v)
				if labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, labels
}
