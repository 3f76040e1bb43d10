// Package dijkstra finds the cheapest route across a terrain map whose
// cells carry heights on a cyclic 0–9 dial.
//
// Overview:
//
//   - Search expands cells in increasing accumulated cost using a min-heap
//     and returns the cost of the first goal cell it finalizes.
//   - Moving between neighbors costs StepCost(a, b): the height difference
//     plus one, or the shorter way round the dial when the difference
//     exceeds five.
//   - Walls (the grid's Wall rune) are never entered.
//   - The search is symmetric: WithDirection(Reversed) starts at 'E' and
//     stops at the first 'S', which yields the same cost for a single
//     S/E pair and the nearest 'S' when there are several.
//
// Failure:
//
//	An unreachable goal is a legitimate outcome. Search returns NoPath (-1)
//	together with ErrNoPath; every other error signals bad input.
//
// Example usage:
//
//	g, _ := gridgraph.FromLines("S12", "#3E")
//	cost, err := dijkstra.Search(g)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // report -1
//	}
package dijkstra
