package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/quests/bfs"
	"github.com/katalvlaran/quests/gridgraph"
)

// ExampleMultiSource floods a walled garden from its border openings until
// every 'P' has been reached.
func ExampleMultiSource() {
	g, _ := gridgraph.FromLines(
		"##.##",
		"#P..#",
		"#.#P#",
		"#####",
	)
	res, err := bfs.MultiSource(g, bfs.FindStarts(g, true), g.Count('P'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("last:", res.Depth, "sum:", res.Total)
	// Output: last: 3 sum: 5
}

// ExampleFloodFillBest picks the open cell closest to all targets.
func ExampleFloodFillBest() {
	g, _ := gridgraph.FromLines(
		"##P##",
		"P...P",
		"#####",
	)
	cell, total, _ := bfs.FloodFillBest(g)
	fmt.Println(cell, total)
	// Output: (2,1) 5
}
