package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/quests/gridgraph"
)

// BenchmarkComponents measures Components on a random 500×500 map
// with roughly one wall in four cells.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	rows := make([][]rune, n)
	for y := range rows {
		rows[y] = make([]rune, n)
		for x := range rows[y] {
			rows[y][x] = '.'
			if rng.Intn(4) == 0 {
				rows[y][x] = '#'
			}
		}
	}
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
