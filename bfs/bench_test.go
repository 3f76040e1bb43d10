package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/quests/bfs"
	"github.com/katalvlaran/quests/gridgraph"
)

func randomGarden(b *testing.B, n int) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]rune, n)
	for y := range rows {
		rows[y] = make([]rune, n)
		for x := range rows[y] {
			switch r := rng.Intn(20); {
			case r < 3:
				rows[y][x] = '#'
			case r < 4:
				rows[y][x] = 'P'
			default:
				rows[y][x] = '.'
			}
		}
	}
	g, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkBestSingleStart measures the brute-force minimisation.
func BenchmarkBestSingleStart(b *testing.B) {
	g := randomGarden(b, 30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.BestSingleStart(g)
	}
}

// BenchmarkFloodFillBest measures the per-target flood fill on the same map.
func BenchmarkFloodFillBest(b *testing.B) {
	g := randomGarden(b, 30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bfs.FloodFillBest(g)
	}
}
