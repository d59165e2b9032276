package dijkstra_test

import (
	"fmt"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/shortestpath/dijkstra"
)

// gridGraph builds an n×n 4-neighbor grid with random weights in [1, 10].
func gridGraph(n int) dijkstra.Graph {
	r := rand.New(rand.NewSource(99))
	id := func(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

	g := make(dijkstra.Graph, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			nbrs := map[string]float64{}
			if x+1 < n {
				nbrs[id(x+1, y)] = float64(1 + r.Intn(10))
			}
			if x > 0 {
				nbrs[id(x-1, y)] = float64(1 + r.Intn(10))
			}
			if y+1 < n {
				nbrs[id(x, y+1)] = float64(1 + r.Intn(10))
			}
			if y > 0 {
				nbrs[id(x, y-1)] = float64(1 + r.Intn(10))
			}
			g[id(x, y)] = nbrs
		}
	}

	return g
}

func BenchmarkComputeAllPaths_Grid50(b *testing.B) {
	g := gridGraph(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ComputeAllPaths(g, "0,0"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindShortestPath_Grid50(b *testing.B) {
	g := gridGraph(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.FindShortestPath(g, "0,0", "25,25"); err != nil {
			b.Fatal(err)
		}
	}
}
