// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/shortestpath/dijkstra"
)

// ExampleFindShortestPath finds the cheapest route through a small road network.
func ExampleFindShortestPath() {
	// 1) Roads in both directions, weights are travel minutes.
	g := dijkstra.Graph{
		"A": {"B": 5, "C": 2},
		"B": {"A": 5, "D": 1},
		"C": {"A": 2, "D": 6},
		"D": {"B": 1, "C": 6, "E": 2},
		"E": {"D": 2},
	}

	// 2) Ask for A→E; the search stops once E is settled.
	res, err := dijkstra.FindShortestPath(g, "A", "E")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Status, res.Path, res.Distance)
	// Output: reachable [A B D E] 8
}

// ExampleComputeAllPaths lists every node's distance, including unreached ones.
func ExampleComputeAllPaths() {
	g := dijkstra.Graph{
		"A": {"B": 1},
		"B": {"A": 1},
		"C": {"D": 1},
		"D": {"C": 1},
	}

	dist, err := dijkstra.ComputeAllPaths(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nodes := make([]string, 0, len(dist))
	for n := range dist {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	for _, n := range nodes {
		fmt.Printf("%s=%v\n", n, dist[n])
	}
	// Output:
	// A=0
	// B=1
	// C=+Inf
	// D=+Inf
}

// ExampleComputeDistancesAndPaths rebuilds routes from the predecessor map.
func ExampleComputeDistancesAndPaths() {
	g := dijkstra.Graph{
		"Depot": {"North": 4, "South": 1},
		"South": {"North": 2, "East": 7},
		"North": {"East": 3},
	}

	p, err := dijkstra.ComputeDistancesAndPaths(g, "Depot")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := p.PathTo("East")
	fmt.Println(path, p.Distances["East"])
	// Output: [Depot South North East] 6
}

// ExampleFindShortestPath_invalidSource shows the only precondition failure.
func ExampleFindShortestPath_invalidSource() {
	_, err := dijkstra.FindShortestPath(dijkstra.Graph{"A": {}}, "Z", "A")
	fmt.Println(errors.Is(err, dijkstra.ErrInvalidSource))
	// Output: true
}
