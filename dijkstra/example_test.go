package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dijkstra"
)

// ExampleDijkstra shows geodesic distances on a small directed graph.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeightKind(core.Distance))
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1.5)
	_ = g.AddEdge(0, 2, 4)

	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
	fmt.Println(dist[0], dist[1], dist[2])
	// Output: 0 1 2.5
}
