package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hardmine/bfs"
	"github.com/katalvlaran/hardmine/core"
)

// ExampleHopDistance measures the shortest cycle through the edge 0→1 by
// masking it and walking back from 1 to 0.
func ExampleHopDistance() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 0, 0)

	mask := core.NewEdgeMask(core.EdgeKey{From: 0, To: 1})
	hops, ok, _ := bfs.HopDistance(g, 1, 0, bfs.WithEdgeMask(mask))
	fmt.Println(ok, hops+1)

	// Output:
	// true 3
}
