package bfs_test

import (
	"testing"

	"github.com/katalvlaran/hardmine/bfs"
	"github.com/katalvlaran/hardmine/core"
)

// BenchmarkBFS_Ring measures a full traversal of a directed ring with chords.
func BenchmarkBFS_Ring(b *testing.B) {
	const n = 2000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, 0)
		_ = g.AddEdge(i, (i+7)%n, 0)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
