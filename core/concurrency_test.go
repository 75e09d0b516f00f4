// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/hardmine/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from a hub are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeightKind(core.Distance))
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id, float64(id)))
		}(i)
	}
	wg.Wait()

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	require.Len(t, ids, num)
}

// TestConcurrentReadersDuringRemoveRestore mixes readers with a writer that
// detaches and re-attaches one edge, checking for races and final equality.
func TestConcurrentReadersDuringRemoveRestore(t *testing.T) {
	g := buildSquare(t)
	before := g.Clone()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			e, err := g.RemoveEdge(2, 3)
			require.NoError(t, err)
			require.NoError(t, g.RestoreEdge(e))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = g.Edges()
			_, _ = g.NeighborIDs(2)
		}
	}()
	wg.Wait()

	require.True(t, core.Equal(before, g, 0))
}
