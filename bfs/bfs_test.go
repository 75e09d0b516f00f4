package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hardmine/bfs"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
)

// chain builds the directed path 0→1→2→3 plus the back edge 3→0.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeightKind(core.Distance))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 4); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex(0)
	_, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	if !errors.Is(err, bfs.ErrOptionViolation) || !errors.Is(err, dataset.ErrInvalidArgument) {
		t.Errorf("negative depth: want ErrOptionViolation+ErrInvalidArgument, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithTarget(-2)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative target: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_FollowsDirection checks that edges are only walked forward.
func TestBFS_FollowsDirection(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3, 0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 3 {
		t.Errorf("Depth[0] = %d; want 3", d)
	}
	path, err := res.PathTo(0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3, 0}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(0) = %v; want %v", path, want)
	}
}

// TestBFS_MaxDepth checks that radius 0 yields the start alone and radius 1 its out-neighbors.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("depth 0 Order = %v; want %v", res.Order, want)
	}
	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := map[int]bool{0: true, 1: true}; !reflect.DeepEqual(res.Reached(), want) {
		t.Errorf("depth 1 Reached = %v; want %v", res.Reached(), want)
	}
	if _, err := res.PathTo(3); err == nil {
		t.Error("PathTo(3) should fail beyond the depth limit")
	}
}

// TestHopDistance_WithMask checks the cycle-length building block.
func TestHopDistance_WithMask(t *testing.T) {
	g := chain(t)
	// Path 1 → 0 exists via 1→2→3→0.
	d, ok, err := bfs.HopDistance(g, 1, 0)
	if err != nil || !ok || d != 3 {
		t.Fatalf("HopDistance(1,0) = %d,%v,%v; want 3,true,nil", d, ok, err)
	}
	// Masking 2→3 breaks the only route.
	mask := core.NewEdgeMask(core.EdgeKey{From: 2, To: 3})
	_, ok, err = bfs.HopDistance(g, 1, 0, bfs.WithEdgeMask(mask))
	if err != nil || ok {
		t.Fatalf("masked HopDistance: ok=%v err=%v; want unreachable without error", ok, err)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("mask must not mutate the graph")
	}
	// Filters compose with masks.
	_, ok, _ = bfs.HopDistance(g, 0, 2, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 1 }))
	if ok {
		t.Error("filtered neighbor should block the path")
	}
}

// TestBFS_HooksAndCancel covers OnVisit errors and context cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	g := chain(t)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
