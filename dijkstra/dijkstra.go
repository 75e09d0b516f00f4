package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hardmine/core"
	"gonum.org/v1/gonum/mat"
)

// Dijkstra computes shortest distances from the Source vertex to all vertices of g.
//
// Returns:
//
//   - dist: vertex id → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if WithReturnPath (nil otherwise); prev[v] == -1
//     for the source and unreachable vertices.
//   - err:  validation errors or ctx.Err().
//
// Validation order: option errors, ErrNoSource, ErrNilGraph,
// ErrUnweightedGraph, ErrVertexNotFound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, cfg); err != nil {
		return nil, nil, err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	r := newRunner(g, cfg, g.Vertices())
	if err := r.run(cfg.Source); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// AllPairs runs Dijkstra from every vertex of g (ascending id order) and
// returns the ids together with a V×V matrix where D[i][j] is the geodesic
// distance from ids[i] to ids[j] (+Inf when unreachable, 0 on the diagonal).
// Source and ReturnPath options are ignored.
//
// Complexity: O(V·(V + E) log V) time, O(V²) space.
func AllPairs(g *core.Graph, opts ...Option) ([]int, *mat.Dense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = 0 // satisfy validate; each run sets its own source
	cfg.ReturnPath = false
	if err := validate(g, cfg); err != nil {
		return nil, nil, err
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return ids, nil, nil
	}
	out := mat.NewDense(n, n, nil)
	for i, src := range ids {
		r := newRunner(g, cfg, ids)
		if err := r.run(src); err != nil {
			return nil, nil, err
		}
		for j, dst := range ids {
			out.Set(i, j, r.dist[dst])
		}
	}

	return ids, out, nil
}

func validate(g *core.Graph, cfg Options) error {
	if cfg.err != nil {
		return cfg.err
	}
	if cfg.Source < 0 {
		return ErrNoSource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() && !cfg.UnitWeights {
		return ErrUnweightedGraph
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options, vertices []int) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, len(vertices)),
		visited: make(map[int]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, len(vertices))
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = -1
		}
	}

	return r
}

// run seeds the heap with src and processes it to exhaustion.
func (r *runner) run(src int) error {
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})

	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		if r.options.Mask.Masked(u, e.To) {
			continue
		}
		w := e.Weight
		if r.options.UnitWeights {
			w = 1
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by id for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
