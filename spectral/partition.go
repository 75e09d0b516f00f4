package spectral

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/matrix"
	"gonum.org/v1/gonum/mat"
)

// maxIter bounds the 2-means refinement.
const maxIter = 100

// Partition computes the normalized spectral two-way cut of g.
//
// Deterministic for a fixed graph. Errors: ErrDegenerateEgoNetwork when g has
// fewer than two vertices; a wrapped error if the eigen-decomposition fails.
// Complexity: O(V³) for the eigen-decomposition.
func Partition(g *core.Graph) (Cut, error) {
	if g == nil || g.VertexCount() < 2 {
		return Cut{}, ErrDegenerateEgoNetwork
	}
	idx, s, err := matrix.Affinity(g)
	if err != nil {
		return Cut{}, fmt.Errorf("spectral: Partition: %w", err)
	}
	n := idx.Len()

	lap := normalizedLaplacian(s)
	var es mat.EigenSym
	if ok := es.Factorize(lap, true); !ok {
		return Cut{}, fmt.Errorf("spectral: Partition: eigen-decomposition of %d×%d Laplacian failed", n, n)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	emb := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		x, y := vecs.At(i, 0), vecs.At(i, 1)
		if norm := math.Hypot(x, y); norm > 0 {
			x, y = x/norm, y/norm
		}
		emb[i] = [2]float64{x, y}
	}

	labels := twoMeans(emb)
	if !bothUsed(labels) {
		labels = fiedlerSplit(mat.Col(nil, 1, &vecs))
	}

	return canonical(idx, labels), nil
}

// normalizedLaplacian returns I − D^{-1/2} S D^{-1/2}.
func normalizedLaplacian(s *mat.SymDense) *mat.SymDense {
	n := s.SymmetricDim()
	inv := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		var deg float64
		for j = 0; j < n; j++ {
			deg += s.At(i, j)
		}
		if deg > 0 {
			inv[i] = 1 / math.Sqrt(deg)
		}
	}
	lap := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v := -inv[i] * s.At(i, j) * inv[j]
			if i == j {
				v++
			}
			lap.SetSym(i, j, v)
		}
	}

	return lap
}

// twoMeans clusters points into {0,1} with Lloyd iterations from a
// farthest-point seeding. Ties keep the lower cluster.
func twoMeans(pts [][2]float64) []int {
	n := len(pts)
	c0 := pts[0]
	far, best := 0, -1.0
	for i, p := range pts {
		if d := sqDist(p, c0); d > best {
			far, best = i, d
		}
	}
	centers := [2][2]float64{c0, pts[far]}

	labels := make([]int, n)
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range pts {
			l := 0
			if sqDist(p, centers[1]) < sqDist(p, centers[0]) {
				l = 1
			}
			if l != labels[i] {
				labels[i] = l
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}
		var sum [2][2]float64
		var cnt [2]int
		for i, p := range pts {
			sum[labels[i]][0] += p[0]
			sum[labels[i]][1] += p[1]
			cnt[labels[i]]++
		}
		for k := 0; k < 2; k++ {
			if cnt[k] > 0 {
				centers[k] = [2]float64{sum[k][0] / float64(cnt[k]), sum[k][1] / float64(cnt[k])}
			}
		}
	}

	return labels
}

// fiedlerSplit cuts the sorted Fiedler vector at its largest gap.
func fiedlerSplit(f []float64) []int {
	n := len(f)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return f[order[a]] < f[order[b]] })

	cutAt, gap := 1, -1.0
	for k := 1; k < n; k++ {
		if d := f[order[k]] - f[order[k-1]]; d > gap {
			cutAt, gap = k, d
		}
	}
	labels := make([]int, n)
	for k := cutAt; k < n; k++ {
		labels[order[k]] = 1
	}

	return labels
}

func bothUsed(labels []int) bool {
	var seen [2]bool
	for _, l := range labels {
		seen[l] = true
	}
	return seen[0] && seen[1]
}

// canonical maps row labels back to vertex ids, putting the lowest id in A.
func canonical(idx *matrix.VertexIndex, labels []int) Cut {
	var c Cut
	first := labels[0] // row 0 holds the lowest id
	for i, l := range labels {
		if l == first {
			c.A = append(c.A, idx.ID(i))
		} else {
			c.B = append(c.B, idx.ID(i))
		}
	}

	return c
}

func sqDist(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}
