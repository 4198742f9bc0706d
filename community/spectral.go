package community

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/rng"
)

// kmeansMaxIter bounds the Lloyd loop inside Spectral.
const kmeansMaxIter = 100

// Spectral clusters g into k communities: the k lowest eigenvectors of the
// unnormalized Laplacian D - A form an n x k embedding, which a seeded,
// bounded-iteration k-means then partitions. Panics if k > n — a documented
// caller precondition, not a recoverable condition, since no k-partition of
// fewer than k points exists.
func Spectral[A any, W graph.Weight](g *graph.Graph[A, W], k int, seed int64) [][]graph.NodeId {
	ridx := graph.Reindex(g)
	n := ridx.N()
	if k > n {
		panic(fmt.Sprintf("community.Spectral: k=%d exceeds node count %d", k, n))
	}
	if n == 0 {
		return nil
	}
	if k <= 1 {
		all := append([]graph.NodeId(nil), ridx.ToID...)
		return [][]graph.NodeId{all}
	}

	// Laplacian L = D - A over the undirected projection, parallel edges
	// accumulated.
	lap := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		w := float64(e.Weight)
		if i == j {
			continue // self-loops cancel out of D - A
		}
		if i > j {
			i, j = j, i
		}
		lap.SetSym(i, j, lap.At(i, j)-w)
		lap.SetSym(i, i, lap.At(i, i)+w)
		lap.SetSym(j, j, lap.At(j, j)+w)
	}

	var eig mat.EigenSym
	if !eig.Factorize(lap, true) {
		// Factorization of a real symmetric matrix should not fail; if it
		// does, fall back to a degenerate single-community answer rather
		// than guessing at an embedding.
		all := append([]graph.NodeId(nil), ridx.ToID...)
		return [][]graph.NodeId{all}
	}
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// Eigenvalues ascend, so the first k columns are the k lowest.
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for c := 0; c < k; c++ {
			row[c] = vectors.At(i, c)
		}
		points[i] = row
	}

	assign := kmeans(points, k, seed)

	groups := make([][]graph.NodeId, k)
	for i, c := range assign {
		groups[c] = append(groups[c], ridx.ToID[i])
	}
	out := make([][]graph.NodeId, 0, k)
	for _, group := range groups {
		if len(group) > 0 {
			out = append(out, group)
		}
	}
	return out
}

// kmeans is a bounded Lloyd loop with deterministic seeded initialization.
// A cluster that empties is re-seeded from a random data point.
func kmeans(points [][]float64, k int, seed int64) []int {
	n := len(points)
	dim := len(points[0])
	r := rng.FromSeed(seed)

	centers := make([][]float64, k)
	for i, p := range rng.Perm(n, r)[:k] {
		centers[i] = append([]float64(nil), points[p]...)
	}

	assign := make([]int, n)
	for iter := 0; iter < kmeansMaxIter; iter++ {
		changed := false
		for i, p := range points {
			best, bestDist := 0, math.Inf(1)
			for c := range centers {
				if d := sqDist(p, centers[c]); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			c := assign[i]
			counts[c]++
			for d := range p {
				sums[c][d] += p[d]
			}
		}
		for c := range centers {
			if counts[c] == 0 {
				centers[c] = append([]float64(nil), points[r.Intn(n)]...)
				changed = true
				continue
			}
			for d := range centers[c] {
				centers[c][d] = sums[c][d] / float64(counts[c])
			}
		}
		if !changed {
			break
		}
	}
	return assign
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
