package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// EigenvectorOptions carries the power-iteration knobs used on the directed
// branch; the undirected branch solves the symmetric eigenproblem directly
// and ignores them.
type EigenvectorOptions struct {
	MaxIter int
	Tol     float64
}

// EigenvectorOption mutates an EigenvectorOptions instance.
type EigenvectorOption func(*EigenvectorOptions)

// DefaultEigenvectorOptions returns 1000 iterations at tolerance 1e-10.
func DefaultEigenvectorOptions() EigenvectorOptions {
	return EigenvectorOptions{MaxIter: 1000, Tol: 1e-10}
}

// WithEigenvectorMaxIter caps power iteration.
func WithEigenvectorMaxIter(n int) EigenvectorOption {
	return func(o *EigenvectorOptions) { o.MaxIter = n }
}

// WithEigenvectorTol sets the convergence tolerance.
func WithEigenvectorTol(tol float64) EigenvectorOption {
	return func(o *EigenvectorOptions) { o.Tol = tol }
}

// Eigenvector computes eigenvector centrality. Undirected graphs go through
// gonum's symmetric eigensolver (principal eigenvector of the adjacency
// matrix); directed graphs use power iteration on the transposed adjacency
// (incoming influence) with oscillation detection. Values are absolute and
// normalized so their sum equals n.
//
// Fast paths: an empty graph yields an empty map; a zero-edge graph yields
// the uniform score 1/n per node. Power iteration that fails to settle
// within MaxIter surfaces ConvergenceFailed with the iteration count.
func Eigenvector[A any, W graph.Weight](g *graph.Graph[A, W], opts ...EigenvectorOption) (Scores, error) {
	o := DefaultEigenvectorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ridx := graph.Reindex(g)
	n := ridx.N()
	if n == 0 {
		return Scores{}, nil
	}
	if g.EdgeCount() == 0 {
		uniform := make([]float64, n)
		for i := range uniform {
			uniform[i] = 1 / float64(n)
		}
		return scoresFromVec(ridx, uniform), nil
	}

	var vec []float64
	if g.IsDirected() {
		v, err := powerIterate(inArcs(g, ridx), n, o)
		if err != nil {
			return nil, err
		}
		vec = v
	} else {
		vec = symmetricPrincipal(g, ridx)
	}

	// Normalize: absolute values summing to n.
	for i := range vec {
		vec[i] = math.Abs(vec[i])
	}
	if total := floats.Sum(vec); total > 0 {
		scale := float64(n) / total
		for i := range vec {
			vec[i] *= scale
		}
	}
	return scoresFromVec(ridx, vec), nil
}

// symmetricPrincipal extracts the principal eigenvector of the undirected
// adjacency matrix. Parallel edges accumulate into the same cell, a
// self-loop lands on the diagonal once.
func symmetricPrincipal[A any, W graph.Weight](g *graph.Graph[A, W], ridx graph.Reindexed) []float64 {
	n := ridx.N()
	sym := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		if i <= j {
			sym.SetSym(i, j, sym.At(i, j)+float64(e.Weight))
		} else {
			sym.SetSym(j, i, sym.At(j, i)+float64(e.Weight))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		// The adjacency matrix is real symmetric, so factorization cannot
		// fail mathematically; a numerical failure degrades to power
		// iteration over the same matrix.
		vec, err := powerIterate(arcsFromSym(sym), n, DefaultEigenvectorOptions())
		if err != nil {
			return make([]float64, n)
		}
		return vec
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	// Eigenvalues come back ascending; the principal eigenvector is the
	// last column.
	vec := make([]float64, n)
	mat.Col(vec, n-1, &vectors)
	return vec
}

func arcsFromSym(sym *mat.SymDense) [][]arc {
	n, _ := sym.Dims()
	adj := make([][]arc, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w := sym.At(i, j); w != 0 {
				adj[i] = append(adj[i], arc{to: j, w: w})
			}
		}
	}
	return adj
}

// powerIterate runs x <- A^T x (expressed through incoming arcs) with L2
// renormalization each step. Oscillation between x and -x past iteration 10
// is accepted as converged, since abs-normalization erases the sign flip.
func powerIterate(in [][]arc, n int, o EigenvectorOptions) ([]float64, error) {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}
	next := make([]float64, n)

	for iter := 0; iter < o.MaxIter; iter++ {
		for i := range next {
			next[i] = 0
		}
		for v := 0; v < n; v++ {
			for _, a := range in[v] {
				next[v] += a.w * x[a.to]
			}
		}
		norm := floats.Norm(next, 2)
		if norm == 0 {
			// The iterate collapsed (e.g. a source-only directed graph);
			// fall back to the uniform vector rather than dividing by zero.
			for i := range next {
				next[i] = 1 / float64(n)
			}
			return next, nil
		}
		for i := range next {
			next[i] /= norm
		}

		var diff, oscDiff float64
		for i := range next {
			diff += math.Abs(next[i] - x[i])
			oscDiff += math.Abs(next[i] + x[i])
		}
		converged := diff < o.Tol
		oscillating := iter > 10 && oscDiff < o.Tol
		copy(x, next)
		if converged || oscillating {
			return x, nil
		}
	}
	return nil, kerr.Iters(kerr.ConvergenceFailed, o.MaxIter, "eigenvector: power iteration did not settle")
}
