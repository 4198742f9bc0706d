package centrality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// KatzOptions carries the Katz iteration knobs. Beta may be uniform
// (BetaUniform) or supplied per node (BetaFn, which wins when non-nil).
type KatzOptions struct {
	Alpha       float64
	BetaUniform float64
	BetaFn      func(graph.NodeId) float64
	MaxIter     int
	Tol         float64
	Normalize   bool // L2-normalize the final vector
}

// KatzOption mutates a KatzOptions instance.
type KatzOption func(*KatzOptions)

// DefaultKatzOptions returns alpha 0.1, uniform beta 1, 1000 iterations at
// tolerance 1e-10, no final normalization.
func DefaultKatzOptions() KatzOptions {
	return KatzOptions{Alpha: 0.1, BetaUniform: 1, MaxIter: 1000, Tol: 1e-10}
}

// WithAlpha sets the attenuation factor.
func WithAlpha(a float64) KatzOption { return func(o *KatzOptions) { o.Alpha = a } }

// WithBeta sets the uniform per-node bias.
func WithBeta(b float64) KatzOption { return func(o *KatzOptions) { o.BetaUniform = b } }

// WithBetaFn supplies a per-node bias, overriding the uniform beta.
func WithBetaFn(fn func(graph.NodeId) float64) KatzOption {
	return func(o *KatzOptions) { o.BetaFn = fn }
}

// WithKatzMaxIter caps the iteration count.
func WithKatzMaxIter(n int) KatzOption { return func(o *KatzOptions) { o.MaxIter = n } }

// WithKatzTol sets the convergence tolerance.
func WithKatzTol(tol float64) KatzOption { return func(o *KatzOptions) { o.Tol = tol } }

// WithKatzNormalize requests L2 normalization of the final vector.
func WithKatzNormalize() KatzOption { return func(o *KatzOptions) { o.Normalize = true } }

// Katz iterates x <- alpha*A*x + beta until the L2 delta drops below Tol,
// accumulating influence along incoming arcs. Exceeding MaxIter without
// converging surfaces ExceededMaxIterations (alpha above the reciprocal
// spectral radius diverges; the cap is what turns that into an error
// instead of a spin).
func Katz[A any, W graph.Weight](g *graph.Graph[A, W], opts ...KatzOption) (Scores, error) {
	if err := requireNonEmpty(g, "katz_centrality"); err != nil {
		return nil, err
	}
	o := DefaultKatzOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ridx := graph.Reindex(g)
	n := ridx.N()
	in := inArcs(g, ridx)

	beta := make([]float64, n)
	for i, id := range ridx.ToID {
		if o.BetaFn != nil {
			beta[i] = o.BetaFn(id)
		} else {
			beta[i] = o.BetaUniform
		}
	}

	x := make([]float64, n)
	next := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		for v := 0; v < n; v++ {
			acc := 0.0
			for _, a := range in[v] {
				acc += a.w * x[a.to]
			}
			next[v] = o.Alpha*acc + beta[v]
		}

		var delta float64
		for i := range next {
			delta += (next[i] - x[i]) * (next[i] - x[i])
		}
		x, next = next, x
		if math.Sqrt(delta) < o.Tol {
			if o.Normalize {
				if norm := floats.Norm(x, 2); norm > 0 {
					for i := range x {
						x[i] /= norm
					}
				}
			}
			return scoresFromVec(ridx, x), nil
		}
	}
	return nil, kerr.Iters(kerr.ExceededMaxIterations, o.MaxIter, "katz: alpha %g did not converge", o.Alpha)
}
