package centrality

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kestrelgraph/kestrel/graph"
)

// PageRankOptions carries the tunable knobs of the PageRank iteration.
type PageRankOptions struct {
	Damping float64
	MaxIter int
	Tol     float64
	// Teleport, when non-nil, replaces the uniform teleport distribution
	// with a personalized one. It is normalized to sum 1 internally; nodes
	// absent from the map get zero teleport mass.
	Teleport graph.NodeMap[float64]
}

// PageRankOption mutates a PageRankOptions instance.
type PageRankOption func(*PageRankOptions)

// DefaultPageRankOptions returns damping 0.85, 100 iterations, tolerance 1e-6.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{Damping: 0.85, MaxIter: 100, Tol: 1e-6}
}

// WithDamping sets the damping factor d in (0, 1).
func WithDamping(d float64) PageRankOption {
	return func(o *PageRankOptions) { o.Damping = d }
}

// WithPageRankMaxIter caps the number of iterations.
func WithPageRankMaxIter(n int) PageRankOption {
	return func(o *PageRankOptions) { o.MaxIter = n }
}

// WithPageRankTol sets the L1 convergence tolerance.
func WithPageRankTol(tol float64) PageRankOption {
	return func(o *PageRankOptions) { o.Tol = tol }
}

// WithTeleport personalizes the teleport distribution (Personalized
// PageRank); the map is normalized internally.
func WithTeleport(t graph.NodeMap[float64]) PageRankOption {
	return func(o *PageRankOptions) { o.Teleport = t }
}

// PageRank computes the stationary rank vector of the damped random walk
// over g's weighted adjacency. Each iteration distributes (1-d)/n teleport
// mass plus the dangling mass d/n * Σ rank[i] over out-weightless nodes,
// then pushes d*rank[i]*(w_ij/out_weight[i]) along every outgoing arc.
// Iteration stops when the L1 rank delta drops below Tol or MaxIter is hit;
// hitting the cap is not an error (the last iterate is still a valid
// approximation, per the stop-condition contract).
func PageRank[A any, W graph.Weight](g *graph.Graph[A, W], opts ...PageRankOption) (Scores, error) {
	if err := requireNonEmpty(g, "pagerank"); err != nil {
		return nil, err
	}
	o := DefaultPageRankOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ridx := graph.Reindex(g)
	n := ridx.N()
	adj := outArcs(g, ridx)

	outWeight := make([]float64, n)
	for i, arcs := range adj {
		for _, a := range arcs {
			outWeight[i] += a.w
		}
	}

	teleport := make([]float64, n)
	if o.Teleport == nil {
		for i := range teleport {
			teleport[i] = 1 / float64(n)
		}
	} else {
		var total float64
		for id, mass := range o.Teleport {
			if i, ok := ridx.ToIndex[id]; ok && mass > 0 {
				teleport[i] = mass
				total += mass
			}
		}
		if total > 0 {
			for i := range teleport {
				teleport[i] /= total
			}
		} else {
			for i := range teleport {
				teleport[i] = 1 / float64(n)
			}
		}
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}
	next := make([]float64, n)
	d := o.Damping

	for iter := 0; iter < o.MaxIter; iter++ {
		var danglingMass float64
		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				danglingMass += rank[i]
			}
		}
		for i := 0; i < n; i++ {
			next[i] = (1-d)*teleport[i] + d*danglingMass*teleport[i]
		}
		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				continue
			}
			push := d * rank[i] / outWeight[i]
			for _, a := range adj[i] {
				next[a.to] += push * a.w
			}
		}

		var delta float64
		for i := 0; i < n; i++ {
			delta += abs(next[i] - rank[i])
		}
		rank, next = next, rank
		if delta < o.Tol {
			break
		}
	}

	// Guard against drift: the rank vector is a probability distribution.
	if total := floats.Sum(rank); total > 0 {
		for i := range rank {
			rank[i] /= total
		}
	}
	return scoresFromVec(ridx, rank), nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
