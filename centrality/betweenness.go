package centrality

import (
	"github.com/kestrelgraph/kestrel/graph"
)

// EdgeKey is an ordered (src, tgt) endpoint pair keying edge-betweenness
// scores. For undirected graphs both orientations are present and carry the
// same accumulated value.
type EdgeKey struct {
	U, V graph.NodeId
}

// BetweennessOptions controls normalization of the Brandes accumulation.
type BetweennessOptions struct {
	Normalize bool
}

// BetweennessOption mutates a BetweennessOptions instance.
type BetweennessOption func(*BetweennessOptions)

// WithNormalization rescales scores by 1/((n-1)(n-2)) on directed graphs and
// 2/((n-1)(n-2)) on undirected ones.
func WithNormalization() BetweennessOption {
	return func(o *BetweennessOptions) { o.Normalize = true }
}

// brandesState is the per-source scratch of one Brandes pass: shortest-path
// counts sigma, hop distances, predecessor lists, and the stack recording
// non-increasing-distance visit order for the backward accumulation.
type brandesState struct {
	sigma []float64
	dist  []int
	preds [][]int
	stack []int
	delta []float64
}

func newBrandesState(n int) *brandesState {
	return &brandesState{
		sigma: make([]float64, n),
		dist:  make([]int, n),
		preds: make([][]int, n),
		delta: make([]float64, n),
	}
}

// forward runs the BFS half of Brandes from source s over adj, filling
// sigma/dist/preds and the visit stack. It iterates only the dequeued node's
// neighbors, and reads dist[w] again after a possible insertion so a newly
// discovered node takes the sigma contribution exactly once.
func (st *brandesState) forward(adj [][]int, s int) {
	st.stack = st.stack[:0]
	for i := range st.sigma {
		st.sigma[i] = 0
		st.dist[i] = -1
		st.preds[i] = st.preds[i][:0]
	}
	st.sigma[s] = 1
	st.dist[s] = 0

	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		st.stack = append(st.stack, v)
		for _, w := range adj[v] {
			if st.dist[w] < 0 {
				st.dist[w] = st.dist[v] + 1
				queue = append(queue, w)
			}
			if st.dist[w] == st.dist[v]+1 {
				st.sigma[w] += st.sigma[v]
				st.preds[w] = append(st.preds[w], v)
			}
		}
	}
}

// hopAdjacency builds the unweighted compact-index adjacency Brandes
// traverses: successors for directed graphs, all incident neighbors for
// undirected ones.
func hopAdjacency[A any, W graph.Weight](g *graph.Graph[A, W], ridx graph.Reindexed) [][]int {
	adj := make([][]int, ridx.N())
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		adj[i] = append(adj[i], j)
		if !g.IsDirected() && i != j {
			adj[j] = append(adj[j], i)
		}
	}
	return adj
}

func betweennessScale[A any, W graph.Weight](g *graph.Graph[A, W], n int) float64 {
	if n <= 2 {
		return 1
	}
	if g.IsDirected() {
		return 1 / (float64(n-1) * float64(n-2))
	}
	return 2 / (float64(n-1) * float64(n-2))
}

// Betweenness computes Brandes node betweenness over hop-count shortest
// paths: one BFS per source, then a reverse-stack accumulation of the
// pair-dependency delta. Undirected graphs double-count each pair (s, t)
// and (t, s); the scores are halved to fold that factor back out, with or
// without normalization.
func Betweenness[A any, W graph.Weight](g *graph.Graph[A, W], opts ...BetweennessOption) (Scores, error) {
	if err := requireNonEmpty(g, "betweenness_centrality"); err != nil {
		return nil, err
	}
	o := BetweennessOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	ridx := graph.Reindex(g)
	n := ridx.N()
	adj := hopAdjacency(g, ridx)
	central := make([]float64, n)
	st := newBrandesState(n)

	for s := 0; s < n; s++ {
		st.forward(adj, s)

		for i := range st.delta {
			st.delta[i] = 0
		}
		for i := len(st.stack) - 1; i >= 0; i-- {
			w := st.stack[i]
			for _, v := range st.preds[w] {
				st.delta[v] += st.sigma[v] / st.sigma[w] * (1 + st.delta[w])
			}
			if w != s {
				central[w] += st.delta[w]
			}
		}
	}

	if !g.IsDirected() {
		// Each unordered pair was counted from both endpoints.
		for i := range central {
			central[i] /= 2
		}
	}
	if o.Normalize {
		scale := betweennessScale(g, n)
		for i := range central {
			central[i] *= scale
		}
	}
	return scoresFromVec(ridx, central), nil
}

// EdgeBetweenness runs the same Brandes skeleton but accumulates each
// pair-dependency onto the edge (v, w) it traverses. Undirected graphs carry
// both orientations in the result map with equal values.
func EdgeBetweenness[A any, W graph.Weight](g *graph.Graph[A, W], opts ...BetweennessOption) (map[EdgeKey]float64, error) {
	if err := requireNonEmpty(g, "edge_betweenness_centrality"); err != nil {
		return nil, err
	}
	o := BetweennessOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	ridx := graph.Reindex(g)
	n := ridx.N()
	adj := hopAdjacency(g, ridx)
	edgeScore := make(map[[2]int]float64)
	// Mirror initialization for undirected graphs: both orientations exist
	// from the start so the accumulation below can write either.
	for u := 0; u < n; u++ {
		for _, v := range adj[u] {
			edgeScore[[2]int{u, v}] = 0
		}
	}

	st := newBrandesState(n)
	for s := 0; s < n; s++ {
		st.forward(adj, s)

		for i := range st.delta {
			st.delta[i] = 0
		}
		for i := len(st.stack) - 1; i >= 0; i-- {
			w := st.stack[i]
			for _, v := range st.preds[w] {
				c := st.sigma[v] / st.sigma[w] * (1 + st.delta[w])
				edgeScore[[2]int{v, w}] += c
				st.delta[v] += c
			}
		}
	}

	scale := 1.0
	if !g.IsDirected() {
		scale = 0.5
	}
	if o.Normalize {
		scale *= betweennessScale(g, n)
	}

	out := make(map[EdgeKey]float64, len(edgeScore))
	for key, val := range edgeScore {
		u, v := ridx.ToID[key[0]], ridx.ToID[key[1]]
		if g.IsDirected() {
			out[EdgeKey{U: u, V: v}] = val * scale
			continue
		}
		// Undirected accumulations land on whichever orientation the BFS
		// traversed; fold them together and publish both.
		total := (val + edgeScore[[2]int{key[1], key[0]}]) * scale
		out[EdgeKey{U: u, V: v}] = total
	}
	return out, nil
}
