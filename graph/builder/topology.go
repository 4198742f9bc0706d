package builder

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/rng"
)

// Complete returns K_n: n nodes and n(n-1)/2 undirected edges, each
// carrying attr/w.
func Complete[A any, W graph.Weight](n int, attr A, w W) (*graph.Graph[A, W], error) {
	if n < 1 {
		return nil, errTooFewNodes("Complete", n, 1)
	}
	b := New[A, W](graph.Undirected).CapacityNodes(n).CapacityEdges(n * (n - 1) / 2)
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddEdge(i, j, w)
		}
	}
	return b.Build()
}

// Cycle returns n nodes connected by n edges forming a single cycle.
func Cycle[A any, W graph.Weight](n int, attr A, w W) (*graph.Graph[A, W], error) {
	if n < 3 {
		return nil, errTooFewNodes("Cycle", n, 3)
	}
	b := New[A, W](graph.Undirected).CapacityNodes(n).CapacityEdges(n)
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	for i := 0; i < n; i++ {
		b.AddEdge(i, (i+1)%n, w)
	}
	return b.Build()
}

// Path returns n-1 edges in a straight line. n=0 yields an empty graph.
func Path[A any, W graph.Weight](n int, attr A, w W) (*graph.Graph[A, W], error) {
	if n < 0 {
		return nil, errTooFewNodes("Path", n, 0)
	}
	b := New[A, W](graph.Undirected).CapacityNodes(n)
	if n == 0 {
		return b.Build()
	}
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	for i := 0; i < n-1; i++ {
		b.AddEdge(i, i+1, w)
	}
	return b.Build()
}

// Star returns one hub connected to n-1 leaves (hub is node index 0).
func Star[A any, W graph.Weight](n int, attr A, w W) (*graph.Graph[A, W], error) {
	if n < 1 {
		return nil, errTooFewNodes("Star", n, 1)
	}
	b := New[A, W](graph.Undirected).CapacityNodes(n).CapacityEdges(n - 1)
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	for i := 1; i < n; i++ {
		b.AddEdge(0, i, w)
	}
	return b.Build()
}

// Grid returns a rows x cols 4-neighborhood lattice. Node index for (r, c)
// is r*cols + c.
func Grid[A any, W graph.Weight](rows, cols int, attr A, w W) (*graph.Graph[A, W], error) {
	if rows < 1 || cols < 1 {
		return nil, errTooFewNodes("Grid", rows*cols, 1)
	}
	n := rows * cols
	b := New[A, W](graph.Undirected).CapacityNodes(n)
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.AddEdge(idx(r, c), idx(r, c+1), w)
			}
			if r+1 < rows {
				b.AddEdge(idx(r, c), idx(r+1, c), w)
			}
		}
	}
	return b.Build()
}

// Wheel returns a hub (index 0) connected to every rim node, plus the rim
// nodes (indices 1..n-1) connected in a cycle.
func Wheel[A any, W graph.Weight](n int, attr A, w W) (*graph.Graph[A, W], error) {
	if n < 4 {
		return nil, errTooFewNodes("Wheel", n, 4)
	}
	b := New[A, W](graph.Undirected).CapacityNodes(n)
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	rim := n - 1
	for i := 1; i < n; i++ {
		b.AddEdge(0, i, w)
	}
	for i := 0; i < rim; i++ {
		b.AddEdge(1+i, 1+(i+1)%rim, w)
	}
	return b.Build()
}

// Bipartite returns K_{m,n}: every left-side node (indices 0..m-1) connected
// to every right-side node (indices m..m+n-1).
func Bipartite[A any, W graph.Weight](m, n int, attr A, w W) (*graph.Graph[A, W], error) {
	if m < 1 || n < 1 {
		return nil, errTooFewNodes("Bipartite", m+n, 2)
	}
	b := New[A, W](graph.Undirected).CapacityNodes(m + n).CapacityEdges(m * n)
	for i := 0; i < m+n; i++ {
		b.AddNode(attr)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			b.AddEdge(i, m+j, w)
		}
	}
	return b.Build()
}

// RandomSparse returns a G(n, p) Erdos-Renyi graph: every unordered pair is
// connected independently with probability p. Deterministic given seed
// (seed==0 uses the package's default deterministic stream).
func RandomSparse[A any, W graph.Weight](n int, p float64, seed int64, attr A, w W) (*graph.Graph[A, W], error) {
	if n < 1 {
		return nil, errTooFewNodes("RandomSparse", n, 1)
	}
	if p < 0 || p > 1 {
		return nil, errBadProbability("RandomSparse", p)
	}
	r := rng.FromSeed(seed)
	b := New[A, W](graph.Undirected).CapacityNodes(n)
	for i := 0; i < n; i++ {
		b.AddNode(attr)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				b.AddEdge(i, j, w)
			}
		}
	}
	return b.Build()
}

// RandomRegular returns a uniformly random d-regular graph on n nodes via
// repeated stub-matching (retrying on a configuration that cannot be
// completed simply), deterministic given seed. Fails with AlgorithmError if
// no valid configuration is found within the retry budget.
func RandomRegular[A any, W graph.Weight](n, d int, seed int64, attr A, w W) (*graph.Graph[A, W], error) {
	if n < d+1 || (n*d)%2 != 0 {
		return nil, errTooFewNodes("RandomRegular", n, d+1)
	}
	r := rng.FromSeed(seed)
	const maxAttempts = 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		stubs := make([]int, 0, n*d)
		for v := 0; v < n; v++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, v)
			}
		}
		r.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		type pair struct{ u, v int }
		seen := make(map[[2]int]bool)
		edges := make([]pair, 0, n*d/2)
		ok := true
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				ok = false
				break
			}
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if seen[key] {
				ok = false
				break
			}
			seen[key] = true
			edges = append(edges, pair{u, v})
		}
		if !ok {
			continue
		}

		b := New[A, W](graph.Undirected).CapacityNodes(n).CapacityEdges(len(edges))
		for i := 0; i < n; i++ {
			b.AddNode(attr)
		}
		for _, e := range edges {
			b.AddEdge(e.u, e.v, w)
		}
		return b.Build()
	}
	return nil, errConstructFailed("RandomRegular", maxAttempts)
}
