package parallel

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelgraph/kestrel/centrality"
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// PageRank runs the same damped iteration as centrality.PageRank, with each
// pass partitioned over node blocks. Every worker reads a stable snapshot
// of the current rank vector and writes only its own block of the next
// vector; the swap to the next iteration happens under a write lock once
// all workers finish, so no partial update is ever observed.
func PageRank[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) (graph.NodeMap[float64], error) {
	if g.NodeCount() == 0 {
		return nil, kerr.New(kerr.InvalidGraph, "parallel pagerank: graph is empty")
	}
	o := resolve(opts)
	po := centrality.DefaultPageRankOptions()

	ridx := graph.Reindex(g)
	n := ridx.N()

	type parc struct {
		from int
		w    float64
	}
	in := make([][]parc, n)
	outWeight := make([]float64, n)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		w := float64(e.Weight)
		in[j] = append(in[j], parc{from: i, w: w})
		outWeight[i] += w
		if !g.IsDirected() && i != j {
			in[i] = append(in[i], parc{from: j, w: w})
			outWeight[j] += w
		}
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}
	next := make([]float64, n)
	d := po.Damping

	blocks := o.Workers
	if blocks > n {
		blocks = n
	}
	var mu sync.RWMutex

	for iter := 0; iter < po.MaxIter; iter++ {
		mu.RLock()
		var danglingMass float64
		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				danglingMass += rank[i]
			}
		}
		base := (1-d)/float64(n) + d*danglingMass/float64(n)
		mu.RUnlock()

		var eg errgroup.Group
		for b := 0; b < blocks; b++ {
			lo := b * n / blocks
			hi := (b + 1) * n / blocks
			eg.Go(func() error {
				// Pull-based accumulation: this worker owns next[lo:hi]
				// exclusively and reads the frozen rank snapshot.
				for v := lo; v < hi; v++ {
					acc := base
					for _, a := range in[v] {
						acc += d * rank[a.from] * a.w / outWeight[a.from]
					}
					next[v] = acc
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		var delta float64
		for i := 0; i < n; i++ {
			diff := next[i] - rank[i]
			if diff < 0 {
				diff = -diff
			}
			delta += diff
		}
		mu.Lock()
		rank, next = next, rank
		mu.Unlock()
		if delta < po.Tol {
			break
		}
	}

	out := make(graph.NodeMap[float64], n)
	for i, id := range ridx.ToID {
		out[id] = rank[i]
	}
	return out, nil
}
