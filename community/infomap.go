package community

import (
	"sort"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/rng"
)

// Infomap is the simplified flow-greedy variant: each node starts in its own
// module, and sweeps (in seeded-shuffle order) move every node to whichever
// neighbor module captures the most incident edge-weight mass, until a sweep
// moves nothing. It approximates the map-equation objective by its dominant
// term — flow trapped inside modules — without the codebook-length
// bookkeeping of the full algorithm.
func Infomap[A any, W graph.Weight](g *graph.Graph[A, W], maxIter int, seed int64) [][]graph.NodeId {
	ridx := graph.Reindex(g)
	n := ridx.N()
	if n == 0 {
		return nil
	}
	if maxIter <= 0 {
		maxIter = 100
	}
	r := rng.FromSeed(seed)

	type warc struct {
		to int
		w  float64
	}
	adj := make([][]warc, n)
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		w := float64(e.Weight)
		adj[i] = append(adj[i], warc{to: j, w: w})
		if i != j {
			adj[j] = append(adj[j], warc{to: i, w: w})
		}
	}

	module := make([]int, n)
	for i := range module {
		module[i] = i
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for iter := 0; iter < maxIter; iter++ {
		rng.ShuffleInts(order, r)
		moved := false
		for _, u := range order {
			if len(adj[u]) == 0 {
				continue
			}
			mass := make(map[int]float64, len(adj[u]))
			for _, a := range adj[u] {
				mass[module[a.to]] += a.w
			}
			// Sorted module ids keep equal-mass tie-breaks deterministic.
			mods := make([]int, 0, len(mass))
			for m := range mass {
				mods = append(mods, m)
			}
			sort.Ints(mods)

			best, bestMass := module[u], mass[module[u]]
			for _, m := range mods {
				if mass[m] > bestMass {
					best, bestMass = m, mass[m]
				}
			}
			if best != module[u] {
				module[u] = best
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	groups := make(map[int][]graph.NodeId)
	for i, m := range module {
		groups[m] = append(groups[m], ridx.ToID[i])
	}
	mods := make([]int, 0, len(groups))
	for m := range groups {
		mods = append(mods, m)
	}
	sort.Ints(mods)
	out := make([][]graph.NodeId, 0, len(mods))
	for _, m := range mods {
		out = append(out, groups[m])
	}
	return out
}
