package community

import (
	"math/rand"
	"sort"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/rng"
	"github.com/kestrelgraph/kestrel/kerr"
)

// louvainEps is the minimum modularity gain that counts as an improvement;
// moves within eps of the removal gain are rejected to keep the sweep from
// oscillating on floating-point noise.
const louvainEps = 1e-10

// louvainMaxSweeps caps the local-move sweeps within one level and the
// number of aggregation levels, so a pathological instance terminates.
const louvainMaxSweeps = 100

// levelGraph is the compact weighted multigraph one Louvain level operates
// on: adjacency lists over 0..n-1 with summed parallel weights, plus
// per-node self-loop weight (intra-community mass folded in by aggregation).
type levelGraph struct {
	n        int
	adj      [][]levelArc
	selfLoop []float64
	m2       float64 // total degree = 2 * total edge weight
	degree   []float64
}

type levelArc struct {
	to int
	w  float64
}

// Louvain runs modularity-maximizing community detection: repeated local-
// move sweeps (each node greedily joins the neighbor community with the best
// modularity gain) followed by aggregation of communities into super-nodes,
// until a level yields no improvement. Requires an undirected graph with
// non-negative weights. Node visit order is shuffled with the seeded stream,
// so the same seed and graph always produce the same partition.
func Louvain[A any, W graph.Weight](g *graph.Graph[A, W], seed int64) ([][]graph.NodeId, error) {
	if g.IsDirected() {
		return nil, kerr.New(kerr.InvalidGraph, "louvain: requires an undirected graph")
	}
	for _, e := range g.Edges() {
		if float64(e.Weight) < 0 {
			return nil, kerr.New(kerr.InvalidGraph, "louvain: negative edge weight on %s->%s", e.Src, e.Tgt)
		}
	}

	ridx := graph.Reindex(g)
	n := ridx.N()
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return [][]graph.NodeId{{ridx.ToID[0]}}, nil
	}

	lvl := &levelGraph{n: n, adj: make([][]levelArc, n), selfLoop: make([]float64, n)}
	for _, e := range g.Edges() {
		i, j := ridx.ToIndex[e.Src], ridx.ToIndex[e.Tgt]
		w := float64(e.Weight)
		if i == j {
			lvl.selfLoop[i] += w
			continue
		}
		lvl.adj[i] = append(lvl.adj[i], levelArc{to: j, w: w})
		lvl.adj[j] = append(lvl.adj[j], levelArc{to: i, w: w})
	}
	lvl.computeDegrees()

	if lvl.m2 == 0 {
		// Zero-edge graph: one singleton community per node.
		out := make([][]graph.NodeId, n)
		for i, id := range ridx.ToID {
			out[i] = []graph.NodeId{id}
		}
		return out, nil
	}

	// members[i] lists the original compact indices folded into level-node i.
	members := make([][]int, n)
	for i := range members {
		members[i] = []int{i}
	}
	r := rng.FromSeed(seed)

	for level := 0; level < louvainMaxSweeps; level++ {
		comm, improved := lvl.localMove(r)
		if !improved {
			break
		}
		lvl, members = aggregate(lvl, comm, members)
	}

	out := make([][]graph.NodeId, len(members))
	for i, group := range members {
		ids := make([]graph.NodeId, len(group))
		for k, orig := range group {
			ids[k] = ridx.ToID[orig]
		}
		out[i] = ids
	}
	return out, nil
}

func (l *levelGraph) computeDegrees() {
	l.degree = make([]float64, l.n)
	l.m2 = 0
	for i := 0; i < l.n; i++ {
		d := 2 * l.selfLoop[i]
		for _, a := range l.adj[i] {
			d += a.w
		}
		l.degree[i] = d
		l.m2 += d
	}
}

// localMove is Louvain phase 1: sweep nodes in shuffled order, moving each
// to the neighbor community with the highest modularity gain, until a sweep
// makes no move. The per-community degree sum is cached and updated
// incrementally on every accepted move.
func (l *levelGraph) localMove(r *rand.Rand) ([]int, bool) {
	comm := make([]int, l.n)
	commTotal := make([]float64, l.n) // cached Σ degree per community
	for i := range comm {
		comm[i] = i
		commTotal[i] = l.degree[i]
	}

	order := make([]int, l.n)
	for i := range order {
		order[i] = i
	}

	anyMove := false
	for sweep := 0; sweep < louvainMaxSweeps; sweep++ {
		rng.ShuffleInts(order, r)
		moved := false

		for _, u := range order {
			old := comm[u]

			// Edge mass from u into each adjacent community.
			linkTo := map[int]float64{old: 0}
			for _, a := range l.adj[u] {
				linkTo[comm[a.to]] += a.w
			}

			// Detach u so its own degree does not bias the gain terms.
			commTotal[old] -= l.degree[u]

			gain := func(c int) float64 {
				return linkTo[c] - commTotal[c]*l.degree[u]/l.m2
			}
			stayGain := gain(old)

			// Candidates in sorted order: map iteration would make equal-
			// gain tie-breaks depend on hash order and break seed
			// determinism.
			candidates := make([]int, 0, len(linkTo))
			for c := range linkTo {
				if c != old {
					candidates = append(candidates, c)
				}
			}
			sort.Ints(candidates)

			best, bestGain := old, stayGain
			for _, c := range candidates {
				if g := gain(c); g > bestGain+louvainEps {
					best, bestGain = c, g
				}
			}

			commTotal[best] += l.degree[u]
			if best != old {
				comm[u] = best
				moved = true
				anyMove = true
			}
		}
		if !moved {
			break
		}
	}
	return comm, anyMove
}

// aggregate is Louvain phase 2: contract each community into one super-node,
// summing inter-community edge weights and folding intra-community mass into
// self-loops, and merge the membership lists accordingly.
func aggregate(l *levelGraph, comm []int, members [][]int) (*levelGraph, [][]int) {
	// Renumber surviving communities densely.
	renum := make(map[int]int)
	for _, c := range comm {
		if _, ok := renum[c]; !ok {
			renum[c] = len(renum)
		}
	}
	nn := len(renum)

	next := &levelGraph{n: nn, adj: make([][]levelArc, nn), selfLoop: make([]float64, nn)}
	newMembers := make([][]int, nn)
	for u := 0; u < l.n; u++ {
		cu := renum[comm[u]]
		newMembers[cu] = append(newMembers[cu], members[u]...)
		next.selfLoop[cu] += l.selfLoop[u]
	}

	cross := make(map[[2]int]float64)
	for u := 0; u < l.n; u++ {
		cu := renum[comm[u]]
		for _, a := range l.adj[u] {
			cv := renum[comm[a.to]]
			if cu == cv {
				// Each intra-community edge appears from both endpoints;
				// half each time keeps the self-loop mass exact.
				next.selfLoop[cu] += a.w / 2
				continue
			}
			if cu < cv {
				cross[[2]int{cu, cv}] += a.w
			}
		}
	}
	// Sorted key order keeps adjacency (and thus float accumulation order
	// in later sweeps) deterministic.
	keys := make([][2]int, 0, len(cross))
	for key := range cross {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	for _, key := range keys {
		w := cross[key]
		next.adj[key[0]] = append(next.adj[key[0]], levelArc{to: key[1], w: w})
		next.adj[key[1]] = append(next.adj[key[1]], levelArc{to: key[0], w: w})
	}
	next.computeDegrees()
	return next, newMembers
}
