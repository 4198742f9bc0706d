package linkpred

import (
	"math"

	"github.com/kestrelgraph/kestrel/graph"
)

// Pair is an unordered node pair under prediction.
type Pair struct {
	U, V graph.NodeId
}

// Score is one prediction: a pair and its heuristic value.
type Score struct {
	Pair  Pair
	Value float64
}

// predictor scores one pair given the shared neighbor-set snapshot.
type predictor func(s *snapshot, u, v graph.NodeId) float64

// snapshot caches each live node's neighbor set and degree once per
// prediction call.
type snapshot struct {
	ids    []graph.NodeId
	nbrs   map[graph.NodeId]map[graph.NodeId]bool
	degree map[graph.NodeId]int
}

func snap[A any, W graph.Weight](g *graph.Graph[A, W]) *snapshot {
	s := &snapshot{
		ids:    g.NodeIds(),
		nbrs:   make(map[graph.NodeId]map[graph.NodeId]bool),
		degree: make(map[graph.NodeId]int),
	}
	for _, id := range s.ids {
		set := make(map[graph.NodeId]bool)
		for _, v := range g.Neighbors(id) {
			set[v] = true
		}
		s.nbrs[id] = set
		d, _ := g.Degree(id)
		s.degree[id] = d
	}
	return s
}

// commonNeighbors yields the intersection of u's and v's neighbor sets.
func (s *snapshot) commonNeighbors(u, v graph.NodeId) []graph.NodeId {
	a, b := s.nbrs[u], s.nbrs[v]
	if len(b) < len(a) {
		a, b = b, a
	}
	var out []graph.NodeId
	for w := range a {
		if b[w] {
			out = append(out, w)
		}
	}
	return out
}

// run scores the candidate pairs (or all unordered pairs when candidates is
// nil) with fn.
func run[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair, fn predictor) []Score {
	s := snap(g)
	if candidates == nil {
		for i := 0; i < len(s.ids); i++ {
			for j := i + 1; j < len(s.ids); j++ {
				candidates = append(candidates, Pair{U: s.ids[i], V: s.ids[j]})
			}
		}
	}
	out := make([]Score, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, Score{Pair: p, Value: fn(s, p.U, p.V)})
	}
	return out
}

// Jaccard scores |N(u) ∩ N(v)| / |N(u) ∪ N(v)|.
func Jaccard[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		inter := len(s.commonNeighbors(u, v))
		union := len(s.nbrs[u]) + len(s.nbrs[v]) - inter
		if union == 0 {
			return 0
		}
		return float64(inter) / float64(union)
	})
}

// ResourceAllocation scores Σ_{w ∈ N(u) ∩ N(v)} 1/deg(w).
func ResourceAllocation[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		var sum float64
		for _, w := range s.commonNeighbors(u, v) {
			if d := s.degree[w]; d > 0 {
				sum += 1 / float64(d)
			}
		}
		return sum
	})
}

// AdamicAdar scores Σ_{w ∈ N(u) ∩ N(v), deg(w) > 1} 1/ln(deg(w)).
func AdamicAdar[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		var sum float64
		for _, w := range s.commonNeighbors(u, v) {
			if d := s.degree[w]; d > 1 {
				sum += 1 / math.Log(float64(d))
			}
		}
		return sum
	})
}

// PreferentialAttachment scores deg(u) * deg(v).
func PreferentialAttachment[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		return float64(s.degree[u]) * float64(s.degree[v])
	})
}

// CommonNeighborCentrality scores |N(u) ∩ N(v)|^alpha.
func CommonNeighborCentrality[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair, alpha float64) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		inter := len(s.commonNeighbors(u, v))
		if inter == 0 {
			return 0
		}
		return math.Pow(float64(inter), alpha)
	})
}

// Community assigns each node a community label for the community-aware
// predictors below.
type Community = graph.NodeMap[int]

// SoundarajanHopcroftCN counts only the common neighbors sharing both
// endpoints' community: Σ_{w ∈ CN, comm(w) == comm(u) == comm(v)} 1.
// Endpoints in different communities therefore score 0.
func SoundarajanHopcroftCN[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair, comm Community) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		var score float64
		for _, w := range s.commonNeighbors(u, v) {
			if comm[w] == comm[u] && comm[w] == comm[v] {
				score++
			}
		}
		return score
	})
}

// SoundarajanHopcroftRA is the resource-allocation variant: only common
// neighbors in the same community as both endpoints contribute 1/deg(w);
// endpoints in different communities score 0.
func SoundarajanHopcroftRA[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair, comm Community) []Score {
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		if comm[u] != comm[v] {
			return 0
		}
		var sum float64
		for _, w := range s.commonNeighbors(u, v) {
			if comm[w] == comm[u] {
				if d := s.degree[w]; d > 0 {
					sum += 1 / float64(d)
				}
			}
		}
		return sum
	})
}

// WithinInterCluster scores (within + delta) / (inter + delta), where
// within counts common neighbors sharing the endpoints' community and inter
// counts the rest. delta > 0 keeps the ratio finite.
func WithinInterCluster[A any, W graph.Weight](g *graph.Graph[A, W], candidates []Pair, comm Community, delta float64) []Score {
	if delta <= 0 {
		delta = 0.001
	}
	return run(g, candidates, func(s *snapshot, u, v graph.NodeId) float64 {
		if comm[u] != comm[v] {
			return 0
		}
		var within, inter float64
		for _, w := range s.commonNeighbors(u, v) {
			if comm[w] == comm[u] {
				within++
			} else {
				inter++
			}
		}
		return (within + delta) / (inter + delta)
	})
}
