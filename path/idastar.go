package path

import (
	"math"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// idaWalker owns the mutable state one IDA* run threads through its bounded
// DFS rounds: the current path (backtracked in place) and the on-path set
// that keeps the search from revisiting a node within the current branch.
type idaWalker[A any, W graph.Weight] struct {
	g      *graph.Graph[A, W]
	goal   graph.NodeId
	h      Heuristic[W]
	path   []graph.NodeId
	onPath map[graph.NodeId]bool
}

// IDAStar runs iterative-deepening A*: repeated depth-first search bounded
// by a cost threshold that grows to the smallest overshoot seen in the
// previous round, trading A*'s memory footprint for re-exploration. Returns
// the path and its cost, or ok=false if goal is unreachable.
func IDAStar[A any, W graph.Weight](g *graph.Graph[A, W], source, goal graph.NodeId, h Heuristic[W]) ([]graph.NodeId, W, bool, error) {
	var zero W
	if !g.ContainsNode(source) {
		return nil, zero, false, kerr.New(kerr.NodeNotFound, "idastar: source %s", source)
	}
	if !g.ContainsNode(goal) {
		return nil, zero, false, kerr.New(kerr.NodeNotFound, "idastar: goal %s", goal)
	}

	w := &idaWalker[A, W]{
		g:      g,
		goal:   goal,
		h:      h,
		path:   []graph.NodeId{source},
		onPath: map[graph.NodeId]bool{source: true},
	}
	bound := h(source)

	for {
		next, found := w.search(zero, bound)
		if found {
			cost := zero
			for i := 1; i < len(w.path); i++ {
				eid, ok := g.FindEdge(w.path[i-1], w.path[i])
				if !ok {
					continue
				}
				ew, _ := g.EdgeWeight(eid)
				cost += ew
			}
			return append([]graph.NodeId(nil), w.path...), cost, true, nil
		}
		if next == math.Inf(1) {
			return nil, zero, false, nil
		}
		bound = next
	}
}

// search performs one bounded DFS round from the path's current tip,
// returning the smallest f-cost that exceeded bound, for use as the next
// round's threshold. On success the walker's path holds source..goal.
func (w *idaWalker[A, W]) search(gCost W, bound float64) (float64, bool) {
	node := w.path[len(w.path)-1]
	f := float64(gCost) + w.h(node)
	if f > bound {
		return f, false
	}
	if node == w.goal {
		return f, true
	}

	min := math.Inf(1)
	for _, v := range w.g.Neighbors(node) {
		if w.onPath[v] {
			continue
		}
		eid, ok := w.g.FindEdge(node, v)
		if !ok {
			continue
		}
		ew, _ := w.g.EdgeWeight(eid)

		w.path = append(w.path, v)
		w.onPath[v] = true
		t, found := w.search(gCost+ew, bound)
		if found {
			return t, true
		}
		if t < min {
			min = t
		}
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, v)
	}
	return min, false
}
