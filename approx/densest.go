package approx

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/internal/pqueue"
)

// DensestSubgraph peels the minimum-degree node off repeatedly, tracking the
// best edge-to-node density m/|S| seen along the way, and returns the node
// set achieving it. This is Charikar's greedy 2-approximation.
func DensestSubgraph[A any, W graph.Weight](g *graph.Graph[A, W]) ([]graph.NodeId, float64) {
	c := newNeighborCache(g)
	n := c.n()
	if n == 0 {
		return nil, 0
	}

	deg := append([]int(nil), c.deg...)
	removed := make([]bool, n)
	edgesLeft := 0
	for _, d := range deg {
		edgesLeft += d
	}
	edgesLeft /= 2

	pq := pqueue.New[int](n)
	for i := 0; i < n; i++ {
		pq.Push(i, float64(deg[i]))
	}

	order := make([]int, 0, n) // peel order
	left := n
	bestDensity := float64(edgesLeft) / float64(left)
	bestCut := 0 // peel everything before this index to reach the best set

	for left > 1 {
		u, prio, ok := pq.Pop()
		if !ok {
			break
		}
		if removed[u] || int(prio) != deg[u] {
			continue // stale heap entry
		}
		removed[u] = true
		order = append(order, u)
		left--
		edgesLeft -= deg[u]
		for v := range c.sets[u] {
			if !removed[v] {
				deg[v]--
				pq.Push(v, float64(deg[v]))
			}
		}
		if d := float64(edgesLeft) / float64(left); d > bestDensity {
			bestDensity = d
			bestCut = len(order)
		}
	}

	peeled := make([]bool, n)
	for _, u := range order[:bestCut] {
		peeled[u] = true
	}
	var keep []int
	for i := 0; i < n; i++ {
		if !peeled[i] {
			keep = append(keep, i)
		}
	}
	return c.ids(keep), bestDensity
}
