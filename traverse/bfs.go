package traverse

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// Result holds a BFS/DFS run's visit order, per-node depth, and parent
// links; both kernels produce the same shape of answer, so they share it.
type Result struct {
	Order  []graph.NodeId
	Depth  graph.NodeMap[int]
	Parent graph.NodeMap[graph.NodeId]
}

type queueItem struct {
	id     graph.NodeId
	depth  int
	parent graph.NodeId
	hasPar bool
}

// BFS explores g from start in increasing-distance order, honoring opts'
// depth limit, neighbor filter, and visit hook. A start node that is not in
// g yields an empty Result rather than an error.
func BFS[A any, W graph.Weight](g *graph.Graph[A, W], start graph.NodeId, opts ...Option) (*Result, error) {
	if !g.ContainsNode(start) {
		return &Result{Depth: graph.NodeMap[int]{}, Parent: graph.NodeMap[graph.NodeId]{}}, nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ridx := graph.Reindex(g)

	res := &Result{
		Order:  make([]graph.NodeId, 0, ridx.N()),
		Depth:  make(graph.NodeMap[int], ridx.N()),
		Parent: make(graph.NodeMap[graph.NodeId], ridx.N()),
	}
	visited := make(map[graph.NodeId]bool, ridx.N())
	queue := []queueItem{{id: start, depth: 0}}
	visited[start] = true
	res.Depth[start] = 0

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		if item.hasPar {
			res.Parent[item.id] = item.parent
		}
		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(int(ridx.ToIndex[item.id]), item.depth); err != nil {
			return res, kerr.Wrap(kerr.AlgorithmError, err, "bfs: OnVisit at %s", item.id)
		}

		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}
		for _, v := range g.Neighbors(item.id) {
			if !o.FilterNeighbor(ridx.ToIndex[item.id], ridx.ToIndex[v]) {
				continue
			}
			if visited[v] {
				continue
			}
			visited[v] = true
			res.Depth[v] = item.depth + 1
			queue = append(queue, queueItem{id: v, depth: item.depth + 1, parent: item.id, hasPar: true})
		}
	}
	return res, nil
}

// PathTo reconstructs the path from start to target out of a Result's
// Parent map, returning ok=false if target was never visited.
func (r *Result) PathTo(start, target graph.NodeId) ([]graph.NodeId, bool) {
	if _, ok := r.Depth[target]; !ok {
		return nil, false
	}
	if target == start {
		return []graph.NodeId{start}, true
	}
	var rev []graph.NodeId
	cur := target
	for cur != start {
		rev = append(rev, cur)
		p, ok := r.Parent[cur]
		if !ok {
			return nil, false
		}
		cur = p
	}
	rev = append(rev, start)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, true
}
