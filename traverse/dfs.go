package traverse

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// dfsWalker carries mutable state through a recursive DFS.
type dfsWalker[A any, W graph.Weight] struct {
	g    *graph.Graph[A, W]
	o    Options
	ridx graph.Reindexed
	res  *Result
	seen map[graph.NodeId]bool
}

// DFS performs depth-first search from start. A start node that is not in g
// yields an empty Result rather than an error.
func DFS[A any, W graph.Weight](g *graph.Graph[A, W], start graph.NodeId, opts ...Option) (*Result, error) {
	if !g.ContainsNode(start) {
		return &Result{Depth: graph.NodeMap[int]{}, Parent: graph.NodeMap[graph.NodeId]{}}, nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ridx := graph.Reindex(g)
	w := &dfsWalker[A, W]{
		g:    g,
		o:    o,
		ridx: ridx,
		res: &Result{
			Order:  make([]graph.NodeId, 0, ridx.N()),
			Depth:  make(graph.NodeMap[int], ridx.N()),
			Parent: make(graph.NodeMap[graph.NodeId], ridx.N()),
		},
		seen: make(map[graph.NodeId]bool, ridx.N()),
	}
	if err := w.visit(start, 0, graph.NodeId{}, false); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// FullDFS visits start's component first, then every remaining component in
// g.NodeIds() order, so every node is covered regardless of connectivity.
func FullDFS[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) (*Result, error) {
	ids := g.NodeIds()
	if len(ids) == 0 {
		return &Result{Depth: graph.NodeMap[int]{}, Parent: graph.NodeMap[graph.NodeId]{}}, nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ridx := graph.Reindex(g)
	w := &dfsWalker[A, W]{
		g:    g,
		o:    o,
		ridx: ridx,
		res: &Result{
			Order:  make([]graph.NodeId, 0, ridx.N()),
			Depth:  make(graph.NodeMap[int], ridx.N()),
			Parent: make(graph.NodeMap[graph.NodeId], ridx.N()),
		},
		seen: make(map[graph.NodeId]bool, ridx.N()),
	}
	for _, id := range ids {
		if w.seen[id] {
			continue
		}
		if err := w.visit(id, 0, graph.NodeId{}, false); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

func (w *dfsWalker[A, W]) visit(id graph.NodeId, depth int, parent graph.NodeId, hasPar bool) error {
	select {
	case <-w.o.Ctx.Done():
		return w.o.Ctx.Err()
	default:
	}
	if w.o.MaxDepth > 0 && depth > w.o.MaxDepth {
		return nil
	}

	w.seen[id] = true
	w.res.Depth[id] = depth
	if hasPar {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	if err := w.o.OnVisit(w.ridx.ToIndex[id], depth); err != nil {
		return kerr.Wrap(kerr.AlgorithmError, err, "dfs: OnVisit at %s", id)
	}

	for _, v := range w.g.Neighbors(id) {
		if !w.o.FilterNeighbor(w.ridx.ToIndex[id], w.ridx.ToIndex[v]) {
			continue
		}
		if w.seen[v] {
			continue
		}
		if err := w.visit(v, depth+1, id, true); err != nil {
			return err
		}
	}
	return nil
}

// IDDFS runs iterative-deepening DFS: DFS bounded to depth 0, then 1, 2, ...
// up to maxDepth, stopping as soon as target is found. Returns the depth-
// bounded Result from the iteration that discovered target, or the final
// iteration's Result with ok=false if target is unreachable within maxDepth.
func IDDFS[A any, W graph.Weight](g *graph.Graph[A, W], start, target graph.NodeId, maxDepth int) (*Result, bool, error) {
	if !g.ContainsNode(start) {
		return &Result{Depth: graph.NodeMap[int]{}, Parent: graph.NodeMap[graph.NodeId]{}}, false, nil
	}
	var last *Result
	for depth := 0; depth <= maxDepth; depth++ {
		if depth == 0 {
			// WithMaxDepth(0) means unlimited, so the depth-0 pass is the
			// start node alone.
			last = &Result{Order: []graph.NodeId{start}, Depth: graph.NodeMap[int]{start: 0}, Parent: graph.NodeMap[graph.NodeId]{}}
			if start == target {
				return last, true, nil
			}
			continue
		}
		res, err := DFS(g, start, WithMaxDepth(depth))
		if err != nil {
			return res, false, err
		}
		last = res
		if _, ok := res.Depth[target]; ok {
			return res, true, nil
		}
	}
	return last, false, nil
}

// TryIDDFS runs IDDFS and returns the discovered start..target path,
// surfacing NoPath when the deepening loop exhausts maxDepth without
// reaching target.
func TryIDDFS[A any, W graph.Weight](g *graph.Graph[A, W], start, target graph.NodeId, maxDepth int) ([]graph.NodeId, error) {
	res, found, err := IDDFS(g, start, target, maxDepth)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, kerr.New(kerr.NoPath, "iddfs: %s -> %s within depth %d", start, target, maxDepth)
	}
	p, ok := res.PathTo(start, target)
	if !ok {
		return nil, kerr.New(kerr.NoPath, "iddfs: %s -> %s within depth %d", start, target, maxDepth)
	}
	return p, nil
}
