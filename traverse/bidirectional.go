package traverse

import (
	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/kerr"
)

// BidirectionalBFS alternately expands frontiers from start and target,
// stopping as soon as the two meet, and returns the shortest path between
// them (by edge count). It reuses BFS's single-hop expansion idiom rather
// than a dedicated walker, since the frontier bookkeeping here is simpler
// than full-traversal BFS's depth/parent maps.
func BidirectionalBFS[A any, W graph.Weight](g *graph.Graph[A, W], start, target graph.NodeId) ([]graph.NodeId, bool) {
	if !g.ContainsNode(start) || !g.ContainsNode(target) {
		return nil, false
	}
	if start == target {
		return []graph.NodeId{start}, true
	}

	parentFwd := graph.NodeMap[graph.NodeId]{start: start}
	parentBwd := graph.NodeMap[graph.NodeId]{target: target}
	frontFwd := []graph.NodeId{start}
	frontBwd := []graph.NodeId{target}

	meet, found := graph.NodeId{}, false

	for len(frontFwd) > 0 && len(frontBwd) > 0 && !found {
		var next []graph.NodeId
		for _, u := range frontFwd {
			for _, v := range g.Neighbors(u) {
				if _, ok := parentFwd[v]; ok {
					continue
				}
				parentFwd[v] = u
				next = append(next, v)
				if _, ok := parentBwd[v]; ok {
					meet, found = v, true
					break
				}
			}
			if found {
				break
			}
		}
		frontFwd = next
		if found {
			break
		}

		var nextB []graph.NodeId
		for _, u := range frontBwd {
			// The backward frontier walks edges in reverse: on a directed
			// graph that means predecessors, not successors.
			for _, v := range g.IncomingNeighbors(u) {
				if _, ok := parentBwd[v]; ok {
					continue
				}
				parentBwd[v] = u
				nextB = append(nextB, v)
				if _, ok := parentFwd[v]; ok {
					meet, found = v, true
					break
				}
			}
			if found {
				break
			}
		}
		frontBwd = nextB
	}

	if !found {
		return nil, false
	}

	var fwdHalf []graph.NodeId
	for cur := meet; cur != start; cur = parentFwd[cur] {
		fwdHalf = append(fwdHalf, cur)
	}
	fwdHalf = append(fwdHalf, start)
	for i, j := 0, len(fwdHalf)-1; i < j; i, j = i+1, j-1 {
		fwdHalf[i], fwdHalf[j] = fwdHalf[j], fwdHalf[i]
	}

	path := fwdHalf
	for cur := parentBwd[meet]; cur != target; cur = parentBwd[cur] {
		path = append(path, cur)
	}
	if meet != target {
		path = append(path, target)
	}
	return path, true
}

// TryBidirectionalBFS is BidirectionalBFS's checked variant, surfacing NoPath
// when the two frontiers exhaust without meeting.
func TryBidirectionalBFS[A any, W graph.Weight](g *graph.Graph[A, W], start, target graph.NodeId) ([]graph.NodeId, error) {
	path, ok := BidirectionalBFS(g, start, target)
	if !ok {
		return nil, kerr.New(kerr.NoPath, "bidirectional_bfs: %s -> %s", start, target)
	}
	return path, nil
}
