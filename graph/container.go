package graph

import (
	"sync"

	"github.com/kestrelgraph/kestrel/kerr"
)

// nodeSlot is one arena slot for a node. attr is stored behind a pointer so
// that NodeAttrMut's returned *A stays valid across slice growth elsewhere
// in the arena (growing g.nodes copies nodeSlot values, but the pointer
// inside each copied value still targets the same heap object).
type nodeSlot[A any] struct {
	gen   uint32
	alive bool
	attr  *A
	out   []EdgeId // outgoing (directed) or all-incident (undirected), insertion order
	in    []EdgeId // incoming predecessors; unused in undirected mode
}

type edgeSlot[W Weight] struct {
	gen    uint32
	alive  bool
	src    NodeId
	tgt    NodeId
	weight *W
}

// Graph is the generic in-memory graph container: an arena of nodes carrying
// attribute A, an arena of edges carrying weight W, and a fixed directed/
// undirected discipline set at construction. A Graph owns every A and W
// value it stores; Clone deep-copies them.
//
// Locking is split per logical section: muNode guards the node arena and
// adjacency, muEdge guards the edge arena. Mutating methods that
// touch both (AddEdge, RemoveNode) take muNode first, then muEdge, to avoid
// lock-ordering inversions.
type Graph[A any, W Weight] struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	dir Direction

	nodes     []nodeSlot[A]
	edges     []edgeSlot[W]
	nodeCount int
	edgeCount int
}

// New constructs an empty graph with the given direction discipline.
func New[A any, W Weight](dir Direction) *Graph[A, W] {
	return &Graph[A, W]{dir: dir}
}

// NewDirected constructs an empty directed graph.
func NewDirected[A any, W Weight]() *Graph[A, W] { return New[A, W](Directed) }

// NewUndirected constructs an empty undirected graph.
func NewUndirected[A any, W Weight]() *Graph[A, W] { return New[A, W](Undirected) }

// WithCapacity constructs an empty graph with node/edge storage pre-reserved.
// Capacity is a hint; it never creates nodes or edges.
func WithCapacity[A any, W Weight](dir Direction, nodes, edges int) *Graph[A, W] {
	g := New[A, W](dir)
	if nodes > 0 {
		g.nodes = make([]nodeSlot[A], 0, nodes)
	}
	if edges > 0 {
		g.edges = make([]edgeSlot[W], 0, edges)
	}
	return g
}

// IsDirected reports the graph's fixed discipline.
func (g *Graph[A, W]) IsDirected() bool { return g.dir == Directed }

// NodeCount returns the number of live nodes.
func (g *Graph[A, W]) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.nodeCount
}

// EdgeCount returns the number of live edges.
func (g *Graph[A, W]) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.edgeCount
}

// AddNode appends a new node with the given attribute, returning its stable
// NodeId. O(1) amortized.
func (g *Graph[A, W]) AddNode(attr A) NodeId {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	slot := uint32(len(g.nodes))
	g.nodes = append(g.nodes, nodeSlot[A]{gen: 1, alive: true, attr: &attr})
	g.nodeCount++
	return NodeId{slot: slot, gen: 1}
}

func (g *Graph[A, W]) nodeSlotFor(id NodeId) (*nodeSlot[A], bool) {
	if id.IsZero() || int(id.slot) >= len(g.nodes) {
		return nil, false
	}
	s := &g.nodes[id.slot]
	if !s.alive || s.gen != id.gen {
		return nil, false
	}
	return s, true
}

// ContainsNode reports whether id refers to a live node.
func (g *Graph[A, W]) ContainsNode(id NodeId) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodeSlotFor(id)
	return ok
}

// NodeAttr returns the node's attribute, or (zero, false) if id is not live.
func (g *Graph[A, W]) NodeAttr(id NodeId) (A, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	s, ok := g.nodeSlotFor(id)
	if !ok {
		var zero A
		return zero, false
	}
	return *s.attr, true
}

// NodeAttrMut returns a pointer to the node's attribute for in-place
// mutation, or (nil, false) if id is not live.
func (g *Graph[A, W]) NodeAttrMut(id NodeId) (*A, bool) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	s, ok := g.nodeSlotFor(id)
	if !ok {
		return nil, false
	}
	return s.attr, true
}

// UpdateNode replaces id's attribute, reporting whether id was live.
func (g *Graph[A, W]) UpdateNode(id NodeId, attr A) bool {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	s, ok := g.nodeSlotFor(id)
	if !ok {
		return false
	}
	*s.attr = attr
	return true
}

// TryUpdateNode is UpdateNode's checked variant, surfacing NodeNotFound.
func (g *Graph[A, W]) TryUpdateNode(id NodeId, attr A) error {
	if !g.UpdateNode(id, attr) {
		return kerr.New(kerr.NodeNotFound, "update_node: %s", id)
	}
	return nil
}

// RemoveNode removes id and every edge incident to it, returning the former
// attribute. Removal is atomic: a partially-applied removal never happens.
func (g *Graph[A, W]) RemoveNode(id NodeId) (A, bool) {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	s, ok := g.nodeSlotFor(id)
	if !ok {
		var zero A
		return zero, false
	}
	attr := *s.attr

	// Collect every incident edge id (out and in may overlap for self-loops
	// in directed mode, but self-loops only ever appear once in each list).
	incident := make([]EdgeId, 0, len(s.out)+len(s.in))
	incident = append(incident, s.out...)
	incident = append(incident, s.in...)

	g.muEdge.Lock()
	seen := make(map[EdgeId]bool, len(incident))
	for _, eid := range incident {
		if seen[eid] {
			continue
		}
		seen[eid] = true
		g.removeEdgeLocked(eid)
	}
	g.muEdge.Unlock()

	s.alive = false
	s.attr = nil
	s.out = nil
	s.in = nil
	g.nodeCount--
	return attr, true
}

// TryRemoveNode is RemoveNode's checked variant.
func (g *Graph[A, W]) TryRemoveNode(id NodeId) (A, error) {
	attr, ok := g.RemoveNode(id)
	if !ok {
		return attr, kerr.New(kerr.NodeNotFound, "remove_node: %s", id)
	}
	return attr, nil
}

func (g *Graph[A, W]) edgeSlotFor(id EdgeId) (*edgeSlot[W], bool) {
	if id.IsZero() || int(id.slot) >= len(g.edges) {
		return nil, false
	}
	e := &g.edges[id.slot]
	if !e.alive || e.gen != id.gen {
		return nil, false
	}
	return e, true
}

// AddEdge appends a new edge u->v with weight w. Parallel edges are allowed;
// callers that want de-duplication should use AddEdgeIfAbsent. u and v must
// both already be live nodes, or AddEdge is a caller error (checked by
// ContainsNode beforehand in this module's own call sites).
func (g *Graph[A, W]) AddEdge(u, v NodeId, w W) EdgeId {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	slot := uint32(len(g.edges))
	g.edges = append(g.edges, edgeSlot[W]{gen: 1, alive: true, src: u, tgt: v, weight: &w})
	eid := EdgeId{slot: slot, gen: 1}
	g.edgeCount++

	us, _ := g.nodeSlotFor(u)
	vs, _ := g.nodeSlotFor(v)
	if g.dir == Directed {
		if us != nil {
			us.out = append(us.out, eid)
		}
		if vs != nil {
			vs.in = append(vs.in, eid)
		}
	} else {
		if us != nil {
			us.out = append(us.out, eid)
		}
		if u != v && vs != nil {
			vs.out = append(vs.out, eid)
		}
	}
	return eid
}

// AddEdgeIfAbsent inserts u->v only if no edge between them already exists
// (in either direction, when undirected). Returns the existing or new edge
// id and whether an insertion happened.
func (g *Graph[A, W]) AddEdgeIfAbsent(u, v NodeId, w W) (EdgeId, bool) {
	if eid, ok := g.FindEdge(u, v); ok {
		return eid, false
	}
	return g.AddEdge(u, v, w), true
}

func (g *Graph[A, W]) removeEdgeLocked(id EdgeId) (W, bool) {
	e, ok := g.edgeSlotFor(id)
	if !ok {
		var zero W
		return zero, false
	}
	w := *e.weight

	if us, ok := g.nodeSlotFor(e.src); ok {
		us.out = removeEdgeID(us.out, id)
	}
	if g.dir == Directed {
		if vs, ok := g.nodeSlotFor(e.tgt); ok {
			vs.in = removeEdgeID(vs.in, id)
		}
	} else if e.src != e.tgt {
		if vs, ok := g.nodeSlotFor(e.tgt); ok {
			vs.out = removeEdgeID(vs.out, id)
		}
	}

	e.alive = false
	e.weight = nil
	g.edgeCount--
	return w, true
}

func removeEdgeID(list []EdgeId, id EdgeId) []EdgeId {
	for i, e := range list {
		if e == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// RemoveEdge removes id, returning its former weight.
func (g *Graph[A, W]) RemoveEdge(id EdgeId) (W, bool) {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	return g.removeEdgeLocked(id)
}

// TryRemoveEdge is RemoveEdge's checked variant.
func (g *Graph[A, W]) TryRemoveEdge(id EdgeId) (W, error) {
	w, ok := g.RemoveEdge(id)
	if !ok {
		return w, kerr.New(kerr.EdgeNotFound, "remove_edge: %s", id)
	}
	return w, nil
}

// ContainsEdge reports whether id refers to a live edge.
func (g *Graph[A, W]) ContainsEdge(id EdgeId) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edgeSlotFor(id)
	return ok
}

// EdgeWeight returns an edge's weight, or (zero, false) if id is not live.
func (g *Graph[A, W]) EdgeWeight(id EdgeId) (W, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edgeSlotFor(id)
	if !ok {
		var zero W
		return zero, false
	}
	return *e.weight, true
}

// EdgeWeightMut returns a pointer to an edge's weight for in-place mutation.
func (g *Graph[A, W]) EdgeWeightMut(id EdgeId) (*W, bool) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	e, ok := g.edgeSlotFor(id)
	if !ok {
		return nil, false
	}
	return e.weight, true
}

// Endpoints returns an edge's (src, tgt) pair.
func (g *Graph[A, W]) Endpoints(id EdgeId) (NodeId, NodeId, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edgeSlotFor(id)
	if !ok {
		return NodeId{}, NodeId{}, false
	}
	return e.src, e.tgt, true
}

// FindEdge returns the first edge from u to v (in either direction when
// undirected), if any.
func (g *Graph[A, W]) FindEdge(u, v NodeId) (EdgeId, bool) {
	g.muNode.RLock()
	us, ok := g.nodeSlotFor(u)
	if !ok {
		g.muNode.RUnlock()
		return EdgeId{}, false
	}
	out := append([]EdgeId(nil), us.out...)
	g.muNode.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, eid := range out {
		e, ok := g.edgeSlotFor(eid)
		if !ok {
			continue
		}
		if g.dir == Directed {
			if e.src == u && e.tgt == v {
				return eid, true
			}
		} else {
			if (e.src == u && e.tgt == v) || (e.src == v && e.tgt == u) {
				return eid, true
			}
		}
	}
	return EdgeId{}, false
}

// degreeLocked computes total degree under an already-held muNode read lock.
func (g *Graph[A, W]) degreeLocked(s *nodeSlot[A]) int {
	if g.dir == Directed {
		return len(s.out) + len(s.in)
	}
	n := 0
	for _, eid := range s.out {
		e, ok := g.edgeSlotFor(eid)
		if !ok {
			continue
		}
		if e.src == e.tgt {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Degree returns a node's total degree. An undirected self-loop counts
// twice; a directed node's degree is in-degree plus out-degree.
func (g *Graph[A, W]) Degree(id NodeId) (int, bool) {
	g.muNode.RLock()
	s, ok := g.nodeSlotFor(id)
	if !ok {
		g.muNode.RUnlock()
		return 0, false
	}
	g.muEdge.RLock()
	d := g.degreeLocked(s)
	g.muEdge.RUnlock()
	g.muNode.RUnlock()
	return d, true
}

// OutDegree returns the number of outgoing edges (directed) or the total
// degree (undirected, where there is no outgoing/incoming distinction).
func (g *Graph[A, W]) OutDegree(id NodeId) (int, bool) {
	if g.dir == Undirected {
		return g.Degree(id)
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	s, ok := g.nodeSlotFor(id)
	if !ok {
		return 0, false
	}
	return len(s.out), true
}

// InDegree returns the number of incoming edges (directed) or the total
// degree (undirected).
func (g *Graph[A, W]) InDegree(id NodeId) (int, bool) {
	if g.dir == Undirected {
		return g.Degree(id)
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	s, ok := g.nodeSlotFor(id)
	if !ok {
		return 0, false
	}
	return len(s.in), true
}

// Density computes m/(n*(n-1)) for directed graphs, 2m/(n*(n-1)) for
// undirected, and 0 when n < 2.
func (g *Graph[A, W]) Density() float64 {
	n := float64(g.NodeCount())
	m := float64(g.EdgeCount())
	if n < 2 {
		return 0
	}
	if g.dir == Directed {
		return m / (n * (n - 1))
	}
	return 2 * m / (n * (n - 1))
}

// Clear resets the graph to empty.
func (g *Graph[A, W]) Clear() {
	g.muNode.Lock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	defer g.muNode.Unlock()
	g.nodes = nil
	g.edges = nil
	g.nodeCount = 0
	g.edgeCount = 0
}
