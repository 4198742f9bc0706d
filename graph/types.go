package graph

import "fmt"

// Weight constrains edge weight types to the two numeric domains the
// algorithms in this module actually need: integer capacities/hop-counts,
// and float64 for anything PageRank/centrality/Johnson-reweighting touches.
// Go's generic arithmetic operators (+, -, <) work directly against a type
// parameter constrained by a union of specific underlying kinds, so no
// capability-method interface is needed.
type Weight interface {
	~int64 | ~float64
}

// NodeId is a stable, opaque handle into a Graph's node arena. It survives
// removal of other nodes (non-compacting arena) and is never reused within
// the lifetime of a Graph instance: a removed slot stays dead rather than
// being handed to a new node, so a stale NodeId from before a removal is
// reported as not-found rather than silently aliasing a new node.
type NodeId struct {
	slot uint32
	gen  uint32
}

// Index returns a dense-for-current-snapshot integer hint. Algorithms that
// need a contiguous 0..n mapping after removals must call Reindex instead of
// relying on this value remaining dense.
func (id NodeId) Index() uint32 { return id.slot }

func (id NodeId) String() string { return fmt.Sprintf("n%d#%d", id.slot, id.gen) }

// IsZero reports whether id is the zero value (never a valid handle, since
// real handles are minted starting at generation 1).
func (id NodeId) IsZero() bool { return id.gen == 0 }

// EdgeId is the edge analogue of NodeId: stable, opaque, generation-guarded.
type EdgeId struct {
	slot uint32
	gen  uint32
}

// Index returns the arena-slot hint for this edge.
func (id EdgeId) Index() uint32 { return id.slot }

func (id EdgeId) String() string { return fmt.Sprintf("e%d#%d", id.slot, id.gen) }

// IsZero reports whether id is the zero value.
func (id EdgeId) IsZero() bool { return id.gen == 0 }

// Option is a present-or-absent value without resorting to a nil-able
// pointer for value types. Used for adjacency-matrix cells, Floyd-Warshall's
// distance matrix, and any per-node result vector that cannot assume
// contiguous indices.
type Option[T any] struct {
	Value T
	Ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Ok: true} }

// None returns an absent value of type T.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and an ok flag, mirroring Go's comma-ok idiom.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Ok }

// NodeMap is a mapping keyed by NodeId; iteration order is unspecified.
type NodeMap[T any] map[NodeId]T

// EdgeMap is a mapping keyed by EdgeId; iteration order is unspecified.
type EdgeMap[T any] map[EdgeId]T

// MstEdge is one edge of a computed minimum spanning tree/forest.
type MstEdge[W Weight] struct {
	U, V   NodeId
	Weight W
}

// Direction distinguishes a Graph's discipline. It is fixed at construction
// and never changes for the lifetime of a Graph instance.
type Direction bool

const (
	// Undirected graphs treat edge (u, v) and (v, u) as the same edge.
	Undirected Direction = false
	// Directed graphs distinguish outgoing successors from incoming predecessors.
	Directed Direction = true
)

func (d Direction) String() string {
	if d == Directed {
		return "directed"
	}
	return "undirected"
}
