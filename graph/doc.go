// Package graph defines the generic in-memory graph container: stable
// NodeId/EdgeId handles, a Graph[A, W] type parameterized by node-attribute
// type A and edge-weight type W, directed/undirected discipline, and the
// iteration, mutation, and matrix-projection primitives every algorithm in
// this module builds on.
//
// The container is arena-backed: removing a node or edge never reuses its
// handle and never compacts the underlying slots, so a NodeId taken before a
// removal stays valid (or cleanly reports "not found") afterward. Algorithms
// that need a dense 0..n index over the *current* live nodes call Reindex,
// which snapshots the present iteration order rather than trusting
// NodeId.Index() to stay contiguous.
//
//	go get github.com/kestrelgraph/kestrel/graph
package graph
