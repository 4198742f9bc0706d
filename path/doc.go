// Package path implements the weighted shortest-path kernels: Dijkstra,
// Bellman-Ford, A*, IDA*, Floyd-Warshall (all-pairs), and Johnson's
// algorithm (all-pairs via Bellman-Ford reweighting + Dijkstra). The
// heap-based algorithms share internal/pqueue's lazy-decrease-key loop
// instead of a bespoke per-call container/heap.Interface implementation.
package path
