// Package parallel provides typed concurrent reductions over a shared,
// read-only graph: per-node BFS eccentricity, degree/triangle/clustering
// sweeps, per-source shortest paths, a parallel PageRank iteration, and
// deterministic connected components. Work is partitioned over nodes (or
// source nodes, or edges for components); per-worker state stays local and
// results are folded into the output under a single lock or by index, never
// by racing on shared accumulators. Workers never block on I/O and there is
// no cancellation: the errgroups carry no context; callers bound the work by
// choosing bounded inputs.
package parallel
