// Package kestrel is a general-purpose graph analytics library: a generic
// in-memory graph container plus a family of algorithms organized around
// it.
//
// The container (package graph) is parameterized by node-attribute type A
// and edge-weight type W, carries a fixed directed/undirected discipline,
// and hands out stable NodeId/EdgeId handles that survive the removal of
// other nodes. Everything else layers on top of it:
//
//	graph/           container, iteration, views, matrix projections
//	graph/builder/   fluent bulk construction + topology presets
//	graph/validate/  structural predicates (connected, bipartite, DAG, ...)
//	traverse/        BFS, DFS, IDDFS, bidirectional BFS
//	path/            Dijkstra, Bellman-Ford, A*, IDA*, Floyd-Warshall, Johnson
//	mst/             Prim and Kruskal minimum spanning forests
//	centrality/      degree through Brandes betweenness, PageRank, VoteRank
//	community/       components, label propagation, Louvain, Girvan-Newman,
//	                 spectral clustering, Infomap, personalized PageRank
//	approx/          greedy heuristics for NP-hard problems (clique, cover,
//	                 matching, densest subgraph, treewidth, TSP, ...)
//	linkpred/        neighborhood-overlap link prediction scores
//	parallel/        bounded concurrent reductions over a shared graph
//	kerr/            the error taxonomy every package reports through
//
// Algorithms borrow the graph immutably and produce fresh result
// containers; nothing mutates an input graph. Every randomized step takes
// an explicit 64-bit seed and is deterministic given it.
package kestrel
