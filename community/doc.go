// Package community implements the community-detection suite: connected
// components, label propagation, Louvain modularity maximization with
// aggregation, Girvan-Newman edge-betweenness peeling, spectral clustering
// over the unnormalized Laplacian, a simplified flow-greedy Infomap, and
// personalized PageRank. Every randomized step takes a 64-bit seed and is
// bit-identical given the same seed and graph.
package community
