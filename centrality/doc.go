// Package centrality implements node- and edge-importance measures: degree,
// closeness, harmonic, eigenvector, Katz, PageRank, Brandes node/edge
// betweenness, Laplacian centrality, reaching centrality, and VoteRank.
// Per-source distance scans share a heap-based shortest-path loop, and the
// undirected eigenvector branch leans on gonum.org/v1/gonum/mat's symmetric
// eigensolver rather than a hand-rolled Jacobi sweep.
package centrality
