// Package linkpred scores node pairs, connected or not, by how likely an
// edge between them is, using neighborhood-overlap heuristics: Jaccard,
// resource allocation, Adamic-Adar, preferential attachment, common-
// neighbor centrality, the Soundarajan-Hopcroft community-aware variants,
// and the within-inter-cluster ratio. Every predictor accepts an optional
// candidate pair list; when omitted it scores all unordered live-node
// pairs. Scores are symmetric in (u, v) for undirected inputs.
package linkpred
