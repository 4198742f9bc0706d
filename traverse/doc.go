// Package traverse implements the unweighted exploration kernels:
// breadth-first search, depth-first search, iterative-deepening DFS, and
// bidirectional BFS. BFS and DFS (and IDDFS, which runs DFS) take functional
// options and produce visit order, depth, and parent maps over NodeId-keyed
// adjacency; bidirectional BFS takes no options and returns the path itself.
package traverse
