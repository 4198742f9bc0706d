// Package approx collects greedy and heuristic solvers for problems whose
// exact versions are NP-hard: maximum clique and clique removal, maximum
// independent set, minimum weighted vertex cover, minimum maximal matching,
// densest subgraph by peeling, local node connectivity, a Ramsey R(2)
// bound, treewidth by elimination ordering, a diameter lower bound, and
// nearest-neighbor TSP. None of these guarantee optimality; each documents
// the heuristic it follows. Neighbor sets are cached up front so membership
// checks inside the greedy loops stay O(1).
package approx
