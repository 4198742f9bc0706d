// Package builder provides a fluent bulk-construction API and a family of
// canonical topology presets (complete, cycle, path, star, grid, bipartite,
// wheel, random-sparse, random-regular) on top of graph.Graph[A, W].
//
// Builder defers validation to Build(): indices are checked against the
// declared node list, and the allow-self-loops/allow-parallel-edges policy
// flags are enforced at build time rather than on each incremental Add call.
package builder
