// Package mst implements Prim's (grow-from-root via a min-heap of candidate
// edges) and Kruskal's (global edge sort + union-find) minimum-spanning-
// forest algorithms. Both handle disconnected inputs by producing one tree
// per component rather than erroring out.
package mst
