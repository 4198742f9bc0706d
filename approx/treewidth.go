package approx

import (
	"github.com/kestrelgraph/kestrel/graph"
)

// TreewidthMinDegree upper-bounds treewidth by eliminating the minimum-
// degree node first: eliminating a node clique-fills its remaining
// neighborhood, and the width is the largest elimination degree observed.
func TreewidthMinDegree[A any, W graph.Weight](g *graph.Graph[A, W]) int {
	return eliminationWidth(g, func(sets []map[int]bool, alive map[int]bool) int {
		best, bestDeg := -1, 0
		for u := range alive {
			d := liveDegree(sets, alive, u)
			if best < 0 || d < bestDeg || (d == bestDeg && u < best) {
				best, bestDeg = u, d
			}
		}
		return best
	})
}

// TreewidthMinFillIn eliminates the node whose neighborhood needs the
// fewest fill edges to become a clique, a slower but usually tighter bound
// than min-degree.
func TreewidthMinFillIn[A any, W graph.Weight](g *graph.Graph[A, W]) int {
	return eliminationWidth(g, func(sets []map[int]bool, alive map[int]bool) int {
		best, bestFill := -1, 0
		for u := range alive {
			fill := fillIn(sets, alive, u)
			if best < 0 || fill < bestFill || (fill == bestFill && u < best) {
				best, bestFill = u, fill
			}
		}
		return best
	})
}

// eliminationWidth runs the generic elimination game: pick (per the scoring
// callback), record the live degree, clique-fill the neighborhood, delete.
func eliminationWidth[A any, W graph.Weight](g *graph.Graph[A, W], pick func(sets []map[int]bool, alive map[int]bool) int) int {
	c := newNeighborCache(g)
	n := c.n()
	if n == 0 {
		return 0
	}

	// Work on a mutable copy of the adjacency sets.
	sets := make([]map[int]bool, n)
	for i, s := range c.sets {
		sets[i] = make(map[int]bool, len(s))
		for v := range s {
			sets[i][v] = true
		}
	}
	alive := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		alive[i] = true
	}

	width := 0
	for len(alive) > 0 {
		u := pick(sets, alive)
		if u < 0 {
			break
		}

		var nbrs []int
		for v := range sets[u] {
			if alive[v] {
				nbrs = append(nbrs, v)
			}
		}
		if len(nbrs) > width {
			width = len(nbrs)
		}
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				sets[nbrs[i]][nbrs[j]] = true
				sets[nbrs[j]][nbrs[i]] = true
			}
		}
		for _, v := range nbrs {
			delete(sets[v], u)
		}
		delete(alive, u)
	}
	return width
}

func liveDegree(sets []map[int]bool, alive map[int]bool, u int) int {
	d := 0
	for v := range sets[u] {
		if alive[v] {
			d++
		}
	}
	return d
}

// fillIn counts the non-adjacent pairs in u's live neighborhood.
func fillIn(sets []map[int]bool, alive map[int]bool, u int) int {
	var nbrs []int
	for v := range sets[u] {
		if alive[v] {
			nbrs = append(nbrs, v)
		}
	}
	fill := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !sets[nbrs[i]][nbrs[j]] {
				fill++
			}
		}
	}
	return fill
}
