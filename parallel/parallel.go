package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelgraph/kestrel/graph"
	"github.com/kestrelgraph/kestrel/path"
	"github.com/kestrelgraph/kestrel/traverse"
)

// Options bounds the worker pool.
type Options struct {
	Workers int
}

// Option mutates an Options instance.
type Option func(*Options)

// WithWorkers caps concurrent workers; values < 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func resolve(opts []Option) Options {
	o := Options{Workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// forEachIndex fans f out over 0..n-1 with the bounded worker group. f must
// only write into per-index slots of its own result storage.
func forEachIndex(n, workers int, f func(i int) error) error {
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error { return f(i) })
	}
	return eg.Wait()
}

// EccentricityAll runs a BFS from every node concurrently and returns each
// node's hop eccentricity (the depth of its farthest reachable node).
func EccentricityAll[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) (graph.NodeMap[int], error) {
	o := resolve(opts)
	ids := g.NodeIds()
	ecc := make([]int, len(ids))

	err := forEachIndex(len(ids), o.Workers, func(i int) error {
		res, err := traverse.BFS(g, ids[i])
		if err != nil {
			return err
		}
		max := 0
		for _, d := range res.Depth {
			if d > max {
				max = d
			}
		}
		ecc[i] = max
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(graph.NodeMap[int], len(ids))
	for i, id := range ids {
		out[id] = ecc[i]
	}
	return out, nil
}

// DegreeAll computes every node's total degree concurrently.
func DegreeAll[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) graph.NodeMap[int] {
	o := resolve(opts)
	ids := g.NodeIds()
	deg := make([]int, len(ids))
	_ = forEachIndex(len(ids), o.Workers, func(i int) error {
		d, _ := g.Degree(ids[i])
		deg[i] = d
		return nil
	})

	out := make(graph.NodeMap[int], len(ids))
	for i, id := range ids {
		out[id] = deg[i]
	}
	return out
}

// TrianglesAll counts, per node, the triangles it participates in (each
// triangle counted once per member node).
func TrianglesAll[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) graph.NodeMap[int] {
	o := resolve(opts)
	ids := g.NodeIds()

	// Snapshot neighbor sets once; workers only read.
	nbrs := make([]map[graph.NodeId]bool, len(ids))
	rank := make(map[graph.NodeId]int, len(ids))
	for i, id := range ids {
		rank[id] = i
		set := make(map[graph.NodeId]bool)
		for _, v := range g.Neighbors(id) {
			if v != id {
				set[v] = true
			}
		}
		nbrs[i] = set
	}

	counts := make([]int, len(ids))
	_ = forEachIndex(len(ids), o.Workers, func(i int) error {
		c := 0
		for u := range nbrs[i] {
			for v := range nbrs[i] {
				if rank[u] < rank[v] && nbrs[rank[u]][v] {
					c++
				}
			}
		}
		counts[i] = c
		return nil
	})

	out := make(graph.NodeMap[int], len(ids))
	for i, id := range ids {
		out[id] = counts[i]
	}
	return out
}

// ClusteringAll computes each node's local clustering coefficient
// (triangles through the node divided by its possible neighbor pairs).
func ClusteringAll[A any, W graph.Weight](g *graph.Graph[A, W], opts ...Option) graph.NodeMap[float64] {
	triangles := TrianglesAll(g, opts...)
	out := make(graph.NodeMap[float64], len(triangles))
	for _, id := range g.NodeIds() {
		set := make(map[graph.NodeId]bool)
		for _, v := range g.Neighbors(id) {
			if v != id {
				set[v] = true
			}
		}
		k := len(set)
		if k < 2 {
			out[id] = 0
			continue
		}
		out[id] = 2 * float64(triangles[id]) / (float64(k) * float64(k-1))
	}
	return out
}

// ShortestPathsFrom runs Dijkstra from every listed source concurrently.
// The result maps each source to its single-source answer; the first
// per-source error aborts the fan-out.
func ShortestPathsFrom[A any, W graph.Weight](g *graph.Graph[A, W], sources []graph.NodeId, opts ...Option) (map[graph.NodeId]*path.Result[W], error) {
	o := resolve(opts)
	results := make([]*path.Result[W], len(sources))
	err := forEachIndex(len(sources), o.Workers, func(i int) error {
		res, err := path.Dijkstra(g, sources[i])
		if err != nil {
			return err
		}
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[graph.NodeId]*path.Result[W], len(sources))
	for i, src := range sources {
		out[src] = results[i]
	}
	return out, nil
}
