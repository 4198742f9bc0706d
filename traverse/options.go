package traverse

import "context"

// Options configures BFS/DFS/IDDFS.
type Options struct {
	Ctx            context.Context
	MaxDepth       int // <=0 means unlimited
	FilterNeighbor func(from, to int) bool
	OnVisit        func(id int, depth int) error
}

// Option mutates an Options instance.
type Option func(*Options)

// DefaultOptions returns the zero-value-safe defaults: background context,
// unlimited depth, no filtering, no visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ int) bool { return true },
		OnVisit:        func(_, _ int) error { return nil },
	}
}

// WithContext supplies a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxDepth bounds traversal depth relative to the start node (depth 0).
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithFilterNeighbor supplies a predicate over compact node indices; a
// neighbor is only explored when the predicate returns true.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithOnVisit supplies a pre-order hook; returning an error aborts the walk.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}
