package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds parameters to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of a traversal.
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start.
type Result[V comparable] struct {
	Order []V
	Depth map[V]int
}
