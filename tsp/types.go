package tsp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/waytour/core"
	"github.com/katalvlaran/waytour/weight"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrStartNotFound is returned when the start vertex is not in the graph.
	ErrStartNotFound = errors.New("tsp: start vertex not found")

	// ErrTooFewVertices is returned for graphs with fewer than two vertices.
	ErrTooFewVertices = errors.New("tsp: at least two vertices required")

	// ErrNoCycle is returned when no Hamiltonian cycle through start exists, or,
	// for NearestNeighbor, when the greedy walk reaches a dead end.
	ErrNoCycle = errors.New("tsp: no hamiltonian cycle")

	// ErrUnsupportedAlgorithm is returned by Solve and ParseAlgorithm for unknown values.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Automatic defers the choice to a Selection policy.
	Automatic Algorithm = iota

	// ExactSearch always runs Exact.
	ExactSearch

	// NearestNeighbour always runs NearestNeighbor.
	NearestNeighbour
)

var algorithmNames = map[Algorithm]string{
	Automatic:        "automatic",
	ExactSearch:      "exact",
	NearestNeighbour: "nearest_neighbour",
}

// String returns the lower-case name used in configuration files and metric labels.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm is the inverse of Algorithm.String. Matching ignores case.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}

	return Automatic, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Selection is the size policy behind Automatic.
// An instance is small when either bound holds; zero disables that bound.
type Selection struct {
	// MaxExactVertices: vertex counts up to this run the exact search.
	MaxExactVertices int `yaml:"max_exact_vertices" json:"max_exact_vertices" validate:"gte=0"`

	// MaxExactEdges: edge counts up to this run the exact search.
	MaxExactEdges int `yaml:"max_exact_edges" json:"max_exact_edges" validate:"gte=0"`
}

// DefaultSelection returns the stock thresholds: five vertices or sixty edges.
func DefaultSelection() Selection {
	return Selection{MaxExactVertices: 5, MaxExactEdges: 60}
}

// Choose resolves Automatic for a graph of the given size.
func (s Selection) Choose(vertexCount, edgeCount int) Algorithm {
	if s.MaxExactVertices > 0 && vertexCount <= s.MaxExactVertices {
		return ExactSearch
	}
	if s.MaxExactEdges > 0 && edgeCount <= s.MaxExactEdges {
		return ExactSearch
	}

	return NearestNeighbour
}

// Result pairs a tour with the solver that produced it.
type Result[V comparable, W weight.Number, E core.Edge[V, W]] struct {
	Path      core.Path[V, W, E]
	Algorithm Algorithm
}

// Options tunes a solver run.
type Options struct {
	// Ctx aborts a long exact search; checked every checkEvery node expansions.
	Ctx context.Context
}

// Option configures a solver run via functional arguments.
type Option func(*Options)

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
