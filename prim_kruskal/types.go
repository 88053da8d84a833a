// Package prim_kruskal defines configuration options, sentinel errors and the
// shared Result type for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath-mst/core"
)

// ErrInvalidGraph indicates that a nil graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrVertexNotFound indicates that Prim's start vertex is not touched by any edge.
// The returned error wraps it together with the offending label.
var ErrVertexNotFound = errors.New("prim_kruskal: start vertex not found in graph")

// ErrDisconnected marks a partial result: the returned edges form a spanning
// forest (Kruskal) or the tree reachable from the root (Prim), not a spanning tree.
// It is never returned as an error; it is stored in Result.Warning.
var ErrDisconnected = errors.New("prim_kruskal: MST does not span the entire graph (graph may be disconnected)")

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is the common output of both builders.
//
// Edges are listed in acceptance order. Operations is a diagnostic counter of
// primitive steps; it only makes sense relative to another run of the same code.
type Result struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Edges accepted into the tree, in acceptance order.
	Edges []core.Edge

	// Operations counts "key operations" performed by the call.
	Operations int64

	// Vertices is the number of distinct vertices in the input graph.
	Vertices int

	// Warning is ErrDisconnected for a partial forest, nil otherwise.
	Warning error
}

// TotalWeight sums the weights of the accepted edges.
func (r *Result) TotalWeight() int64 {
	return core.SumWeights(r.Edges)
}

// Len returns the number of accepted edges.
func (r *Result) Len() int { return len(r.Edges) }

// Spanning reports whether the result is a full spanning tree, i.e. it holds
// exactly |V|-1 edges. An empty graph is trivially spanned.
func (r *Result) Spanning() bool {
	if r.Vertices == 0 {
		return true
	}

	return len(r.Edges) == r.Vertices-1
}

// String gives a one-line summary suitable for logs.
func (r *Result) String() string {
	return fmt.Sprintf("%s: %d edges, weight %d, %d ops", r.Method, len(r.Edges), r.TotalWeight(), r.Operations)
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string         — one of MethodPrim or MethodKruskal.
//	Root   string         — start vertex ID for Prim; ignored when Method == MethodKruskal.
//	Logger zerolog.Logger — receives the disconnected-graph warning.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Logger receives non-fatal warnings. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and ignore by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithLogger returns an Option that routes the disconnected warning to l.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal)
//	– Logger = zerolog.Nop().
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
		Logger: zerolog.Nop(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, opts.Root).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// Note: this is optional scaffolding—methods Prim and Kruskal can still be called directly.
func Compute(graph *core.Graph, opts MSTOptions) (*Result, error) {
	keep := func(o *MSTOptions) { *o = opts }
	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, keep)
	case MethodPrim:
		return Prim(graph, opts.Root, keep)
	default:
		return nil, fmt.Errorf("%q: %w", opts.Method, ErrUnknownMethod)
	}
}

// warnDisconnected records and logs the partial-forest condition.
func warnDisconnected(res *Result, log zerolog.Logger) {
	res.Warning = ErrDisconnected
	log.Warn().
		Str("method", res.Method).
		Int("vertices", res.Vertices).
		Int("accepted", len(res.Edges)).
		Msg("MST does not span the entire graph (graph may be disconnected)")
}
