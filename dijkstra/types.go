// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over the edges of a mesh.
//
// Edge weights are the Euclidean lengths between vertex positions, so every
// weight is non-negative by construction.
//
// Options:
//
//	– Source:           id of the starting vertex (required).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges at least this long are treated as impassable.
//	– Weight:           replaces the Euclidean length with a caller metric.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source was given.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source vertex is out of range.
//	– ErrNegativeWeight  if a weight is negative or NaN.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          from Path when the target was not reached.
package dijkstra

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex is not set")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN edge weight, which happens
	// with non-finite positions or a bad Weight function.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the target vertex was not reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Graph is the read side of a mesh that Dijkstra needs. *mesh.Mesh satisfies
// it for every vertex type.
type Graph interface {
	VertexCount() int
	Ring(dst []int, v int, mode mesh.Mode) ([]int, error)
	Position(v int) (r3.Vec, error)
}

// WeightFunc returns the cost of the edge u→v given both positions.
type WeightFunc func(u, v int, pu, pv r3.Vec) float64

// Euclidean is the default WeightFunc.
func Euclidean(_, _ int, pu, pv r3.Vec) float64 { return r3.Norm(r3.Sub(pu, pv)) }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id (required).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore. Default +Inf.
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable. Default +Inf.
// Weight           – edge metric. Default Euclidean.
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Weight           WeightFunc

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Must be given.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold unless the
// value is positive.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithWeight replaces the Euclidean edge length. A nil fn is ignored.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// DefaultOptions returns an Options struct with no source, no path, no
// distance cap, no impassable edges and Euclidean weights.
func DefaultOptions() Options {
	return Options{
		Source:           mesh.NoIndex,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Weight:           Euclidean,
	}
}
