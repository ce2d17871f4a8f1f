// Package dijkstra defines errors and configuration options
// for Dijkstra's shortest-path search over a core.AdjacencyIndex.
//
// Options:
//
//	– WithOnSettle: hook invoked when a node's distance becomes final.
//	– WithOnRelax:  hook invoked when a tentative distance improves.
//
// Errors (sentinel):
//
//	– ErrNilIndex if the provided index pointer is nil.
package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilIndex indicates that a nil *core.AdjacencyIndex was passed.
	ErrNilIndex = errors.New("dijkstra: adjacency index is nil")
)

// Options configures the observation hooks of a search.
type Options struct {
	// OnSettle is called when a node is selected as the unvisited minimum,
	// with its final distance from the start.
	OnSettle func(id string, dist float64)

	// OnRelax is called when an edge improves a tentative distance.
	OnRelax func(from, to, edgeID string, dist float64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOnSettle registers a settle hook. A nil fn is ignored.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a relaxation hook. A nil fn is ignored.
func WithOnRelax(fn func(from, to, edgeID string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(string, float64) {},
		OnRelax:  func(string, string, string, float64) {},
	}
}
