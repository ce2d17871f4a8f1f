// Package bfs provides tunable options and error definitions
// for breadth-first shortest-path search over a core.AdjacencyIndex.
package bfs

import (
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilIndex is returned if a nil adjacency index is passed.
	ErrNilIndex = errors.New("bfs: adjacency index is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the callbacks that observe a search.
type BFSOptions struct {
	// OnDiscover is called when a node is first discovered, with its depth
	// (edges from the start) and the edge used to reach it. The start node is
	// reported with depth 0 and an empty edge ID.
	OnDiscover func(id string, depth int, edgeID string)

	// OnDequeue is called immediately before a node's neighbors are expanded.
	OnDequeue func(id string, depth int)
}

// DefaultOptions returns a BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnDiscover: func(string, int, string) {},
		OnDequeue:  func(string, int) {},
	}
}

// WithOnDiscover registers a callback to run on discovery.
func WithOnDiscover(fn func(id string, depth int, edgeID string)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
