// SPDX-License-Identifier: MIT
// Package: graphpad/query
//
// types.go - algorithms, results, recorder hook and sentinel errors.

package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/core"
)

// Sentinel errors returned before any search runs.
var (
	// ErrMissingEndpoints indicates that the start or end node ID is blank.
	ErrMissingEndpoints = errors.New("query: start and end node ids are both required")

	// ErrUnknownAlgorithm indicates an algorithm name other than bfs or dijkstra.
	ErrUnknownAlgorithm = errors.New("query: unknown algorithm")
)

// Algorithm selects the cost model of a path search.
type Algorithm string

const (
	// BFS minimizes the number of edges.
	BFS Algorithm = "bfs"
	// Dijkstra minimizes the sum of edge weights.
	Dijkstra Algorithm = "dijkstra"
)

// ParseAlgorithm accepts "bfs" or "dijkstra" in any case. Blank selects BFS.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", BFS:
		return BFS, nil
	case Dijkstra:
		return Dijkstra, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Result is the outcome of one path search. Found=false with a nil Path is
// the "no path" answer, distinct from a search that was never run.
type Result struct {
	Algorithm Algorithm     `json:"algorithm"`
	Found     bool          `json:"found"`
	Path      *core.Path    `json:"path"`
	Hops      int           `json:"hops"`
	Cost      float64       `json:"cost"`
	Elapsed   time.Duration `json:"elapsedNs"`
}

// Recorder observes completed queries. metrics.Collector implements it.
type Recorder interface {
	ObservePathFind(algorithm string, found bool, elapsed time.Duration)
	ObserveSearch(matches int)
}

type nopRecorder struct{}

func (nopRecorder) ObservePathFind(string, bool, time.Duration) {}
func (nopRecorder) ObserveSearch(int) {}

// Options configures a Finder.
type Options struct {
	Recorder Recorder
	Logger   *zap.Logger
	Now      func() time.Time
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discarding recorder, a no-op logger and the wall clock.
func DefaultOptions() Options {
	return Options{Recorder: nopRecorder{}, Logger: zap.NewNop(), Now: time.Now}
}

// WithRecorder sets the query recorder. Nil is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock overrides the clock used to time searches. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
