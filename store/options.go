// SPDX-License-Identifier: MIT
// Package: graphpad/store
//
// options.go - functional options, ID generators and placement policies.

package store

import (
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/persist"
)

// DefaultPlacementSpan bounds the random initial coordinates of new nodes.
const DefaultPlacementSpan = 200.0

// IDGenerator produces unique string identifiers for nodes, edges and snapshots.
type IDGenerator func() string

// UUIDv7 returns a generator of RFC 9562 version 7 UUID strings.
func UUIDv7() IDGenerator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Sequential returns a deterministic generator yielding prefix1, prefix2, ...
// Safe for concurrent use.
func Sequential(prefix string) IDGenerator {
	var n atomic.Uint64

	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}

// RandomPlacement places new nodes uniformly in [0, span) on both axes.
func RandomPlacement(span float64) func() core.Position {
	return func() core.Position {
		return core.Position{X: rand.Float64() * span, Y: rand.Float64() * span}
	}
}

// FixedPlacement places every new node at p.
func FixedPlacement(p core.Position) func() core.Position {
	return func() core.Position { return p }
}

// Options configures a Store.
type Options struct {
	// IDGen names new nodes, edges and snapshots.
	IDGen IDGenerator

	// Clock stamps named snapshots.
	Clock func() time.Time

	// Placement chooses the initial position of a new node.
	Placement func() core.Position

	// Sink receives the persisted state after every applied intent.
	Sink persist.Sink

	// Logger receives one Debug line per applied intent.
	Logger *zap.Logger

	// HistoryLimit caps the undo depth; the oldest entries are dropped.
	// Zero means unbounded.
	HistoryLimit int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns UUIDv7 IDs, the wall clock, random placement within
// DefaultPlacementSpan, a discarding sink, a no-op logger and unbounded history.
func DefaultOptions() Options {
	return Options{
		IDGen:     UUIDv7(),
		Clock:     time.Now,
		Placement: RandomPlacement(DefaultPlacementSpan),
		Sink:      persist.SinkFunc(func(persist.State) {}),
		Logger:    zap.NewNop(),
	}
}

// WithIDGenerator overrides ID generation. Nil is ignored.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *Options) {
		if gen != nil {
			o.IDGen = gen
		}
	}
}

// WithClock overrides the snapshot clock. Nil is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithPlacement overrides the initial placement of new nodes. Nil is ignored.
func WithPlacement(place func() core.Position) Option {
	return func(o *Options) {
		if place != nil {
			o.Placement = place
		}
	}
}

// WithSink routes persisted states to sink. Nil is ignored.
func WithSink(sink persist.Sink) Option {
	return func(o *Options) {
		if sink != nil {
			o.Sink = sink
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

// WithHistoryLimit caps the undo depth. Negative values are treated as zero.
func WithHistoryLimit(n int) Option {
	return func(o *Options) {
		o.HistoryLimit = max(n, 0)
	}
}
