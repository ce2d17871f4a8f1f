// SPDX-License-Identifier: MIT
// Package: graphpad/persist
//
// writer.go - background Sink that feeds a Gateway.
//
// Design:
//   - Submit never blocks: the pending slot holds at most one state, and a
//     newer state replaces an unwritten older one (latest wins).
//   - One goroutine drains the slot and calls Gateway.Save through a circuit
//     breaker, so a failing medium is skipped quickly instead of being
//     hammered on every mutation.
//   - Failures are logged and reported to the OnSave hook, never returned.
//   - Close stops accepting states and waits for the last pending one.

package persist

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Logger receives save failures (Warn) and breaker transitions (Info).
	Logger *zap.Logger

	// SaveTimeout bounds every Gateway.Save call.
	SaveTimeout time.Duration

	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32

	// BreakerTimeout is how long the breaker stays open before a trial save.
	BreakerTimeout time.Duration

	// OnSave is called after every attempt with its outcome (nil on success).
	OnSave func(err error)
}

// WriterOption mutates WriterOptions.
type WriterOption func(*WriterOptions)

// DefaultWriterOptions returns a no-op logger, a 5s save timeout and a breaker
// that opens after 5 consecutive failures for 30s.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		Logger:          zap.NewNop(),
		SaveTimeout:     5 * time.Second,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
		OnSave:          func(error) {},
	}
}

// WithWriterLogger sets the logger. Nil is ignored.
func WithWriterLogger(l *zap.Logger) WriterOption {
	return func(o *WriterOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSaveTimeout bounds every save. Non-positive values are ignored.
func WithSaveTimeout(d time.Duration) WriterOption {
	return func(o *WriterOptions) {
		if d > 0 {
			o.SaveTimeout = d
		}
	}
}

// WithBreaker configures the circuit breaker. Zero values keep the defaults.
func WithBreaker(failures uint32, timeout time.Duration) WriterOption {
	return func(o *WriterOptions) {
		if failures > 0 {
			o.BreakerFailures = failures
		}
		if timeout > 0 {
			o.BreakerTimeout = timeout
		}
	}
}

// WithOnSave registers a hook observing every save outcome. Nil is ignored.
func WithOnSave(fn func(err error)) WriterOption {
	return func(o *WriterOptions) {
		if fn != nil {
			o.OnSave = fn
		}
	}
}

// Writer is an asynchronous, coalescing Sink in front of a Gateway.
type Writer struct {
	gw      Gateway
	opts    WriterOptions
	cb      *gobreaker.CircuitBreaker
	pending chan State

	mu     sync.Mutex // guards closed and sends on pending
	closed bool
	done   chan struct{}
}

// NewWriter starts the background goroutine. Call Close to stop it.
func NewWriter(gw Gateway, opts ...WriterOption) *Writer {
	cfg := DefaultWriterOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Writer{
		gw:      gw,
		opts:    cfg,
		pending: make(chan State, 1),
		done:    make(chan struct{}),
	}
	w.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "persist",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			cfg.Logger.Info("persistence breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	go w.run()

	return w
}

// Submit queues st for saving, replacing any state not yet written.
// It is a no-op after Close.
func (w *Writer) Submit(st State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	// Only run() receives from pending, so after draining the slot is free.
	select {
	case <-w.pending:
	default:
	}
	w.pending <- st
}

// Close stops accepting states and waits until the last queued one has been
// written or ctx is done.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.pending)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BreakerState exposes the breaker position for health reporting.
func (w *Writer) BreakerState() gobreaker.State {
	return w.cb.State()
}

func (w *Writer) run() {
	defer close(w.done)
	for st := range w.pending {
		w.write(st)
	}
}

func (w *Writer) write(st State) {
	ctx, cancel := context.WithTimeout(context.Background(), w.opts.SaveTimeout)
	defer cancel()

	_, err := w.cb.Execute(func() (interface{}, error) {
		return nil, w.gw.Save(ctx, st)
	})
	if err != nil {
		w.opts.Logger.Warn("persist state failed",
			zap.Error(err),
			zap.Int("nodes", len(st.Nodes)),
			zap.Int("edges", len(st.Edges)),
		)
	}
	w.opts.OnSave(err)
}
