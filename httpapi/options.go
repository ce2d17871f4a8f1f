// SPDX-License-Identifier: MIT
// Package: graphpad/httpapi
//
// options.go - server configuration via functional options.

package httpapi

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/query"
)

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 4 << 20

// RequestObserver receives one call per served request. metrics.Collector
// implements it.
type RequestObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// HealthFunc reports whether a dependency is usable.
type HealthFunc func(ctx context.Context) error

// Options configures a Server.
type Options struct {
	// Logger receives one Info line per request and handler errors.
	Logger *zap.Logger

	// CORSOrigins lists the origins allowed to call the API from a browser.
	// Empty disables the CORS middleware.
	CORSOrigins []string

	// Finder runs search and path queries.
	Finder *query.Finder

	// Observer, if non-nil, is told about every request.
	Observer RequestObserver

	// Metrics, if non-nil, is mounted at /metrics.
	Metrics http.Handler

	// Health, if non-nil, backs /healthz.
	Health HealthFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a quiet server with no CORS, no metrics and a
// default Finder.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Finder: query.NewFinder(),
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

// WithCORSOrigins enables CORS for the given origins.
func WithCORSOrigins(origins ...string) Option {
	return func(o *Options) { o.CORSOrigins = append([]string(nil), origins...) }
}

// WithFinder sets the query engine. Nil is ignored.
func WithFinder(f *query.Finder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithObserver sets the per-request observer.
func WithObserver(obs RequestObserver) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(o *Options) { o.Metrics = h }
}

// WithHealthCheck sets the readiness check behind /healthz.
func WithHealthCheck(fn HealthFunc) Option {
	return func(o *Options) { o.Health = fn }
}
