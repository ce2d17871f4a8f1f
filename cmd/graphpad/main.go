// SPDX-License-Identifier: MIT

// Command graphpad serves a graph state engine over HTTP, persisting the
// graph and its named snapshots to SQLite.
//
// Usage:
//
//	graphpad [-config graphpad.yaml]
//
// Every setting can also be given as a GRAPHPAD_* environment variable; see
// package config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/config"
	"github.com/katalvlaran/graphpad/httpapi"
	"github.com/katalvlaran/graphpad/metrics"
	"github.com/katalvlaran/graphpad/persist"
	"github.com/katalvlaran/graphpad/query"
	"github.com/katalvlaran/graphpad/store"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "graphpad:", err)
		os.Exit(2)
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "graphpad:", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("graphpad stopped", zap.Error(err))
		os.Exit(1)
	}
}

// gateway is a persistence gateway the process owns.
type gateway interface {
	persist.Gateway
	io.Closer
}

type memoryGateway struct{ *persist.MemoryGateway }

func (memoryGateway) Close() error { return nil }

func openGateway(cfg config.StorageConfig) (gateway, httpapi.HealthFunc, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memoryGateway{persist.NewMemoryGateway()}, nil, nil
	default:
		gw, err := persist.OpenSQLite(cfg.Path, cfg.Key)
		if err != nil {
			return nil, nil, err
		}

		return gw, gw.Ping, nil
	}
}

// run wires the process and blocks until ctx is cancelled or the listener
// fails, then drains requests and flushes the last state.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	gw, health, err := openGateway(cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if cerr := gw.Close(); cerr != nil {
			logger.Warn("close storage", zap.Error(cerr))
		}
	}()

	var collector *metrics.Collector
	writerOpts := []persist.WriterOption{
		persist.WithWriterLogger(logger.Named("persist")),
		persist.WithSaveTimeout(cfg.Persist.SaveTimeout),
		persist.WithBreaker(cfg.Persist.BreakerFailures, cfg.Persist.BreakerTimeout),
	}
	finderOpts := []query.Option{query.WithLogger(logger.Named("query"))}
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
		writerOpts = append(writerOpts, persist.WithOnSave(collector.ObserveSave))
		finderOpts = append(finderOpts, query.WithRecorder(collector))
	}
	writer := persist.NewWriter(gw, writerOpts...)

	st := store.New(
		store.WithSink(writer),
		store.WithLogger(logger.Named("store")),
		store.WithHistoryLimit(cfg.History.Limit),
	)
	// restore runs on its own deadline; ctx only governs serving
	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), cfg.Persist.SaveTimeout)
	err = st.Restore(restoreCtx, gw)
	restoreCancel()
	if err != nil {
		_ = writer.Close(context.Background())
		return err
	}
	nodes, edges, _, _, snaps := st.Counts()
	logger.Info("graph restored",
		zap.String("driver", cfg.Storage.Driver),
		zap.Int("nodes", nodes),
		zap.Int("edges", edges),
		zap.Int("snapshots", snaps),
	)

	apiOpts := []httpapi.Option{
		httpapi.WithLogger(logger.Named("http")),
		httpapi.WithCORSOrigins(cfg.Server.CORSOrigins...),
		httpapi.WithFinder(query.NewFinder(finderOpts...)),
		httpapi.WithHealthCheck(health),
	}
	if collector != nil {
		collector.WatchStore(st)
		apiOpts = append(apiOpts, httpapi.WithObserver(collector), httpapi.WithMetricsHandler(collector.Handler()))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpapi.New(st, apiOpts...).Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-serveErr:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		logger.Error("server shutdown", zap.Error(serr))
	}
	if werr := writer.Close(shutdownCtx); werr != nil {
		logger.Error("flush pending state", zap.Error(werr))
	}
	logger.Info("server stopped")

	return err
}
