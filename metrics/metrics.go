// SPDX-License-Identifier: MIT
// Package metrics exports graphpad counters, histograms and gauges to
// Prometheus from a private registry.
//
// Collector implements query.Recorder, provides the persistence hook for
// persist.WithOnSave and the HTTP observation used by the httpapi middleware,
// and publishes store sizes as gauge functions read at scrape time.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsSource reports current store sizes. *store.Store satisfies it.
type StatsSource interface {
	Counts() (nodes, edges, past, future, snapshots int)
}

// Collector holds all metrics of one graphpad process.
type Collector struct {
	namespace string
	registry  *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	PathFinds    *prometheus.CounterVec
	PathDuration *prometheus.HistogramVec
	Searches     prometheus.Counter
	SearchHits   prometheus.Histogram

	PersistSaves *prometheus.CounterVec
}

// NewCollector creates and registers every metric under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		PathFinds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_finds_total",
				Help:      "Total number of shortest-path searches by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		PathDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_find_duration_seconds",
				Help:      "Shortest-path search duration in seconds, index construction included",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"algorithm"},
		),
		Searches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "node_searches_total",
				Help:      "Total number of node label searches",
			},
		),
		SearchHits: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "node_search_matches",
				Help:      "Number of nodes matched per label search",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		PersistSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persist_saves_total",
				Help:      "Total number of state saves by outcome",
			},
			[]string{"outcome"},
		),
	}

	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.PathFinds,
		c.PathDuration,
		c.Searches,
		c.SearchHits,
		c.PersistSaves,
	)

	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObservePathFind records one path search.
func (c *Collector) ObservePathFind(algorithm string, found bool, elapsed time.Duration) {
	outcome := "no_path"
	if found {
		outcome = "found"
	}
	c.PathFinds.WithLabelValues(algorithm, outcome).Inc()
	c.PathDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// ObserveSearch records one label search.
func (c *Collector) ObserveSearch(matches int) {
	c.Searches.Inc()
	c.SearchHits.Observe(float64(matches))
}

// ObserveSave records one persistence attempt. Pass it to persist.WithOnSave.
func (c *Collector) ObserveSave(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.PersistSaves.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// WatchStore registers gauges reading src at scrape time.
func (c *Collector) WatchStore(src StatsSource) {
	gauge := func(name, help string, pick func(n, e, p, f, s int) int) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Namespace: c.namespace, Name: name, Help: help},
			func() float64 { return float64(pick(src.Counts())) },
		)
	}

	c.registry.MustRegister(
		gauge("graph_nodes", "Current number of nodes", func(n, _, _, _, _ int) int { return n }),
		gauge("graph_edges", "Current number of edges", func(_, e, _, _, _ int) int { return e }),
		gauge("history_past_depth", "Current number of undoable steps", func(_, _, p, _, _ int) int { return p }),
		gauge("history_future_depth", "Current number of redoable steps", func(_, _, _, f, _ int) int { return f }),
		gauge("saved_snapshots", "Current number of named snapshots", func(_, _, _, _, s int) int { return s }),
	)
}
