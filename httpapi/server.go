// SPDX-License-Identifier: MIT
// Package: graphpad/httpapi
//
// server.go - router assembly and middleware.

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/store"
)

// Server exposes a store over JSON/HTTP.
type Server struct {
	store    *store.Store
	opts     Options
	validate *validator.Validate
}

// New returns a Server for st.
func New(st *store.Store, opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Server{store: st, opts: o, validate: newValidator()}
}

// Handler builds the chi router.
//
//	GET    /healthz
//	GET    /metrics
//	GET    /api/graph
//	PUT    /api/graph
//	POST   /api/undo
//	POST   /api/redo
//	POST   /api/nodes
//	POST   /api/nodes/changes
//	PATCH  /api/nodes/{nodeID}
//	DELETE /api/nodes/{nodeID}
//	POST   /api/edges
//	POST   /api/edges/changes
//	DELETE /api/edges/{edgeID}
//	GET    /api/snapshots
//	POST   /api/snapshots
//	GET    /api/snapshots/{snapshotID}
//	POST   /api/snapshots/{snapshotID}/load
//	DELETE /api/snapshots/{snapshotID}
//	GET    /api/search?q=
//	GET    /api/path?start=&end=&algorithm=
//	GET    /api/presets
//	POST   /api/presets/generate
//	POST   /api/presets/{presetID}/load
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	if len(s.opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.health)
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.opts.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/graph", s.getGraph)
		r.Put("/graph", s.setGraph)
		r.Post("/undo", s.undo)
		r.Post("/redo", s.redo)

		r.Route("/nodes", func(r chi.Router) {
			r.Post("/", s.addNode)
			r.Post("/changes", s.nodeChanges)
			r.Patch("/{nodeID}", s.renameNode)
			r.Delete("/{nodeID}", s.deleteNode)
		})

		r.Route("/edges", func(r chi.Router) {
			r.Post("/", s.addEdge)
			r.Post("/changes", s.edgeChanges)
			r.Delete("/{edgeID}", s.deleteEdge)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.listSnapshots)
			r.Post("/", s.saveSnapshot)
			r.Get("/{snapshotID}", s.getSnapshot)
			r.Post("/{snapshotID}/load", s.loadSnapshot)
			r.Delete("/{snapshotID}", s.deleteSnapshot)
		})

		r.Get("/search", s.search)
		r.Get("/path", s.findPath)

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", s.listPresets)
			r.Post("/generate", s.generatePreset)
			r.Post("/{presetID}/load", s.loadPreset)
		})
	})

	return r
}

// requestLogger logs one line per request and reports it to the observer,
// keyed by the matched route pattern rather than the raw path.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		elapsed := time.Since(start)

		s.opts.Logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		if s.opts.Observer != nil {
			s.opts.Observer.ObserveHTTP(r.Method, route, status, elapsed)
		}
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.opts.Health != nil {
		if err := s.opts.Health(r.Context()); err != nil {
			s.opts.Logger.Warn("health check failed", zap.Error(err))
			s.respondError(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
