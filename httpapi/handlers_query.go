// SPDX-License-Identifier: MIT
// Package: graphpad/httpapi
//
// handlers_query.go - snapshots, search, path finding and presets.

package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/presets"
	"github.com/katalvlaran/graphpad/query"
)

func (s *Server) listSnapshots(w http.ResponseWriter, _ *http.Request) {
	list := s.store.Snapshots()
	out := make([]snapshotSummary, 0, len(list))
	for _, ns := range list {
		out = append(out, summarize(ns))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) saveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req saveSnapshotRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respondJSON(w, http.StatusCreated, summarize(s.store.SaveSnapshot(req.Name)))
}

func (s *Server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	ns, ok := s.store.Snapshot(chi.URLParam(r, "snapshotID"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	s.respondJSON(w, http.StatusOK, ns)
}

func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) {
	if !s.store.LoadSnapshot(chi.URLParam(r, "snapshotID")) {
		s.respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	s.respondJSON(w, http.StatusOK, s.graph())
}

func (s *Server) deleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteSnapshot(chi.URLParam(r, "snapshotID")) {
		s.respondError(w, http.StatusNotFound, "snapshot not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	s.respondJSON(w, http.StatusOK, searchResponse{
		Term: term,
		IDs:  s.opts.Finder.Search(s.store.Nodes(), term),
	})
}

// findPath answers 200 with found=false when the end is unreachable; only
// malformed queries are client errors.
func (s *Server) findPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	alg, err := query.ParseAlgorithm(q.Get("algorithm"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.opts.Finder.FindPath(s.store.Graph(), q.Get("start"), q.Get("end"), alg)
	switch {
	case errors.Is(err, query.ErrMissingEndpoints), errors.Is(err, query.ErrUnknownAlgorithm):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.opts.Logger.Error("path search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "path search failed")
	default:
		s.respondJSON(w, http.StatusOK, res)
	}
}

func (s *Server) listPresets(w http.ResponseWriter, _ *http.Request) {
	list := presets.Examples()
	out := make([]presetSummary, 0, len(list))
	for _, p := range list {
		out = append(out, presetSummary{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) loadPreset(w http.ResponseWriter, r *http.Request) {
	p, err := presets.Lookup(chi.URLParam(r, "presetID"))
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.store.SetGraph(p.Graph.Nodes, p.Graph.Edges)
	s.respondJSON(w, http.StatusOK, s.graph())
}

func (s *Server) generatePreset(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, &req) {
		return
	}
	var opts []presets.Option
	if req.Seed != nil {
		opts = append(opts, presets.WithSeed(*req.Seed))
	}
	if req.WeightMin > 0 {
		opts = append(opts, presets.WithUniformWeights(req.WeightMin, req.WeightMax))
	}
	g, err := presets.Generate(presets.Kind(req.Kind), req.N, req.M, opts...)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.SetGraph(g.Nodes, g.Edges)
	s.respondJSON(w, http.StatusOK, s.graph())
}
