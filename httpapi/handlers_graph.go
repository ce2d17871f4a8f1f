// SPDX-License-Identifier: MIT
// Package: graphpad/httpapi
//
// handlers_graph.go - graph, history, node and edge intents.

package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/graphpad/core"
)

func (s *Server) graph() graphResponse {
	g := s.store.Graph()
	st := s.store.Stats()

	return graphResponse{
		Nodes:   g.Nodes,
		Edges:   g.Edges,
		Stats:   st,
		CanUndo: st.Past > 0,
		CanRedo: st.Future > 0,
	}
}

func (s *Server) getGraph(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, s.graph())
}

// setGraph replaces the whole graph. Labels and weights are kept verbatim;
// the structure must satisfy checkGraph.
func (s *Server) setGraph(w http.ResponseWriter, r *http.Request) {
	var req setGraphRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := checkGraph(req.Nodes, req.Edges); err != nil {
		s.respondError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}
	s.store.SetGraph(req.Nodes, req.Edges)
	s.respondJSON(w, http.StatusOK, s.graph())
}

// checkGraph enforces what the store assumes of a whole graph: non-blank
// unique node and edge ids, edges between two distinct known nodes, and at
// most one edge per ordered (source, target) pair.
func checkGraph(nodes []core.Node, edges []core.Edge) error {
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if strings.TrimSpace(n.ID) == "" {
			return errors.New("every node needs an id")
		}
		if known[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		known[n.ID] = true
	}

	type pair struct{ src, tgt string }
	edgeIDs := make(map[string]bool, len(edges))
	pairs := make(map[pair]bool, len(edges))
	for _, e := range edges {
		switch {
		case strings.TrimSpace(e.ID) == "":
			return errors.New("every edge needs an id")
		case edgeIDs[e.ID]:
			return fmt.Errorf("duplicate edge id %q", e.ID)
		case !known[e.SourceID] || !known[e.TargetID]:
			return fmt.Errorf("edge %q references an unknown node", e.ID)
		case e.SourceID == e.TargetID:
			return fmt.Errorf("edge %q is a self-loop", e.ID)
		case pairs[pair{e.SourceID, e.TargetID}]:
			return fmt.Errorf("edge %q duplicates %s → %s", e.ID, e.SourceID, e.TargetID)
		}
		edgeIDs[e.ID] = true
		pairs[pair{e.SourceID, e.TargetID}] = true
	}

	return nil
}

func (s *Server) undo(w http.ResponseWriter, _ *http.Request) {
	changed := s.store.Undo()
	s.respondJSON(w, http.StatusOK, historyResponse{Changed: changed, graphResponse: s.graph()})
}

func (s *Server) redo(w http.ResponseWriter, _ *http.Request) {
	changed := s.store.Redo()
	s.respondJSON(w, http.StatusOK, historyResponse{Changed: changed, graphResponse: s.graph()})
}

func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	var req addNodeRequest
	if !s.decode(w, r, &req) {
		return
	}
	n, ok := s.store.AddNode(req.Label)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "validation error: label is required")
		return
	}
	s.respondJSON(w, http.StatusCreated, n)
}

func (s *Server) renameNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "nodeID")
	var req renameNodeRequest
	if !s.decode(w, r, &req) {
		return
	}
	label := strings.TrimSpace(req.Label)
	if label == "" {
		s.respondError(w, http.StatusBadRequest, "validation error: label is required")
		return
	}
	if _, ok := s.store.Node(id); !ok {
		s.respondError(w, http.StatusNotFound, "node not found")
		return
	}
	s.store.RenameNode(id, label)
	n, _ := s.store.Node(id)
	s.respondJSON(w, http.StatusOK, n)
}

// deleteNode is idempotent: an unknown id still answers 204.
func (s *Server) deleteNode(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteNode(chi.URLParam(r, "nodeID"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) nodeChanges(w http.ResponseWriter, r *http.Request) {
	var req nodeChangesRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respondJSON(w, http.StatusOK, appliedResponse{Applied: s.store.ApplyNodeChanges(req.Changes)})
}

// addEdge connects two existing, distinct nodes. A duplicate ordered pair
// answers 409.
func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	var req addEdgeRequest
	if !s.decode(w, r, &req) {
		return
	}
	for _, id := range []string{req.Source, req.Target} {
		if _, ok := s.store.Node(id); !ok {
			s.respondError(w, http.StatusNotFound, "node not found: "+id)
			return
		}
	}
	var weight float64
	if req.Weight != nil {
		weight = *req.Weight
	}
	e, ok := s.store.AddEdge(req.Source, req.Target, weight)
	if !ok {
		s.respondError(w, http.StatusConflict, "edge already exists")
		return
	}
	s.respondJSON(w, http.StatusCreated, e)
}

func (s *Server) deleteEdge(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteEdge(chi.URLParam(r, "edgeID"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) edgeChanges(w http.ResponseWriter, r *http.Request) {
	var req edgeChangesRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.respondJSON(w, http.StatusOK, appliedResponse{Applied: s.store.ApplyEdgeChanges(req.Changes)})
}
