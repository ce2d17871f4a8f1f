// SPDX-License-Identifier: MIT
// Package: graphpad/store
//
// store.go - Store type, construction, restore and the graph mutations.
//
// Design contract:
//   - Every exported method holds the mutex for its whole duration, so no
//     reader ever observes a half-applied mutation.
//   - Mutations are total: unknown IDs and blank labels degrade to no-ops.
//   - Every mutation except undo/redo and the positional/selection deltas
//     records the pre-mutation snapshot in history and clears the redo branch.
//   - After an applied intent the full state is handed to the Sink while the
//     lock is still held, so sinks observe states in mutation order.

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/persist"
)

// Store owns the canonical nodes and edges, the undo/redo history and the
// named snapshots. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	nodes     []core.Node
	edges     []core.Edge
	past      []core.Snapshot // most recent last
	future    []core.Snapshot // most recent last
	snapshots []core.NamedSnapshot

	opts Options
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{
		nodes:     []core.Node{},
		edges:     []core.Edge{},
		snapshots: []core.NamedSnapshot{},
		opts:      cfg,
	}
}

// Restore replaces the graph and the named snapshots with the state stored in
// gw and clears history. Nothing is submitted to the sink.
//
// A missing or corrupt payload leaves the store empty and is not an error;
// only gateway I/O failures are returned.
func (s *Store) Restore(ctx context.Context, gw persist.Gateway) error {
	st, err := gw.Load(ctx)
	switch {
	case errors.Is(err, persist.ErrNotFound):
		s.opts.Logger.Info("no persisted state, starting empty")
		st = persist.State{}
	case errors.Is(err, persist.ErrCorruptState):
		s.opts.Logger.Warn("persisted state rejected, starting empty", zap.Error(err))
		st = persist.State{}
	case err != nil:
		return fmt.Errorf("store: restore: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = core.CloneNodes(st.Nodes)
	s.edges = core.CloneEdges(st.Edges)
	s.snapshots = make([]core.NamedSnapshot, 0, len(st.SavedSnapshots))
	for _, ns := range st.SavedSnapshots {
		s.snapshots = append(s.snapshots, ns.Clone())
	}
	s.past, s.future = nil, nil

	s.opts.Logger.Info("state restored",
		zap.Int("nodes", len(s.nodes)),
		zap.Int("edges", len(s.edges)),
		zap.Int("snapshots", len(s.snapshots)),
	)

	return nil
}

// AddNode appends a node labeled with the trimmed label at the configured
// initial placement. A blank label is a no-op and reports false.
func (s *Store) AddNode(label string) (core.Node, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return core.Node{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	n := core.Node{
		ID:       s.opts.IDGen(),
		Label:    label,
		Position: s.opts.Placement(),
	}
	s.nodes = append(s.nodes, n)
	s.commit("add_node", zap.String("node_id", n.ID))

	return n, true
}

// DeleteNode removes the node and every edge whose source or target it is.
// History is recorded even when no such node exists.
func (s *Store) DeleteNode(nodeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	s.nodes = slices.DeleteFunc(s.nodes, func(n core.Node) bool { return n.ID == nodeID })
	s.edges = slices.DeleteFunc(s.edges, func(e core.Edge) bool {
		return e.SourceID == nodeID || e.TargetID == nodeID
	})
	s.commit("delete_node", zap.String("node_id", nodeID))
}

// RenameNode replaces the label of the node if it exists. History is recorded
// either way. Labels are stored verbatim; callers reject blank ones.
func (s *Store) RenameNode(nodeID, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	if i := s.nodeIndex(nodeID); i >= 0 {
		s.nodes[i].Label = label
	}
	s.commit("rename_node", zap.String("node_id", nodeID))
}

// AddEdge connects sourceID to targetID. An edge for the same ordered pair
// already existing makes this a no-op that records no history and reports
// false. The weight falls back to core.DefaultWeight when it is not a finite
// positive number; the label is "<source label> → <target label>".
// Self-loops and unknown endpoints are accepted.
func (s *Store) AddEdge(sourceID, targetID string, weight float64) (core.Edge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasEdge(sourceID, targetID) {
		return core.Edge{}, false
	}

	s.pushHistory()
	e := core.Edge{
		ID:       s.opts.IDGen(),
		SourceID: sourceID,
		TargetID: targetID,
		Weight:   core.NormalizeWeight(weight),
		Label:    core.EdgeLabel(s.node(sourceID), s.node(targetID)),
	}
	s.edges = append(s.edges, e)
	s.commit("add_edge", zap.String("edge_id", e.ID))

	return e, true
}

// DeleteEdge removes the edge if present. History is recorded either way.
func (s *Store) DeleteEdge(edgeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	s.edges = slices.DeleteFunc(s.edges, func(e core.Edge) bool { return e.ID == edgeID })
	s.commit("delete_edge", zap.String("edge_id", edgeID))
}

// SetGraph replaces the canonical nodes and edges wholesale with copies of the
// arguments. Edge labels and weights are kept as given.
func (s *Store) SetGraph(nodes []core.Node, edges []core.Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	s.nodes = core.CloneNodes(nodes)
	s.edges = core.CloneEdges(edges)
	s.commit("set_graph", zap.Int("nodes", len(s.nodes)), zap.Int("edges", len(s.edges)))
}

// commit logs the applied intent and hands the new state to the sink.
// Callers hold the write lock.
func (s *Store) commit(op string, fields ...zap.Field) {
	s.opts.Logger.Debug("intent applied", append(fields,
		zap.String("op", op),
		zap.Int("past", len(s.past)),
		zap.Int("future", len(s.future)),
	)...)
	s.opts.Sink.Submit(s.state())
}

// state deep-copies the persisted part of the store. Callers hold a lock.
func (s *Store) state() persist.State {
	st := persist.State{
		Nodes:          core.CloneNodes(s.nodes),
		Edges:          core.CloneEdges(s.edges),
		SavedSnapshots: make([]core.NamedSnapshot, 0, len(s.snapshots)),
	}
	for _, ns := range s.snapshots {
		st.SavedSnapshots = append(st.SavedSnapshots, ns.Clone())
	}

	return st
}

func (s *Store) nodeIndex(id string) int {
	return slices.IndexFunc(s.nodes, func(n core.Node) bool { return n.ID == id })
}

// node returns a pointer into s.nodes, nil when absent. Callers hold a lock
// and must not retain the pointer past it.
func (s *Store) node(id string) *core.Node {
	if i := s.nodeIndex(id); i >= 0 {
		return &s.nodes[i]
	}

	return nil
}

func (s *Store) hasEdge(sourceID, targetID string) bool {
	return slices.ContainsFunc(s.edges, func(e core.Edge) bool {
		return e.SourceID == sourceID && e.TargetID == targetID
	})
}
