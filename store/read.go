// SPDX-License-Identifier: MIT
// Package: graphpad/store
//
// read.go - read accessors. Everything returned is a copy.

package store

import (
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/persist"
)

// Stats summarizes collection sizes and history depths.
type Stats struct {
	Nodes     int `json:"nodes"`
	Edges     int `json:"edges"`
	Past      int `json:"past"`
	Future    int `json:"future"`
	Snapshots int `json:"snapshots"`
}

// Nodes returns the canonical nodes in insertion order.
func (s *Store) Nodes() []core.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return core.CloneNodes(s.nodes)
}

// Edges returns the canonical edges in insertion order.
func (s *Store) Edges() []core.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return core.CloneEdges(s.edges)
}

// Graph returns the nodes and edges as one consistent snapshot.
func (s *Store) Graph() core.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// Node returns a copy of the node with the given id.
func (s *Store) Node(id string) (core.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n := s.node(id); n != nil {
		return *n, true
	}

	return core.Node{}, false
}

// State returns the persisted part of the store.
func (s *Store) State() persist.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state()
}

// PastLen is the number of undoable steps.
func (s *Store) PastLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.past)
}

// FutureLen is the number of redoable steps.
func (s *Store) FutureLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.future)
}

// CanUndo reports whether Undo would change anything.
func (s *Store) CanUndo() bool { return s.PastLen() > 0 }

// CanRedo reports whether Redo would change anything.
func (s *Store) CanRedo() bool { return s.FutureLen() > 0 }

// Stats returns collection sizes and history depths read under one lock.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Nodes:     len(s.nodes),
		Edges:     len(s.edges),
		Past:      len(s.past),
		Future:    len(s.future),
		Snapshots: len(s.snapshots),
	}
}

// Counts returns the same figures as Stats as plain values.
func (s *Store) Counts() (nodes, edges, past, future, snapshots int) {
	st := s.Stats()

	return st.Nodes, st.Edges, st.Past, st.Future, st.Snapshots
}
