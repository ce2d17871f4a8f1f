// SPDX-License-Identifier: MIT
// Package: graphpad/store
//
// history.go - undo/redo stacks.

package store

import "github.com/katalvlaran/graphpad/core"

// snapshot copies the canonical graph. Callers hold a lock.
func (s *Store) snapshot() core.Snapshot {
	return core.Snapshot{Nodes: s.nodes, Edges: s.edges}.Clone()
}

// install replaces the canonical graph with a copy of snap.
func (s *Store) install(snap core.Snapshot) {
	c := snap.Clone()
	s.nodes, s.edges = c.Nodes, c.Edges
}

// pushHistory records the current graph on past, drops the oldest entries
// beyond the history limit and clears future. Callers hold the write lock.
func (s *Store) pushHistory() {
	s.past = append(s.past, s.snapshot())
	if limit := s.opts.HistoryLimit; limit > 0 && len(s.past) > limit {
		drop := len(s.past) - limit
		clear(s.past[:drop])
		s.past = s.past[drop:]
	}
	s.future = nil
}

// Undo restores the graph preceding the last recorded mutation and makes the
// current graph redoable. It reports false when there is nothing to undo.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.past) == 0 {
		return false
	}
	prev := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append(s.future, s.snapshot())
	s.install(prev)
	s.commit("undo")

	return true
}

// Redo reapplies the most recently undone graph. It reports false when there
// is nothing to redo.
func (s *Store) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.future) == 0 {
		return false
	}
	next := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
	s.past = append(s.past, s.snapshot())
	s.install(next)
	s.commit("redo")

	return true
}
