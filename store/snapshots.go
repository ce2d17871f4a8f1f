// SPDX-License-Identifier: MIT
// Package: graphpad/store
//
// snapshots.go - named snapshots. Saving and deleting one is outside undo/redo;
// loading one is an ordinary undoable mutation.

package store

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/core"
)

// SaveSnapshot captures the current graph under name. A blank name becomes
// "Snapshot N", N being one more than the highest N among existing default
// names (or the snapshot count, whichever is larger).
func (s *Store) SaveSnapshot(name string) core.NamedSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("%s%d", defaultSnapshotPrefix, s.nextSnapshotNumber())
	}
	ns := core.NamedSnapshot{
		Snapshot:  s.snapshot(),
		ID:        s.opts.IDGen(),
		Name:      name,
		CreatedAt: s.opts.Clock(),
	}
	s.snapshots = append(s.snapshots, ns)
	s.commit("save_snapshot", zap.String("snapshot_id", ns.ID), zap.String("name", name))

	return ns.Clone()
}

// LoadSnapshot installs a copy of the snapshot's graph, recording history.
// An unknown id is a no-op and reports false.
func (s *Store) LoadSnapshot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.snapshotIndex(id)
	if i < 0 {
		return false
	}
	s.pushHistory()
	s.install(s.snapshots[i].Snapshot)
	s.commit("load_snapshot", zap.String("snapshot_id", id))

	return true
}

// DeleteSnapshot removes the snapshot. It reports false for an unknown id.
func (s *Store) DeleteSnapshot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.snapshotIndex(id)
	if i < 0 {
		return false
	}
	s.snapshots = slices.Delete(s.snapshots, i, i+1)
	s.commit("delete_snapshot", zap.String("snapshot_id", id))

	return true
}

// Snapshots returns copies of the named snapshots, newest first. Snapshots
// with equal timestamps are ordered most recently saved first.
func (s *Store) Snapshots() []core.NamedSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.NamedSnapshot, 0, len(s.snapshots))
	for i := len(s.snapshots) - 1; i >= 0; i-- {
		out = append(out, s.snapshots[i].Clone())
	}
	slices.SortStableFunc(out, func(a, b core.NamedSnapshot) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}

// Snapshot returns a copy of the named snapshot with the given id.
func (s *Store) Snapshot(id string) (core.NamedSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.snapshotIndex(id); i >= 0 {
		return s.snapshots[i].Clone(), true
	}

	return core.NamedSnapshot{}, false
}

const defaultSnapshotPrefix = "Snapshot "

// nextSnapshotNumber never reuses a default name still held by a snapshot.
func (s *Store) nextSnapshotNumber() int {
	next := len(s.snapshots) + 1
	for _, ns := range s.snapshots {
		n, err := strconv.Atoi(strings.TrimPrefix(ns.Name, defaultSnapshotPrefix))
		if err == nil && strings.HasPrefix(ns.Name, defaultSnapshotPrefix) && n >= next {
			next = n + 1
		}
	}

	return next
}

func (s *Store) snapshotIndex(id string) int {
	return slices.IndexFunc(s.snapshots, func(ns core.NamedSnapshot) bool { return ns.ID == id })
}
