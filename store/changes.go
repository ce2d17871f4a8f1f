// SPDX-License-Identifier: MIT
// Package: graphpad/store
//
// changes.go - positional and selection deltas reported by the rendering
// layer. They are applied without history.

package store

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/core"
)

// ChangeKind names the field a change updates.
type ChangeKind string

const (
	// ChangePosition moves a node.
	ChangePosition ChangeKind = "position"
	// ChangeDimensions records the measured size of a node.
	ChangeDimensions ChangeKind = "dimensions"
	// ChangeSelect toggles selection of a node or edge.
	ChangeSelect ChangeKind = "select"
)

// NodeChange is one delta to a node. Only the field matching Kind is read.
type NodeChange struct {
	Kind       ChangeKind       `json:"type"`
	ID         string           `json:"id"`
	Position   *core.Position   `json:"position,omitempty"`
	Dimensions *core.Dimensions `json:"dimensions,omitempty"`
	Selected   *bool            `json:"selected,omitempty"`
}

// EdgeChange is one delta to an edge. Only ChangeSelect is supported.
type EdgeChange struct {
	Kind     ChangeKind `json:"type"`
	ID       string     `json:"id"`
	Selected *bool      `json:"selected,omitempty"`
}

// ApplyNodeChanges applies the deltas in order and returns how many took
// effect. Unknown IDs, unknown kinds and kinds missing their payload are skipped.
func (s *Store) ApplyNodeChanges(changes []NodeChange) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, c := range changes {
		i := s.nodeIndex(c.ID)
		if i < 0 {
			continue
		}
		n := &s.nodes[i]
		switch {
		case c.Kind == ChangePosition && c.Position != nil:
			n.Position = *c.Position
		case c.Kind == ChangeDimensions && c.Dimensions != nil:
			n.Dimensions = *c.Dimensions
		case c.Kind == ChangeSelect && c.Selected != nil:
			n.Selected = *c.Selected
		default:
			continue
		}
		applied++
	}
	if applied > 0 {
		s.commit("node_changes", zap.Int("applied", applied))
	}

	return applied
}

// ApplyEdgeChanges applies selection deltas in order and returns how many
// took effect.
func (s *Store) ApplyEdgeChanges(changes []EdgeChange) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, c := range changes {
		if c.Kind != ChangeSelect || c.Selected == nil {
			continue
		}
		for i := range s.edges {
			if s.edges[i].ID == c.ID {
				s.edges[i].Selected = *c.Selected
				applied++
				break
			}
		}
	}
	if applied > 0 {
		s.commit("edge_changes", zap.Int("applied", applied))
	}

	return applied
}
