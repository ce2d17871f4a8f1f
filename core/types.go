// SPDX-License-Identifier: MIT
// Package core defines the canonical Node, Edge and Snapshot records of a
// graphpad graph, together with the pure helpers every other package relies on:
// label and weight extraction, structural cloning, adjacency indexing and path
// reconstruction.
//
// This file declares Position, Dimensions, Node, Edge, Snapshot, NamedSnapshot,
// Path, and the sentinel errors.
//
// Errors:
//
//	ErrNoPath - no route exists between the requested endpoints.
package core

import (
	"errors"
	"time"
)

// Sentinel errors shared by the pathfinding packages.
var (
	// ErrNoPath indicates that the end node is unreachable from the start node.
	// It is a negative result, not a failure of the search itself.
	ErrNoPath = errors.New("core: no path between endpoints")
)

// DefaultWeight is the cost assigned to an edge whose weight is unset or unusable.
const DefaultWeight float64 = 1

// Position is the placement of a node on the drawing surface. The engine stores
// it but never interprets it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimensions is the measured size of a rendered node, reported back by the
// rendering layer. Zero means "not measured yet".
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is a labeled vertex. ID is its identity; everything else is mutable.
type Node struct {
	// ID uniquely identifies this Node within its graph.
	ID string `json:"id"`

	// Label is the display text. Empty means "display the ID" (see LabelOf).
	Label string `json:"label,omitempty"`

	// Position is owned by the rendering layer.
	Position Position `json:"position"`

	// Dimensions and Selected are transient view state.
	Dimensions Dimensions `json:"dimensions,omitempty"`
	Selected   bool       `json:"selected,omitempty"`
}

// Edge is a directed, weighted connection from SourceID to TargetID.
//
// At most one Edge exists per ordered (SourceID, TargetID) pair inside a Store.
type Edge struct {
	// ID uniquely identifies this Edge within its graph.
	ID string `json:"id"`

	// SourceID is the tail node ID.
	SourceID string `json:"source"`

	// TargetID is the head node ID.
	TargetID string `json:"target"`

	// Weight is the traversal cost; read it through WeightOf.
	Weight float64 `json:"weight,omitempty"`

	// Label is derived from the endpoint labels when the edge is created,
	// and kept verbatim when supplied by a caller.
	Label string `json:"label,omitempty"`

	// Selected is transient view state.
	Selected bool `json:"selected,omitempty"`
}

// Snapshot is a point-in-time copy of the node and edge collections.
// It is used both for undo/redo history entries and for named snapshots.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NamedSnapshot is a user-labeled Snapshot. It is never mutated after creation.
type NamedSnapshot struct {
	Snapshot

	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Path is the result of a successful shortest-path search.
//
// NodeIDs runs from start to end inclusive; EdgeIDs holds the traversed edges,
// so len(EdgeIDs) == len(NodeIDs)-1.
type Path struct {
	NodeIDs []string `json:"nodeIds"`
	EdgeIDs []string `json:"edgeIds"`
}
