// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Structural copies of snapshots.
// Determinism:
//   - Element order is preserved exactly.
// Notes:
//   - Node and Edge hold only value fields, so copying the slices is a deep copy.
//   - A nil collection clones to an empty, non-nil slice (stable JSON "[]").

package core

import "slices"

// Clone returns a copy of s that shares no backing arrays with it. Mutating
// the copy never affects s, and vice versa.
//
// Complexity: O(V + E).
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Nodes: cloneSlice(s.Nodes),
		Edges: cloneSlice(s.Edges),
	}
}

// Clone returns a structurally independent copy of the named snapshot.
func (n NamedSnapshot) Clone() NamedSnapshot {
	out := n
	out.Snapshot = n.Snapshot.Clone()

	return out
}

// CloneNodes copies a node collection.
func CloneNodes(nodes []Node) []Node { return cloneSlice(nodes) }

// CloneEdges copies an edge collection.
func CloneEdges(edges []Edge) []Edge { return cloneSlice(edges) }

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}

	return slices.Clone(in)
}
