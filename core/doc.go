// Package core provides the value types of a graphpad graph and the pure
// helpers shared by the store and the pathfinding packages.
//
// A graph is a pair of ordered collections:
//
//   - []Node: labeled vertices, unique by ID, carrying a Position owned by the
//     rendering layer.
//   - []Edge: directed, weighted connections SourceID→TargetID, unique by ID.
//
// Nothing in this package mutates shared state. The store (package store) is
// the only writer of canonical collections; everything here receives values
// and returns values.
//
// Boundary accessors:
//
//	LabelOf(n)          // n.Label, or n.ID when the label is empty
//	WeightOf(e)         // e.Weight, or DefaultWeight when unset/NaN/±Inf
//	NormalizeWeight(w)  // weight stored on a new edge (finite, > 0, else 1)
//	EdgeLabel(src, dst) // "<src label> → <dst label>"
//
// Cloning:
//
//	Snapshot.Clone()      // O(V+E), no shared backing arrays
//	NamedSnapshot.Clone()
//
// Adjacency:
//
//	BuildAdjacency(nodes, edges) *AdjacencyIndex // O(V+E), directed only
//	idx.Neighbors(id) []Neighbor                 // ordered by edge collection order
//	idx.IDs() []string                           // nodes first, then dangling sources
//
// Paths:
//
//	TrivialPath(id)                              // {[id], []}
//	TracePath(start, end, parentNode, parentEdge) // parent-link reconstruction
//
// Errors:
//
//	ErrNoPath – the end node is unreachable from the start node.
package core
