// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Directed adjacency index derived from node/edge collections.
// Determinism:
//   - IDs() lists known nodes in collection order, then dangling sources in
//     first-seen edge order.
//   - Each neighbor list follows edge collection order.
// Notes:
//   - The index is rebuilt per query and never mutated after BuildAdjacency returns.
//   - An edge A→B contributes only to A's list.

package core

// Neighbor is one outgoing step in an AdjacencyIndex.
type Neighbor struct {
	NeighborID string
	Weight     float64
	EdgeID     string
}

// AdjacencyIndex maps each node ID to the ordered list of its outgoing steps.
type AdjacencyIndex struct {
	order   []string
	entries map[string][]Neighbor
}

// BuildAdjacency indexes edges by their source node.
//
// Every node gets an entry, possibly empty, so a node without outgoing edges is
// still a valid search source. An edge whose source is not among nodes gets an
// entry created for it; dangling references never cause a failure. Weights are
// resolved through WeightOf.
//
// Complexity: O(V + E).
func BuildAdjacency(nodes []Node, edges []Edge) *AdjacencyIndex {
	idx := &AdjacencyIndex{
		order:   make([]string, 0, len(nodes)),
		entries: make(map[string][]Neighbor, len(nodes)),
	}
	for _, n := range nodes {
		idx.ensure(n.ID)
	}
	for _, e := range edges {
		idx.ensure(e.SourceID)
		idx.entries[e.SourceID] = append(idx.entries[e.SourceID], Neighbor{
			NeighborID: e.TargetID,
			Weight:     WeightOf(e),
			EdgeID:     e.ID,
		})
	}

	return idx
}

// ensure registers id with an empty neighbor list if it is not known yet.
func (a *AdjacencyIndex) ensure(id string) {
	if _, ok := a.entries[id]; ok {
		return
	}
	a.order = append(a.order, id)
	a.entries[id] = []Neighbor{}
}

// Has reports whether id has an entry in the index.
func (a *AdjacencyIndex) Has(id string) bool {
	_, ok := a.entries[id]
	return ok
}

// Neighbors returns the outgoing steps of id, or nil if id is unknown.
// The returned slice must be treated as read-only.
func (a *AdjacencyIndex) Neighbors(id string) []Neighbor {
	return a.entries[id]
}

// IDs returns the indexed node IDs in deterministic order.
func (a *AdjacencyIndex) IDs() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)

	return out
}

// Len returns the number of indexed node IDs.
func (a *AdjacencyIndex) Len() int { return len(a.order) }
