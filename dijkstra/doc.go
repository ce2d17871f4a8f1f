// Package dijkstra provides a weighted shortest-path search between two nodes
// of a core.AdjacencyIndex, minimizing the sum of traversed edge weights.
//
// Overview:
//
//   - ShortestPath settles nodes in increasing distance from the start using a
//     min-heap, relaxing outgoing edges as it goes.
//   - The search stops as soon as the end node is settled; its distance is
//     final at that point.
//   - The route is rebuilt from parent links (core.TracePath), exactly as in
//     package bfs, so both searches return the same *core.Path shape.
//
// Contract:
//
//   - All weights must be strictly positive. Edges created through the store
//     always are; zero or negative weights are out of contract and not checked.
//   - startID == endID returns core.TrivialPath(startID) unconditionally.
//   - Every indexed node starts at +∞; the start starts at 0 even if it is not
//     indexed (it then simply has no neighbors).
//
// Tie-break:
//
//	Heap entries are ordered by (distance, push sequence). Among nodes with equal
//	tentative distance the one recorded first is settled first, and a tentative
//	distance is only replaced by a strictly smaller one. Of several equal-cost
//	routes, the one discovered first is returned.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilIndex:    the index pointer is nil.
//   - core.ErrNoPath: the end node never received a finite distance.
//
// Thread safety:
//
//   - ShortestPath only reads the index; an index may be shared by concurrent
//     searches as long as nobody mutates it (BuildAdjacency results never are).
package dijkstra
