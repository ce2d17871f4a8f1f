// Package bfs provides breadth-first shortest-path search over a
// core.AdjacencyIndex, minimizing the number of edges traversed.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Stop the instant the end node is discovered and rebuild the route from
//     parent links (core.TracePath).
//   - Return a *core.Path whose NodeIDs run start..end inclusive and whose
//     EdgeIDs hold the traversed edges.
//   - Edge weights are ignored entirely; use package dijkstra for cost.
//   - Directed only: an edge A→B is followed from A, never from B.
//
// Determinism
//
//	Neighbors are expanded in the order core.BuildAdjacency produced them
//	(edge collection order), so among several minimum-hop routes the one
//	whose edges were added first wins.
//
// Complexity (V = indexed nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, visited set, parent maps)
//
// Usage
//
//	idx := core.BuildAdjacency(nodes, edges)
//	path, err := bfs.ShortestPath(idx, "A", "B")
//	switch {
//	case errors.Is(err, core.ErrNoPath):
//	    // unreachable
//	case err != nil:
//	    // ErrNilIndex
//	}
//
// Options
//
//   - WithOnDiscover(fn): hook when a node is first discovered.
//   - WithOnDequeue(fn):  hook immediately before a node is expanded.
//
// Errors
//
//   - ErrNilIndex     if the index pointer is nil (and start != end).
//   - core.ErrNoPath  if the end node is unreachable.
package bfs
