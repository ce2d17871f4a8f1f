// Package query answers read-only questions about a graph snapshot: which
// nodes match a search term, and what the shortest path between two nodes is
// under a chosen cost model.
//
// Path search builds a fresh core.AdjacencyIndex from the snapshot and runs
// bfs.ShortestPath (fewest edges) or dijkstra.ShortestPath (least total
// weight). Missing endpoints and unknown algorithms are rejected before any
// work; an unreachable end is a successful query whose Result has Found=false.
//
// Every query is timed and reported to an optional Recorder, which is how the
// metrics package exports search and path-find histograms.
package query
