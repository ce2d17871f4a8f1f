// Package graphpad is a graph state engine: an editable directed, weighted
// graph with undo/redo, named snapshots, durable persistence and two
// shortest-path cost models.
//
// 🚀 What is graphpad?
//
//	A small service and library that brings together:
//		• Graph model: Node, Edge, Snapshot value types with boundary fallbacks
//		• Store: every mutation intent, undo/redo history, named snapshots
//		• Pathfinding: BFS (fewest edges) and Dijkstra (smallest weight sum)
//		• Queries: label search and timed path search
//		• Persistence: JSON state in SQLite behind a coalescing background writer
//		• HTTP: a chi router over every intent and query, prometheus metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	core/          value types, label/weight fallbacks, adjacency index, paths
//	bfs/           breadth-first shortest path
//	dijkstra/      heap-based weighted shortest path
//	store/         the single owner of graph state, history and snapshots
//	persist/       state codec, SQLite and memory gateways, async writer
//	query/         node search and path finding with elapsed time
//	presets/       example graphs and topology generators
//	metrics/       prometheus collector for queries, saves, requests, store size
//	config/        YAML + environment configuration with validation
//	httpapi/       JSON/HTTP surface
//	cmd/graphpad/  the server binary
//
// Quick ASCII example (the "bfs-vs-dijkstra" preset):
//
//	        B
//	   10 ↗   ↘ 10
//	    A       E
//	   1 ↘     ↗ 1
//	      C → D
//	        1
//
//	BFS(A, E)      = A → B → E        (2 hops, cost 20)
//	Dijkstra(A, E) = A → C → D → E    (3 hops, cost 3)
//
//	go run github.com/katalvlaran/graphpad/cmd/graphpad -config graphpad.yaml
package graphpad
