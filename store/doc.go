// Package store is the graph state engine: the single owner of the canonical
// node and edge collections, the undo/redo history and the named snapshots.
//
// Intents:
//
//	AddNode(label)                     history, blank label is a no-op
//	DeleteNode(id)                     history always, cascades to touching edges
//	RenameNode(id, label)              history always
//	AddEdge(source, target, weight)    history unless the ordered pair exists
//	DeleteEdge(id)                     history always
//	SetGraph(nodes, edges)             history
//	ApplyNodeChanges / ApplyEdgeChanges  no history (move, resize, select)
//	Undo / Redo                        move between past, present and future
//	SaveSnapshot / DeleteSnapshot      no history
//	LoadSnapshot(id)                   history, unknown id is a no-op
//
// Every intent is total. Malformed input degrades to a no-op rather than an
// error, so the rendering layer can fire intents without pre-validation.
//
// History:
//
// Any recorded mutation pushes a copy of the pre-mutation graph onto past and
// clears future. Undo and Redo only transfer graphs between past, the
// canonical state and future. WithHistoryLimit bounds the depth of past.
//
// Isolation:
//
// Every value crossing the API boundary is copied. Nothing a caller receives
// aliases canonical state, history entries or snapshots, and nothing a caller
// passes in is retained.
//
// Persistence:
//
// After each applied intent the store hands the full persisted state (nodes,
// edges, named snapshots) to its persist.Sink. Restore loads the state back
// from a persist.Gateway at startup; a missing or corrupt payload starts an
// empty store.
//
// Concurrency:
//
// A Store is safe for concurrent use. Intents are serialized by a mutex and
// readers never observe a half-applied mutation.
package store
