// Package persist saves and restores the state of a graphpad store.
//
// What is persisted:
//
//	{"nodes": [...], "edges": [...], "savedSnapshots": [...]}
//
// under a single key (DefaultKey, "graph-state-v1"). Undo/redo history is
// session-only and never written.
//
// Components:
//
//   - Encode / Decode: the JSON codec. Decode enforces the schema check: a
//     payload is adopted only when "nodes" and "edges" are both arrays,
//     otherwise ErrCorruptState is returned and nothing is adopted. Missing
//     optional fields take their empty defaults, so older payloads without
//     "savedSnapshots" still load.
//   - Gateway: the load/save capability. SQLiteGateway (modernc.org/sqlite,
//     one kv table) is the durable implementation; MemoryGateway serves tests
//     and the in-memory storage driver.
//   - Writer: a Sink that saves in the background. Mutations hand it the
//     latest state and return immediately; a circuit breaker
//     (github.com/sony/gobreaker) sheds saves while the medium is failing.
//
// Errors:
//
//   - ErrNotFound:     nothing saved under the key yet.
//   - ErrCorruptState: the stored payload failed the schema check.
//
// Save failures never reach the mutation path: Writer logs them with zap and
// reports them to an optional hook.
package persist
