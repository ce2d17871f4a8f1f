// Package httpapi exposes a store.Store as a JSON API on a chi router.
//
// Every mutation intent and every query of the graph engine has one endpoint
// (see Server.Handler for the route table). Mutation endpoints answer with the
// resulting graph, its stats and the undo/redo availability, or with the
// created record (201) when an intent creates one.
//
// Status codes:
//
//   - 400: malformed JSON, unknown fields, failed validation, a path query
//     without both endpoints, an unknown algorithm or generator kind.
//   - 404: unknown node (rename, edge endpoints), snapshot or preset.
//   - 409: an edge for the same ordered pair already exists.
//   - 200 with found=false: a path query whose end is unreachable.
//
// Errors are returned as {"error": "..."}.
//
// Middleware: request IDs, real client IP, panic recovery, one zap line per
// request, optional CORS. A RequestObserver (metrics.Collector) receives the
// method, matched route pattern, status and latency of every request.
package httpapi
