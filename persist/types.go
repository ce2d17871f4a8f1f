// SPDX-License-Identifier: MIT
// Package: graphpad/persist
//
// types.go - persisted state shape, the Gateway and Sink contracts, sentinel errors.

package persist

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphpad/core"
)

// DefaultKey is the storage key the graph state lives under.
const DefaultKey = "graph-state-v1"

// Sentinel errors returned by gateways and Decode.
var (
	// ErrNotFound indicates that nothing has been saved under the key yet.
	ErrNotFound = errors.New("persist: state not found")

	// ErrCorruptState indicates that a stored payload failed the schema check.
	// Callers start from an empty graph instead of adopting any part of it.
	ErrCorruptState = errors.New("persist: corrupt persisted state")
)

// State is the serialized form of a store: the canonical graph plus the named
// snapshot list. History stacks are never persisted.
type State struct {
	Nodes          []core.Node          `json:"nodes"`
	Edges          []core.Edge          `json:"edges"`
	SavedSnapshots []core.NamedSnapshot `json:"savedSnapshots"`
}

// Empty reports whether the state carries no nodes, edges or snapshots.
func (s State) Empty() bool {
	return len(s.Nodes) == 0 && len(s.Edges) == 0 && len(s.SavedSnapshots) == 0
}

// normalized replaces nil collections with empty ones so that encoded payloads
// always carry arrays.
func (s State) normalized() State {
	out := State{
		Nodes:          core.CloneNodes(s.Nodes),
		Edges:          core.CloneEdges(s.Edges),
		SavedSnapshots: make([]core.NamedSnapshot, 0, len(s.SavedSnapshots)),
	}
	for _, ns := range s.SavedSnapshots {
		out.SavedSnapshots = append(out.SavedSnapshots, ns.Clone())
	}

	return out
}

// Gateway is the durable load/save capability behind a store.
type Gateway interface {
	// Save replaces the stored state.
	Save(ctx context.Context, st State) error

	// Load returns the stored state, ErrNotFound when nothing was saved, or
	// ErrCorruptState when the payload fails the schema check.
	Load(ctx context.Context) (State, error)
}

// Sink accepts states to persist without blocking the caller. Failures are
// the sink's own concern.
type Sink interface {
	Submit(st State)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(st State)

// Submit calls f(st).
func (f SinkFunc) Submit(st State) { f(st) }
