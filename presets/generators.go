// SPDX-License-Identifier: MIT
// Package: graphpad/presets
//
// generators.go - parametric directed graphs with a ready-made layout.
//
// Contract:
//   - Every generator validates its sizes first and returns ErrTooFewVertices
//     (wrapped with method context) before doing any work.
//   - Nodes are labeled with their ID; edge IDs are "<source>-<target>" and
//     edge labels are derived exactly as store.AddEdge derives them.
//   - Node and edge order is deterministic; weights are deterministic for a
//     fixed seed and weight function.
//
// Complexity: linear in the number of emitted nodes and edges.

package presets

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphpad/core"
)

// File-local method tags and minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodGrid     = "Grid"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minGridDim       = 1
	minCompleteNodes = 1

	gridIDFmt = "%d,%d" // "r,c", fixed coordinate scheme
)

// emitter accumulates a snapshot while remembering node labels.
type emitter struct {
	cfg   config
	nodes []core.Node
	edges []core.Edge
	index map[string]int
}

func newEmitter(cfg config, nodeHint, edgeHint int) *emitter {
	return &emitter{
		cfg:   cfg,
		nodes: make([]core.Node, 0, nodeHint),
		edges: make([]core.Edge, 0, edgeHint),
		index: make(map[string]int, nodeHint),
	}
}

func (e *emitter) node(id string, x, y float64) {
	e.index[id] = len(e.nodes)
	e.nodes = append(e.nodes, core.Node{ID: id, Label: id, Position: core.Position{X: x, Y: y}})
}

func (e *emitter) edge(u, v string) {
	src, tgt := &e.nodes[e.index[u]], &e.nodes[e.index[v]]
	e.edges = append(e.edges, core.Edge{
		ID:       u + "-" + v,
		SourceID: u,
		TargetID: v,
		Weight:   e.cfg.weight(),
		Label:    core.EdgeLabel(src, tgt),
	})
}

func (e *emitter) snapshot() core.Snapshot {
	return core.Snapshot{Nodes: e.nodes, Edges: e.edges}
}

// ring places n nodes on a circle whose arc between neighbors is about the
// configured spacing, starting at 12 o'clock and going clockwise.
func (e *emitter) ring(ids []string, cx, cy, radius float64) {
	n := len(ids)
	for i, id := range ids {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		e.node(id, cx+radius*math.Cos(theta), cy+radius*math.Sin(theta))
	}
}

func ringRadius(n int, spacing float64) float64 {
	return math.Max(spacing, spacing*float64(n)/(2*math.Pi))
}

func (c config) ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = c.idFn(i)
	}

	return out
}

// Path returns 0→1→…→n-1 laid out left to right.
func Path(n int, opts ...Option) (core.Snapshot, error) {
	if n < minPathNodes {
		return core.Snapshot{}, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	e := newEmitter(cfg, n, n-1)
	ids := cfg.ids(n)
	for i, id := range ids {
		e.node(id, cfg.origin.X+float64(i)*cfg.spacing, cfg.origin.Y)
	}
	for i := 0; i+1 < n; i++ {
		e.edge(ids[i], ids[i+1])
	}

	return e.snapshot(), nil
}

// Cycle returns 0→1→…→n-1→0 laid out on a circle.
func Cycle(n int, opts ...Option) (core.Snapshot, error) {
	if n < minCycleNodes {
		return core.Snapshot{}, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	e := newEmitter(cfg, n, n)
	ids := cfg.ids(n)
	r := ringRadius(n, cfg.spacing)
	e.ring(ids, cfg.origin.X+r, cfg.origin.Y+r, r)
	for i := range ids {
		e.edge(ids[i], ids[(i+1)%n])
	}

	return e.snapshot(), nil
}

// Star returns a hub (index 0) with an edge to each of the n-1 leaves, the
// leaves laid out around the hub.
func Star(n int, opts ...Option) (core.Snapshot, error) {
	if n < minStarNodes {
		return core.Snapshot{}, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	e := newEmitter(cfg, n, n-1)
	ids := cfg.ids(n)
	r := ringRadius(n-1, cfg.spacing)
	cx, cy := cfg.origin.X+r, cfg.origin.Y+r
	e.node(ids[0], cx, cy)
	e.ring(ids[1:], cx, cy, r)
	for _, leaf := range ids[1:] {
		e.edge(ids[0], leaf)
	}

	return e.snapshot(), nil
}

// Grid returns a rows×cols lattice with IDs "r,c" in row-major order. Each
// cell is connected to its right and bottom neighbors in both directions.
// The ID scheme option does not apply.
func Grid(rows, cols int, opts ...Option) (core.Snapshot, error) {
	if rows < minGridDim || cols < minGridDim {
		return core.Snapshot{}, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	e := newEmitter(cfg, rows*cols, 4*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e.node(fmt.Sprintf(gridIDFmt, r, c), cfg.origin.X+float64(c)*cfg.spacing, cfg.origin.Y+float64(r)*cfg.spacing)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := fmt.Sprintf(gridIDFmt, r, c)
			if c+1 < cols {
				v := fmt.Sprintf(gridIDFmt, r, c+1)
				e.edge(u, v)
				e.edge(v, u)
			}
			if r+1 < rows {
				v := fmt.Sprintf(gridIDFmt, r+1, c)
				e.edge(u, v)
				e.edge(v, u)
			}
		}
	}

	return e.snapshot(), nil
}

// Complete returns every ordered pair u→v, u≠v, over n nodes on a circle.
func Complete(n int, opts ...Option) (core.Snapshot, error) {
	if n < minCompleteNodes {
		return core.Snapshot{}, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	e := newEmitter(cfg, n, n*(n-1))
	ids := cfg.ids(n)
	r := ringRadius(n, cfg.spacing)
	e.ring(ids, cfg.origin.X+r, cfg.origin.Y+r, r)
	for _, u := range ids {
		for _, v := range ids {
			if u != v {
				e.edge(u, v)
			}
		}
	}

	return e.snapshot(), nil
}

// Kind names a generator for Generate.
type Kind string

// Generator kinds accepted by Generate.
const (
	KindPath     Kind = "path"
	KindCycle    Kind = "cycle"
	KindStar     Kind = "star"
	KindGrid     Kind = "grid"
	KindComplete Kind = "complete"
)

// Generate dispatches to the generator named by kind. n is the node count,
// or the row count for KindGrid, where m is the column count. m is ignored
// by every other kind.
func Generate(kind Kind, n, m int, opts ...Option) (core.Snapshot, error) {
	switch kind {
	case KindPath:
		return Path(n, opts...)
	case KindCycle:
		return Cycle(n, opts...)
	case KindStar:
		return Star(n, opts...)
	case KindGrid:
		return Grid(n, m, opts...)
	case KindComplete:
		return Complete(n, opts...)
	default:
		return core.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
