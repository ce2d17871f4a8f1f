// SPDX-License-Identifier: MIT
// Package: graphpad/presets
//
// examples.go - the built-in example graphs.

package presets

import (
	"fmt"

	"github.com/katalvlaran/graphpad/core"
)

// Preset is a named, ready-to-load example graph.
type Preset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Graph       core.Snapshot `json:"graph"`
}

type exampleNode struct {
	id, label string
	x, y      float64
}

type exampleEdge struct {
	source, target string
	weight         float64
}

// example assembles a Preset. Edge IDs are "<source>-<target>" and labels are
// derived from the node labels.
func example(id, name, description string, nodes []exampleNode, edges []exampleEdge) Preset {
	p := Preset{ID: id, Name: name, Description: description}
	byID := make(map[string]*core.Node, len(nodes))
	for _, n := range nodes {
		p.Graph.Nodes = append(p.Graph.Nodes, core.Node{
			ID: n.id, Label: n.label, Position: core.Position{X: n.x, Y: n.y},
		})
	}
	for i := range p.Graph.Nodes {
		byID[p.Graph.Nodes[i].ID] = &p.Graph.Nodes[i]
	}
	for _, e := range edges {
		p.Graph.Edges = append(p.Graph.Edges, core.Edge{
			ID:       e.source + "-" + e.target,
			SourceID: e.source,
			TargetID: e.target,
			Weight:   e.weight,
			Label:    core.EdgeLabel(byID[e.source], byID[e.target]),
		})
	}

	return p
}

// examples is the registry in display order. Each call to Examples or Lookup
// returns deep copies.
var examples = []Preset{
	example("bfs-vs-dijkstra", "BFS vs Dijkstra (weighted)",
		"BFS finds the path with fewer hops, Dijkstra finds the cheaper weighted path.",
		[]exampleNode{
			{"A", "A (Start)", 100, 200},
			{"B", "B", 300, 100},
			{"C", "C", 300, 300},
			{"D", "D", 500, 200},
			{"E", "E (Goal)", 700, 200},
		},
		[]exampleEdge{
			// upper route: few edges, expensive
			{"A", "B", 10},
			{"B", "E", 10},
			// lower route: more edges, cheap
			{"A", "C", 1},
			{"C", "D", 1},
			{"D", "E", 1},
		},
	),
	example("branchy-graph", "Branchy graph with multiple routes",
		"Several alternative routes from S to T with different costs and lengths.",
		[]exampleNode{
			{"S", "S (Start)", 100, 200},
			{"X", "X", 300, 100},
			{"Y", "Y", 300, 300},
			{"M", "M", 500, 100},
			{"N", "N", 500, 300},
			{"T", "T (Target)", 700, 200},
		},
		[]exampleEdge{
			{"S", "X", 3},
			{"S", "Y", 1},
			{"X", "M", 1},
			{"Y", "N", 5},
			{"M", "T", 1},
			{"N", "T", 1},
		},
	),
}

func (p Preset) clone() Preset {
	p.Graph = p.Graph.Clone()

	return p
}

// Examples returns every built-in example in display order.
func Examples() []Preset {
	out := make([]Preset, 0, len(examples))
	for _, p := range examples {
		out = append(out, p.clone())
	}

	return out
}

// Lookup returns the example with the given ID.
func Lookup(id string) (Preset, error) {
	for _, p := range examples {
		if p.ID == id {
			return p.clone(), nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}
