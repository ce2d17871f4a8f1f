package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphpad/bfs"
	"github.com/katalvlaran/graphpad/core"
)

// edge is a compact fixture literal: {id, from, to, weight}.
type edge struct {
	id, from, to string
	w            float64
}

// buildIndex turns node IDs and edge literals into an adjacency index.
func buildIndex(ids []string, es []edge) *core.AdjacencyIndex {
	nodes := make([]core.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, core.Node{ID: id})
	}
	edges := make([]core.Edge, 0, len(es))
	for _, e := range es {
		edges = append(edges, core.Edge{ID: e.id, SourceID: e.from, TargetID: e.to, Weight: e.w})
	}

	return core.BuildAdjacency(nodes, edges)
}

// TestShortestPath_Errors verifies nil-index rejection.
func TestShortestPath_Errors(t *testing.T) {
	if _, err := bfs.ShortestPath(nil, "A", "B"); !errors.Is(err, bfs.ErrNilIndex) {
		t.Errorf("nil index: want ErrNilIndex, got %v", err)
	}
}

// TestShortestPath_Trivial covers start == end, present or absent.
func TestShortestPath_Trivial(t *testing.T) {
	idx := buildIndex([]string{"A"}, nil)
	for _, id := range []string{"A", "missing"} {
		p, err := bfs.ShortestPath(idx, id, id)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", id, err)
		}
		if !reflect.DeepEqual(p.NodeIDs, []string{id}) || len(p.EdgeIDs) != 0 {
			t.Errorf("%s: got %+v; want trivial path", id, p)
		}
	}
	// trivial even without an index
	if p, err := bfs.ShortestPath(nil, "X", "X"); err != nil || p.NodeIDs[0] != "X" {
		t.Errorf("nil index trivial: got %+v, %v", p, err)
	}
}

// TestShortestPath_Minimality checks that the 1-hop route wins over a
// cheaper 3-hop route: A→B, A→C, C→D, D→B.
func TestShortestPath_Minimality(t *testing.T) {
	idx := buildIndex([]string{"A", "B", "C", "D"}, []edge{
		{"ab", "A", "B", 100},
		{"ac", "A", "C", 1},
		{"cd", "C", "D", 1},
		{"db", "D", "B", 1},
	})
	p, err := bfs.ShortestPath(idx, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(p.NodeIDs, want) {
		t.Errorf("NodeIDs = %v; want %v", p.NodeIDs, want)
	}
	if want := []string{"ab"}; !reflect.DeepEqual(p.EdgeIDs, want) {
		t.Errorf("EdgeIDs = %v; want %v", p.EdgeIDs, want)
	}
}

// TestShortestPath_MultiHop checks reconstruction over several levels.
func TestShortestPath_MultiHop(t *testing.T) {
	idx := buildIndex([]string{"A", "B", "C", "D", "E"}, []edge{
		{"ab", "A", "B", 0},
		{"bc", "B", "C", 0},
		{"cd", "C", "D", 0},
		{"be", "B", "E", 0},
		{"ed", "E", "D", 0},
	})
	p, err := bfs.ShortestPath(idx, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	// two 3-hop routes; bc was added before be, so A→B→C→D wins
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(p.NodeIDs, want) {
		t.Errorf("NodeIDs = %v; want %v", p.NodeIDs, want)
	}
	if len(p.EdgeIDs) != len(p.NodeIDs)-1 {
		t.Errorf("len(EdgeIDs) = %d; want %d", len(p.EdgeIDs), len(p.NodeIDs)-1)
	}
}

// TestShortestPath_Directed ensures edges are not followed backwards.
func TestShortestPath_Directed(t *testing.T) {
	idx := buildIndex([]string{"A", "B"}, []edge{{"ab", "A", "B", 0}})
	if _, err := bfs.ShortestPath(idx, "B", "A"); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("B→A: want ErrNoPath, got %v", err)
	}
}

// TestShortestPath_Unreachable covers disconnected components and unknown ends.
func TestShortestPath_Unreachable(t *testing.T) {
	idx := buildIndex([]string{"A", "B", "Y", "Z"}, []edge{
		{"ab", "A", "B", 0},
		{"yz", "Y", "Z", 0},
	})
	for _, end := range []string{"Z", "nowhere"} {
		if _, err := bfs.ShortestPath(idx, "A", end); !errors.Is(err, core.ErrNoPath) {
			t.Errorf("A→%s: want ErrNoPath, got %v", end, err)
		}
	}
	if _, err := bfs.ShortestPath(idx, "ghost", "A"); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("unknown start: want ErrNoPath, got %v", err)
	}
}

// TestShortestPath_Cycle makes sure cycles do not loop forever.
func TestShortestPath_Cycle(t *testing.T) {
	idx := buildIndex([]string{"A", "B", "C", "D"}, []edge{
		{"ab", "A", "B", 0},
		{"ba", "B", "A", 0},
		{"bc", "B", "C", 0},
		{"cb", "C", "B", 0},
	})
	if _, err := bfs.ShortestPath(idx, "A", "D"); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

// TestShortestPath_Hooks checks discovery order and early termination.
func TestShortestPath_Hooks(t *testing.T) {
	idx := buildIndex([]string{"A", "B", "C", "D"}, []edge{
		{"ab", "A", "B", 0},
		{"ac", "A", "C", 0},
		{"cd", "C", "D", 0},
	})
	var discovered, dequeued []string
	_, err := bfs.ShortestPath(idx, "A", "C",
		bfs.WithOnDiscover(func(id string, _ int, _ string) { discovered = append(discovered, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { dequeued = append(dequeued, id) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(discovered, want) {
		t.Errorf("discovered = %v; want %v", discovered, want)
	}
	// stops as soon as C is discovered while expanding A
	if want := []string{"A"}; !reflect.DeepEqual(dequeued, want) {
		t.Errorf("dequeued = %v; want %v", dequeued, want)
	}
}
