// Package presets_test verifies generated topologies, determinism, layouts
// and the built-in examples.
package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpad/bfs"
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/dijkstra"
	"github.com/katalvlaran/graphpad/presets"
)

func TestGenerators_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		kind         presets.Kind
		n, m         int
		wantV, wantE int
	}{
		{"Path4", presets.KindPath, 4, 0, 4, 3},
		{"Cycle5", presets.KindCycle, 5, 0, 5, 5},
		{"Star5", presets.KindStar, 5, 0, 5, 4},
		{"Grid2x3", presets.KindGrid, 2, 3, 6, 14},
		{"Grid1x1", presets.KindGrid, 1, 1, 1, 0},
		{"Complete4", presets.KindComplete, 4, 0, 4, 12},
		{"Complete1", presets.KindComplete, 1, 0, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := presets.Generate(tc.kind, tc.n, tc.m)
			require.NoError(t, err)
			assert.Len(t, g.Nodes, tc.wantV)
			assert.Len(t, g.Edges, tc.wantE)

			seen := map[[2]string]bool{}
			for _, e := range g.Edges {
				key := [2]string{e.SourceID, e.TargetID}
				assert.False(t, seen[key], "duplicate ordered pair %v", key)
				seen[key] = true
				assert.Equal(t, e.SourceID+"-"+e.TargetID, e.ID)
				assert.Equal(t, 1.0, e.Weight)
			}
		})
	}
}

func TestGenerators_TooSmall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind presets.Kind
		n, m int
	}{
		{presets.KindPath, 1, 0},
		{presets.KindCycle, 2, 0},
		{presets.KindStar, 1, 0},
		{presets.KindGrid, 0, 3},
		{presets.KindGrid, 3, 0},
		{presets.KindComplete, 0, 0},
	}
	for _, tc := range cases {
		_, err := presets.Generate(tc.kind, tc.n, tc.m)
		assert.ErrorIs(t, err, presets.ErrTooFewVertices, "%s(%d,%d)", tc.kind, tc.n, tc.m)
	}

	_, err := presets.Generate("wheel", 5, 0)
	assert.ErrorIs(t, err, presets.ErrUnknownKind)
}

func TestPath_LayoutAndLabels(t *testing.T) {
	g, err := presets.Path(3,
		presets.WithIDScheme(presets.ExcelColumnIDFn),
		presets.WithSpacing(100),
		presets.WithOrigin(core.Position{X: 10, Y: 20}),
	)
	require.NoError(t, err)

	assert.Equal(t, []core.Node{
		{ID: "A", Label: "A", Position: core.Position{X: 10, Y: 20}},
		{ID: "B", Label: "B", Position: core.Position{X: 110, Y: 20}},
		{ID: "C", Label: "C", Position: core.Position{X: 210, Y: 20}},
	}, g.Nodes)
	assert.Equal(t, "A → B", g.Edges[0].Label)
	assert.Equal(t, "B → C", g.Edges[1].Label)
}

func TestGrid_IDs(t *testing.T) {
	g, err := presets.Grid(2, 2, presets.WithIDScheme(presets.SymbolNumberIDFn("v")))
	require.NoError(t, err)
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, ids, "grid keeps its coordinate scheme")
}

func TestWeights_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	build := func() core.Snapshot {
		g, err := presets.Complete(5, presets.WithSeed(7), presets.WithUniformWeights(1, 9))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a, b)

	distinct := map[float64]bool{}
	for _, e := range a.Edges {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		distinct[e.Weight] = true
	}
	assert.Greater(t, len(distinct), 1)

	// without a seed every weight is the lower bound
	g, err := presets.Path(3, presets.WithUniformWeights(4, 9))
	require.NoError(t, err)
	for _, e := range g.Edges {
		assert.Equal(t, 4.0, e.Weight)
	}
}

func TestOptions_PanicOnMisuse(t *testing.T) {
	assert.Panics(t, func() { presets.WithIDScheme(nil) })
	assert.Panics(t, func() { presets.WithWeightFn(nil) })
	assert.Panics(t, func() { presets.WithSpacing(0) })
	assert.Panics(t, func() { presets.WithUniformWeights(0, 3) })
	assert.Panics(t, func() { presets.WithUniformWeights(5, 3) })
}

func TestExcelColumnIDFn(t *testing.T) {
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, presets.ExcelColumnIDFn(idx))
	}
}

func TestExamples(t *testing.T) {
	list := presets.Examples()
	require.Len(t, list, 2)
	assert.Equal(t, "bfs-vs-dijkstra", list[0].ID)
	assert.Equal(t, "branchy-graph", list[1].ID)

	p, err := presets.Lookup("bfs-vs-dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "A (Start) → B", p.Graph.Edges[0].Label)

	idx := core.BuildAdjacency(p.Graph.Nodes, p.Graph.Edges)
	bp, err := bfs.ShortestPath(idx, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E"}, bp.NodeIDs)
	dp, err := dijkstra.ShortestPath(idx, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, dp.NodeIDs)
	assert.InDelta(t, 3.0, dp.Cost(idx), 1e-9)

	b, err := presets.Lookup("branchy-graph")
	require.NoError(t, err)
	idx = core.BuildAdjacency(b.Graph.Nodes, b.Graph.Edges)
	dp, err = dijkstra.ShortestPath(idx, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "M", "T"}, dp.NodeIDs)
	assert.InDelta(t, 5.0, dp.Cost(idx), 1e-9)

	_, err = presets.Lookup("nope")
	assert.ErrorIs(t, err, presets.ErrUnknownPreset)
}

func TestExamples_ReturnCopies(t *testing.T) {
	first := presets.Examples()
	first[0].Graph.Nodes[0].Label = "mutated"

	again, err := presets.Lookup(first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "A (Start)", again.Graph.Nodes[0].Label)
}
