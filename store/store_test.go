package store_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/persist"
	"github.com/katalvlaran/graphpad/store"
)

var origin = core.Position{X: 5, Y: 7}

// newStore returns a deterministic store: sequential IDs, fixed placement.
func newStore(opts ...store.Option) *store.Store {
	base := []store.Option{
		store.WithIDGenerator(store.Sequential("id")),
		store.WithPlacement(store.FixedPlacement(origin)),
	}

	return store.New(append(base, opts...)...)
}

// triangle builds Alpha→Beta, Beta→Gamma, Gamma→Alpha and returns node IDs.
func triangle(t *testing.T, s *store.Store) (a, b, c string) {
	t.Helper()
	na, _ := s.AddNode("Alpha")
	nb, _ := s.AddNode("Beta")
	nc, _ := s.AddNode("Gamma")
	_, ok := s.AddEdge(na.ID, nb.ID, 1)
	require.True(t, ok)
	_, ok = s.AddEdge(nb.ID, nc.ID, 1)
	require.True(t, ok)
	_, ok = s.AddEdge(nc.ID, na.ID, 1)
	require.True(t, ok)

	return na.ID, nb.ID, nc.ID
}

// ------------------------------------------------------------------------
// 1. Nodes.
// ------------------------------------------------------------------------

func TestAddNode(t *testing.T) {
	s := newStore()

	n, ok := s.AddNode("  Home  ")
	require.True(t, ok)
	assert.Equal(t, "id1", n.ID)
	assert.Equal(t, "Home", n.Label)
	assert.Equal(t, origin, n.Position)
	assert.Equal(t, []core.Node{n}, s.Nodes())
	assert.Equal(t, 1, s.PastLen())

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, ok = s.AddNode(blank)
		assert.False(t, ok)
	}
	assert.Len(t, s.Nodes(), 1)
	assert.Equal(t, 1, s.PastLen(), "blank labels record no history")
}

func TestAddNode_RandomPlacement(t *testing.T) {
	s := store.New()
	for i := 0; i < 50; i++ {
		n, ok := s.AddNode("n")
		require.True(t, ok)
		assert.GreaterOrEqual(t, n.Position.X, 0.0)
		assert.Less(t, n.Position.X, store.DefaultPlacementSpan)
		assert.GreaterOrEqual(t, n.Position.Y, 0.0)
		assert.Less(t, n.Position.Y, store.DefaultPlacementSpan)
		assert.Len(t, n.ID, 36)
	}
}

func TestDeleteNode_Cascades(t *testing.T) {
	s := newStore()
	a, b, c := triangle(t, s)

	s.DeleteNode(b)

	ids := []string{}
	for _, n := range s.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{a, c}, ids)

	edges := s.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, c, edges[0].SourceID)
	assert.Equal(t, a, edges[0].TargetID)
	for _, e := range edges {
		assert.NotEqual(t, b, e.SourceID)
		assert.NotEqual(t, b, e.TargetID)
	}
}

// TestDeleteNode_MissingRecordsHistory pins that deleting an unknown node
// still records an (identical) history entry and clears the redo branch.
func TestDeleteNode_MissingRecordsHistory(t *testing.T) {
	s := newStore()
	s.AddNode("A")
	s.AddNode("B")
	require.True(t, s.Undo())
	require.Equal(t, 1, s.FutureLen())

	before := s.Graph()
	s.DeleteNode("nope")

	assert.Equal(t, 2, s.PastLen())
	assert.Zero(t, s.FutureLen())
	assert.Equal(t, before, s.Graph())

	require.True(t, s.Undo())
	assert.Equal(t, before, s.Graph())
}

func TestRenameNode(t *testing.T) {
	s := newStore()
	n, _ := s.AddNode("Old")

	s.RenameNode(n.ID, "New")
	got, ok := s.Node(n.ID)
	require.True(t, ok)
	assert.Equal(t, "New", got.Label)
	assert.Equal(t, 2, s.PastLen())

	s.RenameNode("ghost", "X")
	assert.Equal(t, 3, s.PastLen(), "rename of an unknown node still records history")

	require.True(t, s.Undo())
	require.True(t, s.Undo())
	got, _ = s.Node(n.ID)
	assert.Equal(t, "Old", got.Label)
}

// ------------------------------------------------------------------------
// 2. Edges.
// ------------------------------------------------------------------------

func TestAddEdge_NoDuplicates(t *testing.T) {
	s := newStore()
	a, _ := s.AddNode("Alpha")
	b, _ := s.AddNode("Beta")

	e, ok := s.AddEdge(a.ID, b.ID, 4)
	require.True(t, ok)
	assert.Equal(t, "Alpha → Beta", e.Label)
	assert.Equal(t, 4.0, e.Weight)
	past := s.PastLen()

	_, ok = s.AddEdge(a.ID, b.ID, 9)
	assert.False(t, ok)
	assert.Len(t, s.Edges(), 1)
	assert.Equal(t, past, s.PastLen(), "duplicate records no history")

	// the reverse direction is a different ordered pair
	_, ok = s.AddEdge(b.ID, a.ID, 1)
	assert.True(t, ok)

	seen := map[[2]string]bool{}
	for _, e := range s.Edges() {
		key := [2]string{e.SourceID, e.TargetID}
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestAddEdge_WeightDefaults(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.5, 2.5},
		{0, 1},
		{-3, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for i, tc := range cases {
		s := newStore()
		e, ok := s.AddEdge("a", "b", tc.in)
		require.True(t, ok, "case %d", i)
		assert.Equal(t, tc.want, e.Weight, "case %d", i)
	}
}

func TestAddEdge_Labels(t *testing.T) {
	s := newStore()
	n, _ := s.AddNode("Home")

	e, _ := s.AddEdge(n.ID, "ghost", 1)
	assert.Equal(t, "Home → ", e.Label)

	e, _ = s.AddEdge(n.ID, n.ID, 1)
	assert.Equal(t, "Home → Home", e.Label, "self-loops are accepted by the store")

	s.SetGraph([]core.Node{{ID: "x"}}, nil)
	e, _ = s.AddEdge("x", "x", 1)
	assert.Equal(t, "x → x", e.Label, "unlabeled nodes display their ID")
}

func TestDeleteEdge(t *testing.T) {
	s := newStore()
	e, _ := s.AddEdge("a", "b", 1)
	s.DeleteEdge(e.ID)
	assert.Empty(t, s.Edges())
	assert.Equal(t, 2, s.PastLen())

	s.DeleteEdge("ghost")
	assert.Equal(t, 3, s.PastLen())
}

func TestSetGraph_CopiesInput(t *testing.T) {
	s := newStore()
	nodes := []core.Node{{ID: "a", Label: "A"}, {ID: "b"}}
	edges := []core.Edge{{ID: "ab", SourceID: "a", TargetID: "b", Label: "custom"}}
	s.SetGraph(nodes, edges)

	nodes[0].Label = "mutated"
	edges[0].Label = "mutated"

	assert.Equal(t, "A", s.Nodes()[0].Label)
	assert.Equal(t, "custom", s.Edges()[0].Label, "payload labels are kept verbatim")
	assert.Equal(t, 1, s.PastLen())

	got := s.Nodes()
	got[0].Label = "also mutated"
	assert.Equal(t, "A", s.Nodes()[0].Label)
}

// ------------------------------------------------------------------------
// 3. History.
// ------------------------------------------------------------------------

func TestUndoRedo_RoundTrip(t *testing.T) {
	s := newStore()
	assert.False(t, s.Undo())
	assert.False(t, s.Redo())

	var states []core.Snapshot
	states = append(states, s.Graph())
	a, _ := s.AddNode("A")
	states = append(states, s.Graph())
	b, _ := s.AddNode("B")
	states = append(states, s.Graph())
	s.AddEdge(a.ID, b.ID, 2)
	states = append(states, s.Graph())
	s.RenameNode(a.ID, "A2")
	states = append(states, s.Graph())
	s.DeleteNode(b.ID)
	states = append(states, s.Graph())

	for i := len(states) - 2; i >= 0; i-- {
		require.True(t, s.Undo())
		assert.Equal(t, states[i], s.Graph(), "after undo to state %d", i)
	}
	assert.False(t, s.CanUndo())
	assert.Equal(t, len(states)-1, s.FutureLen())

	for i := 1; i < len(states); i++ {
		require.True(t, s.Redo())
		assert.Equal(t, states[i], s.Graph(), "after redo to state %d", i)
	}
	assert.False(t, s.CanRedo())
}

func TestUndo_ThenMutateClearsFuture(t *testing.T) {
	s := newStore()
	s.AddNode("A")
	s.AddNode("B")
	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	s.AddNode("C")
	assert.False(t, s.CanRedo())
	assert.False(t, s.Redo())

	labels := []string{}
	for _, n := range s.Nodes() {
		labels = append(labels, n.Label)
	}
	assert.Equal(t, []string{"A", "C"}, labels)
}

func TestHistoryLimit(t *testing.T) {
	s := newStore(store.WithHistoryLimit(2))
	for _, l := range []string{"A", "B", "C", "D"} {
		s.AddNode(l)
	}
	assert.Equal(t, 2, s.PastLen())

	require.True(t, s.Undo())
	require.True(t, s.Undo())
	assert.False(t, s.Undo())
	assert.Len(t, s.Nodes(), 2, "oldest entries were dropped")
}

// ------------------------------------------------------------------------
// 4. Positional and selection deltas.
// ------------------------------------------------------------------------

func TestApplyChanges_NoHistory(t *testing.T) {
	s := newStore()
	n, _ := s.AddNode("A")
	e, _ := s.AddEdge(n.ID, n.ID, 1)
	past := s.PastLen()

	yes := true
	applied := s.ApplyNodeChanges([]store.NodeChange{
		{Kind: store.ChangePosition, ID: n.ID, Position: &core.Position{X: 300, Y: 400}},
		{Kind: store.ChangeDimensions, ID: n.ID, Dimensions: &core.Dimensions{Width: 60, Height: 60}},
		{Kind: store.ChangeSelect, ID: n.ID, Selected: &yes},
		{Kind: store.ChangePosition, ID: "ghost", Position: &core.Position{}},
		{Kind: store.ChangePosition, ID: n.ID},
		{Kind: "remove", ID: n.ID},
	})
	assert.Equal(t, 3, applied)

	got, _ := s.Node(n.ID)
	assert.Equal(t, core.Position{X: 300, Y: 400}, got.Position)
	assert.Equal(t, core.Dimensions{Width: 60, Height: 60}, got.Dimensions)
	assert.True(t, got.Selected)

	applied = s.ApplyEdgeChanges([]store.EdgeChange{
		{Kind: store.ChangeSelect, ID: e.ID, Selected: &yes},
		{Kind: store.ChangeSelect, ID: "ghost", Selected: &yes},
		{Kind: store.ChangePosition, ID: e.ID},
	})
	assert.Equal(t, 1, applied)
	assert.True(t, s.Edges()[0].Selected)

	assert.Equal(t, past, s.PastLen())
}

// ------------------------------------------------------------------------
// 5. Named snapshots.
// ------------------------------------------------------------------------

func TestSnapshots_Isolation(t *testing.T) {
	s := newStore()
	a, _ := s.AddNode("A")
	s.AddNode("B")
	past := s.PastLen()
	saved := s.SaveSnapshot("two nodes")
	assert.Equal(t, past, s.PastLen(), "saving records no history")

	s.RenameNode(a.ID, "changed")
	s.AddNode("C")

	// the returned copy and the stored one are both unaffected
	assert.Equal(t, "A", saved.Nodes[0].Label)
	stored, ok := s.Snapshot(saved.ID)
	require.True(t, ok)
	require.Len(t, stored.Nodes, 2)
	assert.Equal(t, "A", stored.Nodes[0].Label)

	// mutating a returned copy does not reach the store
	stored.Nodes[0].Label = "hacked"
	again, _ := s.Snapshot(saved.ID)
	assert.Equal(t, "A", again.Nodes[0].Label)

	require.True(t, s.LoadSnapshot(saved.ID))
	assert.Equal(t, saved.Snapshot, s.Graph())

	// loading is undoable
	require.True(t, s.Undo())
	assert.Len(t, s.Nodes(), 3)

	// editing after load does not alter the snapshot
	require.True(t, s.LoadSnapshot(saved.ID))
	s.RenameNode(a.ID, "after load")
	again, _ = s.Snapshot(saved.ID)
	assert.Equal(t, "A", again.Nodes[0].Label)
}

func TestSnapshots_NamesAndOrder(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	s := newStore(store.WithClock(clock))

	first := s.SaveSnapshot("")
	second := s.SaveSnapshot("  named ")
	third := s.SaveSnapshot("")
	assert.Equal(t, "Snapshot 1", first.Name)
	assert.Equal(t, "named", second.Name)
	assert.Equal(t, "Snapshot 3", third.Name)

	list := s.Snapshots()
	require.Len(t, list, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID},
		[]string{list[0].ID, list[1].ID, list[2].ID})

	past := s.PastLen()
	assert.True(t, s.DeleteSnapshot(second.ID))
	assert.False(t, s.DeleteSnapshot(second.ID))
	assert.Len(t, s.Snapshots(), 2)
	assert.Equal(t, past, s.PastLen(), "deleting records no history")

	assert.False(t, s.LoadSnapshot("ghost"))
	assert.Equal(t, past, s.PastLen())
}

func TestSnapshots_DefaultNamesNotReused(t *testing.T) {
	s := newStore()

	first := s.SaveSnapshot("")
	second := s.SaveSnapshot("")
	require.True(t, s.DeleteSnapshot(first.ID))
	third := s.SaveSnapshot("")

	assert.Equal(t, "Snapshot 2", second.Name)
	assert.Equal(t, "Snapshot 3", third.Name)

	require.True(t, s.DeleteSnapshot(second.ID))
	require.True(t, s.DeleteSnapshot(third.ID))
	assert.Equal(t, "Snapshot 1", s.SaveSnapshot("").Name, "numbering restarts once no default name is held")
}

// ------------------------------------------------------------------------
// 6. Persistence.
// ------------------------------------------------------------------------

func TestSink_ReceivesEveryAppliedIntent(t *testing.T) {
	var got []persist.State
	sink := persist.SinkFunc(func(st persist.State) { got = append(got, st) })
	s := newStore(store.WithSink(sink))

	s.AddNode("") // no-op
	n, _ := s.AddNode("A")
	s.AddEdge(n.ID, n.ID, 1)
	s.AddEdge(n.ID, n.ID, 1) // duplicate, no-op
	s.SaveSnapshot("snap")
	s.Undo()

	require.Len(t, got, 4)
	assert.Len(t, got[0].Nodes, 1)
	assert.Len(t, got[1].Edges, 1)
	assert.Len(t, got[2].SavedSnapshots, 1)
	assert.Empty(t, got[3].Edges)
	assert.Len(t, got[3].SavedSnapshots, 1, "undo leaves snapshots alone")

	// submitted states are copies
	got[0].Nodes[0].Label = "mutated"
	assert.Equal(t, "A", s.Nodes()[0].Label)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	gw := persist.NewMemoryGateway()
	w := persist.NewWriter(gw)

	s := newStore(store.WithSink(w))
	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")
	s.AddEdge(a.ID, b.ID, 3)
	s.SaveSnapshot("saved")
	require.NoError(t, w.Close(ctx))

	restored := store.New()
	require.NoError(t, restored.Restore(ctx, gw))
	assert.Equal(t, s.Nodes(), restored.Nodes())
	assert.Equal(t, s.Edges(), restored.Edges())
	require.Len(t, restored.Snapshots(), 1)
	assert.Equal(t, "saved", restored.Snapshots()[0].Name)
	assert.False(t, restored.CanUndo(), "history is not persisted")
}

func TestRestore_FallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	obsCore, logs := observer.New(zap.InfoLevel)

	gw := persist.NewMemoryGateway()
	gw.Put([]byte(`{"nodes":[{"id":"a"}],"edges":{}}`))

	s := newStore(store.WithLogger(zap.New(obsCore)))
	s.AddNode("pre-existing")
	require.NoError(t, s.Restore(ctx, gw))
	assert.Empty(t, s.Nodes())
	assert.Empty(t, s.Edges())
	assert.Equal(t, 1, logs.FilterMessage("persisted state rejected, starting empty").Len())

	require.NoError(t, s.Restore(ctx, persist.NewMemoryGateway()))
	assert.Equal(t, 1, logs.FilterMessage("no persisted state, starting empty").Len())
}

type brokenGateway struct{}

func (brokenGateway) Save(context.Context, persist.State) error { return errors.New("disk gone") }
func (brokenGateway) Load(context.Context) (persist.State, error) {
	return persist.State{}, errors.New("disk gone")
}

func TestRestore_GatewayError(t *testing.T) {
	s := newStore()
	s.AddNode("kept")
	require.Error(t, s.Restore(context.Background(), brokenGateway{}))
	assert.Len(t, s.Nodes(), 1)
}

// ------------------------------------------------------------------------
// 7. Concurrency.
// ------------------------------------------------------------------------

func TestConcurrentIntents(t *testing.T) {
	s := store.New()
	const workers, perWorker = 8, 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				n, _ := s.AddNode("n")
				s.AddEdge(n.ID, n.ID, 1)
				_ = s.Stats()
				_ = s.Snapshots()
			}
		}()
	}
	wg.Wait()

	st := s.Stats()
	assert.Equal(t, workers*perWorker, st.Nodes)
	assert.Equal(t, workers*perWorker, st.Edges)
	assert.Equal(t, 2*workers*perWorker, st.Past)
}
