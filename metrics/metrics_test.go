package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpad/metrics"
	"github.com/katalvlaran/graphpad/query"
	"github.com/katalvlaran/graphpad/store"
)

var _ query.Recorder = (*metrics.Collector)(nil)

var _ metrics.StatsSource = (*store.Store)(nil)

// scrape renders the collector's registry through its HTTP handler.
func scrape(t *testing.T, c *metrics.Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestCollector_Observations(t *testing.T) {
	c := metrics.NewCollector("graphpad")

	c.ObservePathFind("bfs", true, time.Millisecond)
	c.ObservePathFind("bfs", false, time.Millisecond)
	c.ObservePathFind("dijkstra", true, time.Millisecond)
	c.ObserveSearch(3)
	c.ObserveSave(nil)
	c.ObserveSave(errors.New("x"))
	c.ObserveSave(errors.New("y"))
	c.ObserveHTTP("GET", "/api/graph", 200, time.Millisecond)

	text := scrape(t, c)
	for _, line := range []string{
		`graphpad_path_finds_total{algorithm="bfs",outcome="found"} 1`,
		`graphpad_path_finds_total{algorithm="bfs",outcome="no_path"} 1`,
		`graphpad_path_finds_total{algorithm="dijkstra",outcome="found"} 1`,
		`graphpad_path_find_duration_seconds_count{algorithm="bfs"} 2`,
		`graphpad_node_searches_total 1`,
		`graphpad_node_search_matches_sum 3`,
		`graphpad_persist_saves_total{outcome="ok"} 1`,
		`graphpad_persist_saves_total{outcome="error"} 2`,
		`graphpad_http_requests_total{method="GET",route="/api/graph",status="200"} 1`,
	} {
		assert.Contains(t, text, line)
	}
}

func TestCollector_StoreGaugesAndHandler(t *testing.T) {
	c := metrics.NewCollector("graphpad")
	s := store.New()
	c.WatchStore(s)

	a, _ := s.AddNode("A")
	b, _ := s.AddNode("B")
	s.AddEdge(a.ID, b.ID, 1)
	s.Undo()

	text := scrape(t, c)
	for _, line := range []string{
		"graphpad_graph_nodes 2",
		"graphpad_graph_edges 0",
		"graphpad_history_past_depth 2",
		"graphpad_history_future_depth 1",
		"graphpad_saved_snapshots 0",
	} {
		assert.Contains(t, text, line)
	}
}

func TestCollector_Registry(t *testing.T) {
	c := metrics.NewCollector("graphpad")
	c.ObserveSearch(1)

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["graphpad_node_searches_total"])
	assert.False(t, names["go_goroutines"], "only graphpad collectors are registered")
}
