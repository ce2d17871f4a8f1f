// Package dijkstra implements Dijkstra's shortest-path search between two
// nodes of a core.AdjacencyIndex.
//
// Notes on implementation choices:
//
//   - Weights are assumed strictly positive. The store enforces this when an
//     edge is created; the search does not re-validate it.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Equal distances are ordered by push sequence, so the node whose current
//     distance was recorded first is settled first.
//   - The search stops as soon as the end node is settled.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/graphpad/core"
)

// ShortestPath returns the minimum-weight route from startID to endID.
//
// Returns:
//
//   - core.TrivialPath(startID) when startID == endID, whatever the index holds.
//   - ErrNilIndex for a nil index.
//   - core.ErrNoPath when endID never receives a finite distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(idx *core.AdjacencyIndex, startID, endID string, opts ...Option) (*core.Path, error) {
	if startID == endID {
		return core.TrivialPath(startID), nil
	}
	if idx == nil {
		return nil, ErrNilIndex
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	V := idx.Len()
	r := &runner{
		idx:        idx,
		options:    cfg,
		end:        endID,
		dist:       make(map[string]float64, V),
		visited:    make(map[string]bool, V),
		parentNode: make(map[string]string, V),
		parentEdge: make(map[string]string, V),
		pq:         make(nodePQ, 0, V),
	}
	r.init(startID)
	r.process()

	if d, ok := r.dist[endID]; !ok || math.IsInf(d, 1) {
		return nil, core.ErrNoPath
	}

	p := core.TracePath(startID, endID, r.parentNode, r.parentEdge)
	if p == nil {
		return nil, core.ErrNoPath
	}

	return p, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	idx        *core.AdjacencyIndex // read-only within a search
	options    Options
	end        string
	dist       map[string]float64 // node ID → best known distance from start
	visited    map[string]bool    // node ID → distance is final
	parentNode map[string]string  // node ID → predecessor on the best route
	parentEdge map[string]string  // node ID → edge used from the predecessor
	pq         nodePQ
	seq        uint64 // push counter, breaks distance ties
}

// init sets every known distance to +∞, the start to 0, and seeds the heap.
func (r *runner) init(startID string) {
	for _, id := range r.idx.IDs() {
		r.dist[id] = math.Inf(1)
	}
	r.dist[startID] = 0

	heap.Init(&r.pq)
	r.push(startID, 0)
}

// process repeatedly settles the closest unvisited node and relaxes its
// outgoing edges. It returns once the end node is settled or the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}

		r.visited[u] = true
		r.options.OnSettle(u, item.dist)
		if u == r.end {
			return
		}

		r.relax(u)
	}
}

// relax improves the tentative distance of every unvisited neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) {
	for _, nb := range r.idx.Neighbors(u) {
		v := nb.NeighborID
		if r.visited[v] {
			continue
		}

		alt := r.dist[u] + nb.Weight
		cur, known := r.dist[v]
		if known && alt >= cur {
			continue
		}

		r.dist[v] = alt
		r.parentNode[v] = u
		r.parentEdge[v] = nb.EdgeID
		r.options.OnRelax(u, v, nb.EdgeID, alt)
		r.push(v, alt)
	}
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// nodeItem represents a node and its tentative distance at push time.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
