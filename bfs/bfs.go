// Package bfs finds the path with the fewest edges between two nodes of a
// core.AdjacencyIndex, ignoring edge weights.
package bfs

import (
	"github.com/katalvlaran/graphpad/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	idx        *core.AdjacencyIndex
	opts       BFSOptions
	start, end string
	queue      []queueItem
	visited    map[string]bool
	parentNode map[string]string
	parentEdge map[string]string
}

// ShortestPath returns the minimum-hop route from startID to endID.
//
// Neighbors are expanded in index order and every node is visited at most
// once. The search stops the instant endID is discovered, which is already
// optimal because nodes are discovered level by level.
//
// Returns core.TrivialPath when startID == endID (even if the ID is unknown),
// ErrNilIndex for a nil index, and core.ErrNoPath when the queue empties
// before endID is discovered.
func ShortestPath(idx *core.AdjacencyIndex, startID, endID string, opts ...Option) (*core.Path, error) {
	if startID == endID {
		return core.TrivialPath(startID), nil
	}
	if idx == nil {
		return nil, ErrNilIndex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := idx.Len()
	w := &walker{
		idx:        idx,
		opts:       o,
		start:      startID,
		end:        endID,
		queue:      make([]queueItem, 0, n),
		visited:    make(map[string]bool, n),
		parentNode: make(map[string]string, n),
		parentEdge: make(map[string]string, n),
	}

	w.discover(startID, 0, "", "")
	if w.loop() {
		if p := core.TracePath(startID, endID, w.parentNode, w.parentEdge); p != nil {
			return p, nil
		}
	}

	return nil, core.ErrNoPath
}

// discover marks id visited, records how it was reached, and enqueues it.
func (w *walker) discover(id string, depth int, parent, edgeID string) {
	w.visited[id] = true
	if parent != "" || edgeID != "" {
		w.parentNode[id] = parent
		w.parentEdge[id] = edgeID
	}
	w.opts.OnDiscover(id, depth, edgeID)
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until the end node is discovered or the queue is
// empty. It reports whether the end node was reached.
func (w *walker) loop() bool {
	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, nb := range w.idx.Neighbors(item.id) {
			if w.visited[nb.NeighborID] {
				continue
			}
			w.discover(nb.NeighborID, item.depth+1, item.id, nb.EdgeID)
			if nb.NeighborID == w.end {
				return true
			}
		}
	}

	return false
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}
