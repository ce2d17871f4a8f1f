// SPDX-License-Identifier: MIT
// Package: graphpad/query
//
// query.go - label search and timed path search over a graph snapshot.

package query

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpad/bfs"
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/dijkstra"
)

// MatchNodes returns, in node order, the IDs of nodes whose display label
// (core.LabelOf) contains term case-insensitively. A blank term matches
// nothing. The result is never nil.
func MatchNodes(nodes []core.Node, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []string{}
	if term == "" {
		return out
	}
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(core.LabelOf(n)), term) {
			out = append(out, n.ID)
		}
	}

	return out
}

// Finder runs searches and reports them to a Recorder.
type Finder struct {
	opts Options
}

// NewFinder returns a Finder configured by opts.
func NewFinder(opts ...Option) *Finder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder{opts: cfg}
}

// Search is MatchNodes plus recording.
func (f *Finder) Search(nodes []core.Node, term string) []string {
	ids := MatchNodes(nodes, term)
	f.opts.Recorder.ObserveSearch(len(ids))

	return ids
}

// FindPath builds an adjacency index from g and runs alg from startID to
// endID. The elapsed time covers index construction and the search.
//
// Returns:
//
//   - ErrMissingEndpoints when either ID is blank, before any work.
//   - ErrUnknownAlgorithm for anything but BFS and Dijkstra.
//   - Result{Found: false} when the end is unreachable; this is not an error.
func (f *Finder) FindPath(g core.Snapshot, startID, endID string, alg Algorithm) (Result, error) {
	if strings.TrimSpace(startID) == "" || strings.TrimSpace(endID) == "" {
		return Result{}, ErrMissingEndpoints
	}
	run, err := f.search(alg)
	if err != nil {
		return Result{}, err
	}

	began := f.opts.Now()
	idx := core.BuildAdjacency(g.Nodes, g.Edges)
	path, err := run(idx, startID, endID)
	elapsed := f.opts.Now().Sub(began)

	res := Result{Algorithm: alg, Elapsed: elapsed}
	switch {
	case errors.Is(err, core.ErrNoPath):
	case err != nil:
		return Result{}, fmt.Errorf("query: %s: %w", alg, err)
	default:
		res.Found = true
		res.Path = path
		res.Hops = path.Hops()
		res.Cost = path.Cost(idx)
	}

	f.opts.Recorder.ObservePathFind(string(alg), res.Found, elapsed)
	f.opts.Logger.Debug("path search",
		zap.String("algorithm", string(alg)),
		zap.String("start", startID),
		zap.String("end", endID),
		zap.Bool("found", res.Found),
		zap.Duration("elapsed", elapsed),
	)

	return res, nil
}

type searchFunc func(idx *core.AdjacencyIndex, startID, endID string) (*core.Path, error)

func (f *Finder) search(alg Algorithm) (searchFunc, error) {
	switch alg {
	case BFS:
		return func(idx *core.AdjacencyIndex, s, e string) (*core.Path, error) {
			return bfs.ShortestPath(idx, s, e)
		}, nil
	case Dijkstra:
		return func(idx *core.AdjacencyIndex, s, e string) (*core.Path, error) {
			return dijkstra.ShortestPath(idx, s, e)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
