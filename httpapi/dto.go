// SPDX-License-Identifier: MIT
// Package: graphpad/httpapi
//
// dto.go - request and response bodies.

package httpapi

import (
	"time"

	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/store"
)

type addNodeRequest struct {
	Label string `json:"label" validate:"required,max=200"`
}

type renameNodeRequest struct {
	Label string `json:"label" validate:"required,max=200"`
}

type addEdgeRequest struct {
	Source string   `json:"source" validate:"required"`
	Target string   `json:"target" validate:"required,nefield=Source"`
	Weight *float64 `json:"weight,omitempty"`
}

type nodeChangesRequest struct {
	Changes []store.NodeChange `json:"changes" validate:"required"`
}

type edgeChangesRequest struct {
	Changes []store.EdgeChange `json:"changes" validate:"required"`
}

type setGraphRequest struct {
	Nodes []core.Node `json:"nodes" validate:"required"`
	Edges []core.Edge `json:"edges" validate:"required"`
}

type saveSnapshotRequest struct {
	Name string `json:"name" validate:"max=200"`
}

type generateRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=path cycle star grid complete"`
	N         int    `json:"n" validate:"min=1,max=200"`
	M         int    `json:"m" validate:"min=0,max=200"`
	Seed      *int64 `json:"seed,omitempty"`
	WeightMin int    `json:"weightMin" validate:"min=0"`
	WeightMax int    `json:"weightMax" validate:"gtefield=WeightMin"`
}

type appliedResponse struct {
	Applied int `json:"applied"`
}

type graphResponse struct {
	Nodes   []core.Node `json:"nodes"`
	Edges   []core.Edge `json:"edges"`
	Stats   store.Stats `json:"stats"`
	CanUndo bool        `json:"canUndo"`
	CanRedo bool        `json:"canRedo"`
}

type historyResponse struct {
	Changed bool `json:"changed"`
	graphResponse
}

type searchResponse struct {
	Term string   `json:"term"`
	IDs  []string `json:"ids"`
}

type snapshotSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Nodes     int       `json:"nodes"`
	Edges     int       `json:"edges"`
}

func summarize(ns core.NamedSnapshot) snapshotSummary {
	return snapshotSummary{
		ID:        ns.ID,
		Name:      ns.Name,
		CreatedAt: ns.CreatedAt,
		Nodes:     len(ns.Nodes),
		Edges:     len(ns.Edges),
	}
}

type presetSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
