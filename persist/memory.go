// SPDX-License-Identifier: MIT
// Package: graphpad/persist
//
// memory.go - process-local Gateway, used by tests and the "memory" storage driver.

package persist

import (
	"context"
	"slices"
	"sync"
)

// MemoryGateway keeps the encoded payload in memory. It round-trips through
// Encode/Decode so it behaves like a durable gateway, schema check included.
type MemoryGateway struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryGateway returns an empty MemoryGateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Save encodes st and replaces the stored payload.
func (g *MemoryGateway) Save(ctx context.Context, st State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(st)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.data = data
	g.saves++
	g.mu.Unlock()

	return nil
}

// Load decodes the stored payload.
func (g *MemoryGateway) Load(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}

	g.mu.Lock()
	data := slices.Clone(g.data)
	g.mu.Unlock()

	if data == nil {
		return State{}, ErrNotFound
	}

	return Decode(data)
}

// Put stores a raw payload verbatim, bypassing Encode.
func (g *MemoryGateway) Put(raw []byte) {
	g.mu.Lock()
	g.data = slices.Clone(raw)
	g.mu.Unlock()
}

// Raw returns a copy of the stored payload, nil if nothing was saved.
func (g *MemoryGateway) Raw() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()

	return slices.Clone(g.data)
}

// Saves returns how many successful Save calls the gateway has served.
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.saves
}
