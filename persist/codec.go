// SPDX-License-Identifier: MIT
// Package: graphpad/persist
//
// codec.go - JSON encoding of State and the load-time schema check.

package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// requiredArrays are the top-level fields that must be present as JSON arrays
// for a payload to be adopted.
var requiredArrays = []string{"nodes", "edges"}

// Encode serializes st. Nil collections are written as empty arrays.
func Encode(st State) ([]byte, error) {
	data, err := json.Marshal(st.normalized())
	if err != nil {
		return nil, fmt.Errorf("persist: encode: %w", err)
	}

	return data, nil
}

// Decode parses a stored payload.
//
// The payload is accepted only when "nodes" and "edges" are both present as
// arrays. Missing optional fields ("savedSnapshots", node positions, edge
// weights and labels) take their zero values. Any other shape yields
// ErrCorruptState and an empty State; nothing is partially adopted.
func Decode(data []byte) (State, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	for _, field := range requiredArrays {
		raw, ok := fields[field]
		if !ok || !isArray(raw) {
			return State{}, fmt.Errorf("%w: %q is not an array", ErrCorruptState, field)
		}
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	return st.normalized(), nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) > 0 && trimmed[0] == '['
}
