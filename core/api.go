// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Boundary accessors that apply the documented fallback rules, so that
//       consumers never scatter empty/NaN checks of their own.
// Policy:
//   - Pure functions; no allocation beyond the returned string.

package core

import (
	"math"
	"strings"
)

// edgeLabelArrow separates the endpoint labels of a derived edge label.
const edgeLabelArrow = " → "

// LabelOf returns the node's stored label, or its ID when no label is set.
//
// Complexity: O(1).
func LabelOf(n Node) string {
	if n.Label == "" {
		return n.ID
	}

	return n.Label
}

// WeightOf returns the edge's traversal cost.
//
// The stored weight is returned when it is a finite, non-zero number. NaN and
// ±Inf fall back to DefaultWeight, and so does zero: a zero Weight is the Go
// zero value of an edge decoded without a weight field.
//
// Complexity: O(1).
func WeightOf(e Edge) float64 {
	w := e.Weight
	if w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return DefaultWeight
	}

	return w
}

// NormalizeWeight maps a caller-supplied weight to the value stored on a new
// edge: anything that is not a finite positive number becomes DefaultWeight.
func NormalizeWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return DefaultWeight
	}

	return w
}

// EdgeLabel derives the display label "<source> → <target>" from the endpoint
// labels. A missing endpoint contributes an empty string.
func EdgeLabel(source, target *Node) string {
	var b strings.Builder
	if source != nil {
		b.WriteString(LabelOf(*source))
	}
	b.WriteString(edgeLabelArrow)
	if target != nil {
		b.WriteString(LabelOf(*target))
	}

	return b.String()
}
