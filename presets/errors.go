// SPDX-License-Identifier: MIT
// Package: graphpad/presets
//
// errors.go - sentinel errors for the presets package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Generators attach method context with %w (e.g. "Grid: rows=0 ...: <sentinel>").
//   - Generators never panic at runtime. Option constructors panic on
//     programmer error (nil functions, non-positive spacing).

package presets

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the generator's minimum.
var ErrTooFewVertices = errors.New("presets: parameter too small")

// ErrUnknownPreset indicates a lookup for a name that is not registered.
var ErrUnknownPreset = errors.New("presets: unknown preset")

// ErrUnknownKind indicates a generator kind other than the Kind constants.
var ErrUnknownKind = errors.New("presets: unknown generator kind")
