// Package presets provides ready-to-load graphs: the built-in examples and
// parametric generators.
//
// Every preset is a plain core.Snapshot meant for store.SetGraph, so loading
// one is a single undoable mutation.
//
// Examples (Examples, Lookup):
//
//   - "bfs-vs-dijkstra": a two-hop expensive route A→B→E and a four-hop cheap
//     route A→C→D→E. BFS and Dijkstra disagree on it.
//   - "branchy-graph": several alternative routes from S to T with different
//     costs and lengths.
//
// Generators (Path, Cycle, Star, Grid, Complete, or Generate by Kind):
//
//   - Directed topologies with a layout computed from WithSpacing/WithOrigin.
//   - Deterministic: same arguments and options give the same snapshot.
//   - Weights default to 1; WithWeightFn / WithUniformWeights with WithSeed
//     give reproducible weighted fixtures.
//   - Node IDs come from an IDFn (decimal by default, spreadsheet columns or
//     prefixed numbers on request); Grid always uses "r,c".
//
// Errors:
//
//   - ErrTooFewVertices: a size parameter is below the generator minimum.
//   - ErrUnknownPreset:  Lookup of an unregistered example.
//   - ErrUnknownKind:    Generate with an unknown Kind.
package presets
