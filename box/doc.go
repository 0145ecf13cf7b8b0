// Package box provides interval vectors (axis-aligned boxes) used as the
// inputs and outputs of abstract propagation.
//
// The box package provides:
//
//   - Box, an ordered list of [lower, upper] intervals, one per dimension.
//   - Corner-vertex enumeration (all 2^d corners) for exact propagation of
//     piecewise-linear networks.
//   - Deterministic uniform sampling inside a box (seeded; baseline oracle).
//   - Bounding-box reconstruction from a batch of points.
//
// Boxes are validated on construction: every interval must satisfy
// Lo <= Hi with finite endpoints. All operations treat a Box as an
// immutable value and return fresh slices.
package box
