// Package network folds abstract transformers across a feed-forward
// architecture and certifies sound output ranges for it.
//
// A Network is an immutable ordered pipeline of Layers, each an affine
// map followed by an activation. Five propagation kinds share the same
// per-layer two-step contract:
//
//   - PropagateExact             one concrete point, reference semantics
//   - PropagateBox               sign-aware interval arithmetic, sound
//   - PropagateVertices          all 2^d input corners, exponential
//   - PropagateVerticesRandom    corners plus uniform samples, a
//     statistical baseline with no soundness guarantee
//   - PropagateZonotope          zonotope domain, sound
//   - PropagateConstrainedZonotope  constrained-zonotope domain with
//     LP-certified final bounds, sound
//
// Quantize rewrites a network into its fixed-point form: weights and
// biases are rounded to the nearest representable value, saturated and
// rescaled by powers of two, every relu becomes a saturating clamp with
// accumulator rounding, and an explicit input-quantization layer is
// prepended so the public entry points still accept unquantized boxes.
// The prepended layer is diagonal with a monotone activation, so the
// abstract propagations apply it exactly on the input box before
// lifting into the abstract domain.
package network
