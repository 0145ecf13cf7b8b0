// Package zonotopes certifies sound output ranges of feed-forward
// neural networks, including fixed-point quantized ones, by abstract
// interpretation.
//
// Instead of evaluating a network on points, the engine propagates an
// abstract value through it and concretizes the result into an interval
// per output dimension that provably contains every reachable output.
//
// The module is organized bottom-up:
//
//   - box       — interval vectors: validation, vertex enumeration,
//     deterministic sampling for statistical baselines
//   - zonotope  — the zonotope abstract domain: affine maps are exact,
//     relu/clamp/round get sound minimal-area relaxations
//   - czonotope — the constrained-zonotope domain: zonotope plus an
//     append-only store of linear inequalities over the noise symbols,
//     with LP-certified exact bound extraction
//   - network   — the Layer/Network engine: five propagation kinds over
//     one per-layer contract, and the fixed-point quantization rewrite
//   - logger    — opt-in diagnostics shared by the engine and solver
//
// A typical use builds a Network from weight matrices, optionally
// quantizes it, and propagates an input box:
//
//	n, _ := network.New(layers...)
//	bounds, _ := n.PropagateConstrainedZonotope(ctx, inputBox, czonotope.Standard)
//
// Every propagation except the random-vertex baseline is sound: the
// returned enclosure over-approximates the true output range. The
// constrained domain is never looser than the plain zonotope under the
// standard encoding and pays for its precision with one pair of linear
// programs per output dimension.
package zonotopes
