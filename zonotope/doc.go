// Package zonotope implements the plain zonotope abstract domain for
// sound range analysis of feed-forward networks.
//
// A zonotope is a center vector b plus a generator matrix W mapping a
// vector of noise symbols eps ∈ [-1,1]^m into value space:
//
//	{ W·eps + b : eps ∈ [-1,1]^m }
//
// The package provides:
//
//   - FromBox: lifting an input box into a zonotope (one noise symbol per
//     input dimension).
//   - Linear: the exact affine transformer W' ·z + b'.
//   - ReLU, Clamp, Round, Floor: sound abstract transformers; the
//     nonlinear ones allocate one fresh noise symbol per unstable
//     dimension only, so the generator width grows with genuine
//     uncertainty rather than with layer count.
//   - Concretize: the interval enclosure b_i ± Σ_j |W_ij|, exact for the
//     zonotope's own shape.
//
// Every transformer treats its receiver as immutable and returns a fresh
// value; a zonotope can therefore be branched without defensive copies.
package zonotope
