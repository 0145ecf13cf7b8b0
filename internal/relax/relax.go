// Package relax holds the per-dimension case analysis shared by the
// zonotope and constrained-zonotope transformers.
//
// Every nonlinear transformer reduces, per output dimension, to one of
// four cases decided by the dimension's interval enclosure [l, u]:
// the function is constant (Zero/Saturate), the identity (Identity), or
// genuinely nonlinear on [l, u] (Mixed). For the Mixed case the package
// computes a sound linear relaxation
//
//	Slope*x + Center - Half <= f(x) <= Slope*x + Center + Half
//
// together with the hull [GapLo, GapHi] of f(x)-x over [l, u] and the
// output range [OutLo, OutHi] of f over [l, u]. The constrained domain
// turns these extra quantities into inequality constraints; the plain
// zonotope domain uses only Slope/Half/Center.
//
// Clamp here always means clamp(x, 0, hi); callers handle a non-zero
// lower saturation bound by shifting coordinates.
package relax

import "math"

// Kind classifies a dimension's case split.
type Kind uint8

const (
	// Zero: the function is constantly 0 on [l, u].
	Zero Kind = iota
	// Identity: the function is the identity on [l, u].
	Identity
	// Saturate: the function is a non-zero constant (the upper clamp bound).
	Saturate
	// Mixed: the function is nonlinear on [l, u]; a relaxation is required.
	Mixed
)

// Result carries the relaxation parameters for one dimension.
type Result struct {
	Kind  Kind
	Value float64 // saturation constant, Saturate only

	// Mixed only.
	Slope  float64 // relaxation slope a
	Half   float64 // fresh noise-symbol coefficient c/2
	Center float64 // additive center offset of the relaxed row
	GapLo  float64 // min of f(x)-x over [l, u]
	GapHi  float64 // max of f(x)-x over [l, u]
	OutLo  float64 // min of f over [l, u]
	OutHi  float64 // max of f over [l, u]
}

// ReLU computes the case split and relaxation of max(0, x) on [l, u].
//
// The Mixed branch is the minimal-area parallelogram between the chord
// through (l, 0)-(u, u) and its parallel tangent at the origin:
// a = u/(u-l), c = -u*l/(u-l). Requires l <= u. The boundary case
// l == u == 0 lands in Zero, so no division by zero can occur.
func ReLU(l, u float64) Result {
	switch {
	case u <= 0:
		return Result{Kind: Zero}
	case l >= 0:
		return Result{Kind: Identity}
	default:
		a := u / (u - l)
		c := -u * l / (u - l)

		return Result{
			Kind:   Mixed,
			Slope:  a,
			Half:   c / 2,
			Center: c / 2,
			GapLo:  0,
			GapHi:  -l,
			OutLo:  0,
			OutHi:  u,
		}
	}
}

// Clamp computes the case split and relaxation of clamp(x, 0, hi) on
// [l, u], hi > 0. Five branches by the position of [l, u] relative to
// [0, hi]; the three mixed sub-branches each pick a slope and the
// smallest sound offset:
//
//   - l < 0 <= hi <= u: a = min(hi/(hi-l), hi/u), c = max((1-a)*hi, -a*l).
//     The deviation clamp(x)-a*x attains -a*l at x=l and (1-a)*hi at the
//     upper kink, so the max of the two is required for soundness.
//   - l < 0 < u <= hi: identical to the ReLU relaxation.
//   - 0 <= l <= hi < u: a = (hi-l)/(u-l), c = (hi-l)*(1-a), with the
//     center shifted by (1-a)*l: the deviation ranges over
//     [(1-a)*l, (1-a)*hi], equal at both interval endpoints because the
//     slope is exactly the chord slope through (l, l) and (u, hi).
func Clamp(l, u, hi float64) Result {
	switch {
	case u <= 0:
		return Result{Kind: Zero}
	case l >= hi:
		return Result{Kind: Saturate, Value: hi}
	case l >= 0 && u <= hi:
		return Result{Kind: Identity}
	case l < 0 && hi <= u:
		a := math.Min(hi/(hi-l), hi/u)
		c := math.Max((1-a)*hi, -a*l)

		return Result{
			Kind:   Mixed,
			Slope:  a,
			Half:   c / 2,
			Center: c / 2,
			GapLo:  hi - u,
			GapHi:  -l,
			OutLo:  0,
			OutHi:  hi,
		}
	case l < 0:
		// l < 0 < u < hi: the clamp acts as a ReLU on this range.
		r := ReLU(l, u)

		return r
	default:
		// 0 <= l <= hi < u.
		a := (hi - l) / (u - l)
		c := (hi - l) * (1 - a)

		return Result{
			Kind:   Mixed,
			Slope:  a,
			Half:   c / 2,
			Center: (1-a)*l + c/2,
			GapLo:  hi - u,
			GapHi:  0,
			OutLo:  l,
			OutHi:  hi,
		}
	}
}
