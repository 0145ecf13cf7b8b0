package network

import (
	"fmt"
	"math"
)

// ActKind tags a layer's activation function.
type ActKind uint8

const (
	// Identity applies no activation.
	Identity ActKind = iota
	// ReLU applies max(0, x) per dimension.
	ReLU
	// Clamp rounds per the activation's rounding mode, then saturates to
	// the activation's [Lo, Hi] window. Quantized hardware rounds the
	// accumulator before saturating, so rounding always comes first.
	Clamp
)

// Rounding selects how a Clamp activation rounds before saturating.
type Rounding uint8

const (
	// RoundNone skips rounding.
	RoundNone Rounding = iota
	// RoundNearest rounds half away from zero.
	RoundNearest
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// Activation describes a layer's nonlinearity. Lo, Hi and Round are
// meaningful for Clamp only. The zero value is Identity.
type Activation struct {
	Kind  ActKind
	Lo    float64
	Hi    float64
	Round Rounding
}

// ReLUActivation returns the max(0, x) activation.
func ReLUActivation() Activation { return Activation{Kind: ReLU} }

// ClampActivation returns a round-then-saturate activation over [lo, hi].
func ClampActivation(lo, hi float64, round Rounding) Activation {
	return Activation{Kind: Clamp, Lo: lo, Hi: hi, Round: round}
}

func (a Activation) validate() error {
	switch a.Kind {
	case Identity, ReLU:
		return nil
	case Clamp:
		if a.Round > RoundFloor {
			return fmt.Errorf("rounding mode %d: %w", a.Round, ErrBadActivation)
		}
		if math.IsNaN(a.Lo) || math.IsInf(a.Lo, 0) || math.IsNaN(a.Hi) || math.IsInf(a.Hi, 0) || a.Lo >= a.Hi {
			return fmt.Errorf("clamp window [%v, %v]: %w", a.Lo, a.Hi, ErrBadActivation)
		}

		return nil
	default:
		return fmt.Errorf("activation tag %d: %w", a.Kind, ErrBadActivation)
	}
}

// apply evaluates the activation on one concrete value.
func (a Activation) apply(x float64) float64 {
	switch a.Kind {
	case ReLU:
		return math.Max(0, x)
	case Clamp:
		r := x
		switch a.Round {
		case RoundNearest:
			r = math.Round(x)
		case RoundFloor:
			r = math.Floor(x)
		}

		return math.Min(math.Max(r, a.Lo), a.Hi)
	default:
		return x
	}
}
