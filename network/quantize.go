package network

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Robert-Debbas/zonotopes/logger"
)

// RescaleVersion selects the fixed-point rescale convention. Both model
// a 2^Fh accumulator scale at the hidden activations; they differ in
// where the factor lives.
type RescaleVersion uint8

const (
	// RescaleFolded folds one factor of 2^Fh into every hidden layer's
	// weight exponent and unwinds the accumulated 2^((L-1)·Fh) in the
	// final layer.
	RescaleFolded RescaleVersion = iota
	// RescaleDeferred holds the hidden scale constant: each middle layer
	// consumes the 2^Fh its input carries and re-emits it, and the final
	// layer unwinds a single 2^Fh.
	RescaleDeferred
)

// String implements fmt.Stringer for diagnostics.
func (v RescaleVersion) String() string {
	switch v {
	case RescaleFolded:
		return "folded"
	case RescaleDeferred:
		return "deferred"
	default:
		return fmt.Sprintf("version(%d)", uint8(v))
	}
}

func (v RescaleVersion) valid() bool { return v == RescaleFolded || v == RescaleDeferred }

// QuantConfig holds the fixed-point format: fractional-bit counts for
// weights, biases, inputs and hidden accumulators, plus the saturation
// windows of each quantized quantity.
type QuantConfig struct {
	Fw  int // weight fractional bits
	Fb  int // bias fractional bits
	Fin int // input fractional bits
	Fh  int // hidden accumulator fractional bits

	ClbIn, CubIn float64 // input saturation window
	ClbW, CubW   float64 // weight saturation window
	ClbB, CubB   float64 // bias saturation window
	CubH         float64 // hidden activation upper saturation bound
}

// Validate rejects non-finite or inverted saturation windows before any
// rewrite begins. CubH must be positive: the hidden clamp lower bound
// is fixed at zero.
func (c QuantConfig) Validate() error {
	windows := []struct {
		name   string
		lo, hi float64
	}{
		{"input", c.ClbIn, c.CubIn},
		{"weight", c.ClbW, c.CubW},
		{"bias", c.ClbB, c.CubB},
		{"hidden", 0, c.CubH},
	}
	for _, w := range windows {
		if math.IsNaN(w.lo) || math.IsInf(w.lo, 0) || math.IsNaN(w.hi) || math.IsInf(w.hi, 0) || w.lo >= w.hi {
			return fmt.Errorf("%s window [%v, %v]: %w", w.name, w.lo, w.hi, ErrBadConfig)
		}
	}

	return nil
}

// Quantize returns the fixed-point rewrite of the network: every weight
// and bias is rounded to the nearest representable value, saturated to
// its window and rescaled by the version's power-of-two exponents;
// every relu becomes clamp(0, CubH) with accumulator rounding; and an
// input-quantization layer (scale 2^Fin, round, saturate to
// [ClbIn, CubIn]) is prepended so the entry points still accept
// unquantized boxes.
//
// The receiver is not modified and shares no state with the result.
// Returns ErrQuantized when the receiver is already quantized,
// ErrBadConfig for an invalid config and ErrBadVersion for an unknown
// version.
func (n *Network) Quantize(cfg QuantConfig, version RescaleVersion) (*Network, error) {
	if n.quantized {
		return nil, ErrQuantized
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !version.valid() {
		return nil, fmt.Errorf("%v: %w", version, ErrBadVersion)
	}

	count := len(n.layers)
	layers := make([]Layer, 0, count+1)
	layers = append(layers, inputLayer(n.InDim(), cfg))
	for i, l := range n.layers {
		ew, eb := rescaleExponents(version, i, count, cfg)

		w := quantizeDense(l.w, cfg.Fw, cfg.ClbW, cfg.CubW, ew)
		b := quantizeVec(l.b, cfg.Fb, cfg.ClbB, cfg.CubB, eb)

		act := l.act
		if act.Kind == ReLU {
			act = ClampActivation(0, cfg.CubH, RoundNearest)
		}

		layers = append(layers, Layer{w: w, b: b, act: act})
	}

	log := logger.Logger()
	log.Debug().
		Int("layers", count).
		Stringer("version", version).
		Msg("network quantized")

	return &Network{layers: layers, quantized: true}, nil
}

// rescaleExponents returns the weight and bias exponents of layer i in
// an L-layer network. A single layer is simultaneously first and last:
// the 2^Fh factors cancel entirely and only the input and format scales
// remain, identically under both versions.
func rescaleExponents(version RescaleVersion, i, count int, cfg QuantConfig) (ew, eb int) {
	if count == 1 {
		return -cfg.Fw - cfg.Fin, -cfg.Fb
	}

	switch {
	case i == 0:
		ew, eb = cfg.Fh-cfg.Fw-cfg.Fin, cfg.Fh-cfg.Fb
	case i == count-1:
		if version == RescaleFolded {
			ew, eb = -cfg.Fw-(count-1)*cfg.Fh, -cfg.Fb-(count-1)*cfg.Fh
		} else {
			ew, eb = -cfg.Fw-cfg.Fh, -cfg.Fb-cfg.Fh
		}
	default:
		if version == RescaleFolded {
			ew, eb = cfg.Fh-cfg.Fw, cfg.Fh-cfg.Fb
		} else {
			ew, eb = -cfg.Fw, cfg.Fh-cfg.Fb
		}
	}

	return ew, eb
}

// inputLayer builds the prepended quantization layer: 2^Fin on the
// diagonal, zero bias, round then saturate to the input window.
func inputLayer(dim int, cfg QuantConfig) Layer {
	w := mat.NewDense(dim, dim, nil)
	scale := math.Ldexp(1, cfg.Fin)
	for i := 0; i < dim; i++ {
		w.Set(i, i, scale)
	}

	return Layer{
		w:   w,
		b:   mat.NewVecDense(dim, nil),
		act: ClampActivation(cfg.ClbIn, cfg.CubIn, RoundNearest),
	}
}

// quantizeValue rounds v to frac fractional bits, saturates the integer
// representation to [lo, hi] and applies the rescale exponent exp.
func quantizeValue(v float64, frac int, lo, hi float64, exp int) float64 {
	q := math.Round(math.Ldexp(v, frac))
	q = math.Min(math.Max(q, lo), hi)

	return math.Ldexp(q, exp)
}

func quantizeDense(m *mat.Dense, frac int, lo, hi float64, exp int) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, quantizeValue(m.At(i, j), frac, lo, hi, exp))
		}
	}

	return out
}

func quantizeVec(v *mat.VecDense, frac int, lo, hi float64, exp int) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, quantizeValue(v.AtVec(i), frac, lo, hi, exp))
	}

	return out
}
