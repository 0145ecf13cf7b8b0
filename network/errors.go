package network

import "errors"

var (
	// ErrShapeMismatch indicates incompatible dimensions: within a layer,
	// between adjacent layers, or between a network and its input.
	ErrShapeMismatch = errors.New("network: shape mismatch")

	// ErrNoLayers indicates a network constructed from zero layers.
	ErrNoLayers = errors.New("network: no layers")

	// ErrNilValue indicates a nil weights matrix or bias vector.
	ErrNilValue = errors.New("network: nil value")

	// ErrBadActivation indicates an activation with an unknown tag, an
	// unknown rounding mode, or invalid clamp bounds.
	ErrBadActivation = errors.New("network: invalid activation")

	// ErrBadConfig indicates a quantization config with a non-finite or
	// inverted saturation bound.
	ErrBadConfig = errors.New("network: invalid quantization config")

	// ErrBadVersion indicates an unknown rescale version.
	ErrBadVersion = errors.New("network: unknown rescale version")

	// ErrQuantized indicates a Quantize call on an already quantized
	// network. Quantizing twice would prepend a second input layer and
	// rescale already rescaled weights.
	ErrQuantized = errors.New("network: already quantized")
)
