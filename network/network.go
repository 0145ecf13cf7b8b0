package network

import (
	"context"
	"fmt"

	"github.com/Robert-Debbas/zonotopes/box"
	"github.com/Robert-Debbas/zonotopes/czonotope"
	"github.com/Robert-Debbas/zonotopes/logger"
	"github.com/Robert-Debbas/zonotopes/zonotope"
)

// Network is an ordered, immutable pipeline of Layers.
type Network struct {
	layers    []Layer
	quantized bool
}

// New validates adjacent layer widths and assembles the pipeline.
// Returns ErrNoLayers for an empty pipeline and ErrShapeMismatch when
// one layer's output width disagrees with the next layer's input width.
func New(layers ...Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	for i := 0; i < len(layers)-1; i++ {
		if layers[i].OutDim() != layers[i+1].InDim() {
			return nil, fmt.Errorf("layer %d outputs %d values, layer %d expects %d: %w",
				i, layers[i].OutDim(), i+1, layers[i+1].InDim(), ErrShapeMismatch)
		}
	}

	return &Network{layers: append([]Layer(nil), layers...)}, nil
}

// InDim returns the network's input width. For a quantized network this
// is the width of the prepended input-quantization layer, which equals
// the original input width.
func (n *Network) InDim() int { return n.layers[0].InDim() }

// OutDim returns the network's output width.
func (n *Network) OutDim() int { return n.layers[len(n.layers)-1].OutDim() }

// Len returns the number of layers, counting the input-quantization
// layer of a quantized network.
func (n *Network) Len() int { return len(n.layers) }

// Layers returns a copy of the layer slice.
func (n *Network) Layers() []Layer { return append([]Layer(nil), n.layers...) }

// Quantized reports whether the network went through Quantize.
func (n *Network) Quantized() bool { return n.quantized }

// PropagateExact evaluates the network on one concrete input point.
// This is the reference semantics every sound propagation must enclose.
func (n *Network) PropagateExact(x []float64) ([]float64, error) {
	if len(x) != n.InDim() {
		return nil, fmt.Errorf("input has %d values, network expects %d: %w", len(x), n.InDim(), ErrShapeMismatch)
	}

	y := append([]float64(nil), x...)
	for _, l := range n.layers {
		y = l.applyVector(y)
	}

	return y, nil
}

// PropagateBox pushes an input box through the network with sign-aware
// interval arithmetic. Sound; loses cross-dimension correlations at
// every affine step.
func (n *Network) PropagateBox(in box.Box) (box.Box, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}

	cur := append(box.Box(nil), in...)
	for _, l := range n.layers {
		cur = l.applyBox(cur)
	}

	return cur, nil
}

// PropagateVertices evaluates the network on all 2^d corners of the
// input box and returns their bounding box. Exact for piecewise-linear
// networks, exponential in the input dimension.
func (n *Network) PropagateVertices(in box.Box) (box.Box, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}

	return n.foldPoints(in.Vertices())
}

// PropagateVerticesRandom evaluates the corners plus samples uniform
// interior points and returns the bounding box of all images. The
// result is a statistical baseline with no soundness guarantee; the
// seed makes it reproducible (seed 0 selects a fixed default stream).
func (n *Network) PropagateVerticesRandom(in box.Box, samples int, seed int64) (box.Box, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}

	points, err := in.Sample(samples, seed)
	if err != nil {
		return nil, err
	}

	return n.foldPoints(append(in.Vertices(), points...))
}

// PropagateZonotope lifts the input box into the zonotope domain, folds
// the layers and concretizes. For a quantized network the prepended
// input-quantization layer is applied exactly on the box first: that
// layer is diagonal with a monotone activation, so interval evaluation
// loses nothing, and the abstract pipeline starts from the quantized box.
func (n *Network) PropagateZonotope(in box.Box) (box.Box, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}

	layers := n.layers
	if n.quantized {
		in = layers[0].applyBox(in)
		layers = layers[1:]
	}

	z, err := zonotope.FromBox(in)
	if err != nil {
		return nil, err
	}
	for i, l := range layers {
		if z, err = l.applyZonotope(z); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	log := logger.Logger()
	log.Debug().
		Int("layers", len(layers)).
		Int("symbols", z.Symbols()).
		Msg("zonotope propagation done")

	return z.Concretize(), nil
}

// PropagateConstrainedZonotope is PropagateZonotope in the constrained
// domain: the fold uses only cheap bounds for its case splits, and the
// final enclosure is LP-certified per output dimension. Options are
// passed to the bound solver.
func (n *Network) PropagateConstrainedZonotope(ctx context.Context, in box.Box, variant czonotope.Variant, opts ...czonotope.Option) ([]czonotope.Bound, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}

	layers := n.layers
	if n.quantized {
		in = layers[0].applyBox(in)
		layers = layers[1:]
	}

	cz, err := czonotope.FromBox(in)
	if err != nil {
		return nil, err
	}
	for i, l := range layers {
		if cz, err = l.applyConstrained(cz, variant); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	log := logger.Logger()
	log.Debug().
		Int("layers", len(layers)).
		Int("symbols", cz.Symbols()).
		Int("constraints", len(cz.Constraints())).
		Stringer("variant", variant).
		Msg("constrained propagation done")

	return cz.ConcretizeExact(ctx, opts...)
}

func (n *Network) checkInput(in box.Box) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Dim() != n.InDim() {
		return fmt.Errorf("input box has %d dimensions, network expects %d: %w", in.Dim(), n.InDim(), ErrShapeMismatch)
	}

	return nil
}

// foldPoints pushes a point batch through every layer and encloses the
// images in a box.
func (n *Network) foldPoints(points [][]float64) (box.Box, error) {
	for _, l := range n.layers {
		points = l.applyVertices(points)
	}

	return box.FromVertices(points)
}
