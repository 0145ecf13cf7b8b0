// Package box - deterministic sampling inside a box.
//
// This file centralizes random generation for the statistical baseline.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: sentinel errors only; no panics on user-triggered conditions.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; Sample creates its own stream per
//     call, so concurrent Sample calls are independent and safe.
package box

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Sample draws n points uniformly inside the box using a deterministic
// stream derived from seed. The result carries no soundness guarantee; it
// exists as a statistical ground-truth baseline only.
//
// Returns ErrBadSampleCount when n <= 0 and the box's own validation error
// when the box is invalid.
//
// Complexity: O(n·d) time and space.
func (b Box) Sample(n int, seed int64) ([][]float64, error) {
	if n <= 0 {
		return nil, ErrBadSampleCount
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	rng := rngFromSeed(seed)
	samples := make([][]float64, n)
	for k := 0; k < n; k++ {
		p := make([]float64, len(b))
		for i, iv := range b {
			p[i] = iv.Lo + rng.Float64()*iv.Width()
		}
		samples[k] = p
	}

	return samples, nil
}
