package czonotope

import "fmt"

// DefaultTolerance is the simplex optimality tolerance used when no
// WithTolerance option is given.
const DefaultTolerance = 1e-10

// Options holds the tunable parameters of ConcretizeExact.
// Use the With* helpers to build one.
type Options struct {
	tol     float64
	workers int
}

// Option adjusts one field of Options.
type Option func(*Options)

// WithTolerance sets the simplex optimality tolerance.
// Panics if tol is not strictly positive.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("czonotope: WithTolerance(%v): tolerance must be positive", tol))
	}

	return func(o *Options) { o.tol = tol }
}

// WithWorkers sets the number of dimensions solved concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("czonotope: WithWorkers(%d): need at least one worker", n))
	}

	return func(o *Options) { o.workers = n }
}

func defaultOptions() Options {
	return Options{tol: DefaultTolerance, workers: 1}
}
