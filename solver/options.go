// SPDX-License-Identifier: MIT
// Package: lvmaze/solver
//
// options.go: functional options for the A* solver.

package solver

import (
	"fmt"
	"math"
)

// Option configures an A* solver. Invalid values are recorded and surface as
// ErrBadFactor from the constructor.
type Option func(*Options)

// Options holds the A* score weights: f = g·DistanceFactor + h·HeuristicFactor.
type Options struct {
	DistanceFactor  float64
	HeuristicFactor float64

	err error
}

// DefaultOptions returns DistanceFactor=1, HeuristicFactor=1.
func DefaultOptions() Options {
	return Options{DistanceFactor: 1, HeuristicFactor: 1}
}

func checkFactor(name string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fmt.Errorf("%w: %s=%v", ErrBadFactor, name, f)
	}
	return nil
}

// WithDistanceFactor scales the travelled distance g.
func WithDistanceFactor(f float64) Option {
	return func(o *Options) {
		if err := checkFactor("DistanceFactor", f); err != nil {
			o.err = err
			return
		}
		o.DistanceFactor = f
	}
}

// WithHeuristicFactor scales the heuristic estimate h.
func WithHeuristicFactor(f float64) Option {
	return func(o *Options) {
		if err := checkFactor("HeuristicFactor", f); err != nil {
			o.err = err
			return
		}
		o.HeuristicFactor = f
	}
}
