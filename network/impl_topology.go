// SPDX-License-Identifier: MIT
// Package: preflow/network
//
// impl_topology.go - Path, Layered, Complete and RandomSparse constructors.
//
// Determinism:
//   - Edge emission order is u asc, then v asc; capacities are drawn from
//     cfg.capFn in that order, so a fixed seed yields a fixed matrix.
//   - Self-loops are never emitted.

package network

import "fmt"

// File-local constants (stable method tags and domains).
const (
	methodPath         = "Path"
	methodLayered      = "Layered"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes = 2
	probMin      = 0.0
	probMax      = 1.0
)

// Path returns a Constructor emitting the chain 0→1→…→n-1.
// Requires n ≥ 2.
// Complexity: O(n).
func Path() Constructor {
	return func(c *Capacity, cfg builderConfig) error {
		if c.n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, c.n, minPathNodes, ErrBadSize)
		}
		for u := 0; u+1 < c.n; u++ {
			if err := c.Add(u, u+1, cfg.capFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		return nil
	}
}

// Layered returns a Constructor partitioning nodes [0, Σlayers) into
// consecutive layers and fully connecting every node of layer k to every
// node of layer k+1. Requires at least two layers, each non-empty, fitting
// within the network.
// Complexity: O(Σ |L_k|·|L_k+1|).
func Layered(layers ...int) Constructor {
	return func(c *Capacity, cfg builderConfig) error {
		if len(layers) < 2 {
			return fmt.Errorf("%s: %d layers < min=2: %w", methodLayered, len(layers), ErrBadSize)
		}
		var total int
		for i, w := range layers {
			if w < 1 {
				return fmt.Errorf("%s: layer %d has width %d: %w", methodLayered, i, w, ErrBadSize)
			}
			total += w
		}
		if total > c.n {
			return fmt.Errorf("%s: %d layered nodes exceed n=%d: %w", methodLayered, total, c.n, ErrIndexOutOfRange)
		}

		start := 0
		for k := 0; k+1 < len(layers); k++ {
			next := start + layers[k]
			for u := start; u < next; u++ {
				for v := next; v < next+layers[k+1]; v++ {
					if err := c.Add(u, v, cfg.capFn(cfg.rng)); err != nil {
						return fmt.Errorf("%s: %w", methodLayered, err)
					}
				}
			}
			start = next
		}
		return nil
	}
}

// LayeredTerminals returns the Terminals of a Layered network: the first
// layer is the source set and the last layer is the sink set.
func LayeredTerminals(layers ...int) Terminals {
	var t Terminals
	if len(layers) == 0 {
		return t
	}
	for i := 0; i < layers[0]; i++ {
		t.Sources = append(t.Sources, i)
	}
	var last int
	for _, w := range layers[:len(layers)-1] {
		last += w
	}
	for i := 0; i < layers[len(layers)-1]; i++ {
		t.Sinks = append(t.Sinks, last+i)
	}
	return t
}

// Complete returns a Constructor emitting every ordered pair u→v, u ≠ v.
// Complexity: O(n²).
func Complete() Constructor {
	return func(c *Capacity, cfg builderConfig) error {
		for u := 0; u < c.n; u++ {
			for v := 0; v < c.n; v++ {
				if u == v {
					continue
				}
				if err := c.Add(u, v, cfg.capFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor including every ordered pair u→v, u ≠ v,
// independently with probability p. An RNG is required when 0 < p < 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(p float64) Constructor {
	return func(c *Capacity, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for u := 0; u < c.n; u++ {
			for v := 0; v < c.n; v++ {
				if u == v {
					continue
				}
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				if err := c.Add(u, v, cfg.capFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}
		return nil
	}
}
