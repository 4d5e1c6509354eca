// SPDX-License-Identifier: MIT
// Package: preflow/network
//
// builder.go - the single orchestrator of generated networks.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Creates c, resolves cfg, runs cons in order.
//   - Constructors add capacity (parallel edges aggregate), never remove it.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package network

import "fmt"

// Constructor applies a deterministic mutation to a Capacity using the
// resolved builderConfig. Constructors validate parameters early and return
// sentinel errors.
type Constructor func(c *Capacity, cfg builderConfig) error

// Build creates an n-node Capacity, resolves the builder configuration from
// opts, and applies all constructors in order. Any constructor error is
// wrapped with the context "Build: %w" and returned immediately.
//
// Complexity:
//   - Allocation: O(n²).
//   - Applying K constructors: Σ cost of each constructor.
func Build(n int, opts []BuilderOption, cons ...Constructor) (*Capacity, error) {
	c, err := NewCapacity(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrInvalidInput)
		}
		if err = fn(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return c, nil
}

// Edge returns a Constructor adding a single u→v edge of capacity w.
// The configured CapacityFn is not consulted.
func Edge(u, v int, w int64) Constructor {
	return func(c *Capacity, _ builderConfig) error {
		if err := c.Add(u, v, w); err != nil {
			return fmt.Errorf("Edge: %w", err)
		}
		return nil
	}
}
