// SPDX-License-Identifier: MIT
// Package: preflow/network
//
// options.go - functional options and deterministic defaults for generators.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; generators
//     themselves never panic and return sentinel errors instead.
//   - Determinism is explicit: randomness only through WithSeed or WithRand.
//
// Deterministic defaults:
//   - rng   = nil                       (pure/deterministic unless seeded)
//   - capFn = ConstantCapacity(1)

package network

import (
	"fmt"
	"math/rand"
)

// defaultCapacity is the edge capacity emitted when no CapacityFn is set.
const defaultCapacity = int64(1)

// CapacityFn produces an edge capacity given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type CapacityFn func(rng *rand.Rand) int64

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng   *rand.Rand // nil means "no randomness"
	capFn CapacityFn // capacity of every generated edge
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{capFn: ConstantCapacity(defaultCapacity)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes generated networks.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithCapacityFn sets the capacity generator of emitted edges.
// Panics on nil.
func WithCapacityFn(fn CapacityFn) BuilderOption {
	if fn == nil {
		panic("network: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capFn = fn
	}
}

// ConstantCapacity returns a CapacityFn which always yields value.
// Panics if value < 0.
func ConstantCapacity(value int64) CapacityFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCapacity: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformCapacity returns a CapacityFn sampling uniformly in [min, max].
// Panics if min < 0 or max < min. Without an RNG it yields min.
func UniformCapacity(min, max int64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCapacity: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
