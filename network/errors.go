// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the network
// package. Validation paths MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is.
//
// Every validation sentinel wraps ErrInvalidInput, so a single
// errors.Is(err, ErrInvalidInput) check classifies any rejected input.

package network

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella class of every input-validation failure.
// Not retryable: the caller must supply corrected input.
var ErrInvalidInput = errors.New("network: invalid input")

var (
	// ErrNonSquare signals that a capacity matrix is not n×n.
	ErrNonSquare = fmt.Errorf("capacity matrix is not square: %w", ErrInvalidInput)

	// ErrNegativeCapacity signals a capacity entry below zero.
	ErrNegativeCapacity = fmt.Errorf("negative capacity: %w", ErrInvalidInput)

	// ErrIndexOutOfRange signals a node index outside [0, n).
	ErrIndexOutOfRange = fmt.Errorf("node index out of range: %w", ErrInvalidInput)

	// ErrTerminalOverlap signals a node listed both as a source and as a sink.
	ErrTerminalOverlap = fmt.Errorf("node is both source and sink: %w", ErrInvalidInput)

	// ErrCapacityOverflow signals capacity totals which cannot be represented in int64.
	ErrCapacityOverflow = fmt.Errorf("capacity total overflows int64: %w", ErrInvalidInput)

	// ErrBadSize signals a generator parameter below its allowed minimum.
	ErrBadSize = fmt.Errorf("size parameter too small: %w", ErrInvalidInput)

	// ErrInvalidProbability signals a probability outside [0,1].
	ErrInvalidProbability = fmt.Errorf("probability out of range: %w", ErrInvalidInput)

	// ErrNeedRandSource signals a stochastic generator invoked without WithSeed/WithRand.
	ErrNeedRandSource = fmt.Errorf("rng is required: %w", ErrInvalidInput)
)

// capacityErrorf wraps an underlying error with Capacity method context.
func capacityErrorf(method string, u, v int, err error) error {
	return fmt.Errorf("Capacity.%s(%d,%d): %w", method, u, v, err)
}
