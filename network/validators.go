// SPDX-License-Identifier: MIT
// Package: preflow/network
//
// validators.go - whole-network validation run before any solver mutation.
//
// ERROR PRIORITY (enforced in tests):
// nil/shape -> negative entries -> terminal range -> terminal overlap -> overflow.

package network

import (
	"fmt"
	"math"
)

// Validate checks a Capacity and its Terminals for solver use, returning the
// per-node Role classification on success.
//
// Steps:
//  1. Reject a nil Capacity (ErrNonSquare: there is no shape).
//  2. Re-check entries are non-negative (Capacity mutators already enforce this).
//  3. Classify terminals (range and disjointness).
//  4. Reject matrices whose total capacity overflows int64; every flow value,
//     excess and result is bounded by that total.
//
// Complexity: O(n²).
func Validate(c *Capacity, t Terminals) ([]Role, error) {
	if c == nil {
		return nil, fmt.Errorf("nil capacity: %w", ErrNonSquare)
	}

	for i, w := range c.data {
		if w < 0 {
			return nil, fmt.Errorf("edge %d→%d has capacity %d: %w", i/c.n, i%c.n, w, ErrNegativeCapacity)
		}
	}

	roles, err := t.Classify(c.n)
	if err != nil {
		return nil, err
	}

	var total int64
	for i, w := range c.data {
		if i/c.n == i%c.n {
			continue // self-loops never carry flow
		}
		if total > math.MaxInt64-w {
			return nil, fmt.Errorf("at edge %d→%d: %w", i/c.n, i%c.n, ErrCapacityOverflow)
		}
		total += w
	}

	return roles, nil
}

// ValidateRows is the slice-of-rows form of Validate. It returns the dense
// Capacity built from rows along with the node roles.
func ValidateRows(rows [][]int64, t Terminals) (*Capacity, []Role, error) {
	c, err := FromRows(rows)
	if err != nil {
		return nil, nil, err
	}
	roles, err := Validate(c, t)
	if err != nil {
		return nil, nil, err
	}

	return c, roles, nil
}
