// SPDX-License-Identifier: MIT
// Package: preflow/network
//
// terminals.go - source/sink classification of network nodes.
//
// Contract:
//   - Sources and Sinks are sets: duplicates inside one set are tolerated.
//   - Every index must lie in [0, n) (else ErrIndexOutOfRange).
//   - The two sets must be disjoint (else ErrTerminalOverlap).
//   - Nodes in neither set are Internal.

package network

import "fmt"

// Role classifies a node for the lifetime of a solve.
type Role uint8

const (
	// Internal nodes conserve flow once the solve completes.
	Internal Role = iota
	// Source nodes are an unbounded supply.
	Source
	// Sink nodes absorb any amount of flow.
	Sink
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return "internal"
	}
}

// Terminals names the source and sink nodes of a network.
type Terminals struct {
	Sources []int `yaml:"sources" json:"sources"`
	Sinks   []int `yaml:"sinks" json:"sinks"`
}

// Classify validates the Terminals against a network of n nodes and returns
// the Role of every node, indexed by node.
// Complexity: O(n + |Sources| + |Sinks|).
func (t Terminals) Classify(n int) ([]Role, error) {
	roles := make([]Role, n)

	for _, s := range t.Sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("source %d not in [0,%d): %w", s, n, ErrIndexOutOfRange)
		}
		roles[s] = Source
	}
	for _, k := range t.Sinks {
		if k < 0 || k >= n {
			return nil, fmt.Errorf("sink %d not in [0,%d): %w", k, n, ErrIndexOutOfRange)
		}
		if roles[k] == Source {
			return nil, fmt.Errorf("node %d: %w", k, ErrTerminalOverlap)
		}
		roles[k] = Sink
	}

	return roles, nil
}
