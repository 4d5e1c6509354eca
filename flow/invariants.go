package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/preflow/network"
)

// errInvariant marks a broken solver invariant. It is never returned to
// callers of PushRelabel: a violation panics when Options.CheckInvariants is
// set, since it indicates a solver bug rather than bad input.
var errInvariant = errors.New("flow: invariant violated")

// verify checks the final state of a completed solve:
//   - antisymmetry and capacity bounds on every pair
//   - valid labeling on every residual edge
//   - conservation: zero excess and zero net outflow at internal nodes
//   - the source outflow equals the flow absorbed by sinks
//
// Complexity: O(n²).
func (p *preflow) verify() error {
	for u := 0; u < p.n; u++ {
		for v := 0; v < p.n; v++ {
			if p.flow[u][v] != -p.flow[v][u] {
				return fmt.Errorf("antisymmetry on %d→%d: %w", u, v, errInvariant)
			}
			if u != v && p.flow[u][v] > p.capacity[u][v] {
				return fmt.Errorf("capacity on %d→%d: %w", u, v, errInvariant)
			}
			if p.residual(u, v) > 0 && p.height[u] > p.height[v]+1 {
				return fmt.Errorf("labeling on %d→%d: %w", u, v, errInvariant)
			}
		}
	}

	var absorbed int64
	for v, r := range p.roles {
		switch r {
		case network.Internal:
			var net int64
			for w := 0; w < p.n; w++ {
				net += p.flow[v][w]
			}
			if p.excess[v] != 0 || net != 0 {
				return fmt.Errorf("conservation at %d (excess %d, net %d): %w", v, p.excess[v], net, errInvariant)
			}
		case network.Sink:
			absorbed += p.excess[v]
		}
	}
	if value := p.value(); value != absorbed {
		return fmt.Errorf("source outflow %d != sink inflow %d: %w", value, absorbed, errInvariant)
	}
	return nil
}
