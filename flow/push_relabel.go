package flow

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/network"
)

// PushRelabel computes the maximum flow from t.Sources to t.Sinks in c using
// the preflow-push method with a relabel-to-front ordering of internal nodes.
//
// It returns:
//   - *Result: value, antisymmetric flow matrix, final heights and Stats
//   - err:     wraps network.ErrInvalidInput for malformed input; nothing else
//
// Steps:
//  1. Validate c and t; no state is allocated on failure.
//  2. Pin sources at height n and saturate every source out-edge.
//  3. Seed the work list with internal nodes in index order.
//  4. Walk the list: discharge the current node; if its height rose, move it
//     to the front. Continue with the node after it.
//  5. Sum flow out of the sources.
//
// Complexity:
//
//	Time:   O(n³); at most 2n-1 relabels per node.
//	Memory: O(n²) for the capacity and flow matrices.
func PushRelabel(c *network.Capacity, t network.Terminals, opts Options) (*Result, error) {
	opts.normalize()
	start := time.Now()

	roles, err := network.Validate(c, t)
	if err != nil {
		invalidInputTotal.Inc()
		return nil, err
	}

	p := newPreflow(c, roles, opts)
	p.saturateSources()

	var internal []int
	for v, r := range roles {
		if r == network.Internal {
			internal = append(internal, v)
		}
	}
	list := newWorkList(p.n, internal)

	for v := list.head; v != nilNode; v = list.next[v] {
		old := p.height[v]
		p.discharge(v)

		if p.height[v] > old {
			list.moveToFront(v)
		}
	}

	if opts.CheckInvariants {
		if err = p.verify(); err != nil {
			panic(err.Error())
		}
	}

	res := &Result{
		Value:  p.value(),
		Flow:   p.flow,
		Height: p.height,
		Stats:  p.stats,
	}
	observeSolve(AlgorithmPushRelabel, res.Stats, start)

	if opts.Verbose {
		opts.Logger.WithFields(log.Fields{
			"value":      res.Value,
			"nodes":      p.n,
			"pushes":     res.Stats.Pushes,
			"relabels":   res.Stats.Relabels,
			"discharges": res.Stats.Discharges,
		}).Info("push-relabel solved")
	}
	return res, nil
}

// MaxFlow returns the maximum total flow deliverable from sources to sinks
// over the n×n capacity matrix, where sinks absorb without bound and sources
// supply without bound. It fails with an error wrapping
// network.ErrInvalidInput if the matrix is not square, holds negative
// entries, or if the index sets overlap or fall outside [0, n).
func MaxFlow(sources, sinks []int, capacity [][]int64) (int64, error) {
	c, err := network.FromRows(capacity)
	if err != nil {
		invalidInputTotal.Inc()
		return 0, err
	}

	res, err := PushRelabel(c, network.Terminals{Sources: sources, Sinks: sinks}, DefaultOptions())
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
