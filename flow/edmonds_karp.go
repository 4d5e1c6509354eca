package flow

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/network"
)

// EdmondsKarp computes the maximum flow from t.Sources to t.Sinks using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths) over the same
// dense model as PushRelabel. Multiple terminals are reduced to a single pair
// by a super-source feeding each source with its total out-capacity and a
// super-sink draining each sink of its total in-capacity.
//
// It returns the same *Result shape as PushRelabel, with Height == nil and
// Stats.Augmentations counting augmenting paths.
//
// Complexity: O(V · E²), V = n+2.
// Memory:     O(n²) for the residual matrix.
func EdmondsKarp(c *network.Capacity, t network.Terminals, opts Options) (*Result, error) {
	opts.normalize()
	start := time.Now()

	roles, err := network.Validate(c, t)
	if err != nil {
		invalidInputTotal.Inc()
		return nil, err
	}

	// 1) Residual matrix over n+2 nodes with super-source S=n and super-sink T=n+1.
	n := c.N()
	S, T := n, n+1
	capacity := c.Rows()
	residual := buildResidual(c, capacity, roles)

	// 2) Augment along BFS-shortest paths until T is unreachable.
	var stats Stats
	var value int64
	parent := make([]int, n+2)
	for {
		bottleneck := bfsAugmentingPath(residual, parent, S, T)
		if bottleneck == 0 {
			break
		}
		for v := T; v != S; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
		value += bottleneck
		stats.Augmentations++

		if opts.Verbose {
			opts.Logger.WithFields(log.Fields{
				"flow":  bottleneck,
				"total": value,
			}).Debug("augmenting path")
		}
	}

	// 3) Recover the antisymmetric flow on the original nodes.
	flow := recoverFlow(capacity, residual, n)

	res := &Result{Value: value, Flow: flow, Stats: stats}
	observeSolve(AlgorithmEdmondsKarp, stats, start)

	if opts.Verbose {
		opts.Logger.WithFields(log.Fields{
			"value":         value,
			"nodes":         n,
			"augmentations": stats.Augmentations,
		}).Info("edmonds-karp solved")
	}
	return res, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path from s to t with
// positive residual capacity, recording predecessors in parent. It returns
// the path's bottleneck capacity, or 0 if t is unreachable.
func bfsAugmentingPath(residual [][]int64, parent []int, s, t int) int64 {
	for i := range parent {
		parent[i] = -1
	}
	parent[s] = s
	bottle := make([]int64, len(residual))
	bottle[s] = -1 // unbounded

	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for v, r := range residual[u] {
			if r <= 0 || parent[v] != -1 {
				continue
			}
			parent[v] = u
			if bottle[u] < 0 || r < bottle[u] {
				bottle[v] = r
			} else {
				bottle[v] = bottle[u]
			}
			if v == t {
				return bottle[t]
			}
			queue = append(queue, v)
		}
	}
	return 0
}
