package flow

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/network"
)

// Dinic computes the maximum flow from t.Sources to t.Sinks using Dinic's
// algorithm (BFS level graph + DFS blocking flows) over the same
// super-source/super-sink reduction as EdmondsKarp.
//
// Steps:
//  1. Validate the network and build the (n+2)×(n+2) residual matrix.
//  2. Repeat until the super-sink is unreachable:
//     a. BFS from the super-source to assign levels.
//     b. Push blocking flow along level-increasing edges by DFS, each node
//     resuming from its own edge cursor.
//  3. Recover the antisymmetric flow on the original nodes.
//
// Complexity:
//
//	Time:   O(V²·E), V = n+2.
//	Memory: O(n²) for the residual matrix.
func Dinic(c *network.Capacity, t network.Terminals, opts Options) (*Result, error) {
	opts.normalize()
	start := time.Now()

	roles, err := network.Validate(c, t)
	if err != nil {
		invalidInputTotal.Inc()
		return nil, err
	}

	n := c.N()
	S, T := n, n+1
	capacity := c.Rows()
	residual := buildResidual(c, capacity, roles)

	var stats Stats
	var value int64
	level := make([]int, n+2)
	iter := make([]int, n+2)
	for phase := 1; buildLevels(residual, level, S, T); phase++ {
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dinicPush(residual, level, iter, S, T, math.MaxInt64)
			if pushed == 0 {
				break
			}
			value += pushed
			stats.Augmentations++

			if opts.Verbose {
				opts.Logger.WithFields(log.Fields{
					"phase": phase,
					"flow":  pushed,
					"total": value,
				}).Debug("blocking flow path")
			}
		}
	}

	res := &Result{Value: value, Flow: recoverFlow(capacity, residual, n), Stats: stats}
	observeSolve(AlgorithmDinic, stats, start)

	if opts.Verbose {
		opts.Logger.WithFields(log.Fields{
			"value":         value,
			"nodes":         n,
			"augmentations": stats.Augmentations,
		}).Info("dinic solved")
	}
	return res, nil
}

// buildLevels assigns BFS distances from s over positive-residual edges into
// level (-1 if unreachable) and reports whether t is reachable.
func buildLevels(residual [][]int64, level []int, s, t int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0

	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, r := range residual[u] {
			if r > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level[t] >= 0
}

// dinicPush sends up to available units from u to t along edges of the
// level graph and returns the amount sent. iter[u] is advanced past edges
// which cannot carry more flow in the current phase.
func dinicPush(residual [][]int64, level, iter []int, u, t int, available int64) int64 {
	if u == t {
		return available
	}
	for ; iter[u] < len(residual[u]); iter[u]++ {
		v := iter[u]
		r := residual[u][v]
		if r <= 0 || level[v] != level[u]+1 {
			continue
		}
		if pushed := dinicPush(residual, level, iter, v, t, min(available, r)); pushed > 0 {
			residual[u][v] -= pushed
			residual[v][u] += pushed
			return pushed
		}
	}
	return 0
}
