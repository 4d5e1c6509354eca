package flow

import "github.com/katalvlaran/preflow/network"

// buildResidual returns the (n+2)×(n+2) residual matrix used by the
// augmenting-path solvers: the original nodes [0,n) plus a super-source
// S=n and super-sink T=n+1. S feeds each source its total out-capacity,
// each sink drains its total in-capacity into T, and self-loops are dropped.
//
// Complexity: O(n²) time and memory.
func buildResidual(c *network.Capacity, capacity [][]int64, roles []network.Role) [][]int64 {
	n := c.N()
	S, T := n, n+1

	residual := make([][]int64, n+2)
	for u := range residual {
		residual[u] = make([]int64, n+2)
		if u < n {
			copy(residual[u], capacity[u])
			residual[u][u] = 0
		}
	}
	for v, r := range roles {
		switch r {
		case network.Source:
			residual[S][v] = c.OutSum(v)
		case network.Sink:
			residual[v][T] = c.InSum(v)
		}
	}
	return residual
}

// recoverFlow derives the antisymmetric flow on the original n nodes from
// residual[u][v] = capacity[u][v] - flow[u][v].
func recoverFlow(capacity, residual [][]int64, n int) [][]int64 {
	flow := make([][]int64, n)
	for u := range flow {
		flow[u] = make([]int64, n)
		for v := 0; v < n; v++ {
			if u != v {
				flow[u][v] = capacity[u][v] - residual[u][v]
			}
		}
	}
	return flow
}
