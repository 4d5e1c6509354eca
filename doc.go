// Package preflow computes maximum flows through integer-capacity networks
// with any number of sources and sinks.
//
// The repository is organized as:
//
//	network/        dense capacity matrices, terminal sets, validation,
//	                YAML/JSON problem documents and seeded generators
//	flow/           Push–Relabel (relabel-to-front), Edmonds–Karp and Dinic
//	cmd/escapepods/ CLI to solve problem files and generate fixtures
//
// A network of n rooms is an n×n matrix where capacity[u][v] bounds the flow
// from u to v. Sources supply without bound and sinks absorb without bound;
// the answer is the largest total that can move from sources to sinks:
//
//	v, err := flow.MaxFlow([]int{0, 1}, []int{4, 5}, capacity)
//
// Invalid input (non-square or negative capacities, out-of-range or
// overlapping terminals) is reported with errors wrapping
// network.ErrInvalidInput.
//
//	go get github.com/katalvlaran/preflow/flow
package preflow
