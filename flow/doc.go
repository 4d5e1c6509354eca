// Package flow computes maximum flows over dense, integer-capacity networks
// described by *network.Capacity and network.Terminals. Any number of
// sources and sinks is supported: sources are an unbounded supply and sinks
// absorb without bound.
//
// The algorithms offered are:
//
// Push–Relabel (PushRelabel, MaxFlow): preflow-push with a relabel-to-front
// ordering of internal nodes. Sources are pinned at height n and saturated up
// front; every internal node is then discharged (push along admissible edges,
// relabel when none remain) until no internal node holds excess.
// O(n³) time, O(n²) memory.
//
// Edmonds–Karp (EdmondsKarp): breadth-first search for shortest augmenting
// paths, with a super-source/super-sink reduction for multiple terminals.
// O(V·E²) time, O(n²) memory.
//
// Dinic (Dinic): BFS level graphs and DFS blocking flows over the same
// reduction. O(V²·E) time, O(n²) memory.
//
// # API
//
// The simplest entry point takes plain slices:
//
//	func MaxFlow(sources, sinks []int, capacity [][]int64) (int64, error)
//
// The full entry points share the Solver signature and return a *Result with
// the flow value, the antisymmetric flow matrix and per-solve Stats:
//
//	func PushRelabel(c *network.Capacity, t network.Terminals, opts Options) (*Result, error)
//	func EdmondsKarp(c *network.Capacity, t network.Terminals, opts Options) (*Result, error)
//	func Dinic(c *network.Capacity, t network.Terminals, opts Options) (*Result, error)
//
// Lookup resolves a Solver by name ("push-relabel", "edmonds-karp", "dinic").
//
// Options configures logging (a logrus.FieldLogger), Verbose tracing and
// CheckInvariants, which asserts antisymmetry, capacity bounds, height
// monotonicity and final conservation while the solver runs.
//
// # Errors
//
// Solvers fail only on input validation, before any state is built. Every
// such error wraps network.ErrInvalidInput:
//
//	network.ErrNonSquare        - capacity matrix is not n×n
//	network.ErrNegativeCapacity - an entry is below zero
//	network.ErrIndexOutOfRange  - a source or sink index is outside [0, n)
//	network.ErrTerminalOverlap  - a node is both source and sink
//	network.ErrCapacityOverflow - capacity totals overflow int64
//
// # Metrics
//
// Each solve updates prometheus collectors registered with the default
// registry: preflow_solves_total, preflow_push_total, preflow_relabel_total,
// preflow_augment_total, preflow_invalid_input_total and
// preflow_solve_duration_seconds.
//
// # Concurrency
//
// Every solve allocates and owns its state; concurrent solves share nothing
// but the metric collectors.
package flow
