package flow

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/network"
)

// Algorithm names accepted by Lookup.
const (
	AlgorithmPushRelabel = "push-relabel"
	AlgorithmEdmondsKarp = "edmonds-karp"
	AlgorithmDinic       = "dinic"
)

// ErrUnknownAlgorithm is returned by Lookup for an unrecognized name.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// Options configures the max-flow solvers.
//   - Logger: destination of Verbose tracing (default logrus.StandardLogger()).
//   - Verbose: if true, logs every relabel / augmentation at Debug level and a
//     per-solve summary at Info level.
//   - CheckInvariants: if true, the solver asserts antisymmetry, capacity bounds
//     and height monotonicity as it runs, and verifies the final flow. A
//     violation is a programmer error and panics.
type Options struct {
	Logger          log.FieldLogger
	Verbose         bool
	CheckInvariants bool
}

// DefaultOptions returns production-safe defaults: standard logger, no
// tracing, no invariant checks.
func DefaultOptions() Options {
	return Options{Logger: log.StandardLogger()}
}

func (o *Options) normalize() {
	if o.Logger == nil {
		o.Logger = log.StandardLogger()
	}
}

// Stats counts the work performed by a solve.
type Stats struct {
	Pushes        int64 // push operations, including initial source saturation
	Relabels      int64 // relabel operations
	Discharges    int64 // discharge calls that found positive excess
	Augmentations int64 // augmenting paths (Edmonds–Karp and Dinic only)
}

// Result of a max-flow solve.
//   - Value:  the maximum total flow from sources to sinks.
//   - Flow:   n×n antisymmetric flow matrix, Flow[u][v] == -Flow[v][u].
//   - Height: final node labels (push–relabel only; nil otherwise).
type Result struct {
	Value  int64
	Flow   [][]int64
	Height []int64
	Stats  Stats
}

// Solver is the common signature of the max-flow algorithms.
type Solver func(c *network.Capacity, t network.Terminals, opts Options) (*Result, error)

// Lookup returns the Solver registered under name.
func Lookup(name string) (Solver, error) {
	switch name {
	case AlgorithmPushRelabel:
		return PushRelabel, nil
	case AlgorithmEdmondsKarp:
		return EdmondsKarp, nil
	case AlgorithmDinic:
		return Dinic, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}
