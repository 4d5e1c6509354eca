package flow

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/network"
)

// preflow is the complete mutable state of one push–relabel solve. It is
// created per call, owned exclusively by that call, and threaded by pointer
// through push, relabel and discharge.
//
// Invariants maintained between operations:
//   - flow[u][v] == -flow[v][u]                          (antisymmetry)
//   - capacity[u][v] - flow[u][v] ≥ 0                    (capacity bound)
//   - residual(u,v) > 0 ⇒ height[u] ≤ height[v] + 1      (valid labeling)
//   - height[s] == n for every source s
//   - excess[v] ≥ 0 for non-source v; sources are not tracked
type preflow struct {
	n        int
	roles    []network.Role
	sources  []int
	capacity [][]int64
	flow     [][]int64
	height   []int64
	excess   []int64
	cursor   []int // per-node "current neighbor" of discharge

	stats Stats
	opts  Options
}

// newPreflow allocates solver state for a validated network.
// Complexity: O(n²) time and memory.
func newPreflow(c *network.Capacity, roles []network.Role, opts Options) *preflow {
	n := c.N()
	p := &preflow{
		n:        n,
		roles:    roles,
		capacity: c.Rows(),
		flow:     make([][]int64, n),
		height:   make([]int64, n),
		excess:   make([]int64, n),
		cursor:   make([]int, n),
		opts:     opts,
	}
	for u := range p.flow {
		p.flow[u] = make([]int64, n)
	}
	for v, r := range roles {
		if r == network.Source {
			p.sources = append(p.sources, v)
		}
	}

	return p
}

// residual returns the remaining capacity of v→w. Self-loops never carry flow.
func (p *preflow) residual(v, w int) int64 {
	if v == w {
		return 0
	}
	return p.capacity[v][w] - p.flow[v][w]
}

// send moves amount units of flow along v→w, maintaining antisymmetry and
// the excess of both endpoints. Sources are exempt from excess accounting.
func (p *preflow) send(v, w int, amount int64) {
	p.flow[v][w] += amount
	p.flow[w][v] -= amount

	if p.roles[v] != network.Source {
		p.excess[v] -= amount
	}
	if p.roles[w] != network.Source {
		p.excess[w] += amount
	}
	p.stats.Pushes++

	if p.opts.CheckInvariants {
		if p.flow[v][w] != -p.flow[w][v] {
			panic(fmt.Sprintf("flow: antisymmetry violated on %d→%d", v, w))
		}
		if p.residual(v, w) < 0 || p.residual(w, v) < 0 {
			panic(fmt.Sprintf("flow: capacity bound violated on %d→%d", v, w))
		}
		if p.roles[v] != network.Source && p.excess[v] < 0 {
			panic(fmt.Sprintf("flow: negative excess at node %d", v))
		}
	}
}

// saturateSources pins every source at height n and pushes the full residual
// capacity of each source's outgoing edges. Edges between two sources are
// left untouched: they cancel in the result.
func (p *preflow) saturateSources() {
	for _, s := range p.sources {
		p.height[s] = int64(p.n)
	}
	for _, s := range p.sources {
		for w := 0; w < p.n; w++ {
			if p.roles[w] == network.Source {
				continue
			}
			if r := p.residual(s, w); r > 0 {
				p.send(s, w, r)
			}
		}
	}
}

// admissible reports whether v→w may receive a push.
func (p *preflow) admissible(v, w int) bool {
	return p.residual(v, w) > 0 && p.height[v] == p.height[w]+1
}

// push moves min(excess[v], residual(v,w)) units along the admissible edge v→w.
func (p *preflow) push(v, w int) {
	if p.opts.CheckInvariants && (p.excess[v] <= 0 || !p.admissible(v, w)) {
		panic(fmt.Sprintf("flow: push(%d,%d) is not applicable", v, w))
	}

	amount := p.residual(v, w)
	if p.excess[v] < amount {
		amount = p.excess[v]
	}
	p.send(v, w, amount)
}

// relabel lifts v to one above its lowest residual neighbor. It is applicable
// only when v is active and has no admissible edge, which makes the new
// height strictly greater than the old one.
func (p *preflow) relabel(v int) {
	var (
		found bool
		minH  int64
	)
	for w := 0; w < p.n; w++ {
		if p.residual(v, w) > 0 && (!found || p.height[w] < minH) {
			minH, found = p.height[w], true
		}
	}
	// An active node always has a residual path back to a source.
	if !found {
		panic(fmt.Sprintf("flow: relabel(%d) of node without residual edges", v))
	}

	old := p.height[v]
	p.height[v] = minH + 1
	p.stats.Relabels++

	if p.opts.CheckInvariants {
		if p.height[v] <= old {
			panic(fmt.Sprintf("flow: relabel(%d) lowered height %d→%d", v, old, p.height[v]))
		}
		if p.height[v] > int64(2*p.n-1) {
			panic(fmt.Sprintf("flow: relabel(%d) exceeded height bound: %d", v, p.height[v]))
		}
	}
	if p.opts.Verbose {
		p.opts.Logger.WithFields(log.Fields{
			"node": v,
			"from": old,
			"to":   p.height[v],
		}).Debug("relabel")
	}
}

// discharge drains the excess of v. Neighbors are tried round-robin from
// cursor[v]; an inadmissible neighbor advances the cursor, and an exhausted
// cursor triggers relabel(v) and a reset to 0.
func (p *preflow) discharge(v int) {
	if p.excess[v] == 0 {
		return
	}
	p.stats.Discharges++

	for p.excess[v] > 0 {
		if p.cursor[v] == p.n {
			p.relabel(v)
			p.cursor[v] = 0
			continue
		}
		// The cursor is not advanced after a push: either the edge saturated
		// (and fails admissibility next round) or the excess reached zero.
		if w := p.cursor[v]; p.admissible(v, w) {
			p.push(v, w)
		} else {
			p.cursor[v]++
		}
	}
}

// value sums flow out of every source. Flow between two sources cancels by
// antisymmetry.
func (p *preflow) value() int64 {
	var total int64
	for _, s := range p.sources {
		for w := 0; w < p.n; w++ {
			total += p.flow[s][w]
		}
	}
	return total
}
