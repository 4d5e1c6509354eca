// Package network provides the capacitated directed network model consumed
// by the flow solvers. Capacity is a concrete, row-major n×n matrix of int64
// values stored in a flat slice for cache friendliness.
package network

import (
	"fmt"
	"math"
	"strings"
)

// Capacity is a dense n×n matrix of non-negative edge capacities.
// At(u, v) is the maximum flow allowed from u to v; 0 means "no edge".
// At(u, v) and At(v, u) are independent.
type Capacity struct {
	n    int     // number of nodes
	data []int64 // flat backing storage, length == n*n
}

// NewCapacity creates an n×n Capacity with every entry zero.
// A zero-node network is valid and carries no flow.
// Complexity: O(n²) time and memory.
func NewCapacity(n int) (*Capacity, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewCapacity(%d): %w", n, ErrBadSize)
	}

	return &Capacity{n: n, data: make([]int64, n*n)}, nil
}

// FromRows builds a Capacity from a slice-of-rows representation.
// Stage 1 (Validate): every row has exactly len(rows) entries, all ≥ 0.
// Stage 2 (Execute): copy rows into flat storage.
// The input is not retained.
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Capacity, error) {
	n := len(rows)
	for u, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", u, len(row), n, ErrNonSquare)
		}
		for v, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("edge %d→%d has capacity %d: %w", u, v, c, ErrNegativeCapacity)
			}
		}
	}

	c := &Capacity{n: n, data: make([]int64, n*n)}
	for u, row := range rows {
		copy(c.data[u*n:(u+1)*n], row)
	}

	return c, nil
}

// N returns the number of nodes.
func (c *Capacity) N() int { return c.n }

// indexOf computes the flat index for (u, v) or returns ErrIndexOutOfRange.
func (c *Capacity) indexOf(method string, u, v int) (int, error) {
	if u < 0 || u >= c.n || v < 0 || v >= c.n {
		return 0, capacityErrorf(method, u, v, ErrIndexOutOfRange)
	}

	return u*c.n + v, nil
}

// At returns the capacity of edge u→v.
func (c *Capacity) At(u, v int) (int64, error) {
	idx, err := c.indexOf("At", u, v)
	if err != nil {
		return 0, err
	}

	return c.data[idx], nil
}

// Set assigns capacity w to edge u→v. Negative capacities are rejected.
func (c *Capacity) Set(u, v int, w int64) error {
	idx, err := c.indexOf("Set", u, v)
	if err != nil {
		return err
	}
	if w < 0 {
		return capacityErrorf("Set", u, v, ErrNegativeCapacity)
	}
	c.data[idx] = w

	return nil
}

// Add increases the capacity of edge u→v by w, aggregating parallel edges.
func (c *Capacity) Add(u, v int, w int64) error {
	idx, err := c.indexOf("Add", u, v)
	if err != nil {
		return err
	}
	if w < 0 {
		return capacityErrorf("Add", u, v, ErrNegativeCapacity)
	}
	if c.data[idx] > math.MaxInt64-w {
		return capacityErrorf("Add", u, v, ErrCapacityOverflow)
	}
	c.data[idx] += w

	return nil
}

// at is the unchecked accessor used by solvers on validated indices.
func (c *Capacity) at(u, v int) int64 { return c.data[u*c.n+v] }

// Row returns a copy of the capacities out of u.
func (c *Capacity) Row(u int) ([]int64, error) {
	if u < 0 || u >= c.n {
		return nil, capacityErrorf("Row", u, 0, ErrIndexOutOfRange)
	}
	out := make([]int64, c.n)
	copy(out, c.data[u*c.n:(u+1)*c.n])

	return out, nil
}

// Rows returns a freshly allocated slice-of-rows copy of the matrix.
func (c *Capacity) Rows() [][]int64 {
	rows := make([][]int64, c.n)
	for u := range rows {
		rows[u] = make([]int64, c.n)
		copy(rows[u], c.data[u*c.n:(u+1)*c.n])
	}

	return rows
}

// Clone returns a deep copy of the Capacity.
func (c *Capacity) Clone() *Capacity {
	data := make([]int64, len(c.data))
	copy(data, c.data)

	return &Capacity{n: c.n, data: data}
}

// OutSum returns the total capacity of edges leaving u, excluding u→u.
// Panics if u is out of range.
func (c *Capacity) OutSum(u int) int64 {
	var sum int64
	for v := 0; v < c.n; v++ {
		if v != u {
			sum += c.at(u, v)
		}
	}

	return sum
}

// InSum returns the total capacity of edges entering v, excluding v→v.
// Panics if v is out of range.
func (c *Capacity) InSum(v int) int64 {
	var sum int64
	for u := 0; u < c.n; u++ {
		if u != v {
			sum += c.at(u, v)
		}
	}

	return sum
}

// String implements fmt.Stringer for easy debugging.
func (c *Capacity) String() string {
	var sb strings.Builder
	for u := 0; u < c.n; u++ {
		sb.WriteString("[")
		for v := 0; v < c.n; v++ {
			if v > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d", c.at(u, v))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
