package network

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Problem is the serialized form of a max-flow instance. JSON documents are
// valid YAML and decode through the same path.
//
//	sources: [0, 1]
//	sinks: [4, 5]
//	capacity:
//	  - [0, 0, 4, 6, 0, 0]
//	  - ...
type Problem struct {
	Sources  []int     `yaml:"sources" json:"sources"`
	Sinks    []int     `yaml:"sinks" json:"sinks"`
	Capacity [][]int64 `yaml:"capacity" json:"capacity"`
}

// DecodeProblem reads a single Problem document from r. Unknown fields are
// rejected so that typos do not silently produce an empty network.
func DecodeProblem(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decode problem: empty document: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("decode problem: %w", err)
	}

	return &p, nil
}

// Encode writes the Problem as a YAML document to w.
func (p *Problem) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode problem: %w", err)
	}

	return enc.Close()
}

// Terminals returns the source/sink sets of the Problem.
func (p *Problem) Terminals() Terminals {
	return Terminals{Sources: p.Sources, Sinks: p.Sinks}
}

// Network validates the Problem and returns its dense Capacity and Terminals.
func (p *Problem) Network() (*Capacity, Terminals, error) {
	t := p.Terminals()
	c, _, err := ValidateRows(p.Capacity, t)
	if err != nil {
		return nil, Terminals{}, err
	}

	return c, t, nil
}

// NewProblem captures a Capacity and its Terminals as a serializable Problem.
func NewProblem(c *Capacity, t Terminals) *Problem {
	return &Problem{
		Sources:  append([]int(nil), t.Sources...),
		Sinks:    append([]int(nil), t.Sinks...),
		Capacity: c.Rows(),
	}
}
