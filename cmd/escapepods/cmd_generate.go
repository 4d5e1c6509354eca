package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	mbp "github.com/katalvlaran/preflow/internal/mainboilerplate"
	"github.com/katalvlaran/preflow/network"
)

type cmdGenerate struct {
	Kind        string  `long:"kind" short:"k" required:"true" choice:"path" choice:"layered" choice:"complete" choice:"random" description:"Network topology"`
	Nodes       int     `long:"nodes" short:"n" default:"6" description:"Number of nodes (ignored for layered networks)"`
	Layers      []int   `long:"layer" description:"Width of a layer, repeated once per layer (layered only)"`
	Probability float64 `long:"probability" default:"0.3" description:"Edge probability (random only)"`
	Seed        int64   `long:"seed" default:"1" description:"Seed of capacities and random edges"`
	MinCapacity int64   `long:"min-capacity" default:"1" description:"Minimum edge capacity"`
	MaxCapacity int64   `long:"max-capacity" default:"10" description:"Maximum edge capacity"`
	Sources     []int   `long:"source" description:"Source node, repeatable (default: 0)"`
	Sinks       []int   `long:"sink" description:"Sink node, repeatable (default: the last node)"`
	Output      string  `long:"output" short:"o" default:"-" description:"Output file, or - for stdout"`
}

func (cmd *cmdGenerate) Execute([]string) error {
	mbp.InitLog(Config.Log)

	problem, err := cmd.generate()
	mbp.Must(err, "failed to generate network", "kind", cmd.Kind)

	out, err := createOutput(cmd.Output)
	mbp.Must(err, "failed to create output", "output", cmd.Output)

	if err = problem.Encode(out); err != nil {
		_ = out.Close()
		return errors.Wrap(err, "writing problem")
	}
	return out.Close()
}

// generate builds the configured network and its terminals.
func (cmd *cmdGenerate) generate() (*network.Problem, error) {
	if cmd.MinCapacity < 0 || cmd.MaxCapacity < cmd.MinCapacity {
		return nil, errors.Errorf("invalid capacity range [%d, %d]", cmd.MinCapacity, cmd.MaxCapacity)
	}
	var opts = []network.BuilderOption{
		network.WithSeed(cmd.Seed),
		network.WithCapacityFn(network.UniformCapacity(cmd.MinCapacity, cmd.MaxCapacity)),
	}

	var n = cmd.Nodes
	var terms network.Terminals
	var con network.Constructor

	switch cmd.Kind {
	case "path":
		con = network.Path()
	case "layered":
		n = 0
		for _, w := range cmd.Layers {
			n += w
		}
		con = network.Layered(cmd.Layers...)
		terms = network.LayeredTerminals(cmd.Layers...)
	case "complete":
		con = network.Complete()
	case "random":
		con = network.RandomSparse(cmd.Probability)
	default:
		return nil, errors.Errorf("unknown kind %q", cmd.Kind)
	}

	c, err := network.Build(n, opts, con)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s network", cmd.Kind)
	}

	if len(cmd.Sources) != 0 {
		terms.Sources = cmd.Sources
	} else if terms.Sources == nil && n > 0 {
		terms.Sources = []int{0}
	}
	if len(cmd.Sinks) != 0 {
		terms.Sinks = cmd.Sinks
	} else if terms.Sinks == nil && n > 0 {
		terms.Sinks = []int{n - 1}
	}
	if _, err = network.Validate(c, terms); err != nil {
		return nil, errors.Wrap(err, "validating terminals")
	}

	log.WithFields(log.Fields{
		"kind":    cmd.Kind,
		"nodes":   n,
		"sources": terms.Sources,
		"sinks":   terms.Sinks,
	}).Info("generated network")

	return network.NewProblem(c, terms), nil
}
