package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/preflow/flow"
	mbp "github.com/katalvlaran/preflow/internal/mainboilerplate"
	"github.com/katalvlaran/preflow/network"
)

type cmdSolve struct {
	Input           string `long:"input" short:"i" required:"true" description:"Problem file (YAML or JSON), or - for stdin"`
	Algorithm       string `long:"algorithm" short:"a" default:"push-relabel" choice:"push-relabel" choice:"edmonds-karp" choice:"dinic" description:"Max-flow algorithm"`
	Format          string `long:"format" short:"f" default:"table" choice:"table" choice:"yaml" description:"Output format"`
	ShowFlow        bool   `long:"show-flow" description:"Also print the flow carried by each edge"`
	Verbose         bool   `long:"verbose" short:"v" description:"Log every relabel or augmenting path at debug level"`
	CheckInvariants bool   `long:"check-invariants" description:"Assert flow invariants while solving"`
}

// solveReport is the printed outcome of a solve.
type solveReport struct {
	Algorithm     string     `yaml:"algorithm"`
	Nodes         int        `yaml:"nodes"`
	Value         int64      `yaml:"value"`
	Pushes        int64      `yaml:"pushes"`
	Relabels      int64      `yaml:"relabels"`
	Discharges    int64      `yaml:"discharges"`
	Augmentations int64      `yaml:"augmentations"`
	Elapsed       string     `yaml:"elapsed"`
	Flow          []edgeFlow `yaml:"flow,omitempty"`
}

type edgeFlow struct {
	From int   `yaml:"from"`
	To   int   `yaml:"to"`
	Flow int64 `yaml:"flow"`
}

func (cmd *cmdSolve) Execute([]string) error {
	mbp.InitLog(Config.Log)

	in, err := openInput(cmd.Input)
	mbp.Must(err, "failed to open input", "input", cmd.Input)
	defer in.Close()

	report, err := cmd.solve(in)
	mbp.Must(err, "failed to solve", "input", cmd.Input)

	return cmd.write(os.Stdout, report)
}

// solve decodes a Problem from r and runs the configured algorithm over it.
func (cmd *cmdSolve) solve(r io.Reader) (*solveReport, error) {
	problem, err := network.DecodeProblem(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}
	c, terms, err := problem.Network()
	if err != nil {
		return nil, errors.Wrap(err, "validating problem")
	}
	solver, err := flow.Lookup(cmd.Algorithm)
	if err != nil {
		return nil, err
	}

	var opts = flow.DefaultOptions()
	opts.Verbose = cmd.Verbose
	opts.CheckInvariants = cmd.CheckInvariants

	var start = time.Now()
	res, err := solver(c, terms, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "solving with %s", cmd.Algorithm)
	}

	var report = &solveReport{
		Algorithm:     cmd.Algorithm,
		Nodes:         c.N(),
		Value:         res.Value,
		Pushes:        res.Stats.Pushes,
		Relabels:      res.Stats.Relabels,
		Discharges:    res.Stats.Discharges,
		Augmentations: res.Stats.Augmentations,
		Elapsed:       time.Since(start).String(),
	}
	if cmd.ShowFlow {
		report.Flow = positiveFlows(res.Flow)
	}

	log.WithFields(log.Fields{
		"algorithm": cmd.Algorithm,
		"nodes":     report.Nodes,
		"value":     report.Value,
	}).Info("solved")

	return report, nil
}

// positiveFlows lists the edges of an antisymmetric flow matrix which carry
// positive flow, in row-major order.
func positiveFlows(f [][]int64) []edgeFlow {
	var out []edgeFlow
	for u, row := range f {
		for v, x := range row {
			if x > 0 {
				out = append(out, edgeFlow{From: u, To: v, Flow: x})
			}
		}
	}
	return out
}

func (cmd *cmdSolve) write(w io.Writer, report *solveReport) error {
	switch cmd.Format {
	case "yaml":
		var enc = yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding report")
		}
		return enc.Close()
	default:
		return writeTables(w, report)
	}
}

func writeTables(w io.Writer, report *solveReport) error {
	var table = tablewriter.NewWriter(w)
	table.Header("Algorithm", "Nodes", "Max Flow", "Pushes", "Relabels", "Augmentations", "Elapsed")
	if err := table.Append([]string{
		report.Algorithm,
		strconv.Itoa(report.Nodes),
		humanize.Comma(report.Value),
		humanize.Comma(report.Pushes),
		humanize.Comma(report.Relabels),
		humanize.Comma(report.Augmentations),
		report.Elapsed,
	}); err != nil {
		return errors.Wrap(err, "appending summary row")
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "rendering summary")
	}

	if len(report.Flow) == 0 {
		return nil
	}

	var edges = tablewriter.NewWriter(w)
	edges.Header("From", "To", "Flow")
	for _, e := range report.Flow {
		if err := edges.Append([]string{
			strconv.Itoa(e.From),
			strconv.Itoa(e.To),
			humanize.Comma(e.Flow),
		}); err != nil {
			return errors.Wrap(err, "appending flow row")
		}
	}
	return errors.Wrap(edges.Render(), "rendering flow")
}
