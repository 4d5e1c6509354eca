package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/network"
)

const clrsProblem = `
sources: [0]
sinks: [5]
capacity:
  - [0, 16, 13, 0, 0, 0]
  - [0, 0, 10, 12, 0, 0]
  - [0, 4, 0, 0, 14, 0]
  - [0, 0, 9, 0, 0, 20]
  - [0, 0, 0, 7, 0, 4]
  - [0, 0, 0, 0, 0, 0]
`

func TestSolveAlgorithmsAgree(t *testing.T) {
	for _, algo := range []string{flow.AlgorithmPushRelabel, flow.AlgorithmEdmondsKarp, flow.AlgorithmDinic} {
		t.Run(algo, func(t *testing.T) {
			var cmd = &cmdSolve{Algorithm: algo, ShowFlow: true, CheckInvariants: true}
			report, err := cmd.solve(strings.NewReader(clrsProblem))
			require.NoError(t, err)
			require.Equal(t, int64(23), report.Value)
			require.Equal(t, 6, report.Nodes)

			var out, in int64
			for _, e := range report.Flow {
				if e.From == 0 {
					out += e.Flow
				}
				if e.To == 5 {
					in += e.Flow
				}
			}
			require.Equal(t, int64(23), out)
			require.Equal(t, int64(23), in)
		})
	}
}

func TestSolveWritesTable(t *testing.T) {
	var cmd = &cmdSolve{Algorithm: flow.AlgorithmPushRelabel, Format: "table", ShowFlow: true}
	report, err := cmd.solve(strings.NewReader(clrsProblem))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cmd.write(&buf, report))
	require.Contains(t, buf.String(), "push-relabel")
	require.Contains(t, buf.String(), "23")
}

func TestSolveWritesYAML(t *testing.T) {
	var cmd = &cmdSolve{Algorithm: flow.AlgorithmEdmondsKarp, Format: "yaml"}
	report, err := cmd.solve(strings.NewReader(clrsProblem))
	require.NoError(t, err)
	require.Empty(t, report.Flow)

	var buf bytes.Buffer
	require.NoError(t, cmd.write(&buf, report))

	var decoded solveReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, int64(23), decoded.Value)
	require.Equal(t, flow.AlgorithmEdmondsKarp, decoded.Algorithm)
	require.NotZero(t, decoded.Augmentations)
}

func TestSolveRejectsInvalidInput(t *testing.T) {
	var cmd = &cmdSolve{Algorithm: flow.AlgorithmPushRelabel}

	_, err := cmd.solve(strings.NewReader("sources: [0]\nsinks: [0]\ncapacity: [[0]]\n"))
	require.ErrorIs(t, err, network.ErrInvalidInput)
	require.Contains(t, err.Error(), "validating problem")

	_, err = cmd.solve(strings.NewReader(""))
	require.ErrorIs(t, err, network.ErrInvalidInput)

	cmd.Algorithm = "simplex"
	_, err = cmd.solve(strings.NewReader(clrsProblem))
	require.ErrorIs(t, err, flow.ErrUnknownAlgorithm)
}

func TestGenerateLayeredThenSolve(t *testing.T) {
	var gen = &cmdGenerate{
		Kind:        "layered",
		Layers:      []int{2, 3, 2},
		Seed:        3,
		MinCapacity: 4,
		MaxCapacity: 4,
	}
	problem, err := gen.generate()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, problem.Sources)
	require.Equal(t, []int{5, 6}, problem.Sinks)
	require.Len(t, problem.Capacity, 7)

	var buf bytes.Buffer
	require.NoError(t, problem.Encode(&buf))

	report, err := (&cmdSolve{Algorithm: flow.AlgorithmPushRelabel}).solve(&buf)
	require.NoError(t, err)
	// Each source has three outgoing edges of capacity 4.
	require.Equal(t, int64(24), report.Value)
}

func TestGenerateDefaults(t *testing.T) {
	var gen = &cmdGenerate{Kind: "path", Nodes: 4, Seed: 1, MinCapacity: 5, MaxCapacity: 5}
	problem, err := gen.generate()
	require.NoError(t, err)
	require.Equal(t, []int{0}, problem.Sources)
	require.Equal(t, []int{3}, problem.Sinks)

	gen = &cmdGenerate{Kind: "random", Nodes: 8, Probability: 0.4, Seed: 9, MinCapacity: 1, MaxCapacity: 3,
		Sources: []int{0, 1}, Sinks: []int{7}}
	a, err := gen.generate()
	require.NoError(t, err)
	b, err := gen.generate()
	require.NoError(t, err)
	require.Equal(t, a, b, "seeded generation is deterministic")
	require.Equal(t, []int{0, 1}, a.Sources)
}

func TestGenerateErrors(t *testing.T) {
	_, err := (&cmdGenerate{Kind: "path", Nodes: 4, MinCapacity: 5, MaxCapacity: 1}).generate()
	require.Error(t, err)

	_, err = (&cmdGenerate{Kind: "layered"}).generate()
	require.ErrorIs(t, err, network.ErrBadSize)

	_, err = (&cmdGenerate{Kind: "complete", Nodes: 3, MaxCapacity: 1, Sinks: []int{0}}).generate()
	require.ErrorIs(t, err, network.ErrTerminalOverlap)
}
