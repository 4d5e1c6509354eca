// Command escapepods solves and generates multi-source, multi-sink
// max-flow problems.
//
//	escapepods generate --kind layered --layer 2 --layer 3 --layer 2 > corridors.yaml
//	escapepods solve --input corridors.yaml --show-flow
package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	mbp "github.com/katalvlaran/preflow/internal/mainboilerplate"
)

const iniFilename = "escapepods.ini"

// Config is the top-level configuration of escapepods.
var Config = new(struct {
	Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("solve", "Solve a max-flow problem", `
Solve reads a problem document (YAML or JSON) with "sources", "sinks" and a
square "capacity" matrix, computes the maximum flow from the sources to the
sinks and prints the result as a table or YAML.
`, &cmdSolve{})

	_, _ = parser.AddCommand("generate", "Generate a max-flow problem", `
Generate writes a problem document built from one of the network
topologies: a path, a layered network whose first and last layers are the
sources and sinks, a complete network, or a seeded random sparse network.
`, &cmdGenerate{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}

// openInput opens path for reading, where "-" is stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// createOutput opens path for writing, where "-" is stdout.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	return f, nil
}
