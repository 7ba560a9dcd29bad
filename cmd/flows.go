package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"b3analyzer"
	"b3analyzer/renderer"
	"github.com/google/subcommands"
)

// flowsCmd holds the flags for the 'flows' subcommand.
type flowsCmd struct {
	raw bool
}

func (*flowsCmd) Name() string     { return "flows" }
func (*flowsCmd) Synopsis() string { return "inflow/outflow view of the statement" }
func (*flowsCmd) Usage() string {
	return `b3an flows [-raw] <extract.xlsx>...

  Splits the canonical statement into inflows and outflows. Amortização
  rows count as outflows regardless of their entry type, since they reduce
  the invested principal.
`
}

func (c *flowsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *flowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	if nothingToDisplay(s) {
		return subcommands.ExitSuccess
	}

	inflow, outflow := b3analyzer.SplitFlows(s)
	display(renderer.Statement("Entradas", inflow), c.raw)
	display(renderer.Statement("Saídas", outflow), c.raw)
	return subcommands.ExitSuccess
}
