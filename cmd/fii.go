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

// fiiCmd holds the flags for the 'fii' subcommand.
type fiiCmd struct {
	raw bool
}

func (*fiiCmd) Name() string     { return "fii" }
func (*fiiCmd) Synopsis() string { return "real-estate fund movements by period and ticker" }
func (*fiiCmd) Usage() string {
	return `b3an fii [-raw] <extract.xlsx>...

  Selects real-estate fund movements and aggregates them by period and by
  ticker. Amortização and Resgate values are negated, since they reduce
  the position.
`
}

func (c *fiiCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *fiiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	funds := s.RealEstateFunds()
	if nothingToDisplay(funds) {
		return subcommands.ExitSuccess
	}

	for _, t := range []b3analyzer.Table{
		b3analyzer.ByPeriod(funds),
		b3analyzer.ByTickerMonthly(funds),
		b3analyzer.ByTickerYearly(funds),
	} {
		display(renderer.Table(t), c.raw)
	}
	return subcommands.ExitSuccess
}
