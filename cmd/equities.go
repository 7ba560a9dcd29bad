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

// equitiesCmd holds the flags for the 'equities' subcommand.
type equitiesCmd struct {
	raw bool
}

func (*equitiesCmd) Name() string     { return "equities" }
func (*equitiesCmd) Synopsis() string { return "stock movements by period and ticker" }
func (*equitiesCmd) Usage() string {
	return `b3an equities [-raw] <extract.xlsx>...

  Selects stock movements (5-character tickers containing 3 or 4) and
  aggregates them by period and by ticker.
`
}

func (c *equitiesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *equitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	equities := s.Equities()
	if nothingToDisplay(equities) {
		return subcommands.ExitSuccess
	}

	for _, t := range []b3analyzer.Table{
		b3analyzer.ByPeriod(equities),
		b3analyzer.ByTickerMonthly(equities),
		b3analyzer.ByTickerYearly(equities),
	} {
		display(renderer.Table(t), c.raw)
	}
	return subcommands.ExitSuccess
}
