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

// bdrCmd holds the flags for the 'bdr' subcommand.
type bdrCmd struct {
	raw bool
}

func (*bdrCmd) Name() string     { return "bdr" }
func (*bdrCmd) Synopsis() string { return "depositary receipt movements by period and ticker" }
func (*bdrCmd) Usage() string {
	return `b3an bdr [-raw] <extract.xlsx>...

  Selects Brazilian Depositary Receipt movements (tickers carrying the
  31-35 suffix codes) and aggregates them by period and by ticker.
`
}

func (c *bdrCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *bdrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	bdrs := s.DepositaryReceipts()
	if nothingToDisplay(bdrs) {
		return subcommands.ExitSuccess
	}

	for _, t := range []b3analyzer.Table{
		b3analyzer.ByPeriod(bdrs),
		b3analyzer.ByTickerMonthly(bdrs),
		b3analyzer.ByTickerYearly(bdrs),
	} {
		display(renderer.Table(t), c.raw)
	}
	return subcommands.ExitSuccess
}
