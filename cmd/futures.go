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

// futuresCmd holds the flags for the 'futures' subcommand.
type futuresCmd struct {
	raw bool
}

func (*futuresCmd) Name() string     { return "futures" }
func (*futuresCmd) Synopsis() string { return "futures contract gains by day and month" }
func (*futuresCmd) Usage() string {
	return `b3an futures [-raw] <extract.xlsx>...

  Selects mini-dollar (WDO) and mini-index (WIN) contract movements and
  reports point gains per contract, by day and by month, scaled to reais
  by the contract point value (WDO x10, WIN x0.20).
`
}

func (c *futuresCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *futuresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	futures := s.Futures()
	if nothingToDisplay(futures) {
		return subcommands.ExitSuccess
	}

	display(renderer.Table(b3analyzer.FuturesByDay(futures)), c.raw)
	display(renderer.Table(b3analyzer.FuturesByPeriod(futures)), c.raw)
	return subcommands.ExitSuccess
}
