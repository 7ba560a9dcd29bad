package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"b3analyzer"
	"b3analyzer/renderer"
	"github.com/google/subcommands"
)

// avgPriceCmd holds the flags for the 'avgprice' subcommand.
type avgPriceCmd struct {
	raw    bool
	ticker string
}

func (*avgPriceCmd) Name() string     { return "avgprice" }
func (*avgPriceCmd) Synopsis() string { return "running position and average cost per asset" }
func (*avgPriceCmd) Usage() string {
	return `b3an avgprice [-raw] [-t <ticker>] <extract.xlsx>...

  Reconstructs the running position and weighted average cost of each
  asset from its custody transfers and corporate actions (Grupamento,
  Desdobro). Use -t to restrict the report to one ticker.
`
}

func (c *avgPriceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
	f.StringVar(&c.ticker, "t", "", "restrict the report to this ticker")
}

func (c *avgPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	if nothingToDisplay(s) {
		return subcommands.ExitSuccess
	}

	byTicker := b3analyzer.AverageCostByTicker(s)
	tickers := make([]string, 0, len(byTicker))
	for ticker := range byTicker {
		tickers = append(tickers, ticker)
	}
	slices.Sort(tickers)

	shown := 0
	for _, ticker := range tickers {
		if c.ticker != "" && ticker != c.ticker {
			continue
		}
		display(renderer.AverageCost(ticker, byTicker[ticker]), c.raw)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(os.Stderr, "no ownership movements to report")
	}
	return subcommands.ExitSuccess
}
