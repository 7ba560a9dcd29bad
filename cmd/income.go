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

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	raw bool
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "income events by period, ticker and type" }
func (*incomeCmd) Usage() string {
	return `b3an income [-raw] <extract.xlsx>...

  Selects income movements (Amortização, Dividendo, Juros, Juros Sobre
  Capital Próprio, Rendimento) and aggregates them by period, by ticker
  and by movement type.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	income := s.Income()
	if nothingToDisplay(income) {
		return subcommands.ExitSuccess
	}

	for _, t := range []b3analyzer.Table{
		b3analyzer.ByPeriod(income),
		b3analyzer.ByTickerMonthly(income),
		b3analyzer.ByTickerYearly(income),
		b3analyzer.ByTypeMonthly(income),
		b3analyzer.ByTypeYearly(income),
	} {
		display(renderer.Table(t), c.raw)
	}
	return subcommands.ExitSuccess
}
