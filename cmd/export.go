package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"b3analyzer"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the report tables to a workbook" }
func (*exportCmd) Usage() string {
	return `b3an export -o <file.xlsx> <extract.xlsx>...

  Builds the period report for every asset class plus the income type
  breakdown, and writes them to a multi-sheet workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "relatorio_b3.xlsx", "output workbook path")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(s) == 0 {
		fmt.Fprintln(os.Stderr, "no statement rows to export")
		return subcommands.ExitSuccess
	}

	futures := s.Futures()
	sheets := []b3analyzer.Sheet{
		{Name: "Rendimentos", Table: b3analyzer.ByPeriod(s.Income())},
		{Name: "Rendimentos por Tipo", Table: b3analyzer.ByTypeMonthly(s.Income())},
		{Name: "Ações", Table: b3analyzer.ByPeriod(s.Equities())},
		{Name: "FIIs", Table: b3analyzer.ByPeriod(s.RealEstateFunds())},
		{Name: "BDRs", Table: b3analyzer.ByPeriod(s.DepositaryReceipts())},
		{Name: "Futuros", Table: b3analyzer.FuturesByPeriod(futures)},
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := b3analyzer.WriteTables(out, sheets...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
