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

// statementCmd holds the flags for the 'statement' subcommand.
type statementCmd struct {
	raw    bool
	export string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "consolidated canonical statement" }
func (*statementCmd) Usage() string {
	return `b3an statement [-raw] [-export <file.xlsx>] <extract.xlsx>...

  Reads one or more B3 extracts, normalizes them into the canonical
  statement and displays it. Use -export to also write the consolidated
  statement to a workbook.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
	f.StringVar(&c.export, "export", "", "also write the consolidated statement to this xlsx file")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	if nothingToDisplay(s) {
		return subcommands.ExitSuccess
	}

	display(renderer.Statement("Extrato Consolidado", s), c.raw)

	if c.export != "" {
		out, err := os.Create(c.export)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.export, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := b3analyzer.WriteStatement(out, "Extrato Consolidado", s); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting statement: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
