// Package cmd implements the CLI application to analyze B3 statements.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"b3analyzer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the b3an tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&statementCmd{},
	&flowsCmd{},
	&incomeCmd{},
	&equitiesCmd{},
	&bdrCmd{},
	&fiiCmd{},
	&futuresCmd{},
	&avgPriceCmd{},
	&exportCmd{},
}

// loadStatement reads the xlsx extracts given as positional arguments and
// canonicalizes them into one statement. No arguments is not an error: it
// yields an empty statement, and callers show "nothing to display".
func loadStatement(f *flag.FlagSet) (b3analyzer.Statement, error) {
	raws, err := b3analyzer.OpenStatements(f.Args()...)
	if err != nil {
		return nil, err
	}
	return b3analyzer.Canonicalize(raws)
}

// display writes markdown to stdout, rendered for the terminal unless raw
// output was requested (or the terminal renderer cannot be built).
func display(markdown string, raw bool) {
	if !raw {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
		if err == nil {
			if out, err := r.Render(markdown); err == nil {
				fmt.Print(out)
				return
			}
		}
	}
	fmt.Print(markdown)
}

// nothingToDisplay reports the empty-upload case: not an error, there is
// simply nothing to show.
func nothingToDisplay(s b3analyzer.Statement) bool {
	if len(s) == 0 {
		fmt.Fprintln(os.Stderr, "no statement rows to display")
		return true
	}
	return false
}
