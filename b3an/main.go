package main

import (
	"context"
	"flag"
	"os"
	"path"

	"b3analyzer/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Args: predict.Files("*.xlsx")}
	}
	// Shell completion: completes subcommand names, then xlsx extracts.
	(&complete.Command{Sub: sub}).Complete("b3an")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
