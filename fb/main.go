package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"finbook/cmd"
)

// completion describes the command line for shell completion. It returns
// immediately when not invoked by the shell's completion machinery.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	fb := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"book-file":  predict.Files("*.jsonl"),
			"goals-file": predict.Files("*.jsonl"),
			"currency":   predict.Set{"EUR", "USD", "GBP", "CHF"},
		},
	}
	fb.Complete("fb")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
