package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/etnz/teller/cmd"
)

func main() {
	// Shell completion: returns immediately outside of completion mode.
	cmp := &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {
				Flags: map[string]complete.Predictor{
					"c":    nil,
					"json": nil,
				},
			},
			"topic":    {},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
	cmp.Complete("teller")

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
