package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/teller"
)

type runCmd struct {
	currency string
	json     bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start an interactive teller session" }
func (*runCmd) Usage() string {
	return `teller run [-c <currency>] [-json]

  Starts the interactive menu session. Customers and accounts live only for
  the duration of the session; nothing is persisted.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", teller.DefaultCurrency, "Currency of every amount in the session (e.g. BRL, USD)")
	f.BoolVar(&c.json, "json", false, "Print statements as JSONL instead of a table")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := newSession(teller.NewRegistry(), os.Stdin, os.Stdout, c.currency, c.json)
	s.render = renderMarkdown
	s.run()
	return subcommands.ExitSuccess
}
