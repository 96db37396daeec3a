// Package cmd implements the CLI application of the teller simulator.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global vaariables.

// Commands is the list of subcommands registered by the entry point.
var Commands = []subcommands.Command{
	&runCmd{},
	&topicCmd{},
}

// renderMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer fails.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders the markdown to stdout.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
