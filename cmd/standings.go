package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/mmartuko/wsopleague/renderer"
)

type standingsCmd struct{}

func (*standingsCmd) Name() string     { return "standings" }
func (*standingsCmd) Synopsis() string { return "display one event's standings" }
func (*standingsCmd) Usage() string {
	return `wsop standings <event>

  Displays the finish order of one event with points, payouts and bounties.
`
}

func (c *standingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *standingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected an event number\n")
		return subcommands.ExitUsageError
	}
	event, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid event number %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	md, err := renderer.StandingsMarkdown(wb, event)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
