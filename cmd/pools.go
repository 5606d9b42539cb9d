package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mmartuko/wsopleague/renderer"
)

type poolsCmd struct{}

func (*poolsCmd) Name() string     { return "pools" }
func (*poolsCmd) Synopsis() string { return "display the season pool balances" }
func (*poolsCmd) Usage() string {
	return `wsop pools

  Displays the balance of each season pool, the WSOP seat value, and the
  high-hand jackpot.
`
}

func (c *poolsCmd) SetFlags(f *flag.FlagSet) {}

func (c *poolsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PoolsMarkdown(wb))
	return subcommands.ExitSuccess
}
