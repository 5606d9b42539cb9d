package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
	"github.com/mmartuko/wsopleague/renderer"
)

type leaderboardCmd struct{}

func (*leaderboardCmd) Name() string     { return "leaderboard" }
func (*leaderboardCmd) Synopsis() string { return "display the season leaderboard" }
func (*leaderboardCmd) Usage() string {
	return `wsop leaderboard

  Displays the season leaderboard: every player ranked by points, with
  knockouts and events played.
`
}

func (c *leaderboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *leaderboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LeaderboardMarkdown(league.Leaderboard(wb)))
	return subcommands.ExitSuccess
}
