package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

type playersCmd struct {
	add string
}

func (*playersCmd) Name() string     { return "players" }
func (*playersCmd) Synopsis() string { return "list or extend the league roster" }
func (*playersCmd) Usage() string {
	return `wsop players [-add <name>]

  Lists the active roster. With -add, registers a new player before the
  first event they play.
`
}

func (c *playersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a player to add to the roster")
}

func (c *playersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add != "" {
		if added := league.UpsertPlayers(wb, []string{c.add}); len(added) == 0 {
			fmt.Printf("%s is already on the roster\n", c.add)
			return subcommands.ExitSuccess
		}
		if err := EncodeTracker(wb); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %s to the roster\n", c.add)
		return subcommands.ExitSuccess
	}

	players := league.ActivePlayers(wb)
	if len(players) == 0 {
		fmt.Println("No players on the roster yet.")
		return subcommands.ExitSuccess
	}
	for _, p := range players {
		fmt.Println(p)
	}
	return subcommands.ExitSuccess
}
