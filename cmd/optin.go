package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// optinCmd holds the flags for the 'optin' subcommand.
type optinCmd struct {
	event int
	buyin float64
}

func (*optinCmd) Name() string     { return "optin" }
func (*optinCmd) Synopsis() string { return "record second-chance opt-ins for an event" }
func (*optinCmd) Usage() string {
	return `wsop optin -e <event> [-a <buy-in>] <player>...

  Records the second-chance side pot selection for one event. The named
  players are opted in; every other active player is recorded as opted
  out. Saving again replaces the event's earlier selection.
`
}

func (c *optinCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.event, "e", 0, "Event number the opt-ins are for")
	f.Float64Var(&c.buyin, "a", 10, "Side pot buy-in per opted-in player")
}

func (c *optinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.event <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -e is required\n")
		return subcommands.ExitUsageError
	}

	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	in := make(map[string]bool, f.NArg())
	for _, name := range f.Args() {
		in[name] = true
	}

	var optIns []league.OptIn
	for _, player := range league.ActivePlayers(wb) {
		o := league.OptIn{Event: c.event, Player: player, In: in[player]}
		if o.In {
			o.BuyIn = league.USD(c.buyin)
			delete(in, player)
		}
		optIns = append(optIns, o)
	}
	// Names not on the roster are an input error, not a silent skip.
	for name := range in {
		fmt.Fprintf(os.Stderr, "Error: %q is not on the roster\n", name)
		return subcommands.ExitUsageError
	}

	league.SaveOptIns(wb, c.event, optIns)
	if err := EncodeTracker(wb); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded opt-ins for event %d: %d in, %d out\n",
		c.event, f.NArg(), len(optIns)-f.NArg())
	return subcommands.ExitSuccess
}
