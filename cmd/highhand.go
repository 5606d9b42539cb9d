package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// highhandCmd holds the flags for the 'highhand' subcommand.
type highhandCmd struct {
	holder   string
	hand     string
	override string
	note     string
}

func (*highhandCmd) Name() string     { return "highhand" }
func (*highhandCmd) Synopsis() string { return "show or set the high-hand jackpot holder" }
func (*highhandCmd) Usage() string {
	return `wsop highhand [-holder <player> -hand <description>] [-override <value>] [-note <note>]

  Without flags, shows the current high-hand jackpot information. With
  -holder, replaces it and stamps the update time. -override forces the
  displayed jackpot value instead of the live pool balance.
`
}

func (c *highhandCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holder, "holder", "", "Player currently holding the high hand")
	f.StringVar(&c.hand, "hand", "", "Description of the hand (e.g. \"Quad Aces\")")
	f.StringVar(&c.override, "override", "", "Display value override for the jackpot")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *highhandCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.holder == "" && c.hand == "" && c.override == "" && c.note == "" {
		hh := league.ReadHighHand(wb)
		if hh.Holder == "" {
			fmt.Println("High hand jackpot is unclaimed.")
			return subcommands.ExitSuccess
		}
		fmt.Printf("High hand: %s with %s (updated %s)\n", hh.Holder, hh.Hand, hh.LastUpdated)
		if hh.Override != "" {
			fmt.Printf("Displayed value override: %s\n", hh.Override)
		}
		if hh.Note != "" {
			fmt.Printf("Note: %s\n", hh.Note)
		}
		return subcommands.ExitSuccess
	}

	league.SaveHighHand(wb, league.HighHand{
		Holder:   c.holder,
		Hand:     c.hand,
		Override: c.override,
		Note:     c.note,
	})
	if err := EncodeTracker(wb); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("High hand info updated.")
	return subcommands.ExitSuccess
}
