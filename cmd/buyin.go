package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// buyinCmd holds the flags for the 'buyin' subcommand.
type buyinCmd struct {
	player string
	amount float64
	date   string
	method string
	note   string
}

func (*buyinCmd) Name() string     { return "buyin" }
func (*buyinCmd) Synopsis() string { return "record a series buy-in payment" }
func (*buyinCmd) Usage() string {
	return `wsop buyin -p <player> -a <amount> [-d <date>] [-m <method>] [-note <note>]

  Records one series buy-in payment. Payments are never netted; a player
  paying in two installments gets two rows.
`
}

func (c *buyinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.player, "p", "", "Player the payment is from")
	f.Float64Var(&c.amount, "a", 0, "Amount paid")
	f.StringVar(&c.date, "d", "", "Payment date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.method, "m", "", "Payment method (cash, Venmo, ...)")
	f.StringVar(&c.note, "note", "", "Free-form note")
}

func (c *buyinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.player == "" || c.amount <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -p and a positive -a are required\n")
		return subcommands.ExitUsageError
	}

	b := league.BuyIn{
		Player: c.player,
		Amount: league.USD(c.amount),
		Method: c.method,
		Note:   c.note,
	}
	if c.date != "" {
		d, err := league.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		b.Date = d
	}

	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	league.RecordBuyIn(wb, b)
	if err := EncodeTracker(wb); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s buy-in from %s (total now %s)\n",
		b.Amount, b.Player, league.BuyInTotal(wb, b.Player))
	return subcommands.ExitSuccess
}
