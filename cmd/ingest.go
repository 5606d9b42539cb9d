package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// ingestCmd holds the flags for the 'ingest' subcommand.
type ingestCmd struct{}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "import a poker timer export as the next event" }
func (*ingestCmd) Usage() string {
	return `wsop ingest <export-file>

  Imports one night's results from a poker timer export (HTML, base64, or
  delimited text). Writes the new standings sheet, updates the roster, and
  appends the night's pool accruals and nightly payout to the ledger.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {}

func (c *ingestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one export file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}

	doc, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := league.Ingest(wb, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ingesting export: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeTracker(wb); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Ingested event %d: %d players, %s paid out (%s)\n",
		res.Event, len(res.Players), res.PayoutTotal, res.SheetName)
	return subcommands.ExitSuccess
}
