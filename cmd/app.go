// Package cmd implements the CLI application to manage a poker league season.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&ingestCmd{},
	&leaderboardCmd{},
	&standingsCmd{},
	&poolsCmd{},
	&summaryCmd{},
	&playersCmd{},
	&buyinCmd{},
	&optinCmd{},
	&highhandCmd{},
	&publishCmd{},
	&fetchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var trackerFile = flag.String("tracker", "tracker.xlsx", "Path to the tracker workbook (xlsx)")

// DecodeTracker loads the tracker workbook from the app tracker file.
func DecodeTracker() (wb *league.Workbook, err error) {
	wb, err = league.ReadWorkbookFile(*trackerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, tracker does not exist, starting an empty season instead")
		wb, err = league.NewWorkbook(), nil
	}
	return
}

// EncodeTracker writes the tracker workbook back to the app tracker file.
func EncodeTracker(wb *league.Workbook) error {
	return league.WriteWorkbookFile(*trackerFile, wb)
}

// envOr returns the environment variable's value, or the fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
