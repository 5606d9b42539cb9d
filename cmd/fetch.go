package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	repo   string
	branch string
	path   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download the published tracker" }
func (*fetchCmd) Usage() string {
	return `wsop fetch [-repo <owner/repo>] [-branch <branch>] [-path <path>]

  Downloads the published tracker from GitHub's raw endpoint and replaces
  the local tracker file.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.repo, "repo", envOr("WSOP_REPO", ""), "GitHub repository (owner/repo) to fetch from")
	f.StringVar(&c.branch, "branch", envOr("WSOP_BRANCH", "main"), "Branch to fetch from")
	f.StringVar(&c.path, "path", envOr("WSOP_PATH", "tracker.xlsx"), "Path of the tracker within the repository")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.repo == "" {
		fmt.Fprintf(os.Stderr, "Error: -repo (or WSOP_REPO) is required\n")
		return subcommands.ExitUsageError
	}

	repo := &league.Repo{
		OwnerRepo: c.repo,
		Branch:    c.branch,
		Path:      c.path,
		Token:     os.Getenv("WSOP_TOKEN"),
	}
	content, err := repo.Fetch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	// Decode before overwriting so a bad download never clobbers the
	// local tracker.
	if _, err := league.DecodeWorkbook(content); err != nil {
		fmt.Fprintf(os.Stderr, "Error: fetched file is not a tracker workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(*trackerFile, content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Fetched tracker from %s@%s:%s\n", c.repo, c.branch, c.path)
	return subcommands.ExitSuccess
}
