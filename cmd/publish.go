package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	league "github.com/mmartuko/wsopleague"
)

// publishCmd holds the flags for the 'publish' subcommand.
type publishCmd struct {
	repo    string
	branch  string
	path    string
	message string
	ping    string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "upload the tracker to GitHub" }
func (*publishCmd) Usage() string {
	return `wsop publish [-repo <owner/repo>] [-branch <branch>] [-path <path>] [-m <message>] [-ping <url>]

  Uploads the local tracker through the GitHub contents API, reusing the
  published file's current revision. The token comes from WSOP_TOKEN, never
  from a flag. With -ping, fires a cache-busting refresh at the player home
  after a successful upload.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.repo, "repo", envOr("WSOP_REPO", ""), "GitHub repository (owner/repo) to publish into")
	f.StringVar(&c.branch, "branch", envOr("WSOP_BRANCH", "main"), "Branch to publish to")
	f.StringVar(&c.path, "path", envOr("WSOP_PATH", "tracker.xlsx"), "Path of the tracker within the repository")
	f.StringVar(&c.message, "m", "Update tracker", "Commit message")
	f.StringVar(&c.ping, "ping", envOr("WSOP_PLAYER_URL", ""), "Player home URL to ping after publishing")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.repo == "" {
		fmt.Fprintf(os.Stderr, "Error: -repo (or WSOP_REPO) is required\n")
		return subcommands.ExitUsageError
	}

	wb, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	content, err := league.EncodeWorkbook(wb)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	repo := &league.Repo{
		OwnerRepo: c.repo,
		Branch:    c.branch,
		Path:      c.path,
		Token:     os.Getenv("WSOP_TOKEN"),
	}
	if err := repo.Publish(content, c.message); err != nil {
		fmt.Fprintf(os.Stderr, "Error publishing tracker: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Published tracker to %s@%s:%s\n", c.repo, c.branch, c.path)

	if c.ping != "" {
		if err := league.Ping(c.ping); err != nil {
			log.Printf("refresh ping failed: %v", err)
		}
	}
	return subcommands.ExitSuccess
}
