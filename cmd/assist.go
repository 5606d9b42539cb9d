package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mmartuko/wsopleague/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `wsop assist [initial question]

  Start an interactive session with the AI assistant. The assistant answers
  questions about the season from the tracker: standings from the
  scorekeeper, money from the treasurer, poker at large from the oddsmaker.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	// The experts read the same tracker as the rest of the CLI.
	agent.TrackerFile = *trackerFile

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	oddsmaker := agent.NewOddsmaker()
	scorekeeper := agent.NewScorekeeper()
	treasurer := agent.NewTreasurer()
	a := agent.New(os.Stdout, os.Stdin, oddsmaker, scorekeeper, treasurer)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
