package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	league "github.com/mmartuko/wsopleague"
	"github.com/mmartuko/wsopleague/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// TrackerFile is the workbook the experts read. The assist command points
// it at the same file the rest of the CLI uses.
var TrackerFile = "tracker.xlsx"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a home poker league: weekly tournaments feeding a season-long
			points race and shared money pools. They are here to check standings, money,
			or both. Devise a plan of questions to ask each expert and come up with the
			best response to the user's request.

			The user will assume you already know the league's players and pools, check
			the tracker first to understand them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewOddsmaker is the search-grounded expert for everything outside the
// tracker: rules questions, venue news, WSOP schedules.
func NewOddsmaker() *Expert {
	return &Expert{
		Name: "Oddsmaker",
		Description: `This is an expert on poker at large.
		Very well aware of tournament rules, hand rankings, the World Series of Poker
		schedule and the latest poker news.
		Ask the Oddsmaker whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in poker, you can search and find about anything related to
			tournament rules, hand rankings, the World Series of Poker, satellites and
			buy-ins. You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewScorekeeper is the expert over the season standings.
func NewScorekeeper() *Expert {
	lib := []Function{LeaderboardFunc, StandingsFunc}

	return &Expert{
		Name: "Scorekeeper",
		Description: `This is the Scorekeeper. He is in charge of reading the league tracker's
		standings: the season leaderboard and every event's finish order, points and knockouts.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the scorekeeper of a home poker league.
				You know how to use the Tools to extract the season leaderboard and any
				single event's standings from the tracker. You are part of a team of
				experts, yours is everything about points, places and knockouts. Pardon
				their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewTreasurer is the expert over the league's money.
func NewTreasurer() *Expert {
	lib := []Function{PoolsFunc, SummaryFunc}

	return &Expert{
		Name: "Treasurer",
		Description: `This is the Treasurer. He is in charge of the league's money: the four
		season pools, the ledger behind them, and each player's paid-in versus earned totals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the treasurer of a home poker league.
				You know how to use the Tools to read the pool balances and the
				per-player financial summary from the tracker. Money questions are
				yours: who is up, who still owes, what a WSOP seat is worth.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var LeaderboardFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Leaderboard",
		Description: `Leaderboard returns the season leaderboard: every player ranked by
		points, with knockouts and events played.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of the season leaderboard.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		wb, err := DecodeTracker()
		if err != nil {
			return errResponse(id, "Leaderboard", err)
		}
		return okResponse(id, "Leaderboard", renderer.LeaderboardMarkdown(league.Leaderboard(wb)))
	},
}

var StandingsFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Standings",
		Description: `Standings returns one event's finish order with points, payouts and bounties.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"event": {
					Type:        genai.TypeInteger,
					Description: "The event number, starting at 1.",
				},
			},
			Required: []string{"event"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of the event's standings.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		event, err := parseEvent(args)
		if err != nil {
			return errResponse(id, "Standings", err)
		}
		wb, err := DecodeTracker()
		if err != nil {
			return errResponse(id, "Standings", err)
		}
		out, err := renderer.StandingsMarkdown(wb, event)
		if err != nil {
			return errResponse(id, "Standings", err)
		}
		return okResponse(id, "Standings", out)
	},
}

var PoolsFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Pools",
		Description: `Pools returns the balance of each season pool and the derived metrics:
		the WSOP seat value and the high-hand jackpot.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted report of the pool balances.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		wb, err := DecodeTracker()
		if err != nil {
			return errResponse(id, "Pools", err)
		}
		return okResponse(id, "Pools", renderer.PoolsMarkdown(wb))
	},
}

var SummaryFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary returns the per-player financial summary: buy-ins, fees,
		payouts, bounties and net winnings for the whole season.`,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of each player's season finances.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		wb, err := DecodeTracker()
		if err != nil {
			return errResponse(id, "Summary", err)
		}
		return okResponse(id, "Summary", renderer.SummaryMarkdown(league.Summarize(wb)))
	},
}

// DecodeTracker loads the tracker workbook the experts answer from.
// A missing file is an empty season, not an error.
func DecodeTracker() (*league.Workbook, error) {
	wb, err := league.ReadWorkbookFile(TrackerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return league.NewWorkbook(), nil
		}
		return nil, fmt.Errorf("could not load tracker %q: %w", TrackerFile, err)
	}
	return wb, nil
}

func parseEvent(args map[string]any) (int, error) {
	ievent, ok := args["event"]
	if !ok {
		return 0, fmt.Errorf("argument 'event' is required")
	}
	switch x := ievent.(type) {
	case float64:
		return int(x), nil
	case int:
		return x, nil
	default:
		return 0, fmt.Errorf("argument 'event' is not a number as expected but %T", ievent)
	}
}
