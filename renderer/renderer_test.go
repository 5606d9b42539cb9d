package renderer

import (
	"strings"
	"testing"

	league "github.com/mmartuko/wsopleague"
)

func seasonWorkbook() *league.Workbook {
	wb := league.NewWorkbook()
	wb.Put("Event_1_Standings", &league.Sheet{
		Columns: []string{"Place", "Player", "KOs", "Payout", "Points", "Bounty$"},
		Rows: []league.Row{
			{"Place": 1, "Player": "Alice", "KOs": 2, "Payout": 100.0, "Points": 14.0, "Bounty$": 15.0},
			{"Place": 2, "Player": "Bob", "KOs": 0, "Payout": 60.0, "Points": 11.0, "Bounty$": 0.0},
		},
	})
	wb.Put(league.PoolsSheet, &league.Sheet{
		Columns: []string{"Type", "Pool", "Amount"},
		Rows: []league.Row{
			{"Type": league.Accrual, "Pool": league.PoolWSOP, "Amount": 500.0},
			{"Type": league.Accrual, "Pool": league.PoolHighHand, "Amount": 25.0},
		},
	})
	return wb
}

// contains checks for each wanted token; table cells are padded by the
// markdown writer, so assertions stay at the token level.
func contains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestLeaderboardMarkdown(t *testing.T) {
	got := LeaderboardMarkdown(league.Leaderboard(seasonWorkbook()))
	contains(t, got, "Season Leaderboard", "Alice", "Bob", "14", "11")
	if strings.Index(got, "Alice") > strings.Index(got, "Bob") {
		t.Errorf("Alice should be ranked above Bob:\n%s", got)
	}
}

func TestLeaderboardMarkdown_Empty(t *testing.T) {
	got := LeaderboardMarkdown(nil)
	contains(t, got, "No events ingested yet.")
}

func TestFormatPoints(t *testing.T) {
	if got := formatPoints(14); got != "14" {
		t.Errorf("formatPoints(14) = %q, want 14", got)
	}
	if got := formatPoints(0.5); got != "0.5" {
		t.Errorf("formatPoints(0.5) = %q, want 0.5", got)
	}
}

func TestPoolsMarkdown(t *testing.T) {
	got := PoolsMarkdown(seasonWorkbook())
	contains(t, got,
		"# Pool Balances",
		"| WSOP | $500.00 |",
		"| High Hand | $25.00 |",
		"| Nightly | $0.00 |",
		"Seat value: $100.00 (each of 5 seats)",
		"High Hand jackpot: $25.00, unclaimed",
	)
}

func TestPoolsMarkdown_HighHandOverride(t *testing.T) {
	wb := seasonWorkbook()
	league.SaveHighHand(wb, league.HighHand{Holder: "Carol", Hand: "Royal Flush", Override: "$150"})
	got := PoolsMarkdown(wb)
	contains(t, got, "High Hand jackpot: $150, held by Carol (Royal Flush)")
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(league.Summarize(seasonWorkbook()))
	contains(t, got,
		"Financial Summary",
		"Alice",
		"+$95.00", // earned 115 against the 20 nightly fee
		"+$40.00", // Bob earned 60 against the 20 nightly fee
	)
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	contains(t, SummaryMarkdown(nil), "No events ingested yet.")
}

func TestStandingsMarkdown(t *testing.T) {
	got, err := StandingsMarkdown(seasonWorkbook(), 1)
	if err != nil {
		t.Fatalf("StandingsMarkdown: %v", err)
	}
	contains(t, got, "Event 1 Standings", "Alice", "Bounty$", "100", "15")

	if _, err := StandingsMarkdown(seasonWorkbook(), 9); err == nil {
		t.Error("expected an error for an unknown event")
	}
}
