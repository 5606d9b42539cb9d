package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	league "github.com/mmartuko/wsopleague"
	md "github.com/nao1215/markdown"
)

// LeaderboardMarkdown renders the season leaderboard as a markdown table,
// ranked the way the rows arrive (points then knockouts).
func LeaderboardMarkdown(rows []league.LeaderboardRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Season Leaderboard")
	if len(rows) == 0 {
		doc.PlainText("No events ingested yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Rank", "Player", "Points", "KOs", "Events"},
	}
	for i, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			r.Player,
			formatPoints(r.Points),
			strconv.Itoa(r.KOs),
			strconv.Itoa(r.Events),
		})
	}
	doc.Table(table)

	return doc.String()
}

// formatPoints drops the trailing zero on whole scores but keeps the
// half point of tenth place.
func formatPoints(p float64) string {
	if p == float64(int(p)) {
		return strconv.Itoa(int(p))
	}
	return fmt.Sprintf("%.1f", p)
}
