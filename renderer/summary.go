package renderer

import (
	"bytes"
	"strconv"

	league "github.com/mmartuko/wsopleague"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the per-player financial summary, ranked by net
// winnings the way the rows arrive.
func SummaryMarkdown(rows []league.PlayerSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Summary")
	if len(rows) == 0 {
		doc.PlainText("No events ingested yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Player", "Events", "Buy-Ins", "Nightly Fees", "Payouts", "Bounties", "Paid In", "Earned", "Net"},
	}
	for _, p := range rows {
		table.Rows = append(table.Rows, []string{
			p.Player,
			strconv.Itoa(p.Events),
			p.InitialBuyIns.String(),
			p.NightlyFees.String(),
			p.NightlyPayouts.String(),
			p.Bounties.String(),
			p.TotalPaidIn.String(),
			p.TotalEarned.String(),
			p.Net.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
