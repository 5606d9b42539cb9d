package league

import "sort"

// PlayerSummary joins one player's season earnings against their
// contributions.
type PlayerSummary struct {
	Player         string
	Events         int
	InitialBuyIns  Money // recorded Series_BuyIns payments
	NightlyFees    Money // Events x NightlyRate
	BountyContribs Money // Events x BountyRate
	NightlyPayouts Money // standings Payout sum
	Bounties       Money // standings Bounty$ sum
	TotalPaidIn    Money
	TotalEarned    Money
	Net            Money
}

// Summarize produces the per-player financial summary across the whole
// season. Earnings come from the standings sheets and the buy-ins table;
// nightly fees and bounty contributions are inferred from participation
// count at the current rates rather than read back from the ledger, so
// they can drift from the ledger's accrual rows if a rate changes
// mid-season.
//
// The result is sorted descending by (net winnings, total earned), stable
// in first-appearance order.
func Summarize(wb *Workbook) []PlayerSummary {
	index := make(map[string]int)
	var rows []PlayerSummary
	for _, name := range wb.Names() {
		if !IsStandingsSheet(name) {
			continue
		}
		s := wb.Sheet(name)
		if s.Empty() {
			continue
		}
		cols, err := ResolveColumns(s, standingsFields)
		if err != nil {
			continue
		}
		for _, r := range s.Rows {
			if _, ok := cellFloat(r[cols["place"]]); !ok {
				continue
			}
			player := cellString(r[cols["player"]])
			if player == "" {
				continue
			}
			i, seen := index[player]
			if !seen {
				i = len(rows)
				index[player] = i
				rows = append(rows, PlayerSummary{Player: player})
			}
			rows[i].Events++
			if cols.Has("payout") {
				rows[i].NightlyPayouts = rows[i].NightlyPayouts.Add(MoneyOf(r[cols["payout"]]))
			}
			if cols.Has("bounty") {
				rows[i].Bounties = rows[i].Bounties.Add(MoneyOf(r[cols["bounty"]]))
			}
		}
	}
	for i := range rows {
		p := &rows[i]
		p.InitialBuyIns = BuyInTotal(wb, p.Player)
		p.NightlyFees = USD(float64(NightlyRate * p.Events))
		p.BountyContribs = USD(float64(BountyRate * p.Events))
		p.TotalPaidIn = p.InitialBuyIns.Add(p.NightlyFees)
		p.TotalEarned = p.NightlyPayouts.Add(p.Bounties)
		p.Net = p.TotalEarned.Sub(p.TotalPaidIn)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Net.Equal(rows[j].Net) {
			return rows[j].Net.LessThan(rows[i].Net)
		}
		return rows[j].TotalEarned.LessThan(rows[i].TotalEarned)
	})
	return rows
}
