package renderer

import (
	league "github.com/mmartuko/wsopleague"
)

// SeatCount is the number of WSOP seats the season pool funds.
const SeatCount = 5

// PoolsMarkdown renders the pool balances and the derived season metrics.
// Balances come straight from the ledger; the seat value divides the WSOP
// balance across the seats the pool funds.
func PoolsMarkdown(wb *league.Workbook) string {
	r := newReport()

	r.Printf("# Pool Balances\n\n")
	r.Printf("| Pool | Balance |\n")
	r.Printf("|:---|---:|\n")
	for _, pool := range league.Pools {
		r.Printf("| %s | %s |\n", pool, league.PoolBalance(wb, pool).String())
	}
	r.Printf("\n")

	wsop := league.PoolBalance(wb, league.PoolWSOP)
	r.Printf("## Season Metrics\n\n")
	r.Printf("* Seat value: %s (each of %d seats)\n", wsop.DivInt(SeatCount), SeatCount)
	r.Printf("* High Hand jackpot: %s\n", highHandDisplay(wb))

	return r.String()
}

// highHandDisplay resolves the jackpot line: the admin's override when one
// is set, the live pool balance otherwise.
func highHandDisplay(wb *league.Workbook) string {
	hh := league.ReadHighHand(wb)
	value := league.PoolBalance(wb, league.PoolHighHand).String()
	if hh.Override != "" {
		value = hh.Override
	}
	if hh.Holder == "" {
		return value + ", unclaimed"
	}
	return value + ", held by " + hh.Holder + " (" + hh.Hand + ")"
}
