package league

import "strings"

// Pool names. A pool is a named fund whose balance is the signed sum of
// its ledger entries.
const (
	PoolWSOP     = "WSOP"
	PoolNightly  = "Nightly"
	PoolBounty   = "Bounty"
	PoolHighHand = "High Hand"
)

// Pools lists the league's funds in display order.
var Pools = []string{PoolWSOP, PoolNightly, PoolBounty, PoolHighHand}

// Ledger entry types. Accruals increase a pool, payouts decrease it.
const (
	Accrual = "Accrual"
	Payout  = "Payout"
)

// PoolsSheet is the tracker sheet holding the pool ledger.
const PoolsSheet = "Pools_Ledger"

var poolsColumns = []string{"Date", "Event #", "Type", "Pool", "Amount", "Immediate?", "Note"}

// LedgerEntry is one accrual or payout against a pool.
type LedgerEntry struct {
	Date      string
	Event     int
	Type      string
	Pool      string
	Amount    Money
	Immediate bool
	Note      string
}

// AppendLedgerEntry appends one entry to the pool ledger, creating the
// sheet if absent. Appends are plain row insertions: there is no
// transactional discipline because the workbook has a single writer.
func AppendLedgerEntry(wb *Workbook, e LedgerEntry) {
	s := wb.Ensure(PoolsSheet, poolsColumns...)
	immediate := ""
	if e.Immediate {
		immediate = "Yes"
	}
	s.Append(Row{
		"Date":       e.Date,
		"Event #":    float64(e.Event),
		"Type":       e.Type,
		"Pool":       e.Pool,
		"Amount":     e.Amount.AsFloat(),
		"Immediate?": immediate,
		"Note":       e.Note,
	})
}

// PoolBalance computes the signed balance of a pool from the tracker's
// pool ledger. Pool and type values match case- and whitespace-
// insensitively. An unrecognized type counts as an accrual: unknown
// transaction kinds fail open instead of silently dropping money. An
// empty or header-incompatible ledger balances to zero, never an error.
func PoolBalance(wb *Workbook, pool string) Money {
	return poolBalance(wb.Sheet(PoolsSheet), pool)
}

func poolBalance(s *Sheet, pool string) Money {
	var total Money
	if s.Empty() {
		return total
	}
	cols, err := ResolveColumns(s, ledgerFields)
	if err != nil {
		return total
	}
	want := strings.ToLower(strings.TrimSpace(pool))
	for _, r := range s.Rows {
		if strings.ToLower(cellString(r[cols["pool"]])) != want {
			continue
		}
		amount := MoneyOf(r[cols["amount"]])
		if strings.EqualFold(cellString(r[cols["type"]]), Payout) {
			amount = amount.Neg()
		}
		total = total.Add(amount)
	}
	return total
}
