package league

// D is a helper for tests to create dollar money from const.
func D(v float64) Money { return USD(v) }

// standingsSheet builds an event standings sheet in the canonical schema.
func standingsSheet(rows ...Row) *Sheet {
	return &Sheet{
		Columns: []string{"Place", "Player", "KOs", "Payout", "Points", "Bounty$"},
		Rows:    rows,
	}
}

// ledgerSheet builds a pool ledger sheet in the canonical schema.
func ledgerSheet(rows ...Row) *Sheet {
	return &Sheet{Columns: poolsColumns, Rows: rows}
}

// entry is a shorthand ledger row.
func entry(kind, pool string, amount float64) Row {
	return Row{"Type": kind, "Pool": pool, "Amount": amount}
}
