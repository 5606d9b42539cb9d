package league

import "testing"

func TestPoolBalance(t *testing.T) {
	ledger := ledgerSheet(
		entry(Accrual, "WSOP", 400),
		entry(Accrual, "Nightly", 200),
		entry(Payout, "Nightly", 150),
		entry(Accrual, "Bounty", 50),
		Row{"Type": " accrual ", "Pool": " wsop ", "Amount": "$100.00"},
		Row{"Type": "Adjustment", "Pool": "WSOP", "Amount": 25}, // unknown type accrues
		Row{"Type": Payout, "Pool": "WSOP", "Amount": "(25.00)"},
	)
	wb := NewWorkbook()
	wb.Put(PoolsSheet, ledger)

	testCases := []struct {
		pool string
		want float64
	}{
		{"WSOP", 400 + 100 + 25 + 25}, // negative amount on a payout adds back
		{"wsop", 550},                 // pool match is case-insensitive
		{"Nightly", 50},
		{"Bounty", 50},
		{"High Hand", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.pool, func(t *testing.T) {
			got := PoolBalance(wb, tc.pool)
			if got.AsFloat() != tc.want {
				t.Errorf("PoolBalance(%q) = %v, want %v", tc.pool, got.AsFloat(), tc.want)
			}
			// pure and deterministic
			if again := PoolBalance(wb, tc.pool); !again.Equal(got) {
				t.Errorf("PoolBalance(%q) is not deterministic: %v then %v", tc.pool, got, again)
			}
		})
	}
}

func TestPoolBalance_EmptyAndMalformed(t *testing.T) {
	wb := NewWorkbook()
	if got := PoolBalance(wb, "WSOP"); !got.IsZero() {
		t.Errorf("balance of a missing ledger = %v, want zero", got)
	}

	wb.Put(PoolsSheet, &Sheet{Columns: []string{"What", "Ever"}, Rows: []Row{{"What": "x"}}})
	if got := PoolBalance(wb, "WSOP"); !got.IsZero() {
		t.Errorf("balance of a header-incompatible ledger = %v, want zero", got)
	}
}

func TestPoolBalance_AmtAlias(t *testing.T) {
	wb := NewWorkbook()
	wb.Put(PoolsSheet, &Sheet{
		Columns: []string{"Type", "Pool", "Amt"},
		Rows:    []Row{{"Type": Accrual, "Pool": "WSOP", "Amt": "$400"}},
	})
	if got := PoolBalance(wb, "WSOP"); got.AsFloat() != 400 {
		t.Errorf("balance with Amt alias = %v, want 400", got.AsFloat())
	}
}

func TestAppendLedgerEntry(t *testing.T) {
	wb := NewWorkbook()
	AppendLedgerEntry(wb, LedgerEntry{
		Date: "2026-08-01", Event: 3, Type: Accrual, Pool: PoolWSOP,
		Amount: D(400), Note: "Initial buy-in",
	})
	AppendLedgerEntry(wb, LedgerEntry{
		Date: "2026-08-01", Event: 3, Type: Payout, Pool: PoolWSOP,
		Amount: D(150), Immediate: true,
	})
	s := wb.Sheet(PoolsSheet)
	if len(s.Rows) != 2 {
		t.Fatalf("ledger has %d rows, want 2", len(s.Rows))
	}
	if got := PoolBalance(wb, PoolWSOP); got.AsFloat() != 250 {
		t.Errorf("balance after append = %v, want 250", got.AsFloat())
	}
	if s.Rows[1]["Immediate?"] != "Yes" {
		t.Errorf("immediate payout flag = %v, want Yes", s.Rows[1]["Immediate?"])
	}
}
