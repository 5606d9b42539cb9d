package league

import (
	"reflect"
	"strings"
	"testing"
)

func TestWorkbook_PutAndOrder(t *testing.T) {
	wb := NewWorkbook()
	wb.Put("B", &Sheet{})
	wb.Put("A", &Sheet{})
	wb.Put("B", &Sheet{Columns: []string{"x"}}) // replace keeps position

	if got := wb.Names(); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("Names = %v, want [B A]", got)
	}
	if wb.Len() != 2 {
		t.Errorf("Len = %d, want 2", wb.Len())
	}
	if got := wb.Sheet("B").Columns; len(got) != 1 || got[0] != "x" {
		t.Errorf("replaced sheet columns = %v, want [x]", got)
	}
	if wb.Sheet("missing") != nil {
		t.Error("missing sheet should be nil")
	}
}

func TestWorkbook_Ensure(t *testing.T) {
	wb := NewWorkbook()
	s := wb.Ensure("Players", "Player", "Active")
	s.Append(Row{"Player": "Alice"})
	// A second Ensure returns the same sheet, schema untouched.
	again := wb.Ensure("Players", "Other")
	if again != s {
		t.Error("Ensure should return the existing sheet")
	}
	if !reflect.DeepEqual(again.Columns, []string{"Player", "Active"}) {
		t.Errorf("columns = %v, want the original schema", again.Columns)
	}
}

func TestCellCoercions(t *testing.T) {
	if got := cellString(" Alice "); got != "Alice" {
		t.Errorf("cellString = %q, want trimmed", got)
	}
	if got := cellString(2.5); got != "2.5" {
		t.Errorf("cellString(2.5) = %q", got)
	}
	if got := cellString(nil); got != "" {
		t.Errorf("cellString(nil) = %q, want empty", got)
	}
	if f, ok := cellFloat(" 3 "); !ok || f != 3 {
		t.Errorf("cellFloat(\" 3 \") = %v, %v", f, ok)
	}
	if _, ok := cellFloat("DNF"); ok {
		t.Error("cellFloat(DNF) should not coerce")
	}
	for _, v := range []any{true, "Yes", "y", "1", 1.0} {
		if !cellBool(v) {
			t.Errorf("cellBool(%v) = false, want true", v)
		}
	}
	for _, v := range []any{false, "no", "", nil, 0.0} {
		if cellBool(v) {
			t.Errorf("cellBool(%v) = true, want false", v)
		}
	}
}

func TestTruncateSheetName(t *testing.T) {
	long := "Event_1_Standings_" + strings.Repeat("x", 40)
	if got := TruncateSheetName(long); len(got) != MaxSheetNameLen {
		t.Errorf("truncated length = %d, want %d", len(got), MaxSheetNameLen)
	}
	if got := TruncateSheetName("Pools_Ledger"); got != "Pools_Ledger" {
		t.Errorf("short name altered: %q", got)
	}
}

func TestWorkbookCodec_RoundTrip(t *testing.T) {
	wb := NewWorkbook()
	wb.Put(PoolsSheet, ledgerSheet(
		entry(Accrual, "WSOP", 400),
		entry(Payout, "Nightly", 150),
	))
	wb.Put("Event_1_Standings", standingsSheet(
		Row{"Place": 1, "Player": "Alice", "KOs": 2},
	))

	b, err := EncodeWorkbook(wb)
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}
	got, err := DecodeWorkbook(b)
	if err != nil {
		t.Fatalf("DecodeWorkbook: %v", err)
	}
	if !reflect.DeepEqual(got.Names(), wb.Names()) {
		t.Fatalf("sheet names = %v, want %v", got.Names(), wb.Names())
	}

	// Decoded cells are strings; the domain reads coerce as needed.
	if bal := PoolBalance(got, "WSOP"); bal.AsFloat() != 400 {
		t.Errorf("WSOP balance after round trip = %v, want 400", bal.AsFloat())
	}
	if bal := PoolBalance(got, "Nightly"); bal.AsFloat() != -150 {
		t.Errorf("Nightly balance after round trip = %v, want -150", bal.AsFloat())
	}
	lb := Leaderboard(got)
	if len(lb) != 1 || lb[0].Player != "Alice" || lb[0].Points != 14 {
		t.Errorf("leaderboard after round trip = %+v", lb)
	}
}

func TestWorkbookCodec_TruncatesOnWrite(t *testing.T) {
	wb := NewWorkbook()
	long := "A_Very_Long_Sheet_Name_Well_Past_The_Limit"
	wb.Put(long, &Sheet{Columns: []string{"c"}, Rows: []Row{{"c": "v"}}})

	b, err := EncodeWorkbook(wb)
	if err != nil {
		t.Fatalf("EncodeWorkbook: %v", err)
	}
	got, err := DecodeWorkbook(b)
	if err != nil {
		t.Fatalf("DecodeWorkbook: %v", err)
	}
	names := got.Names()
	if len(names) != 1 || names[0] != TruncateSheetName(long) {
		t.Errorf("names = %v, want [%s]", names, TruncateSheetName(long))
	}
}
