package league

import (
	"encoding/base64"
	"reflect"
	"testing"
)

const timerHTML = `<html><body>
<h1>Tournament Results</h1>
<table>
<tr><th>Place</th><th>Name</th><th>KOs</th><th>Payout</th></tr>
<tr><td>1</td><td>Alice</td><td>2</td><td>$100.00</td></tr>
<tr><td>2</td><td>Bob</td><td>0</td><td>$60.00</td></tr>
<tr><td>3</td><td>Carol</td><td>1</td><td>$40.00</td></tr>
</table>
<table>
<tr><th>Duration</th><th>Players</th></tr>
<tr><td>4h02m</td><td>Alice, Bob, Carol, Dave</td></tr>
</table>
</body></html>`

func TestDecodeTimerExport_HTML(t *testing.T) {
	exp, err := DecodeTimerExport([]byte(timerHTML))
	if err != nil {
		t.Fatalf("DecodeTimerExport: %v", err)
	}
	if len(exp.Results.Rows) != 3 {
		t.Fatalf("results has %d rows, want 3", len(exp.Results.Rows))
	}
	if got := cellString(exp.Results.Rows[0]["Name"]); got != "Alice" {
		t.Errorf("first result Name = %q, want Alice", got)
	}
	want := []string{"Alice", "Bob", "Carol", "Dave"}
	if got := exp.Roster(); !reflect.DeepEqual(got, want) {
		t.Errorf("Roster = %v, want %v", got, want)
	}
}

func TestDecodeTimerExport_Base64(t *testing.T) {
	wrapped := base64.StdEncoding.EncodeToString([]byte(timerHTML))
	exp, err := DecodeTimerExport([]byte(wrapped))
	if err != nil {
		t.Fatalf("DecodeTimerExport: %v", err)
	}
	if len(exp.Results.Rows) != 3 {
		t.Errorf("results has %d rows, want 3", len(exp.Results.Rows))
	}
}

func TestDecodeTimerExport_Delimited(t *testing.T) {
	doc := "Place,Name,Payout\n1,Alice,$50\n2,Bob,$25\n\nDuration,Players\n3h,\"?\"\n"
	exp, err := DecodeTimerExport([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeTimerExport: %v", err)
	}
	if len(exp.Results.Rows) != 2 {
		t.Errorf("results has %d rows, want 2", len(exp.Results.Rows))
	}
	if got := cellString(exp.Results.Rows[1]["Payout"]); got != "$25" {
		t.Errorf("Payout = %q, want $25", got)
	}
}

func TestDecodeTimerExport_QuotedRoster(t *testing.T) {
	// A CSV export quotes the roster cell because it contains commas;
	// it must survive as one field, not shatter into bogus names.
	doc := "Place,Name,Payout\n1,Alice,$50\n2,Bob,$25\n\nDuration,Players\n4h02m,\"Alice, Bob, Carol, Dave\"\n"
	exp, err := DecodeTimerExport([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeTimerExport: %v", err)
	}
	want := []string{"Alice", "Bob", "Carol", "Dave"}
	if got := exp.Roster(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roster = %v, want %v", got, want)
	}

	// The accruals scale by roster size, so a shattered roster would
	// mis-book the night's money.
	wb := NewWorkbook()
	if _, err := Ingest(wb, []byte(doc)); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	wsop := float64((WSOPBaseRate + WSOPAddOnRate) * len(want))
	if got := PoolBalance(wb, PoolWSOP); got.AsFloat() != wsop {
		t.Errorf("WSOP balance = %v, want %v", got.AsFloat(), wsop)
	}
}

func TestDecodeTimerExport_SignatureBeatsPosition(t *testing.T) {
	// Session summary first: header signatures must still find both.
	doc := "Duration\tPlayers\n2h10m\tAlice, Bob\n\nPlace\tName\tPayout\n1\tAlice\t$80\n2\tBob\t$0\n"
	exp, err := DecodeTimerExport([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeTimerExport: %v", err)
	}
	if _, err := ResolveColumns(exp.Results, resultsSignature); err != nil {
		t.Errorf("results table not located by signature: %v", err)
	}
	if got := exp.Roster(); len(got) != 2 || got[0] != "Alice" {
		t.Errorf("Roster = %v, want [Alice Bob]", got)
	}
}

func TestDecodeTimerExport_TooFewTables(t *testing.T) {
	if _, err := DecodeTimerExport([]byte("<table><tr><td>only</td></tr></table>")); err == nil {
		t.Fatal("expected an error for a single-table document")
	}
}
