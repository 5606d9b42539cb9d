package league

import "testing"

func TestSaveOptIns_ReplacesEvent(t *testing.T) {
	wb := NewWorkbook()
	SaveOptIns(wb, 1, []OptIn{
		{Player: "Alice", In: true, BuyIn: D(10)},
		{Player: "Bob", In: false},
	})
	SaveOptIns(wb, 2, []OptIn{
		{Player: "Carol", In: true, BuyIn: D(10)},
	})
	// Saving event 1 again drops its earlier rows but leaves event 2 alone.
	SaveOptIns(wb, 1, []OptIn{
		{Player: "Alice", In: false},
	})

	s := wb.Sheet(OptInsSheet)
	if len(s.Rows) != 2 {
		t.Fatalf("sheet has %d rows, want 2", len(s.Rows))
	}

	got := OptInsFor(wb, 1)
	if len(got) != 1 {
		t.Fatalf("event 1 has %d opt-ins, want 1", len(got))
	}
	if got[0].Player != "Alice" || got[0].In {
		t.Errorf("event 1 opt-in = %+v, want Alice opted out", got[0])
	}

	got = OptInsFor(wb, 2)
	if len(got) != 1 || got[0].Player != "Carol" || !got[0].In {
		t.Errorf("event 2 opt-ins = %+v, want Carol opted in", got)
	}
	if got[0].BuyIn.AsFloat() != 10 {
		t.Errorf("Carol buy-in = %v, want 10", got[0].BuyIn.AsFloat())
	}
}

func TestOptInsFor_MissingSheet(t *testing.T) {
	if got := OptInsFor(NewWorkbook(), 1); got != nil {
		t.Errorf("OptInsFor on an empty workbook = %+v, want nil", got)
	}
}

func TestRecordBuyIn(t *testing.T) {
	wb := NewWorkbook()
	RecordBuyIn(wb, BuyIn{Player: "Alice", Amount: D(100), Method: "Cash"})
	RecordBuyIn(wb, BuyIn{
		Player: "Alice", Amount: D(100),
		Date: NewDate(2026, 8, 14), Method: "Venmo", Note: "second half",
	})
	RecordBuyIn(wb, BuyIn{Player: "Bob", Amount: D(200)})

	s := wb.Sheet(BuyInsSheet)
	if len(s.Rows) != 3 {
		t.Fatalf("sheet has %d rows, want 3", len(s.Rows))
	}
	if s.Rows[0]["Date"] == "" {
		t.Error("an unset date should default to today")
	}
	if s.Rows[1]["Date"] != "2026-08-14" {
		t.Errorf("date = %v, want 2026-08-14", s.Rows[1]["Date"])
	}

	if got := BuyInTotal(wb, "alice"); got.AsFloat() != 200 {
		t.Errorf("BuyInTotal(alice) = %v, want 200 (case-insensitive)", got.AsFloat())
	}
	if got := BuyInTotal(wb, " Bob "); got.AsFloat() != 200 {
		t.Errorf("BuyInTotal( Bob ) = %v, want 200 (whitespace-tolerant)", got.AsFloat())
	}
	if got := BuyInTotal(wb, "Nobody"); !got.IsZero() {
		t.Errorf("BuyInTotal(Nobody) = %v, want zero", got)
	}
}

func TestHighHand_SaveAndRead(t *testing.T) {
	wb := NewWorkbook()
	if got := ReadHighHand(wb); got != (HighHand{}) {
		t.Errorf("ReadHighHand on an empty workbook = %+v, want zero", got)
	}

	SaveHighHand(wb, HighHand{Holder: "Alice", Hand: "Quad Aces", Note: "week 3"})
	got := ReadHighHand(wb)
	if got.Holder != "Alice" || got.Hand != "Quad Aces" || got.Note != "week 3" {
		t.Errorf("ReadHighHand = %+v", got)
	}
	if got.LastUpdated == "" {
		t.Error("LastUpdated should be stamped on save")
	}

	// Saving again replaces the single row rather than appending.
	SaveHighHand(wb, HighHand{Holder: "Bob", Hand: "Straight Flush", Override: "$150"})
	if n := len(wb.Sheet(HighHandSheet).Rows); n != 1 {
		t.Fatalf("sheet has %d rows, want 1", n)
	}
	got = ReadHighHand(wb)
	if got.Holder != "Bob" || got.Override != "$150" {
		t.Errorf("ReadHighHand after overwrite = %+v", got)
	}
}

func TestUpsertPlayers(t *testing.T) {
	wb := NewWorkbook()
	added := UpsertPlayers(wb, []string{"Alice", "Bob"})
	if len(added) != 2 {
		t.Errorf("added = %v, want [Alice Bob]", added)
	}
	// Known names are skipped, new ones appended at the end.
	added = UpsertPlayers(wb, []string{"Bob", "Carol"})
	if len(added) != 1 || added[0] != "Carol" {
		t.Errorf("added = %v, want [Carol]", added)
	}
	want := []string{"Alice", "Bob", "Carol"}
	got := ActivePlayers(wb)
	if len(got) != len(want) {
		t.Fatalf("roster = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("roster[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
