package league

import (
	"fmt"
	"math"
)

// Per-player nightly rates and fixed costs, in dollars. The financial
// summary infers fees from these same constants, so a mid-season rate
// change must reconcile the ledger history with the summary.
const (
	WSOPBaseRate      = 40 // initial buy-in share of the WSOP pool
	WSOPAddOnRate     = 10 // additional WSOP share collected each night
	NightlyRate       = 20 // nightly prize pool fee
	BountyRate        = 5  // bounty pool contribution
	HighHandRate      = 5  // high-hand jackpot contribution
	ServerTipAmount   = 20 // fixed per-event supplies cost
	BountyPerKO       = 5  // dollars earned per knockout
	WinnerBountyBonus = 5  // the event winner keeps their own bounty
)

// EventsSheet maps event numbers to calendar dates.
const EventsSheet = "Events"

// placeholderDate marks rows whose event has no calendar entry yet.
const placeholderDate = "TBD"

// standingsColumns is the schema of a freshly ingested standings sheet.
var standingsColumns = []string{"Place", "Player", "KOs", "Payout", "Points", "Bounty$"}

// timerFields is the ingestion-side schema of the results table. Unlike
// the read-only aggregations, ingestion hard-requires the payout column:
// without it the night's ledger entries cannot be derived.
var timerFields = []Field{
	{Name: "player", Aliases: []string{"player", "name"}, Required: true},
	{Name: "place", Aliases: []string{"place", "rank", "finish", "position"}, Required: true},
	{Name: "payout", Aliases: []string{"payout", "winnings", "prize"}, Required: true},
	{Name: "kos", Aliases: []string{"kos", "knockouts", "eliminations", "eliminated", "elims"}},
}

// IngestResult reports what one ingestion added to the workbook.
type IngestResult struct {
	Event       int
	SheetName   string
	Players     []string
	PayoutTotal Money
}

// NextEventNumber scans existing standings sheets and returns max(N)+1,
// or 1 for a fresh tracker. Event numbers are never reused, even when an
// event is re-ingested under a new number.
func NextEventNumber(wb *Workbook) int {
	max := 0
	for _, name := range wb.Names() {
		if n, ok := eventNumber(name); ok && n > max {
			max = n
		}
	}
	return max + 1
}

// EventDate looks up an event's calendar date in the Events sheet,
// falling back to a placeholder when no entry exists.
func EventDate(wb *Workbook, event int) string {
	s := wb.Sheet(EventsSheet)
	if s.Empty() {
		return placeholderDate
	}
	cols, err := ResolveColumns(s, eventFields)
	if err != nil {
		return placeholderDate
	}
	for _, r := range s.Rows {
		if n, ok := cellFloat(r[cols["event"]]); ok && int(n) == event {
			if d := cellString(r[cols["date"]]); d != "" {
				return d
			}
		}
	}
	return placeholderDate
}

// Ingest converts one timer export into a new standings sheet plus the
// matching ledger, roster, and supplies updates. All decoding, column
// resolution, and row parsing happen before the workbook is touched; a
// malformed export leaves the tracker exactly as it was.
//
// Ingestion is not idempotent: feeding the same export twice mints two
// event numbers and double-counts the derived ledger entries. Avoiding
// that is the operator's job.
func Ingest(wb *Workbook, doc []byte) (*IngestResult, error) {
	exp, err := DecodeTimerExport(doc)
	if err != nil {
		return nil, err
	}
	cols, err := ResolveColumns(exp.Results, timerFields)
	if err != nil {
		return nil, fmt.Errorf("timer export results table: %w", err)
	}

	// Stage the standings rows.
	standings := &Sheet{Columns: standingsColumns}
	var payoutTotal Money
	for _, r := range exp.Results.Rows {
		place, ok := cellFloat(r[cols["place"]])
		if !ok {
			continue
		}
		player := cellString(r[cols["player"]])
		kos := 0
		if cols.Has("kos") {
			if v, ok := cellFloat(r[cols["kos"]]); ok {
				kos = int(v)
			}
		}
		payout := MoneyOf(r[cols["payout"]])
		payoutTotal = payoutTotal.Add(payout)
		pts := 0.0
		bounty := kos * BountyPerKO
		if place == math.Trunc(place) {
			pts = PointsFor(int(place))
			if int(place) == 1 {
				bounty += WinnerBountyBonus
			}
		}
		standings.Append(Row{
			"Place":   place,
			"Player":  player,
			"KOs":     float64(kos),
			"Payout":  payout.AsFloat(),
			"Points":  pts,
			"Bounty$": float64(bounty),
		})
	}

	roster := exp.Roster()
	if len(roster) == 0 {
		// No roster field in the session summary; the finishers are the roster.
		for _, r := range standings.Rows {
			roster = append(roster, cellString(r["Player"]))
		}
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("timer export has no players")
	}

	event := NextEventNumber(wb)
	date := EventDate(wb, event)

	// Mutations begin here.
	UpsertPlayers(wb, roster)

	n := len(roster)
	accruals := []LedgerEntry{
		{Pool: PoolWSOP, Amount: USD(float64(WSOPBaseRate * n)), Note: fmt.Sprintf("Initial buy-in $%d x %d players", WSOPBaseRate, n)},
		{Pool: PoolWSOP, Amount: USD(float64(WSOPAddOnRate * n)), Note: fmt.Sprintf("Add-on $%d x %d players", WSOPAddOnRate, n)},
		{Pool: PoolNightly, Amount: USD(float64(NightlyRate * n)), Note: fmt.Sprintf("Nightly fee $%d x %d players", NightlyRate, n)},
		{Pool: PoolBounty, Amount: USD(float64(BountyRate * n)), Note: fmt.Sprintf("Bounty $%d x %d players", BountyRate, n)},
		{Pool: PoolHighHand, Amount: USD(float64(HighHandRate * n)), Note: fmt.Sprintf("High hand $%d x %d players", HighHandRate, n)},
	}
	for _, e := range accruals {
		e.Date, e.Event, e.Type = date, event, Accrual
		AppendLedgerEntry(wb, e)
	}
	// The night's payouts are disbursed on the same pass that funds the
	// nightly pool.
	AppendLedgerEntry(wb, LedgerEntry{
		Date:      date,
		Event:     event,
		Type:      Payout,
		Pool:      PoolNightly,
		Amount:    payoutTotal,
		Immediate: true,
		Note:      "Nightly payouts",
	})

	EnsureSupply(wb, event, date, "Server Tip", USD(ServerTipAmount))

	name := StandingsSheetName(event)
	wb.Put(name, standings)

	return &IngestResult{
		Event:       event,
		SheetName:   name,
		Players:     roster,
		PayoutTotal: payoutTotal,
	}, nil
}
