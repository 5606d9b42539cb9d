package league

// OptInsSheet records which players entered the second-chance side pot
// for each event.
const OptInsSheet = "SecondChance_OptIns"

var optInsColumns = []string{"Event #", "Player", "Opt-In", "Buy-In"}

var optInFields = []Field{
	{Name: "event", Aliases: []string{"event", "eventno"}, Required: true},
	{Name: "player", Aliases: []string{"player", "name"}, Required: true},
	{Name: "optin", Aliases: []string{"optin"}},
	{Name: "buyin", Aliases: []string{"buyin"}},
}

// OptIn is one player's second-chance selection for an event.
type OptIn struct {
	Event  int
	Player string
	In     bool
	BuyIn  Money
}

// SaveOptIns replaces event E's opt-in selection: all prior rows for the
// event are deleted before the new set is inserted. Saving twice with
// different player sets leaves only the second set.
func SaveOptIns(wb *Workbook, event int, optIns []OptIn) {
	s := wb.Ensure(OptInsSheet, optInsColumns...)
	if cols, err := ResolveColumns(s, optInFields); err == nil {
		kept := s.Rows[:0]
		for _, r := range s.Rows {
			if n, ok := cellFloat(r[cols["event"]]); ok && int(n) == event {
				continue
			}
			kept = append(kept, r)
		}
		s.Rows = kept
	}
	for _, o := range optIns {
		in := "No"
		if o.In {
			in = "Yes"
		}
		s.Append(Row{
			"Event #": float64(event),
			"Player":  o.Player,
			"Opt-In":  in,
			"Buy-In":  o.BuyIn.AsFloat(),
		})
	}
}

// OptInsFor returns the opt-in rows recorded for an event.
func OptInsFor(wb *Workbook, event int) []OptIn {
	s := wb.Sheet(OptInsSheet)
	if s.Empty() {
		return nil
	}
	cols, err := ResolveColumns(s, optInFields)
	if err != nil {
		return nil
	}
	var optIns []OptIn
	for _, r := range s.Rows {
		n, ok := cellFloat(r[cols["event"]])
		if !ok || int(n) != event {
			continue
		}
		o := OptIn{Event: event, Player: cellString(r[cols["player"]])}
		if cols.Has("optin") {
			o.In = cellBool(r[cols["optin"]])
		}
		if cols.Has("buyin") {
			o.BuyIn = MoneyOf(r[cols["buyin"]])
		}
		optIns = append(optIns, o)
	}
	return optIns
}
