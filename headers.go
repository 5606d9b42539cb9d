package league

import (
	"fmt"
	"strings"
)

// The tracker is header-variable: the same column shows up as "KOs",
// "#Eliminated" or "Knockouts" depending on who last edited the sheet.
// Fields declare the canonical name of a column and the aliases that may
// stand in for it.
type Field struct {
	Name     string
	Aliases  []string
	Required bool
}

// Columns maps a canonical field name to the column header actually used
// by one particular sheet.
type Columns map[string]string

// Has reports whether the canonical field resolved to a column.
func (c Columns) Has(field string) bool {
	_, ok := c[field]
	return ok
}

// normalizeHeader reduces a header to lowercase alphanumerics, so that
// "Bounty $ (KOs*5)" and "bountykos5" compare equal.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveColumns maps each declared field onto the column header actually
// used by the sheet. Matching is first-alias-wins over the priority-ordered
// alias list; when two sheet columns normalize identically the leftmost
// wins. An error is returned only when a required field has no matching
// column; optional fields are simply absent from the result.
//
// Read-only consumers treat the error as "skip this sheet"; the ingestion
// pipeline surfaces it to the operator.
func ResolveColumns(s *Sheet, fields []Field) (Columns, error) {
	byNorm := make(map[string]string)
	if s != nil {
		for i := len(s.Columns) - 1; i >= 0; i-- {
			byNorm[normalizeHeader(s.Columns[i])] = s.Columns[i]
		}
	}
	cols := make(Columns, len(fields))
	var missing []string
	for _, f := range fields {
		for _, a := range f.Aliases {
			if actual, ok := byNorm[normalizeHeader(a)]; ok {
				cols[f.Name] = actual
				break
			}
		}
		if f.Required && !cols.Has(f.Name) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// Canonical field sets for the tracker's header-variable sheets.
var (
	// standingsFields is what the read-only aggregations need from an
	// event standings sheet. Only player and place are required; a sheet
	// lacking either degrades the aggregate rather than aborting it.
	standingsFields = []Field{
		{Name: "player", Aliases: []string{"player", "name"}, Required: true},
		{Name: "place", Aliases: []string{"place", "rank", "finish", "position"}, Required: true},
		{Name: "kos", Aliases: []string{"kos", "knockouts", "eliminations", "eliminated", "elims"}},
		{Name: "payout", Aliases: []string{"payout", "winnings", "prize"}},
		{Name: "bounty", Aliases: []string{"bounty", "bounty$", "bounties"}},
	}

	// ledgerFields is the pool ledger's schema as seen by the balance
	// engine.
	ledgerFields = []Field{
		{Name: "type", Aliases: []string{"type"}, Required: true},
		{Name: "pool", Aliases: []string{"pool"}, Required: true},
		{Name: "amount", Aliases: []string{"amount", "amt"}, Required: true},
	}

	// eventFields locates an event's calendar date in the Events sheet.
	eventFields = []Field{
		{Name: "event", Aliases: []string{"event", "eventno", "eventnumber"}, Required: true},
		{Name: "date", Aliases: []string{"date", "eventdate"}, Required: true},
	}
)
