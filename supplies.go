package league

import "strings"

// SuppliesSheet tracks fixed per-event costs, like the server tip.
const SuppliesSheet = "Supplies"

var suppliesColumns = []string{"Event #", "Date", "Item", "Amount", "Notes"}

var suppliesFields = []Field{
	{Name: "event", Aliases: []string{"event", "eventno"}, Required: true},
	{Name: "item", Aliases: []string{"item"}, Required: true},
}

// EnsureSupply inserts a fixed-cost row at most once per (event, item)
// pair and reports whether a row was inserted. The existence check makes
// the insertion idempotent across repeated calls for the same event.
func EnsureSupply(wb *Workbook, event int, date, item string, amount Money) bool {
	s := wb.Ensure(SuppliesSheet, suppliesColumns...)
	if cols, err := ResolveColumns(s, suppliesFields); err == nil {
		for _, r := range s.Rows {
			n, ok := cellFloat(r[cols["event"]])
			if ok && int(n) == event && strings.EqualFold(cellString(r[cols["item"]]), item) {
				return false
			}
		}
	}
	s.Append(Row{
		"Event #": float64(event),
		"Date":    date,
		"Item":    item,
		"Amount":  amount.AsFloat(),
		"Notes":   "",
	})
	return true
}
