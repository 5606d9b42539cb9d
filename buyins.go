package league

import "strings"

// BuyInsSheet records the series buy-in payments, one row per payment
// event. Rows are never aggregated in place, only summed at read time.
const BuyInsSheet = "Series_BuyIns"

var buyInsColumns = []string{"Player", "Amount", "Date", "Method", "Note"}

var buyInFields = []Field{
	{Name: "player", Aliases: []string{"player", "name"}, Required: true},
	{Name: "amount", Aliases: []string{"amount", "amt"}, Required: true},
}

// BuyIn is one recorded series payment.
type BuyIn struct {
	Player string
	Amount Money
	Date   Date
	Method string
	Note   string
}

// RecordBuyIn appends one payment to the buy-ins table. An unset date
// defaults to today.
func RecordBuyIn(wb *Workbook, b BuyIn) {
	if b.Date.IsZero() {
		b.Date = Today()
	}
	s := wb.Ensure(BuyInsSheet, buyInsColumns...)
	s.Append(Row{
		"Player": b.Player,
		"Amount": b.Amount.AsFloat(),
		"Date":   b.Date.String(),
		"Method": b.Method,
		"Note":   b.Note,
	})
}

// BuyInTotal sums the recorded buy-ins for a player, matching the name
// case-insensitively.
func BuyInTotal(wb *Workbook, player string) Money {
	var total Money
	s := wb.Sheet(BuyInsSheet)
	if s.Empty() {
		return total
	}
	cols, err := ResolveColumns(s, buyInFields)
	if err != nil {
		return total
	}
	for _, r := range s.Rows {
		if !strings.EqualFold(cellString(r[cols["player"]]), strings.TrimSpace(player)) {
			continue
		}
		total = total.Add(MoneyOf(r[cols["amount"]]))
	}
	return total
}
