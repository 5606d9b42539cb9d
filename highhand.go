package league

import "time"

// HighHandSheet holds the current high-hand jackpot holder. A single-row
// sheet edited by the admin, displayed by the player home.
const HighHandSheet = "HighHand_Info"

var highHandColumns = []string{"Current Holder", "Hand Description", "Display Value (override)", "Last Updated", "Note"}

// HighHand is the current high-hand jackpot information.
type HighHand struct {
	Holder      string
	Hand        string
	Override    string // display value override; the live pool balance otherwise
	LastUpdated string
	Note        string
}

// ReadHighHand returns the recorded high-hand info, zero-valued when the
// sheet is absent or empty.
func ReadHighHand(wb *Workbook) HighHand {
	s := wb.Sheet(HighHandSheet)
	if s.Empty() {
		return HighHand{}
	}
	r := s.Rows[0]
	return HighHand{
		Holder:      cellString(r["Current Holder"]),
		Hand:        cellString(r["Hand Description"]),
		Override:    cellString(r["Display Value (override)"]),
		LastUpdated: cellString(r["Last Updated"]),
		Note:        cellString(r["Note"]),
	}
}

// SaveHighHand replaces the high-hand info and stamps Last Updated.
func SaveHighHand(wb *Workbook, hh HighHand) {
	s := wb.Ensure(HighHandSheet, highHandColumns...)
	row := Row{
		"Current Holder":           hh.Holder,
		"Hand Description":         hh.Hand,
		"Display Value (override)": hh.Override,
		"Last Updated":             time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		"Note":                     hh.Note,
	}
	if len(s.Rows) == 0 {
		s.Append(row)
		return
	}
	s.Rows[0] = row
}
