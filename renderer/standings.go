package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	league "github.com/mmartuko/wsopleague"
	md "github.com/nao1215/markdown"
)

// StandingsMarkdown renders one event's standings sheet. The sheet is
// rendered as stored, column for column, so admin edits show up verbatim.
func StandingsMarkdown(wb *league.Workbook, event int) (string, error) {
	name := league.StandingsSheetName(event)
	s := wb.Sheet(name)
	if s.Empty() {
		return "", fmt.Errorf("no standings recorded for event %d", event)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Event %d Standings", event))

	table := md.TableSet{Header: s.Columns}
	for _, row := range s.Rows {
		cells := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			cells[i] = cellText(row[c])
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.CustomTable(table, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	return doc.String(), nil
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
