package league

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// TimerExport is the decoded content of one tournament-timer export: the
// per-player results table and the session-summary table.
type TimerExport struct {
	Results *Sheet
	Summary *Sheet
}

// rosterFields locates the comma-separated player roster inside the
// session-summary table.
var rosterFields = []Field{
	{Name: "roster", Aliases: []string{"players", "playerlist", "roster", "names"}, Required: true},
}

// resultsSignature identifies a results table among the export's tables.
var resultsSignature = []Field{
	{Name: "player", Aliases: []string{"player", "name"}, Required: true},
	{Name: "place", Aliases: []string{"place", "rank", "finish", "position"}, Required: true},
}

// DecodeTimerExport parses a raw timer-export document. The export tool
// sometimes wraps the document in base64, so a base64 decode is attempted
// first, falling back to the raw bytes. The document holds its tables as
// HTML or as blank-line-separated delimited text.
//
// Tables are located by header signature: the results table resolves
// Player and Place, the session summary carries a roster column. Exports
// whose headers resolve nothing fall back to the positional contract
// (first table is results, second is the session summary).
func DecodeTimerExport(b []byte) (*TimerExport, error) {
	if dec, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(b))); err == nil {
		b = dec
	}
	var tables []*Sheet
	if bytes.Contains(bytes.ToLower(b), []byte("<table")) {
		tables = parseHTMLTables(b)
	} else {
		tables = parseDelimitedTables(string(b))
	}
	if len(tables) < 2 {
		return nil, fmt.Errorf("timer export must contain a results table and a session summary, found %d table(s)", len(tables))
	}

	exp := &TimerExport{}
	for _, t := range tables {
		if _, err := ResolveColumns(t, resultsSignature); err == nil {
			exp.Results = t
			break
		}
	}
	for _, t := range tables {
		if t == exp.Results {
			continue
		}
		if _, err := ResolveColumns(t, rosterFields); err == nil {
			exp.Summary = t
			break
		}
	}
	if exp.Results == nil {
		exp.Results = tables[0]
	}
	if exp.Summary == nil {
		if exp.Results == tables[0] {
			exp.Summary = tables[1]
		} else {
			exp.Summary = tables[0]
		}
	}
	return exp, nil
}

// Roster returns the player names from the session summary's
// comma-separated roster field, or nil when the summary has none.
func (t *TimerExport) Roster() []string {
	cols, err := ResolveColumns(t.Summary, rosterFields)
	if err != nil {
		return nil
	}
	for _, r := range t.Summary.Rows {
		raw := cellString(r[cols["roster"]])
		if raw == "" {
			continue
		}
		var names []string
		for _, n := range strings.Split(raw, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		return names
	}
	return nil
}

// parseHTMLTables extracts every <table> in document order. The first row
// of a table is its header.
func parseHTMLTables(b []byte) []*Sheet {
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return nil
	}
	var tables []*Sheet
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			if t := sheetFromGrid(gridFromTable(n)); t != nil {
				tables = append(tables, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return tables
}

func gridFromTable(table *html.Node) [][]string {
	var grid [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, strings.TrimSpace(nodeText(c)))
				}
			}
			if len(cells) > 0 {
				grid = append(grid, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return grid
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

// parseDelimitedTables splits the text on blank lines, one table per
// block. A block is tab-separated if it contains a tab, comma-separated
// otherwise. Comma blocks are read as CSV, so a quoted cell holding
// commas (the session summary's roster, typically) stays a single cell.
func parseDelimitedTables(text string) []*Sheet {
	var tables []*Sheet
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var grid [][]string
		if strings.Contains(block, "\t") {
			for _, line := range strings.Split(block, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				cells := strings.Split(line, "\t")
				for i := range cells {
					cells[i] = strings.TrimSpace(cells[i])
				}
				grid = append(grid, cells)
			}
		} else {
			grid = csvGrid(block)
		}
		if t := sheetFromGrid(grid); t != nil {
			tables = append(tables, t)
		}
	}
	return tables
}

func csvGrid(block string) [][]string {
	r := csv.NewReader(strings.NewReader(block))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil
	}
	for _, cells := range records {
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
	}
	return records
}

// sheetFromGrid turns a header row plus data rows into a sheet. Rows
// shorter than the header leave the trailing cells nil.
func sheetFromGrid(grid [][]string) *Sheet {
	if len(grid) == 0 {
		return nil
	}
	header := grid[0]
	s := &Sheet{Columns: header}
	for _, cells := range grid[1:] {
		r := make(Row, len(header))
		for i, col := range header {
			if i < len(cells) {
				r[col] = cells[i]
			}
		}
		s.Append(r)
	}
	return s
}
