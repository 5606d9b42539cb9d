package league

import (
	"strconv"
	"strings"
)

// Row is a single sheet row, mapping a column header to a scalar cell
// value: string, float64, bool, or nil.
type Row map[string]any

// Sheet is one tabular page of the tracker: a header row plus data rows.
type Sheet struct {
	Columns []string
	Rows    []Row
}

// Append adds rows at the end of the sheet.
func (s *Sheet) Append(rows ...Row) { s.Rows = append(s.Rows, rows...) }

// Empty reports whether the sheet is missing or has no data rows.
func (s *Sheet) Empty() bool { return s == nil || len(s.Rows) == 0 }

// Workbook is an ordered collection of named sheets. It is the in-memory
// form of the tracker spreadsheet: owned by the active session, mutated in
// place by the pipeline, and durable only once explicitly encoded and
// written to the persistence sink.
type Workbook struct {
	order  []string
	sheets map[string]*Sheet
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string]*Sheet)}
}

// Sheet returns the named sheet, or nil if absent.
func (w *Workbook) Sheet(name string) *Sheet { return w.sheets[name] }

// Names returns the sheet names in insertion order.
func (w *Workbook) Names() []string { return append([]string(nil), w.order...) }

// Len returns the number of sheets.
func (w *Workbook) Len() int { return len(w.order) }

// Put inserts or replaces a sheet, preserving insertion order.
func (w *Workbook) Put(name string, s *Sheet) {
	if _, ok := w.sheets[name]; !ok {
		w.order = append(w.order, name)
	}
	w.sheets[name] = s
}

// Ensure returns the named sheet, creating it with the given empty-row
// schema if absent. All tracker sheets are created lazily this way.
func (w *Workbook) Ensure(name string, columns ...string) *Sheet {
	if s, ok := w.sheets[name]; ok {
		return s
	}
	s := &Sheet{Columns: columns}
	w.Put(name, s)
	return s
}

// cellString returns the cell as a trimmed string; nil cells are "".
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// cellFloat coerces a cell to a number, reporting success. Non-numeric
// strings do not coerce; callers drop or default such rows.
func cellFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// cellBool interprets the usual spreadsheet spellings of a boolean.
func cellBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "1":
			return true
		}
	case float64:
		return x != 0
	}
	return false
}
