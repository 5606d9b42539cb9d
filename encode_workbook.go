package league

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLen is the xlsx sheet-name limit; longer names are
// truncated on write.
const MaxSheetNameLen = 31

// TruncateSheetName caps a sheet name to the xlsx limit.
func TruncateSheetName(name string) string {
	if len(name) <= MaxSheetNameLen {
		return name
	}
	return name[:MaxSheetNameLen]
}

// DecodeWorkbook decodes a multi-sheet xlsx workbook. The first row of
// each sheet is its header; all cells surface as strings.
func DecodeWorkbook(b []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	wb := NewWorkbook()
	for _, name := range f.GetSheetList() {
		grid, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("could not read sheet %q: %w", name, err)
		}
		s := sheetFromGrid(grid)
		if s == nil {
			s = &Sheet{}
		}
		wb.Put(name, s)
	}
	return wb, nil
}

// EncodeWorkbook encodes the workbook as xlsx bytes, truncating sheet
// names to the format's limit.
func EncodeWorkbook(wb *Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range wb.Names() {
		s := wb.Sheet(name)
		target := TruncateSheetName(name)
		if i == 0 {
			// A new file starts with one default sheet; rename it.
			if err := f.SetSheetName("Sheet1", target); err != nil {
				return nil, fmt.Errorf("could not create sheet %q: %w", target, err)
			}
		} else if _, err := f.NewSheet(target); err != nil {
			return nil, fmt.Errorf("could not create sheet %q: %w", target, err)
		}

		header := make([]any, len(s.Columns))
		for j, c := range s.Columns {
			header[j] = c
		}
		if err := f.SetSheetRow(target, "A1", &header); err != nil {
			return nil, fmt.Errorf("could not write header of %q: %w", target, err)
		}
		for rowIdx, row := range s.Rows {
			cells := make([]any, len(s.Columns))
			for j, c := range s.Columns {
				cells[j] = row[c]
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(target, cell, &cells); err != nil {
				return nil, fmt.Errorf("could not write row %d of %q: %w", rowIdx+2, target, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadWorkbookFile loads a tracker from disk.
func ReadWorkbookFile(path string) (*Workbook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeWorkbook(b)
}

// WriteWorkbookFile writes a tracker to disk.
func WriteWorkbookFile(path string, wb *Workbook) error {
	b, err := EncodeWorkbook(wb)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
