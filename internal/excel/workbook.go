package excel

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an opened spreadsheet file
type Workbook interface {
	// SheetNames returns the sheet names in workbook order
	SheetNames() []string
	// Sheet returns the named sheet, matched exactly
	Sheet(name string) (*Sheet, error)
	Close() error
}

// Sheet is a grid of cell text. Rows may be ragged; missing cells are empty.
type Sheet struct {
	Name  string
	Cells [][]string
}

// MaxRow returns the number of rows, never less than one
func (s *Sheet) MaxRow() int {
	if len(s.Cells) == 0 {
		return 1
	}
	return len(s.Cells)
}

// MaxColumn returns the width of the widest row, never less than one
func (s *Sheet) MaxColumn() int {
	maxCol := 1
	for _, row := range s.Cells {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxCol
}

// Cell returns the text at the 1-based row and column, or "" when the cell is absent
func (s *Sheet) Cell(row, col int) string {
	if row < 1 || row > len(s.Cells) {
		return ""
	}
	cells := s.Cells[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// Open opens the file at path as a workbook, picking the reader from the extension.
// Any failure is reported as an *OpenError.
func Open(path string) (Workbook, error) {
	var (
		wb  Workbook
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		wb, err = openXLS(path)
	default:
		wb, err = openXLSX(path)
	}
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return wb, nil
}

type xlsxWorkbook struct {
	file     *excelize.File
	filepath string
}

func openXLSX(path string) (*xlsxWorkbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{
		file:     file,
		filepath: path,
	}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Sheet(name string) (*Sheet, error) {
	// excelize matches sheet names case-insensitively; lookups here are exact
	if !slices.Contains(w.file.GetSheetList(), name) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return &Sheet{Name: name, Cells: rows}, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}
