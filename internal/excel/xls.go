package excel

import (
	"fmt"

	"github.com/extrame/xls"
)

// xlsWorkbook reads legacy BIFF8 workbooks. The file is read fully on open,
// so there is nothing to release on Close.
type xlsWorkbook struct {
	book *xls.WorkBook
}

func openXLS(path string) (wb *xlsWorkbook, err error) {
	// the BIFF parser panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("malformed xls file: %v", r)
		}
	}()

	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	// a compound file without a Workbook stream opens without error
	if book == nil {
		return nil, ErrNoWorkbookStream
	}
	return &xlsWorkbook{book: book}, nil
}

// xlsRow returns nil for rows the sheet has no record of. The library
// dereferences the missing row itself, so the panic is recovered here.
func xlsRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// sheet parses the i-th sheet on first access
func (w *xlsWorkbook) sheet(i int) (sheet *xls.WorkSheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			sheet, err = nil, fmt.Errorf("malformed sheet %d: %v", i, r)
		}
	}()
	return w.book.GetSheet(i), nil
}

func (w *xlsWorkbook) SheetNames() []string {
	names := make([]string, 0, w.book.NumSheets())
	for i := 0; i < w.book.NumSheets(); i++ {
		if sheet, err := w.sheet(i); err == nil && sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

func (w *xlsWorkbook) Sheet(name string) (*Sheet, error) {
	for i := 0; i < w.book.NumSheets(); i++ {
		sheet, err := w.sheet(i)
		if err != nil {
			return nil, err
		}
		if sheet == nil || sheet.Name != name {
			continue
		}
		return &Sheet{Name: name, Cells: xlsCells(sheet)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func (w *xlsWorkbook) Close() error {
	return nil
}

func xlsCells(sheet *xls.WorkSheet) [][]string {
	cells := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := xlsRow(sheet, i)
		if row == nil {
			cells = append(cells, nil)
			continue
		}
		values := make([]string, row.LastCol())
		for col := row.FirstCol(); col < row.LastCol(); col++ {
			values[col] = row.Col(col)
		}
		cells = append(cells, values)
	}

	// a sheet with no rows still reports row 0
	if len(cells) == 1 && cells[0] == nil {
		return nil
	}
	return cells
}
