// Package workbook opens uploaded .xlsx files and exposes their sheets as
// string grids. Cells are read as displayed values, so formula cells yield
// their last computed result rather than the formula text.
package workbook

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Workbook is an open spreadsheet held in memory.
type Workbook struct {
	file *excelize.File
	id   string
}

// Load parses raw .xlsx bytes into a Workbook. The caller owns the returned
// value and must Close it.
func Load(raw []byte) (*Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{file: file, id: uuid.New().String()}, nil
}

// ID returns the correlation identifier assigned when the workbook was
// loaded, used to tie log lines from one file together.
func (w *Workbook) ID() string {
	return w.id
}

// SheetNames lists every sheet in the workbook in its stored order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Grid returns the sheet's populated cells as rows of strings. Rows are only
// as wide as their last populated cell, so callers must not assume a
// rectangular result.
func (w *Workbook) Grid(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}
