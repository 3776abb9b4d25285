package tags

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dataplatform-utils/sheet-tagger/internal/workbook"
)

// The designated cell holding the dotted table name, zero-based.
const (
	nameRow = 0
	nameCol = 2
)

// BoundsError reports a table sheet too small to contain the designated
// name cell. The extraction aborts rather than skipping the sheet.
type BoundsError struct {
	Sheet string
	Rows  int
	Cols  int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sheet %q: name cell (row %d, col %d) out of range in %dx%d grid",
		e.Sheet, nameRow, nameCol, e.Rows, e.Cols)
}

// Extract walks sheetNames in order and builds one Record per eligible sheet.
// The record name is the value of the designated cell; the tags are that
// value split on ".". A sheet whose grid cannot contain the designated cell
// aborts the whole extraction with a BoundsError.
func Extract(wb *workbook.Workbook, sheetNames []string, logger zerolog.Logger) (*Table, error) {
	table := &Table{}
	for _, sheet := range sheetNames {
		if !EligibleSheet(sheet) {
			logger.Debug().Str("sheet", sheet).Msg("Sheet skipped")
			continue
		}

		grid, err := wb.Grid(sheet)
		if err != nil {
			return nil, err
		}
		cols := gridWidth(grid)
		if len(grid) <= nameRow || cols <= nameCol {
			return nil, &BoundsError{Sheet: sheet, Rows: len(grid), Cols: cols}
		}

		// The grid is wide enough overall, but row 0 itself may stop short
		// of the name column; the name is then empty.
		name := ""
		if len(grid[nameRow]) > nameCol {
			name = grid[nameRow][nameCol]
		}

		record := Record{Name: name, Tags: strings.Split(name, ".")}
		table.Records = append(table.Records, record)
		logger.Debug().
			Str("sheet", sheet).
			Str("name", name).
			Strs("tags", record.Tags).
			Msg("Sheet tagged")
	}
	return table, nil
}

// gridWidth returns the widest row length; rows trim trailing empty cells,
// so the grid's column count is the maximum over all rows.
func gridWidth(grid [][]string) int {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
