package tags

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// EncodeCSV serializes the table to the published artifact format: a header
// line with a blank index label followed by one line per record, the row
// index in the first column and the rendered tag list in the last.
//
// An empty table encodes to the header line alone.
func (t *Table) EncodeCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"", ColName, ColTags}); err != nil {
		return nil, fmt.Errorf("encode CSV header: %w", err)
	}
	for i, record := range t.Records {
		row := []string{strconv.Itoa(i), record.Name, record.TagList()}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode CSV row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode CSV: %w", err)
	}
	return buf.Bytes(), nil
}
