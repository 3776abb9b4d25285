// Package tags selects the table sheets of a workbook and derives one tag
// record per sheet from the sheet's designated name cell.
package tags

import "strings"

// SheetNameMarker is the substring that marks a sheet as a table sheet.
// Matching is case-sensitive: "table1" and "TABLE" do not qualify.
const SheetNameMarker = "Table"

// Output column labels.
const (
	ColName = "Table_Name/Kafka_Name"
	ColTags = "Tags"
)

// EligibleSheet reports whether a sheet participates in tag extraction.
func EligibleSheet(name string) bool {
	return strings.Contains(name, SheetNameMarker)
}

// Record is the tag entry derived from one table sheet.
type Record struct {
	Name string
	Tags []string
}

// TagList renders the tags as a bracketed, single-quoted list. This is the
// exact form the downstream consumer of the CSV artifact parses.
func (r Record) TagList() string {
	quoted := make([]string, len(r.Tags))
	for i, tag := range r.Tags {
		quoted[i] = "'" + tag + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Table holds the records extracted from one workbook, in sheet order.
type Table struct {
	Records []Record
}
