package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dataplatform-utils/sheet-tagger/internal/tags"
)

// renderRecords lays the extracted records out as a terminal table, one row
// per record in extraction order.
func renderRecords(t *tags.Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"#", tags.ColName, tags.ColTags})
	for i, record := range t.Records {
		tw.AppendRow(table.Row{strconv.Itoa(i), record.Name, record.TagList()})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
