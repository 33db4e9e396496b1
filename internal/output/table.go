package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table buffers rows and renders them as an aligned, borderless text table
// on Flush. No header row is added.
type Table struct {
	table *tablewriter.Table
}

// NewTable creates a table formatter writing to w.
func NewTable(w io.Writer) *Table {
	t := tablewriter.NewWriter(w)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetAutoFormatHeaders(false)
	return &Table{table: t}
}

// WriteRow buffers the row until Flush renders the table.
func (t *Table) WriteRow(row []string) error {
	t.table.Append(row)
	return nil
}

// Flush renders every buffered row.
func (t *Table) Flush() error {
	t.table.Render()
	return nil
}
