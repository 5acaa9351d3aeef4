// Package models defines the reports produced by a cleaning run.
package models

// SheetReport records what one cleaning pass did to a worksheet.
type SheetReport struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Strategy is the bounds strategy that located the table.
	Strategy string `json:"strategy,omitempty"`
	// Fallback is true when the requested strategy failed and the alternate one was used.
	Fallback bool `json:"fallback,omitempty"`
	// Attempted lists every strategy tried, in order, when the sheet was skipped.
	Attempted []string `json:"attempted,omitempty"`
	// Skipped is true when no strategy found a table and the sheet was left untouched.
	Skipped bool `json:"skipped,omitempty"`
	// Error explains why the sheet was skipped.
	Error string `json:"error,omitempty"`
	// FirstTableRow is the header row of the table (1-based), as located before any change.
	FirstTableRow int `json:"first_table_row,omitempty"`
	// RightEdge is the last table column found by the marker strategy.
	RightEdge int `json:"right_edge,omitempty"`
	// DataColumns lists the columns (1-based) with a header at FirstTableRow.
	DataColumns []int `json:"data_columns,omitempty"`
	// Regions lists every merged region and its role.
	Regions []MergeRecord `json:"regions,omitempty"`
	// ColumnWidths lists the widths applied after unmerging.
	ColumnWidths []ColumnWidth `json:"column_widths,omitempty"`
	// DeletedColumns lists removed columns, numbered as before removal.
	DeletedColumns []int `json:"deleted_columns,omitempty"`
	// KeptColumns lists deletion candidates that still held data.
	KeptColumns []int `json:"kept_columns,omitempty"`
	// InsertedRows counts rows added by splitting multi-line headers.
	InsertedRows int `json:"inserted_rows,omitempty"`
	// UnlinkedCells counts cells whose hyperlink was removed.
	UnlinkedCells int `json:"unlinked_cells,omitempty"`
	// CoercedCells counts text cells converted to numbers.
	CoercedCells int `json:"coerced_cells,omitempty"`
}

// CountRegions returns how many regions had the given role.
func (s SheetReport) CountRegions(typ string) int {
	n := 0
	for _, r := range s.Regions {
		if r.Type == typ {
			n++
		}
	}
	return n
}
