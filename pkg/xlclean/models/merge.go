package models

// MergeRecord describes one merged region found on a sheet.
type MergeRecord struct {
	// Range is the region in A1:B2 notation, as discovered.
	Range string `json:"range"`
	// Type is the structural role (main_header, minor_header, data, empty, not_a_merge).
	Type string `json:"type"`
}

// ColumnWidth is a width applied to a column.
type ColumnWidth struct {
	// Col is the column index (1-based) at the time the width was set.
	Col int `json:"col"`
	// Name is the column letter.
	Name string `json:"name"`
	// Width is in character units.
	Width float64 `json:"width"`
}
