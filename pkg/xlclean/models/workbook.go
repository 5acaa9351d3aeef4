package models

// WorkbookReport is the workbook-level container with per-sheet reports.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// OutputPath is where the cleaned workbook was written.
	OutputPath string `json:"output_path,omitempty"`
	// ReportType is the report-type label the strategies were chosen for.
	ReportType string `json:"report_type,omitempty"`
	// SheetOrder lists sheet names in workbook order.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to SheetReport.
	Sheets map[string]SheetReport `json:"sheets"`
}
