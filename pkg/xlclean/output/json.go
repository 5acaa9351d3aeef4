// Package output serializes cleaning reports.
package output

import (
	"encoding/json"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/models"
)

// ToJSON serializes a workbook report.
func ToJSON(wb *models.WorkbookReport, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet report.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
