package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/models"
)

var summaryHeader = []string{
	"Sheet", "Strategy", "First Row", "Main", "Minor", "Data", "Empty", "Deleted", "Kept", "Status",
}

// WriteSummary renders one line per sheet, in workbook order.
func WriteSummary(w io.Writer, wb *models.WorkbookReport) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(summaryHeader)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, name := range wb.SheetOrder {
		sheet, ok := wb.Sheets[name]
		if !ok {
			continue
		}
		table.Append(summaryRow(sheet))
	}
	table.Render()
}

func summaryRow(s models.SheetReport) []string {
	if s.Skipped {
		tried := s.Strategy
		if len(s.Attempted) > 0 {
			tried = strings.Join(s.Attempted, "/")
		}
		return []string{s.Sheet, tried, "-", "-", "-", "-", "-", "-", "-", "skipped"}
	}
	status := "ok"
	if s.Fallback {
		status = "fallback"
	}
	return []string{
		s.Sheet,
		s.Strategy,
		strconv.Itoa(s.FirstTableRow),
		strconv.Itoa(s.CountRegions("main_header")),
		strconv.Itoa(s.CountRegions("minor_header")),
		strconv.Itoa(s.CountRegions("data")),
		strconv.Itoa(s.CountRegions("empty")),
		joinInts(s.DeletedColumns),
		joinInts(s.KeptColumns),
		status,
	}
}

func joinInts(v []int) string {
	if len(v) == 0 {
		return "-"
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
