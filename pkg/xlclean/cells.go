package xlclean

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// StripHyperlinks removes the hyperlink of every populated cell of a sheet.
// It returns the number of links removed.
func StripHyperlinks(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}

	removed := 0
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return removed, err
			}
			hasLink, _, err := f.GetCellHyperLink(sheetName, cellName)
			if err != nil {
				return removed, err
			}
			if !hasLink {
				continue
			}
			if err := f.SetCellHyperLink(sheetName, cellName, "", "None"); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}

// CoerceNumbers stores numeric-looking text from firstRow downwards as
// numbers, keeping each cell's style. Formula cells are left alone.
// It returns the number of cells converted.
func CoerceNumbers(f *excelize.File, sheetName string, firstRow int) (int, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, err
	}

	converted := 0
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if rowNum < firstRow {
			continue
		}
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			if _, isText := parseValue(cellValue).(string); isText || hasLeadingZero(cellValue) {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return converted, err
			}
			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return converted, err
			}
			if typ != excelize.CellTypeSharedString && typ != excelize.CellTypeInlineString {
				continue
			}
			if formula, err := f.GetCellFormula(sheetName, cellName); err != nil || formula != "" {
				continue
			}

			if err := f.SetCellValue(sheetName, cellName, parseValue(cellValue)); err != nil {
				return converted, err
			}
			converted++
		}
	}
	return converted, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	t := strings.TrimSpace(s)
	// Try integer first
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf spelled out in a cell are words, not numbers.
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

// hasLeadingZero reports codes such as "00412" whose zeros would be lost.
func hasLeadingZero(s string) bool {
	t := strings.TrimLeft(strings.TrimSpace(s), "+-")
	return len(t) > 1 && t[0] == '0' && t[1] != '.'
}
