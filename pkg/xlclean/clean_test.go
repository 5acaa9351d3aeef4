package xlclean

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
)

const sheetName = "Sheet1"

// writeReport fills sheet with a small merged report:
//
//	row 1  A1:F1 "Annual Report"
//	row 3  Name | Dept | C3:E3 "Amount" | Notes
//	row 4  Bob  | Ops  | C4:E4 "$1,000" | ok
func writeReport(t *testing.T, f *excelize.File, sheet string) {
	t.Helper()
	cells := map[string]string{
		"A1": "Annual Report",
		"A3": "Name", "B3": "Dept", "C3": "Amount", "F3": "Notes",
		"A4": "Bob", "B4": "Ops", "C4": "$1,000", "F4": "ok",
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	for _, r := range [][2]string{{"A1", "F1"}, {"C3", "E3"}, {"C4", "E4"}} {
		require.NoError(t, f.MergeCell(sheet, r[0], r[1]))
	}
}

func newReportSheet(t *testing.T) (*excelize.File, *grid.Sheet) {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	writeReport(t, f, sheetName)
	s, err := grid.NewSheet(f, sheetName)
	require.NoError(t, err)
	return f, s
}

func text(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, cell)
	require.NoError(t, err)
	return v
}

func TestCleanSheet(t *testing.T) {
	f, s := newReportSheet(t)

	rep, err := CleanSheet(s, bounds.KindDensity, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "density", rep.Strategy)
	assert.False(t, rep.Fallback)
	assert.Equal(t, 3, rep.FirstTableRow)
	assert.Equal(t, []int{1, 2, 3, 6}, rep.DataColumns)
	assert.Equal(t, []int{5, 4}, rep.DeletedColumns)
	assert.Empty(t, rep.KeptColumns)
	assert.Equal(t, 1, rep.CountRegions("main_header"))
	assert.Equal(t, 2, rep.CountRegions("data"))

	merges, err := f.GetMergeCells(sheetName)
	require.NoError(t, err)
	assert.Empty(t, merges)

	assert.Equal(t, "Annual Report", text(t, f, "A1"))
	assert.Equal(t, "Amount", text(t, f, "C3"))
	assert.Equal(t, "Notes", text(t, f, "D3"))
	assert.Equal(t, "ok", text(t, f, "D4"))
	assert.Equal(t, 4, s.Cols())
}

func TestCleanSheetTableNotFoundLeavesSheet(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetCellValue(sheetName, "A1", "just a note"))
	require.NoError(t, f.MergeCell(sheetName, "A1", "B1"))
	s, err := grid.NewSheet(f, sheetName)
	require.NoError(t, err)

	_, err = CleanWithFallback(s, bounds.KindDensity, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTableNotFound))

	var cleanErr *CleanError
	require.True(t, errors.As(err, &cleanErr))
	assert.Equal(t, StageBounds, cleanErr.Stage)
	assert.Equal(t, sheetName, cleanErr.SheetName)

	merges, err := f.GetMergeCells(sheetName)
	require.NoError(t, err)
	assert.Len(t, merges, 1)
}

func TestCleanWithFallback(t *testing.T) {
	// No cell has a right border, so the marker strategy gives up.
	f, s := newReportSheet(t)

	rep, err := CleanWithFallback(s, bounds.KindMarker, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, rep.Fallback)
	assert.Equal(t, "density", rep.Strategy)
	assert.Equal(t, "Notes", text(t, f, "D3"))
}

func TestCleanWithFallbackDisabled(t *testing.T) {
	_, s := newReportSheet(t)
	opts := DefaultOptions()
	off := false
	opts.Fallback = &off

	_, err := CleanWithFallback(s, bounds.KindMarker, opts)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestCleanSheetMarkerStrategy(t *testing.T) {
	f, s := newReportSheet(t)
	header, err := f.NewStyle(&excelize.Style{Border: []excelize.Border{
		{Type: grid.BorderTop, Color: "000000", Style: 1},
		{Type: grid.BorderBottom, Color: "000000", Style: 1},
		{Type: grid.BorderRight, Color: "000000", Style: 1},
	}})
	require.NoError(t, err)
	edge, err := f.NewStyle(&excelize.Style{Border: []excelize.Border{
		{Type: grid.BorderRight, Color: "000000", Style: 1},
	}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "F3", "F3", header))
	require.NoError(t, f.SetCellStyle(sheetName, "F4", "F4", edge))

	rep, err := CleanSheet(s, bounds.KindMarker, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.FirstTableRow)
	assert.Equal(t, 6, rep.RightEdge)
	assert.Equal(t, []int{5, 4}, rep.DeletedColumns)
}

func TestCleanSheetSplitsHeaderLines(t *testing.T) {
	f, s := newReportSheet(t)
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Annual Report\nFY 2024"))
	opts := DefaultOptions()
	opts.SplitHeaderLines = true

	rep, err := CleanSheet(s, bounds.KindDensity, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.InsertedRows)
	assert.Equal(t, "Annual Report", text(t, f, "A1"))
	assert.Equal(t, "FY 2024", text(t, f, "A2"))
	assert.Equal(t, "Name", text(t, f, "A4"))
}
