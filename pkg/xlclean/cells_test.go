package xlclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"-456", int64(-456)},
		{" 7 ", int64(7)},
		{"123.45", float64(123.45)},
		{"-0.5", float64(-0.5)},
		{"1e3", float64(1000)},
		{"hello", "hello"},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"$1,000", "$1,000"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}

func TestHasLeadingZero(t *testing.T) {
	assert.True(t, hasLeadingZero("007"))
	assert.True(t, hasLeadingZero("-01"))
	assert.False(t, hasLeadingZero("0"))
	assert.False(t, hasLeadingZero("0.5"))
	assert.False(t, hasLeadingZero("10"))
}

func TestCoerceNumbers(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	for cell, v := range map[string]string{
		"A1": "2024", // above the table
		"A2": "Code", "B2": "Qty",
		"A3": "007", "B3": "12",
		"A4": "abc", "B4": "2.5",
	} {
		require.NoError(t, f.SetCellStr(sheetName, cell, v))
	}
	require.NoError(t, f.SetCellFormula(sheetName, "C3", "B3*2"))

	n, err := CoerceNumbers(f, sheetName, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for cell, want := range map[string]bool{"A1": true, "A3": true, "A4": true, "B3": false, "B4": false} {
		typ, err := f.GetCellType(sheetName, cell)
		require.NoError(t, err)
		assert.Equal(t, want, typ == excelize.CellTypeSharedString, cell)
	}
	formula, err := f.GetCellFormula(sheetName, "C3")
	require.NoError(t, err)
	assert.Equal(t, "B3*2", formula)
}

func TestStripHyperlinks(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetCellValue(sheetName, "A1", "site"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "plain"))
	require.NoError(t, f.SetCellHyperLink(sheetName, "A1", "https://example.com", "External"))

	n, err := StripHyperlinks(f, sheetName)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	linked, _, err := f.GetCellHyperLink(sheetName, "A1")
	require.NoError(t, err)
	assert.False(t, linked)
	v, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "site", v)
}
