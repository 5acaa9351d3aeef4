package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/models"
)

func sampleReport() *models.WorkbookReport {
	return &models.WorkbookReport{
		BookName:   "rent.xlsx",
		SheetOrder: []string{"Summary", "Notes"},
		Sheets: map[string]models.SheetReport{
			"Summary": {
				Sheet:         "Summary",
				Strategy:      "density",
				FirstTableRow: 3,
				Regions: []models.MergeRecord{
					{Range: "A1:F1", Type: "main_header"},
					{Range: "C4:E4", Type: "data"},
				},
				DeletedColumns: []int{5, 4},
			},
			"Notes": {Sheet: "Notes", Strategy: "density", Attempted: []string{"marker", "density"}, Skipped: true, Error: "table not found"},
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "rent.xlsx", decoded["book_name"])
	assert.NotContains(t, string(data), "output_path")
	assert.NotContains(t, string(data), "\n")
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"book_name\": \"rent.xlsx\"")
}

func TestSheetToJSON(t *testing.T) {
	wb := sampleReport()
	sheet := wb.Sheets["Summary"]
	data, err := SheetToJSON(&sheet, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"first_table_row":3`)
	assert.Contains(t, string(data), `"deleted_columns":[5,4]`)
	assert.Contains(t, string(data), `{"range":"C4:E4","type":"data"}`)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "SHEET")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "5,4")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "marker/density")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Summary")), bytes.Index(buf.Bytes(), []byte("Notes")))
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "-", joinInts(nil))
	assert.Equal(t, "7", joinInts([]int{7}))
	assert.Equal(t, "7,3", joinInts([]int{7, 3}))
}
