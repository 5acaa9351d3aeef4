package xlclean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/width"
)

const sampleConfig = `
default_strategy: density
currency_markers: ["$", "€"]
min_nonempty_cells: 4
width_mode: largest_word
split_header_lines: true
coerce_numbers: true
fallback: false
reports:
  - type: RentRoll
    strategy: marker
    sheets:
      2: density
  - type: Ledger
    sheets:
      0: marker
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "density", cfg.DefaultStrategy)
	assert.Equal(t, []string{"$", "€"}, cfg.CurrencyMarkers)
	require.Len(t, cfg.Reports, 2)
	assert.Equal(t, "density", cfg.Reports[0].Sheets[2])
}

func TestConfigStrategyFor(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	tests := []struct {
		reportType string
		sheet      int
		want       bounds.Kind
	}{
		{"RentRoll", 0, bounds.KindMarker},
		{"rentroll", 1, bounds.KindMarker},
		{"RentRoll", 2, bounds.KindDensity},
		{"Ledger", 0, bounds.KindMarker},
		{"Ledger", 1, bounds.KindDensity},
		{"Unknown", 0, bounds.KindDensity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.StrategyFor(tt.reportType, tt.sheet), "%s/%d", tt.reportType, tt.sheet)
	}
}

func TestConfigApply(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.ReportType = "RentRoll"
	require.NoError(t, cfg.Apply(&opts))

	assert.Equal(t, []string{"$", "€"}, opts.Bounds.Markers)
	assert.Equal(t, 4, opts.Bounds.MinNonEmptyCells)
	assert.Equal(t, width.ModeLargestWord, opts.WidthMode)
	assert.True(t, opts.SplitHeaderLines)
	assert.True(t, opts.CoerceNumbers)
	assert.False(t, opts.StripHyperlinks)
	assert.False(t, opts.ShouldFallback())
	assert.Equal(t, bounds.KindMarker, opts.StrategyFor(0))
	assert.Equal(t, bounds.KindDensity, opts.StrategyFor(2))
}

func TestConfigValidate(t *testing.T) {
	bad := []string{
		"default_strategy: nearest",
		"width_mode: half",
		"min_nonempty_cells: -1",
		"reports:\n  - strategy: marker",
		"reports:\n  - type: X\n    strategy: fuzzy",
		"reports:\n  - type: X\n    sheets:\n      1: fuzzy",
	}
	for _, data := range bad {
		_, err := ParseConfig([]byte(data))
		assert.Error(t, err, data)
	}

	_, err := ParseConfig([]byte("default_strategy: [oops"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlclean.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "density", cfg.DefaultStrategy)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOptionsStrategyFor(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, bounds.KindDensity, opts.StrategyFor(0))

	opts.Strategy = bounds.KindMarker
	assert.Equal(t, bounds.KindMarker, opts.StrategyFor(3))

	opts.Factory = Fixed(bounds.KindDensity)
	assert.Equal(t, bounds.KindDensity, opts.StrategyFor(3))

	opts.Factory = StrategyFunc(func(string, int) bounds.Kind { return "" })
	assert.Equal(t, bounds.KindMarker, opts.StrategyFor(3))
	assert.True(t, opts.ShouldFallback())
}

func TestConfigApplyRejectsInvalid(t *testing.T) {
	cfg := &Config{DefaultStrategy: "marker", WidthMode: "half"}
	opts := DefaultOptions()

	err := cfg.Apply(&opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width_mode")
	assert.Nil(t, opts.Factory)
	assert.Equal(t, bounds.KindDensity, opts.Strategy)
	assert.Equal(t, width.ModeFullText, opts.WidthMode)
}
