// Package xlclean normalizes report worksheets laid out with merged cells
// into plain, unmerged grids.
package xlclean

import (
	"github.com/sirupsen/logrus"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/width"
)

// Options configures cleaning behavior.
type Options struct {
	// Strategy is the bounds strategy used when Factory is nil.
	Strategy bounds.Kind
	// Factory picks the strategy per report type and sheet.
	Factory StrategyFactory
	// ReportType is passed to Factory.
	ReportType string
	// Fallback specifies whether to retry with the alternate strategy when
	// no table is found. If nil, defaults to true.
	Fallback *bool
	// Bounds tunes both bounds strategies.
	Bounds bounds.Params
	// WidthMode selects how much of a data cell's text must fit its column.
	WidthMode width.Mode
	// SplitHeaderLines spreads multi-line main headers over one row per line.
	SplitHeaderLines bool
	// StripHyperlinks removes cell hyperlinks from cleaned sheets.
	StripHyperlinks bool
	// CoerceNumbers converts numeric text inside the table to numbers.
	CoerceNumbers bool
	// Logger receives progress entries. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default cleaning options.
func DefaultOptions() Options {
	return Options{
		Strategy:  bounds.KindDensity,
		Bounds:    bounds.DefaultParams(),
		WidthMode: width.ModeFullText,
	}
}

// ShouldFallback returns whether to retry with the alternate strategy.
func (o Options) ShouldFallback() bool {
	if o.Fallback != nil {
		return *o.Fallback
	}
	return true
}

// StrategyFor returns the strategy for the sheet at index.
func (o Options) StrategyFor(sheetIndex int) bounds.Kind {
	if o.Factory != nil {
		if k := o.Factory.StrategyFor(o.ReportType, sheetIndex); k != "" {
			return k
		}
	}
	if o.Strategy == "" {
		return bounds.KindDensity
	}
	return o.Strategy
}
