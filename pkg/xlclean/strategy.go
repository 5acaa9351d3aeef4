package xlclean

import "github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"

// StrategyFactory picks the bounds strategy for a sheet of a report.
// An empty Kind defers to Options.Strategy.
type StrategyFactory interface {
	StrategyFor(reportType string, sheetIndex int) bounds.Kind
}

// StrategyFunc adapts a function to StrategyFactory.
type StrategyFunc func(reportType string, sheetIndex int) bounds.Kind

func (f StrategyFunc) StrategyFor(reportType string, sheetIndex int) bounds.Kind {
	return f(reportType, sheetIndex)
}

// Fixed returns a factory that always picks k.
func Fixed(k bounds.Kind) StrategyFactory {
	return StrategyFunc(func(string, int) bounds.Kind { return k })
}
