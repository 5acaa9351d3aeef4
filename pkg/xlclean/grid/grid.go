package grid

// Grid is the mutable worksheet the cleaning engine operates on.
//
// All coordinates are 1-based. Implementations are not safe for concurrent
// use; a cleaning pass owns its grid exclusively.
type Grid interface {
	Dimensions

	// Name identifies the worksheet.
	Name() string

	// Text returns the displayed text of a cell.
	Text(p Pos) (string, error)
	// Value returns the raw stored value of a cell.
	Value(p Pos) (string, error)
	// Formula returns the formula of a cell, or "" when it has none.
	Formula(p Pos) (string, error)
	// SetText stores s as a literal string, never reinterpreted as a number or date.
	SetText(p Pos, s string) error
	// SetValue stores v, letting the container choose its type.
	SetValue(p Pos, v any) error
	// CopyValue stores the value of from into to with its original type.
	CopyValue(from, to Pos) error

	// Style snapshots the style of a cell.
	Style(p Pos) (Style, error)
	// SetStyle applies a snapshot to a cell, registering it if needed.
	SetStyle(p Pos, s Style) error

	// MergedRegions lists the live merged regions in discovery order.
	MergedRegions() ([]Region, error)
	// Unmerge dissolves the merged region exactly matching r.
	Unmerge(r Region) error

	// ColWidth returns the display width of a column.
	ColWidth(col int) (float64, error)
	// SetColWidth sets the display width of a column.
	SetColWidth(col int, width float64) error
	// RowHeight returns the height of a row.
	RowHeight(row int) (float64, error)
	// SetRowHeight sets the height of a row.
	SetRowHeight(row int, height float64) error
	// RowHidden reports whether a row is hidden.
	RowHidden(row int) (bool, error)
	// SetRowHidden hides or shows a row.
	SetRowHidden(row int, hidden bool) error

	// InsertRows inserts n empty rows before row at.
	InsertRows(at, n int) error
	// DeleteCol removes a column, shifting every column to its right left by one.
	DeleteCol(col int) error
}

// IsEmpty reports whether a cell has neither displayed text nor a formula.
func IsEmpty(g Grid, p Pos) (bool, error) {
	text, err := g.Text(p)
	if err != nil {
		return false, err
	}
	if text != "" {
		return false, nil
	}
	formula, err := g.Formula(p)
	if err != nil {
		return false, err
	}
	return formula == "", nil
}

// NonEmpty returns a predicate matching cells with displayed text.
// Read errors count as empty.
func NonEmpty(g Grid) Predicate {
	return func(p Pos) bool {
		text, err := g.Text(p)
		return err == nil && text != ""
	}
}

// HasBorders returns a predicate matching cells whose style draws every
// given side.
func HasBorders(g Grid, sides ...string) Predicate {
	return func(p Pos) bool {
		s, err := g.Style(p)
		if err != nil {
			return false
		}
		for _, side := range sides {
			if !s.HasBorder(side) {
				return false
			}
		}
		return true
	}
}
