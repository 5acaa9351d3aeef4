package bounds

import (
	"fmt"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
)

// Density treats the first row with at least MinNonEmptyCells non-empty
// cells as the table header.
type Density struct {
	MinNonEmptyCells int
	IgnoreHiddenRows bool
}

func (Density) Kind() Kind { return KindDensity }

func (d Density) Locate(g grid.Grid) (TableBounds, error) {
	minCells := d.MinNonEmptyCells
	if minCells <= 0 {
		minCells = DefaultParams().MinNonEmptyCells
	}
	if g.Rows() == 0 || g.Cols() == 0 {
		return TableBounds{}, fmt.Errorf("%w: sheet %q is empty", ErrTableNotFound, g.Name())
	}

	nonEmpty := grid.NonEmpty(g)
	for row := 1; row <= g.Rows(); row++ {
		if d.IgnoreHiddenRows {
			hidden, err := g.RowHidden(row)
			if err != nil {
				return TableBounds{}, err
			}
			if hidden {
				continue
			}
		}

		cells, err := grid.Walk(g, grid.Pos{Row: row, Col: 1}, grid.Right)
		if err != nil {
			return TableBounds{}, err
		}
		header := make([]bool, g.Cols())
		count := 0
		for p := range cells {
			if nonEmpty(p) {
				header[p.Col-1] = true
				count++
			}
		}

		if count >= minCells {
			return TableBounds{FirstRow: row, DataColumns: header}, nil
		}
	}

	return TableBounds{}, fmt.Errorf("%w: no row in %q has %d non-empty cells", ErrTableNotFound, g.Name(), minCells)
}
