// Package grid provides the worksheet abstraction the cleaning engine works
// against, along with directional traversal over it.
package grid

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrOutOfRange indicates a position outside the grid. It signals a caller
// bug and is never recovered from.
var ErrOutOfRange = errors.New("position out of range")

// Pos is a 1-based cell coordinate.
type Pos struct {
	Row int
	Col int
}

// String returns the A1-style name of the position.
func (p Pos) String() string {
	name, err := excelize.CoordinatesToCellName(p.Col, p.Row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", p.Row, p.Col)
	}
	return name
}

// Add returns p moved one step in direction d.
func (p Pos) Add(d Direction) Pos {
	return Pos{Row: p.Row + d.dRow, Col: p.Col + d.dCol}
}

// Dimensions reports the extent of a grid.
type Dimensions interface {
	// Rows is the number of rows (last used row index).
	Rows() int
	// Cols is the number of columns (last used column index).
	Cols() int
}

// InBounds reports whether p lies inside dims.
func InBounds(dims Dimensions, p Pos) bool {
	return p.Row >= 1 && p.Row <= dims.Rows() && p.Col >= 1 && p.Col <= dims.Cols()
}

// CheckBounds returns an ErrOutOfRange wrapping error when p is outside dims.
func CheckBounds(dims Dimensions, p Pos) error {
	if !InBounds(dims, p) {
		return fmt.Errorf("%w: %s (grid is %dx%d)", ErrOutOfRange, p, dims.Rows(), dims.Cols())
	}
	return nil
}

// Direction is a unit step across the grid.
type Direction struct {
	name string
	dRow int
	dCol int
}

var (
	// Up moves toward row 1.
	Up = Direction{name: "up", dRow: -1}
	// Down moves toward the last row.
	Down = Direction{name: "down", dRow: 1}
	// Left moves toward column 1.
	Left = Direction{name: "left", dCol: -1}
	// Right moves toward the last column.
	Right = Direction{name: "right", dCol: 1}
)

func (d Direction) String() string { return d.name }

// ColumnName converts a 1-based column index to its letter name.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return name
}
