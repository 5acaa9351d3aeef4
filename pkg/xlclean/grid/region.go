package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Region is a rectangular cell range. All bounds are 1-based and inclusive.
type Region struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Bottom int `json:"bottom"`
	Right  int `json:"right"`
}

// Anchor returns the top-left cell, which carries the value and style of a
// merged region.
func (r Region) Anchor() Pos {
	return Pos{Row: r.Top, Col: r.Left}
}

// Width returns the number of columns spanned.
func (r Region) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows spanned.
func (r Region) Height() int { return r.Bottom - r.Top + 1 }

// Contains reports whether p lies within r.
func (r Region) Contains(p Pos) bool {
	return p.Row >= r.Top && p.Row <= r.Bottom && p.Col >= r.Left && p.Col <= r.Right
}

// Cells returns every position in r in row-major order.
func (r Region) Cells() []Pos {
	cells := make([]Pos, 0, r.Width()*r.Height())
	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			cells = append(cells, Pos{Row: row, Col: col})
		}
	}
	return cells
}

// Ref returns the range in A1:B2 notation.
func (r Region) Ref() string {
	return fmt.Sprintf("%s:%s", r.Anchor(), Pos{Row: r.Bottom, Col: r.Right})
}

func (r Region) String() string { return r.Ref() }

// ParseRegion parses a range string like $A$1:$D$10 or A1:D10.
// A single cell reference yields a one-cell region.
func ParseRegion(ref string) (Region, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Region{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Region{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Region{}, err
	}

	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	return Region{Top: startRow, Left: startCol, Bottom: endRow, Right: endCol}, nil
}
