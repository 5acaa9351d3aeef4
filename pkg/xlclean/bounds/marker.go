package bounds

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
)

// Marker locates the table from its first money cell: the right edge is the
// first cell rightwards with a right border, and the header row is the first
// cell above that edge bordered on both top and bottom.
type Marker struct {
	Markers []string
}

func (Marker) Kind() Kind { return KindMarker }

func (m Marker) Locate(g grid.Grid) (TableBounds, error) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return TableBounds{}, fmt.Errorf("%w: sheet %q is empty", ErrTableNotFound, g.Name())
	}

	markers := m.Markers
	if len(markers) == 0 {
		markers = DefaultParams().Markers
	}

	origin, ok := grid.FindFirst(g, func(p grid.Pos) bool {
		text, err := g.Text(p)
		return err == nil && HasMarker(text, markers)
	})
	if !ok {
		return TableBounds{}, fmt.Errorf("%w: no cell in %q starts with %v", ErrTableNotFound, g.Name(), markers)
	}

	right, err := grid.NewCursor(g, origin, grid.Right)
	if err != nil {
		return TableBounds{}, err
	}
	edge, ok := right.Find(grid.HasBorders(g, grid.BorderRight))
	if !ok {
		return TableBounds{}, fmt.Errorf("%w: no right border after %s", ErrTableNotFound, origin)
	}

	up, err := grid.NewCursor(g, grid.Pos{Row: origin.Row, Col: edge.Col}, grid.Up)
	if err != nil {
		return TableBounds{}, err
	}
	top, ok := up.Find(grid.HasBorders(g, grid.BorderTop, grid.BorderBottom))
	if !ok {
		return TableBounds{}, fmt.Errorf("%w: no header border above %s", ErrTableNotFound, edge)
	}

	return TableBounds{FirstRow: top.Row, RightEdge: edge.Col}, nil
}

// HasMarker reports whether text starts with one of markers. Compatibility
// forms such as fullwidth currency signs are folded first, and a leading
// minus sign or accounting parenthesis is ignored.
func HasMarker(text string, markers []string) bool {
	text = strings.TrimSpace(norm.NFKC.String(text))
	text = strings.TrimLeft(text, "-(")
	for _, marker := range markers {
		if marker != "" && strings.HasPrefix(text, marker) {
			return true
		}
	}
	return false
}
