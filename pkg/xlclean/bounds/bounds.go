// Package bounds locates where the tabular data region of a worksheet begins.
package bounds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
)

// ErrTableNotFound indicates a strategy could not find a data table. The
// worksheet is left untouched, so callers may retry with another strategy.
var ErrTableNotFound = errors.New("table not found")

// Kind names a bounds strategy.
type Kind string

const (
	// KindDensity picks the first row with enough non-empty cells.
	KindDensity Kind = "density"
	// KindMarker follows a currency marker to the bordered header row.
	KindMarker Kind = "marker"
)

// ParseKind parses a strategy name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDensity, KindMarker:
		return k, nil
	default:
		return "", fmt.Errorf("invalid strategy: %s (must be density or marker)", s)
	}
}

// Alternate returns the strategy to fall back to when k finds no table.
func Alternate(k Kind) Kind {
	if k == KindMarker {
		return KindDensity
	}
	return KindMarker
}

// TableBounds describes where the data table starts. It is computed once per
// pass and never changed afterwards.
type TableBounds struct {
	// FirstRow is the 1-based header row of the table.
	FirstRow int `json:"first_row"`
	// DataColumns[i] is true when column i+1 has a header at FirstRow.
	// Only the density strategy fills it.
	DataColumns []bool `json:"data_columns,omitempty"`
	// RightEdge is the last column of the table, when known.
	RightEdge int `json:"right_edge,omitempty"`
}

// Valid reports whether b points at a real row.
func (b TableBounds) Valid() bool {
	return b.FirstRow >= 1
}

// IsDataColumn reports whether col holds a named data series. Without a
// header vector, columns up to the right edge count; without either, every
// column does.
func (b TableBounds) IsDataColumn(col int) bool {
	switch {
	case b.DataColumns != nil:
		return col >= 1 && col <= len(b.DataColumns) && b.DataColumns[col-1]
	case b.RightEdge > 0:
		return col >= 1 && col <= b.RightEdge
	default:
		return col >= 1
	}
}

// Locator finds the table bounds of a worksheet without modifying it.
type Locator interface {
	Kind() Kind
	Locate(g grid.Grid) (TableBounds, error)
}

// Params holds tuning for both strategies.
type Params struct {
	// MinNonEmptyCells is the density threshold for a header row.
	MinNonEmptyCells int
	// IgnoreHiddenRows skips hidden rows in the density scan.
	IgnoreHiddenRows bool
	// Markers are the prefixes that identify a money cell.
	Markers []string
}

// DefaultParams returns default table detection parameters.
func DefaultParams() Params {
	return Params{
		MinNonEmptyCells: 3,
		Markers:          []string{"$"},
	}
}

// New builds the locator for kind.
func New(kind Kind, params Params) (Locator, error) {
	switch kind {
	case KindDensity:
		return Density{MinNonEmptyCells: params.MinNonEmptyCells, IgnoreHiddenRows: params.IgnoreHiddenRows}, nil
	case KindMarker:
		return Marker{Markers: params.Markers}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
}
