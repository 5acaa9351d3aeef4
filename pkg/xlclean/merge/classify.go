// Package merge classifies merged regions by structural role and dissolves
// them without disturbing how the sheet looks.
package merge

import (
	"errors"
	"fmt"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
)

// ErrUnclassifiable indicates a region matched no classification rule.
var ErrUnclassifiable = errors.New("unclassifiable merged region")

// Type is the structural role of a merged region.
type Type int

const (
	// NotAMerge is a region that is no longer merged.
	NotAMerge Type = iota
	// Empty is a merged region without text.
	Empty
	// MainHeader is titled text above the table.
	MainHeader
	// MinorHeader is text inside the table outside any data column.
	MinorHeader
	// Data is text inside the table in a data column.
	Data
)

var typeNames = [...]string{
	NotAMerge:   "not_a_merge",
	Empty:       "empty",
	MainHeader:  "main_header",
	MinorHeader: "minor_header",
	Data:        "data",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// MarshalText renders the type by name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Candidate is a region presented for classification.
type Candidate struct {
	Region grid.Region
	// Merged is false when the region has been dissolved or invalidated.
	Merged bool
	// Text is the anchor cell's displayed text.
	Text string
}

// Classifier assigns a Type to candidates against fixed table bounds.
type Classifier struct {
	Bounds bounds.TableBounds
}

type rule struct {
	typ   Type
	match func(b bounds.TableBounds, c Candidate) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{NotAMerge, func(_ bounds.TableBounds, c Candidate) bool {
		return !c.Merged
	}},
	{Empty, func(_ bounds.TableBounds, c Candidate) bool {
		return c.Text == ""
	}},
	{MainHeader, func(b bounds.TableBounds, c Candidate) bool {
		return b.Valid() && c.Region.Top < b.FirstRow
	}},
	{MinorHeader, func(b bounds.TableBounds, c Candidate) bool {
		return b.Valid() && c.Region.Top >= b.FirstRow && !b.IsDataColumn(c.Region.Left)
	}},
	{Data, func(b bounds.TableBounds, c Candidate) bool {
		return b.Valid() && c.Region.Top >= b.FirstRow && b.IsDataColumn(c.Region.Left)
	}},
}

// Classify returns the role of c.
func (cl Classifier) Classify(c Candidate) (Type, error) {
	for _, r := range rules {
		if r.match(cl.Bounds, c) {
			return r.typ, nil
		}
	}
	return NotAMerge, fmt.Errorf("%w: %s with table starting at row %d", ErrUnclassifiable, c.Region, cl.Bounds.FirstRow)
}
