package grid

import (
	"fmt"
	"reflect"

	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
)

// Border sides as named by excelize.
const (
	BorderLeft   = "left"
	BorderRight  = "right"
	BorderTop    = "top"
	BorderBottom = "bottom"
)

// Style is an immutable snapshot of a cell style.
//
// A snapshot read from a sheet remembers the style id it came from, so
// re-applying it restores the cell exactly. Snapshots produced by With are
// not registered yet; the grid registers them on first use.
type Style struct {
	id         int
	registered bool
	spec       *excelize.Style
}

// NewStyle snapshots spec under the given registered style id.
func NewStyle(id int, spec *excelize.Style) (Style, error) {
	cp, err := cloneSpec(spec)
	if err != nil {
		return Style{}, err
	}
	return Style{id: id, registered: true, spec: cp}, nil
}

// ID returns the registered style id and whether the snapshot has one.
func (s Style) ID() (int, bool) {
	return s.id, s.registered
}

// Spec returns a copy of the decoded style.
func (s Style) Spec() (*excelize.Style, error) {
	return cloneSpec(s.spec)
}

// With returns a derived, unregistered snapshot with fn applied to a copy of
// the decoded style. The receiver is left untouched.
func (s Style) With(fn func(*excelize.Style)) (Style, error) {
	cp, err := cloneSpec(s.spec)
	if err != nil {
		return Style{}, err
	}
	fn(cp)
	return Style{spec: cp}, nil
}

// Equal reports whether both snapshots describe the same style.
func (s Style) Equal(o Style) bool {
	if s.registered && o.registered {
		return s.id == o.id
	}
	return reflect.DeepEqual(s.spec, o.spec)
}

// HasBorder reports whether a border line is drawn on the given side.
func (s Style) HasBorder(side string) bool {
	if s.spec == nil {
		return false
	}
	for _, b := range s.spec.Border {
		if b.Type == side && b.Style > 0 {
			return true
		}
	}
	return false
}

// WrapText reports whether text wrapping is enabled.
func (s Style) WrapText() bool {
	return s.spec != nil && s.spec.Alignment != nil && s.spec.Alignment.WrapText
}

// Horizontal returns the horizontal alignment, or "" for the default.
func (s Style) Horizontal() string {
	if s.spec == nil || s.spec.Alignment == nil {
		return ""
	}
	return s.spec.Alignment.Horizontal
}

// FontSize returns the font size in points, or 0 when the style does not set one.
func (s Style) FontSize() float64 {
	if s.spec == nil || s.spec.Font == nil {
		return 0
	}
	return s.spec.Font.Size
}

// Bold reports whether the font is bold.
func (s Style) Bold() bool {
	return s.spec != nil && s.spec.Font != nil && s.spec.Font.Bold
}

func cloneSpec(spec *excelize.Style) (*excelize.Style, error) {
	var dst excelize.Style
	if spec == nil {
		return &dst, nil
	}
	if err := deepcopy.Copy(&dst, spec); err != nil {
		return nil, fmt.Errorf("copy style: %w", err)
	}
	return &dst, nil
}
