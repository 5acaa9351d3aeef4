// Package width computes the column widths needed once merged data cells no
// longer borrow space from their neighbors.
package width

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ReferenceFontSize is the font size at which one character occupies one
// unit of column width.
const ReferenceFontSize = 10.0

// Mode selects which part of the text must fit.
type Mode string

const (
	// ModeFullText sizes the column for the longest line of text.
	ModeFullText Mode = "full"
	// ModeLargestWord sizes the column for the longest word, leaving the
	// rest to wrap.
	ModeLargestWord Mode = "largest_word"
)

// ParseMode parses a width mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFullText, ModeLargestWord:
		return m, nil
	case "":
		return ModeFullText, nil
	default:
		return "", fmt.Errorf("invalid width mode: %s (must be full or largest_word)", s)
	}
}

// TextLength returns the display length of text under mode. East Asian wide
// characters count twice.
func TextLength(text string, mode Mode) int {
	var parts []string
	if mode == ModeLargestWord {
		parts = strings.Fields(text)
	} else {
		parts = strings.Split(text, "\n")
	}

	longest := 0
	for _, part := range parts {
		if n := runewidth.StringWidth(strings.TrimRight(part, "\r")); n > longest {
			longest = n
		}
	}
	return longest
}

// Required returns the column width needed to show length characters at
// fontSize. A non-positive fontSize means the reference size.
func Required(length int, fontSize float64) float64 {
	if fontSize <= 0 {
		fontSize = ReferenceFontSize
	}
	return float64(length+2) * (fontSize / ReferenceFontSize)
}

// Desired caps the required width at the width the merged region used to
// occupy, so unmerging never widens the layout.
func Desired(mergedWidth, required float64) float64 {
	if mergedWidth < required {
		return mergedWidth
	}
	return required
}

// Resolver computes desired widths for merged data cells.
type Resolver struct {
	Mode Mode
}

// Resolve returns the desired width of a column that held text at fontSize
// inside a merged region mergedWidth wide.
func (r Resolver) Resolve(text string, fontSize, mergedWidth float64) float64 {
	return Desired(mergedWidth, Required(TextLength(text, r.Mode), fontSize))
}

// Plan collects the desired width per column. Entries only ever grow.
type Plan struct {
	widths map[int]float64
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{widths: make(map[int]float64)}
}

// Update records width for col, keeping the larger of the old and new value.
// It returns the resulting entry.
func (p *Plan) Update(col int, width float64) float64 {
	if cur, ok := p.widths[col]; ok && cur >= width {
		return cur
	}
	p.widths[col] = width
	return width
}

// Get returns the planned width of col.
func (p *Plan) Get(col int) (float64, bool) {
	w, ok := p.widths[col]
	return w, ok
}

// Len returns the number of planned columns.
func (p *Plan) Len() int { return len(p.widths) }

// Columns returns the planned columns in ascending order.
func (p *Plan) Columns() []int {
	cols := make([]int, 0, len(p.widths))
	for col := range p.widths {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}

// ColumnSetter is the part of a grid a plan is applied to.
type ColumnSetter interface {
	SetColWidth(col int, width float64) error
}

// Apply sets every planned width on g.
func (p *Plan) Apply(g ColumnSetter) error {
	for _, col := range p.Columns() {
		if err := g.SetColWidth(col, p.widths[col]); err != nil {
			return fmt.Errorf("set width of column %d: %w", col, err)
		}
	}
	return nil
}
