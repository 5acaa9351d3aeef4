package merge

import (
	"sort"
	"strings"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
)

// DefaultRowHeight is the height excelize reports for rows without a
// custom height.
const DefaultRowHeight = 15.0

// HeaderSplit is a multi-line main header waiting to be spread over one
// physical row per line.
type HeaderSplit struct {
	At    grid.Pos
	Lines []string
}

// SplitLines breaks header text into its non-blank lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ApplySplits spreads split headers over one row per line, each line
// carrying the header's style. Headers sharing a row get one block of new
// rows, sized for the tallest. Rows run from the bottom up so that inserted
// rows never move a header still waiting its turn. It returns the number of
// rows inserted.
func ApplySplits(g grid.Grid, splits []HeaderSplit) (int, error) {
	byRow := make(map[int][]HeaderSplit)
	for _, s := range splits {
		if len(s.Lines) > 1 {
			byRow[s.At.Row] = append(byRow[s.At.Row], s)
		}
	}
	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rows)))

	inserted := 0
	for _, row := range rows {
		n, err := splitRow(g, row, byRow[row])
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func splitRow(g grid.Grid, row int, splits []HeaderSplit) (int, error) {
	n := 0
	for _, s := range splits {
		n = max(n, len(s.Lines))
	}

	styles := make([]grid.Style, len(splits))
	for i, s := range splits {
		st, err := g.Style(s.At)
		if err != nil {
			return 0, err
		}
		styles[i] = st
	}
	height, err := g.RowHeight(row)
	if err != nil {
		return 0, err
	}

	if err := g.InsertRows(row+1, n-1); err != nil {
		return 0, err
	}

	for i, s := range splits {
		for j, line := range s.Lines {
			p := grid.Pos{Row: row + j, Col: s.At.Col}
			if err := g.SetText(p, line); err != nil {
				return 0, err
			}
			if err := g.SetStyle(p, styles[i]); err != nil {
				return 0, err
			}
		}
	}

	if height > DefaultRowHeight {
		per := max(height/float64(n), DefaultRowHeight)
		for j := 0; j < n; j++ {
			if err := g.SetRowHeight(row+j, per); err != nil {
				return 0, err
			}
		}
	}
	return n - 1, nil
}
