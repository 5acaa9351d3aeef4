package prune

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/logging"
)

// Result lists what a sweep did, in sweep order.
type Result struct {
	// Deleted holds the columns removed, as numbered before the sweep.
	Deleted []int
	// Kept holds queued columns that were left in place.
	Kept []int
}

// Remap returns where a column numbered before the sweep ended up. Header
// text of a deleted column followed its relocation into the neighbor.
func (r Result) Remap(col int) int {
	deleted := make(map[int]bool, len(r.Deleted))
	for _, d := range r.Deleted {
		deleted[d] = true
	}
	for deleted[col] {
		if col > 1 {
			col--
			continue
		}
		// Column 1 goes last in a sweep, into the first column that survived.
		col = 2
		for deleted[col] {
			col++
		}
	}
	shift := 0
	for _, d := range r.Deleted {
		if d < col {
			shift++
		}
	}
	return col - shift
}

// Pruner deletes queued columns that carry no table data.
type Pruner struct {
	Log logrus.FieldLogger
}

type move struct {
	from, to grid.Pos
}

// Prune sweeps set from the highest column down. A column is deleted only
// when every cell from firstRow downwards is empty and every header cell
// above firstRow can be moved into an empty neighbor; otherwise it is kept.
func (p Pruner) Prune(g grid.Grid, firstRow int, set *DeletionSet) (Result, error) {
	log := logging.OrDiscard(p.Log)
	var res Result

	// Snapshot before the first deletion shifts anything.
	cols := set.Descending()
	for _, col := range cols {
		entry := log.WithField("col", grid.ColumnName(col))

		if col < 1 || col > g.Cols() {
			entry.Debug("column outside sheet, skipping")
			res.Kept = append(res.Kept, col)
			continue
		}

		safe, err := columnEmptyFrom(g, col, firstRow)
		if err != nil {
			return res, err
		}
		if !safe {
			entry.Debug("column holds table data, keeping")
			res.Kept = append(res.Kept, col)
			continue
		}

		moves, ok, err := planRelocation(g, col, firstRow)
		if err != nil {
			return res, err
		}
		if !ok {
			entry.Debug("header text has nowhere to go, keeping")
			res.Kept = append(res.Kept, col)
			continue
		}

		for _, m := range moves {
			if err := relocate(g, m); err != nil {
				return res, fmt.Errorf("relocate %s to %s: %w", m.from, m.to, err)
			}
			entry.WithField("to", m.to.String()).Debug("moved header text")
		}

		if err := g.DeleteCol(col); err != nil {
			return res, fmt.Errorf("delete column %s: %w", grid.ColumnName(col), err)
		}
		entry.Debug("deleted column")
		res.Deleted = append(res.Deleted, col)
	}

	return res, nil
}

// columnEmptyFrom reports whether every cell of col at or below row is empty.
func columnEmptyFrom(g grid.Grid, col, row int) (bool, error) {
	if row < 1 {
		row = 1
	}
	if row > g.Rows() {
		return true, nil
	}
	cells, err := grid.Walk(g, grid.Pos{Row: row, Col: col}, grid.Down)
	if err != nil {
		return false, err
	}
	for pos := range cells {
		empty, err := grid.IsEmpty(g, pos)
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}
	return true, nil
}

// neighbor is where header text of a deleted column goes: the column to the
// left, or column 2 when column 1 is deleted.
func neighbor(col int) int {
	if col == 1 {
		return 2
	}
	return col - 1
}

// planRelocation lists the moves needed to save the header text of col. It
// returns false when a destination cell is already occupied.
func planRelocation(g grid.Grid, col, firstRow int) ([]move, bool, error) {
	var moves []move
	dest := neighbor(col)
	for row := 1; row < firstRow && row <= g.Rows(); row++ {
		from := grid.Pos{Row: row, Col: col}
		empty, err := grid.IsEmpty(g, from)
		if err != nil {
			return nil, false, err
		}
		if empty {
			continue
		}

		to := grid.Pos{Row: row, Col: dest}
		free, err := grid.IsEmpty(g, to)
		if err != nil {
			return nil, false, err
		}
		if !free {
			return nil, false, nil
		}
		moves = append(moves, move{from: from, to: to})
	}
	return moves, true, nil
}

// relocate moves the value and style of a header cell. The source column
// is deleted right after, so the source is left as is.
func relocate(g grid.Grid, m move) error {
	style, err := g.Style(m.from)
	if err != nil {
		return err
	}
	if err := g.CopyValue(m.from, m.to); err != nil {
		return err
	}
	return g.SetStyle(m.to, style)
}
