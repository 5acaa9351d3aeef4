package grid

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet is a Grid backed by one worksheet of an excelize workbook.
//
// The extent is measured once when the sheet is opened (declared dimension,
// populated cells and merged regions) and then tracked through structural
// changes made via the Sheet.
//
// Cells covered by a merged region, other than its anchor, read as empty.
type Sheet struct {
	f      *excelize.File
	name   string
	rows   int
	cols   int
	styles map[int]Style
	merges []Region // nil until first needed; reset on structural changes
}

var _ Grid = (*Sheet)(nil)

// NewSheet wraps the named worksheet of f.
func NewSheet(f *excelize.File, name string) (*Sheet, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q does not exist", name)
	}

	s := &Sheet{f: f, name: name, styles: make(map[int]Style)}
	if err := s.measure(); err != nil {
		return nil, err
	}
	return s, nil
}

// measure finds the bounding box of the declared dimension, every populated
// cell and every merged region.
func (s *Sheet) measure() error {
	s.rows, s.cols = 0, 0

	if dim, err := s.f.GetSheetDimension(s.name); err == nil && dim != "" {
		if r, err := ParseRegion(dim); err == nil {
			s.extend(Pos{Row: r.Bottom, Col: r.Right})
		}
	}

	rows, err := s.f.GetRows(s.name)
	if err != nil {
		return err
	}
	for rowIdx, row := range rows {
		if len(row) > 0 {
			s.extend(Pos{Row: rowIdx + 1, Col: len(row)})
		}
	}

	regions, err := s.MergedRegions()
	if err != nil {
		return err
	}
	for _, r := range regions {
		s.extend(Pos{Row: r.Bottom, Col: r.Right})
	}
	return nil
}

func (s *Sheet) extend(p Pos) {
	if p.Row > s.rows {
		s.rows = p.Row
	}
	if p.Col > s.cols {
		s.cols = p.Col
	}
}

// File returns the underlying workbook.
func (s *Sheet) File() *excelize.File { return s.f }

func (s *Sheet) Name() string { return s.name }
func (s *Sheet) Rows() int    { return s.rows }
func (s *Sheet) Cols() int    { return s.cols }

// covered reports whether p lies inside a merged region without being its
// anchor. excelize resolves such cells to the anchor's content.
func (s *Sheet) covered(p Pos) (bool, error) {
	if s.merges == nil {
		regions, err := s.MergedRegions()
		if err != nil {
			return false, err
		}
		s.merges = regions
	}
	for _, r := range s.merges {
		if r.Contains(p) && r.Anchor() != p {
			return true, nil
		}
	}
	return false, nil
}

func (s *Sheet) read(p Pos, get func(cell string) (string, error)) (string, error) {
	hidden, err := s.covered(p)
	if err != nil || hidden {
		return "", err
	}
	return get(p.String())
}

func (s *Sheet) Text(p Pos) (string, error) {
	return s.read(p, func(cell string) (string, error) {
		return s.f.GetCellValue(s.name, cell)
	})
}

func (s *Sheet) Value(p Pos) (string, error) {
	return s.read(p, func(cell string) (string, error) {
		return s.f.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
	})
}

func (s *Sheet) Formula(p Pos) (string, error) {
	return s.read(p, func(cell string) (string, error) {
		return s.f.GetCellFormula(s.name, cell)
	})
}

func (s *Sheet) SetText(p Pos, text string) error {
	if err := s.f.SetCellStr(s.name, p.String(), text); err != nil {
		return err
	}
	s.extend(p)
	return nil
}

func (s *Sheet) SetValue(p Pos, v any) error {
	if err := s.f.SetCellValue(s.name, p.String(), v); err != nil {
		return err
	}
	s.extend(p)
	return nil
}

// CopyValue writes the stored value of from into to, keeping its type:
// numbers (and so dates) stay numeric, booleans stay boolean and formulas
// are carried over as formulas.
func (s *Sheet) CopyValue(from, to Pos) error {
	formula, err := s.Formula(from)
	if err != nil {
		return err
	}
	raw, err := s.Value(from)
	if err != nil {
		return err
	}
	typ, err := s.f.GetCellType(s.name, from.String())
	if err != nil {
		return err
	}

	cell := to.String()
	switch {
	case formula != "":
		err = s.f.SetCellFormula(s.name, cell, formula)
	case typ == excelize.CellTypeBool:
		err = s.f.SetCellBool(s.name, cell, raw == "1" || raw == "TRUE")
	case typ == excelize.CellTypeNumber || typ == excelize.CellTypeUnset:
		if n, perr := strconv.ParseFloat(raw, 64); perr == nil {
			err = s.f.SetCellFloat(s.name, cell, n, -1, 64)
		} else {
			err = s.f.SetCellStr(s.name, cell, raw)
		}
	default:
		err = s.f.SetCellStr(s.name, cell, raw)
	}
	if err != nil {
		return err
	}
	s.extend(to)
	return nil
}

func (s *Sheet) Style(p Pos) (Style, error) {
	id, err := s.f.GetCellStyle(s.name, p.String())
	if err != nil {
		return Style{}, err
	}
	if st, ok := s.styles[id]; ok {
		return st, nil
	}
	spec, err := s.f.GetStyle(id)
	if err != nil {
		return Style{}, fmt.Errorf("decode style %d: %w", id, err)
	}
	st, err := NewStyle(id, spec)
	if err != nil {
		return Style{}, err
	}
	s.styles[id] = st
	return st, nil
}

func (s *Sheet) SetStyle(p Pos, st Style) error {
	id, ok := st.ID()
	if !ok {
		spec, err := st.Spec()
		if err != nil {
			return err
		}
		if id, err = s.f.NewStyle(spec); err != nil {
			return fmt.Errorf("register style: %w", err)
		}
	}
	cell := p.String()
	return s.f.SetCellStyle(s.name, cell, cell, id)
}

func (s *Sheet) MergedRegions() ([]Region, error) {
	merged, err := s.f.GetMergeCells(s.name)
	if err != nil {
		return nil, err
	}
	regions := make([]Region, 0, len(merged))
	for _, mc := range merged {
		r, err := ParseRegion(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

func (s *Sheet) Unmerge(r Region) error {
	s.merges = nil
	return s.f.UnmergeCell(s.name, r.Anchor().String(), Pos{Row: r.Bottom, Col: r.Right}.String())
}

func (s *Sheet) ColWidth(col int) (float64, error) {
	return s.f.GetColWidth(s.name, ColumnName(col))
}

func (s *Sheet) SetColWidth(col int, width float64) error {
	name := ColumnName(col)
	return s.f.SetColWidth(s.name, name, name, width)
}

func (s *Sheet) RowHeight(row int) (float64, error) {
	return s.f.GetRowHeight(s.name, row)
}

func (s *Sheet) SetRowHeight(row int, height float64) error {
	return s.f.SetRowHeight(s.name, row, height)
}

func (s *Sheet) RowHidden(row int) (bool, error) {
	visible, err := s.f.GetRowVisible(s.name, row)
	return !visible, err
}

func (s *Sheet) SetRowHidden(row int, hidden bool) error {
	return s.f.SetRowVisible(s.name, row, !hidden)
}

func (s *Sheet) InsertRows(at, n int) error {
	if n <= 0 {
		return nil
	}
	s.merges = nil
	if err := s.f.InsertRows(s.name, at, n); err != nil {
		return err
	}
	if at <= s.rows {
		s.rows += n
	}
	return nil
}

func (s *Sheet) DeleteCol(col int) error {
	s.merges = nil
	if err := s.f.RemoveCol(s.name, ColumnName(col)); err != nil {
		return err
	}
	if col <= s.cols {
		s.cols--
	}
	return nil
}
