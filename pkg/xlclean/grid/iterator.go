package grid

import "iter"

// Predicate tests a cell position.
type Predicate func(p Pos) bool

// Cursor walks the grid from a start cell in one direction.
//
// A cursor is single-use: once a cell has been yielded it is consumed, and
// a cursor that reached the boundary stays exhausted.
type Cursor struct {
	dims Dimensions
	dir  Direction
	pos  Pos
	// fresh is true until the start cell has been yielded.
	fresh bool
	done  bool
}

// NewCursor positions a cursor at start, facing dir.
func NewCursor(dims Dimensions, start Pos, dir Direction) (*Cursor, error) {
	if err := CheckBounds(dims, start); err != nil {
		return nil, err
	}
	return &Cursor{dims: dims, dir: dir, pos: start, fresh: true}, nil
}

// Pos returns the current position: the cell most recently yielded, or the
// cell a stop predicate matched.
func (c *Cursor) Pos() Pos { return c.pos }

// Done reports whether the cursor ran past the boundary.
func (c *Cursor) Done() bool { return c.done }

// Next yields the start cell first and then each following cell until the
// boundary.
func (c *Cursor) Next() (Pos, bool) {
	if c.done {
		return Pos{}, false
	}
	if c.fresh {
		c.fresh = false
		return c.pos, true
	}
	next := c.pos.Add(c.dir)
	if !InBounds(c.dims, next) {
		c.done = true
		return Pos{}, false
	}
	c.pos = next
	return next, true
}

// peek returns the cell Next would yield without consuming it.
func (c *Cursor) peek() (Pos, bool) {
	if c.done {
		return Pos{}, false
	}
	if c.fresh {
		return c.pos, true
	}
	next := c.pos.Add(c.dir)
	if !InBounds(c.dims, next) {
		return Pos{}, false
	}
	return next, true
}

// All yields every remaining cell up to the boundary.
func (c *Cursor) All() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for {
			p, ok := c.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Until yields cells until stop matches. The matching cell is not yielded;
// it becomes the cursor position and is the next cell Next returns.
func (c *Cursor) Until(stop Predicate) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for {
			p, ok := c.peek()
			if !ok {
				c.done = true
				return
			}
			if stop(p) {
				c.pos = p
				c.fresh = true
				return
			}
			c.Next()
			if !yield(p) {
				return
			}
		}
	}
}

// SkipWhile advances past every cell satisfying pred. It returns the first
// cell that fails pred, leaving the cursor on it, or false at the boundary.
func (c *Cursor) SkipWhile(pred Predicate) (Pos, bool) {
	for range c.Until(func(p Pos) bool { return !pred(p) }) {
	}
	if c.done {
		return Pos{}, false
	}
	return c.pos, true
}

// Find returns the first unconsumed cell satisfying pred, leaving the
// cursor on it. On a fresh cursor the start cell is tested first.
func (c *Cursor) Find(pred Predicate) (Pos, bool) {
	return c.SkipWhile(func(p Pos) bool { return !pred(p) })
}

// Walk is shorthand for a cursor yielding every cell from start to the
// boundary in dir.
func Walk(dims Dimensions, start Pos, dir Direction) (iter.Seq[Pos], error) {
	c, err := NewCursor(dims, start, dir)
	if err != nil {
		return nil, err
	}
	return c.All(), nil
}

// ScanRows yields every cell row by row, left to right. With reverse set
// it starts at the last cell and runs backwards.
func ScanRows(dims Dimensions, reverse bool) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		rows, cols := dims.Rows(), dims.Cols()
		if !reverse {
			for r := 1; r <= rows; r++ {
				for c := 1; c <= cols; c++ {
					if !yield(Pos{Row: r, Col: c}) {
						return
					}
				}
			}
			return
		}
		for r := rows; r >= 1; r-- {
			for c := cols; c >= 1; c-- {
				if !yield(Pos{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// FindFirst returns the first cell in row-major order satisfying pred.
func FindFirst(dims Dimensions, pred Predicate) (Pos, bool) {
	for p := range ScanRows(dims, false) {
		if pred(p) {
			return p, true
		}
	}
	return Pos{}, false
}

// FindAll returns every cell satisfying pred in row-major order.
func FindAll(dims Dimensions, pred Predicate) []Pos {
	var found []Pos
	for p := range ScanRows(dims, false) {
		if pred(p) {
			found = append(found, p)
		}
	}
	return found
}
