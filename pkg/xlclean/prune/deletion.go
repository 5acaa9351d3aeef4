// Package prune removes columns left redundant by dissolved data merges.
package prune

import "sort"

// DeletionSet holds the columns queued for deletion.
type DeletionSet struct {
	cols map[int]struct{}
}

// NewDeletionSet returns an empty set.
func NewDeletionSet() *DeletionSet {
	return &DeletionSet{cols: make(map[int]struct{})}
}

// Add queues col.
func (d *DeletionSet) Add(col int) {
	d.cols[col] = struct{}{}
}

// AddSpan queues every column in first..last.
func (d *DeletionSet) AddSpan(first, last int) {
	for col := first; col <= last; col++ {
		d.Add(col)
	}
}

// Contains reports whether col is queued.
func (d *DeletionSet) Contains(col int) bool {
	_, ok := d.cols[col]
	return ok
}

// Len returns the number of queued columns.
func (d *DeletionSet) Len() int { return len(d.cols) }

// Descending returns a snapshot of the queued columns, highest first.
func (d *DeletionSet) Descending() []int {
	cols := make([]int, 0, len(d.cols))
	for col := range d.cols {
		cols = append(cols, col)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(cols)))
	return cols
}
