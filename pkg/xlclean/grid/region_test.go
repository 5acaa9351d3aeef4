package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		ref      string
		expected Region
	}{
		{"A1:D10", Region{Top: 1, Left: 1, Bottom: 10, Right: 4}},
		{"$B$2:$C$3", Region{Top: 2, Left: 2, Bottom: 3, Right: 3}},
		{"'Sheet 1'!$A$1:$B$2", Region{Top: 1, Left: 1, Bottom: 2, Right: 2}},
		{"C5", Region{Top: 5, Left: 3, Bottom: 5, Right: 3}},
		{"D4:B2", Region{Top: 2, Left: 2, Bottom: 4, Right: 4}},
	}

	for _, tt := range tests {
		got, err := ParseRegion(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.expected, got, tt.ref)
	}

	_, err := ParseRegion("A1:B2:C3")
	assert.Error(t, err)
	_, err = ParseRegion("not a ref")
	assert.Error(t, err)
}

func TestRegionGeometry(t *testing.T) {
	r := Region{Top: 3, Left: 3, Bottom: 4, Right: 5}
	assert.Equal(t, "C3:E4", r.Ref())
	assert.Equal(t, Pos{Row: 3, Col: 3}, r.Anchor())
	assert.Equal(t, 3, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Len(t, r.Cells(), 6)
	assert.True(t, r.Contains(Pos{Row: 4, Col: 5}))
	assert.False(t, r.Contains(Pos{Row: 5, Col: 5}))
}

func TestArenaTombstonesDissolvedRegions(t *testing.T) {
	s := newTestSheet(t, func(f *excelize.File) {
		require.NoError(t, f.MergeCell(sheetName, "A1", "B1"))
		require.NoError(t, f.MergeCell(sheetName, "A3", "C3"))
	})

	arena, err := Discover(s)
	require.NoError(t, err)
	require.Equal(t, 2, arena.Len())

	ids := arena.Newest()
	require.Len(t, ids, 2)
	assert.Equal(t, RegionID(1), ids[0])

	// Dissolve the first region behind the arena's back.
	require.NoError(t, s.Unmerge(arena.Descriptor(0)))

	_, ok, err := arena.Lookup(0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, arena.Tombstoned(0))

	r, ok, err := arena.Lookup(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A3:C3", r.Ref())

	arena.Retire(1)
	_, ok, err = arena.Lookup(1)
	require.NoError(t, err)
	assert.False(t, ok)
}
