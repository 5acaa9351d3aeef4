package grid

// RegionID identifies a region descriptor within an Arena.
type RegionID int

// Arena holds the merged regions discovered at the start of a pass.
//
// Structural changes made while the pass runs can dissolve regions other
// than the one being processed, so descriptors are never trusted as cached
// handles. Lookup re-checks a descriptor against the live merge list and
// tombstones it when it is gone.
type Arena struct {
	g         Grid
	regions   []Region
	tombstone []bool
}

// Discover snapshots the merged regions currently present in g.
func Discover(g Grid) (*Arena, error) {
	regions, err := g.MergedRegions()
	if err != nil {
		return nil, err
	}
	return &Arena{
		g:         g,
		regions:   regions,
		tombstone: make([]bool, len(regions)),
	}, nil
}

// Len returns the number of descriptors, tombstoned ones included.
func (a *Arena) Len() int { return len(a.regions) }

// Newest returns descriptor ids from most to least recently discovered.
func (a *Arena) Newest() []RegionID {
	ids := make([]RegionID, 0, len(a.regions))
	for i := len(a.regions) - 1; i >= 0; i-- {
		ids = append(ids, RegionID(i))
	}
	return ids
}

// Lookup re-fetches a descriptor by identity. It returns false when the
// descriptor is tombstoned or the region is no longer merged in the grid.
func (a *Arena) Lookup(id RegionID) (Region, bool, error) {
	if int(id) < 0 || int(id) >= len(a.regions) || a.tombstone[id] {
		return Region{}, false, nil
	}
	want := a.regions[id]

	live, err := a.g.MergedRegions()
	if err != nil {
		return Region{}, false, err
	}
	for _, r := range live {
		if r == want {
			return r, true, nil
		}
	}
	a.tombstone[id] = true
	return Region{}, false, nil
}

// Descriptor returns the region as discovered, regardless of liveness.
func (a *Arena) Descriptor(id RegionID) Region {
	return a.regions[id]
}

// Retire tombstones a descriptor once its region has been dissolved.
func (a *Arena) Retire(id RegionID) {
	if int(id) >= 0 && int(id) < len(a.tombstone) {
		a.tombstone[id] = true
	}
}

// Tombstoned reports whether a descriptor has been invalidated.
func (a *Arena) Tombstoned(id RegionID) bool {
	return a.tombstone[id]
}
