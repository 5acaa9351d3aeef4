package merge

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/logging"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/prune"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/width"
)

// Record notes how one region was handled.
type Record struct {
	Region grid.Region
	Type   Type
}

// Result is what the engine leaves for the deferred steps of a pass.
type Result struct {
	Records []Record
	// Splits are main headers to spread over several rows once the
	// grid is no longer being classified.
	Splits []HeaderSplit
}

// Engine dissolves every merged region of a grid.
//
// Resizing and column deletion are only recorded here, into the width plan
// and deletion set handed to Run, and applied by the caller afterwards.
type Engine struct {
	Classifier Classifier
	Resolver   width.Resolver
	// SplitHeaderLines queues multi-line main headers for splitting.
	SplitHeaderLines bool
	Log              logrus.FieldLogger
}

// Run classifies and unmerges the regions of arena, newest first.
func (e Engine) Run(g grid.Grid, arena *grid.Arena, plan *width.Plan, deletions *prune.DeletionSet) (Result, error) {
	log := logging.OrDiscard(e.Log)
	var res Result

	for _, id := range arena.Newest() {
		region, live, err := arena.Lookup(id)
		if err != nil {
			return res, err
		}
		if !live {
			region = arena.Descriptor(id)
		}

		cand := Candidate{Region: region, Merged: live}
		if live {
			if cand.Text, err = g.Text(region.Anchor()); err != nil {
				return res, err
			}
		}

		typ, err := e.Classifier.Classify(cand)
		if err != nil {
			return res, err
		}
		entry := log.WithFields(logrus.Fields{"region": region.Ref(), "type": typ.String()})
		res.Records = append(res.Records, Record{Region: region, Type: typ})

		if typ == NotAMerge {
			entry.Debug("region no longer merged, skipping")
			continue
		}

		split, err := e.adjust(g, region, typ, cand.Text, plan, deletions)
		if err != nil {
			return res, fmt.Errorf("adjust %s region %s: %w", typ, region, err)
		}
		if split != nil {
			res.Splits = append(res.Splits, *split)
		}

		if err := dissolve(g, region); err != nil {
			return res, fmt.Errorf("unmerge %s: %w", region, err)
		}
		arena.Retire(id)
		entry.Debug("unmerged region")
	}

	return res, nil
}

// adjust applies the type-specific changes made while the region is still
// merged.
func (e Engine) adjust(g grid.Grid, r grid.Region, typ Type, text string, plan *width.Plan, deletions *prune.DeletionSet) (*HeaderSplit, error) {
	anchor := r.Anchor()

	switch typ {
	case MainHeader:
		if err := restyle(g, anchor, func(a *excelize.Alignment) {
			a.WrapText = false
			a.Horizontal = "left"
		}); err != nil {
			return nil, err
		}
		if err := g.SetText(anchor, text); err != nil {
			return nil, err
		}
		if e.SplitHeaderLines {
			if lines := SplitLines(text); len(lines) > 1 {
				return &HeaderSplit{At: anchor, Lines: lines}, nil
			}
		}

	case MinorHeader:
		if err := restyle(g, anchor, func(a *excelize.Alignment) {
			a.WrapText = false
		}); err != nil {
			return nil, err
		}

	case Data:
		merged := 0.0
		for col := r.Left; col <= r.Right; col++ {
			w, err := g.ColWidth(col)
			if err != nil {
				return nil, err
			}
			merged += w
		}
		style, err := g.Style(anchor)
		if err != nil {
			return nil, err
		}
		plan.Update(r.Left, e.Resolver.Resolve(text, style.FontSize(), merged))
		deletions.AddSpan(r.Left+1, r.Right)
	}

	return nil, nil
}

// restyle replaces the anchor's style with a copy whose alignment fn changed.
func restyle(g grid.Grid, p grid.Pos, fn func(*excelize.Alignment)) error {
	st, err := g.Style(p)
	if err != nil {
		return err
	}
	derived, err := st.With(func(spec *excelize.Style) {
		if spec.Alignment == nil {
			spec.Alignment = &excelize.Alignment{}
		}
		fn(spec.Alignment)
	})
	if err != nil {
		return err
	}
	return g.SetStyle(p, derived)
}

// dissolve unmerges r, then puts back the style every cell had before, since
// the container may reset styles of cells leaving a merge.
func dissolve(g grid.Grid, r grid.Region) error {
	cells := r.Cells()
	saved := make([]grid.Style, len(cells))
	for i, p := range cells {
		st, err := g.Style(p)
		if err != nil {
			return err
		}
		saved[i] = st
	}

	if err := g.Unmerge(r); err != nil {
		return err
	}

	for i, p := range cells {
		if err := g.SetStyle(p, saved[i]); err != nil {
			return err
		}
	}
	return nil
}
