package xlclean

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/logging"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/merge"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/models"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/prune"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/width"
)

// pass holds everything scoped to one cleaning pass over one worksheet.
// Nothing in it survives the pass.
type pass struct {
	g         grid.Grid
	kind      bounds.Kind
	opts      Options
	bounds    bounds.TableBounds
	widths    *width.Plan
	deletions *prune.DeletionSet
	log       logrus.FieldLogger
	report    *models.SheetReport
}

func newPass(g grid.Grid, kind bounds.Kind, opts Options) *pass {
	log := logging.OrDiscard(opts.Logger).WithFields(logrus.Fields{
		"sheet":    g.Name(),
		"strategy": string(kind),
	})
	return &pass{
		g:         g,
		kind:      kind,
		opts:      opts,
		widths:    width.NewPlan(),
		deletions: prune.NewDeletionSet(),
		log:       log,
		report:    &models.SheetReport{Sheet: g.Name(), Strategy: string(kind)},
	}
}

// CleanSheet runs one pass over g: locate the table, unmerge every region,
// apply column widths, prune redundant columns and split multi-line headers.
//
// When no table is found it returns an error matching ErrTableNotFound and
// g is untouched.
func CleanSheet(g grid.Grid, kind bounds.Kind, opts Options) (*models.SheetReport, error) {
	p := newPass(g, kind, opts)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.report, nil
}

// CleanWithFallback runs CleanSheet and, if it finds no table, retries with
// the alternate strategy unless opts disables fallback.
func CleanWithFallback(g grid.Grid, kind bounds.Kind, opts Options) (*models.SheetReport, error) {
	rep, err := CleanSheet(g, kind, opts)
	if err == nil || !errors.Is(err, ErrTableNotFound) || !opts.ShouldFallback() {
		return rep, err
	}

	alt := bounds.Alternate(kind)
	logging.OrDiscard(opts.Logger).WithFields(logrus.Fields{
		"sheet":    g.Name(),
		"strategy": string(kind),
		"fallback": string(alt),
	}).Info("no table found, retrying with alternate strategy")

	rep, err = CleanSheet(g, alt, opts)
	if err != nil {
		return nil, err
	}
	rep.Fallback = true
	return rep, nil
}

func (p *pass) run() error {
	name := p.g.Name()

	loc, err := bounds.New(p.kind, p.opts.Bounds)
	if err != nil {
		return NewCleanError(name, StageBounds, err)
	}
	if p.bounds, err = loc.Locate(p.g); err != nil {
		return NewCleanError(name, StageBounds, err)
	}
	p.recordBounds()
	p.log.WithField("first_row", p.bounds.FirstRow).Debug("located table")

	arena, err := grid.Discover(p.g)
	if err != nil {
		return NewCleanError(name, StageUnmerge, err)
	}
	engine := merge.Engine{
		Classifier:       merge.Classifier{Bounds: p.bounds},
		Resolver:         width.Resolver{Mode: p.opts.WidthMode},
		SplitHeaderLines: p.opts.SplitHeaderLines,
		Log:              p.log,
	}
	merged, err := engine.Run(p.g, arena, p.widths, p.deletions)
	if err != nil {
		return NewCleanError(name, StageUnmerge, err)
	}
	for _, rec := range merged.Records {
		p.report.Regions = append(p.report.Regions, models.MergeRecord{
			Range: rec.Region.Ref(),
			Type:  rec.Type.String(),
		})
	}

	if err := p.widths.Apply(p.g); err != nil {
		return NewCleanError(name, StageResize, err)
	}
	for _, col := range p.widths.Columns() {
		w, _ := p.widths.Get(col)
		p.report.ColumnWidths = append(p.report.ColumnWidths, models.ColumnWidth{
			Col:   col,
			Name:  grid.ColumnName(col),
			Width: w,
		})
	}

	pruned, err := prune.Pruner{Log: p.log}.Prune(p.g, p.bounds.FirstRow, p.deletions)
	if err != nil {
		return NewCleanError(name, StagePrune, err)
	}
	p.report.DeletedColumns = pruned.Deleted
	p.report.KeptColumns = pruned.Kept

	splits := merged.Splits
	for i := range splits {
		splits[i].At.Col = pruned.Remap(splits[i].At.Col)
	}
	if p.report.InsertedRows, err = merge.ApplySplits(p.g, splits); err != nil {
		return NewCleanError(name, StageSplit, err)
	}

	p.log.WithFields(logrus.Fields{
		"regions": len(merged.Records),
		"deleted": len(pruned.Deleted),
		"kept":    len(pruned.Kept),
	}).Info("cleaned sheet")
	return nil
}

func (p *pass) recordBounds() {
	p.report.FirstTableRow = p.bounds.FirstRow
	p.report.RightEdge = p.bounds.RightEdge
	for i, isData := range p.bounds.DataColumns {
		if isData {
			p.report.DataColumns = append(p.report.DataColumns, i+1)
		}
	}
}
