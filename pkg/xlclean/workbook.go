package xlclean

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/logging"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/models"
)

// CleanFile cleans every sheet of the workbook at path and saves the result
// to outputPath, or back to path when outputPath is empty.
func CleanFile(path, outputPath string, opts Options) (*models.WorkbookReport, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report, err := CleanWorkbook(f, opts)
	if err != nil {
		return nil, err
	}
	report.BookName = filepath.Base(path)

	if outputPath == "" {
		outputPath = path
	}
	if err := f.SaveAs(outputPath); err != nil {
		return nil, fmt.Errorf("save %s: %w", outputPath, err)
	}
	report.OutputPath = outputPath
	return report, nil
}

// CleanWorkbook cleans every sheet of f in workbook order. Sheets where no
// strategy finds a table are reported as skipped and left as they were.
func CleanWorkbook(f *excelize.File, opts Options) (*models.WorkbookReport, error) {
	log := logging.OrDiscard(opts.Logger)
	report := &models.WorkbookReport{
		ReportType: opts.ReportType,
		Sheets:     make(map[string]models.SheetReport),
	}

	for idx, sheetName := range f.GetSheetList() {
		report.SheetOrder = append(report.SheetOrder, sheetName)

		g, err := grid.NewSheet(f, sheetName)
		if err != nil {
			return nil, NewCleanError(sheetName, StageBounds, err)
		}

		kind := opts.StrategyFor(idx)
		sheet, err := CleanWithFallback(g, kind, opts)
		if errors.Is(err, ErrTableNotFound) {
			attempted := []string{string(kind)}
			if opts.ShouldFallback() {
				attempted = append(attempted, string(bounds.Alternate(kind)))
			}
			log.WithFields(logrus.Fields{"sheet": sheetName, "tried": attempted, "error": err}).Warn("no table found, sheet left as is")
			report.Sheets[sheetName] = models.SheetReport{
				Sheet:     sheetName,
				Strategy:  attempted[len(attempted)-1],
				Fallback:  len(attempted) > 1,
				Attempted: attempted,
				Skipped:   true,
				Error:     err.Error(),
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		if err := applyGlue(f, sheetName, sheet, opts); err != nil {
			return nil, NewCleanError(sheetName, StageGlue, err)
		}
		report.Sheets[sheetName] = *sheet
	}

	return report, nil
}

// applyGlue runs the optional steps that follow a successful pass.
func applyGlue(f *excelize.File, sheetName string, sheet *models.SheetReport, opts Options) error {
	if opts.StripHyperlinks {
		n, err := StripHyperlinks(f, sheetName)
		if err != nil {
			return err
		}
		sheet.UnlinkedCells = n
	}
	if opts.CoerceNumbers {
		// Data starts below the header row, pushed down by any split headers.
		n, err := CoerceNumbers(f, sheetName, sheet.FirstTableRow+sheet.InsertedRows+1)
		if err != nil {
			return err
		}
		sheet.CoercedCells = n
	}
	return nil
}
