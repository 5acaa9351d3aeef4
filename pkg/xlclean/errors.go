package xlclean

import (
	"errors"
	"fmt"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/grid"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/merge"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTableNotFound indicates no data table was found on a sheet. The sheet
// is unmodified when it is returned.
var ErrTableNotFound = bounds.ErrTableNotFound

// ErrUnclassifiable indicates a merged region matched no classification rule.
var ErrUnclassifiable = merge.ErrUnclassifiable

// ErrOutOfRange indicates a traversal started outside the sheet.
var ErrOutOfRange = grid.ErrOutOfRange

// Pipeline stages reported by CleanError.
const (
	StageBounds  = "bounds"
	StageUnmerge = "unmerge"
	StageResize  = "resize"
	StagePrune   = "prune"
	StageSplit   = "split"
	StageGlue    = "glue"
)

// CleanError represents an error during one stage of a cleaning pass.
type CleanError struct {
	SheetName string
	Stage     string
	Err       error
}

func (e *CleanError) Error() string {
	return fmt.Sprintf("clean error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *CleanError) Unwrap() error {
	return e.Err
}

// NewCleanError creates a new CleanError.
func NewCleanError(sheetName, stage string, err error) *CleanError {
	return &CleanError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
