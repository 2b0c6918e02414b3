package sheetstruct

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoCredentials indicates the OAuth credentials file is missing.
var ErrNoCredentials = errors.New("credentials file not found")

// SheetError represents a per-sheet failure during fetch or analysis.
type SheetError struct {
	SheetName string
	Stage     string // "fetch", "analyze", "structure", "data"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
