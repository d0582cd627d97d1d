package locpack

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidWorkbook indicates the input file could not be parsed as a workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// MissingSheetError indicates a control sheet is absent from the workbook.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("control sheet %q not found", e.Sheet)
}

// PlaceholderError indicates a translation value with unbalanced braces.
// An unbalanced placeholder would ship a corrupt string, so it aborts the
// whole run before any output is written.
type PlaceholderError struct {
	Sheet string
	Row   int // 1-based row in the content sheet
	Key   string
	Value string
	Err   error
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder check failed in sheet %q row %d key %q value %q: %v",
		e.Sheet, e.Row, e.Key, e.Value, e.Err)
}

func (e *PlaceholderError) Unwrap() error {
	return e.Err
}
