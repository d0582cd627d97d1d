// Package models defines data structures for the localization export pipeline.
package models

// CellKind classifies a raw spreadsheet cell.
type CellKind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty CellKind = iota
	// KindText is a plain string cell.
	KindText
	// KindNumber is a numeric cell without date or time formatting.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDateTime is a numeric cell carrying a date or datetime number format.
	KindDateTime
	// KindDuration is a numeric cell carrying an elapsed-time number format.
	KindDuration
	// KindDateTimeText is a date or datetime stored as ISO 8601 text.
	KindDateTimeText
	// KindDurationText is a duration stored as ISO 8601 text.
	KindDurationText
	// KindError is an error cell, e.g. #DIV/0!.
	KindError
)

// Cell is a raw cell value decoded from a workbook. Kind selects which of
// Text, Number and Bool carries the value.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}
