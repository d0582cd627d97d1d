package models

// Mode selects how a content sheet's keys are merged into the export document.
type Mode string

const (
	// ModeRoot flattens a sheet's keys into the top level of the document.
	ModeRoot Mode = "root"
	// ModeNested places a sheet's keys under an object named after the sheet.
	ModeNested Mode = "nested"
)

// LanguageConfig is one row of the language registry sheet.
type LanguageConfig struct {
	// Code is the language code, e.g. "en" or "zh-CN".
	Code string
}

// SheetConfig is one row of the sheet registry sheet.
type SheetConfig struct {
	// Name is the content sheet to export.
	Name string
	// Mode is the merge mode for the sheet's keys.
	Mode Mode
}
