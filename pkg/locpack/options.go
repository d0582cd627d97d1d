package locpack

import (
	"time"

	"github.com/kotoba-tools/locpack-go/pkg/locpack/parser"
)

// Default control sheet names. The workbooks this tool was built for use
// Chinese management sheets; override via Options for other layouts.
const (
	// DefaultLanguageSheet is the language registry sheet name.
	DefaultLanguageSheet = "导出语言管理"
	// DefaultSheetRegistry is the sheet registry sheet name.
	DefaultSheetRegistry = "导出sheet管理"
)

// Options configures an export run.
type Options struct {
	// LanguageSheet is the name of the language registry sheet.
	LanguageSheet string
	// SheetRegistry is the name of the sheet registry sheet.
	SheetRegistry string
	// SerialDate decides whether a bare number is rendered as a serial date.
	// If nil, parser.DefaultSerialDate is used.
	SerialDate func(float64) bool
	// Now supplies the timestamp for the output directory name.
	// If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns the options the CLI runs with.
func DefaultOptions() Options {
	return Options{
		LanguageSheet: DefaultLanguageSheet,
		SheetRegistry: DefaultSheetRegistry,
	}
}

func (o Options) serialDate() func(float64) bool {
	if o.SerialDate != nil {
		return o.SerialDate
	}
	return parser.DefaultSerialDate
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
