// Package parser provides workbook decoding for the export pipeline.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kotoba-tools/locpack-go/pkg/locpack/models"
)

// serialEpoch is the spreadsheet serial date epoch: the 1900 date system
// shifted to 1899-12-30 to absorb the Lotus leap-year bug.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DefaultSerialDate reports whether a bare number should be rendered as a
// serial date. Values strictly between 30000 and 70000 cover the years
// 1982-2091, the range translation workbooks actually put dates in; anything
// outside is treated as a plain number. Pass a different policy (or nil to
// disable the heuristic) through Options.SerialDate.
func DefaultSerialDate(f float64) bool {
	return f > 30000 && f < 70000
}

// ReadGrid decodes every cell of a sheet into typed values. Rows keep the
// ragged widths the sheet has on disk.
func ReadGrid(f *excelize.File, sheetName string) ([][]models.Cell, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make([][]models.Cell, len(raw))
	for rowIdx, row := range raw {
		cells := make([]models.Cell, len(row))
		for colIdx, value := range row {
			cells[colIdx] = readCell(f, sheetName, colIdx+1, rowIdx+1, value)
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// readCell classifies one raw cell value using the cell's declared type and,
// for numbers, its number format.
func readCell(f *excelize.File, sheetName string, col, row int, raw string) models.Cell {
	if raw == "" {
		return models.Cell{Kind: models.KindEmpty}
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{Kind: models.KindText, Text: raw}
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		cellType = excelize.CellTypeUnset
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Cell{Kind: models.KindBool, Bool: raw == "1" || strings.EqualFold(raw, "true")}
	case excelize.CellTypeError:
		return models.Cell{Kind: models.KindError, Text: raw}
	case excelize.CellTypeDate:
		// ISO 8601 value stored as text; passed through untouched.
		return models.Cell{Kind: models.KindDateTimeText, Text: raw}
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return models.Cell{Kind: models.KindText, Text: raw}
	}

	// Numbers are stored untyped in xlsx; the number format decides whether
	// the value is a date, an elapsed time or a plain number.
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Cell{Kind: models.KindText, Text: raw}
	}
	return models.Cell{Kind: classifyNumber(f, sheetName, cellName), Number: n}
}

// Built-in number format IDs, per ECMA-376 18.8.30.
var (
	dateFormats     = map[int]bool{14: true, 15: true, 16: true, 17: true, 22: true}
	durationFormats = map[int]bool{18: true, 19: true, 20: true, 21: true, 45: true, 46: true, 47: true}
)

func classifyNumber(f *excelize.File, sheetName, cellName string) models.CellKind {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return models.KindNumber
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return models.KindNumber
	}

	if dateFormats[style.NumFmt] {
		return models.KindDateTime
	}
	if durationFormats[style.NumFmt] {
		return models.KindDuration
	}
	if style.CustomNumFmt != nil {
		custom := strings.ToLower(*style.CustomNumFmt)
		switch {
		case strings.Contains(custom, "[h"), strings.Contains(custom, "[m"), strings.Contains(custom, "[s"):
			return models.KindDuration
		case strings.ContainsAny(custom, "ymd"):
			return models.KindDateTime
		}
	}
	return models.KindNumber
}

// Normalize renders a decoded cell as its canonical string. Every component
// downstream of the parser consumes only these strings. serialDate decides
// whether a bare number is interpreted as a serial date; nil disables the
// heuristic.
func Normalize(c models.Cell, serialDate func(float64) bool) string {
	switch c.Kind {
	case models.KindText, models.KindDateTimeText, models.KindDurationText:
		return c.Text
	case models.KindBool:
		if c.Bool {
			return "true"
		}
		return "false"
	case models.KindNumber:
		if serialDate != nil && serialDate(c.Number) {
			return serialEpoch.AddDate(0, 0, int(c.Number)).Format("2006-01-02")
		}
		if c.Number == math.Trunc(c.Number) {
			return strconv.FormatFloat(c.Number, 'f', 0, 64)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case models.KindDateTime:
		days := math.Trunc(c.Number)
		seconds := int((c.Number - days) * 86400)
		t := serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(seconds) * time.Second)
		return t.Format("2006-01-02 15:04:05")
	case models.KindDuration:
		total := int64(c.Number * 86400)
		return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	case models.KindError:
		return "Error: " + c.Text
	}
	return ""
}
