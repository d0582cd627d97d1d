package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/kotoba-tools/locpack-go/pkg/locpack/models"
)

// ReadLanguages reads the language registry sheet. The first column of each
// row is a language code; rows whose first cell normalizes to empty are
// skipped. Duplicate codes are kept in row order.
func ReadLanguages(f *excelize.File, sheetName string, serialDate func(float64) bool) ([]models.LanguageConfig, error) {
	grid, err := ReadGrid(f, sheetName)
	if err != nil {
		return nil, err
	}

	var langs []models.LanguageConfig
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		code := Normalize(row[0], serialDate)
		if code == "" {
			continue
		}
		langs = append(langs, models.LanguageConfig{Code: code})
	}
	return langs, nil
}

// ReadSheets reads the sheet registry. The first column is the content sheet
// name; the optional second column selects the merge mode. The literal "root"
// flattens the sheet into the document top level, anything else (including a
// blank cell) nests under the sheet name. Duplicate names are kept in row
// order.
func ReadSheets(f *excelize.File, sheetName string, serialDate func(float64) bool) ([]models.SheetConfig, error) {
	grid, err := ReadGrid(f, sheetName)
	if err != nil {
		return nil, err
	}

	var sheets []models.SheetConfig
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		name := Normalize(row[0], serialDate)
		if name == "" {
			continue
		}
		mode := models.ModeNested
		if len(row) > 1 && Normalize(row[1], serialDate) == string(models.ModeRoot) {
			mode = models.ModeRoot
		}
		sheets = append(sheets, models.SheetConfig{Name: name, Mode: mode})
	}
	return sheets, nil
}
