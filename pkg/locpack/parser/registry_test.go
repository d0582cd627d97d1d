package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kotoba-tools/locpack-go/pkg/locpack/models"
)

func TestReadLanguages(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "en")
	f.SetCellValue(sheetName, "B2", "note") // row with empty first cell is skipped
	f.SetCellValue(sheetName, "A3", "zh-CN")
	f.SetCellValue(sheetName, "A4", "en") // duplicates propagate

	langs, err := ReadLanguages(f, sheetName, DefaultSerialDate)
	if err != nil {
		t.Fatalf("ReadLanguages failed: %v", err)
	}

	want := []string{"en", "zh-CN", "en"}
	if len(langs) != len(want) {
		t.Fatalf("Expected %d languages, got %d", len(want), len(langs))
	}
	for i, code := range want {
		if langs[i].Code != code {
			t.Errorf("langs[%d] = %q, expected %q", i, langs[i].Code, code)
		}
	}

	if _, err := ReadLanguages(f, "NoSuchSheet", DefaultSerialDate); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestReadSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Common")
	f.SetCellValue(sheetName, "B1", "root")
	f.SetCellValue(sheetName, "A2", "Menu")
	f.SetCellValue(sheetName, "B2", " ") // blank mode cell defaults to nested
	f.SetCellValue(sheetName, "A3", "Errors") // absent mode column
	f.SetCellValue(sheetName, "B4", "root") // empty name is skipped

	sheets, err := ReadSheets(f, sheetName, DefaultSerialDate)
	if err != nil {
		t.Fatalf("ReadSheets failed: %v", err)
	}

	want := []models.SheetConfig{
		{Name: "Common", Mode: models.ModeRoot},
		{Name: "Menu", Mode: models.ModeNested},
		{Name: "Errors", Mode: models.ModeNested},
	}
	if len(sheets) != len(want) {
		t.Fatalf("Expected %d sheets, got %d", len(want), len(sheets))
	}
	for i, cfg := range want {
		if sheets[i] != cfg {
			t.Errorf("sheets[%d] = %+v, expected %+v", i, sheets[i], cfg)
		}
	}
}
