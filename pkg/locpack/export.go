// Package locpack converts localization workbooks into per-language JSON
// packs and archives them.
package locpack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"

	"github.com/kotoba-tools/locpack-go/pkg/locpack/models"
	"github.com/kotoba-tools/locpack-go/pkg/locpack/output"
	"github.com/kotoba-tools/locpack-go/pkg/locpack/parser"
)

// Result describes a completed export run.
type Result struct {
	// ArchivePath is the path of the zip archive.
	ArchivePath string
	// Languages is the number of language files exported.
	Languages int
}

// Summary returns the human-readable success message.
func (r *Result) Summary() string {
	return fmt.Sprintf("exported %d language files, archived to %s", r.Languages, r.ArchivePath)
}

// Export runs the whole pipeline on one workbook: read the control sheets,
// assemble and validate a document per language, write the JSON files into a
// timestamped directory next to the workbook, archive the directory and
// remove the uncompressed copy.
//
// Assembly and placeholder validation complete before anything touches disk,
// so a validation failure leaves no partial output behind.
func Export(path string, opts Options, rep Reporter) (*Result, error) {
	if rep == nil {
		rep = NopReporter
	}
	emit(rep, LevelInfo, "processing file: %s", path)

	if _, err := os.Stat(path); err != nil {
		emit(rep, LevelError, "file not found: %s", path)
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	emit(rep, LevelInfo, "opening workbook...")
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()
	emit(rep, LevelSuccess, "workbook opened")

	langs, sheets, err := readRegistries(f, opts)
	if err != nil {
		emit(rep, LevelError, "%v", err)
		return nil, err
	}
	emit(rep, LevelInfo, "found %d languages, %d sheets", len(langs), len(sheets))

	// Phase 1: assemble and validate every language in memory.
	docs := make([]*orderedmap.OrderedMap, 0, len(langs))
	for _, lang := range langs {
		emit(rep, LevelInfo, "processing language: %s", lang.Code)
		doc, err := assembleLanguage(f, lang, sheets, opts, rep)
		if err != nil {
			emit(rep, LevelError, "%v", err)
			return nil, err
		}
		docs = append(docs, doc)
	}

	// Phase 2: write, archive, clean up.
	outDir := outputDir(path, opts)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	emit(rep, LevelSuccess, "output directory created: %s", outDir)

	archived := false
	defer func() {
		if !archived {
			os.RemoveAll(outDir)
		}
	}()

	for i, lang := range langs {
		file := filepath.Join(outDir, lang.Code+".json")
		if err := output.WriteDocument(file, docs[i]); err != nil {
			return nil, fmt.Errorf("write %s: %w", file, err)
		}
		emit(rep, LevelSuccess, "exported language file: %s", file)
	}

	zipPath := outDir + ".zip"
	emit(rep, LevelInfo, "compressing output directory...")
	if err := output.ZipDirectory(outDir, zipPath); err != nil {
		os.Remove(zipPath)
		return nil, fmt.Errorf("archive output directory: %w", err)
	}
	archived = true
	emit(rep, LevelSuccess, "archived to %s", zipPath)

	if err := os.RemoveAll(outDir); err != nil {
		emit(rep, LevelWarning, "remove output directory: %v", err)
	}

	return &Result{ArchivePath: zipPath, Languages: len(langs)}, nil
}

func readRegistries(f *excelize.File, opts Options) ([]models.LanguageConfig, []models.SheetConfig, error) {
	for _, name := range []string{opts.LanguageSheet, opts.SheetRegistry} {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			return nil, nil, &MissingSheetError{Sheet: name}
		}
	}

	langs, err := parser.ReadLanguages(f, opts.LanguageSheet, opts.serialDate())
	if err != nil {
		return nil, nil, fmt.Errorf("read language registry: %w", err)
	}
	sheets, err := parser.ReadSheets(f, opts.SheetRegistry, opts.serialDate())
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet registry: %w", err)
	}
	return langs, sheets, nil
}

// assembleLanguage scans every registered content sheet for one language and
// merges the per-sheet tables into a single document. A sheet that is
// missing, unreadable or lacks a header matching the language code is skipped
// with at most a warning; an unbalanced placeholder fails the whole run.
func assembleLanguage(f *excelize.File, lang models.LanguageConfig, sheets []models.SheetConfig, opts Options, rep Reporter) (*orderedmap.OrderedMap, error) {
	serialDate := opts.serialDate()
	tables := make(map[string]*orderedmap.OrderedMap, len(sheets))

	for _, sheet := range sheets {
		grid, err := parser.ReadGrid(f, sheet.Name)
		if err != nil {
			emit(rep, LevelWarning, "cannot read sheet %q: %v", sheet.Name, err)
			continue
		}
		if len(grid) == 0 {
			continue
		}
		col := languageColumn(grid[0], lang.Code, serialDate)
		if col < 0 {
			continue
		}

		table := orderedmap.New()
		for i, row := range grid[1:] {
			rowNum := i + 2 // 1-based, header is row 1
			if len(row) == 0 {
				continue
			}
			key := parser.Normalize(row[0], serialDate)
			if key == "" {
				continue
			}
			value := ""
			if col < len(row) {
				value = parser.Normalize(row[col], serialDate)
			}
			if value == "" {
				emit(rep, LevelWarning, "empty value in sheet %q row %d language %q key %q",
					sheet.Name, rowNum, lang.Code, key)
			}
			if err := parser.CheckPlaceholders(value); err != nil {
				return nil, &PlaceholderError{Sheet: sheet.Name, Row: rowNum, Key: key, Value: value, Err: err}
			}
			table.Set(key, value)
		}
		tables[sheet.Name] = table
	}

	doc := orderedmap.New()
	for _, sheet := range sheets {
		table, ok := tables[sheet.Name]
		if !ok {
			continue
		}
		if sheet.Mode == models.ModeRoot {
			for _, k := range table.Keys() {
				v, _ := table.Get(k)
				doc.Set(k, v)
			}
		} else {
			doc.Set(sheet.Name, table)
		}
	}
	return doc, nil
}

// languageColumn returns the index of the first header cell matching the
// language code, or -1 if the sheet has no column for the language.
func languageColumn(header []models.Cell, code string, serialDate func(float64) bool) int {
	for i, c := range header {
		if parser.Normalize(c, serialDate) == code {
			return i
		}
	}
	return -1
}

// outputDir derives the per-run output directory: the workbook's stem plus a
// timestamp, next to the workbook.
func outputDir(path string, opts Options) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		stem = "export"
	}
	stamp := opts.now().Format("20060102_150405")
	return filepath.Join(filepath.Dir(path), stem+"_"+stamp)
}

// emit delivers a progress event best effort; delivery failures never abort
// the run.
func emit(rep Reporter, level Level, format string, args ...any) {
	_ = rep.Report(Event{Message: fmt.Sprintf(format, args...), Type: level})
}
