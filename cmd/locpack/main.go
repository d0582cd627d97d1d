// Package main provides the CLI entry point for locpack-go.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kotoba-tools/locpack-go/pkg/locpack"
)

var (
	langSheet     string
	sheetRegistry string
	quiet         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "locpack [input.xlsx]",
		Short: "Export localization workbooks to per-language JSON packs",
		Long: `locpack reads a workbook's language and sheet registries, extracts every
language's strings from the content sheets, writes one JSON file per language
and archives the result.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&langSheet, "lang-sheet", locpack.DefaultLanguageSheet, "Name of the language registry sheet")
	rootCmd.Flags().StringVar(&sheetRegistry, "sheet-registry", locpack.DefaultSheetRegistry, "Name of the sheet registry sheet")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print warnings and errors")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := locpack.DefaultOptions()
	opts.LanguageSheet = langSheet
	opts.SheetRegistry = sheetRegistry

	logger := log.New(os.Stderr, "", 0)
	rep := locpack.ReporterFunc(func(e locpack.Event) error {
		if quiet && (e.Type == locpack.LevelInfo || e.Type == locpack.LevelSuccess) {
			return nil
		}
		logger.Printf("[%s] %s", e.Type, e.Message)
		return nil
	})

	res, err := locpack.Export(inputPath, opts, rep)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Println(res.Summary())
	return nil
}
