// Package main provides the CLI entry point for sheetdsl-go.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdsl-go/pkg/sheetdsl"
	"github.com/ukaji3/sheetdsl-go/pkg/sheetdsl/models"
	"github.com/ukaji3/sheetdsl-go/pkg/sheetdsl/output"
)

var (
	outputPath string
	pretty     bool
	format     string
	notation   string
	sheetsDir  string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetdsl",
		Short: "Build the demonstration spreadsheet and print its structure",
		Long: `sheetdsl builds a small spreadsheet model with the sheetdsl DSL
and prints one line per sheet and one line per cell, or JSON.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(verbose)
		},
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	rootCmd.Flags().StringVar(&notation, "notation", "native", "Reference notation: native, a1")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet JSON files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func initLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func run(cmd *cobra.Command, args []string) error {
	// Parse notation
	n, ok := sheetdsl.ParseNotation(notation)
	if !ok {
		return fmt.Errorf("invalid notation: %s (must be native or a1)", notation)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	opts := sheetdsl.DefaultOptions()
	opts.Notation = n

	s := buildDemo()
	slog.Debug("spreadsheet built", "sheets", len(s.Sheets()))

	wb, err := sheetdsl.Extract(s, "demo", opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	data, err := render(wb)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("output written", "path", outputPath, "bytes", len(data))
	} else if sheetsDir == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func render(wb *models.WorkbookData) ([]byte, error) {
	if format == "json" {
		data, err := output.ToJSON(wb, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	if err := output.WriteText(&buf, wb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Sheet names may repeat, so files are numbered.
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%02d_%s.json", i+1, sheet.Name))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
		slog.Debug("sheet written", "sheet", sheet.Name, "path", filename)
	}

	return nil
}
