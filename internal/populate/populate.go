// Package populate generates the fixture dataset and writes it as a workbook
// with one named, styled table per sheet.
package populate

import (
	"errors"
	"fmt"
	"os"
	"time"
	"wbfix/internal/config"
	"wbfix/internal/excel"
	"wbfix/internal/fixtures"
	"wbfix/internal/logger"

	"github.com/google/uuid"
)

const (
	workbookTitle = "Accounting test fixtures"

	minColumnWidth = 8
	maxColumnWidth = 40
)

// Params converts the generate section of cfg into generator parameters.
func Params(cfg config.GenerateConfig) (fixtures.Params, error) {
	start, err := cfg.StartDate()
	if err != nil {
		return fixtures.Params{}, err
	}
	return fixtures.Params{
		AccountCount:    cfg.AccountCount,
		AllocationCount: cfg.AllocationCount,
		NoteCount:       cfg.NoteCount,
		IssueCount:      cfg.IssueCount,
		Window:          fixtures.DateWindow{Start: start, SpanDays: cfg.DateSpanDays},
	}, nil
}

// Generate builds a dataset from cfg without touching the disk.
func Generate(cfg *config.Config) (*fixtures.Dataset, error) {
	params, err := Params(cfg.Generate)
	if err != nil {
		return nil, err
	}
	return fixtures.Generate(fixtures.NewGenerator(cfg.Generate.Seed), params)
}

// Run removes any previous output, generates a fresh dataset and writes it.
func Run(cfg *config.Config) (*fixtures.Summary, error) {
	runID := uuid.NewString()
	logger.Info("Starting populate operation", "run_id", runID, "output", cfg.Output.Path)

	ds, err := Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fixtures: %w", err)
	}
	logger.Info("Generated fixture data", "run_id", runID, "seed", ds.Seed, "accounts", len(ds.Accounts))

	summary, err := WriteDataset(ds, cfg.Output.Path, cfg.Output.TableStyle, runID)
	if err != nil {
		logger.Error("Populate operation failed", "run_id", runID, "error", err)
		return nil, err
	}

	logger.Info("Populate operation completed", "run_id", runID, "tables", len(summary.Tables))
	return summary, nil
}

// WriteDataset replaces the file at path with the dataset's tables.
func WriteDataset(ds *fixtures.Dataset, path, style, runID string) (*fixtures.Summary, error) {
	if err := removeExisting(path); err != nil {
		return nil, err
	}

	editor := excel.CreateNewFile()
	defer editor.Close()

	tables := ds.Tables()
	for i, table := range tables {
		if err := addSheet(editor, i, table.Sheet); err != nil {
			return nil, err
		}
		if err := writeTable(editor, table, style); err != nil {
			return nil, err
		}
		logger.Debug("Wrote table", "table", table.Name, "sheet", table.Sheet, "rows", len(table.Rows))
	}

	if len(tables) > 0 {
		if err := editor.SetActiveSheet(tables[0].Sheet); err != nil {
			return nil, fmt.Errorf("failed to activate %s: %w", tables[0].Sheet, err)
		}
	}
	if err := editor.SetProperties(workbookTitle, runID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}
	if err := editor.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", path, err)
	}

	summary := fixtures.Summarize(ds, tables)
	summary.RunID = runID
	summary.OutputPath = path
	return summary, nil
}

func removeExisting(path string) error {
	err := os.Remove(path)
	if err == nil {
		logger.Info("Removed previous workbook", "path", path)
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to remove old workbook %s: %w", path, err)
}

// addSheet reuses the default sheet a new file starts with for the first table.
func addSheet(editor *excel.Editor, index int, name string) error {
	if index == 0 {
		sheets := editor.GetSheetNames()
		if len(sheets) > 0 {
			return editor.RenameSheet(sheets[0], name)
		}
	}
	if err := editor.AddSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	return nil
}

func writeTable(editor *excel.Editor, table fixtures.Table, style string) error {
	header := make([]any, len(table.Columns))
	for i, column := range table.Columns {
		header[i] = column
	}
	if err := editor.SetRow(table.Sheet, 1, header); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := editor.SetRow(table.Sheet, i+2, row); err != nil {
			return err
		}
	}

	lastRow := len(table.Rows) + 1
	for _, col := range table.AmountColumns {
		if err := editor.ApplyFloatFormatting(table.Sheet, col, 2, lastRow); err != nil {
			return err
		}
	}
	if err := editor.SetColumnWidths(table.Sheet, columnWidths(table)); err != nil {
		return err
	}

	ref, err := excel.TableRef(len(table.Columns), len(table.Rows))
	if err != nil {
		return fmt.Errorf("failed to compute range for %s: %w", table.Name, err)
	}
	return editor.AddTable(table.Sheet, table.Name, ref, style)
}

// columnWidths sizes each column to its longest rendered value, with room
// for the table's filter button on the header.
func columnWidths(table fixtures.Table) []float64 {
	widths := make([]float64, len(table.Columns))
	for i, column := range table.Columns {
		widths[i] = float64(len(column) + 3)
	}
	for _, row := range table.Rows {
		for i, value := range row {
			if w := float64(len(fmt.Sprint(value)) + 2); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, w := range widths {
		if w < minColumnWidth {
			widths[i] = minColumnWidth
		}
		if w > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}
