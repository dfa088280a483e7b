// =============================================================================
// Sales Analytics System - XLSX Export
// =============================================================================
//
// This module writes the enriched transaction set as an XLSX workbook for
// consumers who want the data in a spreadsheet instead of the pipe-delimited
// file. The workbook has a single "Enriched" sheet: a bold header row with
// the same twelve columns as the delimited file, then one row per
// transaction. Both outputs share the row rendering in pkg/utils, so they
// can never drift apart.
//
// The export is optional; it runs only when an output path is configured.
//
// =============================================================================

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
	"github.com/nawadeharshada-create/sales-analytics-system/pkg/utils"
)

// sheetName is the single data sheet in the exported workbook.
const sheetName = "Enriched"

// WriteEnrichedWorkbook writes enriched transactions as an XLSX workbook at
// path, creating parent directories as needed.
func WriteEnrichedWorkbook(transactions []types.EnrichedTransaction, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return err
	}

	for i, txn := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := toCellValues(utils.EnrichedRow(txn))
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeHeader writes the bold header row.
func writeHeader(f *excelize.File) error {
	header := toCellValues(utils.EnrichedHeader)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(utils.EnrichedHeader), 1)
	if err != nil {
		return fmt.Errorf("failed to address header row: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}
	return nil
}

// toCellValues converts a string row into the interface slice excelize wants.
func toCellValues(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
