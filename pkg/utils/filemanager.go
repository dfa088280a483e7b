// =============================================================================
// Sales Analytics System - File Manager Utility
// =============================================================================
//
// This module provides the file collaborators the pipeline core depends on:
//   - Line reading (raw sales export -> trimmed non-empty lines)
//   - Enriched data writing (pipe-delimited, fixed header)
//   - Text file writing with directory creation (report output)
//
// READ STRATEGY:
//   A missing or unreadable input file yields an empty line slice, never an
//   error to the caller. The pipeline reports "no data" and stops cleanly
//   instead of crashing on a bad path.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// EnrichedHeader lists the enriched data file's columns, in output order.
var EnrichedHeader = []string{
	"TransactionID",
	"Date",
	"ProductID",
	"ProductName",
	"Quantity",
	"UnitPrice",
	"CustomerID",
	"Region",
	"API_Category",
	"API_Brand",
	"API_Rating",
	"API_Match",
}

// =============================================================================
// READING
// =============================================================================

// ReadLines reads a text file and returns its non-empty lines, trimmed of
// surrounding whitespace. A missing or unreadable file returns an empty
// slice rather than an error.
func ReadLines(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if scanner.Err() != nil {
		return nil
	}
	return lines
}

// =============================================================================
// WRITING
// =============================================================================

// WriteEnrichedData writes enriched transactions as a pipe-delimited file
// with the fixed 12-column header. Nil metadata renders as an empty string
// and the match flag renders as "true"/"false". Parent directories are
// created as needed.
func WriteEnrichedData(transactions []types.EnrichedTransaction, path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, strings.Join(EnrichedHeader, "|"))
	for _, txn := range transactions {
		fmt.Fprintln(w, strings.Join(EnrichedRow(txn), "|"))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write enriched file: %w", err)
	}
	return nil
}

// EnrichedRow renders one enriched transaction as its column values, in
// EnrichedHeader order. Shared with the XLSX export so both outputs agree.
func EnrichedRow(txn types.EnrichedTransaction) []string {
	return []string{
		txn.TransactionID,
		txn.Date,
		txn.ProductID,
		txn.ProductName,
		strconv.Itoa(txn.Quantity),
		txn.UnitPrice.String(),
		txn.CustomerID,
		txn.Region,
		stringOrEmpty(txn.APICategory),
		stringOrEmpty(txn.APIBrand),
		floatOrEmpty(txn.APIRating),
		strconv.FormatBool(txn.APIMatch),
	}
}

// WriteTextFile writes content to path, creating parent directories first.
func WriteTextFile(path, content string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ensureParentDir creates the parent directory of path if it doesn't exist.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// stringOrEmpty renders a nullable string value.
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// floatOrEmpty renders a nullable numeric value.
func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
