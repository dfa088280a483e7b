// =============================================================================
// Sales Analytics System - Sales File Parser
// =============================================================================
//
// This module is responsible for parsing the raw pipe-delimited sales export
// into typed transaction records. The expected layout is:
//
//   TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
//   T001|2024-01-01|P101|Widget|2|50.00|C001|North
//
// The first line is always the header; it defines the expected field count
// for every data line. Lines that do not match the header's field count, or
// whose Quantity/UnitPrice cannot be parsed, are skipped and counted rather
// than treated as errors. Malformed data is expected in legacy exports and
// must never abort the run.
//
// Output order matches input order; the parser never reorders records.
//
// =============================================================================

package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// Delimiter is the field separator used by the sales export.
const Delimiter = "|"

// =============================================================================
// PARSED FILE STRUCTURE
// =============================================================================

// ParsedFile represents the parsed sales file.
type ParsedFile struct {
	// Header contains the column names from the first line.
	Header []string

	// Transactions contains the parsed records, in input order.
	Transactions []types.Transaction

	// Skipped is the number of data lines dropped for a field-count mismatch
	// or an unparsable Quantity/UnitPrice.
	Skipped int

	// RowCount is the number of data lines in the input (excluding the header).
	RowCount int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse turns raw non-empty text lines into transaction records.
//
// The first line is taken as the header. Each subsequent line is split on the
// pipe delimiter and converted to a Transaction. Lines are skipped (and
// counted in Skipped) when:
//   - the field count differs from the header's field count, or
//   - Quantity is not an integer, or
//   - UnitPrice is not a decimal number.
//
// Numeric fields are parsed after trimming surrounding whitespace and
// removing thousands-separator commas. All other fields are taken as trimmed
// strings; business validation happens later in the validation package.
func Parse(lines []string) *ParsedFile {
	parsed := &ParsedFile{}
	if len(lines) == 0 {
		return parsed
	}

	parsed.Header = strings.Split(lines[0], Delimiter)
	parsed.RowCount = len(lines) - 1

	for _, line := range lines[1:] {
		parts := strings.Split(line, Delimiter)
		if len(parts) != len(parsed.Header) {
			parsed.Skipped++
			continue
		}

		txn, ok := parseRecord(parts)
		if !ok {
			parsed.Skipped++
			continue
		}
		parsed.Transactions = append(parsed.Transactions, txn)
	}

	return parsed
}

// parseRecord converts one split data line into a Transaction.
// It returns ok=false when the line is too short or a numeric field cannot
// be parsed.
func parseRecord(parts []string) (types.Transaction, bool) {
	if len(parts) < 8 {
		return types.Transaction{}, false
	}

	quantity, err := strconv.Atoi(cleanNumeric(parts[4]))
	if err != nil {
		return types.Transaction{}, false
	}

	unitPrice, err := decimal.NewFromString(cleanNumeric(parts[5]))
	if err != nil {
		return types.Transaction{}, false
	}

	return types.Transaction{
		TransactionID: strings.TrimSpace(parts[0]),
		Date:          strings.TrimSpace(parts[1]),
		ProductID:     strings.TrimSpace(parts[2]),
		ProductName:   strings.TrimSpace(parts[3]),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(parts[6]),
		Region:        strings.TrimSpace(parts[7]),
	}, true
}

// cleanNumeric prepares a raw numeric field for parsing by trimming
// whitespace and stripping thousands-separator commas (e.g. "1,250.00").
func cleanNumeric(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
}
