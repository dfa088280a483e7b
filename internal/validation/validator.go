// =============================================================================
// Sales Analytics System - Validation and Filtering
// =============================================================================
//
// This module enforces the business rules for parsed transactions and applies
// the optional operator-supplied filters.
//
// VALIDATION RULES (checked in order, first failure rejects the record):
//   1. All required fields present and non-empty after trimming
//   2. TransactionID starts with "T", ProductID with "P", CustomerID with "C"
//   3. Quantity > 0 and UnitPrice > 0
//
// Rejections are counted, not reported individually; legacy exports contain
// enough noise that a per-record failure list adds nothing actionable.
//
// FILTERING:
//   Filters run after validation, in a fixed order: region equality first,
//   then the inclusive amount range (amount = Quantity x UnitPrice). Each
//   stage's removals are counted separately in the FilterSummary. Filtering
//   never re-validates; it only narrows the already-valid set.
//
// =============================================================================

package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// =============================================================================
// VALIDATION + FILTER PIPELINE
// =============================================================================

// ValidateAndFilter validates parsed transactions and applies the optional
// filters, returning the surviving transactions, the invalid count, and a
// per-stage summary.
func ValidateAndFilter(transactions []types.Transaction, opts types.FilterOptions) ([]types.Transaction, int, types.FilterSummary) {
	summary := types.FilterSummary{TotalInput: len(transactions)}

	valid := make([]types.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if !isValid(txn) {
			summary.Invalid++
			continue
		}
		valid = append(valid, txn)
	}

	filtered := valid
	if opts.Region != "" {
		before := len(filtered)
		filtered = filterByRegion(filtered, opts.Region)
		summary.FilteredByRegion = before - len(filtered)
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		before := len(filtered)
		filtered = filterByAmount(filtered, opts.MinAmount, opts.MaxAmount)
		summary.FilteredByAmount = before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	return filtered, summary.Invalid, summary
}

// =============================================================================
// VALIDATION RULES
// =============================================================================

// isValid applies the validation rules in order and reports whether the
// transaction passes all of them.
func isValid(txn types.Transaction) bool {
	if hasEmptyRequiredField(txn) {
		return false
	}
	if !strings.HasPrefix(txn.TransactionID, "T") {
		return false
	}
	if !strings.HasPrefix(txn.ProductID, "P") {
		return false
	}
	if !strings.HasPrefix(txn.CustomerID, "C") {
		return false
	}
	if txn.Quantity <= 0 || !txn.UnitPrice.IsPositive() {
		return false
	}
	return true
}

// hasEmptyRequiredField reports whether any required string field is empty
// after trimming. Quantity and UnitPrice are covered by the positivity rule.
func hasEmptyRequiredField(txn types.Transaction) bool {
	required := []string{
		txn.TransactionID,
		txn.Date,
		txn.ProductID,
		txn.ProductName,
		txn.CustomerID,
		txn.Region,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}
	return false
}

// =============================================================================
// FILTERS
// =============================================================================

// filterByRegion keeps transactions whose Region matches exactly.
func filterByRegion(transactions []types.Transaction, region string) []types.Transaction {
	out := make([]types.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Region == region {
			out = append(out, txn)
		}
	}
	return out
}

// filterByAmount keeps transactions whose amount falls within the inclusive
// [min, max] range. A nil bound leaves that side of the range open.
func filterByAmount(transactions []types.Transaction, min, max *decimal.Decimal) []types.Transaction {
	out := make([]types.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		amount := txn.Amount()
		if min != nil && amount.LessThan(*min) {
			continue
		}
		if max != nil && amount.GreaterThan(*max) {
			continue
		}
		out = append(out, txn)
	}
	return out
}
