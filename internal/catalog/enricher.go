// =============================================================================
// Sales Analytics System - Catalog Enrichment
// =============================================================================
//
// This module joins validated transactions against the product catalog.
// The join key is the numeric id embedded in a transaction's ProductID
// ("P101" -> 101), looked up in a mapping built once per run from the
// fetched catalog entries.
//
// The join never mutates the original transactions and never fails the whole
// batch: a transaction without a usable id, or without a catalog match, is
// simply marked APIMatch=false with nil metadata.
//
// =============================================================================

package catalog

import (
	"regexp"
	"strconv"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// digitRun matches the first maximal run of decimal digits in a ProductID.
var digitRun = regexp.MustCompile(`\d+`)

// =============================================================================
// MAPPING
// =============================================================================

// BuildMapping indexes catalog entries by their numeric id.
// Entries without a usable id (zero or negative) are skipped silently.
func BuildMapping(entries []types.CatalogEntry) map[int]types.CatalogEntry {
	mapping := make(map[int]types.CatalogEntry, len(entries))
	for _, entry := range entries {
		if entry.ID <= 0 {
			continue
		}
		mapping[entry.ID] = entry
	}
	return mapping
}

// ExtractNumericID extracts the first maximal run of decimal digits anywhere
// in a ProductID string and parses it as an integer.
// Returns ok=false when the string contains no digits ("no id" is distinct
// from id zero).
func ExtractNumericID(productID string) (int, bool) {
	match := digitRun.FindString(productID)
	if match == "" {
		return 0, false
	}

	id, err := strconv.Atoi(match)
	if err != nil {
		// A digit run too long for an int. No catalog id is this large.
		return 0, false
	}
	return id, true
}

// =============================================================================
// JOIN
// =============================================================================

// Enrich joins each transaction against the catalog mapping, producing a new
// enriched record per transaction. Originals are left untouched.
//
// A transaction is enriched (APIMatch=true, metadata attached) when a catalog
// entry exists for the numeric id extracted from its ProductID; otherwise it
// is marked unmatched with nil metadata. With an empty mapping every
// transaction comes back unmatched.
func Enrich(transactions []types.Transaction, mapping map[int]types.CatalogEntry) []types.EnrichedTransaction {
	enriched := make([]types.EnrichedTransaction, 0, len(transactions))

	for _, txn := range transactions {
		row := types.EnrichedTransaction{Transaction: txn}

		if id, ok := ExtractNumericID(txn.ProductID); ok {
			if entry, found := mapping[id]; found {
				category := entry.Category
				brand := entry.Brand
				row.APICategory = &category
				row.APIBrand = &brand
				row.APIRating = entry.Rating
				row.APIMatch = true
			}
		}

		enriched = append(enriched, row)
	}

	return enriched
}
