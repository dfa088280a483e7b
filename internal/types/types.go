// =============================================================================
// Sales Analytics System - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - parser
//   - validation
//   - analytics
//   - catalog
//   - report
//
// =============================================================================

package types

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction represents a single validated sales record parsed from one
// line of the pipe-delimited input file.
//
// A Transaction is treated as immutable once parsed: enrichment produces a
// new EnrichedTransaction rather than mutating the original record.
type Transaction struct {
	// TransactionID is the record identifier. Valid IDs start with "T".
	TransactionID string

	// Date is the transaction date as an ISO-like "YYYY-MM-DD" string.
	// It is deliberately kept as a string; all date grouping and ordering
	// is lexicographic.
	Date string

	// ProductID is the product identifier. Valid IDs start with "P" and may
	// embed a numeric suffix (e.g. "P101") used for catalog enrichment.
	ProductID string

	// ProductName is the human-readable product name.
	ProductName string

	// Quantity is the number of units sold. Must be > 0 for a valid record.
	Quantity int

	// UnitPrice is the price per unit. Must be > 0 for a valid record.
	UnitPrice decimal.Decimal

	// CustomerID is the customer identifier. Valid IDs start with "C".
	CustomerID string

	// Region is the sales region name.
	Region string
}

// Amount returns the transaction amount (Quantity x UnitPrice).
// The amount is always derived, never stored on the record.
func (t Transaction) Amount() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// =============================================================================
// CATALOG TYPES
// =============================================================================

// CatalogEntry represents one product from the remote catalog service.
type CatalogEntry struct {
	// ID is the numeric catalog identifier used for the enrichment join.
	ID int `json:"id"`

	// Title is the catalog product title.
	Title string `json:"title"`

	// Category is the catalog product category.
	Category string `json:"category"`

	// Brand is the catalog product brand. May be empty.
	Brand string `json:"brand"`

	// Rating is the catalog rating, or nil when the catalog omits it.
	Rating *float64 `json:"rating"`
}

// EnrichedTransaction is a Transaction plus the catalog metadata attached by
// the enrichment join. The API_* fields are nil when no catalog entry matched.
type EnrichedTransaction struct {
	Transaction

	// APICategory is the matched catalog category, or nil without a match.
	APICategory *string

	// APIBrand is the matched catalog brand, or nil without a match.
	APIBrand *string

	// APIRating is the matched catalog rating, or nil without a match.
	APIRating *float64

	// APIMatch reports whether a catalog entry was found for the numeric id
	// extracted from ProductID.
	APIMatch bool
}

// =============================================================================
// FILTER TYPES
// =============================================================================

// FilterOptions holds the optional filters applied after validation.
// Zero values mean "no filter": an empty Region disables the region filter,
// and nil bounds disable the corresponding side of the amount filter.
type FilterOptions struct {
	// Region filters to transactions whose Region matches exactly.
	Region string

	// MinAmount is the inclusive lower bound on the transaction amount.
	MinAmount *decimal.Decimal

	// MaxAmount is the inclusive upper bound on the transaction amount.
	MaxAmount *decimal.Decimal
}

// FilterSummary reports what validation and filtering removed, stage by stage.
type FilterSummary struct {
	// TotalInput is the number of parsed transactions handed to validation.
	TotalInput int

	// Invalid is the number of transactions rejected by validation rules.
	Invalid int

	// FilteredByRegion is the number removed by the region filter.
	FilteredByRegion int

	// FilteredByAmount is the number removed by the amount-range filter.
	FilteredByAmount int

	// FinalCount is the number of transactions that survived every stage.
	FinalCount int
}
