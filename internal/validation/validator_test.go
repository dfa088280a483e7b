package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

func makeTxn(mutate func(*types.Transaction)) types.Transaction {
	txn := types.Transaction{
		TransactionID: "T001",
		Date:          "2024-01-01",
		ProductID:     "P101",
		ProductName:   "Widget",
		Quantity:      2,
		UnitPrice:     decimal.NewFromInt(50),
		CustomerID:    "C001",
		Region:        "North",
	}
	if mutate != nil {
		mutate(&txn)
	}
	return txn
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidationRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Transaction)
		valid  bool
	}{
		{"valid transaction", nil, true},
		{"empty transaction id", func(t *types.Transaction) { t.TransactionID = "" }, false},
		{"blank date", func(t *types.Transaction) { t.Date = "   " }, false},
		{"empty product name", func(t *types.Transaction) { t.ProductName = "" }, false},
		{"empty region", func(t *types.Transaction) { t.Region = "" }, false},
		{"transaction id wrong prefix", func(t *types.Transaction) { t.TransactionID = "X001" }, false},
		{"product id wrong prefix", func(t *types.Transaction) { t.ProductID = "Q101" }, false},
		{"customer id wrong prefix", func(t *types.Transaction) { t.CustomerID = "K001" }, false},
		{"zero quantity", func(t *types.Transaction) { t.Quantity = 0 }, false},
		{"negative quantity", func(t *types.Transaction) { t.Quantity = -1 }, false},
		{"zero unit price", func(t *types.Transaction) { t.UnitPrice = decimal.Zero }, false},
		{"negative unit price", func(t *types.Transaction) { t.UnitPrice = decimal.NewFromInt(-5) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []types.Transaction{makeTxn(tt.mutate)}
			valid, invalid, summary := ValidateAndFilter(input, types.FilterOptions{})

			if tt.valid {
				require.Len(t, valid, 1)
				assert.Equal(t, 0, invalid)
				// Accepted transactions pass through unchanged.
				assert.Equal(t, input[0], valid[0])
			} else {
				assert.Empty(t, valid)
				assert.Equal(t, 1, invalid)
			}
			assert.Equal(t, 1, summary.TotalInput)
		})
	}
}

func TestRegionFilter(t *testing.T) {
	input := []types.Transaction{
		makeTxn(nil),
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T002"; t.Region = "South" }),
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T003"; t.Region = "South" }),
	}

	valid, invalid, summary := ValidateAndFilter(input, types.FilterOptions{Region: "South"})
	require.Len(t, valid, 2)
	assert.Equal(t, 0, invalid)
	assert.Equal(t, 1, summary.FilteredByRegion)
	assert.Equal(t, 0, summary.FilteredByAmount)
	assert.Equal(t, 2, summary.FinalCount)
	for _, txn := range valid {
		assert.Equal(t, "South", txn.Region)
	}
}

func TestAmountFilterInclusiveBounds(t *testing.T) {
	// Amounts: 100, 200, 300.
	input := []types.Transaction{
		makeTxn(func(t *types.Transaction) { t.UnitPrice = decimal.NewFromInt(50) }),
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T002"; t.UnitPrice = decimal.NewFromInt(100) }),
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T003"; t.UnitPrice = decimal.NewFromInt(150) }),
	}

	valid, _, summary := ValidateAndFilter(input, types.FilterOptions{
		MinAmount: decPtr("100"),
		MaxAmount: decPtr("200"),
	})
	require.Len(t, valid, 2)
	assert.Equal(t, "T001", valid[0].TransactionID)
	assert.Equal(t, "T002", valid[1].TransactionID)
	assert.Equal(t, 1, summary.FilteredByAmount)
}

func TestAmountFilterOpenBounds(t *testing.T) {
	input := []types.Transaction{
		makeTxn(nil), // amount 100
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T002"; t.UnitPrice = decimal.NewFromInt(500) }),
	}

	valid, _, _ := ValidateAndFilter(input, types.FilterOptions{MinAmount: decPtr("150")})
	require.Len(t, valid, 1)
	assert.Equal(t, "T002", valid[0].TransactionID)

	valid, _, _ = ValidateAndFilter(input, types.FilterOptions{MaxAmount: decPtr("150")})
	require.Len(t, valid, 1)
	assert.Equal(t, "T001", valid[0].TransactionID)
}

// Invalid records are counted before filters run, and each filter stage
// reports its own removals.
func TestSummaryStageCounts(t *testing.T) {
	input := []types.Transaction{
		makeTxn(nil), // valid, North, amount 100
		makeTxn(func(t *types.Transaction) { t.TransactionID = "X002" }),                                  // invalid
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T003"; t.Region = "South" }),              // removed by region
		makeTxn(func(t *types.Transaction) { t.TransactionID = "T004"; t.UnitPrice = decimal.NewFromInt(5000) }), // removed by amount
	}

	valid, invalid, summary := ValidateAndFilter(input, types.FilterOptions{
		Region:    "North",
		MaxAmount: decPtr("1000"),
	})

	require.Len(t, valid, 1)
	assert.Equal(t, 1, invalid)
	assert.Equal(t, types.FilterSummary{
		TotalInput:       4,
		Invalid:          1,
		FilteredByRegion: 1,
		FilteredByAmount: 1,
		FinalCount:       1,
	}, summary)
}
