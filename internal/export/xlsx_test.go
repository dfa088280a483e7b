package export

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
	"github.com/nawadeharshada-create/sales-analytics-system/pkg/utils"
)

func TestWriteEnrichedWorkbook(t *testing.T) {
	brand := "Acme"
	transactions := []types.EnrichedTransaction{
		{
			Transaction: types.Transaction{
				TransactionID: "T001",
				Date:          "2024-01-01",
				ProductID:     "P101",
				ProductName:   "Widget",
				Quantity:      2,
				UnitPrice:     decimal.NewFromFloat(50),
				CustomerID:    "C001",
				Region:        "North",
			},
			APIBrand: &brand,
			APIMatch: true,
		},
		{
			Transaction: types.Transaction{
				TransactionID: "T002",
				Date:          "2024-01-02",
				ProductID:     "P999",
				ProductName:   "Gadget",
				Quantity:      1,
				UnitPrice:     decimal.NewFromFloat(20),
				CustomerID:    "C002",
				Region:        "South",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "enriched.xlsx")
	require.NoError(t, WriteEnrichedWorkbook(transactions, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Enriched")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, utils.EnrichedHeader, rows[0])
	assert.Equal(t, "T001", rows[1][0])
	assert.Equal(t, "Acme", rows[1][9])
	assert.Equal(t, "true", rows[1][11])
	assert.Equal(t, "false", rows[2][11])
}

func TestWriteEnrichedWorkbookEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.xlsx")
	require.NoError(t, WriteEnrichedWorkbook(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Enriched")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, utils.EnrichedHeader, rows[0])
}
