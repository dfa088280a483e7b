package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

func txn(id, date, product string, qty int, price string, customer, region string) types.Transaction {
	return types.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     "P101",
		ProductName:   product,
		Quantity:      qty,
		UnitPrice:     decimal.RequireFromString(price),
		CustomerID:    customer,
		Region:        region,
	}
}

func sampleTransactions() []types.Transaction {
	return []types.Transaction{
		txn("T001", "2024-01-01", "Widget", 2, "50", "C001", "North"),   // 100
		txn("T002", "2024-01-01", "Gadget", 1, "20", "C002", "South"),   // 20
		txn("T003", "2024-01-02", "Widget", 3, "50", "C001", "North"),   // 150
		txn("T004", "2024-01-02", "Doohickey", 5, "10", "C003", "East"), // 50
		txn("T005", "2024-01-03", "Gadget", 4, "20", "C002", "South"),   // 80
	}
}

func TestTotalRevenue(t *testing.T) {
	total := TotalRevenue(sampleTransactions())
	assert.True(t, total.Equal(decimal.NewFromInt(400)), "got %s", total)

	assert.True(t, TotalRevenue(nil).IsZero())
}

func TestRegionWiseSales(t *testing.T) {
	regions := RegionWiseSales(sampleTransactions())
	require.Len(t, regions, 3)

	// Ordered by total sales descending.
	assert.Equal(t, "North", regions[0].Region)
	assert.Equal(t, "South", regions[1].Region)
	assert.Equal(t, "East", regions[2].Region)

	assert.True(t, regions[0].TotalSales.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, regions[0].TransactionCount)
	assert.Equal(t, "62.5", regions[0].Percentage.String())
	assert.Equal(t, "25", regions[1].Percentage.String())
	assert.Equal(t, "12.5", regions[2].Percentage.String())
}

// The region totals must reconcile with the directly computed total revenue,
// and percentages must sum to 100 within rounding.
func TestRegionTotalsReconcile(t *testing.T) {
	txns := sampleTransactions()
	regions := RegionWiseSales(txns)

	sum := decimal.Zero
	pct := decimal.Zero
	for _, r := range regions {
		sum = sum.Add(r.TotalSales)
		pct = pct.Add(r.Percentage)
	}

	assert.True(t, sum.Equal(TotalRevenue(txns)))
	diff := pct.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")), "percentages sum to %s", pct)
}

func TestRegionWiseSalesZeroRevenue(t *testing.T) {
	regions := RegionWiseSales(nil)
	assert.Empty(t, regions)
}

func TestTopSellingProducts(t *testing.T) {
	top := TopSellingProducts(sampleTransactions(), 2)
	require.Len(t, top, 2)

	// Widget 5, Gadget 5, Doohickey 5 - all tie, so first-seen order wins.
	assert.Equal(t, "Widget", top[0].ProductName)
	assert.Equal(t, 5, top[0].QuantitySold)
	assert.True(t, top[0].Revenue.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "Gadget", top[1].ProductName)
}

func TestTopSellingProductsFewerThanN(t *testing.T) {
	top := TopSellingProducts(sampleTransactions(), 10)
	assert.Len(t, top, 3)
}

func TestLowPerformingProducts(t *testing.T) {
	txns := []types.Transaction{
		txn("T001", "2024-01-01", "Slow", 5, "10", "C001", "North"),
		txn("T002", "2024-01-01", "Fast", 15, "10", "C001", "North"),
		txn("T003", "2024-01-01", "Borderline", 10, "10", "C001", "North"),
	}

	low := LowPerformingProducts(txns, 10)
	require.Len(t, low, 1)
	assert.Equal(t, "Slow", low[0].ProductName)
	assert.Equal(t, 5, low[0].QuantitySold)
}

func TestLowPerformingProductsSortedAscending(t *testing.T) {
	txns := []types.Transaction{
		txn("T001", "2024-01-01", "B", 7, "10", "C001", "North"),
		txn("T002", "2024-01-01", "A", 3, "10", "C001", "North"),
	}

	low := LowPerformingProducts(txns, 10)
	require.Len(t, low, 2)
	assert.Equal(t, "A", low[0].ProductName)
	assert.Equal(t, "B", low[1].ProductName)
}

func TestCustomerAnalysis(t *testing.T) {
	customers := CustomerAnalysis(sampleTransactions())
	require.Len(t, customers, 3)

	// C001 spent 250, C002 spent 100, C003 spent 50.
	assert.Equal(t, "C001", customers[0].CustomerID)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 2, customers[0].PurchaseCount)
	assert.Equal(t, "125", customers[0].AvgOrderValue.String())
	assert.ElementsMatch(t, []string{"Widget"}, customers[0].DistinctProducts)

	assert.Equal(t, "C002", customers[1].CustomerID)
	assert.Equal(t, "C003", customers[2].CustomerID)
}

func TestCustomerDistinctProducts(t *testing.T) {
	txns := []types.Transaction{
		txn("T001", "2024-01-01", "Widget", 1, "10", "C001", "North"),
		txn("T002", "2024-01-01", "Widget", 1, "10", "C001", "North"),
		txn("T003", "2024-01-01", "Gadget", 1, "10", "C001", "North"),
	}

	customers := CustomerAnalysis(txns)
	require.Len(t, customers, 1)
	assert.ElementsMatch(t, []string{"Widget", "Gadget"}, customers[0].DistinctProducts)
}

func TestDailySalesTrend(t *testing.T) {
	trend := DailySalesTrend(sampleTransactions())
	require.Len(t, trend, 3)

	// Date ascending.
	assert.Equal(t, "2024-01-01", trend[0].Date)
	assert.Equal(t, "2024-01-02", trend[1].Date)
	assert.Equal(t, "2024-01-03", trend[2].Date)

	assert.True(t, trend[0].Revenue.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 2, trend[0].TransactionCount)
	assert.Equal(t, 2, trend[0].UniqueCustomers)

	assert.Equal(t, 1, trend[2].UniqueCustomers)
}

func TestPeakSalesDay(t *testing.T) {
	trend := DailySalesTrend(sampleTransactions())
	peak, ok := PeakSalesDay(trend)
	require.True(t, ok)
	assert.Equal(t, "2024-01-02", peak.Date)
	assert.True(t, peak.Revenue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, peak.TransactionCount)
}

func TestPeakSalesDayEmptyTrend(t *testing.T) {
	_, ok := PeakSalesDay(nil)
	assert.False(t, ok)
}

// Ties on revenue resolve to the earliest date.
func TestPeakSalesDayTieBreak(t *testing.T) {
	txns := []types.Transaction{
		txn("T001", "2024-01-02", "Widget", 1, "100", "C001", "North"),
		txn("T002", "2024-01-01", "Widget", 1, "100", "C001", "North"),
	}

	peak, ok := PeakSalesDay(DailySalesTrend(txns))
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", peak.Date)
}

// Aggregations are pure: re-running them on the same input accumulates
// nothing and yields identical results.
func TestAggregationIdempotence(t *testing.T) {
	txns := sampleTransactions()

	first := RegionWiseSales(txns)
	second := RegionWiseSales(txns)
	assert.Equal(t, first, second)

	assert.Equal(t, TopSellingProducts(txns, 5), TopSellingProducts(txns, 5))
	assert.Equal(t, CustomerAnalysis(txns), CustomerAnalysis(txns))
	assert.Equal(t, DailySalesTrend(txns), DailySalesTrend(txns))
	assert.True(t, TotalRevenue(txns).Equal(TotalRevenue(txns)))
}
