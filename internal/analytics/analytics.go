// =============================================================================
// Sales Analytics System - Aggregation Engine
// =============================================================================
//
// This module computes every analytics view from a validated transaction set:
// total revenue, region-wise sales, top-selling and low-performing products,
// customer purchase analysis, the daily sales trend, and the peak sales day.
//
// All functions here are pure: they take an immutable snapshot of the
// transaction set and return freshly constructed results. Calling a function
// twice on the same input yields identical output; nothing accumulates
// between calls, and the analyses share no state with each other.
//
// GROUPING AND ORDERING:
//   Grouping is map-based accumulation, but every result is sorted
//   explicitly before it is returned - insertion order is never relied on.
//   Where metric values tie, first-seen input order wins (stable sort over a
//   first-seen-ordered slice) so results are reproducible.
//
// =============================================================================

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// Default parameters for the product views.
const (
	// DefaultTopN is the default number of top-selling products reported.
	DefaultTopN = 5

	// DefaultLowThreshold is the default quantity below which a product is
	// considered a low performer.
	DefaultLowThreshold = 10
)

var hundred = decimal.NewFromInt(100)

// =============================================================================
// RESULT TYPES
// =============================================================================

// RegionStats is the aggregated view for one sales region.
type RegionStats struct {
	// Region is the region name.
	Region string

	// TotalSales is the summed transaction amount for the region.
	TotalSales decimal.Decimal

	// TransactionCount is the number of transactions in the region.
	TransactionCount int

	// Percentage is the region's share of overall revenue, rounded to two
	// decimal places. Zero when overall revenue is zero.
	Percentage decimal.Decimal
}

// ProductStats is the aggregated view for one product, used by both the
// top-selling and low-performer analyses.
type ProductStats struct {
	// ProductName is the product's display name (the grouping key).
	ProductName string

	// QuantitySold is the summed quantity across all transactions.
	QuantitySold int

	// Revenue is the summed revenue, rounded to two decimal places.
	Revenue decimal.Decimal
}

// CustomerStats is the aggregated purchase view for one customer.
type CustomerStats struct {
	// CustomerID is the customer identifier (the grouping key).
	CustomerID string

	// TotalSpent is the summed amount across the customer's purchases.
	TotalSpent decimal.Decimal

	// PurchaseCount is the number of transactions by the customer.
	PurchaseCount int

	// AvgOrderValue is TotalSpent / PurchaseCount, rounded to two decimals.
	AvgOrderValue decimal.Decimal

	// DistinctProducts lists the distinct product names the customer bought.
	// The list is deduplicated but deliberately unordered.
	DistinctProducts []string
}

// DailyStats is the aggregated view for one date.
type DailyStats struct {
	// Date is the transaction date string (the grouping key).
	Date string

	// Revenue is the summed revenue for the date, rounded to two decimals.
	Revenue decimal.Decimal

	// TransactionCount is the number of transactions on the date.
	TransactionCount int

	// UniqueCustomers is the number of distinct customers on the date.
	UniqueCustomers int
}

// PeakDay identifies the date with the highest revenue in a daily trend.
type PeakDay struct {
	// Date is the peak date. On revenue ties the earliest date wins.
	Date string

	// Revenue is the peak date's revenue.
	Revenue decimal.Decimal

	// TransactionCount is the number of transactions on the peak date.
	TransactionCount int
}

// =============================================================================
// REVENUE
// =============================================================================

// TotalRevenue sums Quantity x UnitPrice over all transactions.
func TotalRevenue(transactions []types.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Amount())
	}
	return total
}

// =============================================================================
// REGION ANALYSIS
// =============================================================================

// RegionWiseSales groups transactions by region and computes each region's
// total sales, transaction count, and share of overall revenue. Results are
// ordered by total sales descending; ties keep first-seen order.
func RegionWiseSales(transactions []types.Transaction) []RegionStats {
	index := make(map[string]int)
	stats := make([]RegionStats, 0)
	overall := decimal.Zero

	for _, txn := range transactions {
		amount := txn.Amount()
		overall = overall.Add(amount)

		i, ok := index[txn.Region]
		if !ok {
			i = len(stats)
			index[txn.Region] = i
			stats = append(stats, RegionStats{Region: txn.Region})
		}
		stats[i].TotalSales = stats[i].TotalSales.Add(amount)
		stats[i].TransactionCount++
	}

	for i := range stats {
		if overall.IsZero() {
			stats[i].Percentage = decimal.Zero
			continue
		}
		stats[i].Percentage = stats[i].TotalSales.Mul(hundred).Div(overall).Round(2)
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSales.GreaterThan(stats[b].TotalSales)
	})
	return stats
}

// =============================================================================
// PRODUCT ANALYSIS
// =============================================================================

// TopSellingProducts groups transactions by product name and returns the n
// products with the highest summed quantity, ordered by quantity descending.
// Quantity ties keep first-seen order.
func TopSellingProducts(transactions []types.Transaction, n int) []ProductStats {
	stats := productRollup(transactions)

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].QuantitySold > stats[b].QuantitySold
	})

	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// LowPerformingProducts returns products whose summed quantity is strictly
// below threshold, ordered by quantity ascending.
func LowPerformingProducts(transactions []types.Transaction, threshold int) []ProductStats {
	rollup := productRollup(transactions)

	low := make([]ProductStats, 0)
	for _, p := range rollup {
		if p.QuantitySold < threshold {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(a, b int) bool {
		return low[a].QuantitySold < low[b].QuantitySold
	})
	return low
}

// productRollup accumulates quantity and revenue per product name, in
// first-seen order. Revenue is rounded to two decimals at the end so
// accumulation stays exact.
func productRollup(transactions []types.Transaction) []ProductStats {
	index := make(map[string]int)
	stats := make([]ProductStats, 0)

	for _, txn := range transactions {
		i, ok := index[txn.ProductName]
		if !ok {
			i = len(stats)
			index[txn.ProductName] = i
			stats = append(stats, ProductStats{ProductName: txn.ProductName})
		}
		stats[i].QuantitySold += txn.Quantity
		stats[i].Revenue = stats[i].Revenue.Add(txn.Amount())
	}

	for i := range stats {
		stats[i].Revenue = stats[i].Revenue.Round(2)
	}
	return stats
}

// =============================================================================
// CUSTOMER ANALYSIS
// =============================================================================

// CustomerAnalysis groups transactions by customer and computes total spent,
// purchase count, average order value, and the set of distinct products
// bought. Results are ordered by total spent descending; ties keep
// first-seen order.
func CustomerAnalysis(transactions []types.Transaction) []CustomerStats {
	index := make(map[string]int)
	stats := make([]CustomerStats, 0)
	products := make([]map[string]struct{}, 0)

	for _, txn := range transactions {
		i, ok := index[txn.CustomerID]
		if !ok {
			i = len(stats)
			index[txn.CustomerID] = i
			stats = append(stats, CustomerStats{CustomerID: txn.CustomerID})
			products = append(products, make(map[string]struct{}))
		}
		stats[i].TotalSpent = stats[i].TotalSpent.Add(txn.Amount())
		stats[i].PurchaseCount++
		products[i][txn.ProductName] = struct{}{}
	}

	for i := range stats {
		count := decimal.NewFromInt(int64(stats[i].PurchaseCount))
		stats[i].AvgOrderValue = stats[i].TotalSpent.Div(count).Round(2)

		distinct := make([]string, 0, len(products[i]))
		for name := range products[i] {
			distinct = append(distinct, name)
		}
		stats[i].DistinctProducts = distinct
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSpent.GreaterThan(stats[b].TotalSpent)
	})
	return stats
}

// =============================================================================
// DATE ANALYSIS
// =============================================================================

// DailySalesTrend groups transactions by date string and computes revenue,
// transaction count, and distinct-customer count per day. Results are ordered
// by date string ascending (lexicographic; dates are never parsed).
func DailySalesTrend(transactions []types.Transaction) []DailyStats {
	index := make(map[string]int)
	stats := make([]DailyStats, 0)
	customers := make([]map[string]struct{}, 0)

	for _, txn := range transactions {
		i, ok := index[txn.Date]
		if !ok {
			i = len(stats)
			index[txn.Date] = i
			stats = append(stats, DailyStats{Date: txn.Date})
			customers = append(customers, make(map[string]struct{}))
		}
		stats[i].Revenue = stats[i].Revenue.Add(txn.Amount())
		stats[i].TransactionCount++
		customers[i][txn.CustomerID] = struct{}{}
	}

	for i := range stats {
		stats[i].Revenue = stats[i].Revenue.Round(2)
		stats[i].UniqueCustomers = len(customers[i])
	}

	sort.Slice(stats, func(a, b int) bool {
		return stats[a].Date < stats[b].Date
	})
	return stats
}

// PeakSalesDay picks the date with the maximum revenue from a daily trend.
// The trend is date-ascending and the comparison is strict, so the earliest
// date wins revenue ties. Returns ok=false for an empty trend.
func PeakSalesDay(trend []DailyStats) (PeakDay, bool) {
	if len(trend) == 0 {
		return PeakDay{}, false
	}

	peak := PeakDay{
		Date:             trend[0].Date,
		Revenue:          trend[0].Revenue,
		TransactionCount: trend[0].TransactionCount,
	}
	for _, day := range trend[1:] {
		if day.Revenue.GreaterThan(peak.Revenue) {
			peak = PeakDay{
				Date:             day.Date,
				Revenue:          day.Revenue,
				TransactionCount: day.TransactionCount,
			}
		}
	}
	return peak, true
}
