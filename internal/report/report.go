// =============================================================================
// Sales Analytics System - Report Assembly
// =============================================================================
//
// This module combines the aggregation views and the enrichment results into
// one structured Summary. Assembly is pure computation over the validated and
// enriched transaction sets; rendering the fixed-width text layout lives in
// render.go so the structure can be inspected (and tested) without going
// through formatting.
//
// =============================================================================

package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/analytics"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// topCustomerCount is how many customers the report's customer table shows.
const topCustomerCount = 5

// =============================================================================
// SUMMARY STRUCTURES
// =============================================================================

// Summary is the assembled report content.
type Summary struct {
	// GeneratedAt is the report generation timestamp.
	GeneratedAt time.Time

	// RunID uniquely identifies this pipeline run.
	RunID string

	// RecordCount is the number of validated transactions processed.
	RecordCount int

	// TotalRevenue is the overall revenue across all transactions.
	TotalRevenue decimal.Decimal

	// AvgOrderValue is TotalRevenue / RecordCount (zero for no records).
	AvgOrderValue decimal.Decimal

	// DateRange is "earliest to latest" over transaction dates, or "N/A".
	DateRange string

	// Regions is the region-wise sales table, total sales descending.
	Regions []analytics.RegionStats

	// TopProducts is the top-selling products table.
	TopProducts []analytics.ProductStats

	// TopCustomers are the highest-spending customers, at most five.
	TopCustomers []analytics.CustomerStats

	// DailyTrend is the per-day rollup, date ascending.
	DailyTrend []analytics.DailyStats

	// BestDay is the peak sales day. Only meaningful when HasBestDay is set.
	BestDay analytics.PeakDay

	// HasBestDay reports whether any trend data existed.
	HasBestDay bool

	// LowPerformers lists products under the quantity threshold.
	LowPerformers []analytics.ProductStats

	// RegionAverages is the average transaction value per region, in the
	// same order as Regions.
	RegionAverages []RegionAverage

	// Enrichment summarizes the catalog join outcome.
	Enrichment EnrichmentSummary
}

// RegionAverage is the average transaction value for one region.
type RegionAverage struct {
	// Region is the region name.
	Region string

	// AvgValue is total sales / transaction count for the region.
	AvgValue decimal.Decimal
}

// EnrichmentSummary describes how the catalog join went.
type EnrichmentSummary struct {
	// TotalChecked is the number of transactions run through enrichment.
	TotalChecked int

	// EnrichedCount is the number of transactions with a catalog match.
	EnrichedCount int

	// SuccessRate is EnrichedCount / TotalChecked as a percentage.
	SuccessRate float64

	// FailedProducts lists deduplicated, sorted "ProductID (ProductName)"
	// strings for transactions that failed to match.
	FailedProducts []string
}

// Options controls report assembly.
type Options struct {
	// TopProducts is how many products the top-sellers table shows.
	TopProducts int

	// LowQuantityThreshold is the low-performer quantity cutoff.
	LowQuantityThreshold int
}

// DefaultOptions returns the standard report parameters.
func DefaultOptions() Options {
	return Options{
		TopProducts:          analytics.DefaultTopN,
		LowQuantityThreshold: analytics.DefaultLowThreshold,
	}
}

// =============================================================================
// ASSEMBLY
// =============================================================================

// Assemble builds the report summary from the validated transaction set and
// the enriched transaction set.
func Assemble(transactions []types.Transaction, enriched []types.EnrichedTransaction, opts Options) Summary {
	s := Summary{
		GeneratedAt: time.Now(),
		RunID:       uuid.NewString(),
		RecordCount: len(transactions),
	}

	s.TotalRevenue = analytics.TotalRevenue(transactions)
	if len(transactions) > 0 {
		count := decimal.NewFromInt(int64(len(transactions)))
		s.AvgOrderValue = s.TotalRevenue.Div(count).Round(2)
	}
	s.DateRange = dateRange(transactions)

	s.Regions = analytics.RegionWiseSales(transactions)
	s.TopProducts = analytics.TopSellingProducts(transactions, opts.TopProducts)
	s.LowPerformers = analytics.LowPerformingProducts(transactions, opts.LowQuantityThreshold)

	customers := analytics.CustomerAnalysis(transactions)
	if len(customers) > topCustomerCount {
		customers = customers[:topCustomerCount]
	}
	s.TopCustomers = customers

	s.DailyTrend = analytics.DailySalesTrend(transactions)
	s.BestDay, s.HasBestDay = analytics.PeakSalesDay(s.DailyTrend)

	s.RegionAverages = regionAverages(s.Regions)
	s.Enrichment = enrichmentSummary(enriched)

	return s
}

// dateRange formats the min/max transaction date range, or "N/A" when no
// dates are present. Dates compare lexicographically.
func dateRange(transactions []types.Transaction) string {
	min, max := "", ""
	for _, txn := range transactions {
		if txn.Date == "" {
			continue
		}
		if min == "" || txn.Date < min {
			min = txn.Date
		}
		if txn.Date > max {
			max = txn.Date
		}
	}
	if min == "" {
		return "N/A"
	}
	return fmt.Sprintf("%s to %s", min, max)
}

// regionAverages computes the average transaction value per region from the
// region-wise stats, preserving their order.
func regionAverages(regions []analytics.RegionStats) []RegionAverage {
	averages := make([]RegionAverage, 0, len(regions))
	for _, r := range regions {
		avg := decimal.Zero
		if r.TransactionCount > 0 {
			avg = r.TotalSales.Div(decimal.NewFromInt(int64(r.TransactionCount)))
		}
		averages = append(averages, RegionAverage{Region: r.Region, AvgValue: avg})
	}
	return averages
}

// enrichmentSummary counts matches and collects the unmatched products.
func enrichmentSummary(enriched []types.EnrichedTransaction) EnrichmentSummary {
	summary := EnrichmentSummary{TotalChecked: len(enriched)}

	failed := make(map[string]struct{})
	for _, txn := range enriched {
		if txn.APIMatch {
			summary.EnrichedCount++
			continue
		}
		label := fmt.Sprintf("%s (%s)", txn.ProductID, txn.ProductName)
		failed[label] = struct{}{}
	}

	if summary.TotalChecked > 0 {
		summary.SuccessRate = float64(summary.EnrichedCount) / float64(summary.TotalChecked) * 100
	}

	summary.FailedProducts = make([]string, 0, len(failed))
	for label := range failed {
		summary.FailedProducts = append(summary.FailedProducts, label)
	}
	sort.Strings(summary.FailedProducts)

	return summary
}
