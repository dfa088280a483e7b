// =============================================================================
// Sales Analytics System - Report Rendering
// =============================================================================
//
// This module renders an assembled Summary as the fixed-section plain-text
// report. The layout is the one operations already consumes from the legacy
// tooling: 55-character section rules, a centred header block, text columns
// left-aligned, numeric columns right-aligned, currency with a symbol and
// thousands grouping, percentages with two decimals.
//
// REPORT SECTIONS:
//   1. Header (generated timestamp, run id, record count)
//   2. Overall summary
//   3. Region-wise performance
//   4. Top 5 products
//   5. Top 5 customers
//   6. Daily sales trend
//   7. Product performance (best day, low performers, region averages)
//   8. API enrichment summary
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nawadeharshada-create/sales-analytics-system/pkg/utils"
)

// reportWidth is the section rule width. Column widths below are chosen to
// stay consistent with it.
const reportWidth = 55

// RenderOptions controls report presentation.
type RenderOptions struct {
	// CurrencySymbol prefixes every rendered currency value.
	CurrencySymbol string
}

// DefaultRenderOptions returns the standard presentation settings.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{CurrencySymbol: "₹"}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render produces the full plain-text report for a summary.
func Render(s Summary, opts RenderOptions) string {
	var b strings.Builder
	money := func(d decimal.Decimal) string {
		return FormatCurrency(d, opts.CurrencySymbol)
	}

	// Header block.
	b.WriteString(rule("=") + "\n")
	b.WriteString(center("SALES ANALYTICS REPORT") + "\n")
	b.WriteString(center("Generated: "+s.GeneratedAt.Format("2006-01-02 15:04:05")) + "\n")
	b.WriteString(center("Run ID: "+s.RunID) + "\n")
	b.WriteString(center(fmt.Sprintf("Records Processed: %d", s.RecordCount)) + "\n")
	b.WriteString(rule("=") + "\n\n")

	// Overall summary.
	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(&b, "Total Revenue:         %s\n", money(s.TotalRevenue))
	fmt.Fprintf(&b, "Total Transactions:    %d\n", s.RecordCount)
	fmt.Fprintf(&b, "Average Order Value:   %s\n", money(s.AvgOrderValue))
	fmt.Fprintf(&b, "Date Range:            %s\n\n", s.DateRange)

	// Region-wise performance.
	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(&b, "%-10s%15s%12s%14s\n", "Region", "Sales", "% of Total", "Transactions")
	for _, r := range s.Regions {
		fmt.Fprintf(&b, "%-10s%15s%12s%14d\n",
			r.Region, money(r.TotalSales), r.Percentage.StringFixed(2), r.TransactionCount)
	}
	b.WriteString("\n")

	// Top products.
	fmt.Fprintf(&b, "TOP %d PRODUCTS\n", len(s.TopProducts))
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(&b, "%-6s%-22s%10s%15s\n", "Rank", "Product Name", "Qty Sold", "Revenue")
	for i, p := range s.TopProducts {
		fmt.Fprintf(&b, "%-6d%-22s%10d%15s\n",
			i+1, clip(p.ProductName, 22), p.QuantitySold, money(p.Revenue))
	}
	b.WriteString("\n")

	// Top customers.
	fmt.Fprintf(&b, "TOP %d CUSTOMERS\n", len(s.TopCustomers))
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(&b, "%-6s%-15s%15s%14s\n", "Rank", "Customer ID", "Total Spent", "Order Count")
	for i, c := range s.TopCustomers {
		fmt.Fprintf(&b, "%-6d%-15s%15s%14d\n",
			i+1, c.CustomerID, money(c.TotalSpent), c.PurchaseCount)
	}
	b.WriteString("\n")

	// Daily trend.
	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(&b, "%-12s%15s%14s%18s\n", "Date", "Revenue", "Transactions", "Unique Customers")
	for _, d := range s.DailyTrend {
		fmt.Fprintf(&b, "%-12s%15s%14d%18d\n",
			d.Date, money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	b.WriteString("\n")

	// Product performance.
	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	b.WriteString(rule("-") + "\n")
	if s.HasBestDay {
		fmt.Fprintf(&b, "Best Selling Day: %s (%s)\n\n", s.BestDay.Date, money(s.BestDay.Revenue))
	} else {
		b.WriteString("Best Selling Day: N/A\n\n")
	}

	b.WriteString("Low Performing Products (Qty < threshold)\n")
	if len(s.LowPerformers) > 0 {
		fmt.Fprintf(&b, "%-22s%10s%15s\n", "Product Name", "Qty Sold", "Revenue")
		for _, p := range s.LowPerformers {
			fmt.Fprintf(&b, "%-22s%10d%15s\n", clip(p.ProductName, 22), p.QuantitySold, money(p.Revenue))
		}
	} else {
		b.WriteString("None\n")
	}
	b.WriteString("\n")

	b.WriteString("Average Transaction Value by Region\n")
	fmt.Fprintf(&b, "%-10s%15s\n", "Region", "Avg Value")
	for _, r := range s.RegionAverages {
		fmt.Fprintf(&b, "%-10s%15s\n", r.Region, money(r.AvgValue))
	}
	b.WriteString("\n")

	// Enrichment summary.
	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(rule("-") + "\n")
	fmt.Fprintf(&b, "Total Transactions Checked: %d\n", s.Enrichment.TotalChecked)
	fmt.Fprintf(&b, "Total Products Enriched:    %d\n", s.Enrichment.EnrichedCount)
	fmt.Fprintf(&b, "Success Rate:               %.2f%%\n\n", s.Enrichment.SuccessRate)

	b.WriteString("Products that couldn't be enriched:\n")
	if len(s.Enrichment.FailedProducts) > 0 {
		for _, item := range s.Enrichment.FailedProducts {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	} else {
		b.WriteString("None\n")
	}

	return b.String()
}

// Write renders the summary and writes it to path, creating intermediate
// directories as needed.
func Write(s Summary, path string, opts RenderOptions) error {
	return utils.WriteTextFile(path, Render(s, opts))
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// FormatCurrency renders a decimal as a currency string with two decimal
// places and thousands grouping, e.g. "₹1,234.56".
func FormatCurrency(d decimal.Decimal, symbol string) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(intPart)

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + symbol + grouped + "." + fracPart
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// rule returns a horizontal rule of the report width.
func rule(ch string) string {
	return strings.Repeat(ch, reportWidth)
}

// center pads a line on the left so it sits centred in the report width.
func center(s string) string {
	if len(s) >= reportWidth {
		return s
	}
	pad := (reportWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// clip truncates a string to at most n characters for fixed-width columns.
// Truncation counts runes so a multi-byte name is never split mid-character.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
