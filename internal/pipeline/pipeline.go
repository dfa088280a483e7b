// =============================================================================
// Sales Analytics System - Pipeline Runner
// =============================================================================
//
// This module orchestrates one full analytics run, from the raw sales export
// to the enriched data file and the text report.
//
// PIPELINE STAGES:
//    1. Read raw lines from the input file
//    2. Parse lines into transaction records
//    3. Offer the optional filters (via the injected prompt collaborator)
//    4. Validate and filter the transactions
//    5. Run the aggregation analyses
//    6. Fetch the product catalog
//    7. Enrich the transactions against the catalog
//    8. Save the enriched data file (and the optional XLSX workbook)
//    9. Assemble and write the report
//   10. Summarize the run
//
// ERROR POLICY:
//   The run favors graceful degradation: malformed records are skipped and
//   counted, a failed catalog fetch degrades to an empty catalog (every
//   transaction unmatched), and the optional XLSX export may fail without
//   aborting the run. Only an empty pipeline (no input, nothing valid) or a
//   failure writing the primary outputs stops the run.
//
// =============================================================================

package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/catalog"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/config"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/export"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/parser"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/report"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/validation"
	"github.com/nawadeharshada-create/sales-analytics-system/pkg/utils"
)

// totalSteps is the number of console progress steps in a run.
const totalSteps = 10

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result represents the outcome of one pipeline run.
type Result struct {
	// Success indicates whether the run completed.
	Success bool

	// Error contains the failure when Success is false.
	Error error

	// EnrichedFile is the path of the written enriched data file.
	EnrichedFile string

	// ReportFile is the path of the written report.
	ReportFile string

	// Stats contains run statistics.
	Stats Stats
}

// Stats contains statistics about one pipeline run.
type Stats struct {
	// RawLines is the number of non-empty lines read from the input.
	RawLines int

	// Parsed is the number of transactions parsed.
	Parsed int

	// ParseSkipped is the number of malformed lines skipped by the parser.
	ParseSkipped int

	// Filter is the validation/filter stage summary.
	Filter types.FilterSummary

	// CatalogEntries is the number of catalog entries fetched.
	CatalogEntries int

	// EnrichedCount is the number of transactions with a catalog match.
	EnrichedCount int

	// ProcessingTime is the total run duration.
	ProcessingTime time.Duration
}

// PromptFunc collects the optional filter parameters from the operator.
// It receives the distinct regions present in the parsed data and the
// observed min/max transaction amounts, for display. A nil PromptFunc means
// no filtering.
type PromptFunc func(regions []string, minAmount, maxAmount decimal.Decimal) types.FilterOptions

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes the analytics pipeline for one sales export.
type Runner struct {
	// Config is the loaded application configuration.
	Config *config.Config

	// Fetcher retrieves the product catalog.
	Fetcher catalog.Fetcher

	// Prompt collects filter parameters. Nil disables filtering.
	Prompt PromptFunc

	// Log is the structured logger for the run.
	Log zerolog.Logger

	// Out receives the step-by-step console progress.
	Out io.Writer
}

// Run executes every pipeline stage and returns the run result.
func (r *Runner) Run(ctx context.Context) Result {
	start := time.Now()
	result := Result{}

	// Step 1: read raw lines.
	r.step(1, "Reading sales data...")
	lines := utils.ReadLines(r.Config.InputFile)
	if len(lines) == 0 {
		result.Error = fmt.Errorf("no data read from %s: check the file path and content", r.Config.InputFile)
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}
	result.Stats.RawLines = len(lines)
	fmt.Fprintf(r.Out, "Successfully read %d raw lines\n", len(lines))

	// Step 2: parse.
	r.step(2, "Parsing and cleaning data...")
	parsed := parser.Parse(lines)
	result.Stats.Parsed = len(parsed.Transactions)
	result.Stats.ParseSkipped = parsed.Skipped
	if len(parsed.Transactions) == 0 {
		result.Error = fmt.Errorf("no valid transactions after parsing: check the file format")
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}
	fmt.Fprintf(r.Out, "Parsed %d records (%d skipped)\n", len(parsed.Transactions), parsed.Skipped)

	// Step 3: filter options.
	r.step(3, "Filter options...")
	opts := r.collectFilters(parsed.Transactions)

	// Step 4: validate and filter.
	r.step(4, "Validating transactions...")
	valid, invalid, filterSummary := validation.ValidateAndFilter(parsed.Transactions, opts)
	result.Stats.Filter = filterSummary
	fmt.Fprintf(r.Out, "Valid: %d | Invalid: %d\n", len(valid), invalid)
	if filterSummary.FilteredByRegion > 0 || filterSummary.FilteredByAmount > 0 {
		fmt.Fprintf(r.Out, "Filtered out: %d by region, %d by amount\n",
			filterSummary.FilteredByRegion, filterSummary.FilteredByAmount)
	}
	if len(valid) == 0 {
		result.Error = fmt.Errorf("no valid transactions after validation/filtering")
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}

	// Step 5: aggregation happens inside report assembly; announce it here
	// so the console flow matches the stages operators know.
	r.step(5, "Analyzing sales data...")
	fmt.Fprintln(r.Out, "Analysis complete")

	// Step 6: fetch the catalog. Failure degrades to an empty catalog.
	r.step(6, "Fetching product data from API...")
	entries, err := r.Fetcher.FetchProducts(ctx)
	if err != nil {
		r.Log.Warn().Err(err).Msg("catalog fetch failed; continuing with empty catalog")
		entries = nil
	}
	result.Stats.CatalogEntries = len(entries)
	fmt.Fprintf(r.Out, "Fetched %d products\n", len(entries))

	// Step 7: enrich.
	r.step(7, "Enriching sales data...")
	mapping := catalog.BuildMapping(entries)
	enriched := catalog.Enrich(valid, mapping)
	for _, txn := range enriched {
		if txn.APIMatch {
			result.Stats.EnrichedCount++
		}
	}
	fmt.Fprintf(r.Out, "Enriched %d/%d transactions (%.1f%%)\n",
		result.Stats.EnrichedCount, len(enriched), successRate(result.Stats.EnrichedCount, len(enriched)))

	// Step 8: save enriched data.
	r.step(8, "Saving enriched data...")
	if err := utils.WriteEnrichedData(enriched, r.Config.EnrichedFile); err != nil {
		result.Error = fmt.Errorf("failed to save enriched data: %w", err)
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}
	result.EnrichedFile = r.Config.EnrichedFile
	fmt.Fprintf(r.Out, "Saved to: %s\n", r.Config.EnrichedFile)

	if r.Config.Export.XLSXFile != "" {
		if err := export.WriteEnrichedWorkbook(enriched, r.Config.Export.XLSXFile); err != nil {
			r.Log.Error().Err(err).Str("path", r.Config.Export.XLSXFile).
				Msg("xlsx export failed; continuing")
		} else {
			fmt.Fprintf(r.Out, "Workbook saved to: %s\n", r.Config.Export.XLSXFile)
		}
	}

	// Step 9: assemble and write the report.
	r.step(9, "Generating report...")
	summary := report.Assemble(valid, enriched, report.Options{
		TopProducts:          r.Config.Report.TopProducts,
		LowQuantityThreshold: r.Config.Report.LowQuantityThreshold,
	})
	renderOpts := report.RenderOptions{CurrencySymbol: r.Config.Report.CurrencySymbol}
	if err := report.Write(summary, r.Config.ReportFile, renderOpts); err != nil {
		result.Error = fmt.Errorf("failed to write report: %w", err)
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}
	result.ReportFile = r.Config.ReportFile
	fmt.Fprintf(r.Out, "Report saved to: %s\n", r.Config.ReportFile)
	r.Log.Info().
		Str("run_id", summary.RunID).
		Int("records", summary.RecordCount).
		Msg("report written")

	// Step 10: done.
	r.step(10, "Process Complete!")
	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	return result
}

// step prints one numbered console progress line.
func (r *Runner) step(n int, msg string) {
	fmt.Fprintf(r.Out, "\n[%d/%d] %s\n", n, totalSteps, msg)
}

// collectFilters shows the available filter options and asks the prompt
// collaborator for the operator's choices.
func (r *Runner) collectFilters(transactions []types.Transaction) types.FilterOptions {
	if r.Prompt == nil {
		return types.FilterOptions{}
	}

	regions := distinctRegions(transactions)
	minAmount, maxAmount := amountRange(transactions)
	return r.Prompt(regions, minAmount, maxAmount)
}

// distinctRegions returns the sorted distinct regions in the parsed data.
func distinctRegions(transactions []types.Transaction) []string {
	seen := make(map[string]struct{})
	for _, txn := range transactions {
		if txn.Region != "" {
			seen[txn.Region] = struct{}{}
		}
	}

	regions := make([]string, 0, len(seen))
	for region := range seen {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// amountRange returns the smallest and largest transaction amounts observed
// in the parsed data, for the prompt's display.
func amountRange(transactions []types.Transaction) (decimal.Decimal, decimal.Decimal) {
	if len(transactions) == 0 {
		return decimal.Zero, decimal.Zero
	}

	min := transactions[0].Amount()
	max := min
	for _, txn := range transactions[1:] {
		amount := txn.Amount()
		if amount.LessThan(min) {
			min = amount
		}
		if amount.GreaterThan(max) {
			max = amount
		}
	}
	return min, max
}

// successRate computes the enrichment percentage for console output.
func successRate(enriched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(enriched) / float64(total) * 100
}
