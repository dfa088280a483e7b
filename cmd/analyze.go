// =============================================================================
// Sales Analytics System - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, which runs the full analytics and
// enrichment pipeline for the configured sales export.
//
// COMMAND USAGE:
//   sales-analytics analyze [flags]
//
// FLAGS:
//   --input       : Override the input file from the configuration
//   --region      : Filter to a region (skips the interactive prompt)
//   --min-amount  : Inclusive minimum transaction amount filter
//   --max-amount  : Inclusive maximum transaction amount filter
//   --no-input    : Never prompt; run unfiltered unless filter flags are set
//   --xlsx        : Also export the enriched data as an XLSX workbook
//
// FILTER COLLECTION:
//   Without flags the command shows the available regions and the observed
//   amount range, then asks whether to filter. Numeric input that does not
//   parse is treated as "no bound" rather than aborting the run.
//
// =============================================================================

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nawadeharshada-create/sales-analytics-system/internal/catalog"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/config"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/logger"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/pipeline"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/report"
	"github.com/nawadeharshada-create/sales-analytics-system/internal/types"
)

// Command flags.
var (
	// inputFile overrides the configured input file when non-empty.
	inputFile string

	// regionFlag pre-sets the region filter.
	regionFlag string

	// minAmountFlag pre-sets the minimum amount filter.
	minAmountFlag string

	// maxAmountFlag pre-sets the maximum amount filter.
	maxAmountFlag string

	// noInput disables the interactive filter prompt.
	noInput bool

	// xlsxFile overrides the configured XLSX export path when non-empty.
	xlsxFile string
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analytics and enrichment pipeline",
	Long: `The analyze command reads the configured pipe-delimited sales export,
validates and optionally filters the transactions, computes the aggregate
analyses, enriches each transaction with product metadata from the remote
catalog, and writes the enriched data file and the formatted text report.

A failed or timed-out catalog fetch never aborts the run: enrichment
degrades to marking every transaction unmatched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

// init registers the analyze command and its flags.
func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&inputFile, "input", "", "Override the input file from the configuration")
	analyzeCmd.Flags().StringVar(&regionFlag, "region", "", "Filter to a region (exact match)")
	analyzeCmd.Flags().StringVar(&minAmountFlag, "min-amount", "", "Inclusive minimum transaction amount")
	analyzeCmd.Flags().StringVar(&maxAmountFlag, "max-amount", "", "Inclusive maximum transaction amount")
	analyzeCmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt for filter parameters")
	analyzeCmd.Flags().StringVar(&xlsxFile, "xlsx", "", "Also export the enriched data as an XLSX workbook")
}

// runAnalyze wires the pipeline together and executes it.
func runAnalyze() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if xlsxFile != "" {
		cfg.Export.XLSXFile = xlsxFile
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(level)

	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("SALES ANALYTICS SYSTEM")
	fmt.Println(strings.Repeat("=", 40))

	runner := &pipeline.Runner{
		Config: cfg,
		Fetcher: catalog.NewHTTPClient(
			cfg.Catalog.BaseURL,
			cfg.Catalog.Limit,
			time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
		),
		Prompt: buildPrompt(cfg.Report.CurrencySymbol),
		Log:    log,
		Out:    os.Stdout,
	}

	result := runner.Run(context.Background())
	if !result.Success {
		return result.Error
	}

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Records in:      %d\n", result.Stats.Filter.TotalInput)
	fmt.Printf("Records out:     %d\n", result.Stats.Filter.FinalCount)
	fmt.Printf("Enriched:        %d\n", result.Stats.EnrichedCount)
	fmt.Printf("Time elapsed:    %s\n", result.Stats.ProcessingTime)
	return nil
}

// =============================================================================
// FILTER PROMPT
// =============================================================================

// buildPrompt returns the filter-collection collaborator for this run.
//
// Filter flags take precedence: when any is set the prompt is skipped and
// the flags are used directly. With --no-input and no flags, filtering is
// disabled entirely. Otherwise the interactive prompt runs.
func buildPrompt(currencySymbol string) pipeline.PromptFunc {
	if regionFlag != "" || minAmountFlag != "" || maxAmountFlag != "" {
		return func(_ []string, _, _ decimal.Decimal) types.FilterOptions {
			return types.FilterOptions{
				Region:    regionFlag,
				MinAmount: parseBound(minAmountFlag, "min"),
				MaxAmount: parseBound(maxAmountFlag, "max"),
			}
		}
	}
	if noInput {
		return nil
	}
	return func(regions []string, minAmount, maxAmount decimal.Decimal) types.FilterOptions {
		return promptForFilters(os.Stdin, regions, minAmount, maxAmount, currencySymbol)
	}
}

// parseBound parses an amount flag value, treating unparsable input as
// "no bound".
func parseBound(raw, side string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fmt.Printf("Invalid %s amount. Ignoring %s filter.\n", side, side)
		return nil
	}
	return &value
}

// promptForFilters interactively collects the optional region and amount
// filters from the operator.
func promptForFilters(in io.Reader, regions []string, minAmount, maxAmount decimal.Decimal, currencySymbol string) types.FilterOptions {
	reader := bufio.NewReader(in)

	fmt.Println("\nFilter Options Available:")
	if len(regions) > 0 {
		fmt.Println("Regions:", strings.Join(regions, ", "))
	} else {
		fmt.Println("Regions: N/A")
	}
	fmt.Printf("Amount Range: %s - %s\n",
		report.FormatCurrency(minAmount, currencySymbol),
		report.FormatCurrency(maxAmount, currencySymbol))

	answer := readLine(reader, "\nDo you want to filter data? (y/n): ")
	if strings.ToLower(answer) != "y" {
		return types.FilterOptions{}
	}

	opts := types.FilterOptions{}
	if len(regions) > 0 {
		opts.Region = readLine(reader,
			fmt.Sprintf("Enter region from [%s] (or press Enter to skip): ", strings.Join(regions, ", ")))
	}
	opts.MinAmount = parseBound(readLine(reader, "Enter minimum amount (or press Enter to skip): "), "min")
	opts.MaxAmount = parseBound(readLine(reader, "Enter maximum amount (or press Enter to skip): "), "max")
	return opts
}

// readLine prints a prompt and reads one trimmed line of input.
func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
