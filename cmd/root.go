// =============================================================================
// Sales Analytics System - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'analyze', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analytics)
//   ├── analyzeCmd (sales-analytics analyze)
//   └── versionCmd (sales-analytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-analytics",
	Short: "Sales Analytics System - Analyze and enrich pipe-delimited sales exports",
	Long: `Sales Analytics System ingests a pipe-delimited sales-transaction file,
validates and optionally filters the records, computes aggregate analytics
(revenue, region/product/customer/day rollups, peak-day and low-performer
detection), enriches each transaction with product metadata fetched from a
remote catalog service, and emits a formatted text report plus an enriched
data file.

Example Usage:
  sales-analytics analyze                      # Full interactive run
  sales-analytics analyze --no-input           # Skip the filter prompt
  sales-analytics analyze --region North       # Pre-set a region filter
  sales-analytics analyze --config ./my.yaml   # Use a custom configuration`,

	// With no subcommand there is nothing to do but show help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs the CLI.
// This is called by main.main() and is the single top-level error handler:
// any error bubbling out of a command is printed and the process exits
// cleanly with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
