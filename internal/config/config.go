// =============================================================================
// Sales Analytics System - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. Everything the
// pipeline needs - file locations, catalog service settings, and report
// presentation knobs - comes from a single YAML file so a run is fully
// reproducible from config plus input data.
//
// Missing keys fall back to defaults that mirror the legacy layout
// (data/sales_data.txt in, data/ and output/ for the artifacts), so an empty
// config file is a valid config file.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// InputFile is the pipe-delimited sales export to analyze.
	// Default: "data/sales_data.txt"
	InputFile string `yaml:"input_file"`

	// EnrichedFile is where the enriched pipe-delimited data is written.
	// Default: "data/enriched_sales_data.txt"
	EnrichedFile string `yaml:"enriched_file"`

	// ReportFile is where the formatted text report is written.
	// Default: "output/sales_report.txt"
	ReportFile string `yaml:"report_file"`

	// Catalog configures the remote product catalog fetch.
	Catalog CatalogConfig `yaml:"catalog"`

	// Report configures report presentation.
	Report ReportConfig `yaml:"report"`

	// Export configures the optional XLSX export of the enriched data.
	Export ExportConfig `yaml:"export"`

	// LogLevel controls logging verbosity.
	// Valid values: "debug", "info", "warn", "error". Default: "info"
	LogLevel string `yaml:"log_level"`
}

// CatalogConfig holds the catalog service settings.
type CatalogConfig struct {
	// BaseURL is the catalog products endpoint.
	// Default: "https://dummyjson.com/products"
	BaseURL string `yaml:"base_url"`

	// TimeoutSeconds bounds the single catalog request. Default: 10
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Limit is the maximum number of products to request. Default: 100
	Limit int `yaml:"limit"`
}

// ReportConfig holds report presentation settings.
type ReportConfig struct {
	// TopProducts is how many products the top-sellers table shows.
	// Default: 5
	TopProducts int `yaml:"top_products"`

	// LowQuantityThreshold marks products with a summed quantity strictly
	// below it as low performers. Default: 10
	LowQuantityThreshold int `yaml:"low_quantity_threshold"`

	// CurrencySymbol prefixes every rendered currency value. Default: "₹"
	CurrencySymbol string `yaml:"currency_symbol"`
}

// ExportConfig holds the optional XLSX export settings.
type ExportConfig struct {
	// XLSXFile, when non-empty, is where the enriched data workbook is
	// written in addition to the pipe-delimited file.
	XLSXFile string `yaml:"xlsx_file"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file and applies defaults.
//
// A missing config file is not an error: the defaults describe a complete,
// runnable configuration. A present but unparsable file is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = "data/sales_data.txt"
	}
	if cfg.EnrichedFile == "" {
		cfg.EnrichedFile = "data/enriched_sales_data.txt"
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = "output/sales_report.txt"
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://dummyjson.com/products"
	}
	if cfg.Catalog.TimeoutSeconds == 0 {
		cfg.Catalog.TimeoutSeconds = 10
	}
	if cfg.Catalog.Limit == 0 {
		cfg.Catalog.Limit = 100
	}
	if cfg.Report.TopProducts == 0 {
		cfg.Report.TopProducts = 5
	}
	if cfg.Report.LowQuantityThreshold == 0 {
		cfg.Report.LowQuantityThreshold = 10
	}
	if cfg.Report.CurrencySymbol == "" {
		cfg.Report.CurrencySymbol = "₹"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate rejects configurations that defaults cannot repair.
func validate(cfg *Config) error {
	if cfg.Catalog.TimeoutSeconds < 0 {
		return fmt.Errorf("catalog.timeout_seconds must not be negative")
	}
	if cfg.Catalog.Limit < 0 {
		return fmt.Errorf("catalog.limit must not be negative")
	}
	if cfg.Report.TopProducts < 0 {
		return fmt.Errorf("report.top_products must not be negative")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", cfg.LogLevel)
	}

	return nil
}
