//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Portions copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for retail-dashboard.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// EpochLayout is the date layout for the day-offset anchor date.
const EpochLayout = "2006-01-02"

// Config holds all configuration for retail-dashboard.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Data holds configuration for loading the five input tables.
	Data DataConfig `mapstructure:"data"`

	// Serve holds configuration for the serve subcommand.
	Serve ServeConfig `mapstructure:"serve"`

	// Report holds configuration for the report subcommand.
	Report ReportConfig `mapstructure:"report"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`
}

// DataConfig describes where the input tables come from.
type DataConfig struct {
	// Source is the table source: "csv" or "postgres".
	Source string `mapstructure:"source"`

	// Dir is the directory holding the five CSV files (csv source).
	Dir string `mapstructure:"dir"`

	// Connection is the PostgreSQL connection string (postgres source).
	Connection string `mapstructure:"connection"`

	// Epoch is the calendar date that day offset 1 maps to (YYYY-MM-DD).
	Epoch string `mapstructure:"epoch"`
}

// ServeConfig holds configuration for the dashboard server.
type ServeConfig struct {
	// Listen is the address the HTTP server binds to.
	Listen string `mapstructure:"listen"`
}

// ReportConfig holds configuration for report file exports.
type ReportConfig struct {
	// OutputDir is the directory report files are written to.
	OutputDir string `mapstructure:"output_dir"`

	// Format is the report file format: "json" or "csv".
	Format string `mapstructure:"format"`
}

// SeedConfig holds configuration for sample dataset generation.
type SeedConfig struct {
	// Households is the number of shopper households to generate.
	Households int `mapstructure:"households"`

	// Products is the number of products to generate.
	Products int `mapstructure:"products"`

	// Stores is the number of stores transactions are spread over.
	Stores int `mapstructure:"stores"`

	// Campaigns is the number of marketing campaigns to generate.
	Campaigns int `mapstructure:"campaigns"`

	// Days is the day-offset span transactions are spread over.
	Days int `mapstructure:"days"`

	// Transactions is the number of transaction line items to generate.
	Transactions int `mapstructure:"transactions"`

	// Seed is the RNG seed; 0 picks a random seed.
	Seed int64 `mapstructure:"seed"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Data: DataConfig{
			Source: "csv",
			Dir:    "datasets",
			Epoch:  "2023-01-01",
		},
		Serve: ServeConfig{
			Listen: ":8501",
		},
		Report: ReportConfig{
			OutputDir: "reports",
			Format:    "json",
		},
		Seed: SeedConfig{
			Households:   2500,
			Products:     5000,
			Stores:       25,
			Campaigns:    12,
			Days:         730,
			Transactions: 150000,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./retail-dashboard.yaml
// 3. ~/.config/retail-dashboard/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("retail-dashboard")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "retail-dashboard"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Epoch parses the configured anchor date.
func (c *Config) Epoch() (time.Time, error) {
	t, err := time.Parse(EpochLayout, c.Data.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch date %q (expected YYYY-MM-DD): %w", c.Data.Epoch, err)
	}
	return t, nil
}

// ValidateData checks configuration required for loading the input tables.
func (c *Config) ValidateData() error {
	switch c.Data.Source {
	case "csv":
		if c.Data.Dir == "" {
			return fmt.Errorf("data directory is required for the csv source")
		}
	case "postgres":
		if c.Data.Connection == "" {
			return fmt.Errorf("connection string is required for the postgres source")
		}
	default:
		return fmt.Errorf("data source must be 'csv' or 'postgres'")
	}
	if _, err := c.Epoch(); err != nil {
		return err
	}
	return nil
}

// ValidateServe checks configuration required for the serve command.
func (c *Config) ValidateServe() error {
	if err := c.ValidateData(); err != nil {
		return err
	}
	if c.Serve.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	return nil
}

// ValidateReport checks configuration required for the report command.
func (c *Config) ValidateReport() error {
	if err := c.ValidateData(); err != nil {
		return err
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.Report.Format != "json" && c.Report.Format != "csv" {
		return fmt.Errorf("report format must be 'json' or 'csv'")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data directory is required for seed")
	}
	if c.Seed.Households < 1 {
		return fmt.Errorf("households must be at least 1")
	}
	if c.Seed.Products < 1 {
		return fmt.Errorf("products must be at least 1")
	}
	if c.Seed.Stores < 1 {
		return fmt.Errorf("stores must be at least 1")
	}
	if c.Seed.Campaigns < 0 {
		return fmt.Errorf("campaigns must be non-negative")
	}
	if c.Seed.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if c.Seed.Transactions < 1 {
		return fmt.Errorf("transactions must be at least 1")
	}
	return nil
}
