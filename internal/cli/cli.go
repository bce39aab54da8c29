//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Portions copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for retail-dashboard.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/config"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
	"github.com/thant-thiha/recommendation-system-retail-store/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	source     string
	dataDir    string
	connection string
	epochDate  string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "retail-dashboard",
		Short: "Retail transaction analytics dashboard",
		Long: `retail-dashboard loads retail transaction data, joins it with product,
demographic, and campaign dimensions, and aggregates the result into
customer, product, department, and campaign summaries.

The summaries are served as an interactive dashboard or written to
report files. Input tables are read from a directory of CSV files or
from a PostgreSQL database holding the same tables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./retail-dashboard.yaml)")
	rootCmd.PersistentFlags().StringVar(&source, "source", "",
		"input table source (csv, postgres)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"directory holding the five input CSV files")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&epochDate, "epoch", "",
		"calendar date that day offset 1 maps to (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(schemaCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if source != "" {
		cfg.Data.Source = source
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if connection != "" {
		cfg.Data.Connection = connection
	}
	if epochDate != "" {
		cfg.Data.Epoch = epochDate
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the expected input tables",
	Long: `Print the five input tables the loader expects, the file each is read
from, and the columns it requires. Extra columns in a source are
ignored; missing required columns are a load error.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range dataset.Tables() {
			cmd.Printf("%s (%s)\n", t.Name, t.FileName)
			for _, c := range t.Columns {
				cmd.Printf("  %s\n", c)
			}
			cmd.Println()
		}
	},
}
