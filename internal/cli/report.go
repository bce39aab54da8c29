package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/export"
)

var (
	reportOutputDir string
	reportFormat    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the aggregated summaries to report files",
	Long: `Load the input tables, aggregate them, and write the summaries to a
timestamped report. JSON reports are a single file; CSV reports are a
directory with one file per summary table.

Example:
  retail-dashboard report --data-dir datasets
  retail-dashboard report --format csv --output-dir reports`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportOutputDir, "output-dir", "",
		"directory report files are written to")
	reportCmd.Flags().StringVar(&reportFormat, "format", "",
		"report format (json, csv)")
}

func runReport(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if reportOutputDir != "" {
		cfg.Report.OutputDir = reportOutputDir
	}
	if reportFormat != "" {
		cfg.Report.Format = reportFormat
	}

	// Validate configuration
	if err := cfg.ValidateReport(); err != nil {
		return err
	}

	suite, campaigns, err := analyze(context.Background())
	if err != nil {
		return err
	}

	exp := &export.Exporter{Dir: cfg.Report.OutputDir, Format: cfg.Report.Format}
	path, err := exp.Write(suite, campaigns)
	if err != nil {
		return err
	}

	cmd.Println(path)
	return nil
}
