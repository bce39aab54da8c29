package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/rollup"
)

// newSource returns the configured input table source.
func newSource() (dataset.Source, error) {
	switch cfg.Data.Source {
	case "csv":
		return dataset.NewCSVSource(cfg.Data.Dir), nil
	case "postgres":
		return dataset.NewPostgresSource(cfg.Data.Connection), nil
	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Data.Source)
	}
}

// analyze loads the input tables, enriches the transactions, and
// aggregates them into the summary suite the serve and report commands
// present. Campaign windows are returned alongside for the campaign
// timeline views.
func analyze(ctx context.Context) (*rollup.Suite, []pipeline.CampaignWindow, error) {
	epoch, err := cfg.Epoch()
	if err != nil {
		return nil, nil, err
	}

	src, err := newSource()
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	bundle, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	logging.Info().
		Int("transactions", len(bundle.Transactions)).
		Int("products", len(bundle.Products)).
		Int("households", len(bundle.Households)).
		Dur("elapsed", time.Since(start)).
		Msg("Input tables loaded")

	start = time.Now()
	rows := pipeline.Build(bundle, epoch)
	logging.Info().
		Int("rows", len(rows)).
		Dur("elapsed", time.Since(start)).
		Msg("Transactions enriched")

	start = time.Now()
	suite := rollup.BuildSuite(rows, bundle.Products)
	logging.Info().
		Int("customers", len(suite.Customers)).
		Int("products", len(suite.Products)).
		Int("departments", len(suite.Departments)).
		Dur("elapsed", time.Since(start)).
		Msg("Summaries aggregated")

	campaigns := pipeline.CampaignWindows(bundle.CampaignDescs, epoch)
	return suite, campaigns, nil
}
