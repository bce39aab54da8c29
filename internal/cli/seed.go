package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/datagen"
)

var (
	seedHouseholds   int
	seedProducts     int
	seedStores       int
	seedCampaigns    int
	seedDays         int
	seedTransactions int
	seedSeed         int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a sample dataset",
	Long: `Generate the five input tables as CSV files in the data directory.
The generated data is shaped like the real source data: transactions
reference the generated products and households, discount amounts stay
within each line's gross value, and campaign windows fall inside the
generated day span.

Example:
  retail-dashboard seed --data-dir datasets
  retail-dashboard seed --transactions 500000 --days 365
  retail-dashboard seed --seed 42`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedHouseholds, "households", 0,
		"number of shopper households to generate")
	seedCmd.Flags().IntVar(&seedProducts, "products", 0,
		"number of products to generate")
	seedCmd.Flags().IntVar(&seedStores, "stores", 0,
		"number of stores transactions are spread over")
	seedCmd.Flags().IntVar(&seedCampaigns, "campaigns", 0,
		"number of marketing campaigns to generate")
	seedCmd.Flags().IntVar(&seedDays, "days", 0,
		"day-offset span transactions are spread over")
	seedCmd.Flags().IntVar(&seedTransactions, "transactions", 0,
		"number of transaction line items to generate")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 0,
		"RNG seed for reproducible output (0 = random)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if seedHouseholds > 0 {
		cfg.Seed.Households = seedHouseholds
	}
	if seedProducts > 0 {
		cfg.Seed.Products = seedProducts
	}
	if seedStores > 0 {
		cfg.Seed.Stores = seedStores
	}
	if seedCampaigns > 0 {
		cfg.Seed.Campaigns = seedCampaigns
	}
	if seedDays > 0 {
		cfg.Seed.Days = seedDays
	}
	if seedTransactions > 0 {
		cfg.Seed.Transactions = seedTransactions
	}
	if seedSeed != 0 {
		cfg.Seed.Seed = seedSeed
	}

	// Validate configuration
	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	gen := datagen.NewGenerator(datagen.Config{
		Households:   cfg.Seed.Households,
		Products:     cfg.Seed.Products,
		Stores:       cfg.Seed.Stores,
		Campaigns:    cfg.Seed.Campaigns,
		Days:         cfg.Seed.Days,
		Transactions: cfg.Seed.Transactions,
		Seed:         cfg.Seed.Seed,
	})
	return gen.Generate(context.Background(), cfg.Data.Dir)
}
