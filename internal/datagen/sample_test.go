package datagen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

func smallConfig() Config {
	return Config{
		Households:   20,
		Products:     30,
		Stores:       3,
		Campaigns:    2,
		Days:         60,
		Transactions: 300,
		Seed:         42,
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig()

	if err := NewGenerator(cfg).Generate(context.Background(), dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	b, err := dataset.NewCSVSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Generated dataset does not load: %v", err)
	}

	if len(b.Transactions) != cfg.Transactions {
		t.Errorf("Transactions = %d, want %d", len(b.Transactions), cfg.Transactions)
	}
	if len(b.Products) != cfg.Products {
		t.Errorf("Products = %d, want %d", len(b.Products), cfg.Products)
	}
	if len(b.CampaignDescs) != cfg.Campaigns {
		t.Errorf("CampaignDescs = %d, want %d", len(b.CampaignDescs), cfg.Campaigns)
	}
	if len(b.Households) == 0 || len(b.Households) > cfg.Households {
		t.Errorf("Households = %d, want between 1 and %d", len(b.Households), cfg.Households)
	}

	// Membership descriptions must agree with the campaign catalog.
	descs := make(map[int64]string, len(b.CampaignDescs))
	for _, d := range b.CampaignDescs {
		descs[d.Campaign] = d.Description
	}
	for _, m := range b.CampaignMembers {
		want, ok := descs[m.Campaign]
		if !ok {
			t.Fatalf("Membership references unknown campaign %d", m.Campaign)
		}
		if m.Description != want {
			t.Fatalf("Membership description %q does not match campaign %d (%q)", m.Description, m.Campaign, want)
		}
	}
}

func TestGeneratePipelineInvariants(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig()

	if err := NewGenerator(cfg).Generate(context.Background(), dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := dataset.NewCSVSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows := pipeline.Build(b, pipeline.DefaultEpoch)
	if len(rows) != len(b.Transactions) {
		t.Fatalf("Fact rows = %d, want %d", len(rows), len(b.Transactions))
	}
	for i, row := range rows {
		if row.SalesValue < 0 {
			t.Fatalf("Row %d: negative SalesValue %v", i, row.SalesValue)
		}
		if row.DiscountRate < 0 || row.DiscountRate > 1 {
			t.Fatalf("Row %d: DiscountRate %v outside [0,1]", i, row.DiscountRate)
		}
		if row.InCampaign != 0 && row.InCampaign != 1 {
			t.Fatalf("Row %d: InCampaign = %d", i, row.InCampaign)
		}
		if row.Day < 1 || row.Day > cfg.Days {
			t.Fatalf("Row %d: Day %d outside 1..%d", i, row.Day, cfg.Days)
		}
		if row.Quantity < 1 {
			t.Fatalf("Row %d: Quantity %d", i, row.Quantity)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := smallConfig()

	first := t.TempDir()
	if err := NewGenerator(cfg).Generate(context.Background(), first); err != nil {
		t.Fatal(err)
	}
	second := t.TempDir()
	if err := NewGenerator(cfg).Generate(context.Background(), second); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"transaction_data.csv", "product.csv", "hh_demographic.csv", "campaign_table.csv", "campaign_desc.csv"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs with the same seed", name)
		}
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewGenerator(smallConfig()).Generate(ctx, t.TempDir())
	if err == nil {
		t.Error("Expected error from cancelled context, got nil")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Households != 2500 {
		t.Errorf("Households = %d, want 2500", cfg.Households)
	}
	if cfg.Days != 730 {
		t.Errorf("Days = %d, want 730", cfg.Days)
	}
	if cfg.Transactions != 150000 {
		t.Errorf("Transactions = %d, want 150000", cfg.Transactions)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0 (random)", cfg.Seed)
	}
}

func TestWeekendDay(t *testing.T) {
	// The default epoch falls on a Sunday, so day 1 is a weekend day
	// and day 2 starts the first full week.
	if !weekendDay(1) {
		t.Error("day 1 should be a weekend day")
	}
	if weekendDay(2) {
		t.Error("day 2 should be a weekday")
	}
	if !weekendDay(7) {
		t.Error("day 7 should be a weekend day")
	}
}
