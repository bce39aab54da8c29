//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

//go:build integration
// +build integration

// Integration tests for the PostgreSQL source.
// Run with: go test -tags=integration ./internal/dataset/...
// Requires PostgreSQL to be available.
// Set RETAIL_TEST_CONN environment variable to override connection string.

package dataset_test

import (
	"context"
	"testing"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/testutil"
)

// warehouseDDL creates the five input tables with the column layout the
// PostgreSQL source expects.
var warehouseDDL = []string{
	`CREATE TABLE transaction_data (
		household_key BIGINT NOT NULL,
		basket_id BIGINT NOT NULL,
		day INTEGER NOT NULL,
		product_id BIGINT NOT NULL,
		quantity BIGINT NOT NULL,
		sales_value DOUBLE PRECISION NOT NULL,
		store_id BIGINT NOT NULL,
		retail_disc DOUBLE PRECISION NOT NULL,
		coupon_disc DOUBLE PRECISION NOT NULL,
		coupon_match_disc DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE product (
		product_id BIGINT PRIMARY KEY,
		department TEXT NOT NULL,
		brand TEXT NOT NULL,
		commodity_desc TEXT NOT NULL
	)`,
	`CREATE TABLE hh_demographic (
		household_key BIGINT PRIMARY KEY,
		classification_1 TEXT NOT NULL,
		classification_2 TEXT NOT NULL,
		classification_3 TEXT NOT NULL,
		classification_5 TEXT NOT NULL
	)`,
	`CREATE TABLE campaign_table (
		household_key BIGINT NOT NULL,
		campaign BIGINT NOT NULL,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE campaign_desc (
		campaign BIGINT PRIMARY KEY,
		description TEXT NOT NULL,
		start_day INTEGER NOT NULL,
		end_day INTEGER NOT NULL
	)`,
}

// warehouseFixtures seeds a minimal but fully joinable dataset.
var warehouseFixtures = []string{
	`INSERT INTO transaction_data VALUES
		(1001, 31198570044, 1, 1029743, 2, 5.78, 364, 0.60, 0, 0),
		(1001, 31198570044, 1, 1085983, 1, 2.19, 364, 0, 0, 0),
		(2375, 31198655051, 8, 1029743, 3, 8.67, 31742, 0, 0.90, 0.90)`,
	`INSERT INTO product VALUES
		(1029743, 'GROCERY', 'National', 'SOFT DRINKS'),
		(1085983, 'PRODUCE', 'Private', 'APPLES')`,
	`INSERT INTO hh_demographic VALUES
		(1001, '65+', 'A', '35-49K', '2')`,
	`INSERT INTO campaign_table VALUES
		(1001, 8, 'TypeA')`,
	`INSERT INTO campaign_desc VALUES
		(8, 'TypeA', 224, 236)`,
}

// TestPostgresSourceIntegration loads the five tables from a freshly
// created database and runs the resulting bundle through enrichment.
func TestPostgresSourceIntegration(t *testing.T) {
	pool, testConnStr := testutil.ScratchDB(t, "dataset")
	ctx := context.Background()

	// Test 1: Create schema
	t.Run("CreateSchema", func(t *testing.T) {
		for _, ddl := range warehouseDDL {
			if _, err := pool.Exec(ctx, ddl); err != nil {
				t.Fatalf("CreateSchema failed: %v", err)
			}
		}
	})

	// Test 2: Seed fixtures
	t.Run("SeedFixtures", func(t *testing.T) {
		for _, stmt := range warehouseFixtures {
			if _, err := pool.Exec(ctx, stmt); err != nil {
				t.Fatalf("SeedFixtures failed: %v", err)
			}
		}
	})

	// Test 3: Load the bundle through the source
	var bundle *dataset.Bundle
	t.Run("Load", func(t *testing.T) {
		src := dataset.NewPostgresSource(testConnStr)
		b, err := src.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		bundle = b

		if got := len(b.Transactions); got != 3 {
			t.Errorf("Transactions = %d, want 3", got)
		}
		if got := len(b.Products); got != 2 {
			t.Errorf("Products = %d, want 2", got)
		}
		if got := len(b.Households); got != 1 {
			t.Errorf("Households = %d, want 1", got)
		}
		if got := len(b.CampaignMembers); got != 1 {
			t.Errorf("CampaignMembers = %d, want 1", got)
		}
		if got := len(b.CampaignDescs); got != 1 {
			t.Errorf("CampaignDescs = %d, want 1", got)
		}
	})

	if bundle == nil {
		t.Fatal("bundle not loaded")
	}

	// Test 4: Loaded values survive the round trip
	t.Run("Values", func(t *testing.T) {
		tx := bundle.Transactions[0]
		if tx.HouseholdKey != 1001 || tx.BasketID != 31198570044 {
			t.Errorf("unexpected first transaction: %+v", tx)
		}
		if tx.SalesValue != 5.78 || tx.RetailDisc != 0.60 {
			t.Errorf("unexpected transaction amounts: %+v", tx)
		}

		desc := bundle.CampaignDescs[0]
		if desc.StartDay != 224 || desc.EndDay != 236 {
			t.Errorf("unexpected campaign window: %+v", desc)
		}
	})

	// Test 5: The bundle enriches cleanly
	t.Run("Enrich", func(t *testing.T) {
		rows := pipeline.Build(bundle, pipeline.DefaultEpoch)
		if len(rows) != len(bundle.Transactions) {
			t.Fatalf("enriched rows = %d, want %d", len(rows), len(bundle.Transactions))
		}

		for i, row := range rows {
			if row.Date.IsZero() {
				t.Errorf("row %d: date not derived", i)
			}
			if row.InCampaign != 0 && row.InCampaign != 1 {
				t.Errorf("row %d: IN_CAMPAIGN = %d", i, row.InCampaign)
			}
		}

		first := rows[0]
		if first.Department == nil || *first.Department != "GROCERY" {
			t.Error("product join did not attach department")
		}
		if first.CampaignType != "TypeA" {
			t.Errorf("campaign join: CAMPAIGN_TYPE = %q", first.CampaignType)
		}
	})
}
