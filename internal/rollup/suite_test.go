package rollup

import (
	"math"
	"testing"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// suiteBundle covers two households, two products in different
// departments, two stores, two months, and one campaign membership.
// Household 1 has two baskets totaling 50 and 30.
func suiteBundle() *dataset.Bundle {
	return &dataset.Bundle{
		Transactions: []dataset.Transaction{
			{HouseholdKey: 1, BasketID: 501, Day: 1, ProductID: 101, Quantity: 2, SalesValue: 50, StoreID: 11},
			{HouseholdKey: 1, BasketID: 502, Day: 32, ProductID: 102, Quantity: 1, SalesValue: 30, StoreID: 12},
			{HouseholdKey: 2, BasketID: 601, Day: 7, ProductID: 101, Quantity: 5, SalesValue: 20, StoreID: 11, RetailDisc: 5},
		},
		Products: []dataset.Product{
			{ProductID: 101, Department: "GROCERY", Brand: "National", CommodityDesc: "SOFT DRINKS"},
			{ProductID: 102, Department: "PRODUCE", Brand: "Private", CommodityDesc: "APPLES"},
		},
		Households: []dataset.Household{
			{HouseholdKey: 1, Classification1: "Group1", Classification2: "X", Classification3: "Level2", Classification5: "Group3"},
		},
		CampaignMembers: []dataset.CampaignMember{
			{HouseholdKey: 1, Campaign: 8, Description: "TypeA"},
		},
	}
}

func suiteRows() []pipeline.FactRow {
	return pipeline.Build(suiteBundle(), pipeline.DefaultEpoch)
}

func TestBuildSuite(t *testing.T) {
	b := suiteBundle()
	s := BuildSuite(pipeline.Build(b, pipeline.DefaultEpoch), b.Products)

	if len(s.Customers) != 2 {
		t.Errorf("Customers: got %d rows, want 2", len(s.Customers))
	}
	if len(s.Products) != 2 {
		t.Errorf("Products: got %d rows, want 2", len(s.Products))
	}
	if len(s.Departments) != 2 {
		t.Errorf("Departments: got %d rows, want 2", len(s.Departments))
	}
	if len(s.Campaigns) != 2 {
		t.Errorf("Campaigns: got %d rows, want 2", len(s.Campaigns))
	}
	if len(s.Monthly) != 2 {
		t.Errorf("Monthly: got %d rows, want 2", len(s.Monthly))
	}
	if len(s.Yearly) != 1 {
		t.Errorf("Yearly: got %d rows, want 1", len(s.Yearly))
	}
	if len(s.Weekdays) != 3 {
		t.Errorf("Weekdays: got %d rows, want 3", len(s.Weekdays))
	}
	if !almostEqual(s.Overview.TotalRevenue, 100) {
		t.Errorf("Overview.TotalRevenue = %v, want 100", s.Overview.TotalRevenue)
	}
}

func TestRatio(t *testing.T) {
	if got := ratio(5, 25); got == nil || *got != 0.2 {
		t.Errorf("ratio(5, 25) = %v, want 0.2", got)
	}
	if got := ratio(0, 10); got == nil || *got != 0 {
		t.Errorf("ratio(0, 10) = %v, want 0", got)
	}
	if got := ratio(3, 0); got != nil {
		t.Errorf("ratio(3, 0) = %v, want nil", *got)
	}
}
