package rollup

import "testing"

func TestBuildOverview(t *testing.T) {
	o := BuildOverview(suiteRows())

	if !almostEqual(o.TotalRevenue, 100) {
		t.Errorf("TotalRevenue = %v, want 100", o.TotalRevenue)
	}
	if o.ActiveHouseholds != 2 {
		t.Errorf("ActiveHouseholds = %d, want 2", o.ActiveHouseholds)
	}
	if o.ItemsSold != 8 {
		t.Errorf("ItemsSold = %d, want 8", o.ItemsSold)
	}
	if o.ShoppingTrips != 3 {
		t.Errorf("ShoppingTrips = %d, want 3", o.ShoppingTrips)
	}
	if o.UniqueProducts != 2 {
		t.Errorf("UniqueProducts = %d, want 2", o.UniqueProducts)
	}
	if !almostEqual(o.AvgBasketValue, 100.0/3.0) {
		t.Errorf("AvgBasketValue = %v, want %v", o.AvgBasketValue, 100.0/3.0)
	}
	if !almostEqual(o.ItemsPerTrip, 8.0/3.0) {
		t.Errorf("ItemsPerTrip = %v, want %v", o.ItemsPerTrip, 8.0/3.0)
	}
}

func TestBuildOverviewEmpty(t *testing.T) {
	o := BuildOverview(nil)

	if o.TotalRevenue != 0 || o.ShoppingTrips != 0 {
		t.Errorf("Empty input should produce zero metrics: %+v", o)
	}
	if o.AvgBasketValue != 0 || o.ItemsPerTrip != 0 {
		t.Errorf("Per-trip averages must be 0 with no baskets: %+v", o)
	}
}
