package rollup

import (
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// Overview is the dashboard's headline metric block.
type Overview struct {
	TotalRevenue     float64 `json:"TOTAL_REVENUE"`
	AvgBasketValue   float64 `json:"AVG_BASKET_VALUE"`
	ActiveHouseholds int     `json:"ACTIVE_HOUSEHOLDS"`
	ItemsSold        int64   `json:"ITEMS_SOLD"`
	ShoppingTrips    int     `json:"SHOPPING_TRIPS"`
	UniqueProducts   int     `json:"UNIQUE_PRODUCTS"`
	ItemsPerTrip     float64 `json:"ITEMS_PER_TRIP"`
}

// BuildOverview computes the headline metrics over the full fact table.
// The mean of per-basket sums reduces to the grand total over the
// distinct basket count, which is what the per-trip averages use.
func BuildOverview(rows []pipeline.FactRow) Overview {
	baskets := make(map[int64]struct{})
	households := make(map[int64]struct{})
	products := make(map[int64]struct{})

	var o Overview
	for _, row := range rows {
		o.TotalRevenue += row.SalesValue
		o.ItemsSold += row.Quantity
		baskets[row.BasketID] = struct{}{}
		households[row.HouseholdKey] = struct{}{}
		products[row.ProductID] = struct{}{}
	}

	o.ActiveHouseholds = len(households)
	o.UniqueProducts = len(products)
	o.ShoppingTrips = len(baskets)
	if trips := len(baskets); trips > 0 {
		o.AvgBasketValue = o.TotalRevenue / float64(trips)
		o.ItemsPerTrip = float64(o.ItemsSold) / float64(trips)
	}
	return o
}
