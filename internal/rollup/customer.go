package rollup

import (
	"sort"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// CustomerStats is the per-household lifetime rollup. JSON field names
// follow the dashboard table schema.
type CustomerStats struct {
	HouseholdKey   int64     `json:"household_key"`
	NumTrips       int       `json:"NUM_TRIPS"`
	TotalSpent     float64   `json:"TOTAL_SPENT"`
	TotalItems     int64     `json:"TOTAL_ITEMS"`
	FirstPurchase  time.Time `json:"FIRST_PURCHASE"`
	LastPurchase   time.Time `json:"LAST_PURCHASE"`
	TotalDiscounts float64   `json:"TOTAL_DISCOUNTS"`
	NumStores      int       `json:"NUM_STORES"`
	DaysActive     int       `json:"DAYS_ACTIVE"`
	AvgBasketValue float64   `json:"AVG_BASKET_VALUE"`
	ItemsPerTrip   float64   `json:"ITEMS_PER_TRIP"`
	DiscountRate   *float64  `json:"DISCOUNT_RATE"`
}

type customerAcc struct {
	baskets   map[int64]struct{}
	stores    map[int64]struct{}
	spent     float64
	items     int64
	discounts float64
	first     time.Time
	last      time.Time
}

// Customers rolls the fact table up to one row per household, sorted by
// household key. A household present in the fact table always has at
// least one basket, so the per-trip ratios never divide by zero; the
// discount rate can still come out nil for a household with zero spend
// and zero discounts.
func Customers(rows []pipeline.FactRow) []CustomerStats {
	accs := make(map[int64]*customerAcc)
	for _, row := range rows {
		acc, ok := accs[row.HouseholdKey]
		if !ok {
			acc = &customerAcc{
				baskets: make(map[int64]struct{}),
				stores:  make(map[int64]struct{}),
				first:   row.Date,
				last:    row.Date,
			}
			accs[row.HouseholdKey] = acc
		}
		acc.baskets[row.BasketID] = struct{}{}
		acc.stores[row.StoreID] = struct{}{}
		acc.spent += row.SalesValue
		acc.items += row.Quantity
		acc.discounts += row.TotalDiscount
		if row.Date.Before(acc.first) {
			acc.first = row.Date
		}
		if row.Date.After(acc.last) {
			acc.last = row.Date
		}
	}

	out := make([]CustomerStats, 0, len(accs))
	for key, acc := range accs {
		trips := len(acc.baskets)
		out = append(out, CustomerStats{
			HouseholdKey:   key,
			NumTrips:       trips,
			TotalSpent:     acc.spent,
			TotalItems:     acc.items,
			FirstPurchase:  acc.first,
			LastPurchase:   acc.last,
			TotalDiscounts: acc.discounts,
			NumStores:      len(acc.stores),
			DaysActive:     int(acc.last.Sub(acc.first)/(24*time.Hour)) + 1,
			AvgBasketValue: acc.spent / float64(trips),
			ItemsPerTrip:   float64(acc.items) / float64(trips),
			DiscountRate:   ratio(acc.discounts, acc.spent+acc.discounts),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HouseholdKey < out[j].HouseholdKey })
	return out
}
