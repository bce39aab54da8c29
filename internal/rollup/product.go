package rollup

import (
	"sort"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// ProductStats is the per-product performance rollup with the product
// dimension attributes joined back on.
type ProductStats struct {
	ProductID      int64    `json:"PRODUCT_ID"`
	TotalQuantity  int64    `json:"TOTAL_QUANTITY"`
	TotalSales     float64  `json:"TOTAL_SALES"`
	NumBaskets     int      `json:"NUM_BASKETS"`
	NumCustomers   int      `json:"NUM_CUSTOMERS"`
	TotalDiscounts float64  `json:"TOTAL_DISCOUNTS"`
	Department     *string  `json:"DEPARTMENT"`
	Brand          *string  `json:"BRAND"`
	CommodityDesc  *string  `json:"COMMODITY_DESC"`
	AvgPrice       *float64 `json:"AVG_PRICE"`
}

type productAcc struct {
	baskets    map[int64]struct{}
	households map[int64]struct{}
	quantity   int64
	sales      float64
	discounts  float64
}

// Products rolls the fact table up to one row per product and left-joins
// the product dimension onto the result, sorted by product ID. Only
// products that appear in the fact table are present; the average price
// is nil when the summed quantity is zero.
func Products(rows []pipeline.FactRow, products []dataset.Product) []ProductStats {
	dims := make(map[int64]dataset.Product, len(products))
	for _, p := range products {
		if _, ok := dims[p.ProductID]; !ok {
			dims[p.ProductID] = p
		}
	}

	accs := make(map[int64]*productAcc)
	for _, row := range rows {
		acc, ok := accs[row.ProductID]
		if !ok {
			acc = &productAcc{
				baskets:    make(map[int64]struct{}),
				households: make(map[int64]struct{}),
			}
			accs[row.ProductID] = acc
		}
		acc.baskets[row.BasketID] = struct{}{}
		acc.households[row.HouseholdKey] = struct{}{}
		acc.quantity += row.Quantity
		acc.sales += row.SalesValue
		acc.discounts += row.TotalDiscount
	}

	out := make([]ProductStats, 0, len(accs))
	for id, acc := range accs {
		stats := ProductStats{
			ProductID:      id,
			TotalQuantity:  acc.quantity,
			TotalSales:     acc.sales,
			NumBaskets:     len(acc.baskets),
			NumCustomers:   len(acc.households),
			TotalDiscounts: acc.discounts,
			AvgPrice:       ratio(acc.sales, float64(acc.quantity)),
		}
		if p, ok := dims[id]; ok {
			stats.Department = &p.Department
			stats.Brand = &p.Brand
			stats.CommodityDesc = &p.CommodityDesc
		}
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
