package rollup

import (
	"sort"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// MonthlySales is the sales rollup for one calendar month. Date is the
// first day of the month.
type MonthlySales struct {
	Date       time.Time `json:"DATE"`
	SalesValue float64   `json:"SALES_VALUE"`
	NumBaskets int       `json:"BASKET_ID"`
	Quantity   int64     `json:"QUANTITY"`
}

// Monthly groups sales by calendar month in chronological order.
func Monthly(rows []pipeline.FactRow) []MonthlySales {
	type monthKey struct {
		year  int
		month time.Month
	}
	type monthAcc struct {
		baskets  map[int64]struct{}
		sales    float64
		quantity int64
	}

	accs := make(map[monthKey]*monthAcc)
	for _, row := range rows {
		key := monthKey{row.Date.Year(), row.Date.Month()}
		acc, ok := accs[key]
		if !ok {
			acc = &monthAcc{baskets: make(map[int64]struct{})}
			accs[key] = acc
		}
		acc.baskets[row.BasketID] = struct{}{}
		acc.sales += row.SalesValue
		acc.quantity += row.Quantity
	}

	out := make([]MonthlySales, 0, len(accs))
	for key, acc := range accs {
		out = append(out, MonthlySales{
			Date:       time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC),
			SalesValue: acc.sales,
			NumBaskets: len(acc.baskets),
			Quantity:   acc.quantity,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// YearlySales is the revenue total for one calendar year.
type YearlySales struct {
	Year       int     `json:"YEAR"`
	SalesValue float64 `json:"SALES_VALUE"`
}

// Yearly sums revenue per calendar year in ascending order.
func Yearly(rows []pipeline.FactRow) []YearlySales {
	sums := make(map[int]float64)
	for _, row := range rows {
		sums[row.Year] += row.SalesValue
	}

	out := make([]YearlySales, 0, len(sums))
	for year, sales := range sums {
		out = append(out, YearlySales{Year: year, SalesValue: sales})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// WeekdaySales is the sales total for one day of the week. DayOfWeek
// counts Monday as 0 through Sunday as 6.
type WeekdaySales struct {
	DayOfWeek  int     `json:"DAY_OF_WEEK"`
	DayName    string  `json:"DAY_NAME"`
	SalesValue float64 `json:"SALES_VALUE"`
	NumBaskets int     `json:"BASKET_ID"`
}

// Weekdays sums sales per day of week, Monday first. Days with no
// activity are omitted.
func Weekdays(rows []pipeline.FactRow) []WeekdaySales {
	var sales [7]float64
	var names [7]string
	var baskets [7]map[int64]struct{}
	for _, row := range rows {
		d := row.DayOfWeek
		if baskets[d] == nil {
			baskets[d] = make(map[int64]struct{})
		}
		baskets[d][row.BasketID] = struct{}{}
		sales[d] += row.SalesValue
		names[d] = row.DayName
	}

	out := make([]WeekdaySales, 0, 7)
	for d := 0; d < 7; d++ {
		if baskets[d] == nil {
			continue
		}
		out = append(out, WeekdaySales{
			DayOfWeek:  d,
			DayName:    names[d],
			SalesValue: sales[d],
			NumBaskets: len(baskets[d]),
		})
	}
	return out
}
