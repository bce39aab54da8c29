package pipeline

// DeriveFeatures computes the temporal, discount, and revenue features
// for every row and returns a new slice; the input is left untouched.
// The fallback policies differ by feature: the discount rate falls back
// to 0 when the gross price is 0, while the unit price stays missing
// when the quantity is 0.
func DeriveFeatures(rows []FactRow) []FactRow {
	out := make([]FactRow, len(rows))
	for i, row := range rows {
		out[i] = deriveRow(row)
	}
	return out
}

func deriveRow(row FactRow) FactRow {
	row.Month = int(row.Date.Month())
	row.MonthName = row.Date.Month().String()
	row.DayOfWeek = weekdayNumber(row.Date)
	row.DayName = row.Date.Weekday().String()
	row.Quarter = quarterOf(row.Date)
	row.Year = row.Date.Year()
	row.IsWeekend = row.DayOfWeek == 5 || row.DayOfWeek == 6

	// SALES_VALUE is already net of discounts, so the gross price is the
	// sum of the two.
	row.TotalDiscount = row.CouponMatchDisc + row.CouponDisc + row.RetailDisc
	if gross := row.SalesValue + row.TotalDiscount; gross != 0 {
		row.DiscountRate = row.TotalDiscount / gross
	}

	row.NetRevenue = row.SalesValue
	if row.Quantity != 0 {
		price := row.SalesValue / float64(row.Quantity)
		row.UnitPrice = &price
	}
	row.HasDiscount = row.TotalDiscount > 0

	return row
}
