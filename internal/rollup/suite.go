// Package rollup reduces the enriched fact table to the dashboard's
// aggregate tables: per-customer lifetime metrics, product and
// department performance, campaign response, sales trends, and the
// headline overview block. Each rollup is an independent group-by over
// the fact table; distinct counts use set semantics and ratios are
// computed after reduction, never per row.
package rollup

import (
	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// Suite bundles every rollup computed from one fact table.
type Suite struct {
	Overview    Overview
	Customers   []CustomerStats
	Products    []ProductStats
	Departments []DepartmentStats
	Campaigns   []CampaignResponse
	Monthly     []MonthlySales
	Yearly      []YearlySales
	Weekdays    []WeekdaySales
}

// BuildSuite computes all rollups. The product dimension is needed to
// join attributes back onto the product rollup.
func BuildSuite(rows []pipeline.FactRow, products []dataset.Product) *Suite {
	return &Suite{
		Overview:    BuildOverview(rows),
		Customers:   Customers(rows),
		Products:    Products(rows, products),
		Departments: Departments(rows),
		Campaigns:   CampaignResponses(rows),
		Monthly:     Monthly(rows),
		Yearly:      Yearly(rows),
		Weekdays:    Weekdays(rows),
	}
}

// ratio returns num/den, or nil when the denominator is zero. Rollup
// ratios stay missing on a zero denominator rather than being coerced
// to 0.
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}
