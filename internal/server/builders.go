package server

import (
	"strconv"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/rollup"
)

func init() {
	RegisterChart("monthly-revenue", monthlyRevenueChart)
	RegisterChart("yearly-revenue", yearlyRevenueChart)
	RegisterChart("department-revenue", departmentRevenueChart)
	RegisterChart("weekday-sales", weekdaySalesChart)
	RegisterChart("campaign-response", campaignResponseChart)
}

func monthlyRevenueChart(s *rollup.Suite) ChartConfig {
	labels := make([]string, len(s.Monthly))
	values := make([]float64, len(s.Monthly))
	for i, m := range s.Monthly {
		labels[i] = m.Date.Format("January 2006")
		values[i] = m.SalesValue
	}
	return ChartConfig{
		ChartType: "line",
		Title:     "Monthly Revenue Trend",
		XLabel:    "Month",
		YLabel:    "Revenue ($)",
		Labels:    labels,
		Values:    values,
	}
}

func yearlyRevenueChart(s *rollup.Suite) ChartConfig {
	labels := make([]string, len(s.Yearly))
	values := make([]float64, len(s.Yearly))
	for i, y := range s.Yearly {
		labels[i] = strconv.Itoa(y.Year)
		values[i] = y.SalesValue
	}
	return ChartConfig{
		ChartType: "bar",
		Title:     "Revenue by Year",
		XLabel:    "Year",
		YLabel:    "Revenue ($)",
		Labels:    labels,
		Values:    values,
	}
}

func departmentRevenueChart(s *rollup.Suite) ChartConfig {
	labels := make([]string, len(s.Departments))
	values := make([]float64, len(s.Departments))
	for i, d := range s.Departments {
		labels[i] = d.Department
		values[i] = d.TotalRevenue
	}
	return ChartConfig{
		ChartType: "bar",
		Title:     "Revenue by Department",
		XLabel:    "Department",
		YLabel:    "Revenue ($)",
		Labels:    labels,
		Values:    values,
	}
}

func weekdaySalesChart(s *rollup.Suite) ChartConfig {
	labels := make([]string, len(s.Weekdays))
	values := make([]float64, len(s.Weekdays))
	for i, d := range s.Weekdays {
		labels[i] = d.DayName
		values[i] = d.SalesValue
	}
	return ChartConfig{
		ChartType: "bar",
		Title:     "Sales by Day of Week",
		XLabel:    "Day",
		YLabel:    "Revenue ($)",
		Labels:    labels,
		Values:    values,
	}
}

// campaignResponseChart compares the average household total spend of
// campaign members against everyone else.
func campaignResponseChart(s *rollup.Suite) ChartConfig {
	var inSum, outSum float64
	var inCount, outCount int
	for _, c := range s.Campaigns {
		if c.InCampaign == 1 {
			inSum += c.SalesValue
			inCount++
		} else {
			outSum += c.SalesValue
			outCount++
		}
	}

	values := []float64{0, 0}
	if outCount > 0 {
		values[0] = outSum / float64(outCount)
	}
	if inCount > 0 {
		values[1] = inSum / float64(inCount)
	}
	return ChartConfig{
		ChartType: "bar",
		Title:     "Average Household Spend by Campaign Participation",
		XLabel:    "Participation",
		YLabel:    "Average Spend ($)",
		Labels:    []string{"No Campaign", "In Campaign"},
		Values:    values,
	}
}
