// Package export writes pipeline results to report files: a single
// timestamped JSON document, or one CSV file per rollup table. Column
// names match the dashboard API schemas.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/rollup"
)

// Exporter writes reports under Dir in the configured Format.
type Exporter struct {
	Dir    string
	Format string
}

// Write emits the full suite and campaign windows. JSON produces one
// timestamped report file; CSV produces a timestamped directory with
// one file per table. Returns the path written.
func (e *Exporter) Write(s *rollup.Suite, campaigns []pipeline.CampaignWindow) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	switch e.Format {
	case "json":
		return e.writeJSON(s, campaigns, stamp)
	case "csv":
		return e.writeCSV(s, campaigns, stamp)
	default:
		return "", fmt.Errorf("unknown report format: %s", e.Format)
	}
}

func (e *Exporter) writeJSON(s *rollup.Suite, campaigns []pipeline.CampaignWindow, stamp string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(e.Dir, "report-"+stamp+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}

	report := map[string]any{
		"generated_at":      time.Now().UTC(),
		"overview":          s.Overview,
		"customers":         s.Customers,
		"products":          s.Products,
		"departments":       s.Departments,
		"campaign_response": s.Campaigns,
		"monthly_sales":     s.Monthly,
		"yearly_sales":      s.Yearly,
		"weekday_sales":     s.Weekdays,
		"campaigns":         campaigns,
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	logging.Info().Str("path", path).Msg("Report written")
	return path, nil
}

func (e *Exporter) writeCSV(s *rollup.Suite, campaigns []pipeline.CampaignWindow, stamp string) (string, error) {
	dir := filepath.Join(e.Dir, "report-"+stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	tables := []struct {
		name  string
		write func(w *csv.Writer) error
	}{
		{"overview.csv", func(w *csv.Writer) error { return writeOverview(w, s.Overview) }},
		{"customers.csv", func(w *csv.Writer) error { return writeCustomers(w, s.Customers) }},
		{"products.csv", func(w *csv.Writer) error { return writeProducts(w, s.Products) }},
		{"departments.csv", func(w *csv.Writer) error { return writeDepartments(w, s.Departments) }},
		{"campaign_response.csv", func(w *csv.Writer) error { return writeCampaignResponse(w, s.Campaigns) }},
		{"monthly_sales.csv", func(w *csv.Writer) error { return writeMonthly(w, s.Monthly) }},
		{"yearly_sales.csv", func(w *csv.Writer) error { return writeYearly(w, s.Yearly) }},
		{"weekday_sales.csv", func(w *csv.Writer) error { return writeWeekdays(w, s.Weekdays) }},
		{"campaigns.csv", func(w *csv.Writer) error { return writeCampaigns(w, campaigns) }},
	}

	for _, table := range tables {
		if err := writeTable(filepath.Join(dir, table.name), table.write); err != nil {
			return "", err
		}
	}

	logging.Info().Str("path", dir).Msg("Report written")
	return dir, nil
}

func writeTable(path string, write func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func integer(v int64) string {
	return strconv.FormatInt(v, 10)
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}

func optNum(v *float64) string {
	if v == nil {
		return ""
	}
	return num(*v)
}

func optText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func writeOverview(w *csv.Writer, o rollup.Overview) error {
	if err := w.Write([]string{
		"TOTAL_REVENUE", "AVG_BASKET_VALUE", "ACTIVE_HOUSEHOLDS", "ITEMS_SOLD",
		"SHOPPING_TRIPS", "UNIQUE_PRODUCTS", "ITEMS_PER_TRIP",
	}); err != nil {
		return err
	}
	return w.Write([]string{
		num(o.TotalRevenue), num(o.AvgBasketValue), strconv.Itoa(o.ActiveHouseholds),
		integer(o.ItemsSold), strconv.Itoa(o.ShoppingTrips), strconv.Itoa(o.UniqueProducts),
		num(o.ItemsPerTrip),
	})
}

func writeCustomers(w *csv.Writer, customers []rollup.CustomerStats) error {
	if err := w.Write([]string{
		"household_key", "NUM_TRIPS", "TOTAL_SPENT", "TOTAL_ITEMS", "FIRST_PURCHASE",
		"LAST_PURCHASE", "TOTAL_DISCOUNTS", "NUM_STORES", "DAYS_ACTIVE",
		"AVG_BASKET_VALUE", "ITEMS_PER_TRIP", "DISCOUNT_RATE",
	}); err != nil {
		return err
	}
	for _, c := range customers {
		if err := w.Write([]string{
			integer(c.HouseholdKey), strconv.Itoa(c.NumTrips), num(c.TotalSpent),
			integer(c.TotalItems), day(c.FirstPurchase), day(c.LastPurchase),
			num(c.TotalDiscounts), strconv.Itoa(c.NumStores), strconv.Itoa(c.DaysActive),
			num(c.AvgBasketValue), num(c.ItemsPerTrip), optNum(c.DiscountRate),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeProducts(w *csv.Writer, products []rollup.ProductStats) error {
	if err := w.Write([]string{
		"PRODUCT_ID", "TOTAL_QUANTITY", "TOTAL_SALES", "NUM_BASKETS", "NUM_CUSTOMERS",
		"TOTAL_DISCOUNTS", "DEPARTMENT", "BRAND", "COMMODITY_DESC", "AVG_PRICE",
	}); err != nil {
		return err
	}
	for _, p := range products {
		if err := w.Write([]string{
			integer(p.ProductID), integer(p.TotalQuantity), num(p.TotalSales),
			strconv.Itoa(p.NumBaskets), strconv.Itoa(p.NumCustomers), num(p.TotalDiscounts),
			optText(p.Department), optText(p.Brand), optText(p.CommodityDesc),
			optNum(p.AvgPrice),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeDepartments(w *csv.Writer, departments []rollup.DepartmentStats) error {
	if err := w.Write([]string{
		"DEPARTMENT", "TOTAL_REVENUE", "TOTAL_QUANTITY", "NUM_BASKETS", "NUM_CUSTOMERS",
	}); err != nil {
		return err
	}
	for _, d := range departments {
		if err := w.Write([]string{
			d.Department, num(d.TotalRevenue), integer(d.TotalQuantity),
			strconv.Itoa(d.NumBaskets), strconv.Itoa(d.NumCustomers),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeCampaignResponse(w *csv.Writer, responses []rollup.CampaignResponse) error {
	if err := w.Write([]string{
		"household_key", "IN_CAMPAIGN", "SALES_VALUE", "BASKET_ID", "QUANTITY",
	}); err != nil {
		return err
	}
	for _, r := range responses {
		if err := w.Write([]string{
			integer(r.HouseholdKey), strconv.Itoa(r.InCampaign), num(r.SalesValue),
			strconv.Itoa(r.NumBaskets), integer(r.Quantity),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthly(w *csv.Writer, monthly []rollup.MonthlySales) error {
	if err := w.Write([]string{"DATE", "SALES_VALUE", "BASKET_ID", "QUANTITY"}); err != nil {
		return err
	}
	for _, m := range monthly {
		if err := w.Write([]string{
			day(m.Date), num(m.SalesValue), strconv.Itoa(m.NumBaskets), integer(m.Quantity),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeYearly(w *csv.Writer, yearly []rollup.YearlySales) error {
	if err := w.Write([]string{"YEAR", "SALES_VALUE"}); err != nil {
		return err
	}
	for _, y := range yearly {
		if err := w.Write([]string{strconv.Itoa(y.Year), num(y.SalesValue)}); err != nil {
			return err
		}
	}
	return nil
}

func writeWeekdays(w *csv.Writer, weekdays []rollup.WeekdaySales) error {
	if err := w.Write([]string{"DAY_OF_WEEK", "DAY_NAME", "SALES_VALUE", "BASKET_ID"}); err != nil {
		return err
	}
	for _, d := range weekdays {
		if err := w.Write([]string{
			strconv.Itoa(d.DayOfWeek), d.DayName, num(d.SalesValue), strconv.Itoa(d.NumBaskets),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeCampaigns(w *csv.Writer, campaigns []pipeline.CampaignWindow) error {
	if err := w.Write([]string{
		"CAMPAIGN", "DESCRIPTION", "START_DAY", "END_DAY", "START_DATE", "END_DATE",
	}); err != nil {
		return err
	}
	for _, c := range campaigns {
		if err := w.Write([]string{
			integer(c.Campaign), c.Description, strconv.Itoa(c.StartDay),
			strconv.Itoa(c.EndDay), day(c.StartDate), day(c.EndDate),
		}); err != nil {
			return err
		}
	}
	return nil
}
