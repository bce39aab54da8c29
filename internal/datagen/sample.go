package datagen

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// Config controls the size and seed of the generated dataset.
type Config struct {
	Households   int
	Products     int
	Stores       int
	Campaigns    int
	Days         int
	Transactions int
	Seed         int64
}

// DefaultConfig returns generation parameters sized like a two-year
// frequent-shopper extract.
func DefaultConfig() Config {
	return Config{
		Households:   2500,
		Products:     5000,
		Stores:       25,
		Campaigns:    12,
		Days:         730,
		Transactions: 150000,
	}
}

var (
	departmentNames   = []string{"GROCERY", "PRODUCE", "MEAT", "DELI", "DRUG GM", "PASTRY", "FLORAL", "SEAFOOD", "NUTRITION", "KIOSK-GAS"}
	departmentWeights = []int{40, 15, 10, 8, 12, 6, 2, 3, 3, 1}

	commodityNames = []string{
		"SOFT DRINKS", "FLUID MILK PRODUCTS", "BAKED BREAD/BUNS/ROLLS", "CHEESE",
		"BEEF", "VEGETABLES - SHELF STABLE", "FROZEN PIZZA", "SNACKS", "COFFEE",
		"CANDY", "YOGURT", "CEREAL", "LUNCHMEAT", "PAPER TOWELS", "SHAMPOO",
	}
	commodityQualifiers = []string{"REGULAR", "PREMIUM", "DIET", "ORGANIC", "FAMILY SIZE", "SINGLE SERVE"}
	packageSizes        = []string{"12 OZ", "16 OZ", "18 OZ", "64 OZ", "1 LT", "2 LT", "1 GAL", "6 CT", "12 CT", "LB"}
	brandTypes          = []string{"National", "Private"}

	campaignTypes     = []string{"TypeA", "TypeB", "TypeC"}
	demographicGroups = []string{"Group1", "Group2", "Group3", "Group4", "Group5", "Group6"}
	demographicTypes  = []string{"X", "Y", "Z"}
	householdSizes    = []string{"1", "2", "3", "4", "5+"}
)

type sampleProduct struct {
	id           int64
	manufacturer int
	department   string
	brand        string
	commodity    string
	subCommodity string
	size         string
	basePrice    float64
}

type sampleHousehold struct {
	key     int64
	group   string
	kind    string
	level   string
	size    string
	segment string
}

type sampleMember struct {
	household   int64
	campaign    int64
	description string
}

type sampleCampaign struct {
	id          int64
	description string
	startDay    int
	endDay      int
}

// Generator produces a synthetic retail dataset whose shapes mirror the
// real files: transaction line items with baskets and discounts, a
// product dimension, partial demographic coverage, and overlapping
// campaign memberships. Discount components are stored as non-negative
// amounts already subtracted from SALES_VALUE.
type Generator struct {
	cfg   Config
	faker *Faker
}

// NewGenerator creates a generator. A zero seed produces a different
// dataset on every run.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg, faker: NewFaker(cfg.Seed)}
}

// Generate writes the five dataset files into dir.
func (g *Generator) Generate(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	products := g.products()
	households := g.households()
	members, descs := g.campaigns()

	steps := []struct {
		file  string
		write func(w *csv.Writer) error
	}{
		{"product.csv", func(w *csv.Writer) error { return writeProducts(w, products) }},
		{"hh_demographic.csv", func(w *csv.Writer) error { return writeHouseholds(w, households) }},
		{"campaign_table.csv", func(w *csv.Writer) error { return writeMembers(w, members) }},
		{"campaign_desc.csv", func(w *csv.Writer) error { return writeCampaigns(w, descs) }},
		{"transaction_data.csv", func(w *csv.Writer) error { return g.writeTransactions(ctx, w, products) }},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, step.file), step.write); err != nil {
			return err
		}
		logging.Debug().Str("file", step.file).Msg("Dataset file written")
	}

	logging.Info().
		Str("dir", dir).
		Int("transactions", g.cfg.Transactions).
		Int("households", g.cfg.Households).
		Int("products", g.cfg.Products).
		Msg("Sample dataset generated")
	return nil
}

func (g *Generator) products() []sampleProduct {
	out := make([]sampleProduct, g.cfg.Products)
	for i := range out {
		commodity := Choose(g.faker, commodityNames)
		out[i] = sampleProduct{
			id:           1000000 + int64(i),
			manufacturer: g.faker.Int(1, 2000),
			department:   ChooseWeighted(g.faker, departmentNames, departmentWeights),
			brand:        Choose(g.faker, brandTypes),
			commodity:    commodity,
			subCommodity: commodity + " - " + Choose(g.faker, commodityQualifiers),
			size:         Choose(g.faker, packageSizes),
			basePrice:    g.faker.Price(0.5, 25),
		}
	}
	return out
}

// households covers roughly 70% of household keys, matching the partial
// demographic coverage of real loyalty data. Keys without a row
// exercise the left-join null path downstream.
func (g *Generator) households() []sampleHousehold {
	out := make([]sampleHousehold, 0, g.cfg.Households)
	for key := 1; key <= g.cfg.Households; key++ {
		if g.faker.Float64(0, 1) > 0.7 {
			continue
		}
		out = append(out, sampleHousehold{
			key:     int64(key),
			group:   Choose(g.faker, demographicGroups),
			kind:    Choose(g.faker, demographicTypes),
			level:   fmt.Sprintf("Level%d", g.faker.Int(1, 12)),
			size:    Choose(g.faker, householdSizes),
			segment: Choose(g.faker, demographicGroups),
		})
	}
	return out
}

// campaigns builds the campaign windows and memberships. A household
// can hold several memberships, including repeats, which downstream
// deduplication reduces to the first row.
func (g *Generator) campaigns() ([]sampleMember, []sampleCampaign) {
	descs := make([]sampleCampaign, g.cfg.Campaigns)
	latestStart := g.cfg.Days - 60
	if latestStart < 1 {
		latestStart = 1
	}
	for i := range descs {
		start := g.faker.Int(1, latestStart)
		end := start + g.faker.Int(14, 60)
		if end > g.cfg.Days {
			end = g.cfg.Days
		}
		descs[i] = sampleCampaign{
			id:          int64(i + 1),
			description: Choose(g.faker, campaignTypes),
			startDay:    start,
			endDay:      end,
		}
	}

	var members []sampleMember
	if g.cfg.Campaigns == 0 {
		return members, descs
	}
	for key := 1; key <= g.cfg.Households; key++ {
		if g.faker.Float64(0, 1) > 0.4 {
			continue
		}
		for j := g.faker.Int(1, 3); j > 0; j-- {
			c := Choose(g.faker, descs)
			members = append(members, sampleMember{
				household:   int64(key),
				campaign:    c.id,
				description: c.description,
			})
		}
	}
	return members, descs
}

func (g *Generator) writeTransactions(ctx context.Context, w *csv.Writer, products []sampleProduct) error {
	header := []string{
		"household_key", "BASKET_ID", "DAY", "PRODUCT_ID", "QUANTITY", "SALES_VALUE",
		"STORE_ID", "RETAIL_DISC", "TRANS_TIME", "WEEK_NO", "COUPON_DISC", "COUPON_MATCH_DISC",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	quantities := []int{1, 2, 3, 4, 6}
	quantityWeights := []int{55, 25, 10, 6, 4}

	basketID := int64(26000000000)
	written := 0
	for written < g.cfg.Transactions {
		if err := ctx.Err(); err != nil {
			return err
		}

		household := g.faker.Int(1, g.cfg.Households)
		day := g.pickDay()
		store := 100 + g.faker.Int(1, g.cfg.Stores)
		transTime := fmt.Sprintf("%02d%02d", g.faker.Int(8, 21), g.faker.Int(0, 59))
		week := (day-1)/7 + 1
		basketID++

		items := g.faker.Int(1, 12)
		if remaining := g.cfg.Transactions - written; items > remaining {
			items = remaining
		}
		for i := 0; i < items; i++ {
			p := Choose(g.faker, products)
			qty := ChooseWeighted(g.faker, quantities, quantityWeights)
			gross := round2(p.basePrice * float64(qty) * g.faker.Float64(0.9, 1.1))

			// Component caps keep the total discount under 70% of the
			// gross price, so SALES_VALUE stays positive.
			var retail, coupon, couponMatch float64
			if g.faker.Float64(0, 1) < 0.3 {
				retail = round2(gross * g.faker.Float64(0.05, 0.3))
			}
			if g.faker.Float64(0, 1) < 0.05 {
				coupon = round2(gross * g.faker.Float64(0.05, 0.2))
				if g.faker.Bool() {
					couponMatch = coupon
				}
			}
			sales := round2(gross - retail - coupon - couponMatch)

			record := []string{
				strconv.Itoa(household),
				strconv.FormatInt(basketID, 10),
				strconv.Itoa(day),
				strconv.FormatInt(p.id, 10),
				strconv.Itoa(qty),
				strconv.FormatFloat(sales, 'f', 2, 64),
				strconv.Itoa(store),
				strconv.FormatFloat(retail, 'f', 2, 64),
				transTime,
				strconv.Itoa(week),
				strconv.FormatFloat(coupon, 'f', 2, 64),
				strconv.FormatFloat(couponMatch, 'f', 2, 64),
			}
			if err := w.Write(record); err != nil {
				return err
			}
			written++
		}
	}
	return nil
}

// pickDay draws a basket day, accepting weekday draws with lower
// probability so weekends carry more shopping trips.
func (g *Generator) pickDay() int {
	for {
		day := g.faker.Int(1, g.cfg.Days)
		if weekendDay(day) || g.faker.Float64(0, 1) < 0.75 {
			return day
		}
	}
}

// weekendDay reports whether the day offset lands on a Saturday or
// Sunday under the default epoch.
func weekendDay(day int) bool {
	wd := pipeline.DateFromDay(pipeline.DefaultEpoch, day).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func writeProducts(w *csv.Writer, products []sampleProduct) error {
	header := []string{
		"PRODUCT_ID", "MANUFACTURER", "DEPARTMENT", "BRAND",
		"COMMODITY_DESC", "SUB_COMMODITY_DESC", "CURR_SIZE_OF_PRODUCT",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			strconv.FormatInt(p.id, 10),
			strconv.Itoa(p.manufacturer),
			p.department,
			p.brand,
			p.commodity,
			p.subCommodity,
			p.size,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeHouseholds puts the key column last, like the real demographic
// extract; loaders must find columns by name, not position.
func writeHouseholds(w *csv.Writer, households []sampleHousehold) error {
	header := []string{
		"classification_1", "classification_2", "classification_3",
		"classification_4", "classification_5", "household_key",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, h := range households {
		record := []string{h.group, h.kind, h.level, h.size, h.segment, strconv.FormatInt(h.key, 10)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeMembers(w *csv.Writer, members []sampleMember) error {
	if err := w.Write([]string{"DESCRIPTION", "household_key", "CAMPAIGN"}); err != nil {
		return err
	}
	for _, m := range members {
		record := []string{m.description, strconv.FormatInt(m.household, 10), strconv.FormatInt(m.campaign, 10)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeCampaigns(w *csv.Writer, descs []sampleCampaign) error {
	if err := w.Write([]string{"DESCRIPTION", "CAMPAIGN", "START_DAY", "END_DAY"}); err != nil {
		return err
	}
	for _, c := range descs {
		record := []string{
			c.description,
			strconv.FormatInt(c.id, 10),
			strconv.Itoa(c.startDay),
			strconv.Itoa(c.endDay),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*csv.Writer) error) error {
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

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
