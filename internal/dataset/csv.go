//-------------------------------------------------------------------------
//
// Retail Analytics Dashboard
//
// Copyright (c) 2025 - 2026, Thant Thiha
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVSource loads the input tables from a directory of CSV files using
// the well-known file names (transaction_data.csv, product.csv, ...).
type CSVSource struct {
	dir string
}

// NewCSVSource returns a Source that reads CSV files from dir.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

// Load reads all five tables. A missing file, a missing required column,
// or a malformed cell aborts the load; nothing is returned partially.
func (s *CSVSource) Load(ctx context.Context) (*Bundle, error) {
	b := &Bundle{}

	err := s.readTable(ctx, TransactionsTable, func(rec *record) error {
		t := Transaction{
			HouseholdKey:    rec.integer("household_key"),
			BasketID:        rec.integer("BASKET_ID"),
			Day:             int(rec.integer("DAY")),
			ProductID:       rec.integer("PRODUCT_ID"),
			Quantity:        rec.integer("QUANTITY"),
			SalesValue:      rec.number("SALES_VALUE"),
			StoreID:         rec.integer("STORE_ID"),
			RetailDisc:      rec.number("RETAIL_DISC"),
			CouponDisc:      rec.number("COUPON_DISC"),
			CouponMatchDisc: rec.number("COUPON_MATCH_DISC"),
		}
		if rec.err != nil {
			return rec.err
		}
		b.Transactions = append(b.Transactions, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.readTable(ctx, ProductsTable, func(rec *record) error {
		p := Product{
			ProductID:     rec.integer("PRODUCT_ID"),
			Department:    rec.text("DEPARTMENT"),
			Brand:         rec.text("BRAND"),
			CommodityDesc: rec.text("COMMODITY_DESC"),
		}
		if rec.err != nil {
			return rec.err
		}
		b.Products = append(b.Products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.readTable(ctx, HouseholdsTable, func(rec *record) error {
		h := Household{
			HouseholdKey:    rec.integer("household_key"),
			Classification1: rec.text("classification_1"),
			Classification2: rec.text("classification_2"),
			Classification3: rec.text("classification_3"),
			Classification5: rec.text("classification_5"),
		}
		if rec.err != nil {
			return rec.err
		}
		b.Households = append(b.Households, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.readTable(ctx, CampaignMembersTable, func(rec *record) error {
		m := CampaignMember{
			HouseholdKey: rec.integer("household_key"),
			Campaign:     rec.integer("CAMPAIGN"),
			Description:  rec.text("DESCRIPTION"),
		}
		if rec.err != nil {
			return rec.err
		}
		b.CampaignMembers = append(b.CampaignMembers, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.readTable(ctx, CampaignDescsTable, func(rec *record) error {
		d := CampaignDesc{
			Campaign:    rec.integer("CAMPAIGN"),
			Description: rec.text("DESCRIPTION"),
			StartDay:    int(rec.integer("START_DAY")),
			EndDay:      int(rec.integer("END_DAY")),
		}
		if rec.err != nil {
			return rec.err
		}
		b.CampaignDescs = append(b.CampaignDescs, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// readTable walks one CSV file, calling row for every data record.
func (s *CSVSource) readTable(ctx context.Context, t Table, row func(*record) error) error {
	path := filepath.Join(s.dir, t.FileName)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", t.Name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("load %s: reading header: %w", t.Name, err)
	}
	cols, err := indexColumns(header, t)
	if err != nil {
		return fmt.Errorf("load %s: %w", t.Name, err)
	}

	line := 1
	for {
		if line%8192 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		fields, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", t.Name, err)
		}
		line++
		rec := record{cols: cols, fields: fields}
		if err := row(&rec); err != nil {
			return fmt.Errorf("load %s: line %d: %w", t.Name, line, err)
		}
	}
}

// indexColumns maps column name to field position and verifies that every
// required column is present.
func indexColumns(header []string, t Table) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			// Strip a UTF-8 byte order mark exported by some spreadsheet tools.
			name = strings.TrimPrefix(name, "\xef\xbb\xbf")
		}
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, c := range t.Columns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// record gives typed access to one CSV row. Parse failures latch into err
// so callers can convert a whole row and check once.
type record struct {
	cols   map[string]int
	fields []string
	err    error
}

func (r *record) text(col string) string {
	return strings.TrimSpace(r.fields[r.cols[col]])
}

func (r *record) integer(col string) int64 {
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(r.text(col), 10, 64)
	if err != nil {
		r.err = fmt.Errorf("column %s: invalid integer %q", col, r.text(col))
	}
	return v
}

func (r *record) number(col string) float64 {
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(r.text(col), 64)
	if err != nil {
		r.err = fmt.Errorf("column %s: invalid number %q", col, r.text(col))
	}
	return v
}
